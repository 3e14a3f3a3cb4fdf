package varsel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"medvirkning/internal/varsel/mocks"
	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/batch"
)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.store = mocks.NewMockStore(ctrl)
	s.publisher = mocks.NewMockPublisher(ctrl)
	s.service = NewService(s.store, s.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func unpublished(journalpostID string) models.UnpublishedVarsel {
	return models.UnpublishedVarsel{
		Personident:   "12345678910",
		JournalpostID: models.JournalpostID(journalpostID),
		Varsel:        models.Varsel{UUID: uuid.New()},
	}
}

func (s *ServiceSuite) TestPublishesAndMarksEveryVarsel() {
	a, b := unpublished("1"), unpublished("2")
	s.store.EXPECT().ListUnpublishedVarsler(gomock.Any()).Return([]models.UnpublishedVarsel{a, b}, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), a).Return(nil)
	s.store.EXPECT().MarkVarselPublished(gomock.Any(), a.Varsel.UUID).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), b).Return(nil)
	s.store.EXPECT().MarkVarselPublished(gomock.Any(), b.Varsel.UUID).Return(nil)

	results, err := s.service.PublishUnpublished(s.ctx)
	s.Require().NoError(err)
	ok, failed := batch.Count(results)
	s.Equal(2, ok)
	s.Equal(0, failed)
}

func (s *ServiceSuite) TestFailedSendIsNotMarked() {
	a, b := unpublished("1"), unpublished("2")
	sendErr := errors.New("broker unavailable")
	s.store.EXPECT().ListUnpublishedVarsler(gomock.Any()).Return([]models.UnpublishedVarsel{a, b}, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), a).Return(sendErr)
	s.publisher.EXPECT().Publish(gomock.Any(), b).Return(nil)
	s.store.EXPECT().MarkVarselPublished(gomock.Any(), b.Varsel.UUID).Return(nil)

	results, err := s.service.PublishUnpublished(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.ErrorIs(results[0].Err, sendErr)
	s.Equal(a.Varsel.UUID, results[0].Value.UUID)
	s.True(results[1].Succeeded())
}

func (s *ServiceSuite) TestMarkerFailureIsReported() {
	a := unpublished("1")
	markErr := errors.New("update count 0")
	s.store.EXPECT().ListUnpublishedVarsler(gomock.Any()).Return([]models.UnpublishedVarsel{a}, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), a).Return(nil)
	s.store.EXPECT().MarkVarselPublished(gomock.Any(), a.Varsel.UUID).Return(markErr)

	results, err := s.service.PublishUnpublished(s.ctx)
	s.Require().NoError(err)
	s.ErrorIs(results[0].Err, markErr)
}

func (s *ServiceSuite) TestListFailure() {
	s.store.EXPECT().ListUnpublishedVarsler(gomock.Any()).Return(nil, errors.New("db down"))

	results, err := s.service.PublishUnpublished(s.ctx)
	s.Error(err)
	s.Nil(results)
}

func (s *ServiceSuite) TestNothingPending() {
	s.store.EXPECT().ListUnpublishedVarsler(gomock.Any()).Return(nil, nil)

	results, err := s.service.PublishUnpublished(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}
