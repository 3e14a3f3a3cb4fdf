package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"medvirkning/internal/vurdering/models"
	"medvirkning/internal/vurdering/service/mocks"
	"medvirkning/internal/vurdering/store"
	"medvirkning/pkg/platform/batch"
	"medvirkning/pkg/platform/sentinel"
	"medvirkning/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx          context.Context
	now          time.Time
	store        *mocks.MockStore
	renderer     *mocks.MockRenderer
	journalforer *mocks.MockJournalforer
	publisher    *mocks.MockPublisher
	logs         *bytes.Buffer
	service      *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.store = mocks.NewMockStore(ctrl)
	s.renderer = mocks.NewMockRenderer(ctrl)
	s.journalforer = mocks.NewMockJournalforer(ctrl)
	s.publisher = mocks.NewMockPublisher(ctrl)
	s.logs = &bytes.Buffer{}
	s.service = New(s.store, s.renderer, s.journalforer, s.publisher,
		WithLogger(slog.New(slog.NewJSONHandler(s.logs, nil))))
}

func (s *ServiceSuite) newRequest(typ models.VurderingType) models.NewVurdering {
	return models.NewVurdering{
		Type:          typ,
		Personident:   "12345678910",
		Veilederident: "Z999999",
		Begrunnelse:   "Fin begrunnelse",
		Document:      []models.DocumentComponent{{Type: models.DocumentParagraph, Texts: []string{"Tekst"}}},
	}
}

func saveEcho(_ context.Context, v models.Vurdering, _ []byte) (models.Vurdering, error) {
	return v, nil
}

func (s *ServiceSuite) TestCreateForhandsvarsel() {
	req := s.newRequest(models.TypeForhandsvarsel)
	svarfrist := models.Today(s.now).AddDays(21)
	req.VarselSvarfrist = &svarfrist
	pdf := []byte{0x2, 0x3}

	gomock.InOrder(
		s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(pdf, nil),
		s.store.EXPECT().Save(gomock.Any(), gomock.Any(), pdf).DoAndReturn(saveEcho),
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
		s.store.EXPECT().MarkVurderingPublished(gomock.Any(), gomock.Any()).Return(nil),
	)

	v, err := s.service.Create(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(models.TypeForhandsvarsel, v.Type)
	s.Equal(s.now, v.CreatedAt)
	s.Require().NotNil(v.Varsel)
	s.Equal(svarfrist, v.Varsel.Svarfrist)
}

func (s *ServiceSuite) TestCreateRejectsInvalidSvarfristBeforeRendering() {
	req := s.newRequest(models.TypeForhandsvarsel)
	svarfrist := models.Today(s.now).AddDays(20)
	req.VarselSvarfrist = &svarfrist

	_, err := s.service.Create(s.ctx, req)
	s.ErrorIs(err, models.ErrInvalidSvarfrist)
	s.ErrorIs(err, sentinel.ErrValidation)
}

func (s *ServiceSuite) TestCreateRejectsEmptyDocument() {
	req := s.newRequest(models.TypeOppfylt)
	req.Document = nil

	_, err := s.service.Create(s.ctx, req)
	s.ErrorIs(err, models.ErrEmptyDocument)
}

func (s *ServiceSuite) TestCreateRenderFailureStoresNothing() {
	renderErr := errors.New("ispdfgen down")
	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, renderErr)

	_, err := s.service.Create(s.ctx, s.newRequest(models.TypeUnntak))
	s.ErrorIs(err, renderErr)
}

func (s *ServiceSuite) TestCreateStorageFailureIsNotPublished() {
	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Vurdering{}, fmt.Errorf("%w: insert failed", sentinel.ErrStorage))

	_, err := s.service.Create(s.ctx, s.newRequest(models.TypeIkkeAktuell))
	s.ErrorIs(err, sentinel.ErrStorage)
}

func (s *ServiceSuite) TestCreateSucceedsWhenPublishFails() {
	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	v, err := s.service.Create(s.ctx, s.newRequest(models.TypeOppfylt))
	s.Require().NoError(err)
	s.Equal(models.TypeOppfylt, v.Type)
	s.Contains(s.logs.String(), "failed to publish vurdering")
	s.Contains(s.logs.String(), v.UUID.String())
}

func (s *ServiceSuite) TestCreateStans() {
	req := s.newRequest(models.TypeStans)
	stansdato := models.NewDate(2025, time.April, 9)
	req.Stansdato = &stansdato

	s.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(saveEcho)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().MarkVurderingPublished(gomock.Any(), gomock.Any()).Return(nil)

	v, err := s.service.Create(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(stansdato, *v.Stansdato)
	s.Nil(v.Varsel)
}

func (s *ServiceSuite) unjournalfort(typ models.VurderingType) store.UnjournalfortVurdering {
	req := s.newRequest(typ)
	switch typ {
	case models.TypeForhandsvarsel:
		svarfrist := models.Today(s.now).AddDays(30)
		req.VarselSvarfrist = &svarfrist
	case models.TypeStans:
		stansdato := models.NewDate(2025, time.April, 9)
		req.Stansdato = &stansdato
	}
	v, err := models.New(req, s.now)
	s.Require().NoError(err)
	return store.UnjournalfortVurdering{Vurdering: v, PDF: []byte(v.UUID.String())}
}

func (s *ServiceSuite) TestJournalforVurderingerIsolatesFailures() {
	first := s.unjournalfort(models.TypeForhandsvarsel)
	second := s.unjournalfort(models.TypeStans)
	third := s.unjournalfort(models.TypeOppfylt)
	archiveErr := errors.New("dokarkiv down")

	s.store.EXPECT().ListUnjournalfort(gomock.Any()).
		Return([]store.UnjournalfortVurdering{first, second, third}, nil)
	s.journalforer.EXPECT().Journalfor(gomock.Any(), first.Vurdering, first.PDF).Return(models.JournalpostID("1"), nil)
	s.store.EXPECT().SetJournalpostID(gomock.Any(), first.Vurdering.Journalfor("1")).Return(nil)
	s.journalforer.EXPECT().Journalfor(gomock.Any(), second.Vurdering, second.PDF).Return(models.JournalpostID(""), archiveErr)
	s.journalforer.EXPECT().Journalfor(gomock.Any(), third.Vurdering, third.PDF).Return(models.JournalpostID("3"), nil)
	s.store.EXPECT().SetJournalpostID(gomock.Any(), third.Vurdering.Journalfor("3")).Return(nil)

	results, err := s.service.JournalforVurderinger(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(results, 3)

	ok, failed := batch.Count(results)
	s.Equal(2, ok)
	s.Equal(1, failed)
	s.Equal(models.JournalpostID("1"), results[0].Value.JournalpostID)
	s.ErrorIs(results[1].Err, archiveErr)
	s.False(results[1].Value.IsJournalfort())
	s.Equal(models.JournalpostID("3"), results[2].Value.JournalpostID)
}

func (s *ServiceSuite) TestJournalforVurderingerConsistencyError() {
	item := s.unjournalfort(models.TypeUnntak)
	s.store.EXPECT().ListUnjournalfort(gomock.Any()).Return([]store.UnjournalfortVurdering{item}, nil)
	s.journalforer.EXPECT().Journalfor(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.JournalpostID("9"), nil)
	s.store.EXPECT().SetJournalpostID(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: expected a single row to be updated, got update count 0", sentinel.ErrConsistency))

	results, err := s.service.JournalforVurderinger(s.ctx)
	s.Require().NoError(err)
	s.ErrorIs(results[0].Err, sentinel.ErrConsistency)
}

func (s *ServiceSuite) TestJournalforVurderingerSentinelReference() {
	item := s.unjournalfort(models.TypeOppfylt)
	s.store.EXPECT().ListUnjournalfort(gomock.Any()).Return([]store.UnjournalfortVurdering{item}, nil)
	s.journalforer.EXPECT().Journalfor(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.SentinelJournalpostID, nil)
	s.store.EXPECT().SetJournalpostID(gomock.Any(), item.Vurdering.Journalfor(models.SentinelJournalpostID)).Return(nil)

	results, err := s.service.JournalforVurderinger(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.SentinelJournalpostID, results[0].Value.JournalpostID)
}

func (s *ServiceSuite) TestJournalforVurderingerListFailure() {
	s.store.EXPECT().ListUnjournalfort(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.service.JournalforVurderinger(s.ctx)
	s.Error(err)
}

func (s *ServiceSuite) TestListAndLatest() {
	v := s.unjournalfort(models.TypeOppfylt).Vurdering
	s.store.EXPECT().ListByPersonident(gomock.Any(), models.Personident("12345678910")).Return([]models.Vurdering{v}, nil)
	s.store.EXPECT().LatestByPersonidenter(gomock.Any(), []models.Personident{"12345678910"}).
		Return(map[models.Personident]models.Vurdering{"12345678910": v}, nil)

	list, err := s.service.List(s.ctx, "12345678910")
	s.Require().NoError(err)
	s.Len(list, 1)

	latest, err := s.service.LatestForPersons(s.ctx, []models.Personident{"12345678910"})
	s.Require().NoError(err)
	s.Equal(v.UUID, latest["12345678910"].UUID)
}

func (s *ServiceSuite) TestGetNotFound() {
	id := uuid.New()
	s.store.EXPECT().FindByUUID(gomock.Any(), id).Return(models.Vurdering{}, fmt.Errorf("vurdering %s: %w", id, sentinel.ErrNotFound))

	_, err := s.service.Get(s.ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
