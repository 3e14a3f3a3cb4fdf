package identhendelse

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"medvirkning/internal/identhendelse/mocks"
	"medvirkning/internal/vurdering/models"
)

const (
	activeIdent   = models.Personident("12345678910")
	inactiveIdent = models.Personident("10987654321")
	olderIdent    = models.Personident("11111111333")
)

func hendelse(active string, inactive ...string) Identhendelse {
	var ids []Identifikator
	if active != "" {
		ids = append(ids, Identifikator{Idnummer: active, Type: TypeFolkeregisterident, Gjeldende: true})
	}
	for _, id := range inactive {
		ids = append(ids, Identifikator{Idnummer: id, Type: TypeFolkeregisterident, Gjeldende: false})
	}
	ids = append(ids, Identifikator{Idnummer: "2222222222222", Type: "AKTORID", Gjeldende: true})
	return Identhendelse{Identifikatorer: ids}
}

func TestFolkeregisteridenter(t *testing.T) {
	active, inactive := hendelse(string(activeIdent), string(inactiveIdent), string(olderIdent)).Folkeregisteridenter()
	assert.Equal(t, activeIdent, active)
	assert.Equal(t, []models.Personident{inactiveIdent, olderIdent}, inactive)

	active, inactive = hendelse("", string(inactiveIdent)).Folkeregisteridenter()
	assert.Empty(t, active)
	assert.Len(t, inactive, 1)
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *mocks.MockStore
	logs    *bytes.Buffer
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = mocks.NewMockStore(gomock.NewController(s.T()))
	s.logs = &bytes.Buffer{}
	s.service = NewService(s.store, slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func vurderingFor(p models.Personident) models.Vurdering {
	return models.Vurdering{UUID: uuid.New(), Personident: p, Type: models.TypeOppfylt}
}

func (s *ServiceSuite) TestReassignsUnionOfInactiveIdents() {
	first := vurderingFor(inactiveIdent)
	second := vurderingFor(olderIdent)
	third := vurderingFor(olderIdent)

	s.store.EXPECT().ListByPersonident(gomock.Any(), inactiveIdent).Return([]models.Vurdering{first}, nil)
	s.store.EXPECT().ListByPersonident(gomock.Any(), olderIdent).Return([]models.Vurdering{second, third}, nil)
	s.store.EXPECT().ReassignPersonident(gomock.Any(), activeIdent, []models.Vurdering{first, second, third}).Return(nil)

	err := s.service.Handle(s.ctx, hendelse(string(activeIdent), string(inactiveIdent), string(olderIdent)))
	s.Require().NoError(err)
	s.Contains(s.logs.String(), `"count":3`)
}

func (s *ServiceSuite) TestNoStaleVurderingerIsNoop() {
	s.store.EXPECT().ListByPersonident(gomock.Any(), inactiveIdent).Return(nil, nil)

	s.Require().NoError(s.service.Handle(s.ctx, hendelse(string(activeIdent), string(inactiveIdent))))
}

func (s *ServiceSuite) TestMissingActiveIdentIsDiscarded() {
	s.Require().NoError(s.service.Handle(s.ctx, hendelse("", string(inactiveIdent))))
	s.Contains(s.logs.String(), "no active ident")
}

func (s *ServiceSuite) TestStoreFailurePropagates() {
	s.store.EXPECT().ListByPersonident(gomock.Any(), inactiveIdent).Return([]models.Vurdering{vurderingFor(inactiveIdent)}, nil)
	s.store.EXPECT().ReassignPersonident(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))

	err := s.service.Handle(s.ctx, hendelse(string(activeIdent), string(inactiveIdent)))
	s.ErrorContains(err, "tx failed")
}
