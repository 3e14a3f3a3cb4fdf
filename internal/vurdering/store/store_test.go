package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/sentinel"
)

var vurderingColumns = []string{
	"id", "uuid", "personident", "created_at", "veilederident", "type",
	"begrunnelse", "document", "journalpost_id", "stansdato",
	"varsel_uuid", "varsel_created_at", "varsel_svarfrist",
}

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *Store
	now   time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.db = db
	s.mock = mock
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.store = New(db)
	s.store.now = func() time.Time { return s.now }
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	_ = s.db.Close()
}

func (s *StoreSuite) newVurdering(typ models.VurderingType) models.Vurdering {
	req := models.NewVurdering{
		Type:          typ,
		Personident:   "12345678910",
		Veilederident: "Z999999",
		Begrunnelse:   "Fin begrunnelse",
		Document: []models.DocumentComponent{
			{Type: models.DocumentParagraph, Texts: []string{"Tekst"}},
		},
	}
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
	return v
}

func (s *StoreSuite) TestSaveForhandsvarselInsertsAllRowsInOneTransaction() {
	v := s.newVurdering(models.TypeForhandsvarsel)
	pdf := []byte{0x25, 0x50, 0x44, 0x46}

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO vurdering \(`).
		WithArgs(v.UUID.String(), "12345678910", sqlmock.AnyArg(), "Z999999", "FORHANDSVARSEL",
			"Fin begrunnelse", sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, s.now))
	s.mock.ExpectQuery(`INSERT INTO varsel`).
		WithArgs(v.Varsel.UUID.String(), sqlmock.AnyArg(), int64(7), v.Varsel.Svarfrist.String()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(s.now))
	s.mock.ExpectExec(`INSERT INTO vurdering_pdf`).
		WithArgs(sqlmock.AnyArg(), s.now, int64(7), pdf).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	saved, err := s.store.Save(s.ctx, v, pdf)
	s.Require().NoError(err)
	s.Equal(v.UUID, saved.UUID)
	s.Require().NotNil(saved.Varsel)
	s.Equal(v.Varsel.UUID, saved.Varsel.UUID)
}

func (s *StoreSuite) TestSaveStansStoresStansdato() {
	v := s.newVurdering(models.TypeStans)

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO vurdering \(`).
		WithArgs(v.UUID.String(), "12345678910", sqlmock.AnyArg(), "Z999999", "STANS",
			"Fin begrunnelse", sqlmock.AnyArg(), "2025-04-09").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, s.now))
	s.mock.ExpectExec(`INSERT INTO vurdering_pdf`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	saved, err := s.store.Save(s.ctx, v, []byte("pdf"))
	s.Require().NoError(err)
	s.Nil(saved.Varsel)
	s.Equal(models.NewDate(2025, time.April, 9), *saved.Stansdato)
}

func (s *StoreSuite) TestSaveRollsBackWhenPDFInsertFails() {
	v := s.newVurdering(models.TypeForhandsvarsel)

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO vurdering \(`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, s.now))
	s.mock.ExpectQuery(`INSERT INTO varsel`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(s.now))
	s.mock.ExpectExec(`INSERT INTO vurdering_pdf`).
		WillReturnError(errors.New("disk full"))
	s.mock.ExpectRollback()

	_, err := s.store.Save(s.ctx, v, []byte("pdf"))
	s.Require().Error(err)
	s.ErrorIs(err, sentinel.ErrStorage)
	s.Contains(err.Error(), "disk full")
}

func (s *StoreSuite) TestSaveRollsBackWhenVurderingInsertFails() {
	v := s.newVurdering(models.TypeOppfylt)

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO vurdering \(`).
		WillReturnError(errors.New("duplicate key"))
	s.mock.ExpectRollback()

	_, err := s.store.Save(s.ctx, v, []byte("pdf"))
	s.ErrorIs(err, sentinel.ErrStorage)
}

func (s *StoreSuite) TestListByPersonidentReconstructsVariants() {
	varselUUID := uuid.New()
	forhandsvarselUUID := uuid.New()
	stansUUID := uuid.New()
	svarfrist := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	stansdato := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)
	document := []byte(`[{"type":"PARAGRAPH","title":null,"texts":["Tekst"]}]`)

	rows := sqlmock.NewRows(vurderingColumns).
		AddRow(2, stansUUID.String(), "12345678910", s.now.Add(time.Hour), "Z999999", "STANS",
			"stans", document, nil, stansdato, nil, nil, nil).
		AddRow(1, forhandsvarselUUID.String(), "12345678910", s.now, "Z999999", "FORHANDSVARSEL",
			"varsel", document, "123", nil, varselUUID.String(), s.now, svarfrist)
	s.mock.ExpectQuery(`WHERE v.personident = \$1`).
		WithArgs("12345678910").
		WillReturnRows(rows)

	got, err := s.store.ListByPersonident(s.ctx, "12345678910")
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	s.Equal(models.TypeStans, got[0].Type)
	s.Equal(models.NewDate(2025, time.April, 9), *got[0].Stansdato)
	s.False(got[0].IsJournalfort())

	s.Equal(models.TypeForhandsvarsel, got[1].Type)
	s.Require().NotNil(got[1].Varsel)
	s.Equal(varselUUID, got[1].Varsel.UUID)
	s.Equal(models.NewDate(2025, time.April, 7), got[1].Varsel.Svarfrist)
	s.Equal(models.JournalpostID("123"), got[1].JournalpostID)
	s.Equal([]string{"Tekst"}, got[1].Document[0].Texts)
}

func (s *StoreSuite) TestSetJournalpostIDRequiresSingleRow() {
	v := s.newVurdering(models.TypeOppfylt).Journalfor("42")

	s.mock.ExpectExec(`UPDATE vurdering\s+SET journalpost_id`).
		WithArgs("42", s.now, v.UUID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.Require().NoError(s.store.SetJournalpostID(s.ctx, v))

	s.mock.ExpectExec(`UPDATE vurdering\s+SET journalpost_id`).
		WithArgs("42", s.now, v.UUID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := s.store.SetJournalpostID(s.ctx, v)
	s.ErrorIs(err, sentinel.ErrConsistency)
	s.Contains(err.Error(), "got update count 0")
}

func (s *StoreSuite) TestSetJournalpostIDRejectsEmptyReference() {
	v := s.newVurdering(models.TypeOppfylt)
	s.ErrorIs(s.store.SetJournalpostID(s.ctx, v), sentinel.ErrValidation)
}

func (s *StoreSuite) TestMarkVarselPublishedIsWriteOnce() {
	id := uuid.New()
	s.mock.ExpectExec(`UPDATE varsel`).
		WithArgs(s.now, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := s.store.MarkVarselPublished(s.ctx, id)
	s.ErrorIs(err, sentinel.ErrConsistency)
	s.Contains(err.Error(), "got update count 2")
}

func (s *StoreSuite) TestReassignPersonidentRollsBackOnMissingRow() {
	first := s.newVurdering(models.TypeOppfylt)
	second := s.newVurdering(models.TypeUnntak)

	s.mock.ExpectBegin()
	s.mock.ExpectExec(`UPDATE vurdering\s+SET personident`).
		WithArgs("10987654321", s.now, first.UUID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec(`UPDATE vurdering\s+SET personident`).
		WithArgs("10987654321", s.now, second.UUID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectRollback()

	err := s.store.ReassignPersonident(s.ctx, "10987654321", []models.Vurdering{first, second})
	s.ErrorIs(err, sentinel.ErrConsistency)
}

func (s *StoreSuite) TestListUnpublishedVarsler() {
	varselUUID := uuid.New()
	s.mock.ExpectQuery(`WHERE v.journalpost_id IS NOT NULL AND va.published_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"personident", "journalpost_id", "uuid", "created_at", "svarfrist"}).
			AddRow("12345678910", "99", varselUUID.String(), s.now, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))

	got, err := s.store.ListUnpublishedVarsler(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(models.Personident("12345678910"), got[0].Personident)
	s.Equal(models.JournalpostID("99"), got[0].JournalpostID)
	s.Equal(varselUUID, got[0].Varsel.UUID)
	s.Equal(models.NewDate(2025, time.April, 1), got[0].Varsel.Svarfrist)
}

func (s *StoreSuite) TestFindByUUIDNotFound() {
	id := uuid.New()
	s.mock.ExpectQuery(`WHERE v.uuid = \$1`).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(vurderingColumns))

	_, err := s.store.FindByUUID(s.ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func TestLatestByPersonidenterSkipsQueryForEmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	got, err := New(db).LatestByPersonidenter(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
