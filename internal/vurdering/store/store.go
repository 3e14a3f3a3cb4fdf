package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/sentinel"
	txcontext "medvirkning/pkg/platform/tx"
)

// Store persists vurderinger in PostgreSQL. A vurdering row, its optional
// varsel row and its pdf row are always written together in one transaction.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new PostgreSQL vurdering store.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const selectVurdering = `
	SELECT v.id, v.uuid, v.personident, v.created_at, v.veilederident, v.type,
	       v.begrunnelse, v.document, v.journalpost_id, v.stansdato,
	       va.uuid, va.created_at, va.svarfrist
	FROM vurdering v
	LEFT JOIN varsel va ON va.vurdering_id = v.id`

// Save inserts the vurdering, its varsel (forhåndsvarsel only) and the
// rendered pdf. Any failure rolls back every insert and is reported as
// sentinel.ErrStorage. The returned snapshot carries the stored timestamps.
func (s *Store) Save(ctx context.Context, v models.Vurdering, pdf []byte) (models.Vurdering, error) {
	saved := v
	err := txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		id, createdAt, err := s.insertVurdering(ctx, v)
		if err != nil {
			return err
		}
		saved.CreatedAt = createdAt

		if v.Type == models.TypeForhandsvarsel {
			if v.Varsel == nil {
				return errors.New("forhandsvarsel without varsel")
			}
			varsel, err := s.insertVarsel(ctx, id, *v.Varsel)
			if err != nil {
				return err
			}
			saved.Varsel = &varsel
		}

		return s.insertPDF(ctx, id, createdAt, pdf)
	})
	if err != nil {
		return models.Vurdering{}, fmt.Errorf("%w: save vurdering %s: %w", sentinel.ErrStorage, v.UUID, err)
	}
	return saved, nil
}

func (s *Store) insertVurdering(ctx context.Context, v models.Vurdering) (int64, time.Time, error) {
	document, err := json.Marshal(v.Document)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("marshal document: %w", err)
	}
	var stansdato any
	if v.Type == models.TypeStans && v.Stansdato != nil {
		stansdato = *v.Stansdato
	}
	createdAt := v.CreatedAt.UTC().Truncate(time.Microsecond)

	const query = `
		INSERT INTO vurdering (
			uuid, personident, created_at, updated_at, veilederident, type,
			begrunnelse, document, journalpost_id, published_at, stansdato
		) VALUES ($1, $2, $3, $3, $4, $5, $6, $7::jsonb, NULL, NULL, $8)
		RETURNING id, created_at`

	var id int64
	var stored time.Time
	err = s.execer(ctx).QueryRowContext(ctx, query,
		v.UUID.String(),
		string(v.Personident),
		createdAt,
		string(v.Veilederident),
		string(v.Type),
		v.Begrunnelse,
		string(document),
		stansdato,
	).Scan(&id, &stored)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("insert vurdering: %w", err)
	}
	return id, stored, nil
}

func (s *Store) insertVarsel(ctx context.Context, vurderingID int64, varsel models.Varsel) (models.Varsel, error) {
	const query = `
		INSERT INTO varsel (uuid, created_at, updated_at, vurdering_id, svarfrist, published_at)
		VALUES ($1, $2, $2, $3, $4, NULL)
		RETURNING created_at`

	var stored time.Time
	err := s.execer(ctx).QueryRowContext(ctx, query,
		varsel.UUID.String(),
		varsel.CreatedAt.UTC().Truncate(time.Microsecond),
		vurderingID,
		varsel.Svarfrist,
	).Scan(&stored)
	if err != nil {
		return models.Varsel{}, fmt.Errorf("insert varsel: %w", err)
	}
	varsel.CreatedAt = stored
	return varsel, nil
}

func (s *Store) insertPDF(ctx context.Context, vurderingID int64, createdAt time.Time, pdf []byte) error {
	const query = `
		INSERT INTO vurdering_pdf (uuid, created_at, vurdering_id, pdf)
		VALUES ($1, $2, $3, $4)`

	if _, err := s.execer(ctx).ExecContext(ctx, query, uuid.NewString(), createdAt, vurderingID, pdf); err != nil {
		return fmt.Errorf("insert vurdering pdf: %w", err)
	}
	return nil
}

// ListByPersonident returns the person's vurderinger, newest first.
func (s *Store) ListByPersonident(ctx context.Context, personident models.Personident) ([]models.Vurdering, error) {
	query := selectVurdering + `
		WHERE v.personident = $1
		ORDER BY v.created_at DESC, v.id DESC`

	rows, err := s.execer(ctx).QueryContext(ctx, query, string(personident))
	if err != nil {
		return nil, fmt.Errorf("list vurderinger: %w", err)
	}
	defer rows.Close()

	var out []models.Vurdering
	for rows.Next() {
		var r vurderingRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, fmt.Errorf("scan vurdering: %w", err)
		}
		v, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vurderinger: %w", err)
	}
	return out, nil
}

// FindByUUID returns sentinel.ErrNotFound when no vurdering has the uuid.
func (s *Store) FindByUUID(ctx context.Context, id uuid.UUID) (models.Vurdering, error) {
	query := selectVurdering + `
		WHERE v.uuid = $1`

	var r vurderingRow
	err := s.execer(ctx).QueryRowContext(ctx, query, id.String()).Scan(r.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vurdering{}, fmt.Errorf("vurdering %s: %w", id, sentinel.ErrNotFound)
	}
	if err != nil {
		return models.Vurdering{}, fmt.Errorf("find vurdering: %w", err)
	}
	return r.toModel()
}

// LatestByPersonidenter returns the newest vurdering of every person that has
// one. Persons without vurderinger are absent from the map.
func (s *Store) LatestByPersonidenter(ctx context.Context, personidenter []models.Personident) (map[models.Personident]models.Vurdering, error) {
	out := make(map[models.Personident]models.Vurdering, len(personidenter))
	if len(personidenter) == 0 {
		return out, nil
	}
	idents := make([]string, len(personidenter))
	for i, p := range personidenter {
		idents[i] = string(p)
	}

	const query = `
		SELECT DISTINCT ON (v.personident)
		       v.id, v.uuid, v.personident, v.created_at, v.veilederident, v.type,
		       v.begrunnelse, v.document, v.journalpost_id, v.stansdato,
		       va.uuid, va.created_at, va.svarfrist
		FROM vurdering v
		LEFT JOIN varsel va ON va.vurdering_id = v.id
		WHERE v.personident = ANY($1)
		ORDER BY v.personident, v.created_at DESC, v.id DESC`

	rows, err := s.execer(ctx).QueryContext(ctx, query, pq.Array(idents))
	if err != nil {
		return nil, fmt.Errorf("latest vurderinger: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r vurderingRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, fmt.Errorf("scan vurdering: %w", err)
		}
		v, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out[v.Personident] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vurderinger: %w", err)
	}
	return out, nil
}

// UnjournalfortVurdering pairs a vurdering awaiting filing with its pdf.
type UnjournalfortVurdering struct {
	Vurdering models.Vurdering
	PDF       []byte
}

// ListUnjournalfort returns every vurdering without a journalpost id.
func (s *Store) ListUnjournalfort(ctx context.Context) ([]UnjournalfortVurdering, error) {
	const query = `
		SELECT v.id, v.uuid, v.personident, v.created_at, v.veilederident, v.type,
		       v.begrunnelse, v.document, v.journalpost_id, v.stansdato,
		       va.uuid, va.created_at, va.svarfrist,
		       p.pdf
		FROM vurdering v
		INNER JOIN vurdering_pdf p ON p.vurdering_id = v.id
		LEFT JOIN varsel va ON va.vurdering_id = v.id
		WHERE v.journalpost_id IS NULL
		ORDER BY v.id`

	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unjournalfort: %w", err)
	}
	defer rows.Close()

	var out []UnjournalfortVurdering
	for rows.Next() {
		var r vurderingRow
		var pdf []byte
		if err := rows.Scan(append(r.dest(), &pdf)...); err != nil {
			return nil, fmt.Errorf("scan unjournalfort: %w", err)
		}
		v, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, UnjournalfortVurdering{Vurdering: v, PDF: pdf})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unjournalfort: %w", err)
	}
	return out, nil
}

// SetJournalpostID stores the archive reference of v. The reference is
// write-once: updating a vurdering that already has one affects no rows and
// fails with sentinel.ErrConsistency.
func (s *Store) SetJournalpostID(ctx context.Context, v models.Vurdering) error {
	if !v.IsJournalfort() {
		return fmt.Errorf("set journalpost id on %s: %w", v.UUID, sentinel.ErrValidation)
	}
	const query = `
		UPDATE vurdering
		SET journalpost_id = $1, updated_at = $2
		WHERE uuid = $3 AND journalpost_id IS NULL`

	res, err := s.execer(ctx).ExecContext(ctx, query, string(v.JournalpostID), s.now(), v.UUID.String())
	if err != nil {
		return fmt.Errorf("set journalpost id: %w", err)
	}
	return expectSingleRow(res)
}

// MarkVurderingPublished records that the creation announcement of the
// vurdering was acknowledged.
func (s *Store) MarkVurderingPublished(ctx context.Context, vurderingUUID uuid.UUID) error {
	const query = `
		UPDATE vurdering
		SET published_at = $1, updated_at = $1
		WHERE uuid = $2 AND published_at IS NULL`

	res, err := s.execer(ctx).ExecContext(ctx, query, s.now(), vurderingUUID.String())
	if err != nil {
		return fmt.Errorf("mark vurdering published: %w", err)
	}
	return expectSingleRow(res)
}

// ListUnpublishedVarsler returns varsler whose vurdering is filed but whose
// notice has not been published. Publishing is gated on filing.
func (s *Store) ListUnpublishedVarsler(ctx context.Context) ([]models.UnpublishedVarsel, error) {
	const query = `
		SELECT v.personident, v.journalpost_id, va.uuid, va.created_at, va.svarfrist
		FROM varsel va
		INNER JOIN vurdering v ON va.vurdering_id = v.id
		WHERE v.journalpost_id IS NOT NULL AND va.published_at IS NULL
		ORDER BY va.id`

	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unpublished varsler: %w", err)
	}
	defer rows.Close()

	var out []models.UnpublishedVarsel
	for rows.Next() {
		var (
			personident, journalpostID, varselUUID string
			createdAt                              time.Time
			svarfrist                              models.Date
		)
		if err := rows.Scan(&personident, &journalpostID, &varselUUID, &createdAt, &svarfrist); err != nil {
			return nil, fmt.Errorf("scan unpublished varsel: %w", err)
		}
		id, err := uuid.Parse(varselUUID)
		if err != nil {
			return nil, fmt.Errorf("parse varsel uuid: %w", err)
		}
		out = append(out, models.UnpublishedVarsel{
			Personident:   models.Personident(personident),
			JournalpostID: models.JournalpostID(journalpostID),
			Varsel: models.Varsel{
				UUID:      id,
				CreatedAt: createdAt,
				Svarfrist: svarfrist,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unpublished varsler: %w", err)
	}
	return out, nil
}

// MarkVarselPublished flips the write-once published marker of a varsel.
func (s *Store) MarkVarselPublished(ctx context.Context, varselUUID uuid.UUID) error {
	const query = `
		UPDATE varsel
		SET published_at = $1, updated_at = $1
		WHERE uuid = $2 AND published_at IS NULL`

	res, err := s.execer(ctx).ExecContext(ctx, query, s.now(), varselUUID.String())
	if err != nil {
		return fmt.Errorf("mark varsel published: %w", err)
	}
	return expectSingleRow(res)
}

// ReassignPersonident moves every given vurdering to newIdent in a single
// transaction. A vurdering that is not updated aborts the whole batch.
func (s *Store) ReassignPersonident(ctx context.Context, newIdent models.Personident, vurderinger []models.Vurdering) error {
	const query = `
		UPDATE vurdering
		SET personident = $1, updated_at = $2
		WHERE uuid = $3`

	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		now := s.now()
		for _, v := range vurderinger {
			res, err := s.execer(ctx).ExecContext(ctx, query, string(newIdent), now, v.UUID.String())
			if err != nil {
				return fmt.Errorf("reassign vurdering %s: %w", v.UUID, err)
			}
			if err := expectSingleRow(res); err != nil {
				return fmt.Errorf("reassign vurdering %s: %w", v.UUID, err)
			}
		}
		return nil
	})
}

func expectSingleRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("%w: expected a single row to be updated, got update count %d", sentinel.ErrConsistency, n)
	}
	return nil
}
