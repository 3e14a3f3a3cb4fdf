package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medvirkning/internal/vurdering/models"
)

// vurderingRow mirrors the column list of selectVurdering.
type vurderingRow struct {
	id              int64
	uuid            string
	personident     string
	createdAt       time.Time
	veilederident   string
	vurderingType   string
	begrunnelse     string
	document        []byte
	journalpostID   sql.NullString
	stansdato       sql.Null[models.Date]
	varselUUID      sql.NullString
	varselCreatedAt sql.NullTime
	varselSvarfrist sql.Null[models.Date]
}

func (r *vurderingRow) dest() []any {
	return []any{
		&r.id, &r.uuid, &r.personident, &r.createdAt, &r.veilederident, &r.vurderingType,
		&r.begrunnelse, &r.document, &r.journalpostID, &r.stansdato,
		&r.varselUUID, &r.varselCreatedAt, &r.varselSvarfrist,
	}
}

func (r vurderingRow) toModel() (models.Vurdering, error) {
	id, err := uuid.Parse(r.uuid)
	if err != nil {
		return models.Vurdering{}, fmt.Errorf("parse vurdering uuid: %w", err)
	}
	typ, err := models.ParseVurderingType(r.vurderingType)
	if err != nil {
		return models.Vurdering{}, fmt.Errorf("vurdering %s: %w", id, err)
	}
	var document []models.DocumentComponent
	if err := json.Unmarshal(r.document, &document); err != nil {
		return models.Vurdering{}, fmt.Errorf("unmarshal document of %s: %w", id, err)
	}

	v := models.Vurdering{
		UUID:          id,
		Personident:   models.Personident(r.personident),
		Veilederident: models.Veilederident(r.veilederident),
		CreatedAt:     r.createdAt,
		Type:          typ,
		Begrunnelse:   r.begrunnelse,
		Document:      document,
		JournalpostID: models.JournalpostID(r.journalpostID.String),
	}

	switch typ {
	case models.TypeForhandsvarsel:
		if !r.varselUUID.Valid {
			return models.Vurdering{}, fmt.Errorf("forhandsvarsel %s has no varsel", id)
		}
		varselID, err := uuid.Parse(r.varselUUID.String)
		if err != nil {
			return models.Vurdering{}, fmt.Errorf("parse varsel uuid: %w", err)
		}
		v.Varsel = &models.Varsel{
			UUID:      varselID,
			CreatedAt: r.varselCreatedAt.Time,
			Svarfrist: r.varselSvarfrist.V,
		}
	case models.TypeStans:
		if r.stansdato.Valid {
			stansdato := r.stansdato.V
			v.Stansdato = &stansdato
		}
	}
	return v, nil
}
