package handler

import (
	"time"

	"github.com/google/uuid"

	"medvirkning/internal/vurdering/models"
)

const PersonidentHeader = "nav-personident"

type NewVurderingRequest struct {
	Personident     string                     `json:"personident" validate:"required,len=11,numeric"`
	VurderingType   string                     `json:"vurderingType" validate:"required,oneof=FORHANDSVARSEL OPPFYLT STANS IKKE_AKTUELL UNNTAK"`
	Begrunnelse     string                     `json:"begrunnelse"`
	Document        []models.DocumentComponent `json:"document" validate:"dive"`
	VarselSvarfrist *models.Date               `json:"varselSvarfrist"`
	Stansdato       *models.Date               `json:"stansdato"`
}

// toModel pairs the request with the authenticated caseworker.
func (r NewVurderingRequest) toModel(veilederident string) models.NewVurdering {
	return models.NewVurdering{
		Type:            models.VurderingType(r.VurderingType),
		Personident:     models.Personident(r.Personident),
		Veilederident:   models.Veilederident(veilederident),
		Begrunnelse:     r.Begrunnelse,
		Document:        r.Document,
		VarselSvarfrist: r.VarselSvarfrist,
		Stansdato:       r.Stansdato,
	}
}

type VurderingerRequest struct {
	Personidenter []string `json:"personidenter" validate:"required,dive,len=11,numeric"`
}

type VarselResponse struct {
	UUID      uuid.UUID   `json:"uuid"`
	CreatedAt time.Time   `json:"createdAt"`
	Svarfrist models.Date `json:"svarfrist"`
}

type VurderingResponse struct {
	UUID          uuid.UUID                  `json:"uuid"`
	Personident   string                     `json:"personident"`
	Veilederident string                     `json:"veilederident"`
	CreatedAt     time.Time                  `json:"createdAt"`
	Type          string                     `json:"type"`
	Begrunnelse   string                     `json:"begrunnelse"`
	Document      []models.DocumentComponent `json:"document"`
	JournalpostID *string                    `json:"journalpostId"`
	Varsel        *VarselResponse            `json:"varsel"`
	Stansdato     *models.Date               `json:"stansdato,omitempty"`
}

type VurderingerResponse struct {
	Vurderinger map[string]VurderingResponse `json:"vurderinger"`
}

func toResponse(v models.Vurdering) VurderingResponse {
	resp := VurderingResponse{
		UUID:          v.UUID,
		Personident:   v.Personident.String(),
		Veilederident: v.Veilederident.String(),
		CreatedAt:     v.CreatedAt,
		Type:          v.Type.String(),
		Begrunnelse:   v.Begrunnelse,
		Document:      v.Document,
		Stansdato:     v.Stansdato,
	}
	if v.IsJournalfort() {
		id := v.JournalpostID.String()
		resp.JournalpostID = &id
	}
	if v.Varsel != nil {
		resp.Varsel = &VarselResponse{
			UUID:      v.Varsel.UUID,
			CreatedAt: v.Varsel.CreatedAt,
			Svarfrist: v.Varsel.Svarfrist,
		}
	}
	return resp
}
