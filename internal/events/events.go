// Package events publishes vurdering and varsel records to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"medvirkning/internal/vurdering/models"
)

// Producer sends records and blocks until the broker acknowledged them.
// *kgo.Client satisfies it.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// VurderingRecord announces a created vurdering.
type VurderingRecord struct {
	UUID          uuid.UUID         `json:"uuid"`
	Personident   string            `json:"personident"`
	Veilederident string            `json:"veilederident"`
	CreatedAt     time.Time         `json:"createdAt"`
	Begrunnelse   string            `json:"begrunnelse"`
	Varsel        *models.Varsel    `json:"varsel"`
	VurderingType VurderingTypeJSON `json:"vurderingType"`
}

type VurderingTypeJSON struct {
	Value    models.VurderingType `json:"value"`
	IsActive bool                 `json:"isActive"`
}

// NewVurderingRecord maps v to its wire form.
func NewVurderingRecord(v models.Vurdering) VurderingRecord {
	return VurderingRecord{
		UUID:          v.UUID,
		Personident:   string(v.Personident),
		Veilederident: string(v.Veilederident),
		CreatedAt:     v.CreatedAt,
		Begrunnelse:   v.Begrunnelse,
		Varsel:        v.Varsel,
		VurderingType: VurderingTypeJSON{Value: v.Type, IsActive: v.Type.IsActive()},
	}
}

// HendelseForhandsvarsel is the varselbus type of a forhåndsvarsel notice.
const HendelseForhandsvarsel = "SM_FORHANDSVARSEL_MANGLENDE_MEDVIRKNING"

// ArbeidstakerHendelse asks the varsel service to notify the person.
type ArbeidstakerHendelse struct {
	JSONType        string     `json:"@type"`
	Type            string     `json:"type"`
	Data            VarselData `json:"data"`
	ArbeidstakerFnr string     `json:"arbeidstakerFnr"`
	Orgnummer       *string    `json:"orgnummer"`
}

type VarselData struct {
	Journalpost *VarselDataJournalpost `json:"journalpost"`
}

type VarselDataJournalpost struct {
	UUID string `json:"uuid"`
	ID   string `json:"id"`
}

// NewArbeidstakerHendelse maps a filed varsel to its wire form.
func NewArbeidstakerHendelse(uv models.UnpublishedVarsel) ArbeidstakerHendelse {
	return ArbeidstakerHendelse{
		JSONType:        "ArbeidstakerHendelse",
		Type:            HendelseForhandsvarsel,
		ArbeidstakerFnr: string(uv.Personident),
		Data: VarselData{Journalpost: &VarselDataJournalpost{
			UUID: uv.Varsel.UUID.String(),
			ID:   string(uv.JournalpostID),
		}},
	}
}

func newRecord(topic string, p models.Personident, value any) (*kgo.Record, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal %s record: %w", topic, err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(p.RecordKey()),
		Value: b,
	}, nil
}
