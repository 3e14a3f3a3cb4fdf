package events

import (
	"context"
	"fmt"

	"medvirkning/internal/vurdering/models"
)

// VurderingProducer announces created vurderinger.
type VurderingProducer struct {
	producer Producer
	topic    string
	metrics  *Metrics
}

func NewVurderingProducer(p Producer, topic string, m *Metrics) *VurderingProducer {
	return &VurderingProducer{producer: p, topic: topic, metrics: m}
}

// Publish sends the creation announcement of v and waits for the ack.
func (p *VurderingProducer) Publish(ctx context.Context, v models.Vurdering) error {
	return publish(ctx, p.producer, p.metrics, p.topic, v.Personident, NewVurderingRecord(v))
}

// VarselProducer sends forhåndsvarsel notices to the varselbus.
type VarselProducer struct {
	producer Producer
	topic    string
	metrics  *Metrics
}

func NewVarselProducer(p Producer, topic string, m *Metrics) *VarselProducer {
	return &VarselProducer{producer: p, topic: topic, metrics: m}
}

// Publish sends the notice of a filed varsel and waits for the ack.
func (p *VarselProducer) Publish(ctx context.Context, uv models.UnpublishedVarsel) error {
	return publish(ctx, p.producer, p.metrics, p.topic, uv.Personident, NewArbeidstakerHendelse(uv))
}

func publish(ctx context.Context, producer Producer, m *Metrics, topic string, key models.Personident, value any) error {
	rec, err := newRecord(topic, key, value)
	if err != nil {
		m.IncPublished(topic, false)
		return err
	}
	if err := producer.ProduceSync(ctx, rec).FirstErr(); err != nil {
		m.IncPublished(topic, false)
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	m.IncPublished(topic, true)
	return nil
}
