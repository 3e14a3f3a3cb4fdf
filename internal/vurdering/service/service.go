// Package service orchestrates creation, listing and filing of vurderinger.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"medvirkning/internal/vurdering/metrics"
	"medvirkning/internal/vurdering/models"
	"medvirkning/internal/vurdering/store"
	"medvirkning/pkg/platform/batch"
	"medvirkning/pkg/platform/sentinel"
	"medvirkning/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Renderer,Journalforer,Publisher

var tracer = otel.Tracer("medvirkning/vurdering")

type Store interface {
	Save(ctx context.Context, v models.Vurdering, pdf []byte) (models.Vurdering, error)
	ListByPersonident(ctx context.Context, personident models.Personident) ([]models.Vurdering, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (models.Vurdering, error)
	LatestByPersonidenter(ctx context.Context, personidenter []models.Personident) (map[models.Personident]models.Vurdering, error)
	ListUnjournalfort(ctx context.Context) ([]store.UnjournalfortVurdering, error)
	SetJournalpostID(ctx context.Context, v models.Vurdering) error
	MarkVurderingPublished(ctx context.Context, vurderingUUID uuid.UUID) error
}

// Renderer produces the letter of a vurdering.
type Renderer interface {
	Render(ctx context.Context, v models.Vurdering) ([]byte, error)
}

// Journalforer files a vurdering and returns its archive reference.
type Journalforer interface {
	Journalfor(ctx context.Context, v models.Vurdering, pdf []byte) (models.JournalpostID, error)
}

// Publisher announces created vurderinger.
type Publisher interface {
	Publish(ctx context.Context, v models.Vurdering) error
}

type Service struct {
	store        Store
	renderer     Renderer
	journalforer Journalforer
	publisher    Publisher
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(store Store, renderer Renderer, journalforer Journalforer, publisher Publisher, opts ...Option) *Service {
	s := &Service{
		store:        store,
		renderer:     renderer,
		journalforer: journalforer,
		publisher:    publisher,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the request, renders the letter and stores the vurdering
// with its pdf. The announcement is sent after the commit; failing to send it
// is logged and never fails the creation.
func (s *Service) Create(ctx context.Context, req models.NewVurdering) (models.Vurdering, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "vurdering.Create", trace.WithAttributes(
		attribute.String("vurdering.type", string(req.Type)),
	))
	defer span.End()

	v, err := models.New(req, requestcontext.Now(ctx))
	if err != nil {
		span.SetStatus(codes.Error, "invalid vurdering")
		return models.Vurdering{}, err
	}
	span.SetAttributes(attribute.String("vurdering.uuid", v.UUID.String()))

	pdf, err := s.renderer.Render(ctx, v)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return models.Vurdering{}, fmt.Errorf("render vurdering: %w", err)
	}

	saved, err := s.store.Save(ctx, v, pdf)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return models.Vurdering{}, err
	}
	s.metrics.IncCreated(string(saved.Type))
	s.metrics.ObserveCreateLatency(time.Since(start))

	s.announce(ctx, saved)
	return saved, nil
}

func (s *Service) announce(ctx context.Context, v models.Vurdering) {
	if err := s.publisher.Publish(ctx, v); err != nil {
		s.metrics.IncPublishFailure()
		s.logger.ErrorContext(ctx, "failed to publish vurdering",
			"vurdering_uuid", v.UUID,
			"call_id", requestcontext.CallID(ctx),
			"error", err,
		)
		return
	}
	if err := s.store.MarkVurderingPublished(ctx, v.UUID); err != nil {
		s.countConsistency(err, "mark_vurdering_published")
		s.metrics.IncPublishFailure()
		s.logger.ErrorContext(ctx, "failed to mark vurdering published",
			"vurdering_uuid", v.UUID,
			"error", err,
		)
	}
}

// List returns the person's vurderinger, newest first.
func (s *Service) List(ctx context.Context, personident models.Personident) ([]models.Vurdering, error) {
	return s.store.ListByPersonident(ctx, personident)
}

// Get returns one vurdering or an error wrapping sentinel.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.Vurdering, error) {
	return s.store.FindByUUID(ctx, id)
}

// LatestForPersons returns the newest vurdering of every person that has one.
func (s *Service) LatestForPersons(ctx context.Context, personidenter []models.Personident) (map[models.Personident]models.Vurdering, error) {
	return s.store.LatestByPersonidenter(ctx, personidenter)
}

// JournalforVurderinger files every unfiled vurdering. Each item succeeds or
// fails on its own; a failed item stays unfiled for the next scan.
func (s *Service) JournalforVurderinger(ctx context.Context) ([]batch.Result[models.Vurdering], error) {
	ctx, span := tracer.Start(ctx, "vurdering.JournalforVurderinger")
	defer span.End()

	pending, err := s.store.ListUnjournalfort(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list unjournalfort: %w", err)
	}
	span.SetAttributes(attribute.Int("vurdering.pending", len(pending)))

	results := make([]batch.Result[models.Vurdering], 0, len(pending))
	for _, item := range pending {
		r := s.journalforOne(ctx, item)
		s.metrics.IncJournalfort(r.Succeeded())
		results = append(results, r)
	}
	return results, nil
}

func (s *Service) journalforOne(ctx context.Context, item store.UnjournalfortVurdering) batch.Result[models.Vurdering] {
	v := item.Vurdering
	id, err := s.journalforer.Journalfor(ctx, v, item.PDF)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to journalfor vurdering", "vurdering_uuid", v.UUID, "error", err)
		return batch.Fail(v, err)
	}
	journalfort := v.Journalfor(id)
	if err := s.store.SetJournalpostID(ctx, journalfort); err != nil {
		s.countConsistency(err, "set_journalpost_id")
		s.logger.ErrorContext(ctx, "failed to store journalpost id",
			"vurdering_uuid", v.UUID,
			"journalpost_id", id,
			"error", err,
		)
		return batch.Fail(v, err)
	}
	return batch.OK(journalfort)
}

func (s *Service) countConsistency(err error, operation string) {
	if errors.Is(err, sentinel.ErrConsistency) {
		s.metrics.IncConsistencyError(operation)
	}
}
