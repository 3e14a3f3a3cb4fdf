// Package varsel publishes the notices of filed forhåndsvarsler.
package varsel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/batch"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Publisher

type Store interface {
	ListUnpublishedVarsler(ctx context.Context) ([]models.UnpublishedVarsel, error)
	MarkVarselPublished(ctx context.Context, varselUUID uuid.UUID) error
}

type Publisher interface {
	Publish(ctx context.Context, uv models.UnpublishedVarsel) error
}

// Service sends every filed but unpublished varsel and records the ack.
type Service struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
}

func NewService(store Store, publisher Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, publisher: publisher, logger: logger}
}

// PublishUnpublished sends each pending notice independently. A varsel whose
// send or marker update fails stays eligible for the next scan.
func (s *Service) PublishUnpublished(ctx context.Context) ([]batch.Result[models.Varsel], error) {
	pending, err := s.store.ListUnpublishedVarsler(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unpublished varsler: %w", err)
	}

	results := make([]batch.Result[models.Varsel], 0, len(pending))
	for _, uv := range pending {
		results = append(results, s.publishOne(ctx, uv))
	}
	return results, nil
}

func (s *Service) publishOne(ctx context.Context, uv models.UnpublishedVarsel) batch.Result[models.Varsel] {
	if err := s.publisher.Publish(ctx, uv); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish varsel", "varsel_uuid", uv.Varsel.UUID, "error", err)
		return batch.Fail(uv.Varsel, err)
	}
	if err := s.store.MarkVarselPublished(ctx, uv.Varsel.UUID); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark varsel published", "varsel_uuid", uv.Varsel.UUID, "error", err)
		return batch.Fail(uv.Varsel, err)
	}
	return batch.OK(uv.Varsel)
}
