package cronjob

import (
	"context"
	"log/slog"
	"time"

	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/batch"
)

type VurderingJournalforer interface {
	JournalforVurderinger(ctx context.Context) ([]batch.Result[models.Vurdering], error)
}

type VarselPublisher interface {
	PublishUnpublished(ctx context.Context) ([]batch.Result[models.Varsel], error)
}

func JournalforVurderinger(service VurderingJournalforer, logger *slog.Logger) Job {
	const name = "journalfor-vurderinger"
	return Job{
		Name:         name,
		InitialDelay: 2 * time.Minute,
		Interval:     time.Minute,
		Run: func(ctx context.Context) error {
			results, err := service.JournalforVurderinger(ctx)
			if err != nil {
				return err
			}
			logSummary(ctx, logger, name, results)
			return nil
		},
	}
}

func PublishForhandsvarsel(service VarselPublisher, logger *slog.Logger) Job {
	const name = "publish-forhandsvarsel"
	return Job{
		Name:         name,
		InitialDelay: 4 * time.Minute,
		Interval:     10 * time.Minute,
		Run: func(ctx context.Context) error {
			results, err := service.PublishUnpublished(ctx)
			if err != nil {
				return err
			}
			logSummary(ctx, logger, name, results)
			return nil
		},
	}
}

func logSummary[T any](ctx context.Context, logger *slog.Logger, job string, results []batch.Result[T]) {
	ok, failed := batch.Count(results)
	logger.InfoContext(ctx, "completed cronjob", "job", job, "ok", ok, "failed", failed)
}
