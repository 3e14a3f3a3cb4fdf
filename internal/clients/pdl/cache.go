package pdl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"medvirkning/internal/vurdering/models"
)

const nameKeyPrefix = "pdl:navn:"

// Names resolves display names.
type Names interface {
	DisplayName(ctx context.Context, p models.Personident) (string, error)
}

// CachedNames serves display names from Redis and falls back to next on a
// miss. Cache failures are logged and never fail the lookup.
type CachedNames struct {
	next   Names
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedNames wraps next with a Redis cache. Keys are derived from the
// record key so no identity number is stored in Redis.
func NewCachedNames(next Names, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedNames {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedNames{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *CachedNames) DisplayName(ctx context.Context, p models.Personident) (string, error) {
	key := nameKeyPrefix + p.RecordKey()

	name, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return name, nil
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "name cache read failed", "error", err)
	}

	name, err = c.next.DisplayName(ctx, p)
	if err != nil {
		return "", err
	}
	if err := c.client.Set(ctx, key, name, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "name cache write failed", "error", err)
	}
	return name, nil
}
