//go:build integration

package containers

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"medvirkning/internal/platform/config"
	"medvirkning/internal/platform/redis"
)

// RedisContainer is a Redis instance reached through the service's own
// connection code.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *goredis.Client
}

func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	url, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get redis connection string: %v", err)
	}

	client, err := redis.Open(ctx, config.RedisConfig{URL: url, PoolSize: 2})
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to redis: %v", err)
	}
	return &RedisContainer{Container: container, URL: url, Client: client}
}

func (r *RedisContainer) Close(ctx context.Context) {
	_ = r.Client.Close()
	_ = r.Container.Terminate(ctx)
}

func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
