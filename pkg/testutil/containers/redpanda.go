//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

// KafkaContainer wraps a Kafka-compatible Redpanda broker.
type KafkaContainer struct {
	Container testcontainers.Container
	Broker    string
}

// NewKafkaContainer starts a single-node Redpanda broker.
func NewKafkaContainer(t *testing.T) *KafkaContainer {
	t.Helper()

	ctx := context.Background()

	container, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v24.2.4",
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		t.Fatalf("failed to start redpanda container: %v", err)
	}

	broker, err := container.KafkaSeedBroker(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get kafka seed broker: %v", err)
	}

	return &KafkaContainer{Container: container, Broker: broker}
}

// Close stops the broker.
func (k *KafkaContainer) Close(ctx context.Context) {
	_ = k.Container.Terminate(ctx)
}
