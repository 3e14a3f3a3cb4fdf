package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"medvirkning/internal/platform/config"
)

// NewClient builds a franz-go client for the configured brokers. Extra options
// (consumer group, topics) are appended after the shared ones. A positive
// DeliveryTimeout bounds how long a produced record may wait for the broker,
// so ProduceSync fails even when its context never ends.
func NewClient(cfg config.Kafka, extra ...kgo.Opt) (*kgo.Client, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	if cfg.DeliveryTimeout > 0 {
		opts = append(opts, kgo.RecordDeliveryTimeout(cfg.DeliveryTimeout))
	}
	if cfg.TLSEnabled {
		tlsCfg, err := tlsConfig(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}
	opts = append(opts, extra...)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}

func tlsConfig(cfg config.Kafka) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertificatePath, cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load kafka client certificate: %w", err)
	}
	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	if cfg.CAPath != "" {
		caPEM, err := os.ReadFile(cfg.CAPath)
		if err != nil {
			return nil, fmt.Errorf("read kafka CA: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, errors.New("kafka CA contains no certificates")
		}
		tlsCfg.RootCAs = pool
	}
	return tlsCfg, nil
}

// EnsureTopics creates the given topics with broker defaults, ignoring topics
// that already exist. Intended for local and test setups where nobody
// provisions topics up front.
func EnsureTopics(ctx context.Context, client *kgo.Client, logger *slog.Logger, topics ...string) error {
	admin := kadm.NewClient(client)
	resps, err := admin.CreateTopics(ctx, 1, -1, nil, topics...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, resp := range resps {
		switch {
		case resp.Err == nil:
			logger.InfoContext(ctx, "created kafka topic", "topic", resp.Topic)
		case errors.Is(resp.Err, kerr.TopicAlreadyExists):
		default:
			return fmt.Errorf("create topic %s: %w", resp.Topic, resp.Err)
		}
	}
	return nil
}
