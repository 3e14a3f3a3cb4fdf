package identhendelse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"medvirkning/internal/platform/config"
)

// Client is the part of *kgo.Client the consumer uses.
type Client interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitUncommittedOffsets(ctx context.Context) error
	SetOffsets(offsets map[string]map[int32]kgo.EpochOffset)
}

type Handler interface {
	Handle(ctx context.Context, h Identhendelse) error
}

// ConsumerOpts configures a franz-go client as a manually committing member
// of the identhendelse consumer group.
func ConsumerOpts(cfg config.Kafka) []kgo.Opt {
	return []kgo.Opt{
		kgo.ConsumerGroup(cfg.ConsumerGroup),
		kgo.ConsumeTopics(cfg.IdenthendelseTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.DisableAutoCommit(),
		kgo.FetchMaxWait(time.Second),
	}
}

type Consumer struct {
	client       Client
	handler      Handler
	errorBackoff time.Duration
	logger       *slog.Logger
}

func NewConsumer(client Client, handler Handler, errorBackoff time.Duration, logger *slog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		handler:      handler,
		errorBackoff: errorBackoff,
		logger:       logger,
	}
}

// Run consumes until ctx is cancelled. Offsets are committed only after every
// record of a fetch was handled; on failure the fetch is rewound and retried
// after the error backoff.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		err := c.pollOnce(ctx)
		if err == nil {
			continue
		}
		if errors.Is(err, kgo.ErrClientClosed) || ctx.Err() != nil {
			return nil
		}
		c.logger.WarnContext(ctx, "error running identhendelse consumer, waiting before retry",
			"backoff", c.errorBackoff,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.errorBackoff):
		}
	}
}

func (c *Consumer) pollOnce(ctx context.Context) error {
	fetches := c.client.PollFetches(ctx)
	if fetches.IsClientClosed() {
		return kgo.ErrClientClosed
	}
	if errs := fetches.Errors(); len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("fetch %s[%d]: %w", fe.Topic, fe.Partition, fe.Err)
	}
	if fetches.Empty() {
		return nil
	}

	if err := c.handleAll(ctx, fetches); err != nil {
		c.client.SetOffsets(firstOffsets(fetches))
		return err
	}
	if err := c.client.CommitUncommittedOffsets(ctx); err != nil {
		return fmt.Errorf("commit offsets: %w", err)
	}
	return nil
}

func (c *Consumer) handleAll(ctx context.Context, fetches kgo.Fetches) error {
	iter := fetches.RecordIter()
	for !iter.Done() {
		rec := iter.Next()
		if rec.Value == nil {
			continue
		}
		var h Identhendelse
		if err := json.Unmarshal(rec.Value, &h); err != nil {
			return fmt.Errorf("decode identhendelse at offset %d: %w", rec.Offset, err)
		}
		if err := c.handler.Handle(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

// firstOffsets returns the offset of the first record in every fetched
// partition, so the next poll starts over from there.
func firstOffsets(fetches kgo.Fetches) map[string]map[int32]kgo.EpochOffset {
	offsets := make(map[string]map[int32]kgo.EpochOffset)
	fetches.EachPartition(func(p kgo.FetchTopicPartition) {
		if len(p.Records) == 0 {
			return
		}
		first := p.Records[0]
		if offsets[p.Topic] == nil {
			offsets[p.Topic] = make(map[int32]kgo.EpochOffset)
		}
		offsets[p.Topic][p.Partition] = kgo.EpochOffset{Epoch: first.LeaderEpoch, Offset: first.Offset}
	})
	return offsets
}
