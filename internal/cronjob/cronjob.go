// Package cronjob runs periodic background jobs on the leader pod only.
package cronjob

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"medvirkning/pkg/requestcontext"
)

var tracer = otel.Tracer("medvirkning/cronjob")

// Job is a named unit of periodic work.
type Job struct {
	Name         string
	InitialDelay time.Duration
	Interval     time.Duration
	Run          func(ctx context.Context) error
}

// LeaderElector tells whether this pod should run jobs right now.
type LeaderElector interface {
	IsLeader(ctx context.Context) (bool, error)
}

type Runner struct {
	elector LeaderElector
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Runner)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

func NewRunner(elector LeaderElector, opts ...Option) *Runner {
	r := &Runner{
		elector: elector,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start waits the job's initial delay and then ticks until ctx is cancelled.
// Ticks never overlap; a run that has started is allowed to finish.
func (r *Runner) Start(ctx context.Context, job Job) {
	r.logger.InfoContext(ctx, "scheduling cronjob",
		"job", job.Name,
		"initial_delay", job.InitialDelay,
		"interval", job.Interval,
	)

	timer := time.NewTimer(job.InitialDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()
	for {
		r.Tick(ctx, job)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// StartAll runs every job in its own goroutine and returns once all of them
// have stopped after ctx is cancelled.
func (r *Runner) StartAll(ctx context.Context, jobs ...Job) {
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Start(ctx, job)
		}()
	}
	wg.Wait()
}

// Tick runs the job once if this pod is the leader. Errors and panics are
// logged and counted.
func (r *Runner) Tick(ctx context.Context, job Job) {
	leader, err := r.elector.IsLeader(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "leader election failed, skipping cronjob", "job", job.Name, "error", err)
		r.metrics.IncRun(job.Name, outcomeSkipped)
		return
	}
	if !leader {
		r.logger.DebugContext(ctx, "not leader, skipping cronjob", "job", job.Name)
		r.metrics.IncRun(job.Name, outcomeSkipped)
		return
	}

	runCtx := requestcontext.WithCallID(context.WithoutCancel(ctx), "cronjob-"+job.Name+"-"+uuid.NewString())
	start := time.Now()
	err = r.run(runCtx, job)
	r.metrics.ObserveDuration(job.Name, time.Since(start))
	if err != nil {
		r.metrics.IncRun(job.Name, outcomeFailed)
		r.logger.ErrorContext(runCtx, "cronjob failed",
			"job", job.Name,
			"call_id", requestcontext.CallID(runCtx),
			"error", err,
		)
		return
	}
	r.metrics.IncRun(job.Name, outcomeOK)
}

func (r *Runner) run(ctx context.Context, job Job) (err error) {
	ctx, span := tracer.Start(ctx, "cronjob."+job.Name, trace.WithAttributes(
		attribute.String("cronjob.name", job.Name),
	))
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("cronjob %s panicked: %v\n%s", job.Name, rec, debug.Stack())
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cronjob failed")
		}
	}()
	return job.Run(ctx)
}
