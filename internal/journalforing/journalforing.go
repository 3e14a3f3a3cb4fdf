// Package journalforing files vurderinger in the archive.
package journalforing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"medvirkning/internal/clients/dokarkiv"
	"medvirkning/internal/vurdering/models"
)

//go:generate mockgen -source=journalforing.go -destination=mocks/mocks.go -package=mocks Names,Archive

// Names resolves the display name of the person a journalpost is about.
type Names interface {
	DisplayName(ctx context.Context, p models.Personident) (string, error)
}

// Archive creates journalposts.
type Archive interface {
	Journalfor(ctx context.Context, req dokarkiv.JournalpostRequest) (dokarkiv.JournalpostResponse, error)
}

// Service builds and files the journalpost of a vurdering.
type Service struct {
	names        Names
	archive      Archive
	retryEnabled bool
	logger       *slog.Logger
	metrics      *Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRetryDisabled maps every filing failure to models.SentinelJournalpostID
// so the vurdering leaves the retry queue. Lower environments only.
func WithRetryDisabled() Option {
	return func(s *Service) { s.retryEnabled = false }
}

func New(names Names, archive Archive, opts ...Option) *Service {
	s := &Service{
		names:        names,
		archive:      archive,
		retryEnabled: true,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.retryEnabled {
		s.logger.Warn("journalforing retry is disabled, failed filings get journalpost id " + models.SentinelJournalpostID.String())
	}
	return s
}

// Journalfor files v with its pdf and returns the archive reference.
func (s *Service) Journalfor(ctx context.Context, v models.Vurdering, pdf []byte) (models.JournalpostID, error) {
	id, err := s.journalfor(ctx, v, pdf)
	if err == nil {
		s.metrics.IncOutcome(outcomeOK)
		return id, nil
	}
	if s.retryEnabled {
		s.metrics.IncOutcome(outcomeFailed)
		return "", err
	}
	s.logger.ErrorContext(ctx, "journalforing failed with retry disabled, storing sentinel journalpost id",
		"vurdering_uuid", v.UUID,
		"vurdering_type", v.Type,
		"error", err,
	)
	s.metrics.IncOutcome(outcomeSentinel)
	return models.SentinelJournalpostID, nil
}

func (s *Service) journalfor(ctx context.Context, v models.Vurdering, pdf []byte) (models.JournalpostID, error) {
	navn, err := s.names.DisplayName(ctx, v.Personident)
	if err != nil {
		return "", fmt.Errorf("journalfor %s: %w", v.UUID, err)
	}
	req, err := BuildRequest(v, navn, pdf)
	if err != nil {
		return "", err
	}
	resp, err := s.archive.Journalfor(ctx, req)
	if err != nil {
		return "", fmt.Errorf("journalfor %s: %w", v.UUID, err)
	}
	return models.JournalpostID(strconv.Itoa(resp.JournalpostID)), nil
}
