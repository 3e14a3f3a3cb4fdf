// Package identhendelse moves vurderinger to a person's current ident when PDL
// reports that an ident has been replaced.
package identhendelse

import (
	"context"
	"fmt"
	"log/slog"

	"medvirkning/internal/vurdering/models"
)

//go:generate mockgen -source=identhendelse.go -destination=mocks/mocks.go -package=mocks Store

const TypeFolkeregisterident = "FOLKEREGISTERIDENT"

// Identifikator is one ident of a person as reported by PDL.
type Identifikator struct {
	Idnummer  string `json:"idnummer"`
	Type      string `json:"type"`
	Gjeldende bool   `json:"gjeldende"`
}

// Identhendelse lists every known ident of one person.
type Identhendelse struct {
	Identifikatorer []Identifikator `json:"identifikatorer"`
}

// Folkeregisteridenter splits the national idents into the current one and
// the replaced ones. active is empty when PDL reports no current ident.
func (h Identhendelse) Folkeregisteridenter() (active models.Personident, inactive []models.Personident) {
	for _, id := range h.Identifikatorer {
		if id.Type != TypeFolkeregisterident {
			continue
		}
		if id.Gjeldende {
			active = models.Personident(id.Idnummer)
			continue
		}
		inactive = append(inactive, models.Personident(id.Idnummer))
	}
	return active, inactive
}

type Store interface {
	ListByPersonident(ctx context.Context, personident models.Personident) ([]models.Vurdering, error)
	ReassignPersonident(ctx context.Context, newIdent models.Personident, vurderinger []models.Vurdering) error
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Handle reassigns every vurdering stored under an inactive ident to the
// active one, all in one transaction.
func (s *Service) Handle(ctx context.Context, h Identhendelse) error {
	active, inactive := h.Folkeregisteridenter()
	if active == "" {
		s.logger.WarnContext(ctx, "identhendelse ignored, no active ident in PDL")
		return nil
	}

	var stale []models.Vurdering
	for _, ident := range inactive {
		vurderinger, err := s.store.ListByPersonident(ctx, ident)
		if err != nil {
			return fmt.Errorf("list vurderinger for inactive ident: %w", err)
		}
		stale = append(stale, vurderinger...)
	}
	if len(stale) == 0 {
		return nil
	}

	if err := s.store.ReassignPersonident(ctx, active, stale); err != nil {
		return fmt.Errorf("reassign personident: %w", err)
	}
	s.logger.InfoContext(ctx, "updated vurderinger based on identhendelse", "count", len(stale))
	return nil
}
