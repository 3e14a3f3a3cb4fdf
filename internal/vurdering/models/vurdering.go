package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VurderingType is the closed set of assessment kinds.
type VurderingType string

const (
	TypeForhandsvarsel VurderingType = "FORHANDSVARSEL"
	TypeOppfylt        VurderingType = "OPPFYLT"
	TypeStans          VurderingType = "STANS"
	TypeIkkeAktuell    VurderingType = "IKKE_AKTUELL"
	TypeUnntak         VurderingType = "UNNTAK"
)

// AllTypes lists every VurderingType in declaration order.
var AllTypes = []VurderingType{TypeForhandsvarsel, TypeOppfylt, TypeStans, TypeIkkeAktuell, TypeUnntak}

// ParseVurderingType returns ErrUnknownType for anything outside the closed set.
func ParseVurderingType(s string) (VurderingType, error) {
	t := VurderingType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

func (t VurderingType) Valid() bool {
	switch t {
	case TypeForhandsvarsel, TypeOppfylt, TypeStans, TypeIkkeAktuell, TypeUnntak:
		return true
	}
	return false
}

// IsActive is true while the case still awaits the person's response.
func (t VurderingType) IsActive() bool {
	return t == TypeForhandsvarsel
}

func (t VurderingType) String() string { return string(t) }

// Vurdering is an immutable snapshot of one assessment. Type is the
// discriminant: Varsel is set only for TypeForhandsvarsel and Stansdato only
// for TypeStans.
type Vurdering struct {
	UUID          uuid.UUID
	Personident   Personident
	Veilederident Veilederident
	CreatedAt     time.Time
	Type          VurderingType
	Begrunnelse   string
	Document      []DocumentComponent
	JournalpostID JournalpostID

	Varsel    *Varsel
	Stansdato *Date
}

// IsJournalfort reports whether the vurdering has an archive reference.
func (v Vurdering) IsJournalfort() bool {
	return v.JournalpostID != ""
}

// Journalfor returns a copy of v carrying the archive reference.
func (v Vurdering) Journalfor(id JournalpostID) Vurdering {
	v.JournalpostID = id
	return v
}

// WithPersonident returns a copy of v owned by another identifier.
func (v Vurdering) WithPersonident(p Personident) Vurdering {
	v.Personident = p
	return v
}

// NewVurdering carries the caller-supplied fields for a new assessment.
type NewVurdering struct {
	Type            VurderingType
	Personident     Personident
	Veilederident   Veilederident
	Begrunnelse     string
	Document        []DocumentComponent
	VarselSvarfrist *Date
	Stansdato       *Date
}

// New builds a fresh vurdering of the requested type. The deadline of a
// forhåndsvarsel is checked against the calendar day of now.
func New(req NewVurdering, now time.Time) (Vurdering, error) {
	if req.Personident == "" || req.Veilederident == "" {
		return Vurdering{}, ErrMissingIdent
	}
	if len(req.Document) == 0 {
		return Vurdering{}, ErrEmptyDocument
	}

	v := Vurdering{
		UUID:          uuid.New(),
		Personident:   req.Personident,
		Veilederident: req.Veilederident,
		CreatedAt:     now,
		Type:          req.Type,
		Begrunnelse:   req.Begrunnelse,
		Document:      req.Document,
	}

	switch req.Type {
	case TypeForhandsvarsel:
		if req.VarselSvarfrist == nil {
			return Vurdering{}, ErrMissingSvarfrist
		}
		varsel, err := NewVarsel(*req.VarselSvarfrist, now)
		if err != nil {
			return Vurdering{}, err
		}
		v.Varsel = &varsel
	case TypeStans:
		if req.Stansdato == nil {
			return Vurdering{}, ErrMissingStansdato
		}
		stansdato := *req.Stansdato
		v.Stansdato = &stansdato
	case TypeOppfylt, TypeIkkeAktuell, TypeUnntak:
	default:
		return Vurdering{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
	return v, nil
}
