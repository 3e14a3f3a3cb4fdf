package models

import (
	"time"

	"github.com/google/uuid"
)

// Bounds for the response deadline of a forhåndsvarsel, in days after the
// day the varsel is created. Both ends are inclusive.
const (
	SvarfristMinDays = 21
	SvarfristMaxDays = 42
)

// Varsel is the advance notice sent with a forhåndsvarsel.
type Varsel struct {
	UUID      uuid.UUID `json:"uuid"`
	CreatedAt time.Time `json:"createdAt"`
	Svarfrist Date      `json:"svarfrist"`
}

// HasValidSvarfrist reports whether svarfrist lies within the allowed window
// counted from today.
func HasValidSvarfrist(svarfrist, today Date) bool {
	return !svarfrist.Before(today.AddDays(SvarfristMinDays)) &&
		!svarfrist.After(today.AddDays(SvarfristMaxDays))
}

// NewVarsel creates a varsel with a validated deadline. The window is counted
// from the day of now in Oslo, not in the process's zone.
func NewVarsel(svarfrist Date, now time.Time) (Varsel, error) {
	if !HasValidSvarfrist(svarfrist, Today(now)) {
		return Varsel{}, ErrInvalidSvarfrist
	}
	return Varsel{
		UUID:      uuid.New(),
		CreatedAt: now,
		Svarfrist: svarfrist,
	}, nil
}

// UnpublishedVarsel is a filed forhåndsvarsel whose notice has not yet been
// acknowledged by the broker.
type UnpublishedVarsel struct {
	Personident   Personident
	JournalpostID JournalpostID
	Varsel        Varsel
}
