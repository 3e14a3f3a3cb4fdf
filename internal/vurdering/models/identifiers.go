package models

import (
	"crypto/md5"
	"fmt"

	"github.com/google/uuid"

	"medvirkning/pkg/platform/sentinel"
)

// Personident is a national identity number (fødselsnummer or d-nummer).
type Personident string

// ParsePersonident accepts exactly eleven digits.
func ParsePersonident(s string) (Personident, error) {
	if len(s) != 11 {
		return "", fmt.Errorf("%w: personident must be 11 digits", sentinel.ErrValidation)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: personident must be 11 digits", sentinel.ErrValidation)
		}
	}
	return Personident(s), nil
}

func (p Personident) String() string { return string(p) }

// RecordKey derives the broker partition key for the person: a version 3 UUID
// over the MD5 digest of the identifier bytes. Every event for one person gets
// the same key without the identifier appearing as the key.
func (p Personident) RecordKey() string {
	sum := md5.Sum([]byte(p))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.UUID(sum).String()
}

// Veilederident identifies the caseworker who authored a vurdering.
type Veilederident string

func (v Veilederident) String() string { return string(v) }

// JournalpostID is the archive reference. The zero value means not yet filed.
type JournalpostID string

// SentinelJournalpostID marks a vurdering whose filing failed while retries
// were disabled. It takes the item out of the retry queue without a real
// archive reference.
const SentinelJournalpostID JournalpostID = "0"

func (j JournalpostID) String() string { return string(j) }
