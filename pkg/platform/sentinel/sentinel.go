package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and clients return these
// (wrapped with context) so services and handlers can branch with errors.Is.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrStorage: a write transaction failed and was rolled back
//   - ErrConsistency: a write-once update touched an unexpected number of rows
//   - ErrValidation: input rejected before anything was persisted
//   - ErrUnavailable: collaborator temporarily unavailable, retry later
var (
	ErrNotFound    = errors.New("not found")
	ErrStorage     = errors.New("storage failure")
	ErrConsistency = errors.New("consistency violation")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")
)
