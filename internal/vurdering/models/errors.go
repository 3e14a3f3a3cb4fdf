package models

import (
	"fmt"

	"medvirkning/pkg/platform/sentinel"
)

// Validation failures. All of them wrap sentinel.ErrValidation.
var (
	ErrInvalidSvarfrist = fmt.Errorf("%w: forhandsvarsel has invalid svarfrist", sentinel.ErrValidation)
	ErrMissingSvarfrist = fmt.Errorf("%w: forhandsvarsel requires varselSvarfrist", sentinel.ErrValidation)
	ErrMissingStansdato = fmt.Errorf("%w: stans requires stansdato", sentinel.ErrValidation)
	ErrEmptyDocument    = fmt.Errorf("%w: vurdering can't have empty document", sentinel.ErrValidation)
	ErrUnknownType      = fmt.Errorf("%w: unknown vurdering type", sentinel.ErrValidation)
	ErrMissingIdent     = fmt.Errorf("%w: personident and veilederident are required", sentinel.ErrValidation)
)
