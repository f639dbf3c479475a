package synth

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports an input outside its declared domain. Field names
// match the wire-level argument names so callers can self-correct.
type ValidationError struct {
	Field  string
	Value  any
	Domain string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v (valid: %s)", e.Field, e.Value, e.Domain)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
