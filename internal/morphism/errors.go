package morphism

import (
	"errors"
	"fmt"

	"anthrobot/internal/taxonomy"
)

// ErrOutOfRange is the sentinel wrapped by RangeError.
var ErrOutOfRange = errors.New("out of range")

// ErrUnmappedCombination is the sentinel wrapped by UnmappedCombinationError.
var ErrUnmappedCombination = errors.New("unmapped combination")

// RangeError reports a numeric input outside its closed interval.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g outside valid range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// UnmappedCombinationError reports a shape+cilia pair absent from the rule
// table. The declared domain is supposed to be exhaustive, so hitting this
// for a declared pair signals a taxonomy gap, not a caller mistake.
type UnmappedCombinationError struct {
	Shape taxonomy.Shape
	Cilia taxonomy.CiliaPattern
}

func (e *UnmappedCombinationError) Error() string {
	return fmt.Sprintf("no movement rule for shape %q + cilia %q", e.Shape, e.Cilia)
}

func (e *UnmappedCombinationError) Unwrap() error { return ErrUnmappedCombination }
