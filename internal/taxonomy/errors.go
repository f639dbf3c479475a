package taxonomy

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every NotFoundError, so callers can
// match with errors.Is without caring which table missed.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup key absent from a finite reference table.
type NotFoundError struct {
	Category string // table name, e.g. "morphotype", "life_stage"
	Key      string
	Valid    []string // declared valid keys, for self-correction
}

func (e *NotFoundError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%s %q: not found", e.Category, e.Key)
	}
	return fmt.Sprintf("%s %q: not found (valid: %v)", e.Category, e.Key, e.Valid)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// notFound builds a NotFoundError for the given table.
func notFound(category, key string, valid []string) error {
	return &NotFoundError{Category: category, Key: key, Valid: valid}
}
