package schema

import (
	"errors"
	"fmt"
)

// ErrSkipped marks a record that is intentionally not loaded (a user without a password).
var ErrSkipped = errors.New("record skipped")

// FieldError is a per-record validation failure.
type FieldError struct {
	Field  string
	Column string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s (%q): %s", e.Field, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s (%q): %s: %q", e.Field, e.Column, e.Reason, e.Value)
}
