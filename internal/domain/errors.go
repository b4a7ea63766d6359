package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports the fields that made a submission invalid.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func newValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields}
}
