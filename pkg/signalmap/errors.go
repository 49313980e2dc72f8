package signalmap

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update/delete target does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError covers missing required fields, malformed identifiers and
// invalid enum values. The primary write is never attempted when one occurs.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DuplicateKeyError names the field whose unique constraint was violated.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("a record with this %s already exists", e.Field)
}

func IsDuplicateKeyError(err error) (*DuplicateKeyError, bool) {
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
