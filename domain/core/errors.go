package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidInput is the root of every input-validation failure.
	// Callers can match the whole family with errors.Is(err, ErrInvalidInput).
	ErrInvalidInput = errors.New("invalid input")

	// Validation errors
	ErrMissingLabels     = fmt.Errorf("%w: missing or empty labels", ErrInvalidInput)
	ErrLabelShape        = fmt.Errorf("%w: bad label shape", ErrInvalidInput)
	ErrLabelsNotBinary   = fmt.Errorf("%w: labels not binary", ErrInvalidInput)
	ErrUnsupportedType   = fmt.Errorf("%w: unsupported type", ErrInvalidInput)
	ErrRowCountMismatch  = fmt.Errorf("%w: row count mismatch", ErrInvalidInput)
	ErrSensitiveRequired = fmt.Errorf("%w: sensitive features required", ErrInvalidInput)
	ErrNotMultiColumn    = fmt.Errorf("%w: expected multi-column array", ErrInvalidInput)

	// Table errors
	ErrColumnNotFound = fmt.Errorf("%w: column not found", ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("%w: sequence length mismatch", ErrInvalidInput)
	ErrNonNumeric     = fmt.Errorf("%w: non-numeric column", ErrInvalidInput)

	// Data source errors
	ErrEmptyTable = errors.New("table has no data rows")
)

// Error constructors with context

func NewLabelShapeError(rows, cols int) error {
	return fmt.Errorf("%w: want (n,) or (n,1), got (%d,%d)", ErrLabelShape, rows, cols)
}

func NewUnsupportedTypeError(field string, value interface{}) error {
	return fmt.Errorf("%w: %s is %T", ErrUnsupportedType, field, value)
}

func NewRowCountMismatchError(left string, leftRows int, right string, rightRows int) error {
	return fmt.Errorf("%w: %s has %d rows, %s has %d", ErrRowCountMismatch, left, leftRows, right, rightRows)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func NewLengthMismatchError(leftLen, rightLen int) error {
	return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, leftLen, rightLen)
}

// Error checking helpers

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}
