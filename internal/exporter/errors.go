package exporter

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch indicates a record is missing a field declared
	// in the schema. The input data must be fixed before retrying.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrIO indicates the destination sink could not be written to.
	// The call may be retried once the underlying condition is resolved.
	ErrIO = errors.New("destination write failed")
)

// SchemaError identifies the record and field behind a schema mismatch.
type SchemaError struct {
	Row   int
	Field string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: record %d missing field %q", e.Row, e.Field)
}

// Is reports true for ErrSchemaMismatch so callers can match with errors.Is
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// WriteError wraps a sink failure, carrying the destination path when known.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("destination write failed: %v", e.Err)
	}
	return fmt.Sprintf("destination write failed: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying sink error
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrIO so callers can match with errors.Is
func (e *WriteError) Is(target error) bool {
	return target == ErrIO
}
