// Package caderr holds the typed failures shared by the drawing packages.
// Callers match them with errors.As.
package caderr

import "fmt"

// ValidationError reports a shape whose parameters violate construction rules.
type ValidationError struct {
	ShapeKind string
	Field     string // offending parameter, empty when not tied to one field
	Message   string
	ShapeID   string
	Err       error
}

// Invalid builds a ValidationError with a formatted message.
func Invalid(kind, field, id, format string, args ...any) *ValidationError {
	return &ValidationError{ShapeKind: kind, Field: field, ShapeID: id, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	msg := "shape validation failed for " + e.ShapeKind + ": " + e.Message
	if e.ShapeID != "" {
		msg += " (id " + e.ShapeID + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransformError reports a malformed or non-invertible transform.
type TransformError struct {
	Op     string
	Reason string
}

func (e *TransformError) Error() string {
	return "transform error in " + e.Op + ": " + e.Reason
}

// SerializationError wraps a failure to encode or decode drawing data.
type SerializationError struct {
	Op     string // "serialize" or "deserialize"
	Format string
	Entity string
	Err    error
}

func (e *SerializationError) Error() string {
	entity := e.Entity
	if entity == "" {
		entity = "data"
	}
	dir := "to"
	if e.Op == "deserialize" {
		dir = "from"
	}
	return fmt.Sprintf("failed to %s %s %s %s: %v", e.Op, entity, dir, e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DocumentError reports an invalid operation on a document.
type DocumentError struct {
	Op     string
	Reason string
}

func (e *DocumentError) Error() string {
	return "document " + e.Op + ": " + e.Reason
}
