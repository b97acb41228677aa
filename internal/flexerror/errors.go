// Package flexerror defines the error types surfaced by the Flex report
// decoding engine. Every error is fatal to the parse that raised it; the
// engine never substitutes defaults or returns a partially-built record.
package flexerror

import "fmt"

// StructuralError reports a malformed document structure: wrong root tag,
// element-count mismatch, heterogeneous container contents, or an illegal
// double-wrap shape.
type StructuralError struct {
	Tag    string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in <%s>: %s", e.Tag, e.Reason)
}

// UnknownShapeError reports an element tag with no corresponding record shape
// in the registry.
type UnknownShapeError struct {
	Tag string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("unknown element <%s>: no record shape registered", e.Tag)
}

// UnknownFieldError reports an attribute name with no entry in the resolved
// shape's field table. This protects against drift between the report
// configuration and the known schema.
type UnknownFieldError struct {
	Shape string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Shape, e.Field)
}

// ConversionError reports a present, non-empty attribute string that cannot
// be converted to its declared semantic type.
type ConversionError struct {
	Shape string
	Field string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s.%s: cannot convert %q: %v", e.Shape, e.Field, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// RequiredValueMissingError reports a required field that received an empty
// or absent value.
type RequiredValueMissingError struct {
	Shape string
	Field string
}

func (e *RequiredValueMissingError) Error() string {
	return fmt.Sprintf("%s.%s: required value is missing", e.Shape, e.Field)
}
