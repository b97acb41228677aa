package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/schema"
)

// Record is one parsed data element: a shape, the converted values of the
// attributes that were present, and (for the aggregate shapes) the parsed
// child records grouped by container tag. Records are immutable after
// construction; absent optional attributes simply have no entry.
type Record struct {
	shape    *schema.Shape
	values   map[string]Value
	children map[string][]*Record
}

// NewRecord builds a record over the given maps. The caller hands over
// ownership; the maps must not be mutated afterwards.
func NewRecord(shape *schema.Shape, values map[string]Value, children map[string][]*Record) *Record {
	return &Record{shape: shape, values: values, children: children}
}

// Shape returns the record's shape.
func (r *Record) Shape() *schema.Shape {
	return r.shape
}

// Tag returns the element tag this record was parsed from.
func (r *Record) Tag() string {
	return r.shape.Tag
}

// Get returns the converted value of an attribute, reporting whether the
// attribute was present in the document.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether an attribute was present.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Fields returns the names of the attributes present, in shape declaration
// order.
func (r *Record) Fields() []string {
	names := make([]string, 0, len(r.values))
	for _, name := range r.shape.Fields.Names() {
		if _, ok := r.values[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Children returns the records parsed from the named child container, nil
// when the container was absent.
func (r *Record) Children(container string) []*Record {
	return r.children[container]
}

// Containers returns the child container tags present on this record.
func (r *Record) Containers() []string {
	tags := make([]string, 0, len(r.children))
	for tag := range r.children {
		tags = append(tags, tag)
	}
	return tags
}

// Text returns the string value of an attribute, empty when absent.
func (r *Record) Text(name string) string {
	if v, ok := r.values[name]; ok {
		return v.Text()
	}
	return ""
}

// Display renders an attribute for output regardless of its kind, empty
// when absent.
func (r *Record) Display(name string) string {
	if v, ok := r.values[name]; ok {
		return v.String()
	}
	return ""
}

// Number returns the decimal value of an attribute, zero when absent.
func (r *Record) Number(name string) decimal.Decimal {
	if v, ok := r.values[name]; ok {
		return v.Decimal()
	}
	return decimal.Zero
}

// EnumName returns the canonical name of an enumerated attribute, empty
// when absent.
func (r *Record) EnumName(name string) string {
	if v, ok := r.values[name]; ok {
		return v.Enum().Name
	}
	return ""
}

// Codes returns the variants of an enum sequence attribute.
func (r *Record) Codes(name string) []enums.Variant {
	if v, ok := r.values[name]; ok {
		return v.Enums()
	}
	return nil
}
