// Package schema is the static registry mapping Flex element tags to record
// shapes and per-attribute semantic types. The registry is built once at
// startup and read-only thereafter; concurrent parses share it without
// locking.
package schema

import (
	"fjacquet/flex-csv/internal/enums"
)

// Kind is the closed set of semantic value types a field can hold.
type Kind int

const (
	Text Kind = iota
	Integer
	Boolean
	Decimal
	Date
	Time
	DateTime
	Enumerated
	TextSequence
	EnumSequence
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Integer:
		return "Integer"
	case Boolean:
		return "Boolean"
	case Decimal:
		return "Decimal"
	case Date:
		return "Date"
	case Time:
		return "Time"
	case DateTime:
		return "DateTime"
	case Enumerated:
		return "Enumerated"
	case TextSequence:
		return "TextSequence"
	case EnumSequence:
		return "EnumSequence"
	}
	return "Unknown"
}

// Field declares one attribute of a record shape: its semantic type, the
// enumeration kind for Enumerated/EnumSequence fields, whether a value is
// required, and the token separator for sequence fields (comma when empty).
type Field struct {
	Name      string
	Kind      Kind
	Enum      enums.Kind
	Required  bool
	Separator string
}

// Sep returns the field's sequence separator, defaulting to comma.
func (f Field) Sep() string {
	if f.Separator == "" {
		return ","
	}
	return f.Separator
}

// FieldTable is an ordered field-name -> Field mapping attached to a shape.
type FieldTable struct {
	order  []string
	byName map[string]Field
}

// NewFieldTable composes a field table from one or more field groups.
// Groups are merged in declaration order; a later group's declaration of a
// field name overrides an earlier one in place, so a shape's own fields win
// over the shared groups it includes.
func NewFieldTable(groups ...[]Field) *FieldTable {
	t := &FieldTable{byName: make(map[string]Field)}
	for _, group := range groups {
		for _, f := range group {
			if _, exists := t.byName[f.Name]; !exists {
				t.order = append(t.order, f.Name)
			}
			t.byName[f.Name] = f
		}
	}
	return t
}

// Get looks up a field by attribute name.
func (t *FieldTable) Get(name string) (Field, bool) {
	f, ok := t.byName[name]
	return f, ok
}

// Names returns the field names in declaration order.
func (t *FieldTable) Names() []string {
	return t.order
}

// Len returns the number of declared fields.
func (t *FieldTable) Len() int {
	return len(t.order)
}

// Shape is the named, fixed schema of one kind of data element. Children
// lists the legal child-element tags for the two root aggregate shapes,
// mapping each container tag to the record shape of its items; an empty
// item tag marks a child that is itself a data element rather than a
// container. All other shapes have no children.
type Shape struct {
	Tag      string
	Fields   *FieldTable
	Children map[string]string
}

// Registry maps element tag names to record shapes. Built once, then
// read-only.
type Registry struct {
	shapes map[string]*Shape
}

// NewRegistry builds a registry over the given shapes.
func NewRegistry(shapes ...*Shape) *Registry {
	r := &Registry{shapes: make(map[string]*Shape, len(shapes))}
	for _, s := range shapes {
		r.shapes[s.Tag] = s
	}
	return r
}

// Lookup resolves an element tag to its record shape.
func (r *Registry) Lookup(tag string) (*Shape, bool) {
	s, ok := r.shapes[tag]
	return s, ok
}

// Tags returns the registered shape tags.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.shapes))
	for tag := range r.shapes {
		tags = append(tags, tag)
	}
	return tags
}

// Default is the process-wide registry over the full shape catalogue,
// never mutated after init.
var Default = NewRegistry(catalogue()...)
