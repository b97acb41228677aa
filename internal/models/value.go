// Package models holds the immutable record structures produced by parsing
// a Flex query response, plus the CSV row types derived from them.
package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/flex-csv/internal/dateutils"
	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/schema"
)

// Value is one converted attribute value. The kind discriminates which of
// the typed accessors is meaningful. Values are created once during parsing
// and never mutated.
type Value struct {
	kind     schema.Kind
	text     string
	integer  int64
	boolean  bool
	number   decimal.Decimal
	instant  time.Time
	clock    dateutils.TimeOfDay
	variant  enums.Variant
	tokens   []string
	variants []enums.Variant
}

func TextValue(s string) Value {
	return Value{kind: schema.Text, text: s}
}

func IntegerValue(n int64) Value {
	return Value{kind: schema.Integer, integer: n}
}

func BooleanValue(b bool) Value {
	return Value{kind: schema.Boolean, boolean: b}
}

func DecimalValue(d decimal.Decimal) Value {
	return Value{kind: schema.Decimal, number: d}
}

func DateValue(t time.Time) Value {
	return Value{kind: schema.Date, instant: t}
}

func TimeValue(t dateutils.TimeOfDay) Value {
	return Value{kind: schema.Time, clock: t}
}

func DateTimeValue(t time.Time) Value {
	return Value{kind: schema.DateTime, instant: t}
}

func EnumValue(v enums.Variant) Value {
	return Value{kind: schema.Enumerated, variant: v}
}

func TextSequenceValue(tokens []string) Value {
	return Value{kind: schema.TextSequence, tokens: tokens}
}

func EnumSequenceValue(variants []enums.Variant) Value {
	return Value{kind: schema.EnumSequence, variants: variants}
}

// Kind reports which typed accessor applies.
func (v Value) Kind() schema.Kind {
	return v.kind
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Int() int64 {
	return v.integer
}

func (v Value) Bool() bool {
	return v.boolean
}

func (v Value) Decimal() decimal.Decimal {
	return v.number
}

// Date returns the date or datetime instant.
func (v Value) Date() time.Time {
	return v.instant
}

func (v Value) Time() dateutils.TimeOfDay {
	return v.clock
}

func (v Value) Enum() enums.Variant {
	return v.variant
}

func (v Value) Strings() []string {
	return v.tokens
}

func (v Value) Enums() []enums.Variant {
	return v.variants
}

// String renders the value for display and CSV output.
func (v Value) String() string {
	switch v.kind {
	case schema.Text:
		return v.text
	case schema.Integer:
		return strconv.FormatInt(v.integer, 10)
	case schema.Boolean:
		if v.boolean {
			return "Y"
		}
		return "N"
	case schema.Decimal:
		return v.number.String()
	case schema.Date:
		return v.instant.Format("2006-01-02")
	case schema.Time:
		return v.clock.String()
	case schema.DateTime:
		return v.instant.Format("2006-01-02 15:04:05")
	case schema.Enumerated:
		return v.variant.Name
	case schema.TextSequence:
		return strings.Join(v.tokens, ",")
	case schema.EnumSequence:
		names := make([]string, len(v.variants))
		for i, variant := range v.variants {
			names[i] = variant.Name
		}
		return strings.Join(names, ",")
	}
	return ""
}
