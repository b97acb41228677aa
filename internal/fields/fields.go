// Package fields converts raw attribute strings into typed values according
// to the field's declared semantic kind. Conversion is strict: a present,
// malformed value fails the parse rather than degrading to a default.
package fields

import (
	"errors"
	"strconv"
	"strings"

	"fjacquet/flex-csv/internal/currencyutils"
	"fjacquet/flex-csv/internal/dateutils"
	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/flexerror"
	"fjacquet/flex-csv/internal/models"
	"fjacquet/flex-csv/internal/schema"
)

// absentSentinels are the strings the report emits for an optional scalar
// that carries no value.
var absentSentinels = map[string]struct{}{
	"":    {},
	"-":   {},
	"--":  {},
	"N/A": {},
}

// multiSentinel appears in date fields of summary rows that aggregate
// several underlying dates.
const multiSentinel = "MULTI"

// Converter turns raw attribute strings into typed values. A single
// converter is safe for concurrent use.
type Converter struct {
	table    *enums.Table
	dayFirst bool
}

// NewConverter builds a converter over the given enumeration table.
// dayFirst selects day-before-month interpretation of slashed dates.
func NewConverter(table *enums.Table, dayFirst bool) *Converter {
	return &Converter{table: table, dayFirst: dayFirst}
}

// Convert produces the typed value for one attribute. The second return
// reports presence: sentinel strings for optional scalars yield an absent
// value rather than an error, while a required field without a value fails.
func (c *Converter) Convert(shape string, f schema.Field, raw string) (models.Value, bool, error) {
	if c.absent(f, raw) {
		if f.Required {
			return models.Value{}, false, &flexerror.RequiredValueMissingError{Shape: shape, Field: f.Name}
		}
		return models.Value{}, false, nil
	}

	v, err := c.convert(f, raw)
	if err != nil {
		return models.Value{}, false, &flexerror.ConversionError{Shape: shape, Field: f.Name, Value: raw, Err: err}
	}
	return v, true, nil
}

func (c *Converter) absent(f schema.Field, raw string) bool {
	switch f.Kind {
	case schema.TextSequence, schema.EnumSequence:
		// An empty sequence attribute is a present, empty list.
		return false
	case schema.Date, schema.Time, schema.DateTime:
		if raw == multiSentinel {
			return true
		}
	}
	_, ok := absentSentinels[raw]
	return ok
}

func (c *Converter) convert(f schema.Field, raw string) (models.Value, error) {
	switch f.Kind {
	case schema.Text:
		return models.TextValue(raw), nil
	case schema.Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Value{}, err
		}
		return models.IntegerValue(n), nil
	case schema.Boolean:
		b, err := parseBool(raw)
		if err != nil {
			return models.Value{}, err
		}
		return models.BooleanValue(b), nil
	case schema.Decimal:
		d, err := currencyutils.ParseAmount(raw)
		if err != nil {
			return models.Value{}, err
		}
		return models.DecimalValue(d), nil
	case schema.Date:
		t, err := dateutils.ParseDate(raw, c.dayFirst)
		if err != nil {
			return models.Value{}, err
		}
		return models.DateValue(t), nil
	case schema.Time:
		t, err := dateutils.ParseTime(raw)
		if err != nil {
			return models.Value{}, err
		}
		return models.TimeValue(t), nil
	case schema.DateTime:
		t, err := dateutils.ParseDateTime(raw, c.dayFirst)
		if err != nil {
			return models.Value{}, err
		}
		return models.DateTimeValue(t), nil
	case schema.Enumerated:
		variant, err := c.table.Resolve(f.Enum, raw)
		if err != nil {
			return models.Value{}, err
		}
		return models.EnumValue(variant), nil
	case schema.TextSequence:
		return models.TextSequenceValue(splitTokens(raw, f.Sep())), nil
	case schema.EnumSequence:
		tokens := splitTokens(raw, f.Sep())
		variants := make([]enums.Variant, 0, len(tokens))
		for _, token := range tokens {
			variant, err := c.table.Resolve(f.Enum, token)
			if err != nil {
				return models.Value{}, err
			}
			variants = append(variants, variant)
		}
		return models.EnumSequenceValue(variants), nil
	}
	return models.Value{}, &flexerror.StructuralError{Tag: f.Name, Reason: "field has no convertible kind"}
}

func parseBool(raw string) (bool, error) {
	switch raw {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, errors.New("boolean must be Y or N")
}

// splitTokens splits a sequence attribute on its separator, discarding
// empty tokens so "" and "A;;B" behave sensibly.
func splitTokens(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
