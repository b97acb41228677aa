package fields

import (
	"errors"
	"testing"
	"time"

	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/flexerror"
	"fjacquet/flex-csv/internal/models"
	"fjacquet/flex-csv/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter() *Converter {
	return NewConverter(enums.Default, false)
}

func TestConvert_Scalars(t *testing.T) {
	c := newTestConverter()

	tests := []struct {
		name  string
		field schema.Field
		raw   string
		check func(t *testing.T, v models.Value)
	}{
		{
			name:  "text",
			field: schema.Field{Name: "symbol", Kind: schema.Text},
			raw:   "IBKR",
			check: func(t *testing.T, v models.Value) { assert.Equal(t, "IBKR", v.Text()) },
		},
		{
			name:  "integer",
			field: schema.Field{Name: "conid", Kind: schema.Integer},
			raw:   "43645865",
			check: func(t *testing.T, v models.Value) { assert.Equal(t, int64(43645865), v.Int()) },
		},
		{
			name:  "boolean true",
			field: schema.Field{Name: "isAPIOrder", Kind: schema.Boolean},
			raw:   "Y",
			check: func(t *testing.T, v models.Value) { assert.True(t, v.Bool()) },
		},
		{
			name:  "boolean false",
			field: schema.Field{Name: "isAPIOrder", Kind: schema.Boolean},
			raw:   "N",
			check: func(t *testing.T, v models.Value) { assert.False(t, v.Bool()) },
		},
		{
			name:  "decimal with thousands separators",
			field: schema.Field{Name: "amount", Kind: schema.Decimal},
			raw:   "1,234.56",
			check: func(t *testing.T, v models.Value) {
				assert.True(t, v.Decimal().Equal(decimal.RequireFromString("1234.56")))
			},
		},
		{
			name:  "date",
			field: schema.Field{Name: "tradeDate", Kind: schema.Date},
			raw:   "20240315",
			check: func(t *testing.T, v models.Value) {
				assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), v.Date())
			},
		},
		{
			name:  "time",
			field: schema.Field{Name: "tradeTime", Kind: schema.Time},
			raw:   "143045",
			check: func(t *testing.T, v models.Value) {
				assert.Equal(t, "14:30:45", v.Time().String())
			},
		},
		{
			name:  "datetime",
			field: schema.Field{Name: "dateTime", Kind: schema.DateTime},
			raw:   "20240315;143045",
			check: func(t *testing.T, v models.Value) {
				assert.Equal(t, time.Date(2024, time.March, 15, 14, 30, 45, 0, time.UTC), v.Date())
			},
		},
		{
			name:  "enumerated",
			field: schema.Field{Name: "buySell", Kind: schema.Enumerated, Enum: enums.KindBuySell},
			raw:   "BUY",
			check: func(t *testing.T, v models.Value) { assert.Equal(t, "BUY", v.Enum().Name) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, present, err := c.Convert("Trade", tt.field, tt.raw)
			require.NoError(t, err)
			assert.True(t, present)
			tt.check(t, v)
		})
	}
}

func TestConvert_AbsentSentinels(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "strike", Kind: schema.Decimal}

	for _, raw := range []string{"", "-", "--", "N/A"} {
		t.Run("sentinel "+raw, func(t *testing.T) {
			_, present, err := c.Convert("Trade", field, raw)
			require.NoError(t, err)
			assert.False(t, present)
		})
	}
}

func TestConvert_MultiSentinel(t *testing.T) {
	c := newTestConverter()

	// MULTI marks an aggregated value in the date and time kinds only.
	for _, field := range []schema.Field{
		{Name: "tradeDate", Kind: schema.Date},
		{Name: "tradeTime", Kind: schema.Time},
		{Name: "dateTime", Kind: schema.DateTime},
	} {
		_, present, err := c.Convert("SymbolSummary", field, "MULTI")
		require.NoError(t, err, "kind %s", field.Kind)
		assert.False(t, present, "kind %s", field.Kind)
	}

	// Elsewhere MULTI is an ordinary, convertible string or a hard error.
	v, present, err := c.Convert("SymbolSummary", schema.Field{Name: "symbol", Kind: schema.Text}, "MULTI")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "MULTI", v.Text())

	_, _, err = c.Convert("SymbolSummary", schema.Field{Name: "quantity", Kind: schema.Decimal}, "MULTI")
	assert.Error(t, err)
}

func TestConvert_RequiredMissing(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "accountId", Kind: schema.Text, Required: true}

	_, _, err := c.Convert("FlexStatement", field, "")
	var reqErr *flexerror.RequiredValueMissingError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "FlexStatement", reqErr.Shape)
	assert.Equal(t, "accountId", reqErr.Field)
}

func TestConvert_StrictBoolean(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "isAPIOrder", Kind: schema.Boolean}

	for _, raw := range []string{"y", "n", "true", "false", "1", "0", "YES"} {
		_, _, err := c.Convert("Trade", field, raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestConvert_ConversionErrorWraps(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "conid", Kind: schema.Integer}

	_, _, err := c.Convert("Trade", field, "12x4")
	var convErr *flexerror.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Trade", convErr.Shape)
	assert.Equal(t, "conid", convErr.Field)
	assert.Equal(t, "12x4", convErr.Value)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestConvert_TextSequence(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "tradingPermissions", Kind: schema.TextSequence}

	v, present, err := c.Convert("AccountInformation", field, "STK,OPT,FUT")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, []string{"STK", "OPT", "FUT"}, v.Strings())
}

func TestConvert_EmptySequenceIsPresent(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "code", Kind: schema.EnumSequence, Enum: enums.KindCode}

	v, present, err := c.Convert("Trade", field, "")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Empty(t, v.Enums())
}

func TestConvert_EnumSequence(t *testing.T) {
	c := newTestConverter()
	field := schema.Field{Name: "notes", Kind: schema.EnumSequence, Enum: enums.KindCode, Separator: ";"}

	v, present, err := c.Convert("Trade", field, "A;P")
	require.NoError(t, err)
	assert.True(t, present)

	variants := v.Enums()
	require.Len(t, variants, 2)
	assert.Equal(t, "ASSIGNMENT", variants[0].Name)
	assert.Equal(t, "PARTIAL", variants[1].Name)

	_, _, err = c.Convert("Trade", field, "A;NOPE")
	assert.Error(t, err)
}

func TestConvert_DayFirst(t *testing.T) {
	c := NewConverter(enums.Default, true)
	field := schema.Field{Name: "tradeDate", Kind: schema.Date}

	v, _, err := c.Convert("Trade", field, "02/01/2011")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, time.January, 2, 0, 0, 0, 0, time.UTC), v.Date())
}
