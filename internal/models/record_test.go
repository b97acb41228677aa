package models

import (
	"testing"

	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradeShape() *schema.Shape {
	shape, ok := schema.Default.Lookup("Trade")
	if !ok {
		panic("Trade shape missing from default registry")
	}
	return shape
}

func newTradeRecord() *Record {
	buy, _ := enums.Default.Resolve(enums.KindBuySell, "BUY")
	stk, _ := enums.Default.Resolve(enums.KindAssetClass, "STK")
	return NewRecord(tradeShape(), map[string]Value{
		"accountId":     TextValue("U1234567"),
		"symbol":        TextValue("IBKR"),
		"assetCategory": EnumValue(stk),
		"buySell":       EnumValue(buy),
		"quantity":      DecimalValue(decimal.RequireFromString("100")),
		"tradePrice":    DecimalValue(decimal.RequireFromString("92.50")),
	}, nil)
}

func TestRecord_Accessors(t *testing.T) {
	rec := newTradeRecord()

	assert.Equal(t, "Trade", rec.Tag())
	assert.Same(t, tradeShape(), rec.Shape())

	v, ok := rec.Get("symbol")
	require.True(t, ok)
	assert.Equal(t, "IBKR", v.Text())

	_, ok = rec.Get("strike")
	assert.False(t, ok)
	assert.True(t, rec.Has("quantity"))
	assert.False(t, rec.Has("multiplier"))

	assert.Equal(t, "U1234567", rec.Text("accountId"))
	assert.Equal(t, "", rec.Text("description"))
	assert.True(t, rec.Number("quantity").Equal(decimal.RequireFromString("100")))
	assert.True(t, rec.Number("strike").IsZero())
	assert.Equal(t, "BUY", rec.EnumName("buySell"))
	assert.Equal(t, "STOCK", rec.EnumName("assetCategory"))
	assert.Equal(t, "", rec.EnumName("orderType"))
	assert.Nil(t, rec.Codes("code"))
}

func TestRecord_FieldsInDeclarationOrder(t *testing.T) {
	rec := newTradeRecord()

	names := rec.Fields()
	assert.Len(t, names, 6)

	// Present fields come back in the shape's declaration order, not map
	// iteration order.
	indexOf := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}
	assert.Less(t, indexOf("accountId"), indexOf("symbol"))
	assert.Less(t, indexOf("assetCategory"), indexOf("buySell"))
	assert.Less(t, indexOf("buySell"), indexOf("quantity"))
}

func TestRecord_Children(t *testing.T) {
	stmtShape, ok := schema.Default.Lookup("FlexStatement")
	require.True(t, ok)

	trade := newTradeRecord()
	rec := NewRecord(stmtShape, map[string]Value{
		"accountId": TextValue("U1234567"),
	}, map[string][]*Record{
		"Trades": {trade},
	})

	assert.Equal(t, []*Record{trade}, rec.Children("Trades"))
	assert.Nil(t, rec.Children("CashTransactions"))
	assert.Equal(t, []string{"Trades"}, rec.Containers())
}

func TestValue_String(t *testing.T) {
	buy, _ := enums.Default.Resolve(enums.KindBuySell, "BUY")
	sell, _ := enums.Default.Resolve(enums.KindBuySell, "SELL")

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "text", v: TextValue("hello"), want: "hello"},
		{name: "integer", v: IntegerValue(-42), want: "-42"},
		{name: "boolean true", v: BooleanValue(true), want: "Y"},
		{name: "boolean false", v: BooleanValue(false), want: "N"},
		{name: "decimal", v: DecimalValue(decimal.RequireFromString("12.340")), want: "12.34"},
		{name: "enum", v: EnumValue(buy), want: "BUY"},
		{name: "text sequence", v: TextSequenceValue([]string{"STK", "OPT"}), want: "STK,OPT"},
		{name: "enum sequence", v: EnumSequenceValue([]enums.Variant{buy, sell}), want: "BUY,SELL"},
		{name: "zero value", v: Value{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}
