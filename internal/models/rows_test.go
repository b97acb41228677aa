package models

import (
	"testing"
	"time"

	"fjacquet/flex-csv/internal/enums"
	"fjacquet/flex-csv/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradeRow(t *testing.T) {
	rec := newTradeRecord()

	row := NewTradeRow(rec)
	assert.Equal(t, "U1234567", row.AccountID)
	assert.Equal(t, "IBKR", row.Symbol)
	assert.Equal(t, "STOCK", row.AssetCategory)
	assert.Equal(t, "BUY", row.BuySell)
	assert.True(t, row.Quantity.Equal(decimal.RequireFromString("100")))
	assert.True(t, row.TradePrice.Equal(decimal.RequireFromString("92.50")))
	// Absent attributes render as zero values.
	assert.Equal(t, "", row.TradeDate)
	assert.True(t, row.Commission.IsZero())
}

func TestNewCashTransactionRow(t *testing.T) {
	shape, ok := schema.Default.Lookup("CashTransaction")
	require.True(t, ok)
	dividend, _ := enums.Default.Resolve(enums.KindCashAction, "Dividends")

	rec := NewRecord(shape, map[string]Value{
		"accountId": TextValue("U1234567"),
		"type":      EnumValue(dividend),
		"currency":  TextValue("USD"),
		"amount":    DecimalValue(decimal.RequireFromString("1234.56")),
		"dateTime":  DateTimeValue(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)),
	}, nil)

	row := NewCashTransactionRow(rec)
	assert.Equal(t, "U1234567", row.AccountID)
	assert.Equal(t, "DIVIDEND", row.Type)
	assert.Equal(t, "USD", row.Currency)
	assert.True(t, row.Amount.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "2024-03-20 12:00:00", row.DateTime)
}

func TestNewOpenPositionRow(t *testing.T) {
	shape, ok := schema.Default.Lookup("OpenPosition")
	require.True(t, ok)
	long, _ := enums.Default.Resolve(enums.KindLongShort, "Long")

	rec := NewRecord(shape, map[string]Value{
		"accountId":  TextValue("U1234567"),
		"symbol":     TextValue("IBKR"),
		"side":       EnumValue(long),
		"position":   DecimalValue(decimal.RequireFromString("250")),
		"markPrice":  DecimalValue(decimal.RequireFromString("101.10")),
		"reportDate": DateValue(time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC)),
	}, nil)

	row := NewOpenPositionRow(rec)
	assert.Equal(t, "LONG", row.Side)
	assert.True(t, row.Position.Equal(decimal.RequireFromString("250")))
	assert.Equal(t, "2024-03-28", row.ReportDate)
}
