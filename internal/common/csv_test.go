package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Symbol   string          `csv:"Symbol"`
	Quantity decimal.Decimal `csv:"Quantity"`
}

func TestWriteAndReadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "rows.csv")

	rows := []testRow{
		{Symbol: "IBKR", Quantity: decimal.RequireFromString("100")},
		{Symbol: "AAPL", Quantity: decimal.RequireFromString("-50.5")},
	}

	require.NoError(t, WriteRowsToCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Symbol"), "header row expected, got %q", content)
	assert.Contains(t, content, "IBKR")

	got, err := ReadCSVFile[testRow](path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "IBKR", got[0].Symbol)
	assert.True(t, got[1].Quantity.Equal(decimal.RequireFromString("-50.5")))
}

func TestWriteRowsToCSV_NilRows(t *testing.T) {
	err := WriteRowsToCSV[testRow](nil, filepath.Join(t.TempDir(), "rows.csv"))
	assert.Error(t, err)
}

func TestWriteRowsToCSV_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, WriteRowsToCSV([]testRow{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Symbol")
}

func TestReadCSVFile_MissingFile(t *testing.T) {
	_, err := ReadCSVFile[testRow](filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestSetDelimiter(t *testing.T) {
	original := Delimiter
	defer SetDelimiter(original)

	SetDelimiter(';')
	assert.Equal(t, ';', Delimiter)

	path := filepath.Join(t.TempDir(), "rows.csv")
	rows := []testRow{{Symbol: "IBKR", Quantity: decimal.RequireFromString("1")}}
	require.NoError(t, WriteRowsToCSV(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Symbol;Quantity")
}
