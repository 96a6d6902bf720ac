package sync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, payload string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &v))
	return v
}

func TestFlattenRows_PreservesOrder(t *testing.T) {
	v := decode(t, `[[{"BAR KOD":"a"},{"BAR KOD":"b"}],{"BAR KOD":"c"}]`)

	rows, err := FlattenRows(v)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0][colBarcode])
	assert.Equal(t, "b", rows[1][colBarcode])
	assert.Equal(t, "c", rows[2][colBarcode])
}

func TestFlattenRows_RejectsExcessiveNesting(t *testing.T) {
	payload := `{"BAR KOD":"x"}`
	for i := 0; i <= MaxNestingDepth; i++ {
		payload = "[" + payload + "]"
	}

	_, err := FlattenRows(decode(t, payload))
	assert.ErrorIs(t, err, ErrNestingTooDeep)
}

func TestFlattenRows_DropsScalarLeaves(t *testing.T) {
	v := decode(t, `[1,"junk",{"BAR KOD":"a"},null]`)

	rows, err := FlattenRows(v)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestStockRowParse_UnparsableNumbersDefaultToZero(t *testing.T) {
	row := StockRow{
		colBarcode:   "12345",
		colStock:     "abc",
		colSellPrice: "n/a",
	}

	upd, ok := row.Parse()
	require.True(t, ok)
	assert.Equal(t, "12345", upd.Barcode)
	assert.Equal(t, 0, upd.Stock)
	assert.True(t, upd.SellPrice.IsZero())
}

func TestStockRowParse_NumericCells(t *testing.T) {
	row := StockRow{
		colBarcode:   float64(4780000),
		colStock:     float64(12),
		colSellPrice: "17.50",
	}

	upd, ok := row.Parse()
	require.True(t, ok)
	assert.Equal(t, "4780000", upd.Barcode)
	assert.Equal(t, 12, upd.Stock)
	assert.Equal(t, "17.5", upd.SellPrice.String())
}

func TestStockRowParse_MissingBarcodeSkipped(t *testing.T) {
	row := StockRow{colStock: "5"}

	_, ok := row.Parse()
	assert.False(t, ok)
}
