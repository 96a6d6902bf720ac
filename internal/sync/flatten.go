package sync

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Column names as they appear in the warehouse spreadsheet upload.
const (
	colBarcode   = "BAR KOD"
	colStock     = "Mukdary"
	colSellPrice = "Satyş bahasy"
)

// MaxNestingDepth bounds how deep the uploaded row arrays may nest. The
// spreadsheet exporter produces at most one level of grouping; anything far
// beyond that is a malformed payload, not data.
const MaxNestingDepth = 8

var ErrNestingTooDeep = errors.New("rows nested deeper than the allowed bound")

// StockRow is one spreadsheet row, keyed by the sheet's column names.
type StockRow map[string]interface{}

// StockUpdate is a parsed row ready to apply against the catalog.
type StockUpdate struct {
	Barcode   string
	Stock     int
	SellPrice decimal.Decimal
}

// FlattenRows walks an arbitrarily nested array of rows and returns a flat
// sequence preserving the original order. Non-row leaves are dropped.
func FlattenRows(v interface{}) ([]StockRow, error) {
	var rows []StockRow
	if err := flattenInto(v, 0, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func flattenInto(v interface{}, depth int, out *[]StockRow) error {
	if depth > MaxNestingDepth {
		return ErrNestingTooDeep
	}
	switch node := v.(type) {
	case []interface{}:
		for _, child := range node {
			if err := flattenInto(child, depth+1, out); err != nil {
				return err
			}
		}
	case map[string]interface{}:
		*out = append(*out, StockRow(node))
	}
	return nil
}

// Parse extracts the update from a row. Rows without a barcode are skipped
// (ok=false); unparsable numeric cells default to zero.
func (r StockRow) Parse() (upd StockUpdate, ok bool) {
	barcode := asString(r[colBarcode])
	if barcode == "" {
		return StockUpdate{}, false
	}
	return StockUpdate{
		Barcode:   barcode,
		Stock:     int(asFloat(r[colStock])),
		SellPrice: decimal.NewFromFloat(asFloat(r[colSellPrice])),
	}, true
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
