package model

import (
	"fmt"
	"sort"
	"strconv"
)

// Row is one spreadsheet row: column header -> raw cell value.
// Workbook readers produce strings, but sheets posted as JSON may carry
// numbers, so the value type stays open.
type Row map[string]any

// Sheet is the engine's input unit: a named, ordered block of rows.
// Columns records the source header order; Go maps do not preserve it,
// so whoever builds the sheet is expected to fill it in.
type Sheet struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns,omitempty"`
	Rows    []Row    `json:"rows"`
}

// ColumnNames returns the sheet's columns in a stable order.
// Falls back to the sorted keys of the first row when the builder
// did not record header order.
func (s *Sheet) ColumnNames() []string {
	if len(s.Columns) > 0 {
		return s.Columns
	}
	if len(s.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(s.Rows[0]))
	for col := range s.Rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Cell returns the raw text of one cell, empty when the column is
// unknown or the cell is missing.
func (r Row) Cell(col string) string {
	if col == "" {
		return ""
	}
	return CellText(r[col])
}

// CellText converts a raw cell value to text. This is the single point
// where untyped cell data becomes a string.
func CellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
