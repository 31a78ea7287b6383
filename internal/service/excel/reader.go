// Package excel turns uploaded workbooks into the engine's sheet
// representation. It is the only place that knows about spreadsheet
// file formats.
package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// Reader loads one workbook and exposes its sheets.
type Reader struct {
	file *excelize.File
}

// NewReader creates an empty reader.
func NewReader() *Reader {
	return &Reader{}
}

// LoadFile opens a workbook from a stream.
func (r *Reader) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	r.file = file
	return nil
}

// Sheets converts every worksheet into a model.Sheet: the first row is
// the header, every later row is keyed by it. Worksheets that cannot
// be read are skipped rather than failing the whole workbook; fully
// blank rows are dropped.
func (r *Reader) Sheets() ([]model.Sheet, error) {
	if r.file == nil {
		return nil, errors.New("no file loaded")
	}

	names := r.file.GetSheetList()
	sheets := make([]model.Sheet, 0, len(names))

	for _, name := range names {
		rows, err := r.file.GetRows(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, buildSheet(name, rows))
	}

	return sheets, nil
}

func buildSheet(name string, rows [][]string) model.Sheet {
	sheet := model.Sheet{Name: name, Rows: []model.Row{}}
	if len(rows) == 0 {
		return sheet
	}

	header := rows[0]
	for _, col := range header {
		if strings.TrimSpace(col) != "" {
			sheet.Columns = append(sheet.Columns, col)
		}
	}

	for _, cells := range rows[1:] {
		row := make(model.Row, len(header))
		blank := true
		for i, col := range header {
			if strings.TrimSpace(col) == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			row[col] = value
		}
		if blank {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}

// Close releases the underlying workbook.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
