package dataset

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"edacli/internal/errors"
)

// loadExcel reads the first sheet of an XLSX workbook into a Table using the
// same header-driven mapping as the CSV loader. Only a single workbook is
// supported; the first row is the header.
func loadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open XLSX workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.NewParsingError("XLSX workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError("failed to read XLSX rows", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParsingError("XLSX sheet is empty", nil)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := NewTable(header)
	for _, cells := range rows[1:] {
		table.Rows = append(table.Rows, buildRecord(table, cells))
	}

	return table, nil
}
