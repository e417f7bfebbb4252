package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"edacli/internal/errors"
	"edacli/internal/infrastructure"
)

// dateLayouts are the accepted calendar formats, tried in order.
// Anything that matches none of them becomes a null value, not an error.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// Load reads the admissions dataset at path, dispatching on the file
// extension (.xlsx for Excel workbooks, CSV otherwise). A missing file is
// the only fatal condition.
func Load(ctx context.Context, path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("dataset file not found at %s", abs), err)
	}

	logger := infrastructure.LoggerWithContext(ctx)

	var table *Table
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		table, err = loadExcel(path)
	} else {
		table, err = loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "loaded admissions dataset",
		"path", path,
		"rows", table.NumRows(),
		"columns", table.NumColumns())

	return table, nil
}

// loadCSV reads a CSV file into a Table using header-driven column mapping
func loadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open dataset file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV header", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := NewTable(header)

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError("failed to read CSV row", err)
		}
		table.Rows = append(table.Rows, buildRecord(table, cells))
	}

	return table, nil
}

// buildRecord parses one raw row into a Record. Cells shorter than the
// header are padded so every row aligns with the column list.
func buildRecord(t *Table, cells []string) Record {
	if len(cells) < len(t.Columns) {
		padded := make([]string, len(t.Columns))
		copy(padded, cells)
		cells = padded
	} else if len(cells) > len(t.Columns) {
		cells = cells[:len(t.Columns)]
	}

	rec := Record{Cells: cells}

	if i, ok := t.ColumnIndex(ColPatientID); ok {
		rec.PatientID = strings.TrimSpace(cells[i])
	}
	if i, ok := t.ColumnIndex(ColDepartment); ok {
		rec.Department = strings.TrimSpace(cells[i])
	}
	if i, ok := t.ColumnIndex(ColAdmissionDate); ok {
		rec.AdmissionDate = parseDate(cells[i])
	}
	if i, ok := t.ColumnIndex(ColDischargeDate); ok {
		rec.DischargeDate = parseDate(cells[i])
	}
	if i, ok := t.ColumnIndex(ColLengthOfStay); ok {
		rec.LengthOfStay = parseNumber(cells[i])
	}
	if i, ok := t.ColumnIndex(ColCost); ok {
		rec.Cost = parseNumber(cells[i])
	}
	if i, ok := t.ColumnIndex(ColReadmission); ok {
		rec.Readmission = strings.TrimSpace(cells[i])
	}

	return rec
}

// parseDate converts a cell to a calendar timestamp. This is a forgiving
// parse: unrecognized values become null rather than an error.
func parseDate(s string) NullTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullTime{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return NullTime{Time: ts, Valid: true}
		}
	}
	return NullTime{}
}

// parseNumber converts a cell to a float, tolerating thousands separators
// and a leading currency sign. Malformed values become null.
func parseNumber(s string) NullFloat {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return NullFloat{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NullFloat{}
	}
	return NullFloat{Float64: f, Valid: true}
}
