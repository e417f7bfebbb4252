package dataset

import (
	"time"
)

// Column names recognized by the loader. Any other columns in the input are
// carried through verbatim for the overview sample.
const (
	ColPatientID     = "Patient_ID"
	ColDepartment    = "Department"
	ColAdmissionDate = "Admission_Date"
	ColDischargeDate = "Discharge_Date"
	ColLengthOfStay  = "Length_of_Stay"
	ColCost          = "Cost"
	ColReadmission   = "Readmission"
)

// NullTime is a calendar timestamp that may be missing or unparseable
type NullTime struct {
	Time  time.Time
	Valid bool
}

// NullFloat is a numeric value that may be missing or unparseable
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Record represents a single patient-admission row after cleaning.
// Cells holds the original row values aligned with Table.Columns so the
// overview can show records verbatim.
type Record struct {
	PatientID     string
	Department    string
	AdmissionDate NullTime
	DischargeDate NullTime
	LengthOfStay  NullFloat
	Cost          NullFloat
	Readmission   string
	Cells         []string
}

// Table is the in-memory admissions dataset. It is loaded once, mutated once
// by DeriveLengthOfStay, then read-only for the rest of the run.
type Table struct {
	Columns []string
	Rows    []Record

	index map[string]int
}

// NewTable builds a table from a header row, indexing columns by name
func NewTable(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}
	return &Table{Columns: columns, index: index}
}

// HasColumn reports whether the named column exists in the input
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Head returns up to n rows of original cell values
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	sample := make([][]string, 0, n)
	for _, row := range t.Rows[:n] {
		sample = append(sample, row.Cells)
	}
	return sample
}

// appendColumn adds a new column name, padding every existing row with an
// empty cell. Used when the derivation step introduces Length_of_Stay.
func (t *Table) appendColumn(name string) int {
	t.Columns = append(t.Columns, name)
	idx := len(t.Columns) - 1
	t.index[name] = idx
	for i := range t.Rows {
		t.Rows[i].Cells = append(t.Rows[i].Cells, "")
	}
	return idx
}
