package analysis

import (
	"math"
	"time"
)

// Overview describes the dataset shape and a verbatim sample of rows
type Overview struct {
	RowCount    int
	ColumnCount int
	Columns     []string
	Sample      [][]string
}

// Summary holds descriptive statistics for one numeric column, matching the
// conventional describe() output: count, mean, sample standard deviation,
// min, quartiles, max.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// ColumnSummary pairs a column name with its descriptive statistics
type ColumnSummary struct {
	Column string
	Summary
}

// ColumnMissing is the count of missing values in one column
type ColumnMissing struct {
	Column  string
	Missing int
}

// DepartmentCount is a per-department record frequency
type DepartmentCount struct {
	Department string
	Count      int
}

// DepartmentValue is a per-department aggregated numeric value
type DepartmentValue struct {
	Department string
	Value      float64
}

// CategoryShare is one category's percentage of the whole
type CategoryShare struct {
	Category string
	Percent  float64
}

// DepartmentReadmission holds the readmission percentage split for one
// department. NoPct and YesPct sum to 100 within rounding when the
// department has only those two categories.
type DepartmentReadmission struct {
	Department string
	NoPct      float64
	YesPct     float64
}

// CorrelationMatrix is the pairwise Pearson correlation between two columns
type CorrelationMatrix struct {
	Labels [2]string
	Values [2][2]float64
}

// MonthCount is the number of admissions in one calendar month
type MonthCount struct {
	Month time.Time
	Count int
}

// roundTo rounds x to the given number of decimal places
func roundTo(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
