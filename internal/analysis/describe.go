package analysis

import (
	"math"
	"sort"
	"strings"

	"edacli/internal/dataset"
)

// NumericSummaries computes descriptive statistics for the numeric columns
// of interest (Length_of_Stay and Cost), rounded to two decimals. Columns
// absent from the input are skipped.
func NumericSummaries(t *dataset.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, 2)

	if t.HasColumn(dataset.ColLengthOfStay) {
		values := collect(t, func(r *dataset.Record) dataset.NullFloat { return r.LengthOfStay })
		summaries = append(summaries, ColumnSummary{
			Column:  dataset.ColLengthOfStay,
			Summary: describe(values),
		})
	}
	if t.HasColumn(dataset.ColCost) {
		values := collect(t, func(r *dataset.Record) dataset.NullFloat { return r.Cost })
		summaries = append(summaries, ColumnSummary{
			Column:  dataset.ColCost,
			Summary: describe(values),
		})
	}

	return summaries
}

// MissingValues counts missing values per column across the whole table, in
// column order. Parsed columns use their null markers; passthrough columns
// count blank cells.
func MissingValues(t *dataset.Table) []ColumnMissing {
	counts := make([]ColumnMissing, len(t.Columns))
	for i, col := range t.Columns {
		counts[i].Column = col
	}

	for r := range t.Rows {
		row := &t.Rows[r]
		for i, col := range t.Columns {
			if isMissing(row, col, i) {
				counts[i].Missing++
			}
		}
	}

	return counts
}

// isMissing decides cell missingness per column semantics
func isMissing(row *dataset.Record, col string, idx int) bool {
	switch col {
	case dataset.ColAdmissionDate:
		return !row.AdmissionDate.Valid
	case dataset.ColDischargeDate:
		return !row.DischargeDate.Valid
	case dataset.ColLengthOfStay:
		return !row.LengthOfStay.Valid
	case dataset.ColCost:
		return !row.Cost.Valid
	default:
		if idx >= len(row.Cells) {
			return true
		}
		return strings.TrimSpace(row.Cells[idx]) == ""
	}
}

// collect gathers the non-null values of one nullable column
func collect(t *dataset.Table, field func(*dataset.Record) dataset.NullFloat) []float64 {
	values := make([]float64, 0, t.NumRows())
	for i := range t.Rows {
		if v := field(&t.Rows[i]); v.Valid {
			values = append(values, v.Float64)
		}
	}
	return values
}

// describe computes count, mean, sample standard deviation, min, quartiles
// and max over the given values, rounded to two decimals. Quartiles use
// linear interpolation between closest ranks.
func describe(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan(), nan(), nan(), nan(), nan(), nan(), nan()
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	std := nan()
	if len(sorted) > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(len(sorted)-1))
	}

	s.Mean = roundTo(mean, 2)
	s.Std = roundTo(std, 2)
	s.Min = roundTo(sorted[0], 2)
	s.Q25 = roundTo(quantile(sorted, 0.25), 2)
	s.Median = roundTo(quantile(sorted, 0.5), 2)
	s.Q75 = roundTo(quantile(sorted, 0.75), 2)
	s.Max = roundTo(sorted[len(sorted)-1], 2)
	return s
}

// quantile returns the q-quantile of sorted values by linear interpolation
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

func nan() float64 { return math.NaN() }
