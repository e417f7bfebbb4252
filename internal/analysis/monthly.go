package analysis

import (
	"sort"
	"time"

	"edacli/internal/dataset"
)

// MonthlyAdmissions buckets records by the calendar month of the admission
// date and counts admissions per month in chronological order. Returns
// false when the admission-date column is absent or every value is missing;
// the caller is expected to skip the section silently in that case.
func MonthlyAdmissions(t *dataset.Table) ([]MonthCount, bool) {
	if !t.HasColumn(dataset.ColAdmissionDate) {
		return nil, false
	}

	counts := make(map[time.Time]int)
	for i := range t.Rows {
		ad := t.Rows[i].AdmissionDate
		if !ad.Valid {
			continue
		}
		month := time.Date(ad.Time.Year(), ad.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[month]++
	}
	if len(counts) == 0 {
		return nil, false
	}

	series := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		series = append(series, MonthCount{Month: month, Count: count})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series, true
}
