package analysis

import (
	"sort"

	"edacli/internal/dataset"
)

// OverallReadmission computes the percentage distribution of the
// Readmission column across the whole table, rounded to one decimal and
// sorted by share descending. Blank values are excluded from the base.
func OverallReadmission(t *dataset.Table) []CategoryShare {
	counts := make(map[string]int)
	total := 0
	for i := range t.Rows {
		v := t.Rows[i].Readmission
		if v == "" {
			continue
		}
		counts[v]++
		total++
	}
	if total == 0 {
		return nil
	}

	shares := make([]CategoryShare, 0, len(counts))
	for category, count := range counts {
		shares = append(shares, CategoryShare{
			Category: category,
			Percent:  roundTo(float64(count)/float64(total)*100, 1),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// ReadmissionByDepartment computes the readmission split per department,
// normalized within each department. Both the "No" and "Yes" columns are
// always reported, filled with 0.0 when a category is absent. Departments
// are sorted by name.
func ReadmissionByDepartment(t *dataset.Table) []DepartmentReadmission {
	type counts struct {
		yes, no, total int
	}
	byDept := make(map[string]*counts)

	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Department == "" || row.Readmission == "" {
			continue
		}
		c := byDept[row.Department]
		if c == nil {
			c = &counts{}
			byDept[row.Department] = c
		}
		c.total++
		switch row.Readmission {
		case "Yes":
			c.yes++
		case "No":
			c.no++
		}
	}

	result := make([]DepartmentReadmission, 0, len(byDept))
	for dept, c := range byDept {
		result = append(result, DepartmentReadmission{
			Department: dept,
			NoPct:      roundTo(float64(c.no)/float64(c.total)*100, 1),
			YesPct:     roundTo(float64(c.yes)/float64(c.total)*100, 1),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Department < result[j].Department
	})

	return result
}

// YesRatesDescending orders the per-department "Yes" rates for charting,
// highest first with name tie-break.
func YesRatesDescending(byDept []DepartmentReadmission) []DepartmentValue {
	rates := make([]DepartmentValue, 0, len(byDept))
	for _, d := range byDept {
		rates = append(rates, DepartmentValue{Department: d.Department, Value: d.YesPct})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Value != rates[j].Value {
			return rates[i].Value > rates[j].Value
		}
		return rates[i].Department < rates[j].Department
	})
	return rates
}
