package analysis

import (
	"sort"

	"edacli/internal/dataset"
)

// AdmissionsByDepartment counts records per department, sorted by count
// descending with ties broken by name for deterministic output. Rows with a
// blank department are skipped.
func AdmissionsByDepartment(t *dataset.Table) []DepartmentCount {
	counts := make(map[string]int)
	for i := range t.Rows {
		dept := t.Rows[i].Department
		if dept == "" {
			continue
		}
		counts[dept]++
	}

	result := make([]DepartmentCount, 0, len(counts))
	for dept, count := range counts {
		result = append(result, DepartmentCount{Department: dept, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Department < result[j].Department
	})

	return result
}

// AverageCostByDepartment computes the mean cost per department over rows
// with a known cost, rounded to two decimals and sorted descending by value.
func AverageCostByDepartment(t *dataset.Table) []DepartmentValue {
	type acc struct {
		sum   float64
		count int
	}
	byDept := make(map[string]*acc)

	for i := range t.Rows {
		row := &t.Rows[i]
		if row.Department == "" || !row.Cost.Valid {
			continue
		}
		a := byDept[row.Department]
		if a == nil {
			a = &acc{}
			byDept[row.Department] = a
		}
		a.sum += row.Cost.Float64
		a.count++
	}

	result := make([]DepartmentValue, 0, len(byDept))
	for dept, a := range byDept {
		result = append(result, DepartmentValue{
			Department: dept,
			Value:      roundTo(a.sum/float64(a.count), 2),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Department < result[j].Department
	})

	return result
}
