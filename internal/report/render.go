package report

import (
	"strings"

	"edacli/internal/analysis"
)

// RenderOverview prints the dataset shape, column list and row sample
func (c *Console) RenderOverview(ov analysis.Overview) {
	c.Section("Dataset Overview")
	c.Printf("Rows: %d\n", ov.RowCount)
	c.Printf("Columns: %d\n", ov.ColumnCount)

	c.SubSection("Columns")
	c.Printf("%s\n", strings.Join(ov.Columns, ", "))

	c.SubSection("Sample (first 5)")
	c.Table(ov.Columns, ov.Sample)
}

// RenderSummaries prints descriptive statistics for the numeric columns
// followed by the per-column missing value counts.
func (c *Console) RenderSummaries(summaries []analysis.ColumnSummary, missing []analysis.ColumnMissing) {
	c.Section("Summary Statistics")

	if len(summaries) > 0 {
		header := []string{"Statistic"}
		for _, s := range summaries {
			header = append(header, s.Column)
		}

		stats := []struct {
			name  string
			value func(analysis.Summary) string
		}{
			{"count", func(s analysis.Summary) string { return formatCount(s.Count) }},
			{"mean", func(s analysis.Summary) string { return formatFloat(s.Mean) }},
			{"std", func(s analysis.Summary) string { return formatFloat(s.Std) }},
			{"min", func(s analysis.Summary) string { return formatFloat(s.Min) }},
			{"25%", func(s analysis.Summary) string { return formatFloat(s.Q25) }},
			{"50%", func(s analysis.Summary) string { return formatFloat(s.Median) }},
			{"75%", func(s analysis.Summary) string { return formatFloat(s.Q75) }},
			{"max", func(s analysis.Summary) string { return formatFloat(s.Max) }},
		}

		rows := make([][]string, 0, len(stats))
		for _, stat := range stats {
			row := []string{stat.name}
			for _, s := range summaries {
				row = append(row, stat.value(s.Summary))
			}
			rows = append(rows, row)
		}
		c.Table(header, rows)
	}

	c.SubSection("Missing Values (count)")
	for _, m := range missing {
		c.Printf("%s: %d\n", m.Column, m.Missing)
	}
}

// RenderDepartmentCounts prints per-department admission counts
func (c *Console) RenderDepartmentCounts(counts []analysis.DepartmentCount) {
	c.Section("Admissions by Department")
	for _, dc := range counts {
		c.Printf("%s: %d\n", dc.Department, dc.Count)
	}
}

// RenderDepartmentCosts prints per-department average costs
func (c *Console) RenderDepartmentCosts(costs []analysis.DepartmentValue) {
	c.Section("Average Cost per Department")
	for _, dv := range costs {
		c.Printf("%s: %s\n", dv.Department, formatFloat(dv.Value))
	}
}

// RenderReadmission prints the overall readmission distribution and the
// per-department No/Yes percentage table.
func (c *Console) RenderReadmission(overall []analysis.CategoryShare, byDept []analysis.DepartmentReadmission) {
	c.Section("Readmission Rates")

	c.Printf("Overall:\n")
	for _, share := range overall {
		c.Printf("%s: %s\n", share.Category, formatPercent(share.Percent))
	}

	c.SubSection("By Department:")
	rows := make([][]string, 0, len(byDept))
	for _, d := range byDept {
		rows = append(rows, []string{d.Department, formatPercent(d.NoPct), formatPercent(d.YesPct)})
	}
	c.Table([]string{"Department", "No", "Yes"}, rows)
}

// RenderCorrelation prints the 2x2 correlation matrix
func (c *Console) RenderCorrelation(m analysis.CorrelationMatrix) {
	c.Section("Length of Stay vs Cost")
	c.Printf("Correlation matrix:\n")

	rows := make([][]string, 0, 2)
	for i, label := range m.Labels {
		rows = append(rows, []string{
			label,
			formatCorrelation(m.Values[i][0]),
			formatCorrelation(m.Values[i][1]),
		})
	}
	c.Table([]string{"", m.Labels[0], m.Labels[1]}, rows)
}

// RenderMonthly prints the monthly admissions series in chronological order
func (c *Console) RenderMonthly(series []analysis.MonthCount) {
	c.Section("Monthly Admissions Trend")
	for _, mc := range series {
		c.Printf("%s: %d\n", mc.Month.Format("2006-01"), mc.Count)
	}
}
