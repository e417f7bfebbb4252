package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edacli/internal/analysis"
)

func TestSectionUnderline(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Section("Dataset Overview")

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "================", lines[0])
	assert.Equal(t, "Dataset Overview", lines[1])
	assert.Equal(t, "================", lines[2])
}

func TestSubSectionUnderline(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.SubSection("Columns")

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Columns", lines[0])
	assert.Equal(t, "-------", lines[1])
}

func TestRenderOverview(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderOverview(analysis.Overview{
		RowCount:    6,
		ColumnCount: 2,
		Columns:     []string{"Patient_ID", "Department"},
		Sample: [][]string{
			{"P1", "ER"},
			{"P2", "ICU"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Dataset Overview")
	assert.Contains(t, out, "Rows: 6")
	assert.Contains(t, out, "Columns: 2")
	assert.Contains(t, out, "Patient_ID, Department")
	assert.Contains(t, out, "Sample (first 5)")
	assert.Contains(t, out, "ICU")
}

func TestRenderSummaries(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderSummaries(
		[]analysis.ColumnSummary{
			{
				Column: "Length_of_Stay",
				Summary: analysis.Summary{
					Count: 4, Mean: 2.50, Std: 1.29,
					Min: 1, Q25: 1.75, Median: 2.5, Q75: 3.25, Max: 4,
				},
			},
		},
		[]analysis.ColumnMissing{
			{Column: "Cost", Missing: 2},
			{Column: "Department", Missing: 0},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Length_of_Stay")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "Missing Values (count)")
	assert.Contains(t, out, "Cost: 2")
	assert.Contains(t, out, "Department: 0")
}

func TestRenderDepartmentCounts(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderDepartmentCounts([]analysis.DepartmentCount{
		{Department: "ER", Count: 3},
		{Department: "ICU", Count: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "Admissions by Department")
	erIdx := strings.Index(out, "ER: 3")
	icuIdx := strings.Index(out, "ICU: 2")
	require.GreaterOrEqual(t, erIdx, 0)
	require.GreaterOrEqual(t, icuIdx, 0)
	assert.Less(t, erIdx, icuIdx)
}

func TestRenderDepartmentCostsOrderAndFormat(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderDepartmentCosts([]analysis.DepartmentValue{
		{Department: "ICU", Value: 500},
		{Department: "ER", Value: 200},
	})

	out := buf.String()
	icuIdx := strings.Index(out, "ICU: 500.00")
	erIdx := strings.Index(out, "ER: 200.00")
	require.GreaterOrEqual(t, icuIdx, 0)
	require.GreaterOrEqual(t, erIdx, 0)
	assert.Less(t, icuIdx, erIdx)
}

func TestRenderReadmission(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderReadmission(
		[]analysis.CategoryShare{
			{Category: "No", Percent: 75.0},
			{Category: "Yes", Percent: 25.0},
		},
		[]analysis.DepartmentReadmission{
			{Department: "ER", NoPct: 66.7, YesPct: 33.3},
			{Department: "ICU", NoPct: 100.0, YesPct: 0.0},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Readmission Rates")
	assert.Contains(t, out, "No: 75.0%")
	assert.Contains(t, out, "Yes: 25.0%")
	assert.Contains(t, out, "By Department:")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "0.0%")
}

func TestRenderCorrelation(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderCorrelation(analysis.CorrelationMatrix{
		Labels: [2]string{"Length_of_Stay", "Cost"},
		Values: [2][2]float64{{1, 0.998}, {0.998, 1}},
	})

	out := buf.String()
	assert.Contains(t, out, "Length of Stay vs Cost")
	assert.Contains(t, out, "1.000")
	assert.Contains(t, out, "0.998")
}

func TestRenderMonthly(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.RenderMonthly([]analysis.MonthCount{
		{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Count: 3},
		{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Count: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "Monthly Admissions Trend")
	assert.Contains(t, out, "2024-01: 3")
	assert.Contains(t, out, "2024-02: 1")
}
