package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	// 1..5: mean 3, sample std sqrt(2.5), quartiles by linear interpolation.
	s := describe([]float64{5, 3, 1, 4, 2})

	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.58, s.Std)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.0, s.Q25)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 4.0, s.Q75)
	assert.Equal(t, 5.0, s.Max)
}

func TestDescribeInterpolatedQuartiles(t *testing.T) {
	s := describe([]float64{1, 2, 3, 4})

	assert.Equal(t, 1.75, s.Q25)
	assert.Equal(t, 2.5, s.Median)
	assert.Equal(t, 3.25, s.Q75)
}

func TestDescribeSingleValue(t *testing.T) {
	s := describe([]float64{7})

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 7.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std))
	assert.Equal(t, 7.0, s.Median)
}

func TestDescribeEmpty(t *testing.T) {
	s := describe(nil)

	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
}

func TestNumericSummaries(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Length_of_Stay,Cost
P-001,2,100
P-002,4,300
P-003,,500
`)

	summaries := NumericSummaries(table)
	require.Len(t, summaries, 2)

	los := summaries[0]
	assert.Equal(t, "Length_of_Stay", los.Column)
	assert.Equal(t, 2, los.Count)
	assert.Equal(t, 3.0, los.Mean)

	cost := summaries[1]
	assert.Equal(t, "Cost", cost.Column)
	assert.Equal(t, 3, cost.Count)
	assert.Equal(t, 300.0, cost.Mean)
}

func TestNumericSummariesMissingColumns(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Department
P-001,ER
`)
	assert.Empty(t, NumericSummaries(table))
}

func TestMissingValues(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Department,Admission_Date,Cost
P-001,ER,2024-01-10,100
P-002,,garbage,
P-003,ICU,2024-02-01,250
`)

	missing := MissingValues(table)
	require.Len(t, missing, 4)

	byCol := make(map[string]int)
	for _, m := range missing {
		byCol[m.Column] = m.Missing
	}
	assert.Equal(t, 0, byCol["Patient_ID"])
	assert.Equal(t, 1, byCol["Department"])
	// Unparseable date counts as missing.
	assert.Equal(t, 1, byCol["Admission_Date"])
	assert.Equal(t, 1, byCol["Cost"])
}
