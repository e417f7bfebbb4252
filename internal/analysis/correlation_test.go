package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationPerfectLinear(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Length_of_Stay,Cost
P-001,1,100
P-002,2,200
P-003,3,300
`)

	m, ok := Correlation(table)
	require.True(t, ok)

	assert.Equal(t, [2]string{"Length_of_Stay", "Cost"}, m.Labels)
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.Equal(t, 1.0, m.Values[0][1])
	assert.Equal(t, 1.0, m.Values[1][0])
	assert.Equal(t, 1.0, m.Values[1][1])
}

func TestCorrelationRounding(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Length_of_Stay,Cost
P-001,1,100
P-002,2,250
P-003,3,260
P-004,4,500
`)

	m, ok := Correlation(table)
	require.True(t, ok)

	r := m.Values[0][1]
	assert.Equal(t, m.Values[1][0], r)
	// Rounded to three decimals.
	assert.Equal(t, roundTo(r, 3), r)
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 1.0)
}

func TestCorrelationSkipsIncompletePairs(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Length_of_Stay,Cost
P-001,1,100
P-002,2,200
P-003,,999999
P-004,3,
`)

	m, ok := Correlation(table)
	require.True(t, ok)
	// Only the two complete pairs participate: perfectly linear.
	assert.Equal(t, 1.0, m.Values[0][1])
}

func TestCorrelationMissingColumn(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Cost
P-001,100
`)

	_, ok := Correlation(table)
	assert.False(t, ok)
}

func TestLengthOfStayCostPairs(t *testing.T) {
	table := loadFixture(t, `Patient_ID,Length_of_Stay,Cost
P-001,1,100
P-002,,200
P-003,3,300
`)

	xs, ys := LengthOfStayCostPairs(table)
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{100, 300}, ys)
}

func TestPearsonUndefined(t *testing.T) {
	// Zero variance in one variable.
	assert.True(t, math.IsNaN(pearson([]float64{1, 1, 1}, []float64{1, 2, 3})))
	// Fewer than two pairs.
	assert.True(t, math.IsNaN(pearson([]float64{1}, []float64{2})))
}
