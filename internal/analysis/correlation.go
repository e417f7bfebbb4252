package analysis

import (
	"math"

	"edacli/internal/dataset"
)

// Correlation computes the pairwise Pearson correlation matrix between
// Length_of_Stay and Cost over rows where both values are present, rounded
// to three decimals. Returns false when either column is absent from the
// table.
func Correlation(t *dataset.Table) (CorrelationMatrix, bool) {
	m := CorrelationMatrix{
		Labels: [2]string{dataset.ColLengthOfStay, dataset.ColCost},
	}
	if !t.HasColumn(dataset.ColLengthOfStay) || !t.HasColumn(dataset.ColCost) {
		return m, false
	}

	var xs, ys []float64
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.LengthOfStay.Valid && row.Cost.Valid {
			xs = append(xs, row.LengthOfStay.Float64)
			ys = append(ys, row.Cost.Float64)
		}
	}

	r := roundTo(pearson(xs, ys), 3)
	m.Values = [2][2]float64{
		{1.0, r},
		{r, 1.0},
	}
	return m, true
}

// LengthOfStayCostPairs returns the stay and cost values for rows where both
// are present, in row order. Suitable for scatter plotting.
func LengthOfStayCostPairs(t *dataset.Table) ([]float64, []float64) {
	var xs, ys []float64
	for i := range t.Rows {
		row := &t.Rows[i]
		if row.LengthOfStay.Valid && row.Cost.Valid {
			xs = append(xs, row.LengthOfStay.Float64)
			ys = append(ys, row.Cost.Float64)
		}
	}
	return xs, ys
}

// pearson returns the Pearson correlation coefficient, NaN when undefined
// (fewer than two pairs or zero variance).
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
