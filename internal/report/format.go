package report

import (
	"fmt"
	"math"
)

// formatFloat formats a float for report output with exactly 2 decimal places
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", f)
}

// formatPercent formats a percentage with 1 decimal place and a percent sign
func formatPercent(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return fmt.Sprintf("%.1f%%", f)
}

// formatCorrelation formats a correlation coefficient with 3 decimal places
func formatCorrelation(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return fmt.Sprintf("%.3f", f)
}

// formatCount formats an integer count
func formatCount(i int) string {
	return fmt.Sprintf("%d", i)
}
