package analysis

import (
	"edacli/internal/dataset"
)

// sampleSize is the number of rows shown verbatim in the overview
const sampleSize = 5

// BuildOverview reports the dataset shape, the column list, and the first
// five records exactly as they appeared in the input.
func BuildOverview(t *dataset.Table) Overview {
	return Overview{
		RowCount:    t.NumRows(),
		ColumnCount: t.NumColumns(),
		Columns:     t.Columns,
		Sample:      t.Head(sampleSize),
	}
}
