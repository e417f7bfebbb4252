// Package dataset loads the hospital admissions table from a CSV or XLSX
// file and applies the cleaning steps the analyzers rely on: forgiving date
// parsing, nullable numerics, and the derived length-of-stay column.
package dataset
