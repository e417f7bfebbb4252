// Package analysis implements the report steps over the cleaned admissions
// table: overview, descriptive statistics, department aggregations,
// readmission rates, length-of-stay/cost correlation, and the monthly
// admissions series. Every function is a pure read of the table; rendering
// happens in the report package.
package analysis
