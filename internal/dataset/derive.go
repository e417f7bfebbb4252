package dataset

import (
	"strconv"
	"time"
)

// DeriveLengthOfStay repairs the Length_of_Stay column from the admission
// and discharge dates. When both date columns exist and the existing column
// is absent or has any missing values, each row with a parseable date pair
// gets the whole-day difference, clamped at zero to guard against inverted
// or corrupt pairs. Rows with unparseable dates keep whatever value was
// already present. Returns true when the column was rewritten.
//
// This is a best-effort repair step, not validation: no rows are rejected.
func DeriveLengthOfStay(t *Table) bool {
	if !t.HasColumn(ColAdmissionDate) || !t.HasColumn(ColDischargeDate) {
		return false
	}

	losIdx, hasLOS := t.ColumnIndex(ColLengthOfStay)
	if hasLOS && !hasMissingLOS(t) {
		return false
	}
	if !hasLOS {
		losIdx = t.appendColumn(ColLengthOfStay)
	}

	for i := range t.Rows {
		row := &t.Rows[i]
		if !row.AdmissionDate.Valid || !row.DischargeDate.Valid {
			continue
		}
		days := wholeDays(row.AdmissionDate.Time, row.DischargeDate.Time)
		if days < 0 {
			days = 0
		}
		row.LengthOfStay = NullFloat{Float64: float64(days), Valid: true}
		row.Cells[losIdx] = strconv.Itoa(days)
	}

	return true
}

// hasMissingLOS reports whether any row lacks a length-of-stay value
func hasMissingLOS(t *Table) bool {
	for i := range t.Rows {
		if !t.Rows[i].LengthOfStay.Valid {
			return true
		}
	}
	return false
}

// wholeDays returns the whole-day difference between two timestamps,
// truncated toward zero.
func wholeDays(admission, discharge time.Time) int {
	return int(discharge.Sub(admission) / (24 * time.Hour))
}
