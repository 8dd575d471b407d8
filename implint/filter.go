package implint

import "math"

// FilterRow reports whether a row is eligible for network-matrix
// detection: every non-continuous coefficient must be integral, and both
// finite sides must be integral. isContinuous[j] marks column j as a
// continuous variable; coeff holds the row's dense coefficients over the
// same columns. Grounded on presol_implint.c's row-integrality scan
// (SCIPmatrixGetRowLhs/Rhs plus the per-column continuous/integral test).
func FilterRow(isContinuous []bool, coeff []float64, lhs, rhs float64) bool {
	if !sideIntegral(lhs) || !sideIntegral(rhs) {
		return false
	}
	for j, c := range coeff {
		continuous := j < len(isContinuous) && isContinuous[j]
		if !continuous && !isIntegral(c) {
			return false
		}
	}

	return true
}

func sideIntegral(v float64) bool {
	return math.IsInf(v, 0) || isIntegral(v)
}

func isIntegral(v float64) bool {
	return v == math.Trunc(v)
}
