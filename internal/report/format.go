package report

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// money renders v with 2 decimal places, rounding half away from zero.
func money(v float64) string {
	return fixed(v, 2)
}

// unitCost renders a per-mg cost with 6 decimal places.
func unitCost(v float64) string {
	return fixed(v, 6)
}

// fixed rounds v to places. NaN and infinities have no decimal form and are
// printed as strconv does.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// amount renders milligrams without trailing zeros.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
