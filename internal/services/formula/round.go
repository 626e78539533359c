package formula

import (
	"math"
	"strconv"
)

// Round4 rounds x to 4 decimal places.
func Round4(x float64) float64 { return roundPlaces(x, 4) }

// roundPlaces rounds through the correctly rounded decimal expansion of x:
// the result is decided by the exact binary value, with exact ties going to
// the even digit.
func roundPlaces(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
