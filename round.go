package uncertainty

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Round rounds x to the given number of digits, counted from the most
// significant digit rather than the decimal point:
//
//	shift = digits - ⌈log10|x|⌉
//	Round(x, digits) = round(x · 10^shift) / 10^shift
//
// Halves round away from zero. Round(0, n) and Round(x, 0) are both 0.
// NaN and ±Inf are returned unchanged.
//
// Examples:
//
//	Round(9.04, 3)   = 9.04
//	Round(0.944, 2)  = 0.94
//	Round(-0.48, 2)  = -0.48
//	Round(1234.5, 2) = 1200
func Round(x float64, digits int) float64 {
	if x == 0 || digits == 0 {
		return 0
	}
	if !isFinite(x) {
		return x
	}

	shift := digits - int(math.Ceil(math.Log10(math.Abs(x))))
	return scalar.Round(x, shift)
}

// RoundMeasurement rounds both the value and the uncertainty of m.
func RoundMeasurement(m Measurement, digits int) Measurement {
	return New(Round(m.value, digits), Round(m.uncertainty, digits))
}
