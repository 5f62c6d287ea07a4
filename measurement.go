package uncertainty

import (
	"fmt"
	"math"
)

// Measurement is a measured value paired with its absolute uncertainty.
//
// Measurements are immutable: every operator returns a new value and never
// modifies its operands, so a Measurement can be copied and shared freely
// between goroutines.
//
// Propagation is linear (worst case), not root-sum-square:
//
//	q = x ± y   →  δq = δx + δy
//	q = x · y   →  δq = (δx/|x| + δy/|y|) · q
//	q = x / y   →  δq = (δx/|x| + δy/|y|) · q
//
// All operands are assumed independent.
type Measurement struct {
	value       float64
	uncertainty float64
}

// New returns a Measurement. No validation is performed; see NewStrict for
// a constructor that rejects negative or non-finite input.
func New(value, uncertainty float64) Measurement {
	return Measurement{value: value, uncertainty: uncertainty}
}

// Value returns the central measured quantity.
func (m Measurement) Value() float64 {
	return m.value
}

// Uncertainty returns the absolute uncertainty.
func (m Measurement) Uncertainty() float64 {
	return m.uncertainty
}

// Add returns m + b. Absolute uncertainties add.
func (m Measurement) Add(b Measurement) Measurement {
	return Measurement{
		value:       m.value + b.value,
		uncertainty: m.uncertainty + b.uncertainty,
	}
}

// Sub returns m - b.
//
// Uncertainties still ADD: combining two independent measurements can only
// widen the error bound, whatever the sign of the value operation.
func (m Measurement) Sub(b Measurement) Measurement {
	return Measurement{
		value:       m.value - b.value,
		uncertainty: m.uncertainty + b.uncertainty,
	}
}

// Mul returns m · b using relative uncertainty propagation.
//
// A zero-valued operand makes its relative uncertainty a division by zero.
// The resulting Inf or NaN is carried into the uncertainty as is.
func (m Measurement) Mul(b Measurement) Measurement {
	return scaled(m.value*b.value, m, b)
}

// Div returns m / b using relative uncertainty propagation.
//
// Same zero-magnitude caveat as Mul; b.Value() == 0 also makes the value
// itself infinite or NaN.
func (m Measurement) Div(b Measurement) Measurement {
	return scaled(m.value/b.value, m, b)
}

// scaled applies δq = (δa/|a| + δb/|b|) · q.
func scaled(q float64, a, b Measurement) Measurement {
	return Measurement{
		value:       q,
		uncertainty: (a.RelativeUncertainty() + b.RelativeUncertainty()) * q,
	}
}

// RelativeUncertainty returns δv/|v|. It is Inf or NaN when the value is 0.
func (m Measurement) RelativeUncertainty() float64 {
	return m.uncertainty / math.Abs(m.value)
}

// IsFinite reports whether both the value and the uncertainty are finite.
func (m Measurement) IsFinite() bool {
	return isFinite(m.value) && isFinite(m.uncertainty)
}

// String formats the measurement as "value ± uncertainty".
func (m Measurement) String() string {
	return fmt.Sprintf("%g ± %g", m.value, m.uncertainty)
}

// Format is like String but rounds both fields with Round first.
func (m Measurement) Format(digits int) string {
	return RoundMeasurement(m, digits).String()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
