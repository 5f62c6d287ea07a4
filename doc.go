// Package uncertainty provides a measurement type that carries its
// propagated uncertainty through arithmetic.
//
// # Overview
//
// A Measurement is a value with an absolute uncertainty, written v ± δv.
// Combining measurements with Add, Sub, Mul and Div produces a new
// Measurement whose uncertainty follows linear (worst-case) propagation
// for independent operands:
//
//	q = x + y   →  δq = δx + δy
//	q = x - y   →  δq = δx + δy
//	q = x · y   →  δq = (δx/|x| + δy/|y|) · q
//	q = x / y   →  δq = (δx/|x| + δy/|y|) · q
//
// This is not root-sum-square propagation and no distribution is modeled.
//
// # Quick Start
//
//	x := uncertainty.New(4.52, 0.02)
//	y := uncertainty.New(2.0, 0.2)
//	z := uncertainty.New(3.0, 0.6)
//
//	fmt.Println(x.Add(y).Add(z))           // 9.52 ± 0.82
//	fmt.Println(x.Sub(y).Sub(z).Format(2)) // -0.48 ± 0.82
//	fmt.Println(y.Div(z).Format(2))        // 0.67 ± 0.2
//
// # Edge Cases
//
// No operator returns an error or panics. Invalid results are represented
// with IEEE-754 values:
//   - Mul or Div with a zero-valued operand: the relative uncertainty δx/|x|
//     is Inf (or NaN for 0/0) and so is the result's uncertainty.
//   - Div by a zero value: the value itself is ±Inf or NaN.
//   - Mul/Div scale by q, so a negative product carries a negative
//     uncertainty. Take math.Abs on display if needed.
//
// New accepts anything, including negative uncertainties. NewStrict is an
// opt-in constructor that rejects them.
//
// # Rounding
//
// Operators never round. Round and Measurement.Format round to a number of
// significant digits for presentation only.
//
// # Testing
//
// Use the assertion helpers to check propagated results and laws:
//
//	func TestVolume(t *testing.T) {
//	    v := uncertainty.Product(l, w, h)
//	    uncertainty.AssertMeasurement(t, v, 12.0, 0.9, uncertainty.DefaultAssertionConfig())
//	    uncertainty.AssertLaws(t, []uncertainty.Measurement{l, w, h})
//	}
//
// # See Also
//
//   - examples/ - Working code samples
package uncertainty
