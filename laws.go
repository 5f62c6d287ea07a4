package uncertainty

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the absolute and relative tolerance used when a law
// compares two floating point results.
const DefaultTolerance = 1e-12

// Law is a property that must hold for every pair of measurements.
// Check returns nil when the property holds for (a, b).
type Law struct {
	Name  string
	Check func(a, b Measurement) error
}

// Violation records a law that failed for a specific pair of operands.
type Violation struct {
	Law  string
	A, B Measurement
	Err  error
}

func (v Violation) Error() string {
	return fmt.Sprintf("law %s violated for a=%v, b=%v: %v", v.Law, v.A, v.B, v.Err)
}

// LawAddCommutative: a + b == b + a.
var LawAddCommutative = Law{
	Name: "AddCommutative",
	Check: func(a, b Measurement) error {
		return sameMeasurement(a.Add(b), b.Add(a))
	},
}

// LawMulCommutative: a · b == b · a, including the propagated uncertainty.
var LawMulCommutative = Law{
	Name: "MulCommutative",
	Check: func(a, b Measurement) error {
		return sameMeasurement(a.Mul(b), b.Mul(a))
	},
}

// LawUncertaintyGrows: for non-negative uncertainties, neither a + b nor
// a - b has a smaller uncertainty than either operand.
//
//	δ(a ± b) ≥ max(δa, δb)
//
// Pairs with a negative or non-finite uncertainty are skipped.
var LawUncertaintyGrows = Law{
	Name: "UncertaintyGrows",
	Check: func(a, b Measurement) error {
		if Validate(a) != nil || Validate(b) != nil {
			return nil
		}

		floor := math.Max(a.uncertainty, b.uncertainty)
		if u := a.Add(b).uncertainty; u < floor {
			return fmt.Errorf("add: δ=%g < %g", u, floor)
		}
		if u := a.Sub(b).uncertainty; u < floor {
			return fmt.Errorf("sub: δ=%g < %g", u, floor)
		}
		return nil
	},
}

// LawSubUncertaintyAdds: subtraction propagates exactly the same
// uncertainty as addition.
var LawSubUncertaintyAdds = Law{
	Name: "SubUncertaintyAdds",
	Check: func(a, b Measurement) error {
		sum, diff := a.Add(b).uncertainty, a.Sub(b).uncertainty
		if !sameFloat(sum, diff) {
			return fmt.Errorf("δ(a-b)=%g, δ(a+b)=%g", diff, sum)
		}
		return nil
	},
}

// LawAccessorsStable: repeated reads return the stored fields and no
// operator mutates its operands.
var LawAccessorsStable = Law{
	Name: "AccessorsStable",
	Check: func(a, b Measurement) error {
		before := [...]float64{a.Value(), a.Uncertainty(), b.Value(), b.Uncertainty()}

		_ = a.Add(b)
		_ = a.Sub(b)
		_ = a.Mul(b)
		_ = a.Div(b)

		after := [...]float64{a.Value(), a.Uncertainty(), b.Value(), b.Uncertainty()}
		for i := range before {
			if !sameBits(before[i], after[i]) {
				return fmt.Errorf("field %d changed: %g → %g", i, before[i], after[i])
			}
		}
		return nil
	},
}

// DefaultLaws returns every built-in law.
func DefaultLaws() []Law {
	return []Law{
		LawAddCommutative,
		LawMulCommutative,
		LawUncertaintyGrows,
		LawSubUncertaintyAdds,
		LawAccessorsStable,
	}
}

// Verify checks every law against every ordered pair of samples,
// including each sample paired with itself.
func Verify(samples []Measurement, laws []Law) []Violation {
	var violations []Violation
	for _, a := range samples {
		for _, b := range samples {
			for _, law := range laws {
				if err := law.Check(a, b); err != nil {
					violations = append(violations, Violation{Law: law.Name, A: a, B: b, Err: err})
				}
			}
		}
	}
	return violations
}

func sameMeasurement(x, y Measurement) error {
	if !sameFloat(x.value, y.value) {
		return fmt.Errorf("value %g != %g", x.value, y.value)
	}
	if !sameFloat(x.uncertainty, y.uncertainty) {
		return fmt.Errorf("uncertainty %g != %g", x.uncertainty, y.uncertainty)
	}
	return nil
}

// sameFloat is approximate equality where NaN equals NaN and an infinity
// only equals itself.
func sameFloat(x, y float64) bool {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x == y
	}
	return scalar.EqualWithinAbsOrRel(x, y, DefaultTolerance, DefaultTolerance)
}

func sameBits(x, y float64) bool {
	return math.Float64bits(x) == math.Float64bits(y)
}
