package uncertainty

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertionConfig controls how measurement assertions compare results.
type AssertionConfig struct {
	// Significant digits both sides are rounded to before comparison
	// (0 disables rounding)
	Digits int

	// Absolute tolerance after rounding
	Tolerance float64
}

// DefaultAssertionConfig returns the settings used for hand-worked
// propagation examples: two significant digits, tight tolerance.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Digits:    2,
		Tolerance: 1e-9,
	}
}

// AssertMeasurement verifies got matches the expected value and
// uncertainty once both sides are rounded to cfg.Digits.
func AssertMeasurement(t *testing.T, got Measurement, wantValue, wantUncertainty float64, cfg AssertionConfig) {
	t.Helper()

	if !closeEnough(got.Value(), wantValue, cfg) {
		t.Errorf("Value mismatch: got %g (rounded %g), want %g",
			got.Value(), roundFor(got.Value(), cfg), wantValue)
	}

	if !closeEnough(got.Uncertainty(), wantUncertainty, cfg) {
		t.Errorf("Uncertainty mismatch: got %g (rounded %g), want %g",
			got.Uncertainty(), roundFor(got.Uncertainty(), cfg), wantUncertainty)
	}

	t.Logf("✓ %v ≈ %g ± %g (digits: %d)", got, wantValue, wantUncertainty, cfg.Digits)
}

// AssertNonFinite verifies the uncertainty of m is Inf or NaN, the expected
// outcome of multiplying or dividing by a zero-magnitude measurement.
func AssertNonFinite(t *testing.T, m Measurement) {
	t.Helper()

	u := m.Uncertainty()
	if !math.IsNaN(u) && !math.IsInf(u, 0) {
		t.Errorf("Expected non-finite uncertainty, got %v", m)
		return
	}

	t.Logf("✓ Non-finite uncertainty propagated: %v", m)
}

// AssertLaws runs every default law over all pairs of samples.
func AssertLaws(t *testing.T, samples []Measurement) {
	t.Helper()

	violations := Verify(samples, DefaultLaws())
	for _, v := range violations {
		t.Errorf("%v", v)
	}

	if len(violations) == 0 {
		t.Logf("✓ %d laws hold for %d sample pairs", len(DefaultLaws()), len(samples)*len(samples))
	}
}

func closeEnough(got, want float64, cfg AssertionConfig) bool {
	return scalar.EqualWithinAbs(roundFor(got, cfg), roundFor(want, cfg), cfg.Tolerance)
}

func roundFor(x float64, cfg AssertionConfig) float64 {
	if cfg.Digits == 0 {
		return x
	}
	return Round(x, cfg.Digits)
}
