package uncertainty

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSum_MatchesChainedAdd(t *testing.T) {
	x, y, z := sampleXYZ()

	got := Sum(x, y, z)
	want := x.Add(y).Add(z)

	if !scalar.EqualWithinAbsOrRel(got.Value(), want.Value(), 1e-12, 1e-12) {
		t.Errorf("Sum value = %v, want %v", got.Value(), want.Value())
	}
	if !scalar.EqualWithinAbsOrRel(got.Uncertainty(), want.Uncertainty(), 1e-12, 1e-12) {
		t.Errorf("Sum uncertainty = %v, want %v", got.Uncertainty(), want.Uncertainty())
	}

	t.Logf("✓ Sum(x, y, z) = %v", got)
}

func TestSum_Empty(t *testing.T) {
	if got := Sum(); got.Value() != 0 || got.Uncertainty() != 0 {
		t.Errorf("Sum() = %v, want 0 ± 0", got)
	}
}

func TestProduct(t *testing.T) {
	x, y, z := sampleXYZ()

	tests := []struct {
		name string
		got  Measurement
		want Measurement
	}{
		{"empty", Product(), New(1, 0)},
		{"single", Product(x), x},
		{"pair", Product(x, y), x.Mul(y)},
		{"triple", Product(x, y, z), x.Mul(y).Mul(z)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Product = %v, want %v", tt.got, tt.want)
			}
		})
	}
}
