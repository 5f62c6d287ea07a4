package uncertainty

import (
	"errors"
	"fmt"
)

// Errors returned by the strict constructor. New never returns them.
var (
	ErrNegativeUncertainty = errors.New("uncertainty: negative uncertainty")
	ErrNonFinite           = errors.New("uncertainty: non-finite field")
)

// NewStrict is New with validation. It rejects a negative uncertainty and
// NaN or ±Inf in either field.
//
// This is an opt-in extension: the arithmetic operators stay permissive and
// happily produce Inf/NaN from zero-magnitude operands.
func NewStrict(value, uncertainty float64) (Measurement, error) {
	m := New(value, uncertainty)
	if err := Validate(m); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Validate reports whether m would have been accepted by NewStrict.
func Validate(m Measurement) error {
	if !isFinite(m.value) {
		return fmt.Errorf("value %v: %w", m.value, ErrNonFinite)
	}
	if !isFinite(m.uncertainty) {
		return fmt.Errorf("uncertainty %v: %w", m.uncertainty, ErrNonFinite)
	}
	if m.uncertainty < 0 {
		return fmt.Errorf("uncertainty %v: %w", m.uncertainty, ErrNegativeUncertainty)
	}
	return nil
}
