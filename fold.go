package uncertainty

import "gonum.org/v1/gonum/floats"

// Sum adds all measurements. Values and uncertainties are summed as two
// independent columns, so Sum(x, y, z) matches x.Add(y).Add(z) up to
// floating point reassociation. Sum() is 0 ± 0.
func Sum(ms ...Measurement) Measurement {
	if len(ms) == 0 {
		return New(0, 0)
	}

	values := make([]float64, len(ms))
	uncertainties := make([]float64, len(ms))
	for i, m := range ms {
		values[i] = m.value
		uncertainties[i] = m.uncertainty
	}

	return New(floats.Sum(values), floats.Sum(uncertainties))
}

// Product multiplies all measurements left to right with Mul.
// Product() is 1 ± 0 and Product(x) is x.
func Product(ms ...Measurement) Measurement {
	if len(ms) == 0 {
		return New(1, 0)
	}

	result := ms[0]
	for _, m := range ms[1:] {
		result = result.Mul(m)
	}
	return result
}
