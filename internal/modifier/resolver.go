package modifier

import "math/big"

// Precision is the number of fractional bits kept on top of the integer
// part of every value a modifier computes with
const Precision = 256

// WorkingPrec returns a mantissa size that holds value's integer part
// exactly with Precision bits to spare
func WorkingPrec(value *big.Float) uint {
	prec := uint(Precision)
	if exp := value.MantExp(nil); exp > 0 {
		prec += uint(exp)
	}
	return max(prec, value.Prec())
}

// Apply calculates the modified value for a single modifier.
// The input is never mutated.
func Apply(m *Modifier, value *big.Float) *big.Float {
	prec := WorkingPrec(value)
	result := new(big.Float).SetPrec(prec).Set(value)
	if m == nil {
		return result
	}

	switch m.Type {
	case TypeMultiplicative:
		// value * (1 + Value)
		factor := new(big.Float).SetPrec(prec).SetFloat64(1 + m.Value)
		result.Mul(result, factor)

	case TypeLinear:
		// value + Value
		result.Add(result, new(big.Float).SetPrec(prec).SetFloat64(m.Value))

	case TypeFixed:
		result.SetFloat64(m.Value)

	default:
		return result
	}

	// Apply bounds
	if m.Max != nil {
		if upper := big.NewFloat(*m.Max); result.Cmp(upper) > 0 {
			result.Set(upper)
		}
	}
	if m.Min != nil {
		if lower := big.NewFloat(*m.Min); result.Cmp(lower) < 0 {
			result.Set(lower)
		}
	}

	return result
}

// Pipeline applies the modifiers in order. Order is significant:
// a fixed modifier discards everything applied before it.
func Pipeline(value *big.Float, mods ...*Modifier) *big.Float {
	result := new(big.Float).SetPrec(WorkingPrec(value)).Set(value)
	for _, m := range mods {
		result = Apply(m, result)
	}
	return result
}

// Floor converts a modified value back to a whole amount, rounding down.
// Negative results are clamped to zero.
func Floor(value *big.Float) *big.Int {
	if value.Sign() <= 0 {
		return new(big.Int)
	}
	out, _ := value.Int(nil)
	return out
}
