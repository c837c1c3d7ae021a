package fixednum

import "fmt"

// Multiplication works on magnitudes split at the scale: for a magnitude
// u, the whole part u/10^19 and the fractional part u mod 10^19 both fit
// in 64 bits. With a = ai + af and b = bi + bf (af, bf scaled), the
// product magnitude is
//
//	ai*bi*10^19 + (ai*bf + af*bi) + af*bf/10^19
//
// where the last division truncates toward zero, discarding fractional
// digits beyond position 19.
//
// Two variants exist. mulGeneralMag always evaluates all four partial
// products. mulOptimizedMag skips the partial products that a pure-integer
// or pure-fraction operand zeroes out, which is the common shape in
// financial inputs. The two are observably identical for every pair of
// operands whose product is representable; the fixednum_mulgen build tag
// selects which one backs [D19.Mul].

// mulGeneralMag calculates the product magnitude without operand-shape
// branching, reporting whether it fit in 128 bits.
func mulGeneralMag(ua, ub uint128) (uint128, bool) {
	ai, af := ua.split()
	bi, bf := ub.split()

	z, ok1 := mul128(ai, bi).mul64(scale)
	cross, ok2 := mul128(ai, bf).add(mul128(af, bi))
	ff, _ := mul128(af, bf).quoRem64(scale)

	z, ok3 := z.add(cross)
	z, ok4 := z.add(ff)
	return z, ok1 && ok2 && ok3 && ok4
}

// mulOptimizedMag calculates the same product magnitude as
// mulGeneralMag, skipping partial products that are structurally zero.
func mulOptimizedMag(ua, ub uint128) (uint128, bool) {
	bi, bf := ub.split()
	if bf == 0 {
		// b is a whole number: a*b = ua*bi exactly.
		return ua.mul64(bi)
	}
	ai, af := ua.split()
	if bi == 0 {
		// b is purely fractional: ai*bf + af*bf/10^19.
		z := mul128(ai, bf)
		ff, _ := mul128(af, bf).quoRem64(scale)
		return z.add(ff)
	}
	if af == 0 {
		// a is a whole number: a*b = ub*ai exactly.
		return ub.mul64(ai)
	}
	z, ok1 := mul128(ai, bi).mul64(scale)
	cross, ok2 := mul128(ai, bf).add(mul128(af, bi))
	ff, _ := mul128(af, bf).quoRem64(scale)
	z, ok3 := z.add(cross)
	z, ok4 := z.add(ff)
	return z, ok1 && ok2 && ok3 && ok4
}

// mulRepr multiplies two representations through the selected magnitude
// variant, reporting whether the signed result is representable.
func mulRepr(a, b int128) (int128, bool) {
	neg := a.isNeg() != b.isNeg()
	m, ok := mulMag(a.mag(), b.mag())
	if !ok {
		return m.toInt128(neg), false
	}
	z, ok := int128FromMag(neg, m)
	return z, ok
}

// Mul calculates d * e, truncating fractional digits beyond position 19
// toward zero and wrapping on overflow.
// Under the fixednum_overflowchecks build tag it panics instead.
// See also methods [D19.CheckedMul], [D19.SaturatingMul].
func (d D19) Mul(e D19) D19 {
	z, ok := mulRepr(d.repr, e.repr)
	if !ok && overflowChecks {
		panic(fmt.Sprintf("Mul(%v, %v) failed: %v", d, e, ErrOverflow))
	}
	return D19{repr: z}
}

// CheckedMul calculates d * e and reports whether the result is
// representable.
func (d D19) CheckedMul(e D19) (D19, bool) {
	z, ok := mulRepr(d.repr, e.repr)
	if !ok {
		return D19{}, false
	}
	return D19{repr: z}, true
}

// SaturatingMul calculates d * e, clamping to Max when the true result is
// positive and to Min when it is negative.
func (d D19) SaturatingMul(e D19) D19 {
	z, ok := mulRepr(d.repr, e.repr)
	if !ok {
		if d.repr.isNeg() != e.repr.isNeg() {
			return Min
		}
		return Max
	}
	return D19{repr: z}
}
