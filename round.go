package fixednum

// The rounding family is implemented once over a scale s = 10^(19-digits)
// and exposed both in whole-unit form (s = 10^19) and in "to n fractional
// digits" form. digits runs through scaleFor, so values outside [-19, 19]
// are clamped; digits of -19 rounds at 10^38, the highest representable
// decimal place.

// truncMag truncates a magnitude toward zero at scale s.
func truncMag(m, s uint128) uint128 {
	_, r := m.quoRem(s)
	z, _ := m.sub(r)
	return z
}

// truncScale truncates the representation toward zero at scale s.
func truncScale(x int128, s uint128) int128 {
	return truncMag(x.mag(), s).toInt128(x.isNeg())
}

// floorScale rounds the representation toward negative infinity at scale
// s. When the step below would fall outside the representable range, the
// value is returned unchanged.
func floorScale(x int128, s uint128) int128 {
	m := x.mag()
	_, r := m.quoRem(s)
	if r.isZero() || !x.isNeg() {
		z, _ := m.sub(r)
		return z.toInt128(x.isNeg())
	}
	z, _ := m.sub(r)
	z, ok := z.add(s)
	if !ok || !z.fitsInt128(true) {
		return x
	}
	return z.toInt128(true)
}

// ceilScale rounds the representation toward positive infinity at scale
// s. When the step above would fall outside the representable range, the
// value is returned unchanged.
func ceilScale(x int128, s uint128) int128 {
	m := x.mag()
	_, r := m.quoRem(s)
	if r.isZero() || x.isNeg() {
		z, _ := m.sub(r)
		return z.toInt128(x.isNeg())
	}
	z, _ := m.sub(r)
	z, ok := z.add(s)
	if !ok || !z.fitsInt128(false) {
		return x
	}
	return z.toInt128(false)
}

// roundScale rounds the representation half away from zero at scale s:
// a bias of s/2 is applied in the direction of the sign, then the result
// is truncated. When the biased value is not representable, the result
// falls back to plain truncation, so extreme values round toward zero.
func roundScale(x int128, s uint128) int128 {
	neg := x.isNeg()
	half := s.shr1()
	m, ok := x.mag().add(half)
	if !ok || !m.fitsInt128(neg) {
		return truncScale(x, s)
	}
	z := truncMag(m, s)
	if !z.fitsInt128(neg) {
		return truncScale(x, s)
	}
	return z.toInt128(neg)
}

// Trunc rounds d toward zero to a whole number.
// See also method [D19.TruncTo].
func (d D19) Trunc() D19 {
	return D19{repr: truncScale(d.repr, pow10[19])}
}

// TruncTo rounds d toward zero to the given number of fractional digits.
// Negative digits truncate whole-number places: TruncTo(-2) truncates to
// hundreds.
func (d D19) TruncTo(digits int) D19 {
	return D19{repr: truncScale(d.repr, scaleFor(digits))}
}

// Floor rounds d toward negative infinity to a whole number.
// See also method [D19.FloorTo].
func (d D19) Floor() D19 {
	return D19{repr: floorScale(d.repr, pow10[19])}
}

// FloorTo rounds d toward negative infinity to the given number of
// fractional digits.
func (d D19) FloorTo(digits int) D19 {
	return D19{repr: floorScale(d.repr, scaleFor(digits))}
}

// Ceil rounds d toward positive infinity to a whole number.
// See also method [D19.CeilTo].
func (d D19) Ceil() D19 {
	return D19{repr: ceilScale(d.repr, pow10[19])}
}

// CeilTo rounds d toward positive infinity to the given number of
// fractional digits.
func (d D19) CeilTo(digits int) D19 {
	return D19{repr: ceilScale(d.repr, scaleFor(digits))}
}

// Round rounds d half away from zero to a whole number:
// Round(3.5) = 4 and Round(-3.5) = -4.
// See also method [D19.RoundTo].
func (d D19) Round() D19 {
	return D19{repr: roundScale(d.repr, pow10[19])}
}

// RoundTo rounds d half away from zero to the given number of fractional
// digits.
func (d D19) RoundTo(digits int) D19 {
	return D19{repr: roundScale(d.repr, scaleFor(digits))}
}
