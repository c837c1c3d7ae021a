package fixednum

import (
	"fmt"
	"math"
)

// FromInt64 converts an integer to its exact value. The conversion is
// total: every int64 scaled by 10^19 stays well inside the 128-bit range.
func FromInt64(v int64) D19 {
	neg := v < 0
	var m uint64
	if neg {
		m = -uint64(v)
	} else {
		m = uint64(v)
	}
	return D19{repr: mul128(m, scale).toInt128(neg)}
}

// FromInt32 converts an integer to its exact value.
func FromInt32(v int32) D19 { return FromInt64(int64(v)) }

// FromInt16 converts an integer to its exact value.
func FromInt16(v int16) D19 { return FromInt64(int64(v)) }

// FromInt8 converts an integer to its exact value.
func FromInt8(v int8) D19 { return FromInt64(int64(v)) }

// FromUint32 converts an integer to its exact value.
func FromUint32(v uint32) D19 { return FromInt64(int64(v)) }

// FromUint16 converts an integer to its exact value.
func FromUint16(v uint16) D19 { return FromInt64(int64(v)) }

// FromUint8 converts an integer to its exact value.
func FromUint8(v uint8) D19 { return FromInt64(int64(v)) }

// FromUint64 converts an integer, reporting false beyond MaxInt.
func FromUint64(v uint64) (D19, bool) {
	m := mul128(v, scale)
	if !m.fitsInt128(false) {
		return D19{}, false
	}
	return D19{repr: m.toInt128(false)}, true
}

// FromFloat64 converts a binary float by scaling it and rounding to the
// nearest representable value. The scaling is a float64 multiplication,
// so its rounding error carries over: 123.25 converts to
// 123.2499999999999868928.
//
// FromFloat64 returns an error wrapping:
//   - [ErrNaN] for NaN;
//   - [ErrOverflow] for +Inf or a value above [Max];
//   - [ErrUnderflow] for -Inf or a value below [Min].
func FromFloat64(f float64) (D19, error) {
	switch {
	case math.IsNaN(f):
		return D19{}, fmt.Errorf("converting %v: %w", f, ErrNaN)
	case math.IsInf(f, 1):
		return D19{}, fmt.Errorf("converting %v: %w", f, ErrOverflow)
	case math.IsInf(f, -1):
		return D19{}, fmt.Errorf("converting %v: %w", f, ErrUnderflow)
	}
	g := f * scale
	limit := math.Ldexp(1, 127)
	switch {
	case g >= limit:
		return D19{}, fmt.Errorf("converting %v: %w", f, ErrOverflow)
	case g < -limit:
		return D19{}, fmt.Errorf("converting %v: %w", f, ErrUnderflow)
	}
	return D19{repr: u128FromFloat(math.Abs(g)).toInt128(g < 0)}, nil
}

// FromFloat32 converts a binary float like [FromFloat64].
func FromFloat32(f float32) (D19, error) {
	return FromFloat64(float64(f))
}

// u128FromFloat converts a non-negative float to a magnitude, rounding to
// nearest below 2^63 and exactly above, where the float has no fractional
// part left.
func u128FromFloat(f float64) uint128 {
	if f <= 0 {
		return uint128{}
	}
	if f < 1<<63 {
		return uint128{lo: uint64(math.Round(f))}
	}
	b := math.Float64bits(f)
	exp := int(b>>52&0x7ff) - 1023 - 52
	mant := b&(1<<52-1) | 1<<52
	return uint128{lo: mant}.shl(uint(exp))
}

// Int64 truncates d toward zero, reporting false when the whole part does
// not fit.
func (d D19) Int64() (int64, bool) {
	whole, _ := d.repr.mag().split()
	if d.repr.isNeg() {
		switch {
		case whole < 1<<63:
			return -int64(whole), true
		case whole == 1<<63:
			return math.MinInt64, true
		}
		return 0, false
	}
	if whole > math.MaxInt64 {
		return 0, false
	}
	return int64(whole), true
}

// Int32 truncates d toward zero, reporting false when the whole part does
// not fit.
func (d D19) Int32() (int32, bool) {
	v, ok := d.Int64()
	if !ok || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// Int16 truncates d toward zero, reporting false when the whole part does
// not fit.
func (d D19) Int16() (int16, bool) {
	v, ok := d.Int64()
	if !ok || v < math.MinInt16 || v > math.MaxInt16 {
		return 0, false
	}
	return int16(v), true
}

// Int8 truncates d toward zero, reporting false when the whole part does
// not fit.
func (d D19) Int8() (int8, bool) {
	v, ok := d.Int64()
	if !ok || v < math.MinInt8 || v > math.MaxInt8 {
		return 0, false
	}
	return int8(v), true
}

// Uint64 truncates d toward zero, reporting false for values at or below
// -1. The whole part of any non-negative value fits in 64 bits.
func (d D19) Uint64() (uint64, bool) {
	whole, _ := d.repr.mag().split()
	if d.repr.isNeg() && whole != 0 {
		return 0, false
	}
	return whole, true
}

// Uint32 truncates d toward zero, reporting false when the whole part
// does not fit.
func (d D19) Uint32() (uint32, bool) {
	v, ok := d.Uint64()
	if !ok || v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// Uint16 truncates d toward zero, reporting false when the whole part
// does not fit.
func (d D19) Uint16() (uint16, bool) {
	v, ok := d.Uint64()
	if !ok || v > math.MaxUint16 {
		return 0, false
	}
	return uint16(v), true
}

// Uint8 truncates d toward zero, reporting false when the whole part
// does not fit.
func (d D19) Uint8() (uint8, bool) {
	v, ok := d.Uint64()
	if !ok || v > math.MaxUint8 {
		return 0, false
	}
	return uint8(v), true
}

// Float64 converts d to the nearest binary float. The whole and
// fractional parts convert separately and sum, preserving the leading
// 15-17 significant digits without cancellation.
func (d D19) Float64() float64 {
	whole, frac := d.repr.mag().split()
	f := float64(whole) + float64(frac)/scale
	if d.repr.isNeg() {
		return -f
	}
	return f
}

// Float32 converts d to the nearest binary float, through float64.
func (d D19) Float32() float32 {
	return float32(d.Float64())
}
