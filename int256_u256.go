//go:build !fixednum_bigint

package fixednum

import (
	"fmt"

	"github.com/holiman/uint256"
)

// int256 is a signed 256-bit integer in sign-magnitude form over
// [uint256.Int]. It carries the wide intermediates of division, square
// root and logarithm. The magnitudes that arise there are bounded by
// products of two 128-bit values, so magnitude arithmetic never wraps.
type int256 struct {
	neg bool
	mag uint256.Int
}

// getInt256 returns a zeroed wide integer. The math/big backend pools
// these; here allocation is cheap enough to come from the heap or stack.
func getInt256() *int256 {
	return &int256{}
}

func putInt256(*int256) {}

// norm clears the sign of a zero magnitude so that zero is unique.
func (z *int256) norm() *int256 {
	if z.mag.IsZero() {
		z.neg = false
	}
	return z
}

// setI128 sets z to the value of x.
func (z *int256) setI128(x int128) *int256 {
	m := x.mag()
	z.neg = x.isNeg()
	z.mag.SetUint64(m.hi)
	z.mag.Lsh(&z.mag, 64)
	var lo uint256.Int
	lo.SetUint64(m.lo)
	z.mag.Or(&z.mag, &lo)
	return z.norm()
}

// setU64 sets z to the value of v.
func (z *int256) setU64(v uint64) *int256 {
	z.neg = false
	z.mag.SetUint64(v)
	return z
}

// set sets z to the value of x.
func (z *int256) set(x *int256) *int256 {
	z.neg = x.neg
	z.mag.Set(&x.mag)
	return z
}

// isZero reports whether x == 0.
func (x *int256) isZero() bool {
	return x.mag.IsZero()
}

// sign returns -1, 0 or +1.
func (x *int256) sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// cmp compares x and y, returning -1, 0 or +1.
func (x *int256) cmp(y *int256) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.mag.Cmp(&x.mag)
	}
	return x.mag.Cmp(&y.mag)
}

// add calculates z = x + y.
func (z *int256) add(x, y *int256) {
	if x.neg == y.neg {
		z.neg = x.neg
		z.mag.Add(&x.mag, &y.mag)
		z.norm()
		return
	}
	if x.mag.Cmp(&y.mag) >= 0 {
		z.neg = x.neg
		z.mag.Sub(&x.mag, &y.mag)
	} else {
		z.neg = y.neg
		z.mag.Sub(&y.mag, &x.mag)
	}
	z.norm()
}

// sub calculates z = x - y.
func (z *int256) sub(x, y *int256) {
	t := int256{neg: !y.neg}
	t.mag.Set(&y.mag)
	z.add(x, t.norm())
}

// mul calculates z = x * y.
func (z *int256) mul(x, y *int256) {
	z.neg = x.neg != y.neg
	z.mag.Mul(&x.mag, &y.mag)
	z.norm()
}

// quo calculates z = x / y, truncated toward zero. The divisor must be
// non-zero; callers check.
func (z *int256) quo(x, y *int256) {
	z.neg = x.neg != y.neg
	z.mag.Div(&x.mag, &y.mag)
	z.norm()
}

// mulU64 calculates z = x * v.
func (z *int256) mulU64(x *int256, v uint64) {
	var m uint256.Int
	m.SetUint64(v)
	z.neg = x.neg && v != 0
	z.mag.Mul(&x.mag, &m)
	z.norm()
}

// quoU64 calculates z = x / v, truncated toward zero.
func (z *int256) quoU64(x *int256, v uint64) {
	var m uint256.Int
	m.SetUint64(v)
	z.neg = x.neg
	z.mag.Div(&x.mag, &m)
	z.norm()
}

// neg256 calculates z = -x.
func (z *int256) neg256(x *int256) {
	z.neg = !x.neg
	z.mag.Set(&x.mag)
	z.norm()
}

// abs calculates z = |x|.
func (z *int256) abs(x *int256) {
	z.neg = false
	z.mag.Set(&x.mag)
}

// dbl calculates z = 2 * x.
func (z *int256) dbl(x *int256) {
	z.neg = x.neg
	z.mag.Lsh(&x.mag, 1)
}

// hlf calculates z = x / 2, truncated toward zero.
func (z *int256) hlf(x *int256) {
	z.neg = x.neg
	z.mag.Rsh(&x.mag, 1)
	z.norm()
}

// i128 narrows to a signed 128-bit value, reporting whether it fit.
func (x *int256) i128() (int128, bool) {
	m := uint128{hi: x.mag[1], lo: x.mag[0]}
	if x.mag[2]|x.mag[3] != 0 || !m.fitsInt128(x.neg) {
		return m.toInt128(x.neg), false
	}
	return m.toInt128(x.neg), true
}

// asI128 narrows to a signed 128-bit value, truncating high bits.
// Under the fixednum_overflowchecks build tag a lossy narrowing panics.
func (x *int256) asI128() int128 {
	z, ok := x.i128()
	if !ok && overflowChecks {
		panic(fmt.Sprintf("asI128() failed: %v", ErrOverflow))
	}
	return z
}
