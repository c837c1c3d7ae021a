//go:build fixednum_bigint

package fixednum

import (
	"fmt"
	"math/big"
	"sync"
)

// int256 is a signed wide integer over [big.Int]. It carries the wide
// intermediates of division, square root and logarithm. The values that
// arise there are bounded by products of two 128-bit values, so the name
// reflects the width actually used, not a limit of the backend.
type int256 big.Int

var (
	int256Pool = sync.Pool{
		New: func() any { return new(int256) },
	}
	bigTwo   = big.NewInt(2)
	bigWordN = new(big.Int).Lsh(big.NewInt(1), 64)
)

// getInt256 borrows a wide integer from the pool.
func getInt256() *int256 {
	return int256Pool.Get().(*int256)
}

// putInt256 returns a wide integer to the pool.
func putInt256(x *int256) {
	int256Pool.Put(x)
}

func (z *int256) big() *big.Int {
	return (*big.Int)(z)
}

// setI128 sets z to the value of x.
func (z *int256) setI128(x int128) *int256 {
	m := x.mag()
	z.big().SetUint64(m.hi)
	z.big().Lsh(z.big(), 64)
	var lo big.Int
	lo.SetUint64(m.lo)
	z.big().Or(z.big(), &lo)
	if x.isNeg() {
		z.big().Neg(z.big())
	}
	return z
}

// setU64 sets z to the value of v.
func (z *int256) setU64(v uint64) *int256 {
	z.big().SetUint64(v)
	return z
}

// set sets z to the value of x.
func (z *int256) set(x *int256) *int256 {
	z.big().Set(x.big())
	return z
}

// isZero reports whether x == 0.
func (x *int256) isZero() bool {
	return x.big().Sign() == 0
}

// sign returns -1, 0 or +1.
func (x *int256) sign() int {
	return x.big().Sign()
}

// cmp compares x and y, returning -1, 0 or +1.
func (x *int256) cmp(y *int256) int {
	return x.big().Cmp(y.big())
}

// add calculates z = x + y.
func (z *int256) add(x, y *int256) {
	z.big().Add(x.big(), y.big())
}

// sub calculates z = x - y.
func (z *int256) sub(x, y *int256) {
	z.big().Sub(x.big(), y.big())
}

// mul calculates z = x * y.
func (z *int256) mul(x, y *int256) {
	z.big().Mul(x.big(), y.big())
}

// quo calculates z = x / y, truncated toward zero. The divisor must be
// non-zero; callers check.
func (z *int256) quo(x, y *int256) {
	z.big().Quo(x.big(), y.big())
}

// mulU64 calculates z = x * v.
func (z *int256) mulU64(x *int256, v uint64) {
	var m big.Int
	m.SetUint64(v)
	z.big().Mul(x.big(), &m)
}

// quoU64 calculates z = x / v, truncated toward zero.
func (z *int256) quoU64(x *int256, v uint64) {
	var m big.Int
	m.SetUint64(v)
	z.big().Quo(x.big(), &m)
}

// neg256 calculates z = -x.
func (z *int256) neg256(x *int256) {
	z.big().Neg(x.big())
}

// abs calculates z = |x|.
func (z *int256) abs(x *int256) {
	z.big().Abs(x.big())
}

// dbl calculates z = 2 * x.
func (z *int256) dbl(x *int256) {
	z.big().Lsh(x.big(), 1)
}

// hlf calculates z = x / 2, truncated toward zero.
func (z *int256) hlf(x *int256) {
	z.big().Quo(x.big(), bigTwo)
}

// i128 narrows to a signed 128-bit value, reporting whether it fit.
func (x *int256) i128() (int128, bool) {
	neg := x.big().Sign() < 0
	var abs big.Int
	abs.Abs(x.big())
	if abs.BitLen() > 128 {
		return x.wrap128(neg, &abs), false
	}
	var buf [16]byte
	abs.FillBytes(buf[:])
	m := uint128{hi: beUint64(buf[0:8]), lo: beUint64(buf[8:16])}
	if !m.fitsInt128(neg) {
		return m.toInt128(neg), false
	}
	return m.toInt128(neg), true
}

// wrap128 reduces a magnitude modulo 2^128 and reapplies the sign.
func (x *int256) wrap128(neg bool, abs *big.Int) int128 {
	var mod, r big.Int
	mod.Lsh(bigWordN, 64)
	r.Mod(abs, &mod)
	var buf [16]byte
	r.FillBytes(buf[:])
	m := uint128{hi: beUint64(buf[0:8]), lo: beUint64(buf[8:16])}
	return m.toInt128(neg)
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

// beUint64 decodes a big-endian 64-bit word.
func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
