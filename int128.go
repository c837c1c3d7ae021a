package fixednum

import "math/bits"

// int128 is a signed 128-bit integer in two's complement, split into two
// 64-bit words. It backs every D19 value.
type int128 struct {
	hi, lo uint64
}

// uint128 is an unsigned 128-bit integer used for magnitudes and
// intermediate products.
type uint128 struct {
	hi, lo uint64
}

const (
	// scale is the fixed fractional scale factor, 10^19.
	scale = 10_000_000_000_000_000_000
	// scaleHalf is scale / 2, the rounding bias.
	scaleHalf = scale / 2
)

var (
	minInt128 = int128{hi: 1 << 63}           // -2^127
	maxInt128 = int128{hi: 1<<63 - 1, lo: ^uint64(0)} // 2^127 - 1
	// maxMag is the magnitude of minInt128, 2^127. It is also the exclusive
	// upper bound for positive magnitudes.
	maxMag = uint128{hi: 1 << 63}
)

// pow10 caches 10^x as uint128 for x in [0, 38]. 10^38 is the largest
// power of ten below 2^128.
var pow10 = func() [39]uint128 {
	var p [39]uint128
	p[0] = uint128{lo: 1}
	for i := 1; i < len(p); i++ {
		p[i], _ = p[i-1].mul64(10)
	}
	return p
}()

// scaleFor maps a fractional digit count to the scale at which rounding
// operates. digits is clamped to [-19, 19]: 0 selects 10^19 (whole units),
// 19 selects 1, and -19 selects 10^38.
func scaleFor(digits int) uint128 {
	if digits > 19 {
		digits = 19
	}
	if digits < -19 {
		digits = -19
	}
	return pow10[19-digits]
}

// digitCount returns the number of decimal digits of |x|, in [1, 39].
// digitCount(0) = 1. The magnitude of the minimum value does not fit in
// 128 bits, so it is answered before taking the absolute value.
func digitCount(x int128) int {
	if x == minInt128 {
		return 39
	}
	m := x.mag()
	// Binary search over the pow10 thresholds.
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if m.cmp(pow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	if left == 0 {
		return 1
	}
	return left
}

// isZero reports whether x == 0.
func (x uint128) isZero() bool {
	return x.hi|x.lo == 0
}

// cmp compares x and y, returning -1, 0 or +1.
func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// add calculates x + y modulo 2^128 and reports whether the sum fit.
func (x uint128) add(y uint128) (z uint128, ok bool) {
	var c uint64
	z.lo, c = bits.Add64(x.lo, y.lo, 0)
	z.hi, c = bits.Add64(x.hi, y.hi, c)
	return z, c == 0
}

// sub calculates x - y modulo 2^128 and reports whether no borrow occurred.
func (x uint128) sub(y uint128) (z uint128, ok bool) {
	var b uint64
	z.lo, b = bits.Sub64(x.lo, y.lo, 0)
	z.hi, b = bits.Sub64(x.hi, y.hi, b)
	return z, b == 0
}

// mul64 calculates x * y for a 64-bit y modulo 2^128 and reports whether
// the product fit.
func (x uint128) mul64(y uint64) (z uint128, ok bool) {
	var c1, c2 uint64
	c1, z.lo = bits.Mul64(x.lo, y)
	c2, z.hi = bits.Mul64(x.hi, y)
	z.hi, c1 = bits.Add64(z.hi, c1, 0)
	return z, c2|c1 == 0
}

// mul128 calculates the full 128-bit product of two 64-bit operands.
func mul128(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{hi: hi, lo: lo}
}

// quoRem64 calculates ⌊x / y⌋ and x mod y for a non-zero 64-bit divisor.
func (x uint128) quoRem64(y uint64) (q uint128, r uint64) {
	if x.hi == 0 {
		return uint128{lo: x.lo / y}, x.lo % y
	}
	q.hi = x.hi / y
	r = x.hi % y
	q.lo, r = bits.Div64(r, x.lo, y)
	return q, r
}

// quoRem calculates ⌊x / y⌋ and x mod y for a full 128-bit divisor using
// shift-and-subtract long division. y must be non-zero.
func (x uint128) quoRem(y uint128) (q, r uint128) {
	if y.hi == 0 {
		q, rem := x.quoRem64(y.lo)
		return q, uint128{lo: rem}
	}
	// y >= 2^64, so the quotient fits in 64 bits.
	n := x.bitLen() - y.bitLen()
	if n < 0 {
		return uint128{}, x
	}
	r = x
	d := y.shl(uint(n))
	for i := n; i >= 0; i-- {
		if r.cmp(d) >= 0 {
			r, _ = r.sub(d)
			q.lo |= 1 << uint(i)
		}
		d = d.shr1()
	}
	return q, r
}

// bitLen returns the number of bits required to represent x.
func (x uint128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}

// shl shifts x left by n bits, discarding bits shifted past position 127.
func (x uint128) shl(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: x.lo << (n - 64)}
	}
	return uint128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
}

// shr1 shifts x right by one bit.
func (x uint128) shr1() uint128 {
	return uint128{hi: x.hi >> 1, lo: x.lo>>1 | x.hi<<63}
}

// split separates a magnitude scaled by 10^19 into its whole and
// fractional parts. Both fit in 64 bits: the whole part of any
// representable magnitude is at most 2^127/10^19 < 2^64, and the
// fractional part is below 10^19.
func (x uint128) split() (whole, frac uint64) {
	q, r := x.quoRem64(scale)
	return q.lo, r
}

// toInt128 reinterprets the magnitude as a two's-complement value with the
// given sign, wrapping modulo 2^128.
func (x uint128) toInt128(neg bool) int128 {
	z := int128{hi: x.hi, lo: x.lo}
	if neg {
		z = z.neg()
	}
	return z
}

// fitsInt128 reports whether a magnitude with the given sign is
// representable: at most 2^127-1 for positive values, 2^127 for negative.
func (x uint128) fitsInt128(neg bool) bool {
	if neg {
		return x.cmp(maxMag) <= 0
	}
	return x.cmp(maxMag) < 0
}

// int128FromMag composes a signed value from sign and magnitude, reporting
// whether the value is representable.
func int128FromMag(neg bool, m uint128) (int128, bool) {
	if !m.fitsInt128(neg) {
		return m.toInt128(neg), false
	}
	return m.toInt128(neg), true
}

// int128From64 sign-extends a 64-bit value.
func int128From64(v int64) int128 {
	if v < 0 {
		return int128{hi: ^uint64(0), lo: uint64(v)}
	}
	return int128{lo: uint64(v)}
}

// isNeg reports whether x < 0.
func (x int128) isNeg() bool {
	return x.hi>>63 != 0
}

// isZero reports whether x == 0.
func (x int128) isZero() bool {
	return x.hi|x.lo == 0
}

// sign returns -1, 0 or +1.
func (x int128) sign() int {
	switch {
	case x.isNeg():
		return -1
	case x.isZero():
		return 0
	}
	return 1
}

// neg calculates -x modulo 2^128. The minimum value negates to itself.
func (x int128) neg() int128 {
	lo, c := bits.Add64(^x.lo, 1, 0)
	hi, _ := bits.Add64(^x.hi, 0, c)
	return int128{hi: hi, lo: lo}
}

// mag returns |x| as an unsigned magnitude. The magnitude of the minimum
// value, 2^127, is representable in uint128.
func (x int128) mag() uint128 {
	if x.isNeg() {
		x = x.neg()
	}
	return uint128{hi: x.hi, lo: x.lo}
}

// cmp compares two signed values, returning -1, 0 or +1.
func (x int128) cmp(y int128) int {
	xn, yn := x.isNeg(), y.isNeg()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	return uint128{hi: x.hi, lo: x.lo}.cmp(uint128{hi: y.hi, lo: y.lo})
}

// add calculates x + y modulo 2^128 and reports whether the signed sum
// did not overflow.
func (x int128) add(y int128) (z int128, ok bool) {
	var c uint64
	z.lo, c = bits.Add64(x.lo, y.lo, 0)
	z.hi, _ = bits.Add64(x.hi, y.hi, c)
	// Overflow occurred iff the operands share a sign that differs from
	// the result's sign.
	overflow := (x.hi^y.hi)>>63 == 0 && (x.hi^z.hi)>>63 != 0
	return z, !overflow
}

// sub calculates x - y modulo 2^128 and reports whether the signed
// difference did not overflow.
func (x int128) sub(y int128) (z int128, ok bool) {
	var b uint64
	z.lo, b = bits.Sub64(x.lo, y.lo, 0)
	z.hi, _ = bits.Sub64(x.hi, y.hi, b)
	overflow := (x.hi^y.hi)>>63 != 0 && (x.hi^z.hi)>>63 != 0
	return z, !overflow
}

// rem calculates x mod y with the sign of the dividend. y must be
// non-zero. The computation runs on magnitudes, so the minimum value needs
// no special handling.
func (x int128) rem(y int128) int128 {
	_, r := x.mag().quoRem(y.mag())
	return r.toInt128(x.isNeg())
}
