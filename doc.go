/*
Package fixednum implements a fixed-point decimal number with 19 whole
digits and 19 fractional digits of range.

# Internal Representation

[D19] wraps a single signed 128-bit integer holding the numeric value
scaled by 10^19:

  - The value of a D19 with representation r is r / 10^19.
  - The representable range is [Min, Max], roughly ±1.7 * 10^19 with the
    full 19 fractional digits everywhere in the range.
  - Every value has exactly one representation, so == compares values and
    the zero value of the struct is the number 0.

Because the representation is two's complement, the range is asymmetric
by one smallest step: Min has no positive counterpart, and both
[D19.Neg] and [D19.Abs] of Min saturate to Max.

# Arithmetic Flavors

Operations that can leave the representable range come in three flavors:

  - Plain methods ([D19.Add], [D19.Mul], ...) wrap around on overflow.
    Building with the fixednum_overflowchecks tag turns the wrap into a
    panic, which is useful while debugging.
  - Checked methods ([D19.CheckedAdd], ...) report failure through a
    second return value and never panic.
  - Saturating methods ([D19.SaturatingAdd], ...) clamp to Max or Min
    according to the sign of the true result.

Multiplication, division, square root and logarithm truncate fractional
digits beyond position 19 toward zero. [D19.Round] rounds half away from
zero, [D19.Trunc] toward zero, [D19.Floor] toward negative infinity and
[D19.Ceil] toward positive infinity; each has a *To variant taking a
digit count in [-19, 19].

# Wide Arithmetic

Division, square root and logarithm run their intermediates on a 256-bit
integer. Two interchangeable backends exist: the default builds on
github.com/holiman/uint256, and the fixednum_bigint build tag selects a
math/big implementation instead. Multiplication ships in two observably
identical variants as well; the default branches on pure-integer and
pure-fraction operands, and the fixednum_mulgen tag selects the
straight-line variant.

# Conversions and Text

[Parse] and [D19.String] round-trip every value. [D19.Text] renders with
digit grouping, fixed precision, width and alignment. Conversions cover
the signed and unsigned machine integers and both binary float widths.
D19 also implements the text, JSON and SQL driver interfaces.
*/
package fixednum
