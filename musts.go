package fixednum

import "fmt"

// MustAdd is like [D19.CheckedAdd] but panics on overflow.
func (d D19) MustAdd(e D19) D19 {
	f, ok := d.CheckedAdd(e)
	if !ok {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", d, e, ErrOverflow))
	}
	return f
}

// MustSub is like [D19.CheckedSub] but panics on overflow.
func (d D19) MustSub(e D19) D19 {
	f, ok := d.CheckedSub(e)
	if !ok {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", d, e, ErrOverflow))
	}
	return f
}

// MustMul is like [D19.CheckedMul] but panics on overflow.
func (d D19) MustMul(e D19) D19 {
	f, ok := d.CheckedMul(e)
	if !ok {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", d, e, ErrOverflow))
	}
	return f
}

// MustDiv is like [D19.CheckedDiv] but panics on overflow or a zero
// divisor.
func (d D19) MustDiv(e D19) D19 {
	f, ok := d.CheckedDiv(e)
	if !ok {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed", d, e))
	}
	return f
}

// MustPow is like [D19.CheckedPow] but panics on overflow or an
// uninvertible base.
func (d D19) MustPow(exp int) D19 {
	f, ok := d.CheckedPow(exp)
	if !ok {
		panic(fmt.Sprintf("MustPow(%v, %v) failed", d, exp))
	}
	return f
}
