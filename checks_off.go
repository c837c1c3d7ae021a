//go:build !fixednum_overflowchecks

package fixednum

// overflowChecks selects whether wrapping arithmetic and 256-to-128-bit
// narrowing panic on overflow instead of wrapping.
const overflowChecks = false
