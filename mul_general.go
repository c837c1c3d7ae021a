//go:build fixednum_mulgen

package fixednum

// mulMag is the magnitude multiplication backing [D19.Mul].
func mulMag(ua, ub uint128) (uint128, bool) {
	return mulGeneralMag(ua, ub)
}
