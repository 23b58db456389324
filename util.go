package wideint

// RandSource is the source of random words for RandUint128 and RandInt128.
// math/rand's Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

// DifferenceUint128 subtracts the smaller of a and b from the larger.
func DifferenceUint128(a, b Uint128) Uint128 {
	if a.hi > b.hi {
		return a.Sub(b)
	} else if a.hi < b.hi {
		return b.Sub(a)
	} else if a.lo > b.lo {
		return a.Sub(b)
	} else if a.lo < b.lo {
		return b.Sub(a)
	}
	return Uint128{}
}

func LargerUint128(a, b Uint128) Uint128 {
	if a.hi > b.hi {
		return a
	} else if a.hi < b.hi {
		return b
	} else if a.lo > b.lo {
		return a
	} else if a.lo < b.lo {
		return b
	}
	return a
}

func SmallerUint128(a, b Uint128) Uint128 {
	if a.hi < b.hi {
		return a
	} else if a.hi > b.hi {
		return b
	} else if a.lo < b.lo {
		return a
	} else if a.lo > b.lo {
		return b
	}
	return a
}

// DifferenceInt128 subtracts the smaller of a and b from the larger.
func DifferenceInt128(a, b Int128) Int128 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	} else if a.LessThan(b) {
		return b.Sub(a)
	}
	return Int128{}
}
