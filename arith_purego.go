// +build purego

package wideint

// Software backend: bind the word-level primitives to the portable
// routines in arith_generic.go. Selected with '-tags purego'.

func mul64to128(u, v uint64) (hi, lo uint64) {
	return mul64to128Generic(u, v)
}

func mul128to128(uhi, ulo, vhi, vlo uint64) (hi, lo uint64) {
	return mul128to128Generic(uhi, ulo, vhi, vlo)
}

func mul128to256(uhi, ulo, vhi, vlo uint64) (hi, hm, lm, lo uint64) {
	return mul128to256Generic(uhi, ulo, vhi, vlo)
}

func add128(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	return add128Generic(uhi, ulo, nhi, nlo)
}

func sub128(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	return sub128Generic(uhi, ulo, nhi, nlo)
}

func div128by64(u1, u0, v uint64) (q, r uint64) {
	return div128by64Generic(u1, u0, v)
}
