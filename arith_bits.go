// +build !purego

package wideint

import (
	"math/bits"
)

// Default backend: delegate the word-level primitives to the math/bits
// intrinsics. The compiler lowers these to single wide-multiply/divide/
// add-with-carry instructions on platforms that have them.

func mul64to128(u, v uint64) (hi, lo uint64) {
	return bits.Mul64(u, v)
}

func mul128to128(uhi, ulo, vhi, vlo uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(ulo, vlo)
	hi += uhi*vlo + ulo*vhi
	return hi, lo
}

func mul128to256(uhi, ulo, vhi, vlo uint64) (hi, hm, lm, lo uint64) {
	hi, hm = bits.Mul64(uhi, vhi)
	lm, lo = bits.Mul64(ulo, vlo)

	thi, tlo := bits.Mul64(uhi, vlo)
	var c uint64
	lm, c = bits.Add64(lm, tlo, 0)
	hm, c = bits.Add64(hm, thi, c)
	hi += c

	thi, tlo = bits.Mul64(ulo, vhi)
	lm, c = bits.Add64(lm, tlo, 0)
	hm, c = bits.Add64(hm, thi, c)
	hi += c

	return hi, hm, lm, lo
}

func add128(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	lo, c := bits.Add64(ulo, nlo, 0)
	hi, _ = bits.Add64(uhi, nhi, c)
	return hi, lo
}

func sub128(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	lo, b := bits.Sub64(ulo, nlo, 0)
	hi, _ = bits.Sub64(uhi, nhi, b)
	return hi, lo
}

// div128by64 requires v != 0 and u1 < v; bits.Div64 panics otherwise,
// which is the same trap a native 128-by-64 divide instruction raises.
func div128by64(u1, u0, v uint64) (q, r uint64) {
	return bits.Div64(u1, u0, v)
}
