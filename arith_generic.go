package wideint

import (
	"math/bits"
)

// This file contains the portable word-level primitives that back every
// Uint128/Int128 operation when the 'purego' build tag is set. They are
// compiled unconditionally, whichever backend is active, so the conformance
// tests can always check the intrinsic backend against them bit-for-bit.
//
// The contract shared by both backends:
//
//	mul64to128(u, v)            = the full 128-bit product of two uint64s
//	mul128to128(uhi,ulo,vhi,vlo) = the low 128 bits of the 128x128 product
//	mul128to256(uhi,ulo,vhi,vlo) = the full 256-bit product as four words
//	add128(uhi,ulo,nhi,nlo)     = 128-bit sum, wrapping modulo 2^128
//	sub128(uhi,ulo,nhi,nlo)     = 128-bit difference, wrapping modulo 2^128
//	div128by64(u1, u0, v)       = quotient and remainder of a 128-bit value
//	                              divided by a 64-bit value. Requires v != 0
//	                              and u1 < v; callers reduce before calling.

func mul64to128Generic(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

func mul128to128Generic(uhi, ulo, vhi, vlo uint64) (hi, lo uint64) {
	// Adapted from Warren, Hacker's Delight, p. 132.
	hl := uhi*vlo + ulo*vhi

	lo = ulo * vlo // lower 64 bits are easy

	// break the multiplication into (x1 << 32 + x0)(y1 << 32 + y0)
	// which is x1*y1 << 64 + (x0*y1 + x1*y0) << 32 + x0*y0
	// so now we can do 64 bit multiplication and addition and
	// shift the results into the right place
	x0, x1 := ulo&0x00000000ffffffff, ulo>>32
	y0, y1 := vlo&0x00000000ffffffff, vlo>>32
	t := x1*y0 + (x0*y0)>>32
	w1 := (t & 0x00000000ffffffff) + (x0 * y1)
	hi = (x1 * y1) + (t >> 32) + (w1 >> 32) + hl
	return hi, lo
}

func mul128to256Generic(uhi, ulo, vhi, vlo uint64) (hi, hm, lm, lo uint64) {
	hi, hm = mul64to128Generic(uhi, vhi)
	lm, lo = mul64to128Generic(ulo, vlo)

	thi, tlo := mul64to128Generic(uhi, vlo)

	lm += tlo
	if lm < tlo { // if the low-middle word overflowed
		hm++
		if hm == 0 {
			hi++
		}
	}

	hm += thi
	if hm < thi { // if the high-middle word overflowed
		hi++
	}

	thi, tlo = mul64to128Generic(ulo, vhi)

	lm += tlo
	if lm < tlo {
		hm++
		if hm == 0 {
			hi++
		}
	}

	hm += thi
	if hm < thi {
		hi++
	}

	return hi, hm, lm, lo
}

func add128Generic(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	lo = ulo + nlo
	hi = uhi + nhi
	if ulo > lo {
		hi++
	}
	return hi, lo
}

func sub128Generic(uhi, ulo, nhi, nlo uint64) (hi, lo uint64) {
	lo = ulo - nlo
	hi = uhi - nhi
	if ulo < lo {
		hi--
	}
	return hi, lo
}

// Hacker's delight 9-4, divlu:
func div128by64Generic(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}
