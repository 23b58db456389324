package wideint

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// arithWords is a corpus of word values that sit on or near the boundaries
// the primitives care about: carry propagation, sign bit, half-word
// boundaries.
var arithWords = []uint64{
	0, 1, 2, 3,
	0xFF, 0x100,
	0xFFFFFFFF, 0x100000000, // 32-bit boundary; the generic multiply splits here
	0x7FFFFFFFFFFFFFFF,
	0x8000000000000000,
	0xFFFFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFFFFF,
	0x0123456789ABCDEF,
	0xFEDCBA9876543210,
}

// The compiled backend and the portable one must agree bit for bit on every
// primitive; the portable versions are always compiled so this holds with or
// without the purego tag.

func TestArithMul64To128Conformance(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u, v uint64) {
		hi, lo := mul64to128(u, v)
		ghi, glo := mul64to128Generic(u, v)
		tt.MustAssert(hi == ghi && lo == glo,
			"mul64to128(%#x, %#x): (%#x, %#x) != generic (%#x, %#x)", u, v, hi, lo, ghi, glo)
	}

	for _, u := range arithWords {
		for _, v := range arithWords {
			check(u, v)
		}
	}
	for i := 0; i < 50000; i++ {
		check(globalRNG.Uint64(), globalRNG.Uint64())
	}
}

func TestArithMul128To128Conformance(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u, v Uint128) {
		hi, lo := mul128to128(u.hi, u.lo, v.hi, v.lo)
		ghi, glo := mul128to128Generic(u.hi, u.lo, v.hi, v.lo)
		tt.MustAssert(hi == ghi && lo == glo,
			"mul128to128(%s, %s): (%#x, %#x) != generic (%#x, %#x)", u, v, hi, lo, ghi, glo)
	}

	for _, uhi := range arithWords {
		for _, ulo := range arithWords {
			u := Uint128{hi: uhi, lo: ulo}
			check(u, u)
			check(u, MaxUint128)
			check(u, Uint128{hi: 0, lo: 1})
		}
	}
	for i := 0; i < 50000; i++ {
		check(RandUint128(globalRNG), RandUint128(globalRNG))
	}
}

func TestArithMul128To256Conformance(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u, v Uint128) {
		hi, hm, lm, lo := mul128to256(u.hi, u.lo, v.hi, v.lo)
		ghi, ghm, glm, glo := mul128to256Generic(u.hi, u.lo, v.hi, v.lo)
		tt.MustAssert(hi == ghi && hm == ghm && lm == glm && lo == glo,
			"mul128to256(%s, %s): (%#x, %#x, %#x, %#x) != generic (%#x, %#x, %#x, %#x)",
			u, v, hi, hm, lm, lo, ghi, ghm, glm, glo)
	}

	for _, uhi := range arithWords {
		for _, ulo := range arithWords {
			u := Uint128{hi: uhi, lo: ulo}
			check(u, u)
			check(u, MaxUint128)
		}
	}
	for i := 0; i < 50000; i++ {
		check(RandUint128(globalRNG), RandUint128(globalRNG))
	}
}

func TestArithMul128To256(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 32)

	for i := 0; i < 50000; i++ {
		u1, u2 := randUint128(scratch), randUint128(scratch)
		b1, b2 := u1.AsBigInt(), u2.AsBigInt()
		rhi, rhm, rlm, rlo := mul128to256(u1.hi, u1.lo, u2.hi, u2.lo)

		rb := new(big.Int).Set(b1)
		rb.Mul(rb, b2)

		binary.BigEndian.PutUint64(scratch, rhi)
		binary.BigEndian.PutUint64(scratch[8:], rhm)
		binary.BigEndian.PutUint64(scratch[16:], rlm)
		binary.BigEndian.PutUint64(scratch[24:], rlo)

		rc := new(big.Int).SetBytes(scratch[:32])
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestArithAddSubConformance(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u, v Uint128) {
		hi, lo := add128(u.hi, u.lo, v.hi, v.lo)
		ghi, glo := add128Generic(u.hi, u.lo, v.hi, v.lo)
		tt.MustAssert(hi == ghi && lo == glo,
			"add128(%s, %s): (%#x, %#x) != generic (%#x, %#x)", u, v, hi, lo, ghi, glo)

		hi, lo = sub128(u.hi, u.lo, v.hi, v.lo)
		ghi, glo = sub128Generic(u.hi, u.lo, v.hi, v.lo)
		tt.MustAssert(hi == ghi && lo == glo,
			"sub128(%s, %s): (%#x, %#x) != generic (%#x, %#x)", u, v, hi, lo, ghi, glo)
	}

	for _, uhi := range arithWords {
		for _, ulo := range arithWords {
			u := Uint128{hi: uhi, lo: ulo}
			check(u, u)
			check(u, Uint128{hi: 0, lo: 1})
			check(u, MaxUint128)
		}
	}
	for i := 0; i < 50000; i++ {
		check(RandUint128(globalRNG), RandUint128(globalRNG))
	}
}

func TestArithDiv128By64Conformance(t *testing.T) {
	tt := assert.WrapTB(t)

	check := func(u1, u0, v uint64) {
		if v == 0 || u1 >= v { // outside the primitive's contract
			return
		}
		q, r := div128by64(u1, u0, v)
		gq, gr := div128by64Generic(u1, u0, v)
		tt.MustAssert(q == gq && r == gr,
			"div128by64(%#x, %#x, %#x): (%#x, %#x) != generic (%#x, %#x)", u1, u0, v, q, r, gq, gr)

		// Also check against the reference:
		ub := new(big.Int).SetUint64(u1)
		ub.Lsh(ub, 64).Or(ub, new(big.Int).SetUint64(u0))
		vb := new(big.Int).SetUint64(v)
		qb, rb := new(big.Int), new(big.Int)
		qb.QuoRem(ub, vb, rb)
		tt.MustEqual(qb.Uint64(), q, "quotient mismatch for (%#x, %#x) / %#x", u1, u0, v)
		tt.MustEqual(rb.Uint64(), r, "remainder mismatch for (%#x, %#x) / %#x", u1, u0, v)
	}

	for _, u1 := range arithWords {
		for _, u0 := range arithWords {
			for _, v := range arithWords {
				check(u1, u0, v)
			}
		}
	}
	for i := 0; i < 50000; i++ {
		v := globalRNG.Uint64()
		if v == 0 {
			continue
		}
		check(globalRNG.Uint64()%v, globalRNG.Uint64(), v)
	}
}

var BenchUint128In1, BenchUint128In2 = Uint128{hi: 1234, lo: 5678}, Uint128{hi: 9123, lo: 5678}

func BenchmarkMul128to256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _, _, _ = mul128to256(BenchUint128In1.hi, BenchUint128In1.lo, BenchUint128In2.hi, BenchUint128In2.lo)
	}
}

func BenchmarkDiv128by64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = div128by64(1234, 5678, 0xFFFFFFFFFFFFFFFF)
	}
}
