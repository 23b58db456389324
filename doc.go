/*
Package wideint provides portable uint128 (Uint128) and int128 (Int128)
types with the exact wraparound semantics a native 128-bit integer would
have.

Uint128 and Int128 are value types; all operations return new values. The
two types share one bit pattern: AsInt128()/AsUint128() reinterpret the
128 bits without changing them, exactly like a conversion between int64
and uint64.

Simple example:

	u1 := Uint128From64(math.MaxUint64)
	u2 := Uint128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Uint128 and Int128 can be created from a variety of sources:

	Uint128FromRaw(hi, lo uint64) Uint128
	Uint128From64(v uint64) Uint128
	Uint128From32(v uint32) Uint128
	Uint128From16(v uint16) Uint128
	Uint128From8(v uint8) Uint128
	Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool)
	Uint128FromFloat32(f float32) (out Uint128, inRange bool)
	Uint128FromFloat64(f float64) (out Uint128, inRange bool)

Overflow and underflow wrap modulo 2^128 and are never reported as
errors, matching Go's fixed-width integer types. Division by zero
panics, also matching Go. Truncating conversions (AsUint64, AsInt64)
silently take the low bits; use IsUint64/IsInt64 to check first.

Two interchangeable backends compute the word-level primitives. The
default build delegates to the math/bits intrinsics (Mul64, Div64,
Add64, Sub64); the 'purego' build tag selects hand-rolled software
routines instead. Both must produce bit-identical results for every
input, and the conformance tests in this package hold them to that.
*/
package wideint
