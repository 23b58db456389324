package wideint

import (
	"fmt"
	"math/big"
)

// Int128 is a signed two's complement integer with a fixed width of 128
// bits. It shares its storage layout with Uint128: the bit pattern P
// represents P when P < 2^127, and P - 2^128 otherwise. The high word
// carries the sign bit and is kept as a uint64; the sign is read through
// masks rather than a signed word so that converting between Int128 and
// Uint128 never touches the bits.
type Int128 struct {
	hi uint64
	lo uint64
}

// Int128FromRaw is the complement to Int128.Raw(); it creates an Int128
// from two uint64s representing the hi and lo bits.
func Int128FromRaw(hi, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

func Int128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return Int128{hi: hi, lo: uint64(v)}
}

func Int128From32(v int32) Int128   { return Int128From64(int64(v)) }
func Int128From16(v int16) Int128   { return Int128From64(int64(v)) }
func Int128From8(v int8) Int128     { return Int128From64(int64(v)) }
func Int128FromInt(v int) Int128    { return Int128From64(int64(v)) }
func Int128FromU64(v uint64) Int128 { return Int128{lo: v} }

var (
	minInt128AsAbsUint128 = Uint128{hi: 0x8000000000000000, lo: 0}
	maxInt128AsUint128    = Uint128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

func Int128FromBigInt(v *big.Int) (out Int128, accurate bool) {
	neg := v.Sign() < 0

	words := v.Bits()

	var u Uint128
	accurate = true

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			u.lo = uint64(words[0])
		case 2:
			u.hi = uint64(words[1])
			u.lo = uint64(words[0])
		default:
			u, accurate = MaxUint128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			u.lo = uint64(words[0])
		case 2:
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 3:
			u.hi = uint64(words[2])
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 4:
			u.hi = (uint64(words[3]) << 32) | (uint64(words[2]))
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		default:
			u, accurate = MaxUint128, false
		}

	default:
		panic("wideint: unsupported bit size")
	}

	if !neg {
		if cmp := u.Cmp(maxInt128AsUint128); cmp == 0 {
			out = MaxInt128
		} else if cmp > 0 {
			out, accurate = MaxInt128, false
		} else {
			out = u.AsInt128()
		}

	} else {
		if cmp := u.Cmp(minInt128AsAbsUint128); cmp == 0 {
			out = MinInt128
		} else if cmp > 0 {
			out, accurate = MinInt128, false
		} else {
			out = u.AsInt128().Neg()
		}
	}

	return out, accurate
}

func Int128FromFloat32(f float32) (out Int128, inRange bool) {
	return Int128FromFloat64(float64(f))
}

// Int128FromFloat64 creates an Int128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of an Int128 are clamped and inRange is set
// to false.
//
// NaN is treated as 0, inRange is set to false.
func Int128FromFloat64(f float64) (out Int128, inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if f < 0 {
		if f >= minInt64Float {
			// int64(f) is defined all the way down to and including -(1<<63).
			return Int128From64(int64(f)), true
		} else if f >= minInt128Float {
			// Split the magnitude through the unsigned path, then negate.
			// -f cannot exceed 1<<127, so the unsigned conversion is always
			// in range; f == minInt128Float lands on the MinInt128 negation
			// fixed point, which is the correct value.
			u, _ := Uint128FromFloat64(-f)
			return u.AsInt128().Neg(), true
		} else {
			return MinInt128, false
		}

	} else {
		if f < wrapUint64Float {
			return Int128{lo: uint64(f)}, true
		} else if f < maxInt128Float { // maxInt128Float rounds to exactly 1<<127
			u, _ := Uint128FromFloat64(f)
			return u.AsInt128(), true
		} else {
			return MaxInt128, false
		}
	}
}

// RandInt128 generates a positive signed 128-bit random integer from an
// external source.
func RandInt128(source RandSource) (out Int128) {
	return Int128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i Int128) IsZero() bool { return i == zeroInt128 }

// Raw returns access to the Int128 as a pair of uint64s. See
// Int128FromRaw() for the counterpart.
func (i Int128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// Hi64 returns the high 64 bits of the two's complement bit pattern.
func (i Int128) Hi64() uint64 { return i.hi }

// Lo64 returns the low 64 bits of the two's complement bit pattern.
func (i Int128) Lo64() uint64 { return i.lo }

func (i Int128) String() string {
	v := i.AsBigInt()
	return v.String()
}

func (i Int128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this Int128 into a big.Int, allowing you to retain and
// recycle memory.
func (i Int128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if i.hi > 0 {
		b.SetUint64(i.hi)
		b.Lsh(b, 64)
	} else {
		b.SetUint64(0)
	}
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Add(b, &lo)

	if neg {
		b.Xor(b, maxBigUint128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int128 into it.
func (i Int128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsUint128 performs a direct cast of an Int128 to a Uint128. Negative
// numbers become values > MaxInt128. The 128 bits are unchanged.
func (i Int128) AsUint128() Uint128 {
	return Uint128{lo: i.lo, hi: i.hi}
}

// IsUint128 reports whether i can be represented in a Uint128.
func (i Int128) IsUint128() bool {
	return i.hi&signBit == 0
}

func (i Int128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

func (i Int128) AsFloat64() float64 {
	if i.hi&signBit == 0 {
		if i.hi == 0 {
			return float64(i.lo)
		}
		return (float64(i.hi) * wrapUint64Float) + float64(i.lo)
	}

	// Negate on the unsigned bit pattern to recover the magnitude; this is
	// exact even for MinInt128, whose magnitude is not an Int128.
	m := zeroUint128.Sub(i.AsUint128())
	return -m.AsFloat64()
}

// AsFloat32 is shorthand for float32(i.AsFloat64()).
func (i Int128) AsFloat32() float32 {
	return float32(i.AsFloat64())
}

// AsInt64 truncates the Int128 to fit in an int64. Values outside the
// range will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i Int128) AsInt64() int64 {
	if i.hi&signBit != 0 {
		return -int64(^(i.lo - 1))
	} else {
		return int64(i.lo)
	}
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	} else {
		return i.hi == 0 && i.lo <= maxInt64
	}
}

func (i Int128) Sign() int {
	if i == zeroInt128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i Int128) Inc() (v Int128) {
	v.hi, v.lo = add128(i.hi, i.lo, 0, 1)
	return v
}

func (i Int128) Dec() (v Int128) {
	v.hi, v.lo = sub128(i.hi, i.lo, 0, 1)
	return v
}

// Add returns i + n. Two's complement addition is the same bit-level
// algorithm as unsigned addition; overflow wraps around, as per Go's
// native signed types.
func (i Int128) Add(n Int128) (v Int128) {
	v.hi, v.lo = add128(i.hi, i.lo, n.hi, n.lo)
	return v
}

func (i Int128) Sub(n Int128) (v Int128) {
	v.hi, v.lo = sub128(i.hi, i.lo, n.hi, n.lo)
	return v
}

// Neg returns -i: the bitwise complement plus one. Negating MinInt128
// returns MinInt128 unchanged, the two's complement wraparound fixed
// point; this is not reported as an error.
func (i Int128) Neg() (v Int128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}

	if i == MinInt128 {
		// Overflow case: -MinInt128 == MinInt128
		return i

	} else if i.hi&signBit != 0 {
		v.hi = ^i.hi
		v.lo = ^(i.lo - 1)
	} else {
		v.hi = ^i.hi
		v.lo = (^i.lo) + 1
	}
	if v.lo == 0 { // handle carry out of the low word
		v.hi++
	}
	return v
}

func (i Int128) Abs() Int128 {
	if i.hi&signBit != 0 {
		i.hi = ^i.hi
		i.lo = ^(i.lo - 1)
		if i.lo == 0 { // handle carry out of the low word
			i.hi++
		}
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The high words are compared as signed values first, so negatives sort
// below positives; the low words are compared unsigned when the high
// words match.
func (i Int128) Cmp(n Int128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i Int128) Equal(n Int128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i Int128) GreaterThan(n Int128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i Int128) GreaterOrEqualTo(n Int128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.GreaterThan(n)
}

func (i Int128) LessThan(n Int128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i Int128) LessOrEqualTo(n Int128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.LessThan(n)
}

// And, AndNot, Or, Xor and Not operate word-wise on the two's complement
// bit pattern, exactly as they do for Go's native signed types.
func (i Int128) And(n Int128) (out Int128) {
	out.hi = i.hi & n.hi
	out.lo = i.lo & n.lo
	return out
}

func (i Int128) AndNot(n Int128) (out Int128) {
	out.hi = i.hi &^ n.hi
	out.lo = i.lo &^ n.lo
	return out
}

func (i Int128) Or(n Int128) (out Int128) {
	out.hi = i.hi | n.hi
	out.lo = i.lo | n.lo
	return out
}

func (i Int128) Xor(n Int128) (out Int128) {
	out.hi = i.hi ^ n.hi
	out.lo = i.lo ^ n.lo
	return out
}

func (i Int128) Not() (out Int128) {
	out.hi = ^i.hi
	out.lo = ^i.lo
	return out
}

// Lsh shifts i left by n bits. The bit-level behaviour is identical to the
// unsigned shift; a shift that runs into the sign bit wraps rather than
// trapping. Shift amounts >= 128 are not specified, as with Uint128.Lsh.
func (i Int128) Lsh(n uint) (v Int128) {
	if n == 0 {
		return i
	} else if n > 64 {
		v.hi = i.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (i.hi << n) | (i.lo >> (64 - n))
		v.lo = i.lo << n
	} else if n == 64 {
		v.hi = i.lo
		v.lo = 0
	}
	return v
}

// Rsh shifts i right by n bits, filling the vacated high bits with copies
// of the sign bit (arithmetic shift). Conversion of the high word to int64
// is a lossless two's complement reinterpretation, defined by the Go spec
// for all inputs; the signed >> then propagates the sign for us in every
// band, including amounts >= 128.
func (i Int128) Rsh(n uint) (v Int128) {
	if n == 0 {
		return i
	}

	hs := int64(i.hi)
	if n > 64 {
		v.lo = uint64(hs >> (n - 64))
		v.hi = uint64(hs >> 63)
	} else if n < 64 {
		v.lo = (i.lo >> n) | (i.hi << (64 - n))
		v.hi = uint64(hs >> n)
	} else if n == 64 {
		v.lo = i.hi
		v.hi = uint64(hs >> 63)
	}

	return v
}

// Mul returns the low 128 bits of the product of two Int128s, computed on
// the unsigned bit patterns and reinterpreted as signed. Truncation makes
// sign-extension of the operands unnecessary; overflow wraps around, as
// per Go's native signed types.
func (i Int128) Mul(n Int128) (dest Int128) {
	dest.hi, dest.lo = mul128to128(i.hi, i.lo, n.hi, n.lo)
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated to zero
//	r = i - by*q
//
// The remainder takes the sign of the dividend. MinInt128 / -1 wraps to
// MinInt128, as Go's native signed division would for its own minimum
// values on most platforms; it is not reported as an error.
func (i Int128) QuoRem(by Int128) (q, r Int128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroInt128) {
		qSign, rSign = -1, -1
		i = i.Neg()
	}
	if by.LessThan(zeroInt128) {
		qSign = -qSign
		by = by.Neg()
	}

	qu, ru := i.AsUint128().QuoRem(by.AsUint128())
	q, r = qu.AsInt128(), ru.AsInt128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (i Int128) Quo(by Int128) (q Int128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (i Int128) Rem(by Int128) (r Int128) {
	_, r = i.QuoRem(by)
	return r
}
