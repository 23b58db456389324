package wideint

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned integer with a fixed width of 128 bits, stored as
// a pair of 64-bit words. The pair (hi, lo) represents the value
// hi * 2^64 + lo; every bit pattern is a valid value, no normalisation is
// ever needed.
type Uint128 struct {
	hi, lo uint64
}

func Uint128FromRaw(hi, lo uint64) Uint128 { return Uint128{hi: hi, lo: lo} }
func Uint128From64(v uint64) Uint128       { return Uint128{hi: 0, lo: v} }
func Uint128From32(v uint32) Uint128       { return Uint128{hi: 0, lo: uint64(v)} }
func Uint128From16(v uint16) Uint128       { return Uint128{hi: 0, lo: uint64(v)} }
func Uint128From8(v uint8) Uint128         { return Uint128{hi: 0, lo: uint64(v)} }

// Uint128FromBigInt creates a Uint128 from a big.Int. Overflow truncates to
// MaxUint128 and sets accurate to 'false'.
func Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return Uint128{}, true
		case 1:
			return Uint128{lo: uint64(words[0])}, true
		case 2:
			return Uint128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxUint128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return Uint128{}, true
		case 1:
			return Uint128{lo: uint64(words[0])}, true
		case 2:
			return Uint128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return Uint128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return Uint128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxUint128, false
		}

	default:
		panic("wideint: unsupported bit size")
	}
}

func Uint128FromFloat32(f float32) (out Uint128, inRange bool) {
	return Uint128FromFloat64(float64(f))
}

// Uint128FromFloat64 creates a Uint128 from a float64. Any fractional
// portion will be truncated towards zero. Floats outside the bounds of a
// Uint128 are clamped and inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func Uint128FromFloat64(f float64) (out Uint128, inRange bool) {
	if f == 0 {
		return Uint128{}, true

	} else if f != f { // (f != f) == NaN
		return Uint128{}, false

	} else if f < 0 {
		return Uint128{}, false

	} else if f < wrapUint64Float {
		// Strictly less than 1<<64: uint64(f) is defined for every such f.
		return Uint128{lo: uint64(f)}, true

	} else if f < maxUint128Float { // maxUint128Float rounds to exactly 1<<128
		lo := modpos(f, wrapUint64Float)
		return Uint128{hi: uint64(f / wrapUint64Float), lo: uint64(lo)}, true

	} else {
		return MaxUint128, false
	}
}

// RandUint128 generates an unsigned 128-bit random integer from an external
// source.
func RandUint128(source RandSource) (out Uint128) {
	return Uint128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u Uint128) IsZero() bool { return u == zeroUint128 }

// Raw returns access to the Uint128 as a pair of uint64s. See
// Uint128FromRaw() for the counterpart.
func (u Uint128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Hi64 returns the high 64 bits of the value, regardless of the memory
// layout of the pair.
func (u Uint128) Hi64() uint64 { return u.hi }

// Lo64 returns the low 64 bits of the value, regardless of the memory
// layout of the pair.
func (u Uint128) Lo64() uint64 { return u.lo }

func (u Uint128) String() string {
	if u == zeroUint128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	v := u.AsBigInt()
	return v.String()
}

func (u Uint128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this Uint128 into a big.Int, allowing you to retain and
// recycle memory.
func (u Uint128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

// AsBigInt allocates a new big.Int and copies this Uint128 into it.
func (u Uint128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

func (u Uint128) AsFloat64() float64 {
	if u.hi == 0 && u.lo == 0 {
		return 0
	} else if u.hi == 0 {
		return float64(u.lo)
	} else {
		return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
	}
}

// AsFloat32 is shorthand for float32(u.AsFloat64()).
func (u Uint128) AsFloat32() float32 {
	return float32(u.AsFloat64())
}

// AsInt128 performs a direct cast of a Uint128 to an Int128, which will
// interpret it as a two's complement value. The 128 bits are unchanged.
func (u Uint128) AsInt128() Int128 {
	return Int128{lo: u.lo, hi: u.hi}
}

// IsInt128 reports whether u can be represented in an Int128.
func (u Uint128) IsInt128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the Uint128 to fit in a uint64. Values outside the
// range will over/underflow. See IsUint64() if you want to check before
// you convert.
func (u Uint128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint128) IsUint64() bool {
	return u.hi == 0
}

func (u Uint128) Inc() (v Uint128) {
	v.hi, v.lo = add128(u.hi, u.lo, 0, 1)
	return v
}

func (u Uint128) Dec() (v Uint128) {
	v.hi, v.lo = sub128(u.hi, u.lo, 0, 1)
	return v
}

func (u Uint128) Add(n Uint128) (v Uint128) {
	v.hi, v.lo = add128(u.hi, u.lo, n.hi, n.lo)
	return v
}

func (u Uint128) Sub(n Uint128) (v Uint128) {
	v.hi, v.lo = sub128(u.hi, u.lo, n.hi, n.lo)
	return v
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// Ordering is lexicographic on the (hi, lo) pair: high words are compared
// first, low words only when the high words are equal.
func (u Uint128) Cmp(n Uint128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u Uint128) Equal(n Uint128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u Uint128) GreaterThan(n Uint128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u Uint128) GreaterOrEqualTo(n Uint128) bool {
	if u.hi > n.hi {
		return true
	} else if u.hi < n.hi {
		return false
	} else if u.lo > n.lo {
		return true
	} else if u.lo < n.lo {
		return false
	}
	return true
}

func (u Uint128) LessThan(n Uint128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u Uint128) LessOrEqualTo(n Uint128) bool {
	if u.hi > n.hi {
		return false
	} else if u.hi < n.hi {
		return true
	} else if u.lo > n.lo {
		return false
	} else if u.lo < n.lo {
		return true
	}
	return true
}

func (u Uint128) And(n Uint128) (out Uint128) {
	out.hi = u.hi & n.hi
	out.lo = u.lo & n.lo
	return out
}

func (u Uint128) AndNot(n Uint128) (out Uint128) {
	out.hi = u.hi &^ n.hi
	out.lo = u.lo &^ n.lo
	return out
}

func (u Uint128) Or(n Uint128) (out Uint128) {
	out.hi = u.hi | n.hi
	out.lo = u.lo | n.lo
	return out
}

func (u Uint128) Xor(n Uint128) (out Uint128) {
	out.hi = u.hi ^ n.hi
	out.lo = u.lo ^ n.lo
	return out
}

func (u Uint128) Not() (out Uint128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Bit returns the value of the i'th bit of u. The bit index must be in the
// range [0, 128) or Bit panics.
func (u Uint128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		panic("wideint: bit index out of range")
	}
	if i >= 64 {
		return uint(u.hi>>(uint(i)-64)) & 1
	}
	return uint(u.lo>>uint(i)) & 1
}

// SetBit returns a Uint128 with u's i'th bit set to b (0 or 1). The bit
// index must be in the range [0, 128) or SetBit panics.
func (u Uint128) SetBit(i int, b uint) (out Uint128) {
	if i < 0 || i >= 128 {
		panic("wideint: bit index out of range")
	}
	out = u
	if b == 0 {
		if i >= 64 {
			out.hi &^= 1 << (uint(i) - 64)
		} else {
			out.lo &^= 1 << uint(i)
		}
	} else {
		if i >= 64 {
			out.hi |= 1 << (uint(i) - 64)
		} else {
			out.lo |= 1 << uint(i)
		}
	}
	return out
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u Uint128) BitLen() int {
	if u.hi != 0 {
		return bits.Len64(u.hi) + 64
	}
	return bits.Len64(u.lo)
}

// Lsh shifts u left by n bits. Shift amounts >= 128 are not specified;
// they yield whatever the band decomposition below produces, mirroring the
// platform-dependent result of an out-of-range native shift.
func (u Uint128) Lsh(n uint) (v Uint128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh shifts u right by n bits, filling the vacated high bits with zeros.
// Shift amounts >= 128 are not specified, as with Lsh.
func (u Uint128) Rsh(n uint) (v Uint128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

// Mul returns the low 128 bits of the product of two Uint128s. Overflow
// wraps around, as per Go's native unsigned types; the partial product of
// the two high words only affects bits >= 128 and is never computed.
func (u Uint128) Mul(n Uint128) (dest Uint128) {
	dest.hi, dest.lo = mul128to128(u.hi, u.lo, n.hi, n.lo)
	return dest
}

// Quo returns the quotient u/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (u Uint128) Quo(by Uint128) (q Uint128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated to zero
//	r = u - by*q
//
// Uint128 does not support big.Int.DivMod()-style Euclidean division.
//
// The general 128-by-128 case is binary long division: the divisor is
// aligned with the dividend by the difference in their leading zero
// counts, then a fixed shift/compare/subtract loop accumulates one
// quotient bit per step. Narrower divisors take faster routes first.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by.lo == 0 && by.hi == 0 {
		panic("wideint: division by zero")
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		q = u.Rsh(byTrailing0)
		by = by.Dec()
		r = by.And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	if by.hi == 0 {
		if u.hi < by.lo {
			q.lo, r.lo = div128by64(u.hi, u.lo, by.lo)
		} else {
			q.hi = u.hi / by.lo
			q.lo, r.lo = div128by64(u.hi%by.lo, u.lo, by.lo)
		}
		return q, r
	}

	return quorem128bin(u, by, u.LeadingZeros(), byLeading0)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u Uint128) Rem(by Uint128) (r Uint128) {
	_, r = u.QuoRem(by)
	return r
}

func (u Uint128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u Uint128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// quorem128bin is schoolbook binary long division. The divisor is shifted
// left until it lines up with the dividend's most significant bit, then
// each iteration shifts a quotient bit in and subtracts the divisor
// whenever the running dividend is not less than it.
func quorem128bin(u, by Uint128, uLeading0, byLeading0 uint) (q, r Uint128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		by.lo = (by.lo >> 1) | (by.hi << 63)
		by.hi = by.hi >> 1
		// }}}

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}
