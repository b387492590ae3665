package gpstime

/*
int128.go implements the two-word signed 128-bit integer type which
underlies all tick arithmetic within this package.
*/

import (
	"math"
	"math/bits"
)

/*
Int128 implements a signed two's complement 128-bit integer as a pair
of 64-bit words. The zero value represents zero.

Int128 backs the picosecond tick counts of [Duration] and [GPSTime].
It deliberately implements only the operations those types require;
it is not a general purpose big-number type.

Overflowing the 128-bit extent through [Int128.Add], [Int128.Sub] or
[Int128.Mul64] is a precondition violation on the part of the caller:
results silently wrap, exactly as Go's native fixed-width integers do.
*/
type Int128 struct {
	hi int64
	lo uint64
}

/*
Int128FromInt64 returns the sign-extended [Int128] form of v.
*/
func Int128FromInt64(v int64) Int128 {
	return Int128{v >> 63, uint64(v)}
}

/*
Int128FromFloat64 returns an [Int128] holding f truncated toward zero.

The behavior is undefined when f is NaN, infinite, or of magnitude
too large to be represented; callers must vet such inputs beforehand.
*/
func Int128FromFloat64(f float64) Int128 {
	f = math.Trunc(f)
	neg := f < 0
	if neg {
		f = -f
	}

	const two64 = 0x1p64
	hi := uint64(f / two64)
	lo := uint64(f - float64(hi)*two64)

	out := Int128{int64(hi), lo}
	if neg {
		out = out.Neg()
	}
	return out
}

/*
IsZero returns a Boolean value indicative of the receiver being zero.
*/
func (r Int128) IsZero() bool { return r.hi == 0 && r.lo == 0 }

/*
Sign returns -1, 0 or 1 when the receiver is negative, zero or
positive respectively.
*/
func (r Int128) Sign() int {
	switch {
	case r.hi < 0:
		return -1
	case r.hi == 0 && r.lo == 0:
		return 0
	}
	return 1
}

/*
Neg returns the additive inverse of the receiver instance.
*/
func (r Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, r.lo, 0)
	return Int128{int64(0 - uint64(r.hi) - borrow), lo}
}

/*
Abs returns the magnitude of the receiver instance.
*/
func (r Int128) Abs() Int128 {
	if r.hi < 0 {
		return r.Neg()
	}
	return r
}

/*
Add returns the sum of the receiver and x.
*/
func (r Int128) Add(x Int128) Int128 {
	lo, carry := bits.Add64(r.lo, x.lo, 0)
	return Int128{int64(uint64(r.hi) + uint64(x.hi) + carry), lo}
}

/*
Sub returns the difference between the receiver and x.
*/
func (r Int128) Sub(x Int128) Int128 {
	lo, borrow := bits.Sub64(r.lo, x.lo, 0)
	return Int128{int64(uint64(r.hi) - uint64(x.hi) - borrow), lo}
}

/*
Mul64 returns the product of the receiver and the scalar m, keeping
the low 128 bits of the result.
*/
func (r Int128) Mul64(m int64) Int128 {
	hi, lo := bits.Mul64(r.lo, uint64(m))
	hi += r.lo*uint64(m>>63) + uint64(r.hi)*uint64(m)
	return Int128{int64(hi), lo}
}

/*
mulInt64 returns the exact 128-bit product of the 64-bit factors x
and y. Unlike [Int128.Mul64], this can never overflow.
*/
func mulInt64(x, y int64) Int128 {
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(umag64(x), umag64(y))
	out := Int128{int64(hi), lo}
	if neg {
		out = out.Neg()
	}
	return out
}

/*
umag64 returns the unsigned magnitude of v. The result is exact even
for [math.MinInt64].
*/
func umag64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

/*
mag returns the unsigned magnitude of the receiver as a pair of
64-bit words. The result is exact even for the minimum value.
*/
func (r Int128) mag() (hi, lo uint64) {
	if r.hi < 0 {
		n := r.Neg()
		return uint64(n.hi), n.lo
	}
	return uint64(r.hi), r.lo
}

/*
QuoRem returns the quotient and remainder of division of the receiver
by d. The quotient is truncated toward zero and the remainder carries
the sign of the dividend, preserving the identity n == q*d + rem for
any nonzero d.

QuoRem panics when d is zero; callers are responsible for vetting the
divisor beforehand.
*/
func (r Int128) QuoRem(d Int128) (q, rem Int128) {
	if d.IsZero() {
		panic("gpstime: Int128 division by zero")
	}

	nhi, nlo := r.mag()
	dhi, dlo := d.mag()

	var qhi, qlo, rhi, rlo uint64
	if dhi == 0 {
		if nhi < dlo {
			qlo, rlo = bits.Div64(nhi, nlo, dlo)
		} else {
			qhi = nhi / dlo
			qlo, rlo = bits.Div64(nhi%dlo, nlo, dlo)
		}
	} else {
		// The divisor occupies both words, so the quotient fits in a
		// single word. Plain shift-subtract long division suffices.
		for i := 127; i >= 0; i-- {
			rhi = rhi<<1 | rlo>>63
			rlo <<= 1
			if i >= 64 {
				rlo |= (nhi >> (i - 64)) & 1
			} else {
				rlo |= (nlo >> i) & 1
			}
			if rhi > dhi || (rhi == dhi && rlo >= dlo) {
				var borrow uint64
				rlo, borrow = bits.Sub64(rlo, dlo, 0)
				rhi = rhi - dhi - borrow
				if i >= 64 {
					qhi |= 1 << (i - 64)
				} else {
					qlo |= 1 << i
				}
			}
		}
	}

	q = Int128{int64(qhi), qlo}
	rem = Int128{int64(rhi), rlo}
	if (r.hi < 0) != (d.hi < 0) {
		q = q.Neg()
	}
	if r.hi < 0 {
		rem = rem.Neg()
	}
	return
}

/*
Cmp returns -1, 0 or 1 when the receiver is less than, equal to or
greater than x respectively.
*/
func (r Int128) Cmp(x Int128) int {
	if r.hi != x.hi {
		if r.hi < x.hi {
			return -1
		}
		return 1
	}
	if r.lo != x.lo {
		if r.lo < x.lo {
			return -1
		}
		return 1
	}
	return 0
}

/*
Equal returns a Boolean value indicative of the receiver matching x.
*/
func (r Int128) Equal(x Int128) bool { return r == x }

/*
Int64 returns the receiver as an int64 alongside a Boolean value
indicative of the receiver fitting within 64 bits.
*/
func (r Int128) Int64() (int64, bool) {
	if r.hi == 0 && r.lo <= math.MaxInt64 {
		return int64(r.lo), true
	}
	if r.hi == -1 && r.lo > math.MaxInt64 {
		return int64(r.lo), true
	}
	return 0, false
}

/*
Float64 returns the nearest float64 form of the receiver. Precision
may be lost for magnitudes beyond 2⁵³.
*/
func (r Int128) Float64() float64 {
	return float64(r.hi)*0x1p64 + float64(r.lo)
}

/*
String returns the exact decimal representation of the receiver.
*/
func (r Int128) String() string {
	if v, ok := r.Int64(); ok {
		return fmtInt(v, 10)
	}

	const group = 1_000_000_000_000_000_000

	// u128 / 1e18 with remainder.
	div := func(hi, lo uint64) (qh, ql, rem uint64) {
		qh = hi / group
		ql, rem = bits.Div64(hi%group, lo, group)
		return
	}

	hi, lo := r.mag()
	h1, l1, r1 := div(hi, lo)

	var b []byte
	if r.hi < 0 {
		b = append(b, '-')
	}

	if h1 == 0 && l1 == 0 {
		b = append(b, fmtUint(r1, 10)...)
	} else {
		// A second division always reduces the quotient to a single
		// word: the magnitude never exceeds 2¹²⁷ < 10³⁹.
		_, l2, r2 := div(h1, l1)
		if l2 == 0 {
			b = append(b, fmtUint(r2, 10)...)
		} else {
			b = append(b, fmtUint(l2, 10)...)
			b = appendPad18(b, r2)
		}
		b = appendPad18(b, r1)
	}

	return string(b)
}

/*
appendPad18 appends the zero-padded 18 digit decimal form of v to b.
*/
func appendPad18(b []byte, v uint64) []byte {
	var d [18]byte
	for i := 17; i >= 0; i-- {
		d[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, d[:]...)
}
