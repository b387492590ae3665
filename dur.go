package gpstime

/*
dur.go implements the fixed-point signed [Duration] type, its unit
factories, arithmetic, snapping and human-readable formatting.
*/

import (
	"math"

	"golang.org/x/exp/constraints"
)

/*
Tick counts per unit. One tick is one picosecond. An SI minute always
contains exactly 60 seconds, an SI hour 3600 and an SI day 86400.
*/
const (
	picosPerNanosecond  int64 = 1_000
	picosPerMicrosecond int64 = 1_000_000
	picosPerMillisecond int64 = 1_000_000_000
	picosPerSecond      int64 = 1_000_000_000_000
	picosPerMinute      int64 = 60 * picosPerSecond
	picosPerHour        int64 = 3600 * picosPerSecond
	picosPerDay         int64 = 86400 * picosPerSecond
)

/*
Numeric is qualified through any integral or floating-point type, and
constrains the unit factory functions such as [Seconds] and [Days].
*/
type Numeric interface {
	constraints.Integer | constraints.Float
}

/*
Duration implements a signed fixed-point span of time, stored as a
128-bit integer tick count of picoseconds. The wide representation
admits a range of roughly ±1.7×10²⁰ picoseconds without overflow or
loss of precision.

Duration is an immutable value type; every arithmetic method returns
a new instance. The zero value represents a zero-length span.

Instances may be created through the unit factories:

	d1 := gpstime.Days(1.5)
	d2 := gpstime.Seconds(1).Add(gpstime.Milliseconds(500))
	d3 := gpstime.Milliseconds(1).Mul(1500) // same as d2
*/
type Duration struct {
	ticks Int128
}

/*
unitDuration converts count/unit pairs into ticks. Floating-point
inputs pass through an intermediate floating-point picosecond value
and truncate toward zero; integral inputs convert exactly.
*/
func unitDuration[T Numeric](count T, unit int64) Duration {
	switch v := any(count).(type) {
	case float32:
		return Duration{Int128FromFloat64(float64(v) * float64(unit))}
	case float64:
		return Duration{Int128FromFloat64(v * float64(unit))}
	}
	return Duration{mulInt64(int64(count), unit)}
}

/*
Days returns a [Duration] representing the specified number of SI
days.

For all unit factories, conversion from a floating-point count is
subject to undefined behavior when the value is NaN, infinite, or too
large to be representable; callers must vet such inputs beforehand.
Fractional remainders below one picosecond truncate toward zero.
*/
func Days[T Numeric](count T) Duration { return unitDuration(count, picosPerDay) }

/*
Hours returns a [Duration] representing the specified number of SI
hours.
*/
func Hours[T Numeric](count T) Duration { return unitDuration(count, picosPerHour) }

/*
Minutes returns a [Duration] representing the specified number of SI
minutes.
*/
func Minutes[T Numeric](count T) Duration { return unitDuration(count, picosPerMinute) }

/*
Seconds returns a [Duration] representing the specified number of
seconds.
*/
func Seconds[T Numeric](count T) Duration { return unitDuration(count, picosPerSecond) }

/*
Milliseconds returns a [Duration] representing the specified number
of milliseconds.
*/
func Milliseconds[T Numeric](count T) Duration { return unitDuration(count, picosPerMillisecond) }

/*
Microseconds returns a [Duration] representing the specified number
of microseconds.
*/
func Microseconds[T Numeric](count T) Duration { return unitDuration(count, picosPerMicrosecond) }

/*
Nanoseconds returns a [Duration] representing the specified number of
nanoseconds.
*/
func Nanoseconds[T Numeric](count T) Duration { return unitDuration(count, picosPerNanosecond) }

/*
Picoseconds returns a [Duration] representing the specified number of
picoseconds (ticks).
*/
func Picoseconds[T Numeric](count T) Duration { return unitDuration(count, 1) }

/*
DurationFromCount returns a [Duration] holding the raw tick count,
admitting magnitudes beyond the reach of the unit factories.
*/
func DurationFromCount(ticks Int128) Duration { return Duration{ticks} }

/*
MinDuration returns the smallest representable [Duration].
*/
func MinDuration() Duration { return Duration{Int128{math.MinInt64, 0}} }

/*
MaxDuration returns the largest representable [Duration].
*/
func MaxDuration() Duration { return Duration{Int128{math.MaxInt64, math.MaxUint64}} }

/*
DurationResolution returns the smallest possible difference between
non-equal [Duration] instances: a single one-picosecond tick.
*/
func DurationResolution() Duration { return Duration{Int128FromInt64(1)} }

/*
Count returns the raw tick count.
*/
func (r Duration) Count() Int128 { return r.ticks }

/*
TotalSeconds returns the total number of seconds in the receiver as a
floating-point value. Precision may be lost for very large
magnitudes.
*/
func (r Duration) TotalSeconds() float64 {
	return r.ticks.Float64() / float64(picosPerSecond)
}

/*
IsZero returns a Boolean value indicative of the receiver being a
zero-length span.
*/
func (r Duration) IsZero() bool { return r.ticks.IsZero() }

/*
Neg returns the additive inverse of the receiver instance.
*/
func (r Duration) Neg() Duration { return Duration{r.ticks.Neg()} }

/*
Abs returns the magnitude of the receiver instance.
*/
func (r Duration) Abs() Duration { return Duration{r.ticks.Abs()} }

/*
Add returns the sum of the receiver and x.
*/
func (r Duration) Add(x Duration) Duration { return Duration{r.ticks.Add(x.ticks)} }

/*
Sub returns the difference between the receiver and x.
*/
func (r Duration) Sub(x Duration) Duration { return Duration{r.ticks.Sub(x.ticks)} }

/*
Inc returns the receiver incremented by a single tick.
*/
func (r Duration) Inc() Duration { return Duration{r.ticks.Add(Int128FromInt64(1))} }

/*
Dec returns the receiver decremented by a single tick.
*/
func (r Duration) Dec() Duration { return Duration{r.ticks.Sub(Int128FromInt64(1))} }

/*
Mul returns the product of the receiver and the integral scalar m.
*/
func (r Duration) Mul(m int64) Duration { return Duration{r.ticks.Mul64(m)} }

/*
MulFloat returns the product of the receiver and the floating-point
scalar m, truncated toward zero. The floating-point preconditions of
the unit factories apply.
*/
func (r Duration) MulFloat(m float64) Duration {
	return Duration{Int128FromFloat64(r.ticks.Float64() * m)}
}

/*
Div returns the quotient of the receiver and the integral scalar d,
truncated toward zero. Div panics when d is zero; callers must vet
the divisor beforehand.
*/
func (r Duration) Div(d int64) Duration {
	q, _ := r.ticks.QuoRem(Int128FromInt64(d))
	return Duration{q}
}

/*
DivFloat returns the quotient of the receiver and the floating-point
scalar d, truncated toward zero. The floating-point preconditions of
the unit factories apply.
*/
func (r Duration) DivFloat(d float64) Duration {
	return Duration{Int128FromFloat64(r.ticks.Float64() / d)}
}

/*
Mod returns the remainder after division of the receiver by x. The
result carries the sign of the receiver, consistent with truncating
division. Mod panics when x is zero; callers must vet the divisor
beforehand.
*/
func (r Duration) Mod(x Duration) Duration {
	_, rem := r.ticks.QuoRem(x.ticks)
	return Duration{rem}
}

/*
Cmp returns -1, 0 or 1 when the receiver is less than, equal to or
greater than x respectively. Durations form a total order by tick
count.
*/
func (r Duration) Cmp(x Duration) int { return r.ticks.Cmp(x.ticks) }

/*
Equal returns a Boolean value indicative of the receiver matching x.
*/
func (r Duration) Equal(x Duration) bool { return r.ticks == x.ticks }

/*
Lt returns true if the receiver is strictly less than x.
*/
func (r Duration) Lt(x Duration) bool { return r.Cmp(x) < 0 }

/*
Le returns true if the receiver is less than or equal to x.
*/
func (r Duration) Le(x Duration) bool { return r.Cmp(x) <= 0 }

/*
Gt returns true if the receiver is strictly greater than x.
*/
func (r Duration) Gt(x Duration) bool { return r.Cmp(x) > 0 }

/*
Ge returns true if the receiver is greater than or equal to x.
*/
func (r Duration) Ge(x Duration) bool { return r.Cmp(x) >= 0 }

/*
Trunc returns the nearest integer multiple of period not greater in
magnitude than the receiver (snapping toward zero).

Trunc, like [Duration.Floor], [Duration.Ceil] and [Duration.Round],
panics when period is zero; callers must vet the period beforehand.
*/
func (r Duration) Trunc(period Duration) Duration {
	return r.Sub(r.Mod(period))
}

/*
Floor returns the largest integer multiple of period that is less
than or equal to the receiver.
*/
func (r Duration) Floor(period Duration) Duration {
	t := r.Trunc(period)
	if t.Le(r) {
		return t
	}
	return t.Sub(period.Abs())
}

/*
Ceil returns the smallest integer multiple of period that is greater
than or equal to the receiver.
*/
func (r Duration) Ceil(period Duration) Duration {
	t := r.Trunc(period)
	if t.Ge(r) {
		return t
	}
	return t.Add(period.Abs())
}

/*
Round returns the integer multiple of period that is closest to the
receiver. On an exact tie -- the receiver equidistant between two
multiples -- the multiple whose ratio to period is even is chosen
(round-half-to-even).
*/
func (r Duration) Round(period Duration) Duration {
	lower := r.Floor(period)
	upper := lower.Add(period.Abs())

	lowerDiff := r.Sub(lower)
	upperDiff := upper.Sub(r)

	if lowerDiff.Lt(upperDiff) {
		return lower
	}
	if upperDiff.Lt(lowerDiff) {
		return upper
	}

	// Halfway case: keep the even multiple.
	q, _ := lower.ticks.QuoRem(period.ticks)
	if q.lo&1 == 1 {
		return upper
	}
	return lower
}
