package gpstime

/*
durfmt.go implements the human-readable rendering of [Duration]
values, e.g. "1d23h4m56.789s".
*/

/*
DurationFormat declares the optional rendering behaviors honored by
[Duration.Format].
*/
type DurationFormat struct {
	// ShowSign renders an explicit "+" prefix upon nonnegative
	// values; negative values always render a "-" prefix.
	ShowSign bool

	// ShowPoint renders a bare ".0" fraction upon the smallest
	// component when the fraction would otherwise be omitted.
	ShowPoint bool
}

/*
String returns the string representation of the receiver instance
using the default [DurationFormat].

The output depends on the magnitude of the receiver. Whole day, hour
and minute components are emitted with "d", "h" and "m" suffixes in
descending order while the magnitude warrants them. The remainder is
rendered as a decimal value of the coarsest applicable unit among
seconds, milliseconds, microseconds, nanoseconds and picoseconds,
with trailing zero fractional digits trimmed.

	gpstime.Picoseconds(123)                            // 123ps
	gpstime.Picoseconds(1230)                           // 1.23ns
	gpstime.Microseconds(12).Add(gpstime.Nanoseconds(345)) // 12.345us
	gpstime.Seconds(754)                                // 12m34s
	gpstime.Hours(1).Neg().Dec()                        // -1h0m0.000000000001s
*/
func (r Duration) String() string { return r.Format(DurationFormat{}) }

/*
Format returns the string representation of the receiver instance,
honoring the supplied [DurationFormat] options.
*/
func (r Duration) Format(opts DurationFormat) string {
	var b []byte

	if r.ticks.Sign() < 0 {
		b = append(b, '-')
	} else if opts.ShowSign {
		b = append(b, '+')
	}

	// Split the magnitude into whole components of descending
	// significance. Note the day count may exceed 64 bits.
	a := r.ticks.Abs()
	frac := a

	if a.Sign() < 0 {
		// Abs wraps at the extreme negative value. Peel the whole day
		// count off the signed ticks instead; the sub-day remainder
		// then fits, and the remaining branches see a day-scale
		// magnitude.
		q, rem := r.ticks.QuoRem(Int128FromInt64(picosPerDay))
		b = append(b, q.Abs().String()...)
		b = append(b, 'd')
		frac = rem.Neg()
		a = Int128FromInt64(picosPerDay - 1)
	}

	if a.Cmp(Int128FromInt64(picosPerDay)) >= 0 {
		q, rem := frac.QuoRem(Int128FromInt64(picosPerDay))
		b = append(b, q.String()...)
		b = append(b, 'd')
		frac = rem
	}
	if a.Cmp(Int128FromInt64(picosPerHour)) >= 0 {
		q, rem := frac.QuoRem(Int128FromInt64(picosPerHour))
		whole, _ := q.Int64()
		b = appInt(b, whole, 10)
		b = append(b, 'h')
		frac = rem
	}
	if a.Cmp(Int128FromInt64(picosPerMinute)) >= 0 {
		q, rem := frac.QuoRem(Int128FromInt64(picosPerMinute))
		whole, _ := q.Int64()
		b = appInt(b, whole, 10)
		b = append(b, 'm')
		frac = rem
	}

	// The final component uses the coarsest unit for which the
	// overall magnitude reaches at least one.
	period, digits, suffix := int64(1), 0, "ps"
	switch {
	case a.Cmp(Int128FromInt64(picosPerSecond)) >= 0:
		period, digits, suffix = picosPerSecond, 12, "s"
	case a.Cmp(Int128FromInt64(picosPerMillisecond)) >= 0:
		period, digits, suffix = picosPerMillisecond, 9, "ms"
	case a.Cmp(Int128FromInt64(picosPerMicrosecond)) >= 0:
		period, digits, suffix = picosPerMicrosecond, 6, "us"
	case a.Cmp(Int128FromInt64(picosPerNanosecond)) >= 0:
		period, digits, suffix = picosPerNanosecond, 3, "ns"
	}

	q, rem := frac.QuoRem(Int128FromInt64(period))
	whole, _ := q.Int64()
	fr, _ := rem.Int64()
	b = appInt(b, whole, 10)

	if fr != 0 {
		s := fmtInt(fr, 10)
		b = append(b, '.')
		for i := len(s); i < digits; i++ {
			b = append(b, '0')
		}
		end := len(s)
		for s[end-1] == '0' {
			end--
		}
		b = append(b, s[:end]...)
	} else if opts.ShowPoint {
		b = append(b, '.', '0')
	}

	return string(append(b, suffix...))
}
