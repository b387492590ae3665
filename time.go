package gpstime

/*
time.go implements the [GPSTime] temporal value type alongside the
[TimeScale] dispatch machinery which binds a value to the continuous
atomic scale it is measured on.
*/

import "time"

/*
Year boundaries of the representable calendar range. The lower bound
follows the proleptic year numbering in which year 1 is the first
representable year.
*/
const (
	minYear = 1
	maxYear = 9999
)

/*
TimeScale identifies the continuous (leap-second free) time scale a
[GPSTime] value is measured on. Scale-specific behavior -- the epoch
and the clock sampled by [Now] -- is selected through a small dispatch
table rather than through subtyping.
*/
type TimeScale uint8

/*
ScaleGPS identifies the Global Positioning System time scale: an
atomic scale implemented by GPS satellites and ground stations, with
its epoch at 1980-01-06T00:00:00. Unlike UTC, GPS time is a
continuous linear scale -- leap seconds are never inserted -- so
elapsed-tick arithmetic always equals elapsed real time.
*/
const ScaleGPS TimeScale = iota

/*
scaleProfile gathers the scale-specific values consulted through the
dispatch table.
*/
type scaleProfile struct {
	name      string
	epochDays int64 // days from 1970-01-01 to the scale epoch
	minTicks  Int128
	maxTicks  Int128
	clock     Clock
}

var gpsEpochDays = civilToDays(1980, 1, 6)

var scaleProfiles = [...]scaleProfile{
	ScaleGPS: {
		name:      "GPS",
		epochDays: gpsEpochDays,
		minTicks:  mulInt64(civilToDays(minYear, 1, 1)-gpsEpochDays, picosPerDay),
		maxTicks: mulInt64(civilToDays(maxYear, 12, 31)-gpsEpochDays, picosPerDay).
			Add(Int128FromInt64(picosPerDay - 1)),
		clock: systemGPSClock{},
	},
}

func (r TimeScale) profile() *scaleProfile { return &scaleProfiles[r] }

/*
String returns the name of the receiver time scale, e.g. "GPS".
*/
func (r TimeScale) String() string { return r.profile().name }

/*
Components describes a point on the proleptic Gregorian calendar with
picosecond resolution as ten integer fields. A Components instance is
only meaningful when it satisfies all of the domain bounds listed
below; [NewGPSTime] enforces them in an all-or-nothing fashion.

	Year        [1, 9999]
	Month       [1, 12]
	Day         [1, daysInMonth(Year, Month)]
	Hour        [0, 24)
	Minute      [0, 60)
	Second      [0, 60)
	Millisecond [0, 1000)
	Microsecond [0, 1000)
	Nanosecond  [0, 1000)
	Picosecond  [0, 1000)
*/
type Components struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
	Nanosecond  int
	Picosecond  int
}

func (r Components) validate() error {
	if r.Year < minYear || r.Year > maxYear {
		return errorBadYear
	}
	if r.Month < 1 || r.Month > 12 {
		return errorBadMonth
	}
	if r.Day < 1 || r.Day > daysInMonth(r.Year, r.Month) {
		return errorBadDay
	}
	if r.Hour < 0 || r.Hour >= 24 {
		return errorBadHour
	}
	if r.Minute < 0 || r.Minute >= 60 {
		return errorBadMinute
	}
	if r.Second < 0 || r.Second >= 60 {
		return errorBadSecond
	}
	if r.Millisecond < 0 || r.Millisecond >= 1000 {
		return errorBadMillisecond
	}
	if r.Microsecond < 0 || r.Microsecond >= 1000 {
		return errorBadMicrosecond
	}
	if r.Nanosecond < 0 || r.Nanosecond >= 1000 {
		return errorBadNanosecond
	}
	if r.Picosecond < 0 || r.Picosecond >= 1000 {
		return errorBadPicosecond
	}
	return nil
}

/*
GPSTime implements a point on the GPS time scale with picosecond
resolution, stored as a signed 128-bit tick count relative to the
scale epoch. The tick count and the ten-field [Components] form are
isomorphic; either uniquely identifies the value within the
representable range:

	[0001-01-01T00:00:00, 9999-12-31T23:59:59.999999999999]

GPSTime is an immutable value type. The zero value represents the
scale epoch, 1980-01-06T00:00:00.
*/
type GPSTime struct {
	scale TimeScale
	ticks Int128
}

/*
NewGPSTime returns an instance of [GPSTime] alongside an error
following an attempt to interpret c as a valid calendar point.

Validation is all-or-nothing: each component is checked against its
domain, including the leap-year aware day-of-month bound, and any
violation yields an error unwrapping to [ErrInvalidArgument]. Values
are never clamped.
*/
func NewGPSTime(c Components, constraints ...Constraint[GPSTime]) (GPSTime, error) {
	return newScaleTime(ScaleGPS, c, constraints)
}

func newScaleTime(scale TimeScale, c Components, constraints ConstraintGroup[GPSTime]) (GPSTime, error) {
	var t GPSTime
	err := c.validate()
	if err == nil {
		t = GPSTime{scale, ticksFromComponents(scale, c)}
		if len(constraints) > 0 {
			err = constraints.Constrain(t)
		}
	}

	if err != nil {
		return GPSTime{}, err
	}
	return t, nil
}

/*
GPSTimeFromTicks returns an instance of [GPSTime] alongside an error
following an attempt to interpret ticks as a signed picosecond count
relative to the GPS epoch (1980-01-06T00:00:00).

A tick count outside the representable range yields an error
unwrapping to [ErrOutOfRange].
*/
func GPSTimeFromTicks(ticks Int128, constraints ...Constraint[GPSTime]) (GPSTime, error) {
	p := ScaleGPS.profile()
	if ticks.Cmp(p.minTicks) < 0 || ticks.Cmp(p.maxTicks) > 0 {
		return GPSTime{}, errorTicksOutOfRange
	}

	t := GPSTime{ScaleGPS, ticks}
	if len(constraints) > 0 {
		var group ConstraintGroup[GPSTime] = constraints
		if err := group.Constrain(t); err != nil {
			return GPSTime{}, err
		}
	}

	return t, nil
}

/*
MinGPSTime returns the earliest representable [GPSTime],
0001-01-01T00:00:00.
*/
func MinGPSTime() GPSTime { return GPSTime{ScaleGPS, ScaleGPS.profile().minTicks} }

/*
MaxGPSTime returns the latest representable [GPSTime],
9999-12-31T23:59:59.999999999999.
*/
func MaxGPSTime() GPSTime { return GPSTime{ScaleGPS, ScaleGPS.profile().maxTicks} }

/*
Resolution returns the smallest possible difference between non-equal
[GPSTime] instances: a single one-picosecond tick.
*/
func Resolution() Duration { return DurationResolution() }

func ticksFromComponents(scale TimeScale, c Components) Int128 {
	days := civilToDays(c.Year, c.Month, c.Day) - scale.profile().epochDays

	tod := int64(c.Hour)*picosPerHour +
		int64(c.Minute)*picosPerMinute +
		int64(c.Second)*picosPerSecond +
		int64(c.Millisecond)*picosPerMillisecond +
		int64(c.Microsecond)*picosPerMicrosecond +
		int64(c.Nanosecond)*picosPerNanosecond +
		int64(c.Picosecond)

	return mulInt64(days, picosPerDay).Add(Int128FromInt64(tod))
}

/*
split separates the tick count into a whole day count and a
nonnegative time-of-day remainder (flooring division).
*/
func (r GPSTime) split() (days, tod int64) {
	q, rem := r.ticks.QuoRem(Int128FromInt64(picosPerDay))
	days, _ = q.Int64()
	tod, _ = rem.Int64()
	if tod < 0 {
		days--
		tod += picosPerDay
	}
	return
}

/*
Components returns the ten-field broken-down calendar form of the
receiver instance.
*/
func (r GPSTime) Components() Components {
	days, tod := r.split()
	y, mo, d := daysToCivil(days + r.scale.profile().epochDays)

	c := Components{Year: y, Month: mo, Day: d}
	c.Hour = int(tod / picosPerHour)
	tod %= picosPerHour
	c.Minute = int(tod / picosPerMinute)
	tod %= picosPerMinute
	c.Second = int(tod / picosPerSecond)
	tod %= picosPerSecond
	c.Millisecond = int(tod / picosPerMillisecond)
	tod %= picosPerMillisecond
	c.Microsecond = int(tod / picosPerMicrosecond)
	tod %= picosPerMicrosecond
	c.Nanosecond = int(tod / picosPerNanosecond)
	c.Picosecond = int(tod % picosPerNanosecond)
	return c
}

/*
Ticks returns the raw signed picosecond count of the receiver
relative to the scale epoch.
*/
func (r GPSTime) Ticks() Int128 { return r.ticks }

/*
Scale returns the [TimeScale] the receiver is measured on.
*/
func (r GPSTime) Scale() TimeScale { return r.scale }

/*
Year returns the year component of the receiver instance.
*/
func (r GPSTime) Year() int { return r.Components().Year }

/*
Month returns the month component, encoded 1 through 12.
*/
func (r GPSTime) Month() int { return r.Components().Month }

/*
Day returns the day component of the receiver instance.
*/
func (r GPSTime) Day() int { return r.Components().Day }

/*
Hour returns the hour component of the receiver instance.
*/
func (r GPSTime) Hour() int { return r.Components().Hour }

/*
Minute returns the minute component of the receiver instance.
*/
func (r GPSTime) Minute() int { return r.Components().Minute }

/*
Second returns the second component of the receiver instance.
*/
func (r GPSTime) Second() int { return r.Components().Second }

/*
Millisecond returns the millisecond component of the receiver
instance.
*/
func (r GPSTime) Millisecond() int { return r.Components().Millisecond }

/*
Microsecond returns the microsecond component of the receiver
instance.
*/
func (r GPSTime) Microsecond() int { return r.Components().Microsecond }

/*
Nanosecond returns the nanosecond component of the receiver instance.
*/
func (r GPSTime) Nanosecond() int { return r.Components().Nanosecond }

/*
Picosecond returns the picosecond component of the receiver instance.
*/
func (r GPSTime) Picosecond() int { return r.Components().Picosecond }

/*
Date returns the calendar date triple of the receiver instance.
*/
func (r GPSTime) Date() (year, month, day int) {
	days, _ := r.split()
	return daysToCivil(days + r.scale.profile().epochDays)
}

/*
Weekday returns the day of the week of the receiver instance.
*/
func (r GPSTime) Weekday() time.Weekday {
	days, _ := r.split()
	return weekdayFromDays(days + r.scale.profile().epochDays)
}

/*
TimeOfDay returns the whole hour, minute and second components of
the receiver alongside the remaining sub-second span.
*/
func (r GPSTime) TimeOfDay() (hour, minute, second int, sub Duration) {
	_, tod := r.split()
	hour = int(tod / picosPerHour)
	tod %= picosPerHour
	minute = int(tod / picosPerMinute)
	tod %= picosPerMinute
	second = int(tod / picosPerSecond)
	sub = Picoseconds(tod % picosPerSecond)
	return
}

/*
Add returns the receiver shifted forward by d alongside an error. A
result outside the representable range yields an error unwrapping to
[ErrOutOfRange].

Subtraction of a [Duration] is expressed as r.Add(d.Neg()).
*/
func (r GPSTime) Add(d Duration) (GPSTime, error) {
	p := r.scale.profile()
	t := r.ticks.Add(d.Count())
	if t.Cmp(p.minTicks) < 0 || t.Cmp(p.maxTicks) > 0 {
		return GPSTime{}, errorResultOutOfRange
	}
	return GPSTime{r.scale, t}, nil
}

/*
Sub returns the [Duration] elapsed between x and the receiver; the
result is negative when the receiver precedes x.
*/
func (r GPSTime) Sub(x GPSTime) Duration {
	return DurationFromCount(r.ticks.Sub(x.ticks))
}

/*
Next returns the receiver advanced by a single tick.
*/
func (r GPSTime) Next() (GPSTime, error) { return r.Add(DurationResolution()) }

/*
Prev returns the receiver receded by a single tick.
*/
func (r GPSTime) Prev() (GPSTime, error) { return r.Add(DurationResolution().Neg()) }

/*
Cmp returns -1, 0 or 1 when the receiver is earlier than, equal to or
later than x respectively. The ordering by tick count coincides with
lexicographic ordering over the ten calendar components.
*/
func (r GPSTime) Cmp(x GPSTime) int { return r.ticks.Cmp(x.ticks) }

/*
Equal returns a Boolean value indicative of the receiver matching x.
*/
func (r GPSTime) Equal(x GPSTime) bool { return r.ticks == x.ticks }

/*
Before returns true if the receiver is strictly earlier than x.
*/
func (r GPSTime) Before(x GPSTime) bool { return r.Cmp(x) < 0 }

/*
After returns true if the receiver is strictly later than x.
*/
func (r GPSTime) After(x GPSTime) bool { return r.Cmp(x) > 0 }

/*
String returns the string representation of the receiver instance,
e.g. "2000-01-02T03:04:05.006007008009".
*/
func (r GPSTime) String() string { return formatDateTime(r.Components()) }
