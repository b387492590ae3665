package gpstime

/*
clock.go contains the clock collaborator through which [Now] samples
the current instant, together with the default host wall-clock
adapter for the GPS scale.
*/

import (
	"sync"
	"time"
)

/*
Clock is qualified through any source of "current instant" readings,
expressed as a signed picosecond tick count relative to the epoch of
the [TimeScale] the clock serves.

Readings carry no monotonicity or cross-thread ordering guarantee;
the underlying source may be adjusted by the operating environment
between any two samples.
*/
type Clock interface {
	Now() Int128
}

var clockMutex sync.RWMutex

/*
RegisterClock associates c with the specified [TimeScale], replacing
the clock sampled by [Now]. A nil c restores the default host
adapter. RegisterClock is safe for concurrent use, though it is
intended as a process setup (or test seam) operation.
*/
func RegisterClock(scale TimeScale, c Clock) {
	clockMutex.Lock()
	defer clockMutex.Unlock()

	if c == nil {
		c = systemGPSClock{}
	}
	scaleProfiles[scale].clock = c
}

/*
Now returns the current instant on the GPS scale alongside an error,
sampled through the clock registered for [ScaleGPS]. This is the sole
time-varying operation in the package.
*/
func Now() (GPSTime, error) {
	clockMutex.RLock()
	c := ScaleGPS.profile().clock
	clockMutex.RUnlock()

	return GPSTimeFromTicks(c.Now())
}

/*
gpsUTCOffsetSeconds is the cumulative count of leap seconds by which
GPS time leads UTC, last incremented 2017-01-01.
*/
const gpsUTCOffsetSeconds = 18

/*
systemGPSClock adapts the host wall clock, which reports UTC, to the
GPS scale using the fixed published offset. Tick positions below the
host clock resolution read as zero.
*/
type systemGPSClock struct{}

func (systemGPSClock) Now() Int128 {
	t := time.Now()
	secs := t.Unix() - gpsEpochDays*86400 + gpsUTCOffsetSeconds
	return mulInt64(secs, picosPerSecond).
		Add(Int128FromInt64(int64(t.Nanosecond()) * picosPerNanosecond))
}
