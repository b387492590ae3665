package gpstime

import (
	"errors"
	"testing"
)

type fakeClock struct{ ticks Int128 }

func (r fakeClock) Now() Int128 { return r.ticks }

func TestNow_RegisteredClock(t *testing.T) {
	want, err := NewGPSTime(Components{Year: 1980, Month: 1, Day: 6, Hour: 1, Minute: 2, Second: 3})
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	RegisterClock(ScaleGPS, fakeClock{want.Ticks()})
	defer RegisterClock(ScaleGPS, nil)

	got, err := Now()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !got.Equal(want) {
		t.Fatalf("%s failed: want %s, got %s", t.Name(), want.String(), got.String())
	}
}

func TestNow_ClockOutOfRange(t *testing.T) {
	RegisterClock(ScaleGPS, fakeClock{MaxGPSTime().Ticks().Add(Int128FromInt64(1))})
	defer RegisterClock(ScaleGPS, nil)

	if _, err := Now(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("%s failed: expected out of range, got %v", t.Name(), err)
	}
}

func TestNow_SystemClockSanity(t *testing.T) {
	// The default host adapter is in place after a nil registration.
	RegisterClock(ScaleGPS, nil)

	got, err := Now()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	lower, _ := NewGPSTime(Components{Year: 2020, Month: 1, Day: 1})
	upper, _ := NewGPSTime(Components{Year: 2200, Month: 1, Day: 1})
	if !got.After(lower) || !got.Before(upper) {
		t.Fatalf("%s failed: implausible current instant %s", t.Name(), got.String())
	}
	if got.Scale() != ScaleGPS {
		t.Fatalf("%s failed: scale %v", t.Name(), got.Scale())
	}
}
