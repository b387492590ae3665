package gpstime

import (
	"fmt"
	"testing"
)

func TestDuration_String(t *testing.T) {
	for i, tc := range []struct {
		in   Duration
		want string
	}{
		{Picoseconds(0), "0ps"},
		{Picoseconds(123), "123ps"},
		{Picoseconds(1230), "1.23ns"},
		{Nanoseconds(1), "1ns"},
		{Microseconds(12).Add(Nanoseconds(345)), "12.345us"},
		{Milliseconds(-999), "-999ms"},
		{Seconds(1.5), "1.5s"},
		{Seconds(754), "12m34s"},
		{Hours(1).Neg().Dec(), "-1h0m0.000000000001s"},
		{Days(1).Add(Hours(23)).Add(Minutes(4)).Add(Seconds(56)).Add(Milliseconds(789)),
			"1d23h4m56.789s"},
		{Days(2), "2d0h0m0s"},
		{Days(-2).Sub(Milliseconds(500)), "-2d0h0m0.5s"},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("%s[%d] failed: want %s, got %s", t.Name(), i, tc.want, got)
		}
	}
}

func TestDuration_StringExtremes(t *testing.T) {
	// The extreme negative value has no representable magnitude, yet
	// must still render exactly.
	if got := MinDuration().String(); got != "-1969226660422097589487d2h55m3.715884105728s" {
		t.Fatalf("%s failed [min]: got %s", t.Name(), got)
	}
	if got := MaxDuration().String(); got != "1969226660422097589487d2h55m3.715884105727s" {
		t.Fatalf("%s failed [max]: got %s", t.Name(), got)
	}
}

func TestDuration_Format(t *testing.T) {
	for i, tc := range []struct {
		in   Duration
		opts DurationFormat
		want string
	}{
		{Seconds(10), DurationFormat{ShowSign: true}, "+10s"},
		{Seconds(-10), DurationFormat{ShowSign: true}, "-10s"},
		{Picoseconds(0), DurationFormat{ShowSign: true}, "+0ps"},
		{Seconds(-10), DurationFormat{ShowPoint: true}, "-10.0s"},
		{Minutes(5), DurationFormat{ShowPoint: true}, "5m0.0s"},
		{Seconds(1.5), DurationFormat{ShowPoint: true}, "1.5s"},
		{Seconds(10), DurationFormat{ShowSign: true, ShowPoint: true}, "+10.0s"},
	} {
		if got := tc.in.Format(tc.opts); got != tc.want {
			t.Fatalf("%s[%d] failed: want %s, got %s", t.Name(), i, tc.want, got)
		}
	}
}

func ExampleDuration_String() {
	d := Days(1).
		Add(Hours(23)).
		Add(Minutes(4)).
		Add(Seconds(56)).
		Add(Milliseconds(789))
	fmt.Println(d)
	// Output: 1d23h4m56.789s
}

func ExampleDuration_Format() {
	fmt.Println(Seconds(10).Format(DurationFormat{ShowSign: true, ShowPoint: true}))
	// Output: +10.0s
}
