package gpstime

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	for i, tc := range []struct {
		year, month, want int
	}{
		{2000, 2, 29}, // divisible by 400
		{1920, 2, 29}, // divisible by 4, not 100
		{1900, 2, 28}, // divisible by 100, not 400
		{2001, 2, 28},
		{2100, 2, 28},
		{2023, 1, 31},
		{2023, 4, 30},
		{2023, 12, 31},
		{2024, 2, 29},
	} {
		if got := daysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("%s[%d] failed: %04d-%02d: want %d, got %d",
				t.Name(), i, tc.year, tc.month, tc.want, got)
		}
	}
}

func TestCivilToDays_KnownDates(t *testing.T) {
	for i, tc := range []struct {
		y, m, d int
		want    int64
	}{
		{1970, 1, 1, 0},
		{1969, 12, 31, -1},
		{1980, 1, 6, 3657},
		{2000, 3, 1, 11017},
		{1, 1, 1, -719162},
		{9999, 12, 31, 2932896},
	} {
		if got := civilToDays(tc.y, tc.m, tc.d); got != tc.want {
			t.Fatalf("%s[%d] failed: %04d-%02d-%02d: want %d, got %d",
				t.Name(), i, tc.y, tc.m, tc.d, tc.want, got)
		}
		yy, mm, dd := daysToCivil(tc.want)
		if yy != tc.y || mm != tc.m || dd != tc.d {
			t.Fatalf("%s[%d] failed [inverse]: day %d: want %04d-%02d-%02d, got %04d-%02d-%02d",
				t.Name(), i, tc.want, tc.y, tc.m, tc.d, yy, mm, dd)
		}
	}
}

func TestDaysToCivil_InverseSweep(t *testing.T) {
	// Every day across a leap boundary pair of years.
	for day := civilToDays(1999, 1, 1); day <= civilToDays(2001, 12, 31); day++ {
		y, m, d := daysToCivil(day)
		if back := civilToDays(y, m, d); back != day {
			t.Fatalf("%s failed: day %d decomposed to %04d-%02d-%02d (day %d)",
				t.Name(), day, y, m, d, back)
		}
		if d < 1 || d > daysInMonth(y, m) {
			t.Fatalf("%s failed: day %d yielded invalid civil %04d-%02d-%02d",
				t.Name(), day, y, m, d)
		}
	}

	// Coarse sweep across the entire proleptic range.
	for day := civilToDays(1, 1, 1); day <= civilToDays(9999, 12, 31); day += 997 {
		y, m, d := daysToCivil(day)
		if back := civilToDays(y, m, d); back != day {
			t.Fatalf("%s failed [coarse]: day %d round-tripped to %d", t.Name(), day, back)
		}
	}
}

func TestWeekdayFromDays(t *testing.T) {
	for i, tc := range []struct {
		day  int64
		want time.Weekday
	}{
		{0, time.Thursday}, // 1970-01-01
		{-1, time.Wednesday},
		{3657, time.Sunday}, // 1980-01-06, the GPS epoch
		{civilToDays(2000, 1, 2), time.Sunday},
		{civilToDays(1, 1, 1), time.Monday},
	} {
		if got := weekdayFromDays(tc.day); got != tc.want {
			t.Fatalf("%s[%d] failed: day %d: want %s, got %s",
				t.Name(), i, tc.day, tc.want, got)
		}
	}
}
