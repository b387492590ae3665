package gpstime

import (
	"errors"
	"fmt"
	"testing"
)

func TestRangeConstraint(t *testing.T) {
	within := RangeConstraint(1, 10)
	if err := within(5); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if err := within(11); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: 11 accepted (err: %v)", t.Name(), err)
	}
	if err := within(1); err != nil {
		t.Fatalf("%s failed [inclusive]: %v", t.Name(), err)
	}
}

func TestDurationRangeConstraint(t *testing.T) {
	cons := DurationRangeConstraint(Seconds(0), Minutes(5))
	if err := cons(Seconds(90)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if err := cons(Seconds(-1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: -1s accepted (err: %v)", t.Name(), err)
	}
	if err := cons(Minutes(6)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: 6m accepted (err: %v)", t.Name(), err)
	}
}

func TestTimeRangeConstraint(t *testing.T) {
	start, _ := ParseGPSTime("2020-01-01T00:00:00")
	end, _ := ParseGPSTime("2020-12-31T23:59:59")
	window := TimeRangeConstraint(start, end)

	if _, err := ParseGPSTime("2020-06-15T12:00:00", window); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if _, err := ParseGPSTime("2021-01-01T00:00:00", window); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: out-of-window value accepted (err: %v)", t.Name(), err)
	}
	if _, err := NewGPSTime(Components{Year: 2019, Month: 12, Day: 31}, window); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: out-of-window components accepted (err: %v)", t.Name(), err)
	}
}

func TestPropertyConstraint(t *testing.T) {
	weekdayOnly := PropertyConstraint(func(gt GPSTime) error {
		switch gt.Weekday() {
		case 0, 6: // Sunday, Saturday
			return invalidArgErrorf("time ", gt.String(), " falls on a weekend")
		}
		return nil
	})

	if _, err := ParseGPSTime("1999-08-23T09:00:00", weekdayOnly); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if _, err := ParseGPSTime("1999-08-22T09:00:00", weekdayOnly); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: weekend value accepted (err: %v)", t.Name(), err)
	}
}

func TestConstraintGroup_Order(t *testing.T) {
	var trace []int
	mark := func(n int) Constraint[int] {
		return func(int) error {
			trace = append(trace, n)
			return nil
		}
	}

	group := ConstraintGroup[int]{mark(1), nil, mark(2), mark(3)}
	if err := group.Constrain(0); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if len(trace) != 3 || trace[0] != 1 || trace[1] != 2 || trace[2] != 3 {
		t.Fatalf("%s failed: evaluation order %v", t.Name(), trace)
	}

	// The first violation short-circuits the remainder.
	trace = nil
	group = ConstraintGroup[int]{mark(1), RangeConstraint(0, 0), mark(2)}
	if err := group.Constrain(5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("%s failed: violation lost (err: %v)", t.Name(), err)
	}
	if len(trace) != 1 {
		t.Fatalf("%s failed: constraints after a violation ran: %v", t.Name(), trace)
	}
}

func ExampleTimeRangeConstraint() {
	start, _ := ParseGPSTime("2020-01-01T00:00:00")
	end, _ := ParseGPSTime("2020-12-31T23:59:59")

	_, err := ParseGPSTime("2021-06-15T12:00:00", TimeRangeConstraint(start, end))
	fmt.Println(err)
	// Output: INVALID ARGUMENT: time 2021-06-15T12:00:00 is not within the window [2020-01-01T00:00:00, 2020-12-31T23:59:59]
}
