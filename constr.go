package gpstime

/*
constr.go contains constraint and constraint group components which
allow callers to layer additional validation atop the package-level
constructors and parser.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a
value of any ordered type is between the specified minimum and
maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = invalidArgErrorf("value is out of range")
		}
		return
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values
to ensure that the given value is not less than min and not greater
than max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) (err error) {
		if val.Lt(min) || max.Lt(val) {
			err = invalidArgErrorf("duration ", val.String(),
				" is not in the allowed range [", min.String(),
				", ", max.String(), "]")
		}
		return
	}
}

/*
TimeRangeConstraint returns a [Constraint] for [GPSTime] values that
must fall within the window bounded by windowStart and windowEnd
inclusive.
*/
func TimeRangeConstraint(windowStart, windowEnd GPSTime) Constraint[GPSTime] {
	return func(val GPSTime) (err error) {
		if val.Before(windowStart) || val.After(windowEnd) {
			err = invalidArgErrorf("time ", val.String(),
				" is not within the window [", windowStart.String(),
				", ", windowEnd.String(), "]")
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined
check function. That function should return nil if the property is
satisfied, or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}
