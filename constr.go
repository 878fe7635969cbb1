package datetime

/*
constr.go contains constraint and constraint group components which
permit callers to attach supplemental validation closures to the
type constructors throughout this package.
*/

import (
	"golang.org/x/exp/constraints"
)

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
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a
value of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr("value is out of range")
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined
check function. That function should return nil if the property is
satisfied or an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
DurationRangeConstraint returns a [Constraint] for [Duration] values
to ensure that the given value is not less than min and not greater
than max.
*/
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) error {
		if val.Lt(min) || max.Lt(val) {
			return mkerrf("duration ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
DateRangeConstraint returns a [Constraint] for [Date] values to ensure
that the given value is not earlier than min and not later than max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(val Date) error {
		if val.Lt(min) || max.Lt(val) {
			return mkerrf("date ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
WeekdayConstraint returns a [Constraint] for [Date] values to ensure
that the given value falls on one of the specified weekdays
(Monday=0 .. Sunday=6).
*/
func WeekdayConstraint(weekdays ...int) Constraint[Date] {
	allowed := make(map[int]struct{}, len(weekdays))
	for _, wd := range weekdays {
		allowed[wd] = struct{}{}
	}
	return func(val Date) (err error) {
		if _, ok := allowed[val.Weekday()]; !ok {
			err = mkerrf("date ", val.String(), " does not fall on a permitted weekday")
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least
one (1) of the provided constraints is satisfied. Essentially, this
is an "OR"ed operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = mkerrf("union failed all ", itoa(len(constraints)), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all
of the specified constraints are satisfied. Essentially, this is an
"AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}
