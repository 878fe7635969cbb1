package datetime

import (
	"fmt"
	"testing"
)

func ExampleWeekdayConstraint() {
	weekdaysOnly := WeekdayConstraint(0, 1, 2, 3, 4)

	_, err := NewDate(2002, 12, 7, weekdaysOnly) // a Saturday
	fmt.Println(err != nil)
	// Output: true
}

func TestRangeConstraint(t *testing.T) {
	within := RangeConstraint(1, 12)

	if err := within(6); err != nil {
		t.Fatalf("%s failed [inside]: %v", t.Name(), err)
	}
	if err := within(0); err == nil {
		t.Fatalf("%s failed [below]: expected error, got nil", t.Name())
	}
	if err := within(13); err == nil {
		t.Fatalf("%s failed [above]: expected error, got nil", t.Name())
	}

	// Ordered types beyond int work equally.
	lexical := RangeConstraint("alpha", "omega")
	if err := lexical("gamma"); err != nil {
		t.Fatalf("%s failed [string inside]: %v", t.Name(), err)
	}
	if err := lexical("zeta"); err == nil {
		t.Fatalf("%s failed [string above]: expected error, got nil", t.Name())
	}
}

func TestConstraintGroup(t *testing.T) {
	var hits []int
	first := func(int) error { hits = append(hits, 1); return nil }
	second := func(int) error { hits = append(hits, 2); return mkerr("second failed") }
	third := func(int) error { hits = append(hits, 3); return nil }

	group := ConstraintGroup[int]{first, nil, second, third}
	if err := group.Constrain(0); err == nil {
		t.Fatalf("%s failed: expected error, got nil", t.Name())
	}

	// Evaluation proceeds in order, skips nil entries and stops at
	// the first failure.
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 2 {
		t.Fatalf("%s failed [order]: got %v", t.Name(), hits)
	}
}

func TestDurationRangeConstraint(t *testing.T) {
	lo, _ := NewDuration(Components{Hours: -12})
	hi, _ := NewDuration(Components{Hours: 12})
	bounded := DurationRangeConstraint(lo, hi)

	if _, err := NewDuration(Components{Hours: 3}, bounded); err != nil {
		t.Fatalf("%s failed [inside]: %v", t.Name(), err)
	}
	if _, err := NewDuration(Components{Hours: 13}, bounded); err == nil {
		t.Fatalf("%s failed [above]: expected error, got nil", t.Name())
	}
	if _, err := NewDuration(Components{Hours: -13}, bounded); err == nil {
		t.Fatalf("%s failed [below]: expected error, got nil", t.Name())
	}
}

func TestDateRangeConstraint(t *testing.T) {
	lo, _ := NewDate(2000, 1, 1)
	hi, _ := NewDate(2009, 12, 31)
	decade := DateRangeConstraint(lo, hi)

	if _, err := NewDate(2004, 6, 15, decade); err != nil {
		t.Fatalf("%s failed [inside]: %v", t.Name(), err)
	}
	if _, err := NewDate(2010, 1, 1, decade); err == nil {
		t.Fatalf("%s failed [after]: expected error, got nil", t.Name())
	}
	if _, err := NewDate(1999, 12, 31, decade); err == nil {
		t.Fatalf("%s failed [before]: expected error, got nil", t.Name())
	}
}

func TestWeekdayConstraint(t *testing.T) {
	mondaysOnly := WeekdayConstraint(0)

	if _, err := NewDate(2002, 3, 4, mondaysOnly); err != nil {
		t.Fatalf("%s failed [monday]: %v", t.Name(), err)
	}
	if _, err := NewDate(2002, 3, 5, mondaysOnly); err == nil {
		t.Fatalf("%s failed [tuesday]: expected error, got nil", t.Name())
	}
}

func TestLiftConstraint(t *testing.T) {
	// Constrain a Date by lifting an ordinal range check.
	ordinalCheck := RangeConstraint(700000, 800000)
	lifted := LiftConstraint(func(d Date) int { return d.Ordinal() }, ordinalCheck)

	if _, err := NewDate(1945, 11, 12, lifted); err != nil {
		t.Fatalf("%s failed [inside]: %v", t.Name(), err)
	}
	if _, err := NewDate(1, 1, 1, lifted); err == nil {
		t.Fatalf("%s failed [outside]: expected error, got nil", t.Name())
	}
}

func TestUnionIntersection(t *testing.T) {
	low := RangeConstraint(0, 10)
	high := RangeConstraint(20, 30)

	either := Union(low, high)
	if err := either(5); err != nil {
		t.Fatalf("%s failed [union low]: %v", t.Name(), err)
	}
	if err := either(25); err != nil {
		t.Fatalf("%s failed [union high]: %v", t.Name(), err)
	}
	if err := either(15); err == nil {
		t.Fatalf("%s failed [union gap]: expected error, got nil", t.Name())
	}

	wide := RangeConstraint(0, 30)
	both := Intersection(wide, low)
	if err := both(5); err != nil {
		t.Fatalf("%s failed [intersection]: %v", t.Name(), err)
	}
	if err := both(25); err == nil {
		t.Fatalf("%s failed [intersection fail]: expected error, got nil", t.Name())
	}
}

func TestPropertyConstraint(t *testing.T) {
	noLeapDay := PropertyConstraint(func(d Date) error {
		if d.Month() == 2 && d.Day() == 29 {
			return mkerr("leap day not permitted")
		}
		return nil
	})

	if _, err := NewDate(2000, 2, 28, noLeapDay); err != nil {
		t.Fatalf("%s failed [ordinary day]: %v", t.Name(), err)
	}
	if _, err := NewDate(2000, 2, 29, noLeapDay); err == nil {
		t.Fatalf("%s failed [leap day]: expected error, got nil", t.Name())
	}
}

func TestConstraint_multipleAtConstruction(t *testing.T) {
	lo, _ := NewDate(2000, 1, 1)
	hi, _ := NewDate(2009, 12, 31)

	// Several constraints compose in order at the constructor.
	_, err := NewDate(2002, 3, 5, DateRangeConstraint(lo, hi), WeekdayConstraint(0))
	if err == nil {
		t.Fatalf("%s failed: expected weekday failure, got nil", t.Name())
	}
	if _, err = NewDate(2002, 3, 4, DateRangeConstraint(lo, hi), WeekdayConstraint(0)); err != nil {
		t.Fatalf("%s failed [both pass]: %v", t.Name(), err)
	}
}
