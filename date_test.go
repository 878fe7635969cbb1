package datetime

import (
	"fmt"
	"testing"
)

/*
utcBreakdown implements a [LocalTime] pinned to UTC, sufficient for
deterministic timestamp tests without a zone database.
*/
func utcBreakdown(sec int64) (year, month, day, hour, min, second int) {
	days, rem := divmod(int(sec), secondsPerDay)
	year, month, day = ordinalToYMD(days + epochSpan.days)
	hour, rem = divmod(rem, secondsPerHour)
	min, second = divmod(rem, secondsPerMin)
	return
}

/*
utcEpochMapper implements an [EpochMapper] pinned to UTC, the exact
inverse of utcBreakdown.
*/
func utcEpochMapper(year, month, day, hour, min, second int) int64 {
	days := ymdToOrdinal(year, month, day) - epochSpan.days
	return int64(days*secondsPerDay + hour*secondsPerHour + min*secondsPerMin + second)
}

func ExampleNewDate() {
	d, _ := NewDate(2002, 3, 11)
	fmt.Println(d)
	// Output: 2002-03-11
}

func ExampleDate_CTime() {
	d, _ := NewDate(2002, 12, 4)
	fmt.Println(d.CTime())
	// Output: Wed Dec  4 00:00:00 2002
}

func TestNewDate_validation(t *testing.T) {
	if _, err := NewDate(2000, 2, 29); err != nil {
		t.Fatalf("%s failed [2000-02-29]: %v", t.Name(), err)
	}

	for _, tc := range []struct {
		label   string
		y, m, d int
	}{
		{"1900 not leap", 1900, 2, 29},
		{"2001 not leap", 2001, 2, 29},
		{"year low", 0, 1, 1},
		{"year high", 10000, 1, 1},
		{"month low", 2000, 0, 1},
		{"month high", 2000, 13, 1},
		{"day low", 2000, 1, 0},
		{"day high", 2000, 4, 31},
	} {
		if _, err := NewDate(tc.y, tc.m, tc.d); !IsRangeError(err) {
			t.Fatalf("%s failed [%s]: want range error, got %v",
				t.Name(), tc.label, err)
		}
	}
}

func TestDate_ordinalRoundTrip(t *testing.T) {
	d, _ := NewDate(1945, 11, 12)
	if n := d.Ordinal(); n != 710347 {
		t.Fatalf("%s failed: want 710347, got %d", t.Name(), n)
	}

	back, err := DateFromOrdinal(710347)
	if err != nil {
		t.Fatalf("%s failed [fromordinal]: %v", t.Name(), err)
	}
	if !back.Eq(d) {
		t.Fatalf("%s failed [round trip]: %s != %s", t.Name(), back, d)
	}

	if _, err = DateFromOrdinal(0); err == nil {
		t.Fatalf("%s failed [ordinal 0]: expected error, got nil", t.Name())
	}
	if _, err = DateFromOrdinal(maxOrdinal + 1); err == nil {
		t.Fatalf("%s failed [ordinal beyond max]: expected error, got nil", t.Name())
	}
}

func TestDate_weekday(t *testing.T) {
	d, _ := NewDate(2002, 3, 4)
	if wd := d.Weekday(); wd != 0 {
		t.Fatalf("%s failed [weekday]: want 0, got %d", t.Name(), wd)
	}
	if wd := d.ISOWeekday(); wd != 1 {
		t.Fatalf("%s failed [isoweekday]: want 1, got %d", t.Name(), wd)
	}

	// The following Sunday.
	sun, _ := NewDate(2002, 3, 10)
	if wd := sun.Weekday(); wd != 6 {
		t.Fatalf("%s failed [sunday]: want 6, got %d", t.Name(), wd)
	}
	if wd := sun.ISOWeekday(); wd != 7 {
		t.Fatalf("%s failed [iso sunday]: want 7, got %d", t.Name(), wd)
	}
}

func TestDate_comparisonAndHash(t *testing.T) {
	a, _ := NewDate(2021, 9, 18)
	b, _ := NewDate(2021, 9, 18)
	c, _ := NewDate(2021, 9, 19)

	if !a.Eq(b) || a.Hash() != b.Hash() {
		t.Fatalf("%s failed [equality]: equal dates must compare and hash equal", t.Name())
	}
	if a.Eq(c) || !a.Lt(c) || !c.Gt(a) {
		t.Fatalf("%s failed [ordering]: relations inconsistent", t.Name())
	}

	// Value semantics make Date directly usable as a map key.
	seen := map[Date]int{a: 1}
	if seen[b] != 1 {
		t.Fatalf("%s failed [map key]: equal dates not interchangeable", t.Name())
	}
}

func TestDate_isoFormat(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		want    string
	}{
		{2021, 9, 18, "2021-09-18"},
		{1, 1, 1, "0001-01-01"},
		{9999, 12, 31, "9999-12-31"},
		{800, 10, 2, "0800-10-02"},
	} {
		d, err := NewDate(tc.y, tc.m, tc.d)
		if err != nil {
			t.Fatalf("%s failed [setup %s]: %v", t.Name(), tc.want, err)
		}
		if got := d.ISOFormat(); got != tc.want {
			t.Fatalf("%s failed: want %q, got %q", t.Name(), tc.want, got)
		}
	}
}

func TestDate_arithmetic(t *testing.T) {
	d, _ := NewDate(2000, 2, 28)
	oneDay, _ := NewDuration(Components{Days: 1})

	leap, err := d.Add(oneDay)
	if err != nil {
		t.Fatalf("%s failed [add]: %v", t.Name(), err)
	}
	if leap.String() != "2000-02-29" {
		t.Fatalf("%s failed [leap day]: got %s", t.Name(), leap)
	}

	back, err := leap.Sub(oneDay)
	if err != nil {
		t.Fatalf("%s failed [sub]: %v", t.Name(), err)
	}
	if !back.Eq(d) {
		t.Fatalf("%s failed [sub round trip]: %s != %s", t.Name(), back, d)
	}

	if span := leap.Diff(d); span.Days() != 1 {
		t.Fatalf("%s failed [diff]: want 1 day, got %s", t.Name(), span)
	}

	if _, err = MaxDate.Add(oneDay); !IsOverflow(err) {
		t.Fatalf("%s failed [max overflow]: want overflow, got %v", t.Name(), err)
	}
	if _, err = MinDate.Sub(oneDay); !IsOverflow(err) {
		t.Fatalf("%s failed [min overflow]: want overflow, got %v", t.Name(), err)
	}
}

func TestDate_replace(t *testing.T) {
	d, _ := NewDate(2002, 12, 4)

	y2003, err := d.Replace(2003, 0, 0)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if y2003.String() != "2003-12-04" {
		t.Fatalf("%s failed: got %s", t.Name(), y2003)
	}

	// Replacement revalidates jointly.
	leap, _ := NewDate(2000, 2, 29)
	if _, err = leap.Replace(2001, 0, 0); !IsRangeError(err) {
		t.Fatalf("%s failed [invalid result]: want range error, got %v", t.Name(), err)
	}
}

func TestDate_fromTimestamp(t *testing.T) {
	// 2021-09-18T00:00:00Z
	d, err := DateFromTimestamp(1631923200, utcBreakdown)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if d.String() != "2021-09-18" {
		t.Fatalf("%s failed: got %s", t.Name(), d)
	}

	if _, err = DateFromTimestamp(0, nil); err == nil {
		t.Fatalf("%s failed [nil breakdown]: expected error, got nil", t.Name())
	}
}

func TestDateFromISOFormat_deferred(t *testing.T) {
	if _, err := DateFromISOFormat("2021-09-18"); !IsUnimplemented(err) {
		t.Fatalf("%s failed: want unimplemented, got %v", t.Name(), err)
	}
}

func TestDate_bounds(t *testing.T) {
	if MinDate.String() != "0001-01-01" || MaxDate.String() != "9999-12-31" {
		t.Fatalf("%s failed: %s / %s", t.Name(), MinDate, MaxDate)
	}
	if MinDate.Ordinal() != minOrdinal || MaxDate.Ordinal() != maxOrdinal {
		t.Fatalf("%s failed [ordinals]: %d / %d",
			t.Name(), MinDate.Ordinal(), MaxDate.Ordinal())
	}
}
