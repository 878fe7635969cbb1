package datetime

import (
	"fmt"
	"testing"
)

func ExampleIsLeap() {
	fmt.Println(IsLeap(2000), IsLeap(1900), IsLeap(2024))
	// Output: true false true
}

func ExampleDaysInMonth() {
	feb, _ := DaysInMonth(2024, 2)
	fmt.Println(feb)
	// Output: 29
}

func TestIsLeap_gregorianRule(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2004, true},
		{2001, false},
		{2400, true},
		{1, false},
		{4, true},
		{100, false},
		{400, true},
	} {
		if got := IsLeap(tc.year); got != tc.leap {
			t.Fatalf("%s failed [year %d]: want %t, got %t",
				t.Name(), tc.year, tc.leap, got)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	want := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := 1; m <= 12; m++ {
		if got, err := DaysInMonth(2001, m); err != nil || got != want[m-1] {
			t.Fatalf("%s failed [2001-%02d]: want %d, got %d (%v)",
				t.Name(), m, want[m-1], got, err)
		}
	}

	if got, _ := DaysInMonth(2000, 2); got != 29 {
		t.Fatalf("%s failed [2000-02]: want 29, got %d", t.Name(), got)
	}

	for _, m := range []int{0, 13, -1} {
		if _, err := DaysInMonth(2000, m); err == nil {
			t.Fatalf("%s failed [month %d]: expected error, got nil",
				t.Name(), m)
		}
	}
}

func TestOrdinal_fixedValues(t *testing.T) {
	for _, tc := range []struct {
		y, m, d, n int
	}{
		{1, 1, 1, 1}, // calendar origin
		{1, 12, 31, 365},
		{2, 1, 1, 366},
		// first example from "Calendrical Calculations"
		{1945, 11, 12, 710347},
		{9999, 12, 31, maxOrdinal},
	} {
		if got := ymdToOrdinal(tc.y, tc.m, tc.d); got != tc.n {
			t.Fatalf("%s failed [%04d-%02d-%02d]: want ordinal %d, got %d",
				t.Name(), tc.y, tc.m, tc.d, tc.n, got)
		}
		y, m, d := ordinalToYMD(tc.n)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Fatalf("%s failed [ordinal %d]: want %04d-%02d-%02d, got %04d-%02d-%02d",
				t.Name(), tc.n, tc.y, tc.m, tc.d, y, m, d)
		}
	}
}

func TestOrdinal_roundTripYearBoundaries(t *testing.T) {
	// First and last days of year spottily across the whole
	// supported range.
	for year := MinYear; year <= MaxYear; year += 7 {
		n := ymdToOrdinal(year, 1, 1)
		y, m, d := ordinalToYMD(n)
		if y != year || m != 1 || d != 1 {
			t.Fatalf("%s failed [%04d-01-01]: round trip gave %04d-%02d-%02d",
				t.Name(), year, y, m, d)
		}

		if year > MinYear {
			y, m, d = ordinalToYMD(n - 1)
			if y != year-1 || m != 12 || d != 31 {
				t.Fatalf("%s failed [%04d-01-01 minus one]: want %04d-12-31, got %04d-%02d-%02d",
					t.Name(), year, year-1, y, m, d)
			}
		}
	}
}

func TestOrdinal_roundTripEveryDay(t *testing.T) {
	// Every day of one leap year and one non-leap year, verifying
	// strict ordinal increase along the way.
	for _, year := range []int{2000, 2002} {
		n := ymdToOrdinal(year, 1, 1)
		for month := 1; month <= 12; month++ {
			for day := 1; day <= daysInMonth(year, month); day++ {
				if got := ymdToOrdinal(year, month, day); got != n {
					t.Fatalf("%s failed [%04d-%02d-%02d]: want ordinal %d, got %d",
						t.Name(), year, month, day, n, got)
				}
				y, m, d := ordinalToYMD(n)
				if y != year || m != month || d != day {
					t.Fatalf("%s failed [ordinal %d]: got %04d-%02d-%02d",
						t.Name(), n, y, m, d)
				}
				n++
			}
		}
	}
}

func TestOrdinal_cycleBoundaries(t *testing.T) {
	// December 31st of years closing a 4, 100 and 400 year cycle
	// exercises the quotient==4 special case of the decomposition.
	for _, tc := range []struct {
		y, m, d int
	}{
		{4, 12, 31},
		{100, 12, 31},
		{400, 12, 31},
		{401, 1, 1},
		{2000, 12, 31},
	} {
		n := ymdToOrdinal(tc.y, tc.m, tc.d)
		y, m, d := ordinalToYMD(n)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Fatalf("%s failed [%04d-%02d-%02d]: round trip gave %04d-%02d-%02d",
				t.Name(), tc.y, tc.m, tc.d, y, m, d)
		}
	}
}

func TestWeekday_fromOrdinal(t *testing.T) {
	// 0001-01-01 (ordinal 1) was a Monday.
	if wd := weekdayFromOrdinal(1); wd != 0 {
		t.Fatalf("%s failed [origin]: want 0, got %d", t.Name(), wd)
	}
	if wd := isoWeekdayFromOrdinal(1); wd != 1 {
		t.Fatalf("%s failed [origin iso]: want 1, got %d", t.Name(), wd)
	}

	// Seven consecutive ordinals cover the whole week exactly once.
	seen := map[int]bool{}
	for n := 100; n < 107; n++ {
		seen[weekdayFromOrdinal(n)] = true
	}
	for wd := 0; wd < 7; wd++ {
		if !seen[wd] {
			t.Fatalf("%s failed [coverage]: weekday %d never produced",
				t.Name(), wd)
		}
	}
}
