package datetime

/*
calendar.go implements the proleptic Gregorian calendar math upon
which every other component of this package rests: the leap-year
rule, month tables and the ordinal<->(year,month,day) conversions.
All functions herein are pure and stateless.
*/

/*
MinYear and MaxYear define the inclusive year bounds honored by
[Date] and [DateTime].
*/
const (
	MinYear = 1
	MaxYear = 9999
)

/*
Day counts of the Gregorian leap cycles. A 400 year cycle repeats
exactly, containing 97 leap days.
*/
const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
	daysPerYear     = 365
)

/*
minOrdinal and maxOrdinal bound the linear day encoding: ordinal 1
is 0001-01-01, ordinal 3652059 is 9999-12-31.
*/
const (
	minOrdinal = 1
	maxOrdinal = 3652059
)

var daysInMonthTable = [13]int{-1, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
daysBeforeMonthTable[m] holds the number of days in a non-leap year
preceding the first of month m.
*/
var daysBeforeMonthTable = [13]int{
	-1,
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
}

/*
IsLeap returns a Boolean value indicative of whether year is a leap
year under the Gregorian rule: divisible by four, excepting century
years not divisible by four hundred.
*/
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInMonth returns the number of days within the specified month of
the specified year, alongside an error.

An error is returned if month resides outside [1,12]. Callers within
this package validate month beforehand; the check guards direct use.
*/
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, domainErrorf("month must be in 1..12, got ", month)
	}
	return daysInMonth(year, month), nil
}

func daysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonthTable[month]
}

func daysBeforeMonth(year, month int) int {
	d := daysBeforeMonthTable[month]
	if month > 2 && IsLeap(year) {
		d++
	}
	return d
}

/*
daysBeforeYear counts the days preceding January 1st of year via
inclusion-exclusion over the 4/100/400 year leap cycles.
*/
func daysBeforeYear(year int) int {
	y := year - 1
	return y*daysPerYear + y/4 - y/100 + y/400
}

func ymdToOrdinal(year, month, day int) int {
	return daysBeforeYear(year) + daysBeforeMonth(year, month) + day
}

/*
ordinalToYMD performs the inverse of ymdToOrdinal by successive
division against the 400/100/4/1 year cycle day counts.

n is first decremented so that cycle boundaries align with multiples
of daysPer400Years. The 100 and 4 year quotients may legitimately
reach 4 only when the residual lands exactly on December 31st of a
cycle boundary; both cases are caught before the final month scan.
*/
func ordinalToYMD(n int) (year, month, day int) {
	n--
	n400, n := divmod(n, daysPer400Years)
	year = n400*400 + 1

	n100, n := divmod(n, daysPer100Years)
	n4, n := divmod(n, daysPer4Years)
	n1, n := divmod(n, daysPerYear)

	year += n100*100 + n4*4 + n1
	if n1 == 4 || n100 == 4 {
		// n is necessarily 0 here; the date is December 31st
		// of the preceding computed year.
		return year - 1, 12, 31
	}

	// Estimate the month with a cheap shift, then correct the
	// overshoot (at most one step) against the cumulative table.
	month = (n + 50) >> 5
	preceding := daysBeforeMonth(year, month)
	if preceding > n {
		month--
		preceding = daysBeforeMonth(year, month)
	}
	day = n - preceding + 1
	return
}

/*
weekdayFromOrdinal maps an ordinal onto Monday=0..Sunday=6. Ordinal 1
(0001-01-01) was a Monday.
*/
func weekdayFromOrdinal(ordinal int) int {
	return (ordinal + 6) % 7
}

/*
isoWeekdayFromOrdinal maps an ordinal onto Monday=1..Sunday=7.
*/
func isoWeekdayFromOrdinal(ordinal int) int {
	if wd := ordinal % 7; wd != 0 {
		return wd
	}
	return 7
}
