package datetime

/*
date.go implements the immutable civil calendar date type and its
ordinal, comparison and formatting operations.
*/

import "math"

/*
Date implements an immutable (year, month, day) value within the
proleptic Gregorian calendar, bounded to years [1,9999]. The zero
value of this type is not a valid date; use [NewDate] or one of the
From* package-level constructors.
*/
type Date struct {
	year  int
	month int
	day   int
}

/*
LocalTime implements the caller-supplied breakdown of a POSIX
timestamp into local civil fields. The package never reads the
system clock nor consults a timezone database itself; every
timestamp conversion receives one of these.
*/
type LocalTime func(sec int64) (year, month, day, hour, min, second int)

/*
Package-level minima and maxima.
*/
var (
	// MinDate is the earliest representable Date, 0001-01-01.
	MinDate = Date{year: MinYear, month: 1, day: 1}

	// MaxDate is the latest representable Date, 9999-12-31.
	MaxDate = Date{year: MaxYear, month: 12, day: 31}

	// DateResolution is the smallest possible difference between
	// non-equal Date instances, one (1) day.
	DateResolution = Duration{days: 1}
)

func checkDateFields(year, month, day int) (err error) {
	if year < MinYear || year > MaxYear {
		err = errorFieldOutOfRange("year", MinYear, MaxYear, year)
	} else if month < 1 || month > 12 {
		err = errorFieldOutOfRange("month", 1, 12, month)
	} else if dim := daysInMonth(year, month); day < 1 || day > dim {
		err = errorFieldOutOfRange("day", 1, dim, day)
	}
	return
}

/*
NewDate returns an instance of [Date] alongside an error following
validation of the provided fields.

A range error citing the offending field is returned if year resides
outside [1,9999], month outside [1,12], or day outside [1,N] where N
is the day count of the given month and year.
*/
func NewDate(year, month, day int, constraints ...Constraint[Date]) (Date, error) {
	var d Date
	err := checkDateFields(year, month, day)

	if err == nil {
		d = Date{year: year, month: month, day: day}
		if len(constraints) > 0 {
			var group ConstraintGroup[Date] = constraints
			err = group.Constrain(d)
		}
	}

	if err != nil {
		d = Date{}
		debugErr("Date", err)
	} else {
		debugConstruct("Date", d)
	}

	return d, err
}

/*
DateFromOrdinal returns an instance of [Date] alongside an error
following conversion of the proleptic Gregorian ordinal n, wherein
ordinal 1 is 0001-01-01.
*/
func DateFromOrdinal(n int, constraints ...Constraint[Date]) (Date, error) {
	if n < minOrdinal {
		return Date{}, errorOrdinalTooSmall
	} else if n > maxOrdinal {
		return Date{}, errorOrdinalTooLarge
	}

	y, mo, dd := ordinalToYMD(n)
	return NewDate(y, mo, dd, constraints...)
}

/*
DateFromTimestamp returns an instance of [Date] alongside an error
following the breakdown of the POSIX timestamp ts through the
caller-supplied local conversion.
*/
func DateFromTimestamp(ts float64, local LocalTime, constraints ...Constraint[Date]) (Date, error) {
	if local == nil {
		return Date{}, errorNilLocalTime
	}

	y, mo, dd, _, _, _ := local(int64(math.Floor(ts)))
	return NewDate(y, mo, dd, constraints...)
}

/*
DateFromISOFormat is a deferred surface and fails unconditionally
with an unimplemented error.
*/
func DateFromISOFormat(_ string) (Date, error) {
	return Date{}, errorISOParse
}

/*
Year returns the year of the receiver instance, between [MinYear]
and [MaxYear] inclusive.
*/
func (r Date) Year() int { return r.year }

/*
Month returns the month of the receiver instance, between 1 and 12
inclusive.
*/
func (r Date) Month() int { return r.month }

/*
Day returns the day of the receiver instance, between 1 and the day
count of the month of the receiver.
*/
func (r Date) Day() int { return r.day }

/*
Ordinal returns the proleptic Gregorian ordinal of the receiver
instance, wherein 0001-01-01 is ordinal 1.
*/
func (r Date) Ordinal() int {
	return ymdToOrdinal(r.year, r.month, r.day)
}

/*
Weekday returns the day of the week of the receiver instance as an
integer, wherein Monday is 0 and Sunday is 6.
*/
func (r Date) Weekday() int {
	return weekdayFromOrdinal(r.Ordinal())
}

/*
ISOWeekday returns the day of the week of the receiver instance as
an integer, wherein Monday is 1 and Sunday is 7.
*/
func (r Date) ISOWeekday() int {
	return isoWeekdayFromOrdinal(r.Ordinal())
}

/*
Replace returns a copy of the receiver with any positive input field
substituted, alongside an error. Passing zero (0) for a field keeps
the value held by the receiver.
*/
func (r Date) Replace(year, month, day int) (Date, error) {
	if year <= 0 {
		year = r.year
	}
	if month <= 0 {
		month = r.month
	}
	if day <= 0 {
		day = r.day
	}
	return NewDate(year, month, day)
}

/*
Add returns the receiver advanced by the day portion of d as a new
instance of [Date] alongside an error. Sub-day components of d do
not participate. An overflow error is returned if the resulting
ordinal exits [1,3652059].
*/
func (r Date) Add(d Duration) (Date, error) {
	n := r.Ordinal() + d.days
	if n < minOrdinal || n > maxOrdinal {
		return Date{}, errorOrdinalOverflow
	}

	y, mo, dd := ordinalToYMD(n)
	return Date{year: y, month: mo, day: dd}, nil
}

/*
Sub returns the receiver moved backward by the day portion of d as a
new instance of [Date] alongside an error.
*/
func (r Date) Sub(d Duration) (Date, error) {
	neg, err := d.Neg()
	if err != nil {
		return Date{}, err
	}
	return r.Add(neg)
}

/*
Diff returns the span between the receiver and other as an instance
of [Duration], positive when the receiver is the later date.
*/
func (r Date) Diff(other Date) Duration {
	return Duration{days: r.Ordinal() - other.Ordinal()}
}

/*
Compare returns an integer comparison result (-1, 0 or 1) following
a lexicographic comparison of the (year, month, day) fields of the
receiver and other.
*/
func (r Date) Compare(other Date) int {
	if c := cmpInt(r.year, other.year); c != 0 {
		return c
	}
	if c := cmpInt(r.month, other.month); c != 0 {
		return c
	}
	return cmpInt(r.day, other.day)
}

/*
Eq returns a Boolean value indicative of whether the receiver and
other describe the same calendar date.
*/
func (r Date) Eq(other Date) bool { return r.Compare(other) == 0 }

/*
Lt returns true if the receiver is strictly earlier than other.
*/
func (r Date) Lt(other Date) bool { return r.Compare(other) < 0 }

/*
Le returns true if the receiver is not later than other.
*/
func (r Date) Le(other Date) bool { return r.Compare(other) <= 0 }

/*
Gt returns true if the receiver is strictly later than other.
*/
func (r Date) Gt(other Date) bool { return r.Compare(other) > 0 }

/*
Ge returns true if the receiver is not earlier than other.
*/
func (r Date) Ge(other Date) bool { return r.Compare(other) >= 0 }

/*
Hash returns a deterministic hash of the receiver derived from its
four byte encoded state (yearHi, yearLo, month, day). Equal dates
hash equal; the computation is a pure function of the fields and is
therefore safe under concurrent use.
*/
func (r Date) Hash() uint32 {
	return uint32(r.year>>8)<<24 |
		uint32(r.year&0xff)<<16 |
		uint32(r.month)<<8 |
		uint32(r.day)
}

/*
ISOFormat returns the ISO 8601 string representation of the receiver
instance in the form "YYYY-MM-DD", with the year always zero-padded
to four digits.
*/
func (r Date) ISOFormat() string {
	var b [10]byte
	put4(b[:], 0, r.year)
	b[4] = '-'
	put2(b[:], 5, r.month)
	b[7] = '-'
	put2(b[:], 8, r.day)
	return string(b[:])
}

/*
String returns the string representation of the receiver instance,
equivalent to [Date.ISOFormat].
*/
func (r Date) String() string { return r.ISOFormat() }

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
var monthNames = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

/*
CTime returns the C asctime style representation of the receiver
instance, e.g. "Wed Dec  4 00:00:00 2002", with the clock portion
fixed at midnight.
*/
func (r Date) CTime() string {
	return ctimeString(r.Weekday(), r.month, r.day, 0, 0, 0, r.year)
}

func ctimeString(weekday, month, day, hour, min, sec, year int) string {
	bld := newStrBuilder()
	bld.WriteString(dayNames[weekday])
	bld.WriteByte(' ')
	bld.WriteString(monthNames[month])
	bld.WriteByte(' ')
	if day < 10 {
		bld.WriteByte(' ')
	}
	bld.WriteString(itoa(day))
	bld.WriteByte(' ')

	var b [8]byte
	put2(b[:], 0, hour)
	b[2] = ':'
	put2(b[:], 3, min)
	b[5] = ':'
	put2(b[:], 6, sec)
	bld.Write(b[:])

	bld.WriteByte(' ')
	var y [4]byte
	put4(y[:], 0, year)
	bld.Write(y[:])

	return bld.String()
}
