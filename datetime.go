package datetime

/*
datetime.go implements the combined calendar date and wall-clock
type, its linear (ordinal and timestamp) conversions and its
offset-aware arithmetic.
*/

import "math"

/*
DateTime implements an immutable combined date and time-of-day value
held as one flat seven-field entity, optionally bound to an
[OffsetProvider] and carrying a fold flag. Date fields obey the
[Date] validity rules and time fields obey the [Time] validity
rules.
*/
type DateTime struct {
	year        int
	month       int
	day         int
	hour        int
	minute      int
	second      int
	microsecond int
	offset      OffsetProvider
	fold        int
}

/*
EpochMapper implements the caller-supplied mapping of naive local
civil fields onto POSIX epoch seconds, used by [DateTime.Timestamp]
when no provider is bound. The package itself never assumes what
zone a naive value was recorded in.
*/
type EpochMapper func(year, month, day, hour, min, second int) int64

/*
Package-level minima and maxima.
*/
var (
	// MinDateTime is the earliest representable DateTime,
	// 0001-01-01T00:00:00.
	MinDateTime = DateTime{year: MinYear, month: 1, day: 1}

	// MaxDateTime is the latest representable DateTime,
	// 9999-12-31T23:59:59.999999.
	MaxDateTime = DateTime{
		year: MaxYear, month: 12, day: 31,
		hour: 23, minute: 59, second: 59,
		microsecond: microsPerSecond - 1,
	}

	// DateTimeResolution is the smallest possible difference
	// between non-equal DateTime instances, one (1) microsecond.
	DateTimeResolution = Duration{microseconds: 1}
)

/*
NewDateTime returns an instance of [DateTime] alongside an error
following joint validation of the date fields per [NewDate] and the
time fields per [NewTime]. The result is naive; attach a provider
via [DateTime.WithOffset].
*/
func NewDateTime(year, month, day, hour, minute, second, microsecond int,
	constraints ...Constraint[DateTime]) (DateTime, error) {

	var dt DateTime
	err := checkDateFields(year, month, day)
	if err == nil {
		err = checkTimeFields(hour, minute, second, microsecond, 0)
	}

	if err == nil {
		dt = DateTime{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second,
			microsecond: microsecond,
		}
		if len(constraints) > 0 {
			var group ConstraintGroup[DateTime] = constraints
			err = group.Constrain(dt)
		}
	}

	if err != nil {
		dt = DateTime{}
		debugErr("DateTime", err)
	} else {
		debugConstruct("DateTime", dt)
	}

	return dt, err
}

/*
DateTimeFromOrdinal returns an instance of [DateTime] alongside an
error following conversion of the proleptic Gregorian ordinal n,
with every clock field zero.
*/
func DateTimeFromOrdinal(n int, constraints ...Constraint[DateTime]) (DateTime, error) {
	if n < minOrdinal {
		return DateTime{}, errorOrdinalTooSmall
	} else if n > maxOrdinal {
		return DateTime{}, errorOrdinalTooLarge
	}

	y, mo, dd := ordinalToYMD(n)
	return NewDateTime(y, mo, dd, 0, 0, 0, 0, constraints...)
}

/*
DateTimeFromTimestamp returns an instance of [DateTime] alongside an
error following the breakdown of the POSIX timestamp ts through the
caller-supplied local conversion. Fractional seconds of ts survive
as the microsecond field, rounded half-to-even. The result is naive.
*/
func DateTimeFromTimestamp(ts float64, local LocalTime,
	constraints ...Constraint[DateTime]) (DateTime, error) {

	if local == nil {
		return DateTime{}, errorNilLocalTime
	}

	sec := math.Floor(ts)
	usec := int(rne((ts - sec) * microsPerSecond))
	y, mo, dd, hh, mm, ss := local(int64(sec))

	dt, err := NewDateTime(y, mo, dd, hh, mm, ss, 0, constraints...)
	if err == nil && usec > 0 {
		dt, err = dt.Add(Duration{microseconds: usec})
	}
	return dt, err
}

/*
Combine returns an instance of [DateTime] merging the fields of d
with those of t, carrying the provider and fold flag of t.
*/
func Combine(d Date, t Time) DateTime {
	return DateTime{
		year: d.year, month: d.month, day: d.day,
		hour: t.hour, minute: t.minute, second: t.second,
		microsecond: t.microsecond,
		offset:      t.offset,
		fold:        t.fold,
	}
}

/*
DateTimeFromISOFormat is a deferred surface and fails unconditionally
with an unimplemented error.
*/
func DateTimeFromISOFormat(_ string) (DateTime, error) {
	return DateTime{}, errorISOParse
}

/*
Year returns the year of the receiver instance.
*/
func (r DateTime) Year() int { return r.year }

/*
Month returns the month of the receiver instance.
*/
func (r DateTime) Month() int { return r.month }

/*
Day returns the day of the receiver instance.
*/
func (r DateTime) Day() int { return r.day }

/*
Hour returns the hour of the receiver instance.
*/
func (r DateTime) Hour() int { return r.hour }

/*
Minute returns the minute of the receiver instance.
*/
func (r DateTime) Minute() int { return r.minute }

/*
Second returns the second of the receiver instance.
*/
func (r DateTime) Second() int { return r.second }

/*
Microsecond returns the microsecond of the receiver instance.
*/
func (r DateTime) Microsecond() int { return r.microsecond }

/*
Fold returns the fold flag of the receiver instance, either 0 or 1.
*/
func (r DateTime) Fold() int { return r.fold }

/*
Offset returns the [OffsetProvider] bound to the receiver instance,
or nil if the receiver is naive.
*/
func (r DateTime) Offset() OffsetProvider { return r.offset }

/*
Date returns the calendar portion of the receiver as an instance of
[Date].
*/
func (r DateTime) Date() Date {
	return Date{year: r.year, month: r.month, day: r.day}
}

/*
TimeOfDay returns the clock portion of the receiver as a naive
instance of [Time], preserving the fold flag.
*/
func (r DateTime) TimeOfDay() Time {
	return Time{
		hour: r.hour, minute: r.minute, second: r.second,
		microsecond: r.microsecond, fold: r.fold,
	}
}

/*
TimeOfDayTZ returns the clock portion of the receiver as an instance
of [Time] carrying the provider and fold flag of the receiver.
*/
func (r DateTime) TimeOfDayTZ() Time {
	t := r.TimeOfDay()
	t.offset = r.offset
	return t
}

/*
WithOffset returns a copy of the receiver bound to the provided
[OffsetProvider]. Passing nil detaches any provider, yielding a
naive value.
*/
func (r DateTime) WithOffset(p OffsetProvider) DateTime {
	r.offset = p
	return r
}

/*
WithFold returns a copy of the receiver with the given fold flag
alongside an error. fold must be 0 or 1.
*/
func (r DateTime) WithFold(fold int) (DateTime, error) {
	if fold != 0 && fold != 1 {
		return DateTime{}, errorFieldOutOfRange("fold", 0, 1, fold)
	}
	r.fold = fold
	return r, nil
}

/*
Replace returns a copy of the receiver with any selected input field
substituted, alongside an error. Passing zero (0) for a date field,
or -1 for a clock field, keeps the value held by the receiver. The
provider and fold flag always carry over.
*/
func (r DateTime) Replace(year, month, day, hour, minute, second, microsecond int) (DateTime, error) {
	if year <= 0 {
		year = r.year
	}
	if month <= 0 {
		month = r.month
	}
	if day <= 0 {
		day = r.day
	}
	if hour < 0 {
		hour = r.hour
	}
	if minute < 0 {
		minute = r.minute
	}
	if second < 0 {
		second = r.second
	}
	if microsecond < 0 {
		microsecond = r.microsecond
	}

	dt, err := NewDateTime(year, month, day, hour, minute, second, microsecond)
	if err == nil {
		dt.offset = r.offset
		dt.fold = r.fold
	}
	return dt, err
}

/*
Ordinal returns the proleptic Gregorian ordinal of the date portion
of the receiver instance.
*/
func (r DateTime) Ordinal() int {
	return ymdToOrdinal(r.year, r.month, r.day)
}

/*
Weekday returns the day of the week of the receiver instance,
wherein Monday is 0 and Sunday is 6.
*/
func (r DateTime) Weekday() int {
	return weekdayFromOrdinal(r.Ordinal())
}

/*
ISOWeekday returns the day of the week of the receiver instance,
wherein Monday is 1 and Sunday is 7.
*/
func (r DateTime) ISOWeekday() int {
	return isoWeekdayFromOrdinal(r.Ordinal())
}

/*
UTCOffset returns the offset supplied by the provider of the
receiver instance alongside a presence flag and an error, validated
identically to [Time.UTCOffset].
*/
func (r DateTime) UTCOffset() (Duration, bool, error) {
	if r.offset == nil {
		return Duration{}, false, nil
	}

	d, ok := r.offset.UTCOffset(r)
	if !ok {
		return Duration{}, false, nil
	}

	if err := checkOffset(d); err != nil {
		return Duration{}, false, err
	}
	return d, true, nil
}

/*
TZName returns the offset name supplied by the provider of the
receiver instance alongside a presence flag.
*/
func (r DateTime) TZName() (string, bool) {
	if r.offset == nil {
		return "", false
	}
	return r.offset.Name(r)
}

/*
DST returns the daylight saving adjustment supplied by the provider
of the receiver instance alongside a presence flag and an error.
*/
func (r DateTime) DST() (Duration, bool, error) {
	if r.offset == nil {
		return Duration{}, false, nil
	}

	d, ok := r.offset.DST(r)
	if !ok {
		return Duration{}, false, nil
	}

	if err := checkOffset(d); err != nil {
		return Duration{}, false, err
	}
	return d, true, nil
}

/*
asSpan expresses the receiver as the span from the calendar origin:
the ordinal of its date portion in days plus its clock portion.
*/
func (r DateTime) asSpan() Duration {
	return Duration{
		days:         r.Ordinal(),
		seconds:      r.hour*secondsPerHour + r.minute*secondsPerMin + r.second,
		microseconds: r.microsecond,
	}
}

/*
Add returns the receiver advanced by d as a new instance of
[DateTime] alongside an error, carrying the provider of the receiver
with a reset fold flag. An overflow error is returned if the
resulting ordinal exits [1,3652059].
*/
func (r DateTime) Add(d Duration) (DateTime, error) {
	sum, err := r.asSpan().Add(d)
	if err != nil {
		return DateTime{}, errorOrdinalOverflow
	}
	if sum.days < minOrdinal || sum.days > maxOrdinal {
		return DateTime{}, errorOrdinalOverflow
	}

	y, mo, dd := ordinalToYMD(sum.days)
	mm, ss := divmod(sum.seconds, secondsPerMin)
	hh, mm := divmod(mm, secondsPerMin)

	out := DateTime{
		year: y, month: mo, day: dd,
		hour: hh, minute: mm, second: ss,
		microsecond: sum.microseconds,
		offset:      r.offset,
	}
	debugArith("DateTime.Add", out)
	return out, nil
}

/*
Sub returns the receiver moved backward by d as a new instance of
[DateTime] alongside an error, equivalent to adding the negation
of d.
*/
func (r DateTime) Sub(d Duration) (DateTime, error) {
	neg, err := d.Neg()
	if err != nil {
		return DateTime{}, err
	}
	return r.Add(neg)
}

/*
Diff returns the span between the receiver and other as an instance
of [Duration] alongside an error, positive when the receiver is the
later instant.

Operands sharing the same provider instance (or both naive) subtract
field-wise. Otherwise both must supply an offset, and the offset
difference joins the result; a naive operand against an aware
operand yields a type mismatch error.
*/
func (r DateTime) Diff(other DateTime) (Duration, error) {
	base, err := r.asSpan().Sub(other.asSpan())
	if err != nil || r.offset == other.offset {
		return base, err
	}

	offR, okR, err := r.UTCOffset()
	if err != nil {
		return Duration{}, err
	}
	offO, okO, err := other.UTCOffset()
	if err != nil {
		return Duration{}, err
	}

	if !okR && !okO {
		return base, nil
	}
	if okR != okO {
		return Duration{}, errorMixedDiff
	}

	// self - other in real elapsed terms is the naive difference
	// plus (otherOffset - selfOffset).
	adj, err := offO.Sub(offR)
	if err == nil {
		base, err = base.Add(adj)
	}
	return base, err
}

func (r DateTime) cmpFields(other DateTime) int {
	if c := cmpInt(r.year, other.year); c != 0 {
		return c
	}
	if c := cmpInt(r.month, other.month); c != 0 {
		return c
	}
	if c := cmpInt(r.day, other.day); c != 0 {
		return c
	}
	if c := cmpInt(r.hour, other.hour); c != 0 {
		return c
	}
	if c := cmpInt(r.minute, other.minute); c != 0 {
		return c
	}
	if c := cmpInt(r.second, other.second); c != 0 {
		return c
	}
	return cmpInt(r.microsecond, other.microsecond)
}

/*
Compare returns an integer comparison result (-1, 0 or 1) alongside
an error, mirroring the offset-aware rules of [Time.Compare] across
the full seven-field tuple.
*/
func (r DateTime) Compare(other DateTime) (int, error) {
	if r.offset == other.offset {
		return r.cmpFields(other), nil
	}

	offR, okR, err := r.UTCOffset()
	if err != nil {
		return 0, err
	}
	offO, okO, err := other.UTCOffset()
	if err != nil {
		return 0, err
	}

	if !okR && !okO {
		return r.cmpFields(other), nil
	}
	if okR != okO {
		return 0, errorNaiveVsAware
	}
	if offR.Eq(offO) {
		return r.cmpFields(other), nil
	}

	diff, err := r.Diff(other)
	if err != nil {
		return 0, err
	}
	return diff.Compare(Duration{}), nil
}

/*
Eq returns a Boolean value indicative of whether the receiver and
other describe the same instant. Unlike ordering, mixed naive/aware
equality never errors; it simply reports false.
*/
func (r DateTime) Eq(other DateTime) bool {
	c, err := r.Compare(other)
	return err == nil && c == 0
}

/*
Lt returns (true, nil) if the receiver is strictly earlier than
other, subject to the ordering rules of [DateTime.Compare].
*/
func (r DateTime) Lt(other DateTime) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c < 0, err
}

/*
Le returns (true, nil) if the receiver is not later than other,
subject to the ordering rules of [DateTime.Compare].
*/
func (r DateTime) Le(other DateTime) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c <= 0, err
}

/*
Gt returns (true, nil) if the receiver is strictly later than other,
subject to the ordering rules of [DateTime.Compare].
*/
func (r DateTime) Gt(other DateTime) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c > 0, err
}

/*
Ge returns (true, nil) if the receiver is not earlier than other,
subject to the ordering rules of [DateTime.Compare].
*/
func (r DateTime) Ge(other DateTime) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c >= 0, err
}

/*
epochSpan is 1970-01-01T00:00:00 expressed as a span from the
calendar origin. The POSIX epoch anchors every timestamp conversion
in this package.
*/
var epochSpan = Duration{days: 719163}

/*
Timestamp returns the POSIX timestamp of the receiver instance as
float seconds alongside an error.

An aware receiver subtracts the epoch instant directly. A naive
receiver carries no zone of its own, so the caller must supply an
[EpochMapper] translating its civil fields to epoch seconds; omitting
one yields an error.
*/
func (r DateTime) Timestamp(mapper ...EpochMapper) (float64, error) {
	off, ok, err := r.UTCOffset()
	if err != nil {
		return 0, err
	}

	if ok {
		span, err := r.asSpan().Sub(epochSpan)
		if err == nil {
			span, err = span.Sub(off)
		}
		if err != nil {
			return 0, err
		}
		return span.TotalSeconds(), nil
	}

	if len(mapper) == 0 || mapper[0] == nil {
		return 0, domainErrorf("naive Timestamp requires an EpochMapper")
	}

	sec := mapper[0](r.year, r.month, r.day, r.hour, r.minute, r.second)
	return float64(sec) + float64(r.microsecond)/microsPerSecond, nil
}

/*
Hash returns a deterministic hash of the receiver consistent with
equality: an aware value hashes its epoch-anchored offset-adjusted
span, a naive value its raw fields with fold coerced to 0.
Recomputation under concurrent use always reproduces the same value.
*/
func (r DateTime) Hash() uint32 {
	// The provider is queried with fold coerced to 0 so that a
	// fold-sensitive provider cannot split the hashes of two values
	// which compare equal.
	canon := r
	canon.fold = 0
	off, ok, err := canon.UTCOffset()
	if err != nil || !ok {
		return mix32(r.year, r.month, r.day, r.hour,
			r.minute, r.second, r.microsecond)
	}

	span := r.asSpan()
	total := span.days*secondsPerDay + span.seconds - offsetMinutes(off)*secondsPerMin
	return mix32(total, span.microseconds)
}

/*
ISOFormat returns the ISO 8601 string representation of the receiver
instance alongside an error, in the form "YYYY-MM-DD<sep>HH:MM:SS",
extended with ".ffffff" when the microsecond field is non-zero and
suffixed with "±HH:MM" when the provider yields an offset. sep is
the single byte separating the date and clock portions, customarily
'T' or ' '.
*/
func (r DateTime) ISOFormat(sep byte) (string, error) {
	off, ok, err := r.UTCOffset()
	if err != nil {
		return "", err
	}

	bld := newStrBuilder()
	bld.WriteString(r.Date().ISOFormat())
	bld.WriteByte(sep)
	bld.WriteString(formatClock(r.hour, r.minute, r.second, r.microsecond))
	if ok {
		bld.WriteString(formatOffset(off))
	}
	return bld.String(), nil
}

/*
String returns the string representation of the receiver instance,
equivalent to [DateTime.ISOFormat] with a space separator. If the
provider yields an invalid offset the naive portion is returned
alone; use [DateTime.ISOFormat] to observe the failure.
*/
func (r DateTime) String() string {
	if s, err := r.ISOFormat(' '); err == nil {
		return s
	}
	return r.Date().ISOFormat() + " " +
		formatClock(r.hour, r.minute, r.second, r.microsecond)
}

/*
CTime returns the C asctime style representation of the receiver
instance, e.g. "Wed Dec  4 20:30:40 2002".
*/
func (r DateTime) CTime() string {
	return ctimeString(r.Weekday(), r.month, r.day,
		r.hour, r.minute, r.second, r.year)
}
