package datetime

/*
tod.go implements the immutable time-of-day type, including the
offset-aware comparison rules and ISO 8601 clock formatting.
*/

/*
Time implements an immutable wall-clock time of day, optionally
bound to an [OffsetProvider] and carrying a fold flag which
disambiguates the repeated hour of a backward offset transition.
The fold flag does not alter the stored fields; only a provider
which inspects it can reinterpret the instant.
*/
type Time struct {
	hour        int
	minute      int
	second      int
	microsecond int
	offset      OffsetProvider
	fold        int
}

/*
Package-level minima and maxima.
*/
var (
	// MinTime is the earliest representable Time, 00:00:00.
	MinTime = Time{}

	// MaxTime is the latest representable Time, 23:59:59.999999.
	MaxTime = Time{hour: 23, minute: 59, second: 59, microsecond: microsPerSecond - 1}

	// TimeResolution is the smallest possible difference between
	// non-equal Time instances, one (1) microsecond.
	TimeResolution = Duration{microseconds: 1}
)

func checkTimeFields(hour, minute, second, microsecond, fold int) (err error) {
	if hour < 0 || hour > 23 {
		err = errorFieldOutOfRange("hour", 0, 23, hour)
	} else if minute < 0 || minute > 59 {
		err = errorFieldOutOfRange("minute", 0, 59, minute)
	} else if second < 0 || second > 59 {
		err = errorFieldOutOfRange("second", 0, 59, second)
	} else if microsecond < 0 || microsecond > microsPerSecond-1 {
		err = errorFieldOutOfRange("microsecond", 0, microsPerSecond-1, microsecond)
	} else if fold != 0 && fold != 1 {
		err = errorFieldOutOfRange("fold", 0, 1, fold)
	}
	return
}

/*
NewTime returns an instance of [Time] alongside an error following
validation of the provided fields. The result is naive; attach a
provider via [Time.WithOffset].

A range error citing the offending field is returned if hour resides
outside [0,23], minute or second outside [0,59], or microsecond
outside [0,999999].
*/
func NewTime(hour, minute, second, microsecond int, constraints ...Constraint[Time]) (Time, error) {
	var t Time
	err := checkTimeFields(hour, minute, second, microsecond, 0)

	if err == nil {
		t = Time{hour: hour, minute: minute, second: second, microsecond: microsecond}
		if len(constraints) > 0 {
			var group ConstraintGroup[Time] = constraints
			err = group.Constrain(t)
		}
	}

	if err != nil {
		t = Time{}
		debugErr("Time", err)
	} else {
		debugConstruct("Time", t)
	}

	return t, err
}

/*
TimeFromISOFormat is a deferred surface and fails unconditionally
with an unimplemented error.
*/
func TimeFromISOFormat(_ string) (Time, error) {
	return Time{}, errorISOParse
}

/*
Hour returns the hour of the receiver instance, between 0 and 23
inclusive.
*/
func (r Time) Hour() int { return r.hour }

/*
Minute returns the minute of the receiver instance, between 0 and 59
inclusive.
*/
func (r Time) Minute() int { return r.minute }

/*
Second returns the second of the receiver instance, between 0 and 59
inclusive.
*/
func (r Time) Second() int { return r.second }

/*
Microsecond returns the microsecond of the receiver instance,
between 0 and 999999 inclusive.
*/
func (r Time) Microsecond() int { return r.microsecond }

/*
Fold returns the fold flag of the receiver instance, either 0 or 1.
*/
func (r Time) Fold() int { return r.fold }

/*
Offset returns the [OffsetProvider] bound to the receiver instance,
or nil if the receiver is naive.
*/
func (r Time) Offset() OffsetProvider { return r.offset }

/*
WithOffset returns a copy of the receiver bound to the provided
[OffsetProvider]. Passing nil detaches any provider, yielding a
naive value.
*/
func (r Time) WithOffset(p OffsetProvider) Time {
	r.offset = p
	return r
}

/*
WithFold returns a copy of the receiver with the given fold flag
alongside an error. fold must be 0 or 1.
*/
func (r Time) WithFold(fold int) (Time, error) {
	if fold != 0 && fold != 1 {
		return Time{}, errorFieldOutOfRange("fold", 0, 1, fold)
	}
	r.fold = fold
	return r, nil
}

/*
Replace returns a copy of the receiver with any non-negative input
field substituted, alongside an error. Passing -1 for a field keeps
the value held by the receiver.
*/
func (r Time) Replace(hour, minute, second, microsecond int) (Time, error) {
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

	t, err := NewTime(hour, minute, second, microsecond)
	if err == nil {
		t.offset = r.offset
		t.fold = r.fold
	}
	return t, err
}

/*
UTCOffset returns the offset supplied by the provider of the
receiver instance alongside a presence flag and an error. A naive
receiver, or a provider reporting absence, yields a false flag and
no error. A provider yielding a non-whole-minute offset, or one not
strictly between -24 and +24 hours, yields a range error.
*/
func (r Time) UTCOffset() (Duration, bool, error) {
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
func (r Time) TZName() (string, bool) {
	if r.offset == nil {
		return "", false
	}
	return r.offset.Name(r)
}

/*
DST returns the daylight saving adjustment supplied by the provider
of the receiver instance alongside a presence flag and an error,
validated identically to [Time.UTCOffset].
*/
func (r Time) DST() (Duration, bool, error) {
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

func (r Time) cmpFields(other Time) int {
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
an error.

Two values sharing the same provider instance (or both naive)
compare field-wise. Otherwise each side's offset is computed: equal
offsets compare field-wise; unequal present offsets compare after
subtracting each side's whole-minute offset from its hour and minute
fields; a naive operand against an aware operand yields a type
mismatch error.
*/
func (r Time) Compare(other Time) (int, error) {
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

	adjR := r.hour*60 + r.minute - offsetMinutes(offR)
	adjO := other.hour*60 + other.minute - offsetMinutes(offO)
	if c := cmpInt(adjR, adjO); c != 0 {
		return c, nil
	}
	if c := cmpInt(r.second, other.second); c != 0 {
		return c, nil
	}
	return cmpInt(r.microsecond, other.microsecond), nil
}

/*
Eq returns a Boolean value indicative of whether the receiver and
other describe the same wall-clock instant. Unlike ordering, mixed
naive/aware equality never errors; it simply reports false.
*/
func (r Time) Eq(other Time) bool {
	c, err := r.Compare(other)
	return err == nil && c == 0
}

/*
Lt returns (true, nil) if the receiver is strictly earlier than
other, subject to the ordering rules of [Time.Compare].
*/
func (r Time) Lt(other Time) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c < 0, err
}

/*
Le returns (true, nil) if the receiver is not later than other,
subject to the ordering rules of [Time.Compare].
*/
func (r Time) Le(other Time) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c <= 0, err
}

/*
Gt returns (true, nil) if the receiver is strictly later than other,
subject to the ordering rules of [Time.Compare].
*/
func (r Time) Gt(other Time) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c > 0, err
}

/*
Ge returns (true, nil) if the receiver is not earlier than other,
subject to the ordering rules of [Time.Compare].
*/
func (r Time) Ge(other Time) (bool, error) {
	c, err := r.Compare(other)
	return err == nil && c >= 0, err
}

/*
Hash returns a deterministic hash of the receiver consistent with
equality under offset normalization: a folded value hashes as though
fold were 0, and an aware value hashes its offset-adjusted minute
arithmetic rather than its raw fields. Recomputation under
concurrent use always reproduces the same value.
*/
func (r Time) Hash() uint32 {
	// The provider is queried with fold coerced to 0 so that a
	// fold-sensitive provider cannot split the hashes of two values
	// which compare equal.
	canon := r
	canon.fold = 0
	off, ok, err := canon.UTCOffset()
	if err != nil || !ok {
		return mix32(r.hour, r.minute, r.second, r.microsecond)
	}

	hm := r.hour*60 + r.minute - offsetMinutes(off)
	hh, mm := divmod(hm, 60)
	return mix32(hh, mm, r.second, r.microsecond)
}

/*
ISOFormat returns the ISO 8601 string representation of the receiver
instance alongside an error, in the form "HH:MM:SS", extended with
".ffffff" when the microsecond field is non-zero and suffixed with
"±HH:MM" when the provider yields an offset.
*/
func (r Time) ISOFormat() (string, error) {
	off, ok, err := r.UTCOffset()
	if err != nil {
		return "", err
	}

	bld := newStrBuilder()
	bld.WriteString(formatClock(r.hour, r.minute, r.second, r.microsecond))
	if ok {
		bld.WriteString(formatOffset(off))
	}
	return bld.String(), nil
}

/*
String returns the string representation of the receiver instance.
If the provider yields an invalid offset the naive clock portion is
returned alone; use [Time.ISOFormat] to observe the failure.
*/
func (r Time) String() string {
	if s, err := r.ISOFormat(); err == nil {
		return s
	}
	return formatClock(r.hour, r.minute, r.second, r.microsecond)
}

/*
formatClock renders "HH:MM:SS[.ffffff]" with zero allocations beyond
the returned string.
*/
func formatClock(hour, min, sec, usec int) string {
	if usec == 0 {
		var b [8]byte
		put2(b[:], 0, hour)
		b[2] = ':'
		put2(b[:], 3, min)
		b[5] = ':'
		put2(b[:], 6, sec)
		return string(b[:])
	}

	var b [15]byte
	put2(b[:], 0, hour)
	b[2] = ':'
	put2(b[:], 3, min)
	b[5] = ':'
	put2(b[:], 6, sec)
	b[8] = '.'
	put6(b[:], 9, usec)
	return string(b[:])
}
