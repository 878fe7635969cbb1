package datetime

/*
duration.go implements the normalized signed time span type upon
which all date and clock arithmetic within this package is built.
*/

import (
	"math"
	"math/bits"
	"time"
)

/*
Unit conversion constants.
*/
const (
	microsPerMilli  = 1000
	microsPerSecond = 1_000_000
	secondsPerMin   = 60
	secondsPerHour  = 3600
	secondsPerDay   = 86400
	daysPerWeek     = 7
)

/*
maxDurationDays bounds the normalized day count of a [Duration] in
either direction.
*/
const maxDurationDays = 999_999_999

/*
microsPerDay and the span limbs serve the 128-bit microsecond
magnitude arithmetic of [Duration.Mul] and [Duration.Div].
maxSpanHi/maxSpanLo encode [MaxDuration] in microseconds, split at
the 64-bit boundary.
*/
const (
	microsPerDay = secondsPerDay * microsPerSecond

	maxSpanHi = 4
	maxSpanLo = 12613023705161793535
)

/*
Duration implements a signed span of time held in the unique
canonical form (days, seconds, microseconds), wherein seconds
resides within [0,86400), microseconds resides within [0,1000000)
and the sign is carried entirely by days. Instances are immutable
once constructed.

Note that a "negative" duration therefore holds non-negative seconds
and microseconds components; for instance, a span of minus one (1)
microsecond is represented as (-1 day, 86399 seconds, 999999
microseconds).
*/
type Duration struct {
	days         int
	seconds      int
	microseconds int
}

/*
Components implements the raw input magnitudes accepted by
[NewDuration]. Any field may be fractional and any field may be
negative or out of its canonical range; normalization resolves all
of them into the canonical triple.
*/
type Components struct {
	Days         float64
	Seconds      float64
	Microseconds float64
	Milliseconds float64
	Minutes      float64
	Hours        float64
	Weeks        float64
}

/*
Package-level minima and maxima.
*/
var (
	// MinDuration is the most negative representable Duration.
	MinDuration = Duration{days: -maxDurationDays}

	// MaxDuration is the largest representable Duration.
	MaxDuration = Duration{
		days:         maxDurationDays,
		seconds:      secondsPerDay - 1,
		microseconds: microsPerSecond - 1,
	}

	// DurationResolution is the smallest representable non-zero
	// Duration, one (1) microsecond.
	DurationResolution = Duration{microseconds: 1}
)

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to normalize x.

x may be an instance of [Components] or [time.Duration]. Sub-second
precision finer than one (1) microsecond is rounded to the nearest
even microsecond.

An overflow error is returned if the normalized day count exceeds
999999999 in either direction.
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var d Duration
	var err error

	switch tv := x.(type) {
	case Components:
		d, err = normalizeComponents(tv)
	case time.Duration:
		d, err = normalizeComponents(Components{Microseconds: float64(tv) / 1e3})
	case Duration:
		d = tv
	default:
		err = domainErrorf("invalid input type for Duration constructor")
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(d)
	}

	if err != nil {
		d = Duration{}
		debugErr("Duration", err)
	} else {
		debugConstruct("Duration", d)
	}

	return d, err
}

/*
normalizeComponents reduces raw (possibly fractional, possibly
out-of-range) magnitudes to the canonical triple. Derived units fold
into the day/second/microsecond accumulators first; the fractional
remainder of days then propagates into seconds, the fractional
remainder of seconds propagates into microseconds, and the
microsecond estimate is rounded half-to-even before the final
integer carry.
*/
func normalizeComponents(c Components) (Duration, error) {
	days := c.Days + daysPerWeek*c.Weeks
	seconds := c.Seconds + secondsPerMin*c.Minutes + secondsPerHour*c.Hours
	usec := c.Microseconds + microsPerMilli*c.Milliseconds

	for _, f := range [3]float64{days, seconds, usec} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Duration{}, domainErrorf("non-finite Duration component")
		}
	}

	// Loose pre-checks keep every later float64->int64 conversion
	// in range; any magnitude they reject already exceeds the
	// 999999999 day bound by orders of magnitude.
	if days > 1e12 || days < -1e12 ||
		seconds > 1e17 || seconds < -1e17 {
		return Duration{}, errorDurationOverflow
	}

	dWhole, dFrac := modFloat(days)
	sWhole, sFrac := modFloat(seconds)

	// |dFrac| < 1, so the carried second fraction is < 86400 and
	// the combined microsecond estimate stays well within float64
	// integer precision.
	usec += (sFrac + dFrac*secondsPerDay) * microsPerSecond

	// Fold whole seconds out of the microsecond accumulator before
	// conversion; a raw microsecond magnitude for a span near the
	// day bound does not itself fit in an int64.
	carry := math.Trunc(usec / microsPerSecond)
	usec -= carry * microsPerSecond
	if carry > 1e17 || carry < -1e17 {
		return Duration{}, errorDurationOverflow
	}

	return normalize64(int64(dWhole),
		int64(sWhole)+int64(carry), int64(rne(usec)))
}

/*
normalize64 performs the integer carry/borrow which folds overflow
upward so that 0 <= seconds < 86400 and 0 <= microseconds < 1000000,
leaving the sign entirely within days.
*/
func normalize64(days, seconds, usec int64) (Duration, error) {
	q := floorDiv64(usec, microsPerSecond)
	usec -= q * microsPerSecond
	seconds += q

	q = floorDiv64(seconds, secondsPerDay)
	seconds -= q * secondsPerDay
	days += q

	if days > maxDurationDays || days < -maxDurationDays {
		return Duration{}, errorDurationOverflow
	}

	return Duration{
		days:         int(days),
		seconds:      int(seconds),
		microseconds: int(usec),
	}, nil
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

/*
Days returns the normalized day count of the receiver instance. The
sign of the receiver is the sign of this value.
*/
func (r Duration) Days() int { return r.days }

/*
Seconds returns the normalized second count of the receiver
instance, always within [0,86400).
*/
func (r Duration) Seconds() int { return r.seconds }

/*
Microseconds returns the normalized microsecond count of the
receiver instance, always within [0,1000000).
*/
func (r Duration) Microseconds() int { return r.microseconds }

/*
IsZero returns a Boolean value indicative of whether the receiver
instance is the zero span.
*/
func (r Duration) IsZero() bool {
	return r.days == 0 && r.seconds == 0 && r.microseconds == 0
}

/*
TotalSeconds returns the entire span of the receiver instance
expressed as (possibly fractional) seconds.
*/
func (r Duration) TotalSeconds() float64 {
	return ((float64(r.days)*secondsPerDay+float64(r.seconds))*microsPerSecond +
		float64(r.microseconds)) / microsPerSecond
}

/*
Add returns the sum of the receiver and other as a new instance of
[Duration] alongside an error. An overflow error is returned if the
normalized sum exceeds the representable day bound.
*/
func (r Duration) Add(other Duration) (Duration, error) {
	return normalize64(
		int64(r.days)+int64(other.days),
		int64(r.seconds)+int64(other.seconds),
		int64(r.microseconds)+int64(other.microseconds))
}

/*
Sub returns the difference of the receiver and other as a new
instance of [Duration] alongside an error.
*/
func (r Duration) Sub(other Duration) (Duration, error) {
	return normalize64(
		int64(r.days)-int64(other.days),
		int64(r.seconds)-int64(other.seconds),
		int64(r.microseconds)-int64(other.microseconds))
}

/*
Neg returns the additive inverse of the receiver instance alongside
an error. Negating a normalized triple is not itself normalized, so
the result is rebuilt through the normalization path; negating
[MaxDuration] overflows, as its magnitude exceeds that of
[MinDuration].
*/
func (r Duration) Neg() (Duration, error) {
	return normalize64(
		-int64(r.days),
		-int64(r.seconds),
		-int64(r.microseconds))
}

/*
Abs returns the non-negative magnitude of the receiver instance
alongside an error.
*/
func (r Duration) Abs() (Duration, error) {
	if r.days < 0 {
		return r.Neg()
	}
	return r, nil
}

/*
spanMag expresses the receiver as a sign and a 128-bit microsecond
magnitude. A span near the day bound holds roughly 8.6e19
microseconds, beyond int64, so scaling arithmetic runs over two
64-bit limbs.
*/
func (r Duration) spanMag() (neg bool, hi, lo uint64) {
	us := uint64(r.seconds)*microsPerSecond + uint64(r.microseconds)

	if r.days >= 0 {
		hi, lo = bits.Mul64(uint64(r.days), microsPerDay)
		var c uint64
		lo, c = bits.Add64(lo, us, 0)
		hi += c
		return false, hi, lo
	}

	hi, lo = bits.Mul64(uint64(-r.days), microsPerDay)
	var b uint64
	lo, b = bits.Sub64(lo, us, 0)
	hi -= b
	return true, hi, lo
}

/*
fromMag rebuilds a canonical [Duration] from a sign and a 128-bit
microsecond magnitude, rejecting magnitudes beyond the representable
day bound. The negative bound is one sub-day remainder tighter than
the positive one, mirroring the asymmetry of [MinDuration] against
[MaxDuration].
*/
func fromMag(neg bool, hi, lo uint64) (Duration, error) {
	if hi > maxSpanHi || (hi == maxSpanHi && lo > maxSpanLo) {
		return Duration{}, errorDurationOverflow
	}

	days, sub := bits.Div64(hi, lo, microsPerDay)
	if !neg {
		return Duration{
			days:         int(days),
			seconds:      int(sub / microsPerSecond),
			microseconds: int(sub % microsPerSecond),
		}, nil
	}

	if sub == 0 {
		return Duration{days: -int(days)}, nil
	}
	if days == maxDurationDays {
		return Duration{}, errorDurationOverflow
	}
	sub = microsPerDay - sub
	return Duration{
		days:         -int(days) - 1,
		seconds:      int(sub / microsPerSecond),
		microseconds: int(sub % microsPerSecond),
	}, nil
}

/*
Mul returns the receiver scaled by the integer factor i as a new
instance of [Duration] alongside an error. The product is computed
exactly over the 128-bit microsecond magnitude, so an overflow error
arises only when the true result exceeds the representable day
bound.
*/
func (r Duration) Mul(i int) (Duration, error) {
	neg, hi, lo := r.spanMag()

	f := int64(i)
	if f < 0 {
		neg = !neg
		// MinInt64 wraps to itself here; the unsigned conversion
		// below still yields its magnitude.
		f = -f
	}
	fu := uint64(f)

	h1, l1 := bits.Mul64(lo, fu)
	h2, l2 := bits.Mul64(hi, fu)
	if h2 != 0 {
		return Duration{}, errorDurationOverflow
	}
	resHi, carry := bits.Add64(h1, l2, 0)
	if carry != 0 {
		return Duration{}, errorDurationOverflow
	}

	return fromMag(neg, resHi, l1)
}

/*
Div returns the receiver divided by the integer divisor i as a new
instance of [Duration] alongside an error, flooring toward negative
infinity over the exact 128-bit microsecond magnitude.

An error is returned if i is zero.
*/
func (r Duration) Div(i int) (Duration, error) {
	if i == 0 {
		return Duration{}, domainErrorf("division of Duration by zero")
	}

	neg, hi, lo := r.spanMag()

	f := int64(i)
	if f < 0 {
		neg = !neg
		f = -f
	}
	u := uint64(f)

	qHi := hi / u
	q, rem := bits.Div64(hi%u, lo, u)
	if neg && rem != 0 {
		// A truncated negative quotient floors one microsecond
		// further from zero.
		var c uint64
		q, c = bits.Add64(q, 1, 0)
		qHi += c
	}

	return fromMag(neg, qHi, q)
}

/*
Compare returns an integer comparison result (-1, 0 or 1) following
a lexicographic comparison of the canonical triples of the receiver
and other.
*/
func (r Duration) Compare(other Duration) int {
	if c := cmpInt(r.days, other.days); c != 0 {
		return c
	}
	if c := cmpInt(r.seconds, other.seconds); c != 0 {
		return c
	}
	return cmpInt(r.microseconds, other.microseconds)
}

/*
Eq returns a Boolean value indicative of whether the receiver and
other describe the same span.
*/
func (r Duration) Eq(other Duration) bool { return r.Compare(other) == 0 }

/*
Lt returns true if the receiver is strictly less than other.
*/
func (r Duration) Lt(other Duration) bool { return r.Compare(other) < 0 }

/*
Le returns true if the receiver is less than or equal to other.
*/
func (r Duration) Le(other Duration) bool { return r.Compare(other) <= 0 }

/*
Gt returns true if the receiver is strictly greater than other.
*/
func (r Duration) Gt(other Duration) bool { return r.Compare(other) > 0 }

/*
Ge returns true if the receiver is greater than or equal to other.
*/
func (r Duration) Ge(other Duration) bool { return r.Compare(other) >= 0 }

/*
Cast returns the receiver instance cast as an instance of
[time.Duration], saturating at the int64 nanosecond bounds when the
receiver exceeds the roughly 292 year range of that type.
*/
func (r Duration) Cast() time.Duration {
	const nsBound = float64(math.MaxInt64)
	ns := (float64(r.days)*secondsPerDay+float64(r.seconds))*1e9 +
		float64(r.microseconds)*1e3
	if ns >= nsBound {
		return time.Duration(math.MaxInt64)
	} else if ns <= -nsBound {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

/*
String returns the string representation of the receiver instance in
the form "[D day[s], ]H:MM:SS[.ffffff]". The day prefix appears only
when days is non-zero, pluralized unless its magnitude is exactly
one (1); microseconds appear zero-padded to six digits only when
non-zero.
*/
func (r Duration) String() string {
	mm, ss := divmod(r.seconds, secondsPerMin)
	hh, mm := divmod(mm, secondsPerMin)

	bld := newStrBuilder()
	if r.days != 0 {
		bld.WriteString(itoa(r.days))
		if absInt(r.days) == 1 {
			bld.WriteString(" day, ")
		} else {
			bld.WriteString(" days, ")
		}
	}

	var b [6]byte
	bld.WriteString(itoa(hh))
	b[0] = ':'
	put2(b[:], 1, mm)
	b[3] = ':'
	put2(b[:], 4, ss)
	bld.Write(b[:])

	if r.microseconds != 0 {
		var f [7]byte
		f[0] = '.'
		put6(f[:], 1, r.microseconds)
		bld.Write(f[:])
	}

	return bld.String()
}
