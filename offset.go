package datetime

/*
offset.go defines the abstract UTC offset capability consumed by the
aware forms of [Time] and [DateTime], and a minimal fixed-offset
provider sufficient for aware arithmetic without a zone database.
*/

/*
OffsetProvider is the capability through which aware [Time] and
[DateTime] instances learn their UTC offset. Implementations are
supplied -- and owned -- by the caller; values of this package hold
them by reference only and issue queries exclusively.

Each method receives the instant being interrogated (a [Time] or
[DateTime]) and reports absence through its Boolean return.
Implementations must be comparable (a pointer receiver suffices), as
provider identity participates in the comparison rules of aware
values.
*/
type OffsetProvider interface {
	// UTCOffset returns the offset east of UTC for the given
	// instant, or absent.
	UTCOffset(instant any) (Duration, bool)

	// Name returns the display name of the offset for the given
	// instant, or absent.
	Name(instant any) (string, bool)

	// DST returns the daylight saving adjustment in effect for
	// the given instant, or absent.
	DST(instant any) (Duration, bool)
}

/*
checkOffset enforces the whole-minute, strictly-within-24-hours
invariant this package imposes upon every offset a provider yields.
The provider itself is not trusted to enforce it.
*/
func checkOffset(d Duration) (err error) {
	total := d.days*secondsPerDay + d.seconds
	if d.microseconds != 0 || total%secondsPerMin != 0 {
		err = errorOffsetNotWhole
	} else if total <= -secondsPerDay || total >= secondsPerDay {
		err = errorOffsetTooLarge
	}
	return
}

/*
offsetMinutes returns the signed whole-minute count of a previously
validated offset.
*/
func offsetMinutes(d Duration) int {
	return (d.days*secondsPerDay + d.seconds) / secondsPerMin
}

/*
formatOffset renders a validated offset as "+HH:MM" or "-HH:MM".
*/
func formatOffset(d Duration) string {
	min := offsetMinutes(d)

	var b [6]byte
	b[0] = '+'
	if min < 0 {
		b[0] = '-'
		min = -min
	}
	put2(b[:], 1, min/60)
	b[3] = ':'
	put2(b[:], 4, min%60)
	return string(b[:])
}

/*
FixedOffset implements [OffsetProvider] with a constant whole-minute
offset, independent of the instant queried. It reports no DST
component.
*/
type FixedOffset struct {
	offset Duration
	name   string
}

/*
UTC is the zero-offset provider.
*/
var UTC = &FixedOffset{name: "UTC"}

/*
NewFixedOffset returns an instance of *[FixedOffset] alongside an
error following validation of the provided offset, which must be a
whole number of minutes strictly between -24 and +24 hours.

If name is the empty string, a name of the form "UTC±HH:MM" is
derived from the offset.
*/
func NewFixedOffset(offset Duration, name string) (*FixedOffset, error) {
	if err := checkOffset(offset); err != nil {
		return nil, err
	}
	return &FixedOffset{offset: offset, name: name}, nil
}

/*
UTCOffset returns the fixed offset of the receiver instance. The
instant argument is ignored.
*/
func (r *FixedOffset) UTCOffset(_ any) (Duration, bool) {
	return r.offset, true
}

/*
Name returns the name of the receiver instance, deriving one of the
form "UTC±HH:MM" when none was set. The instant argument is ignored.
*/
func (r *FixedOffset) Name(_ any) (string, bool) {
	if r.name != "" {
		return r.name, true
	}
	if r.offset.IsZero() {
		return "UTC", true
	}
	return "UTC" + formatOffset(r.offset), true
}

/*
DST returns an absent daylight saving adjustment.
*/
func (r *FixedOffset) DST(_ any) (Duration, bool) {
	return Duration{}, false
}
