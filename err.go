package datetime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

var (
	errorOrdinalTooSmall  = rangeErr{mkerr("ordinal must be >= 1")}
	errorOrdinalTooLarge  = rangeErr{mkerr("ordinal must be <= 3652059")}
	errorDurationOverflow = overflowErr{mkerr("normalized days exceed +/-999999999")}
	errorOrdinalOverflow  = overflowErr{mkerr("result date out of ordinal range [1,3652059]")}
	errorNaiveVsAware     = mismatchErr{mkerr("cannot order offset-naive and offset-aware values")}
	errorMixedDiff        = mismatchErr{mkerr("cannot subtract offset-naive from offset-aware value")}
	errorOffsetNotWhole   = rangeErr{mkerr("utcoffset must be a whole number of minutes")}
	errorOffsetTooLarge   = rangeErr{mkerr("utcoffset must be strictly between -24h and +24h")}
	errorNilLocalTime     = domainErr{mkerr("nil local-time breakdown")}
	errorISOParse         = unimplementedErr{mkerr("fromisoformat is not part of the delivered surface")}
)

/*
types which implement the error interface. Each categorizes one
branch of the failure taxonomy: field-domain violations at
construction (rangeErr), results exceeding representable bounds
(overflowErr), naive/aware ordering conflicts (mismatchErr),
defensive interior checks (domainErr) and deliberately deferred
surfaces (unimplementedErr).
*/
type (
	domainErr        struct{ e error }
	mismatchErr      struct{ e error }
	overflowErr      struct{ e error }
	rangeErr         struct{ e error }
	unimplementedErr struct{ e error }
)

func domainErrorf(m ...any) error   { return domainErr{mkerrf(m...)} }
func mismatchErrorf(m ...any) error { return mismatchErr{mkerrf(m...)} }
func overflowErrorf(m ...any) error { return overflowErr{mkerrf(m...)} }
func rangeErrorf(m ...any) error    { return rangeErr{mkerrf(m...)} }
func unimplErrorf(m ...any) error   { return unimplementedErr{mkerrf(m...)} }

func (r domainErr) Error() string        { return `DOMAIN ERROR: ` + r.e.Error() }
func (r mismatchErr) Error() string      { return `TYPE MISMATCH: ` + r.e.Error() }
func (r overflowErr) Error() string      { return `OVERFLOW: ` + r.e.Error() }
func (r rangeErr) Error() string         { return `RANGE ERROR: ` + r.e.Error() }
func (r unimplementedErr) Error() string { return `UNIMPLEMENTED: ` + r.e.Error() }

/*
IsRangeError returns a Boolean value indicative of whether err
describes a field-domain violation raised at construction.
*/
func IsRangeError(err error) bool {
	_, is := err.(rangeErr)
	return is
}

/*
IsOverflow returns a Boolean value indicative of whether err
describes a result which exceeded the representable day or
ordinal bound.
*/
func IsOverflow(err error) bool {
	_, is := err.(overflowErr)
	return is
}

/*
IsTypeMismatch returns a Boolean value indicative of whether err
describes an ordering comparison between offset-naive and
offset-aware values.
*/
func IsTypeMismatch(err error) bool {
	_, is := err.(mismatchErr)
	return is
}

/*
IsUnimplemented returns a Boolean value indicative of whether err
describes a deliberately deferred surface.
*/
func IsUnimplemented(err error) bool {
	_, is := err.(unimplementedErr)
	return is
}

func errorFieldOutOfRange(field string, min, max, got int) error {
	return rangeErrorf(field, " must be in ", itoa(min), "..", itoa(max), ", got ", got)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
