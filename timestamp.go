package chrono

import "github.com/temporalis/chrono/scalar"

// SecondsPerDay is the nominal length of a day in SI seconds. Scales with
// leap seconds override it per-day through the DayLengths capability.
const SecondsPerDay = 86400

// Timestamp is a point on a scale's own calendar: a whole number of days
// since the epoch day plus seconds into that day.
//
// Seconds are normally in [0, 86400). Timestamps produced by leap-second
// scales may carry seconds in [86400, 86401) while inside an inserted
// second; day-level bookkeeping otherwise always assumes the nominal
// 86400-second day, leaving irregular day lengths to the owning scale.
type Timestamp struct {
	days int64
	secs scalar.Scalar
}

// NewTimestamp builds a normalized timestamp. Seconds outside [0, 86400)
// are folded into the day count euclidean-style, so negative inputs still
// yield seconds in [0, 86400).
func NewTimestamp(days int64, secs scalar.Scalar) Timestamp {
	q, rem := secs.FloorDivInt(SecondsPerDay)
	return Timestamp{days: days + q, secs: rem}
}

// RawTimestamp builds a timestamp without normalizing. Scale conversion
// hooks use it to represent positions inside an inserted leap second,
// where seconds legitimately reach 86400 and beyond.
func RawTimestamp(days int64, secs scalar.Scalar) Timestamp {
	return Timestamp{days: days, secs: secs}
}

// Days returns the whole days since the epoch day.
func (t Timestamp) Days() int64 {
	return t.days
}

// Seconds returns the seconds into the day.
func (t Timestamp) Seconds() scalar.Scalar {
	return t.secs
}

// AddDays shifts the timestamp by whole days, leaving seconds untouched.
func (t Timestamp) AddDays(n int64) Timestamp {
	t.days += n
	return t
}

// AddSeconds shifts the timestamp by a span of seconds, normalizing
// against the nominal day length.
func (t Timestamp) AddSeconds(span scalar.Scalar) Timestamp {
	return NewTimestamp(t.days, t.secs.Add(span))
}

// Round rounds the seconds to prec fractional digits (half-even) and
// renormalizes, so rounding up at the end of a day carries into the next.
// Negative precision is a no-op.
func (t Timestamp) Round(prec int) Timestamp {
	if prec < 0 {
		return t
	}
	return NewTimestamp(t.days, t.secs.Round(prec))
}

// Cmp orders two timestamps on the same scale: -1, 0 or +1.
func (t Timestamp) Cmp(u Timestamp) int {
	switch {
	case t.days < u.days:
		return -1
	case t.days > u.days:
		return 1
	default:
		return t.secs.Cmp(u.secs)
	}
}

// Sub returns t - u in seconds, assuming nominal day lengths.
func (t Timestamp) Sub(u Timestamp) scalar.Scalar {
	dayDiff := scalar.New(t.days - u.days).MulInt(SecondsPerDay)
	return dayDiff.Add(t.secs.Sub(u.secs))
}

// Duration projects the timestamp to seconds since the epoch, assuming
// nominal day lengths. Correct only for scales whose unit is TAI.
func (t Timestamp) Duration() Duration {
	return Duration{secs: scalar.New(t.days).MulInt(SecondsPerDay).Add(t.secs)}
}

// String renders the timestamp as its total second count since the epoch.
func (t Timestamp) String() string {
	return t.Duration().secs.String()
}
