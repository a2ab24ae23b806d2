package chrono

import "github.com/temporalis/chrono/scalar"

// Instant is a timestamp tagged with the timescale it is expressed in.
//
// Two instants denote the same physical point in time iff their timestamps
// agree after conversion to a common scale; raw field equality is not
// value equality, so compare with Equal or Compare, never ==.
type Instant struct {
	since Timestamp
	scale Timescale
}

// NewInstant interprets a raw timestamp under the supplied scale. The
// interpretation is unchecked: handing a timestamp that was measured in a
// different scale silently yields a wrong instant. Use For when the scale
// comes from an untrusted caller.
func NewInstant(ts Timescale, t Timestamp) Instant {
	return Instant{since: t, scale: ts}
}

// For is the checked form of NewInstant. It rejects scales that cannot
// participate in conversion.
func For(ts Timescale, t Timestamp) (Instant, error) {
	if ts == nil {
		return Instant{}, &ScaleError{
			Code:    ErrCodeInvalidTimescale,
			Message: "nil timescale",
		}
	}
	if ts.Name() == "" {
		return Instant{}, &ScaleError{
			Code:    ErrCodeInvalidTimescale,
			Message: "timescale has no identity",
		}
	}
	return Instant{since: t, scale: ts}, nil
}

// At returns the instant a given physical duration after the epoch,
// expressed in TAI.
func At(d Duration) Instant {
	return Instant{since: d.Timestamp(), scale: TAI}
}

// Timestamp returns the stored scale-native timestamp.
func (i Instant) Timestamp() Timestamp {
	return i.since
}

// Scale returns the timescale the instant is expressed in.
func (i Instant) Scale() Timescale {
	return i.scale
}

// In re-expresses the instant in the target scale. The physical point in
// time never changes, only its representation; batch operations against a
// foreign scale should convert once up front rather than per operation.
func (i Instant) In(target Timescale) Instant {
	if SameScale(i.scale, target) {
		return Instant{since: i.since, scale: target}
	}
	return Instant{since: Convert(i.since, i.scale, target), scale: target}
}

// Duration projects the instant to the universal TAI-seconds-since-epoch
// representation. The projection is lossless for every scale.
func (i Instant) Duration() Duration {
	return i.scale.ToTAI(i.since)
}

// AsDuration returns the instant's scale-native timestamp as a raw second
// count. Unlike Duration, no conversion is applied, so the result is only
// meaningful for scales on the TAI unit; other scales are rejected.
func (i Instant) AsDuration() (Duration, error) {
	if i.scale.Unit() != UnitTAI {
		return Duration{}, &ScaleError{
			Code:    ErrCodeTimescaleMismatch,
			Message: "scale unit is not TAI-compatible",
			Scale:   i.scale.Name(),
		}
	}
	return i.since.Duration(), nil
}

// Compare orders two instants on physical time: -1, 0 or +1. The other
// instant is converted into i's scale first, so mixed-scale comparison is
// total and consistent.
func (i Instant) Compare(j Instant) int {
	return i.since.Cmp(j.In(i.scale).since)
}

// Before reports whether i is strictly earlier than j.
func (i Instant) Before(j Instant) bool { return i.Compare(j) < 0 }

// After reports whether i is strictly later than j.
func (i Instant) After(j Instant) bool { return i.Compare(j) > 0 }

// Equal reports whether i and j denote the same physical point in time.
func (i Instant) Equal(j Instant) bool { return i.Compare(j) == 0 }

// Min returns the earlier of two instants.
func Min(i, j Instant) Instant {
	if i.Compare(j) <= 0 {
		return i
	}
	return j
}

// Max returns the later of two instants.
func Max(i, j Instant) Instant {
	if i.Compare(j) >= 0 {
		return i
	}
	return j
}

// Add shifts the instant by a physical duration, preserving its scale tag.
// The result denotes "physical instant plus physical duration", which is
// scale-invariant. Scales on the TAI unit add directly; all others round
// trip through TAI.
func (i Instant) Add(d Duration) Instant {
	if i.scale.Unit() == UnitTAI {
		return Instant{since: i.since.AddSeconds(d.Secs()), scale: i.scale}
	}
	shifted := i.scale.ToTAI(i.since).Add(d)
	return Instant{since: i.scale.FromTAI(shifted), scale: i.scale}
}

// Sub shifts the instant backwards by a physical duration.
func (i Instant) Sub(d Duration) Instant {
	return i.Add(d.Neg())
}

// Since returns the physical elapsed time i - j. Both instants are
// projected to the universal TAI representation first; raw timestamp
// subtraction would be wrong across scales.
func (i Instant) Since(j Instant) Duration {
	return i.Duration().Sub(j.Duration())
}

// AddDays shifts the stored timestamp by whole scale-native days with no
// TAI round trip. This is deliberately raw: for scales whose day
// boundaries matter logically, it stays in day units and skips
// leap-second subtleties entirely.
func (i Instant) AddDays(n int64) Instant {
	return Instant{since: i.since.AddDays(n), scale: i.scale}
}

// AddIn re-expresses the instant in the given scale and adds a
// scale-native span of seconds directly, without TAI conversion. Contexts
// that intentionally want scale-native addition (Unix-style arithmetic
// that ignores leap seconds) use this.
func (i Instant) AddIn(ts Timescale, span scalar.Scalar) Instant {
	j := i.In(ts)
	return Instant{since: j.since.AddSeconds(span), scale: ts}
}

// RoundTo rounds the instant's fractional seconds to prec digits.
// Negative precision is a no-op, not an error.
//
// Leap-second scales are rounded on the uniform TAI timeline and
// converted back: rounding on an irregular-day timeline could silently
// carry across a leap-second boundary, and the uniform timeline avoids
// that boundary logic entirely.
func (i Instant) RoundTo(prec int) Instant {
	if prec < 0 {
		return i
	}
	if HasLeapSeconds(i.scale) {
		rounded := i.Duration().Timestamp().Round(prec)
		return Instant{since: i.scale.FromTAI(rounded.Duration()), scale: i.scale}
	}
	return Instant{since: i.since.Round(prec), scale: i.scale}
}

// String renders the instant as "<seconds> s" with the scale name
// appended unless it is empty or TAI.
func (i Instant) String() string {
	out := i.since.String() + " s"
	if name := i.scale.Name(); name != "" && name != "TAI" {
		out += " " + name
	}
	return out
}
