package chrono

import "github.com/temporalis/chrono/scalar"

// Duration is a count of SI seconds since the epoch, implicitly on the TAI
// timeline. It is the scale-independent universal representation of a
// physical point in time: any Instant projects to a Duration and back
// without loss.
type Duration struct {
	secs scalar.Scalar
}

// DurationOf wraps a second count as a Duration.
func DurationOf(secs scalar.Scalar) Duration {
	return Duration{secs: secs}
}

// Seconds returns a Duration for a whole number of SI seconds.
func Seconds(v int64) Duration {
	return Duration{secs: scalar.New(v)}
}

// Secs returns the second count.
func (d Duration) Secs() scalar.Scalar {
	return d.secs
}

// Add returns d + e.
func (d Duration) Add(e Duration) Duration {
	return Duration{secs: d.secs.Add(e.secs)}
}

// Sub returns d - e.
func (d Duration) Sub(e Duration) Duration {
	return Duration{secs: d.secs.Sub(e.secs)}
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	return Duration{secs: d.secs.Neg()}
}

// Cmp returns -1, 0 or +1 as d is before, equal to or after e.
func (d Duration) Cmp(e Duration) int {
	return d.secs.Cmp(e.secs)
}

// IsZero reports whether d is exactly the epoch.
func (d Duration) IsZero() bool {
	return d.secs.IsZero()
}

// Timestamp splits the duration into days and seconds-into-day using the
// nominal 86400-second day. The split is euclidean: seconds are always in
// [0, 86400), even for pre-epoch durations.
func (d Duration) Timestamp() Timestamp {
	days, secs := d.secs.FloorDivInt(SecondsPerDay)
	return Timestamp{days: days, secs: secs}
}

// String renders the duration as "<seconds> s".
func (d Duration) String() string {
	return d.secs.String() + " s"
}
