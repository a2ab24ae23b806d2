package chrono

// Convert re-expresses a timestamp measured in one scale as a timestamp in
// another. It is the single conversion primitive: every operation that
// compares, combines, or re-tags instants reduces to it.
//
// Dispatch is three-tiered:
//
//  1. Equal names: identity. Scales with equal names must behave
//     identically, so this is a legitimate short-circuit of the general
//     path, not merely an optimization.
//  2. Both units UTC: identity. UTC-family scales share their raw
//     timestamp encoding and differ only in leap-second tables, so no
//     numeric transform is needed. This is a contract of the UTC family,
//     not a generic same-unit shortcut.
//  3. Otherwise: route through TAI.
func Convert(t Timestamp, from, to Timescale) Timestamp {
	if from.Name() == to.Name() {
		return t
	}
	if from.Unit() == UnitUTC && to.Unit() == UnitUTC {
		return t
	}
	return to.FromTAI(from.ToTAI(t))
}

// ToTAI routes a bare timestamp through a scale's TAI projection. It is
// the universal exit point for scale-agnostic duration arithmetic.
func ToTAI(ts Timescale, t Timestamp) Duration {
	return ts.ToTAI(t)
}

// FromTAI routes a bare duration through a scale's timestamp construction.
// It is the universal entry point for scale-agnostic duration arithmetic.
func FromTAI(ts Timescale, d Duration) Timestamp {
	return ts.FromTAI(d)
}
