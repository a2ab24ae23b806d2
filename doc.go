// Package chrono implements time-scale-aware instants.
//
// An Instant is a Timestamp (day count plus seconds into day, relative to
// the epoch 2000-01-01 00:00:00 TAI) tagged with the Timescale it is
// expressed in. Physically distinct time scales - TAI, GPS, Terrestrial
// Time, UTC-like scales with leap seconds, and user-defined scales - are
// modeled as conversion rules to and from TAI, which serves as the
// universal interchange basis.
//
// ARCHITECTURE:
//
// Single Conversion Primitive:
// Every cross-scale operation (comparison, duration arithmetic, rounding,
// Julian Date conversion) funnels through Convert, which routes timestamps
// through TAI unless a documented short-circuit applies. There is exactly
// one place where scales meet.
//
// Lazy Re-Tagging:
// Converting an Instant to another scale with In never changes the
// physical point in time it denotes, only its internal representation.
// Callers comparing one instant against many in a different scale should
// pre-convert once instead of paying the conversion per comparison.
//
// Immutable Values:
// Every type in this package is an immutable value. No operation mutates
// shared state, blocks, or suspends; concurrent callers may share the
// built-in scale constants and derive instants without coordination.
//
// PRECONDITIONS (documented, not runtime-checked on the happy path):
//
// Two Timescale values sharing a name must behave identically - name is the
// sole scale identity, and conversion short-circuits on it. Constructing an
// Instant interprets the raw timestamp under the supplied scale unchecked.
// The checked boundary constructors (For, Instant.AsDuration) return a
// ScaleError instead, for callers that cannot guarantee their inputs.
package chrono
