package chrono

import "github.com/temporalis/chrono/scalar"

// Unit labels for the same-basis conversion fast paths.
const (
	// UnitTAI marks scales whose timestamps tick uniform SI seconds with a
	// fixed relation to TAI. It is the only unit on which duration
	// arithmetic may skip the explicit TAI round trip.
	UnitTAI = "TAI"

	// UnitUTC marks the UTC family. Distinct UTC-family scales differ only
	// in their leap-second tables, never in raw timestamp encoding, so
	// conversion between them is the identity. Any new scale family
	// claiming a shared unit must uphold the same guarantee.
	UnitUTC = "UTC"
)

// Timescale is a named rule for mapping between the TAI timeline and a
// scale-native timestamp.
//
// FromTAI and ToTAI must be total, pure, and exact mutual inverses over
// the domain of representable instants. That obligation sits with the
// implementor; it is not validated here.
//
// Name is the sole scale identity: two Timescale values with equal names
// are treated as the same scale everywhere, so constructing two scales
// that share a name but behave differently silently corrupts conversions.
type Timescale interface {
	// Name identifies the scale and is used for display.
	Name() string

	// Unit is the SI-second basis label, used only as a same-basis
	// conversion hint. See UnitTAI and UnitUTC.
	Unit() string

	// FromTAI maps seconds since the epoch to a scale-native timestamp.
	FromTAI(Duration) Timestamp

	// ToTAI maps a scale-native timestamp to seconds since the epoch.
	ToTAI(Timestamp) Duration
}

// DayLengths is the optional capability of scales whose days are not all
// 86400 seconds long. Its presence marks a scale as carrying leap seconds;
// absence means every day is exactly nominal.
type DayLengths interface {
	// SecondsInDay returns the true length in SI seconds of the day the
	// timestamp falls on (86401 for a day ending in an inserted second).
	SecondsInDay(Timestamp) scalar.Scalar
}

// DayNumbering is the optional capability of scales that define their own
// fractional-day semantics for Modified Julian Day conversion. Scales with
// irregular day lengths need it so a fractional day is measured against
// the day's true length rather than the nominal 86400 seconds.
type DayNumbering interface {
	// ToMJD2000 converts a timestamp (optionally shifted by tzDelta
	// seconds, scale-natively) to fractional days since 2000-01-01.
	ToMJD2000(t Timestamp, tzDelta scalar.Scalar) scalar.Scalar

	// FromMJD2000 converts fractional days since 2000-01-01 back to a
	// timestamp, placing the fraction correctly across irregular days.
	FromMJD2000(mjd scalar.Scalar) Timestamp
}

// HasLeapSeconds reports whether the scale has variable-length days.
func HasLeapSeconds(ts Timescale) bool {
	_, ok := ts.(DayLengths)
	return ok
}

// SameScale reports whether two scales share an identity.
func SameScale(a, b Timescale) bool {
	return a.Name() == b.Name()
}

// Hooks bundles the optional capability functions accepted by NewWithHooks.
// A nil field means the capability is absent and default arithmetic
// applies. ToMJD2000 and FromMJD2000 must be supplied together.
type Hooks struct {
	SecondsInDay func(Timestamp) scalar.Scalar
	ToMJD2000    func(t Timestamp, tzDelta scalar.Scalar) scalar.Scalar
	FromMJD2000  func(mjd scalar.Scalar) Timestamp
}

// funcScale is an ad-hoc scale assembled from conversion functions.
type funcScale struct {
	name    string
	unit    string
	fromTAI func(Duration) Timestamp
	toTAI   func(Timestamp) Duration
}

func (s funcScale) Name() string                 { return s.name }
func (s funcScale) Unit() string                 { return s.unit }
func (s funcScale) FromTAI(d Duration) Timestamp { return s.fromTAI(d) }
func (s funcScale) ToTAI(t Timestamp) Duration   { return s.toTAI(t) }

// daySpanScale adds the DayLengths capability to a funcScale.
type daySpanScale struct {
	funcScale
	secondsInDay func(Timestamp) scalar.Scalar
}

func (s daySpanScale) SecondsInDay(t Timestamp) scalar.Scalar {
	return s.secondsInDay(t)
}

// dayNumberScale adds the DayNumbering capability to a funcScale.
type dayNumberScale struct {
	funcScale
	toMJD   func(Timestamp, scalar.Scalar) scalar.Scalar
	fromMJD func(scalar.Scalar) Timestamp
}

func (s dayNumberScale) ToMJD2000(t Timestamp, tzDelta scalar.Scalar) scalar.Scalar {
	return s.toMJD(t, tzDelta)
}

func (s dayNumberScale) FromMJD2000(mjd scalar.Scalar) Timestamp {
	return s.fromMJD(mjd)
}

// fullHookScale carries both optional capabilities.
type fullHookScale struct {
	daySpanScale
	toMJD   func(Timestamp, scalar.Scalar) scalar.Scalar
	fromMJD func(scalar.Scalar) Timestamp
}

func (s fullHookScale) ToMJD2000(t Timestamp, tzDelta scalar.Scalar) scalar.Scalar {
	return s.toMJD(t, tzDelta)
}

func (s fullHookScale) FromMJD2000(mjd scalar.Scalar) Timestamp {
	return s.fromMJD(mjd)
}

// New builds a scale from a name, a unit label, and the required
// conversion pair. The caller is responsible for fromTAI and toTAI being
// exact inverses; no validation is performed.
func New(name, unit string, fromTAI func(Duration) Timestamp, toTAI func(Timestamp) Duration) Timescale {
	return funcScale{name: name, unit: unit, fromTAI: fromTAI, toTAI: toTAI}
}

// NewWithHooks is New plus optional capability hooks. The returned value
// implements DayLengths and/or DayNumbering exactly when the matching
// hooks are non-nil, so capability probes see only what was supplied.
func NewWithHooks(name, unit string, fromTAI func(Duration) Timestamp, toTAI func(Timestamp) Duration, h Hooks) Timescale {
	base := funcScale{name: name, unit: unit, fromTAI: fromTAI, toTAI: toTAI}
	hasSpan := h.SecondsInDay != nil
	hasMJD := h.ToMJD2000 != nil && h.FromMJD2000 != nil
	switch {
	case hasSpan && hasMJD:
		return fullHookScale{
			daySpanScale: daySpanScale{funcScale: base, secondsInDay: h.SecondsInDay},
			toMJD:        h.ToMJD2000,
			fromMJD:      h.FromMJD2000,
		}
	case hasSpan:
		return daySpanScale{funcScale: base, secondsInDay: h.SecondsInDay}
	case hasMJD:
		return dayNumberScale{funcScale: base, toMJD: h.ToMJD2000, fromMJD: h.FromMJD2000}
	default:
		return base
	}
}

// fixedOffsetScale is a scale that ticks TAI seconds at a constant offset.
type fixedOffsetScale struct {
	name   string
	offset Duration
}

func (s fixedOffsetScale) Name() string { return s.name }

// Unit is always TAI: fixed-offset scales tick uniform SI seconds.
func (s fixedOffsetScale) Unit() string { return UnitTAI }

func (s fixedOffsetScale) FromTAI(d Duration) Timestamp {
	return d.Add(s.offset).Timestamp()
}

func (s fixedOffsetScale) ToTAI(t Timestamp) Duration {
	return t.Duration().Sub(s.offset)
}

// TAIOffset derives a fixed-offset TAI-based scale: the scale's reading is
// always TAI plus offset. Such scales have no leap seconds and every day
// is exactly 86400 seconds. GPS and Terrestrial Time are built this way.
func TAIOffset(name string, offset Duration) Timescale {
	return fixedOffsetScale{name: name, offset: offset}
}
