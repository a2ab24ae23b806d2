package chrono

import "github.com/temporalis/chrono/scalar"

// Day-count epoch offsets. The library epoch 2000-01-01 falls on Modified
// Julian Day 51544; Julian Day precedes MJD by 2400000.5 days (the half
// day because JD starts at noon).
var (
	MJDEpochDelta = scalar.New(51544)
	JDEpochDelta  = scalar.MustParse("2400000.5")
)

// InstantAtMJD builds the instant at a (possibly fractional) Modified
// Julian Day number read in the given scale. Scales with the DayNumbering
// capability place the day fraction themselves, which lets leap-second
// scales spread it over the day's true length.
func InstantAtMJD(mjd scalar.Scalar, ts Timescale) Instant {
	rel := mjd.Sub(MJDEpochDelta)
	if dn, ok := ts.(DayNumbering); ok {
		return Instant{since: dn.FromMJD2000(rel), scale: ts}
	}
	days, frac := rel.FloorDivInt(1)
	return Instant{
		since: RawTimestamp(days, frac.MulInt(SecondsPerDay)),
		scale: ts,
	}
}

// InstantAtJD builds the instant at a Julian Day number read in the given
// scale.
func InstantAtJD(jd scalar.Scalar, ts Timescale) Instant {
	return InstantAtMJD(jd.Sub(JDEpochDelta), ts)
}

// MJDShifted returns the instant's Modified Julian Day number in the given
// scale, after shifting by tzDelta seconds scale-natively (no TAI round
// trip). Scales without the DayNumbering capability use the default
// days-plus-fraction formula over the nominal day length; scales with it
// report the fraction against the day's true length instead, so a
// leap-second day divides by 86401 rather than 86400.
func MJDShifted(i Instant, ts Timescale, tzDelta scalar.Scalar) scalar.Scalar {
	t := i.In(ts).since
	if dn, ok := ts.(DayNumbering); ok {
		return dn.ToMJD2000(t, tzDelta).Add(MJDEpochDelta)
	}
	t = t.AddSeconds(tzDelta)
	frac := t.Seconds().DivInt(SecondsPerDay)
	return scalar.New(t.Days()).Add(frac).Add(MJDEpochDelta)
}

// MJD returns the instant's Modified Julian Day number in the given scale.
func MJD(i Instant, ts Timescale) scalar.Scalar {
	return MJDShifted(i, ts, scalar.Scalar{})
}

// JD returns the instant's Julian Day number in the given scale.
func JD(i Instant, ts Timescale) scalar.Scalar {
	return MJD(i, ts).Add(JDEpochDelta)
}
