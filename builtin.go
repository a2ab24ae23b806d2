package chrono

import "github.com/temporalis/chrono/scalar"

// Built-in scales. All three are fixed-offset variants of TAI: no leap
// seconds, every day exactly 86400 SI seconds. They are immutable and safe
// to share across goroutines.
var (
	// TAI is International Atomic Time, the universal interchange basis.
	TAI = TAIOffset("TAI", Duration{})

	// GPS is Global Positioning System time, which has read 19 seconds
	// behind TAI since its epoch.
	GPS = TAIOffset("GPS", Seconds(-19))

	// TT is Terrestrial Time, 32.184 seconds ahead of TAI.
	TT = TAIOffset("TT", DurationOf(scalar.MustParse("32.184")))
)

// Epoch is the library zero point: 2000-01-01 00:00:00 TAI.
var Epoch = Instant{scale: TAI}

const (
	// gps2000 is the GPS-scale seconds from the GPS epoch (1980-01-06,
	// 7300 days before 2000-01-01) to the library epoch day.
	gps2000 = 7300 * SecondsPerDay

	// tt2000 is the TT-scale seconds from the TT epoch (1977-01-01 TAI,
	// 8400 days before 2000-01-01) to the library epoch day.
	tt2000 = 8400 * SecondsPerDay

	// SecondsPerWeek is the GPS week length. GPS time has no leap
	// seconds, so a week is always exactly 7 nominal days.
	SecondsPerWeek = 7 * SecondsPerDay
)

// GPSTimestamp returns the instant as seconds elapsed since the GPS epoch,
// 1980-01-06.
func GPSTimestamp(i Instant) Duration {
	return i.In(GPS).since.Duration().Add(Seconds(gps2000))
}

// GPSInstant is the inverse of GPSTimestamp: the instant at a given number
// of seconds since the GPS epoch.
func GPSInstant(d Duration) Instant {
	return Instant{since: d.Sub(Seconds(gps2000)).Timestamp(), scale: GPS}
}

// GPSWeeks decomposes the instant into whole GPS weeks since the GPS epoch
// and seconds into the week. The split is euclidean, so seconds are in
// [0, 604800) even before the GPS epoch.
func GPSWeeks(i Instant) (weeks int64, secs scalar.Scalar) {
	return GPSTimestamp(i).Secs().FloorDivInt(SecondsPerWeek)
}

// GPSInstantAt builds the instant at a GPS week/seconds pair.
func GPSInstantAt(weeks int64, secs scalar.Scalar) Instant {
	total := scalar.New(weeks).MulInt(SecondsPerWeek).Add(secs)
	return GPSInstant(DurationOf(total))
}

// TTDuration returns the instant as seconds elapsed since the TT epoch,
// 1977-01-01 TAI.
func TTDuration(i Instant) Duration {
	return i.In(TT).since.Duration().Add(Seconds(tt2000))
}

// TTInstant is the inverse of TTDuration: the instant at a given number of
// seconds since the TT epoch.
func TTInstant(d Duration) Instant {
	return Instant{since: d.Sub(Seconds(tt2000)).Timestamp(), scale: TT}
}
