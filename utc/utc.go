// Package utc implements a Coordinated Universal Time scale with leap
// seconds.
//
// A Scale is driven entirely by a Table of leap-second events handed to it
// at construction; the package never loads or refreshes tables itself.
// Default returns a scale carrying the published IERS table from 1972
// through the 2017 leap second.
//
// Timestamps on a UTC scale follow the UTC calendar: days since 2000-01-01
// plus seconds into the day, where a day ending in an inserted second runs
// to 86401 and positions inside that second carry seconds in
// [86400, 86401). All UTC-family scales share this encoding, which is what
// makes the family-level conversion short-circuit in chrono.Convert sound.
package utc

import (
	"sort"

	"github.com/temporalis/chrono"
	"github.com/temporalis/chrono/scalar"
)

// baseOffset is TAI-UTC at the start of 1972, when UTC began counting
// whole leap seconds. The table's first entry supersedes it. Dates before
// 1972 used rate adjustments instead of leap seconds; this scale applies
// the base offset there and makes no further claim.
const baseOffset = 10

// Entry records one leap-second event: from Day (days since 2000-01-01)
// onward, TAI-UTC equals Offset seconds.
type Entry struct {
	Day    int64
	Offset int64
}

// Table is a set of leap-second events. Order does not matter; New sorts.
type Table []Entry

// Scale is a leap-second UTC timescale. It implements chrono.Timescale
// plus the DayLengths and DayNumbering capabilities.
type Scale struct {
	name  string
	table Table
	// starts[k] is the TAI second count at which table[k] takes effect.
	starts []scalar.Scalar
}

var (
	_ chrono.Timescale    = (*Scale)(nil)
	_ chrono.DayLengths   = (*Scale)(nil)
	_ chrono.DayNumbering = (*Scale)(nil)
)

// New builds a UTC-family scale from a leap-second table. The table is
// copied; later changes to the caller's slice do not affect the scale.
func New(name string, table Table) *Scale {
	t := make(Table, len(table))
	copy(t, table)
	sort.Slice(t, func(i, j int) bool { return t[i].Day < t[j].Day })

	starts := make([]scalar.Scalar, len(t))
	for k, e := range t {
		starts[k] = scalar.New(e.Day).MulInt(chrono.SecondsPerDay).Add(scalar.New(e.Offset))
	}
	return &Scale{name: name, table: t, starts: starts}
}

// Default returns the standard UTC scale with the bundled IERS table.
func Default() *Scale {
	return New("UTC", DefaultTable())
}

// Name implements chrono.Timescale.
func (s *Scale) Name() string { return s.name }

// Unit implements chrono.Timescale. All scales built by this package are
// members of the UTC family.
func (s *Scale) Unit() string { return chrono.UnitUTC }

// offsetAt returns TAI-UTC for a given UTC day.
func (s *Scale) offsetAt(day int64) int64 {
	k := sort.Search(len(s.table), func(i int) bool { return s.table[i].Day > day }) - 1
	if k < 0 {
		return baseOffset
	}
	return s.table[k].Offset
}

// dayLength returns the true length of a UTC day in SI seconds.
func (s *Scale) dayLength(day int64) scalar.Scalar {
	return scalar.New(chrono.SecondsPerDay + s.offsetAt(day+1) - s.offsetAt(day))
}

// FromTAI implements chrono.Timescale.
//
// Between leap events UTC ticks SI seconds at a constant offset from TAI,
// so the conversion subtracts the regime's offset and splits by nominal
// days. A result that lands on or past the next regime's first day while
// TAI has not reached that regime yet is inside the inserted second; it is
// folded back onto the closing day with seconds at or above 86400.
func (s *Scale) FromTAI(d chrono.Duration) chrono.Timestamp {
	sec := d.Secs()
	k := sort.Search(len(s.starts), func(i int) bool { return sec.Cmp(s.starts[i]) < 0 }) - 1
	offset := int64(baseOffset)
	if k >= 0 {
		offset = s.table[k].Offset
	}
	u := sec.Sub(scalar.New(offset))
	day, secs := u.FloorDivInt(chrono.SecondsPerDay)
	if k+1 < len(s.table) && day >= s.table[k+1].Day {
		last := s.table[k+1].Day - 1
		day = last
		secs = u.Sub(scalar.New(last).MulInt(chrono.SecondsPerDay))
	}
	return chrono.RawTimestamp(day, secs)
}

// ToTAI implements chrono.Timescale. The offset in force on the
// timestamp's day applies through any trailing inserted second, which
// keeps the mapping continuous across the leap.
func (s *Scale) ToTAI(t chrono.Timestamp) chrono.Duration {
	total := scalar.New(t.Days()).
		MulInt(chrono.SecondsPerDay).
		Add(t.Seconds()).
		Add(scalar.New(s.offsetAt(t.Days())))
	return chrono.DurationOf(total)
}

// SecondsInDay implements chrono.DayLengths.
func (s *Scale) SecondsInDay(t chrono.Timestamp) scalar.Scalar {
	return s.dayLength(t.Days())
}

// ToMJD2000 implements chrono.DayNumbering. The day fraction is measured
// against the day's true length, so 23:59:60 on a leap day maps inside the
// day rather than onto the next one.
func (s *Scale) ToMJD2000(t chrono.Timestamp, tzDelta scalar.Scalar) scalar.Scalar {
	day, secs := t.Days(), t.Seconds()
	if !tzDelta.IsZero() {
		secs = secs.Add(tzDelta)
		for secs.Sign() < 0 {
			day--
			secs = secs.Add(s.dayLength(day))
		}
		for secs.Cmp(s.dayLength(day)) >= 0 {
			secs = secs.Sub(s.dayLength(day))
			day++
		}
	}
	return scalar.New(day).Add(secs.Div(s.dayLength(day)))
}

// FromMJD2000 implements chrono.DayNumbering.
func (s *Scale) FromMJD2000(mjd scalar.Scalar) chrono.Timestamp {
	day, frac := mjd.FloorDivInt(1)
	return chrono.RawTimestamp(day, frac.Mul(s.dayLength(day)))
}
