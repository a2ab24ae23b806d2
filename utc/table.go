package utc

import "github.com/temporalis/chrono"

// leapDates lists every IERS leap-second event since 1972 as the calendar
// date the new offset took effect and the resulting TAI-UTC.
var leapDates = []struct {
	year   int64
	month  int
	offset int64
}{
	{1972, 7, 11},
	{1973, 1, 12},
	{1974, 1, 13},
	{1975, 1, 14},
	{1976, 1, 15},
	{1977, 1, 16},
	{1978, 1, 17},
	{1979, 1, 18},
	{1980, 1, 19},
	{1981, 7, 20},
	{1982, 7, 21},
	{1983, 7, 22},
	{1985, 7, 23},
	{1988, 1, 24},
	{1990, 1, 25},
	{1991, 1, 26},
	{1992, 7, 27},
	{1993, 7, 28},
	{1994, 7, 29},
	{1996, 1, 30},
	{1997, 7, 31},
	{1999, 1, 32},
	{2006, 1, 33},
	{2009, 1, 34},
	{2012, 7, 35},
	{2015, 7, 36},
	{2017, 1, 37},
}

// DefaultTable returns a fresh copy of the bundled IERS leap-second table,
// covering 1972 through the leap second at the end of 2016.
func DefaultTable() Table {
	t := make(Table, len(leapDates))
	for i, e := range leapDates {
		t[i] = Entry{
			Day:    chrono.DaysFromCivil(e.year, e.month, 1),
			Offset: e.offset,
		}
	}
	return t
}
