package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysFromCivil(t *testing.T) {
	tests := []struct {
		year  int64
		month int
		day   int
		want  int64
	}{
		{2000, 1, 1, 0},
		{2000, 1, 2, 1},
		{2000, 3, 1, 60}, // 2000 is a leap year
		{2001, 1, 1, 366},
		{2016, 12, 31, 6209},
		{2017, 1, 1, 6210},
		{1999, 1, 1, -365},
		{1980, 1, 6, -7300},  // GPS epoch
		{1977, 1, 1, -8400},  // TT epoch
		{1970, 1, 1, -10957}, // Unix epoch
		{1972, 7, 1, -10045}, // first leap second
		{1858, 11, 17, -51544}, // MJD epoch
	}
	for _, tt := range tests {
		got := DaysFromCivil(tt.year, tt.month, tt.day)
		assert.Equal(t, tt.want, got, "%04d-%02d-%02d", tt.year, tt.month, tt.day)
	}
}

func TestCivilFromDaysRoundTrip(t *testing.T) {
	for _, days := range []int64{0, 1, 59, 60, 365, 366, 6209, 6210, -1, -365, -7300, -8400, -51544, 146097, -146097} {
		y, m, d := CivilFromDays(days)
		assert.Equal(t, days, DaysFromCivil(y, m, d), "round trip of day %d (%04d-%02d-%02d)", days, y, m, d)
	}
}

func TestCivilFromDaysKnownDates(t *testing.T) {
	y, m, d := CivilFromDays(0)
	assert.Equal(t, [3]int64{2000, 1, 1}, [3]int64{y, int64(m), int64(d)})

	y, m, d = CivilFromDays(6210)
	assert.Equal(t, [3]int64{2017, 1, 1}, [3]int64{y, int64(m), int64(d)})

	y, m, d = CivilFromDays(-7300)
	assert.Equal(t, [3]int64{1980, 1, 6}, [3]int64{y, int64(m), int64(d)})
}
