package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalis/chrono/scalar"
)

func TestNewTimestampNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		days     int64
		secs     string
		wantDays int64
		wantSecs string
	}{
		{"in range", 5, "100.5", 5, "100.5"},
		{"exact day", 5, "86400", 6, "0"},
		{"overflow", 5, "90000", 6, "3600"},
		{"negative seconds", 5, "-1", 4, "86399"},
		{"multi-day overflow", 0, "259200.25", 3, "0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTimestamp(tt.days, scalar.MustParse(tt.secs))
			assert.Equal(t, tt.wantDays, ts.Days())
			assert.Equal(t, tt.wantSecs, ts.Seconds().String())
		})
	}
}

func TestRawTimestampKeepsLeapSeconds(t *testing.T) {
	ts := RawTimestamp(6209, scalar.MustParse("86400.5"))
	assert.Equal(t, int64(6209), ts.Days(), "raw construction must not fold the inserted second")
	assert.Equal(t, "86400.5", ts.Seconds().String())
}

func TestTimestampAddDays(t *testing.T) {
	ts := NewTimestamp(10, scalar.MustParse("42.5"))
	shifted := ts.AddDays(-3)
	assert.Equal(t, int64(7), shifted.Days())
	assert.Equal(t, "42.5", shifted.Seconds().String(), "seconds untouched")
}

func TestTimestampAddSeconds(t *testing.T) {
	ts := NewTimestamp(0, scalar.New(86000))
	shifted := ts.AddSeconds(scalar.New(500))
	assert.Equal(t, int64(1), shifted.Days())
	assert.Equal(t, "100", shifted.Seconds().String())
}

func TestTimestampRound(t *testing.T) {
	ts := NewTimestamp(3, scalar.MustParse("12.3456"))
	assert.Equal(t, "12.35", ts.Round(2).Seconds().String())
	assert.Equal(t, "12", ts.Round(0).Seconds().String())

	// Negative precision is a no-op.
	same := ts.Round(-1)
	assert.Equal(t, 0, ts.Cmp(same))
}

func TestTimestampRoundCarriesIntoNextDay(t *testing.T) {
	ts := NewTimestamp(3, scalar.MustParse("86399.7"))
	rounded := ts.Round(0)
	assert.Equal(t, int64(4), rounded.Days())
	assert.Equal(t, "0", rounded.Seconds().String())
}

func TestTimestampCmp(t *testing.T) {
	a := NewTimestamp(1, scalar.New(100))
	b := NewTimestamp(1, scalar.New(200))
	c := NewTimestamp(2, scalar.New(0))

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, -1, b.Cmp(c), "day ordering dominates")

	// A position inside an inserted second sorts before the next day.
	leap := RawTimestamp(1, scalar.MustParse("86400.5"))
	assert.Equal(t, -1, leap.Cmp(c))
	assert.Equal(t, 1, leap.Cmp(b))
}

func TestTimestampSub(t *testing.T) {
	a := NewTimestamp(2, scalar.MustParse("10.5"))
	b := NewTimestamp(1, scalar.New(86390))
	assert.Equal(t, "20.5", a.Sub(b).String())
	assert.Equal(t, "-20.5", b.Sub(a).String())
}

func TestTimestampDurationRoundTrip(t *testing.T) {
	tests := []string{"0", "1.25", "-1.25", "86400", "-86400", "123456789.000000001"}
	for _, raw := range tests {
		d := DurationOf(scalar.MustParse(raw))
		back := d.Timestamp().Duration()
		assert.Equal(t, 0, d.Cmp(back), "round trip of %s", raw)
	}
}

func TestDurationTimestampIsEuclidean(t *testing.T) {
	d := DurationOf(scalar.MustParse("-0.5"))
	ts := d.Timestamp()
	assert.Equal(t, int64(-1), ts.Days())
	assert.Equal(t, "86399.5", ts.Seconds().String())
}

func TestDurationArithmetic(t *testing.T) {
	a := Seconds(100)
	b := DurationOf(scalar.MustParse("0.5"))

	assert.Equal(t, "100.5 s", a.Add(b).String())
	assert.Equal(t, "99.5 s", a.Sub(b).String())
	assert.Equal(t, "-100 s", a.Neg().String())
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, Duration{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDurationString(t *testing.T) {
	require.Equal(t, "0 s", Duration{}.String())
	require.Equal(t, "-19 s", Seconds(-19).String())
}
