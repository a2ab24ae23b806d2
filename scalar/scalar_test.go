package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndString(t *testing.T) {
	assert.Equal(t, "0", Scalar{}.String(), "zero value renders as 0")
	assert.Equal(t, "42", New(42).String())
	assert.Equal(t, "-19", New(-19).String())
}

func TestFromString(t *testing.T) {
	s, err := FromString("32.184")
	require.NoError(t, err)
	assert.Equal(t, "32.184", s.String())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestMustParsePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustParse("xyz") })
}

func TestArithmetic(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.25")

	assert.Equal(t, "3.75", a.Add(b).String())
	assert.Equal(t, "-0.75", a.Sub(b).String())
	assert.Equal(t, "-1.5", a.Neg().String())
	assert.Equal(t, "3.375", a.Mul(b).String())
	assert.Equal(t, "4.5", a.MulInt(3).String())
	assert.Equal(t, "0.75", a.DivInt(2).String())
}

func TestArithmeticDoesNotMutate(t *testing.T) {
	a := MustParse("1.5")
	_ = a.Add(New(10))
	_ = a.Neg()
	assert.Equal(t, "1.5", a.String(), "operands must never be mutated")
}

func TestFromRatio(t *testing.T) {
	assert.Equal(t, "0.5", FromRatio(1, 2).String())
	assert.Equal(t, "-0.25", FromRatio(-1, 4).String())
}

func TestFloor(t *testing.T) {
	assert.Equal(t, "2", MustParse("2.9").Floor().String())
	assert.Equal(t, "-3", MustParse("-2.1").Floor().String(), "floor moves toward negative infinity")
	assert.Equal(t, "5", New(5).Floor().String())
}

func TestFloorDivIntEuclidean(t *testing.T) {
	tests := []struct {
		name  string
		value string
		mod   int64
		wantQ int64
		wantR string
	}{
		{"positive", "100.5", 7, 14, "2.5"},
		{"exact", "86400", 86400, 1, "0"},
		{"negative value", "-0.5", 86400, -1, "86399.5"},
		{"negative whole days", "-86400", 86400, -1, "0"},
		{"just below zero", "-1", 86400, -1, "86399"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := MustParse(tt.value).FloorDivInt(tt.mod)
			assert.Equal(t, tt.wantQ, q)
			assert.Equal(t, tt.wantR, r.String(), "remainder must be in [0, mod)")
		})
	}
}

func TestRoundHalfEven(t *testing.T) {
	tests := []struct {
		value string
		prec  int
		want  string
	}{
		{"36.5", 0, "36"},   // ties go to even
		{"37.5", 0, "38"},   // ties go to even
		{"36.4", 0, "36"},
		{"36.6", 0, "37"},
		{"0.125", 2, "0.12"},
		{"0.135", 2, "0.14"},
		{"-36.5", 0, "-36"},
	}
	for _, tt := range tests {
		got := MustParse(tt.value).Round(tt.prec)
		assert.Equal(t, tt.want, got.String(), "round(%s, %d)", tt.value, tt.prec)
	}
}

func TestCmpIsNumeric(t *testing.T) {
	assert.Equal(t, 0, MustParse("1.0").Cmp(New(1)), "trailing zeros are not significant")
	assert.Equal(t, -1, New(1).Cmp(New(2)))
	assert.Equal(t, 1, New(2).Cmp(New(1)))
}

func TestSignAndIsZero(t *testing.T) {
	assert.Equal(t, 0, Scalar{}.Sign())
	assert.True(t, Scalar{}.IsZero())
	assert.Equal(t, 1, New(3).Sign())
	assert.Equal(t, -1, New(-3).Sign())
	assert.False(t, New(3).IsZero())
}

func TestInt64(t *testing.T) {
	v, err := New(12345).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), v)

	_, err = MustParse("1.5").Int64()
	assert.Error(t, err, "fractional values do not convert")
}

func TestPrecisionSurvivesLargeMagnitudes(t *testing.T) {
	// A zeptosecond fraction on a multi-billion-year second count must not
	// be absorbed. 10^17 seconds is ~3.2 billion years.
	big := MustParse("100000000000000000")
	tiny := MustParse("0.000000000000001")
	sum := big.Add(tiny)

	assert.Equal(t, "100000000000000000.000000000000001", sum.String())
	assert.Equal(t, "0.000000000000001", sum.Sub(big).String())
}
