// Package scalar provides the extended-precision decimal arithmetic that
// backs all time computations in this library.
//
// A Scalar is an immutable decimal number with 34 significant digits and an
// essentially unbounded exponent range. That is enough to carry
// sub-zeptosecond fractions on second counts spanning billions of years
// without accumulating drift, which binary floating point cannot do.
//
// All operations are value-in, value-out: no method mutates its receiver or
// its arguments. Scalars are therefore safe to share across goroutines.
package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Precision is the number of significant decimal digits carried by every
// Scalar operation.
const Precision = 34

// ctx is the shared arithmetic context. Half-even rounding is used so that
// repeated rounding does not bias results in either direction.
var ctx = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(Precision)
	c.Rounding = apd.RoundHalfEven
	return c
}()

// Scalar is an immutable extended-precision decimal value.
//
// The zero value is the number zero and is ready to use.
type Scalar struct {
	d *apd.Decimal
}

var zeroDec = apd.New(0, 0)

// dec returns the underlying decimal, mapping the zero Scalar to 0.
// Callers must never mutate the returned value.
func (s Scalar) dec() *apd.Decimal {
	if s.d == nil {
		return zeroDec
	}
	return s.d
}

// New returns the Scalar for an integer value.
func New(v int64) Scalar {
	return Scalar{d: apd.New(v, 0)}
}

// FromString parses a decimal literal such as "32.184" or "-19".
func FromString(v string) (Scalar, error) {
	d, _, err := apd.NewFromString(v)
	if err != nil {
		return Scalar{}, fmt.Errorf("scalar: parse %q: %w", v, err)
	}
	return Scalar{d: d}, nil
}

// MustParse is FromString for literals known to be valid at compile time.
// It panics on malformed input.
func MustParse(v string) Scalar {
	s, err := FromString(v)
	if err != nil {
		panic(err)
	}
	return s
}

// FromRatio returns num/den evaluated at full precision.
// den must be non-zero.
func FromRatio(num, den int64) Scalar {
	return New(num).DivInt(den)
}

// apply runs op into a fresh decimal and wraps it. Arithmetic on finite
// decimals cannot fail; a reported error therefore indicates a broken
// invariant and panics.
func apply(op func(res *apd.Decimal) (apd.Condition, error)) Scalar {
	res := new(apd.Decimal)
	if _, err := op(res); err != nil {
		panic(fmt.Sprintf("scalar: arithmetic on finite values failed: %v", err))
	}
	return Scalar{d: res}
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		return ctx.Add(res, s.dec(), t.dec())
	})
}

// Sub returns s - t.
func (s Scalar) Sub(t Scalar) Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		return ctx.Sub(res, s.dec(), t.dec())
	})
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	res := new(apd.Decimal)
	res.Neg(s.dec())
	return Scalar{d: res}
}

// Mul returns s * t.
func (s Scalar) Mul(t Scalar) Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		cond, err := ctx.Mul(res, s.dec(), t.dec())
		res.Reduce(res)
		return cond, err
	})
}

// MulInt returns s * v.
func (s Scalar) MulInt(v int64) Scalar {
	return s.Mul(New(v))
}

// Div returns s / t. t must be non-zero.
func (s Scalar) Div(t Scalar) Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		cond, err := ctx.Quo(res, s.dec(), t.dec())
		res.Reduce(res)
		return cond, err
	})
}

// DivInt returns s / v. v must be non-zero.
func (s Scalar) DivInt(v int64) Scalar {
	return s.Div(New(v))
}

// Floor returns the largest integer less than or equal to s.
func (s Scalar) Floor() Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		return ctx.Floor(res, s.dec())
	})
}

// FloorDivInt splits s by a positive modulus m into a euclidean quotient
// and remainder: s = q*m + rem with rem always in [0, m), even when s is
// negative. The quotient must fit in an int64.
func (s Scalar) FloorDivInt(m int64) (q int64, rem Scalar) {
	quot := s.DivInt(m).Floor()
	q, err := quot.Int64()
	if err != nil {
		panic(fmt.Sprintf("scalar: quotient of %s by %d overflows int64", s, m))
	}
	rem = s.Sub(quot.MulInt(m))
	return q, rem
}

// Round rounds s to prec fractional digits using half-even rounding.
// prec must be non-negative.
func (s Scalar) Round(prec int) Scalar {
	return apply(func(res *apd.Decimal) (apd.Condition, error) {
		return ctx.Quantize(res, s.dec(), -int32(prec))
	})
}

// Cmp returns -1, 0 or +1 as s is less than, equal to or greater than t.
// Comparison is numeric: 1.0 and 1 compare equal.
func (s Scalar) Cmp(t Scalar) int {
	return s.dec().Cmp(t.dec())
}

// Sign returns -1, 0 or +1 as s is negative, zero or positive.
func (s Scalar) Sign() int {
	return s.dec().Sign()
}

// IsZero reports whether s is numerically zero.
func (s Scalar) IsZero() bool {
	return s.dec().IsZero()
}

// Int64 returns s as an int64. It fails if s has a fractional part or does
// not fit.
func (s Scalar) Int64() (int64, error) {
	v, err := s.dec().Int64()
	if err != nil {
		return 0, fmt.Errorf("scalar: %s is not an int64: %w", s, err)
	}
	return v, nil
}

// String renders s in plain decimal notation without an exponent.
func (s Scalar) String() string {
	return s.dec().Text('f')
}
