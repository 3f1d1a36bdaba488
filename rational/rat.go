// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rational implements exact rational numbers for measuring binary64
// rounding error.
//
// A Rat is an immutable numerator/denominator pair of arbitrary-precision
// integers. Unlike math/big.Rat, it is not normalized on construction or by
// arithmetic: Sub and Quo return the plain cross-multiplied fraction and
// callers ask for the canonical form with Reduce.
//
//	a, _ := rational.Parse("0.75")  // 3/4
//	b, _ := rational.Parse("0.5")   // 1/2
//	d := a.Sub(b)                   // 2/8
//	r, _ := d.Quo(b)                // 4/8
//	r = r.Reduce()                  // 1/2
//
// Parse reads decimal and scientific notation and always returns reduced
// values.
package rational

import (
	"math"
	"math/big"

	errorsmod "cosmossdk.io/errors"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// A Rat is a fraction num/den with den != 0. The zero value is 0/1.
//
// Values are never modified after construction; methods return new Rats.
type Rat struct {
	num, den *big.Int
}

// New returns num/den as given, without reducing it. It returns an error
// wrapping ErrZeroDenominator if den is zero.
func New(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, errorsmod.Wrapf(ErrZeroDenominator, "%s/0", num)
	}
	return Rat{new(big.Int).Set(num), new(big.Int).Set(den)}, nil
}

// NewInt64 is like New for int64 arguments.
func NewInt64(num, den int64) (Rat, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromFloat64 returns the exact value of f in reduced form. It returns an
// error wrapping ErrNotFinite for NaN and ±Inf.
func FromFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, errorsmod.Wrapf(ErrNotFinite, "%v", f)
	}
	r := new(big.Rat).SetFloat64(f)
	return Rat{new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom())}, nil
}

func (x Rat) n() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

func (x Rat) d() *big.Int {
	if x.den == nil {
		return bigOne
	}
	return x.den
}

// Num returns a copy of the numerator of x. It may be negative.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.n())
}

// Denom returns a copy of the denominator of x. It is positive unless x was
// created with New and a negative denominator.
func (x Rat) Denom() *big.Int {
	return new(big.Int).Set(x.d())
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Rat) Sign() int {
	return x.n().Sign() * x.d().Sign()
}

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool {
	return x.n().Sign() == 0
}

// IsReduced reports whether x is in canonical form: positive denominator and
// numerator and denominator coprime.
func (x Rat) IsReduced() bool {
	if x.d().Sign() < 0 {
		return false
	}
	var g big.Int
	return g.GCD(nil, nil, x.n(), x.d()).Cmp(bigOne) == 0
}

// Sub returns x-y, cross-multiplied and not reduced.
func (x Rat) Sub(y Rat) Rat {
	var ad, cb big.Int
	ad.Mul(x.n(), y.d())
	cb.Mul(y.n(), x.d())
	return Rat{
		num: new(big.Int).Sub(&ad, &cb),
		den: new(big.Int).Mul(x.d(), y.d()),
	}
}

// Quo returns x/y, cross-multiplied and not reduced. A negative divisor moves
// its sign to the numerator so that the denominator stays positive when both
// inputs have positive denominators. Quo returns an error wrapping
// ErrDivisionByZero if y == 0.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, errorsmod.Wrapf(ErrDivisionByZero, "%s / %s", x, y)
	}
	num := new(big.Int).Mul(x.n(), y.d())
	den := new(big.Int).Mul(x.d(), y.n())
	if y.n().Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return Rat{num, den}, nil
}

// Reduce returns x in canonical form: the common sign on the numerator, a
// positive denominator and the greatest common divisor divided out. Reduce is
// idempotent.
func (x Rat) Reduce() Rat {
	num := new(big.Int).Set(x.n())
	den := new(big.Int).Set(x.d())
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rat{num, den.SetInt64(1)}
	}
	var g big.Int
	g.GCD(nil, nil, num, den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, &g)
		den.Quo(den, &g)
	}
	return Rat{num, den}
}

// Rat returns x as a new math/big.Rat (which is always reduced).
func (x Rat) Rat() *big.Rat {
	return new(big.Rat).SetFrac(x.n(), x.d())
}

// Cmp compares the values of x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int {
	return x.Rat().Cmp(y.Rat())
}

// Equal reports whether x and y denote the same value, reduced or not.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// Float64 returns the float64 nearest to x and whether it is exact.
func (x Rat) Float64() (f float64, exact bool) {
	return x.Rat().Float64()
}

// FloatString returns x in decimal form with prec digits after the decimal
// point, the last digit rounded to nearest with halves rounded away from
// zero.
func (x Rat) FloatString(prec int) string {
	return x.Rat().FloatString(prec)
}

// String returns x as "num/den", exactly as stored.
func (x Rat) String() string {
	b := x.n().Append(nil, 10)
	b = append(b, '/')
	b = x.d().Append(b, 10)
	return string(b)
}
