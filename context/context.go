// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides decimal arithmetic contexts for exact binary64
// expansions.
//
// A Context carries a precision in significant decimal digits and a rounding
// mode. Operators that set a receiver z to a function of other decimal
// arguments like:
//
//	func (c *Context) UnaryOp(z, x *apd.Decimal) *apd.Decimal
//	func (c *Context) BinaryOp(z, x, y *apd.Decimal) *apd.Decimal
//
// set z to the result of the operation, rounded using c's precision and
// rounding mode, and return z.
//
// A Context catches errors: if an operation fails, further operations with
// the context are no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// A Context is not safe for concurrent use. Use Clone to hand each goroutine
// its own copy; the precision and rounding mode are carried over, the error
// state is not.
package context

import (
	"fmt"

	"github.com/cockroachdb/apd/v2"
)

// Precision limits, in significant decimal digits.
const (
	DefaultPrec = 100
	MaxPrec     = 1 << 20
)

// RoundingMode determines how a result is rounded to the context precision.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

var modeNames = [...]string{
	ToNearestEven: "ToNearestEven",
	ToNearestAway: "ToNearestAway",
	ToZero:        "ToZero",
	AwayFromZero:  "AwayFromZero",
	ToNegativeInf: "ToNegativeInf",
	ToPositiveInf: "ToPositiveInf",
}

func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", m)
}

// ParseRoundingMode returns the RoundingMode whose String() is s.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m, name := range modeNames {
		if name == s {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// A Context is a wrapper around apd decimals that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec uint32
	mode RoundingMode
	ac   apd.Context
	err  error
}

// New creates a new context with the given precision and rounding mode. If
// prec is 0, it will be set to DefaultPrec.
func New(prec uint, mode RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Clone returns a new context with c's precision and rounding mode and a
// cleared error state.
func (c *Context) Clone() *Context {
	return &Context{prec: c.prec, mode: c.mode, ac: c.ac}
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() RoundingMode {
	return c.mode
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode RoundingMode) *Context {
	c.mode = mode
	c.sync()
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > MaxPrec {
		prec = MaxPrec
	}
	c.prec = uint32(prec)
	c.sync()
	return c
}

func (c *Context) sync() {
	c.ac = *apd.BaseContext.WithPrecision(c.prec)
	switch c.mode {
	case ToNearestEven:
		c.ac.Rounding = apd.RoundHalfEven
	case ToNearestAway:
		c.ac.Rounding = apd.RoundHalfUp
	case ToZero:
		c.ac.Rounding = apd.RoundDown
	case AwayFromZero:
		c.ac.Rounding = apd.RoundUp
	case ToNegativeInf:
		c.ac.Rounding = apd.RoundFloor
	case ToPositiveInf:
		c.ac.Rounding = apd.RoundCeiling
	default:
		panic("unreachable")
	}
}

// New returns a new decimal with value 0.
func (c *Context) New() *apd.Decimal {
	return new(apd.Decimal)
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// SetErr records err as the context error unless an error is already pending.
// Helpers built on top of a Context use it to report failures the same way
// the arithmetic operators do.
func (c *Context) SetErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Context) check(z *apd.Decimal, _ apd.Condition, err error) *apd.Decimal {
	if err != nil {
		c.err = err
	}
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Add(z, x, y)
	return c.check(z, cond, err)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Sub(z, x, y)
	return c.check(z, cond, err)
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Mul(z, x, y)
	return c.check(z, cond, err)
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Quo(z, x, y)
	return c.check(z, cond, err)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Neg(z, x)
	return c.check(z, cond, err)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *apd.Decimal) *apd.Decimal {
	if c.err != nil {
		return z
	}
	cond, err := c.ac.Abs(z, x)
	return c.check(z, cond, err)
}
