// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/cockroachdb/apd/v2"
	"github.com/rs/zerolog"

	"github.com/db47h/binary64/context"
	"github.com/db47h/binary64/math"
)

// MinPrec is the smallest working precision, in significant decimal digits,
// accepted by New.
const MinPrec = 100

var (
	decOne  = apd.New(1, 0)
	decHalf = apd.New(5, -1)
	bigTen  = big.NewInt(10)
)

// An Engine expands binary64 bit patterns into decimal strings using a fixed
// working precision and rounding mode.
//
// The same computation run at different precisions can legitimately differ in
// the last digits; an Engine pins both for its lifetime. Engines are immutable
// and safe for concurrent use.
type Engine struct {
	ctx *context.Context
	log zerolog.Logger
}

// An Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets the logger used for debug tracing. The default discards
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) error {
		e.log = l
		return nil
	}
}

// WithRounding sets the rounding mode of the decimal arithmetic. The default
// is context.ToNearestEven.
func WithRounding(mode context.RoundingMode) Option {
	return func(e *Engine) error {
		if mode > context.ToPositiveInf {
			return errorsmod.Wrapf(ErrInvalidRounding, "%v", mode)
		}
		e.ctx.SetMode(mode)
		return nil
	}
}

// New returns an Engine computing with prec significant decimal digits. If
// prec is 0, context.DefaultPrec is used. It returns an error wrapping
// ErrPrecision if prec is below MinPrec or above context.MaxPrec.
func New(prec uint, opts ...Option) (*Engine, error) {
	if prec == 0 {
		prec = context.DefaultPrec
	}
	if prec < MinPrec {
		return nil, errorsmod.Wrapf(ErrPrecision, "%d digits, need at least %d", prec, MinPrec)
	}
	if prec > context.MaxPrec {
		return nil, errorsmod.Wrapf(ErrPrecision, "%d digits exceeds the maximum of %d", prec, context.MaxPrec)
	}
	e := &Engine{
		ctx: context.New(prec, context.ToNearestEven),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.log.Debug().
		Uint("prec", e.ctx.Prec()).
		Stringer("mode", e.ctx.Mode()).
		Msg("engine ready")
	return e, nil
}

// Prec returns the working precision of e in decimal digits.
func (e *Engine) Prec() uint {
	return e.ctx.Prec()
}

// Mode returns the rounding mode of e.
func (e *Engine) Mode() context.RoundingMode {
	return e.ctx.Mode()
}

// Exact is a shorthand for e.DecodeExact(b.Sign, b.Exponent, b.Significand).
func (e *Engine) Exact(b Bits) (ExactDecimal, error) {
	return e.DecodeExact(b.Sign, b.Exponent, b.Significand)
}

// DecodeExact returns the decimal value encoded by the given fields. It
// returns an error wrapping ErrMalformedBits under the same conditions as
// Decode.
//
// Unlike strconv.FormatFloat, which prints the shortest decimal that maps back
// to the same float64, the result is the value of the bits themselves,
// computed with e's precision: the binary64 closest to 0.1 expands to
// 0.1000000000000000055511151231257827021181583404541015625.
//
// NaN, ±Inf and ±0 are returned as tokens, see ExactDecimal.
func (e *Engine) DecodeExact(sign, exponent, significand string) (ExactDecimal, error) {
	u, err := join(sign, exponent, significand)
	if err != nil {
		return ExactDecimal{}, err
	}
	neg := u>>(TotalBits-1) != 0
	exp := u >> SignificandBits & expMask
	class := classify(exp, u&sigMask)

	e.log.Debug().
		Str("sign", sign).
		Str("exponent", exponent).
		Str("significand", significand).
		Stringer("class", class).
		Msg("decode exact")

	switch class {
	case NaN:
		return special(TokenNaN), nil
	case Inf:
		if neg {
			return special(TokenNegInf), nil
		}
		return special(TokenPosInf), nil
	case Zero:
		// handled here so that negating a computed zero never has to
		// preserve the sign
		tok := TokenPosZero
		if neg {
			tok = TokenNegZero
		}
		return ExactDecimal{Value: tok, Token: tok}, nil
	}

	c := e.ctx.Clone()
	t := c.New()

	// fraction = Σ 2**-(i+1) for every set bit i, most significant first
	frac, term := c.New(), c.New().Set(decHalf)
	for i := 0; i < len(significand); i++ {
		if significand[i] == '1' {
			c.Add(frac, t.Set(frac), term)
		}
		c.Mul(term, t.Set(term), decHalf)
	}

	v := c.New()
	if class == Subnormal {
		// 0.fraction × 2**(1-bias)
		c.Mul(v, frac, math.Pow2(c, c.New(), 1-Bias))
	} else {
		// 1.fraction × 2**(e-bias)
		c.Add(frac, t.Set(frac), decOne)
		c.Mul(v, frac, math.Pow2(c, c.New(), int(exp)-Bias))
	}
	if neg {
		c.Neg(v, t.Set(v))
	}
	if err := c.Err(); err != nil {
		e.log.Debug().Err(err).Msg("decimal arithmetic failed")
		return ExactDecimal{}, err
	}

	return ExactDecimal{
		Value:        format(v),
		Denormalized: class == Subnormal,
	}, nil
}

func special(tok string) ExactDecimal {
	return ExactDecimal{Value: tok, Special: true, Token: tok}
}

// format returns x in scientific notation for large or small exponents, plain
// notation otherwise. Trailing zeros after the decimal point are dropped.
func format(x *apd.Decimal) string {
	d := new(apd.Decimal).Set(x)
	if d.Exponent != 0 {
		fractional := d.Exponent < 0
		var q, r big.Int
		for d.Coeff.Sign() != 0 && !(fractional && d.Exponent == 0) {
			q.QuoRem(&d.Coeff, bigTen, &r)
			if r.Sign() != 0 {
				break
			}
			d.Coeff.Set(&q)
			d.Exponent++
		}
	}
	return d.Text('g')
}
