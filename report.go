// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"errors"

	"github.com/db47h/binary64/rational"
)

// UndefinedRatio is displayed in place of the relative error when the nearest
// binary64 value is zero.
const UndefinedRatio = "undefined (division by zero)"

// A Report describes how a decimal input is stored as a binary64 value.
type Report struct {
	Input string

	Bits  Bits
	Exact ExactDecimal

	// Approx is the float64 nearest to Input.
	Approx float64

	// Intended is the exact value of Input and Nearest the exact value of
	// Approx. Error is Intended-Nearest and Ratio is Error/Nearest, both
	// reduced.
	Intended rational.Rat
	Nearest  rational.Rat
	Error    rational.Rat
	Ratio    rational.Rat

	// RatioUndefined is set if Nearest is zero. Ratio is then meaningless.
	RatioUndefined bool

	// RationalErr is set if Input or Approx have no rational value, for
	// example "NaN" or "1e400". The rational fields are then zero.
	RationalErr error
}

// Empty reports whether r was produced from a blank input.
func (r *Report) Empty() bool {
	return r.Bits.Empty()
}

// RatioText returns r.Ratio as "num/den", or UndefinedRatio.
func (r *Report) RatioText() string {
	if r.RatioUndefined {
		return UndefinedRatio
	}
	return r.Ratio.String()
}

// Analyze encodes input, expands the stored value exactly and measures the
// conversion error against the rational value of input.
//
// A blank input yields an empty report. Inputs without a rational value yield
// a report with RationalErr set; this is not an error. The returned error is
// only set if the decimal expansion fails.
func (e *Engine) Analyze(input string) (*Report, error) {
	r := &Report{
		Input: input,
		Bits:  Encode(input),
	}
	if r.Bits.Empty() {
		return r, nil
	}

	var err error
	if r.Exact, err = e.Exact(r.Bits); err != nil {
		return nil, err
	}
	if r.Approx, err = r.Bits.Float64(); err != nil {
		return nil, err
	}

	if r.Intended, r.RationalErr = rational.Parse(input); r.RationalErr != nil {
		e.log.Debug().Err(r.RationalErr).Str("input", input).Msg("no rational value")
		return r, nil
	}
	if r.Nearest, r.RationalErr = rational.FromFloat64(r.Approx); r.RationalErr != nil {
		e.log.Debug().Err(r.RationalErr).Str("input", input).Msg("no rational value")
		r.Intended = rational.Rat{}
		return r, nil
	}

	diff := r.Intended.Sub(r.Nearest)
	r.Error = diff.Reduce()
	ratio, err := diff.Quo(r.Nearest)
	switch {
	case errors.Is(err, rational.ErrDivisionByZero):
		r.RatioUndefined = true
	case err != nil:
		return nil, err
	default:
		r.Ratio = ratio.Reduce()
	}

	e.log.Debug().
		Str("input", input).
		Stringer("error", r.Error).
		Str("ratio", r.RatioText()).
		Msg("analyze")
	return r, nil
}
