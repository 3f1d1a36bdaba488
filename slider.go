// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file maps between bit fields and the numeric controls of an
// interactive editor: an integer biased exponent and a significand fraction
// in [0, 1).

package binary64

import (
	errorsmod "cosmossdk.io/errors"
)

// ExponentToBits returns the 11-bit field for the biased exponent v. It
// returns an error wrapping ErrMalformedBits if v is outside [0,
// MaxExponent].
func ExponentToBits(v int) (string, error) {
	if v < 0 || v > MaxExponent {
		return "", errorsmod.Wrapf(ErrMalformedBits, "exponent %d out of range [0, %d]", v, MaxExponent)
	}
	return formatBits(uint64(v), ExponentBits), nil
}

// ComposeBits builds a value from a sign field, a biased exponent and a
// significand fraction (see FractionToBits). With the maximum exponent, a
// zero fraction yields ±Inf and any other fraction the quiet NaN with the
// given sign.
func ComposeBits(sign string, exponent int, fraction float64) (Bits, error) {
	exp, err := ExponentToBits(exponent)
	if err != nil {
		return Bits{}, err
	}
	u, err := join(sign, exp, FractionToBits(fraction, SignificandBits))
	if err != nil {
		return Bits{}, err
	}
	if exponent == MaxExponent {
		u &^= sigMask
		if fraction != 0 {
			u |= quietBit
		}
	}
	return FromUint64(u), nil
}

// SliderValues returns the biased exponent and the significand fraction of
// b. NaN reports a fraction of 0.5 and ±Inf a fraction of 0, matching what
// ComposeBits expects to rebuild them.
func SliderValues(b Bits) (exponent int, fraction float64, err error) {
	u, err := b.Uint64()
	if err != nil {
		return 0, 0, err
	}
	exponent = int(u >> SignificandBits & expMask)
	switch classify(uint64(exponent), u&sigMask) {
	case NaN:
		return exponent, 0.5, nil
	case Inf:
		return exponent, 0, nil
	}
	return exponent, BitsToFraction(b.Significand), nil
}
