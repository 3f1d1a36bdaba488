// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"math"
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"fortio.org/safecast"
)

var (
	bigOne  = big.NewInt(1)
	bigHalf = new(big.Float).SetFloat64(0.5)
)

// FractionToBits returns the width-bit binary string of round(f × 2**width),
// rounding halves up. f is clamped to [0, 1) first: NaN and negative values
// map to all zeros and values ≥ 1 to all ones. It returns "" if width ≤ 0.
//
//	FractionToBits(0.5, 4)  // "1000"
//	FractionToBits(0.75, 2) // "11"
//	FractionToBits(1, 3)    // "111"
func FractionToBits(f float64, width int) string {
	w, err := safecast.Conv[uint](width)
	if err != nil || w == 0 {
		return ""
	}
	switch {
	case math.IsNaN(f) || f < 0:
		f = 0
	case f >= 1:
		f = math.Nextafter(1, 0)
	}

	// f × 2**width is exact; adding ½ then truncating is round-half-up. With
	// round-down, the sum cannot cross an integer it does not reach.
	x := new(big.Float).SetPrec(w + 64).SetMode(big.ToNegativeInf).SetFloat64(f)
	x.SetMantExp(x, width)
	x.Add(x, bigHalf)
	n, _ := x.Int(nil)

	top := new(big.Int).Lsh(bigOne, w)
	top.Sub(top, bigOne)
	if n.Cmp(top) > 0 {
		n = top
	}

	s := n.Text(2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// BitsToFraction is like ParseFraction but returns 0 for invalid input.
func BitsToFraction(bits string) float64 {
	f, err := ParseFraction(bits)
	if err != nil {
		return 0
	}
	return f
}

// ParseFraction returns the value of the binary string bits as a fraction
// in [0, 1): bits/2**len(bits), rounded to the nearest float64. It returns an
// error wrapping ErrMalformedBits if bits is empty or contains anything but
// '0' and '1'.
func ParseFraction(bits string) (float64, error) {
	if bits == "" {
		return 0, errorsmod.Wrap(ErrMalformedBits, "fraction: empty")
	}
	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			return 0, errorsmod.Wrapf(ErrMalformedBits, "fraction: invalid character %q at position %d", c, i)
		}
	}
	n, _ := new(big.Int).SetString(bits, 2)
	x := new(big.Float).SetInt(n)
	x.SetMantExp(x, -len(bits))
	f, _ := x.Float64()
	return f, nil
}
