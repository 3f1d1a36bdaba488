// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"math"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

var (
	allOnesExp  = strings.Repeat("1", ExponentBits)
	allZerosExp = strings.Repeat("0", ExponentBits)
	allZerosSig = strings.Repeat("0", SignificandBits)
	quietNaNSig = "1" + strings.Repeat("0", SignificandBits-1)
)

// Bits is the textual sign/exponent/significand split of a binary64 value.
// Each field holds its bits most significant first, as '0' and '1'
// characters.
//
// A Bits value returned by this package is either fully populated, with
// fields of exactly SignBits, ExponentBits and SignificandBits characters, or
// is the empty value Bits{} which stands for "no input yet".
type Bits struct {
	Sign        string
	Exponent    string
	Significand string

	// Special is set for NaN and ±Inf.
	Special bool

	// Interpreted is the canonical rendering of the encoded number: one of
	// the Token constants, or the shortest decimal that round-trips.
	Interpreted string
}

// Encode parses s the way a lenient parse-float would and returns the bits of
// the resulting binary64 value.
//
// Leading white space is skipped, then the longest prefix of the form
//
//	[ sign ] ( "Infinity" | digits [ "." [ digits ] ] [ exponent ] | "." digits [ exponent ] )
//
// is converted with round-to-nearest-even. Trailing garbage is ignored. If no
// such prefix exists, the result is the canonical quiet NaN. Decimal values
// too large in magnitude encode as ±Inf. Hexadecimal notation is not
// recognized.
//
// A blank s (empty or white space only) returns the empty Bits{}.
func Encode(s string) Bits {
	if strings.TrimSpace(s) == "" {
		return Bits{}
	}
	return EncodeFloat64(scanFloat(s))
}

// EncodeFloat64 returns the bits of f. All NaNs encode as the canonical quiet
// NaN with a cleared sign bit.
func EncodeFloat64(f float64) Bits {
	switch {
	case math.IsNaN(f):
		return Bits{
			Sign:        "0",
			Exponent:    allOnesExp,
			Significand: quietNaNSig,
			Special:     true,
			Interpreted: TokenNaN,
		}
	case math.IsInf(f, 0):
		b := Bits{
			Sign:        "0",
			Exponent:    allOnesExp,
			Significand: allZerosSig,
			Special:     true,
			Interpreted: TokenPosInf,
		}
		if f < 0 {
			b.Sign, b.Interpreted = "1", TokenNegInf
		}
		return b
	case f == 0:
		b := Bits{
			Sign:        "0",
			Exponent:    allZerosExp,
			Significand: allZerosSig,
			Interpreted: TokenPosZero,
		}
		if math.Signbit(f) {
			b.Sign, b.Interpreted = "1", TokenNegZero
		}
		return b
	}
	return FromUint64(math.Float64bits(f))
}

// FromUint64 returns the field split of the raw IEEE-754 bit pattern u. Unlike
// EncodeFloat64, NaN payloads and signs are preserved.
func FromUint64(u uint64) Bits {
	exp := u >> SignificandBits & expMask
	sig := u & sigMask
	return Bits{
		Sign:        formatBits(u>>(TotalBits-1), SignBits),
		Exponent:    formatBits(exp, ExponentBits),
		Significand: formatBits(sig, SignificandBits),
		Special:     exp == expMask,
		Interpreted: interpret(math.Float64frombits(u)),
	}
}

// Decode returns the float64 denoted by the given fields. It returns an error
// wrapping ErrMalformedBits if a field does not have the expected width or
// contains anything other than '0' and '1'.
//
// The result goes through the native float64 type and only serves as a
// cross-check; see Engine.DecodeExact for the exact value.
func Decode(sign, exponent, significand string) (float64, error) {
	u, err := join(sign, exponent, significand)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// Empty reports whether b is the "no input yet" value.
func (b Bits) Empty() bool {
	return b.Sign == "" && b.Exponent == "" && b.Significand == ""
}

// Uint64 returns the raw IEEE-754 bit pattern of b.
func (b Bits) Uint64() (uint64, error) {
	return join(b.Sign, b.Exponent, b.Significand)
}

// Float64 is a shorthand for Decode(b.Sign, b.Exponent, b.Significand).
func (b Bits) Float64() (float64, error) {
	return Decode(b.Sign, b.Exponent, b.Significand)
}

// Class returns the class of the value encoded by b.
func (b Bits) Class() (Class, error) {
	u, err := b.Uint64()
	if err != nil {
		return Zero, err
	}
	return classify(u>>SignificandBits&expMask, u&sigMask), nil
}

// String returns the three fields separated by a single space, or an empty
// string for the empty Bits.
func (b Bits) String() string {
	if b.Empty() {
		return ""
	}
	return b.Sign + " " + b.Exponent + " " + b.Significand
}

func join(sign, exponent, significand string) (uint64, error) {
	s, err := parseField("sign", sign, SignBits)
	if err != nil {
		return 0, err
	}
	e, err := parseField("exponent", exponent, ExponentBits)
	if err != nil {
		return 0, err
	}
	m, err := parseField("significand", significand, SignificandBits)
	if err != nil {
		return 0, err
	}
	return s<<(TotalBits-1) | e<<SignificandBits | m, nil
}

func parseField(name, s string, width int) (uint64, error) {
	if len(s) != width {
		return 0, errorsmod.Wrapf(ErrMalformedBits, "%s: want %d bits, got %d", name, width, len(s))
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '0', '1':
			v = v<<1 | uint64(c-'0')
		default:
			return 0, errorsmod.Wrapf(ErrMalformedBits, "%s: invalid character %q at position %d", name, c, i)
		}
	}
	return v, nil
}

func formatBits(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func interpret(f float64) string {
	switch {
	case math.IsNaN(f):
		return TokenNaN
	case math.IsInf(f, 1):
		return TokenPosInf
	case math.IsInf(f, -1):
		return TokenNegInf
	case f == 0:
		if math.Signbit(f) {
			return TokenNegZero
		}
		return TokenPosZero
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
