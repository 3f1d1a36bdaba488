// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"errors"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// maxScientificPlaces caps the number of decimal places used when expanding
// scientific notation.
const maxScientificPlaces = 20

// Parse returns the reduced rational value of s, which is either a decimal
// number with an optional leading '-' and at most one '.', or anything
// containing 'e' or 'E', read as scientific notation. Surrounding white space
// is ignored.
//
// Decimal input is converted exactly: "0.1" is 1/10. Scientific input is
// first read as a float64 and printed with as many decimal places as the
// literal implies, capped at 20, then converted like decimal input.
// "1.23e-2" is 123/10000.
//
// Errors wrap one of ErrEmptyInput, ErrInvalidFormat, ErrInvalidDecimalPart,
// ErrInvalidIntegerPart or ErrInvalidScientific.
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, ErrEmptyInput
	}
	if strings.ContainsAny(s, "eE") {
		return parseScientific(s)
	}
	return parseDecimal(s)
}

// ParseFloat64 is like Parse for the shortest decimal that maps back to f.
func ParseFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, errorsmod.Wrapf(ErrNotFinite, "%v", f)
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

func parseDecimal(s string) (Rat, error) {
	digits, frac, dot := strings.Cut(s, ".")
	if strings.IndexByte(frac, '.') >= 0 {
		return Rat{}, errorsmod.Wrapf(ErrInvalidFormat, "%q has more than one decimal point", s)
	}
	den := big.NewInt(1)
	if dot {
		if !isDigits(frac) {
			return Rat{}, errorsmod.Wrapf(ErrInvalidDecimalPart, "%q", frac)
		}
		digits += frac
		den.Exp(bigTen, big.NewInt(int64(len(frac))), nil)
	}
	if !isDigits(strings.TrimPrefix(digits, "-")) {
		return Rat{}, errorsmod.Wrapf(ErrInvalidIntegerPart, "%q", digits)
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rat{}, errorsmod.Wrapf(ErrInvalidIntegerPart, "%q", digits)
	}
	return Rat{num, den}.Reduce(), nil
}

func parseScientific(s string) (Rat, error) {
	if !isScientific(s) {
		return Rat{}, errorsmod.Wrapf(ErrInvalidScientific, "%q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && !math.IsInf(f, 0)) {
		return Rat{}, errorsmod.Wrapf(ErrInvalidScientific, "%q", s)
	}
	if math.IsInf(f, 0) {
		return Rat{}, errorsmod.Wrapf(ErrInvalidScientific, "%q is not finite", s)
	}

	places := 0
	if f != 0 {
		mant, exp, _ := strings.Cut(strings.ToLower(s), "e")
		if e, err := strconv.Atoi(exp); err == nil {
			places = -e
			if _, frac, ok := strings.Cut(mant, "."); ok {
				places += len(frac)
			}
		}
	}
	places = min(max(places, 0), maxScientificPlaces)

	// FloatString rounds halves away from zero.
	r, err := parseDecimal(new(big.Rat).SetFloat64(f).FloatString(places))
	if err != nil {
		// unreachable: FloatString output is always a valid decimal
		return Rat{}, errorsmod.Wrapf(ErrInvalidScientific, "%q: %v", s, err)
	}
	return r, nil
}

// isScientific reports whether s is a sign, a mantissa with at least one
// digit and an optional '.', then 'e' or 'E' and a signed integer exponent.
func isScientific(s string) bool {
	r := strings.NewReader(s)
	scanSign(r)
	n := scanDigits(r)
	if ch, err := r.ReadByte(); err == nil && ch == '.' {
		n += scanDigits(r)
	} else if err == nil {
		_ = r.UnreadByte()
	}
	if n == 0 {
		return false
	}
	if ch, err := r.ReadByte(); err != nil || (ch != 'e' && ch != 'E') {
		return false
	}
	scanSign(r)
	return scanDigits(r) > 0 && r.Len() == 0
}

func scanSign(r io.ByteScanner) {
	ch, err := r.ReadByte()
	if err == nil && ch != '+' && ch != '-' {
		_ = r.UnreadByte()
	}
}

func scanDigits(r io.ByteScanner) (n int) {
	for {
		ch, err := r.ReadByte()
		if err != nil {
			return
		}
		if ch < '0' || '9' < ch {
			_ = r.UnreadByte()
			return
		}
		n++
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
