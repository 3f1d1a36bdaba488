// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the lenient decimal scanner behind Encode.

package binary64

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// scanFloat returns the value of the longest prefix of s that forms a decimal
// floating-point number, after skipping leading white space. It returns NaN if
// there is no such prefix.
func scanFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	r := strings.NewReader(s)

	neg := scanSign(r)
	if strings.HasPrefix(s[offset(r):], TokenPosInf) {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	n := scanDigits(r)
	if ch, err := r.ReadByte(); err == nil {
		if ch == '.' {
			n += scanDigits(r)
		} else {
			_ = r.UnreadByte()
		}
	}
	if n == 0 {
		return math.NaN()
	}
	scanExponent(r)

	f, err := strconv.ParseFloat(s[:offset(r)], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// unreachable: the prefix is well formed
		return math.NaN()
	}
	return f
}

func offset(r *strings.Reader) int {
	return int(r.Size()) - r.Len()
}

func scanSign(r io.ByteScanner) (neg bool) {
	ch, err := r.ReadByte()
	if err != nil {
		return false
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// scanDigits consumes decimal digits and returns how many it read.
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

// scanExponent consumes an exponent part if one with at least one digit
// follows. Otherwise r is left untouched.
func scanExponent(r *strings.Reader) {
	start := offset(r)
	ch, err := r.ReadByte()
	if err != nil {
		return
	}
	if ch != 'e' && ch != 'E' {
		_ = r.UnreadByte()
		return
	}
	_ = scanSign(r)
	if scanDigits(r) == 0 {
		// "1e" or "1e+": the exponent does not belong to the number
		_, _ = r.Seek(int64(start), io.SeekStart)
	}
}
