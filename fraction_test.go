// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionToBits(t *testing.T) {
	td := []struct {
		f     float64
		width int
		want  string
	}{
		{0.5, 4, "1000"},
		{0.75, 2, "11"},
		{0, 4, "0000"},
		{1, 3, "111"},
		{2.5, 3, "111"},
		{math.Inf(1), 2, "11"},
		{-1, 4, "0000"},
		{math.Inf(-1), 4, "0000"},
		{math.NaN(), 4, "0000"},
		{0.3, 1, "1"},
		{0.25, 1, "1"}, // halves round up
		{0.2, 2, "01"},
		{0.124, 3, "001"},
		{0.9999, 3, "111"},
		{0.5, 60, "1" + strings.Repeat("0", 59)},
		{math.Ldexp(1, -54), 53, strings.Repeat("0", 52) + "1"},
		{math.Nextafter(1, 0), 53, strings.Repeat("1", 53)},
		{math.Nextafter(1, 0), 52, strings.Repeat("1", 52)},
		{0.5, 0, ""},
		{0.5, -3, ""},
	}
	for _, d := range td {
		assert.Equal(t, d.want, FractionToBits(d.f, d.width), "FractionToBits(%g, %d)", d.f, d.width)
	}
}

func TestParseFraction(t *testing.T) {
	td := []struct {
		bits string
		want float64
	}{
		{"0", 0},
		{"1", 0.5},
		{"01", 0.25},
		{"11", 0.75},
		{"1000", 0.5},
		{strings.Repeat("1", 52), 1 - math.Ldexp(1, -52)},
		{strings.Repeat("0", 1000) + "1", math.Ldexp(1, -1001)},
		{strings.Repeat("0", 1100) + "1", 0},
		// rounds to nearest, ties to even
		{strings.Repeat("1", 54), 1},
	}
	for _, d := range td {
		f, err := ParseFraction(d.bits)
		require.NoError(t, err)
		assert.Equal(t, d.want, f, d.bits)
		assert.Equal(t, d.want, BitsToFraction(d.bits))
	}

	for _, bad := range []string{"", "012", "1 0", "-1", "0b1"} {
		_, err := ParseFraction(bad)
		require.ErrorIs(t, err, ErrMalformedBits, bad)
		assert.Zero(t, BitsToFraction(bad))
	}
}

func TestFraction_roundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		sig := formatBits(rnd.Uint64()&sigMask, SignificandBits)
		f := BitsToFraction(sig)
		require.True(t, f >= 0 && f < 1)
		require.Equal(t, sig, FractionToBits(f, SignificandBits))
	}
}

func TestFraction_ulp(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, w := range []int{1, 4, 11, 24, 52} {
		ulp := math.Ldexp(1, -w)
		for i := 0; i < 1000; i++ {
			f := rnd.Float64()
			got := BitsToFraction(FractionToBits(f, w))
			require.LessOrEqual(t, math.Abs(got-f), ulp, "w=%d f=%g", w, f)
		}
	}
}
