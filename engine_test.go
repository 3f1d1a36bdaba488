// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"bytes"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/binary64/context"
)

func newEngine(t testing.TB, prec uint, opts ...Option) *Engine {
	t.Helper()
	e, err := New(prec, opts...)
	require.NoError(t, err)
	return e
}

func BenchmarkEngine_Exact(b *testing.B) {
	e := newEngine(b, 0)
	bits := Encode("5e-324")
	for i := 0; i < b.N; i++ {
		_, _ = e.Exact(bits)
	}
}

func TestNew(t *testing.T) {
	e := newEngine(t, 0)
	assert.EqualValues(t, context.DefaultPrec, e.Prec())
	assert.Equal(t, context.ToNearestEven, e.Mode())

	e = newEngine(t, 250, WithRounding(context.ToZero))
	assert.EqualValues(t, 250, e.Prec())
	assert.Equal(t, context.ToZero, e.Mode())

	_, err := New(99)
	require.ErrorIs(t, err, ErrPrecision)
	_, err = New(context.MaxPrec + 1)
	require.ErrorIs(t, err, ErrPrecision)
	_, err = New(0, WithRounding(context.RoundingMode(99)))
	require.ErrorIs(t, err, ErrInvalidRounding)
}

func TestEngine_Exact(t *testing.T) {
	td := []struct {
		in   string
		want ExactDecimal
	}{
		{"0.1", ExactDecimal{Value: "0.1000000000000000055511151231257827021181583404541015625"}},
		{"3.14", ExactDecimal{Value: "3.140000000000000124344978758017532527446746826171875"}},
		{"-2.5", ExactDecimal{Value: "-2.5"}},
		{"1", ExactDecimal{Value: "1"}},
		{"100", ExactDecimal{Value: "100"}},
		{"0.5", ExactDecimal{Value: "0.5"}},
		{"1e23", ExactDecimal{Value: "99999999999999991611392"}},
		{"1180591620717411303424", ExactDecimal{Value: "1180591620717411303424"}},
		{"9.5367431640625e-7", ExactDecimal{Value: "9.5367431640625e-7"}},
		{"0", ExactDecimal{Value: "0", Token: TokenPosZero}},
		{"-0", ExactDecimal{Value: "-0", Token: TokenNegZero}},
		{"1e999", ExactDecimal{Value: TokenPosInf, Special: true, Token: TokenPosInf}},
		{"-Infinity", ExactDecimal{Value: TokenNegInf, Special: true, Token: TokenNegInf}},
		{"NaN", ExactDecimal{Value: TokenNaN, Special: true, Token: TokenNaN}},
	}

	e := newEngine(t, 0)
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			got, err := e.Exact(Encode(d.in))
			require.NoError(t, err)
			assert.Equal(t, d.want, got)
		})
	}
}

func TestEngine_DecodeExact_extremes(t *testing.T) {
	td := []struct {
		name           string
		sign, exp, sig string
		prefix, suffix string
		denormalized   bool
	}{
		{"min subnormal", "0", "00000000000", zeroSig[1:] + "1", "4.9406564584124654417", "e-324", true},
		{"max subnormal", "0", "00000000000", onesSig, "2.2250738585072008890245868760858598876", "e-308", true},
		{"min normal", "0", "00000000001", zeroSig, "2.2250738585072013830902327173324040642", "e-308", false},
		{"max normal", "1", "11111111110", onesSig, "-1.7976931348623157081452742373170435679", "e+308", false},
	}

	for _, prec := range []uint{100, 200, 300} {
		e := newEngine(t, prec)
		for _, d := range td {
			t.Run(d.name, func(t *testing.T) {
				x, err := e.DecodeExact(d.sign, d.exp, d.sig)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(x.Value, d.prefix), "got %s", x.Value)
				assert.True(t, strings.HasSuffix(x.Value, d.suffix), "got %s", x.Value)
				assert.Equal(t, d.denormalized, x.Denormalized)
				assert.Empty(t, x.Token)
				assert.False(t, x.Special)
			})
		}
	}
}

func TestEngine_DecodeExact_special(t *testing.T) {
	td := []struct {
		name           string
		sign, exp, sig string
		want           string
	}{
		{"payload NaN", "1", "11111111111", zeroSig[1:] + "1", TokenNaN},
		{"signalling NaN", "0", "11111111111", "01" + zeroSig[2:], TokenNaN},
		{"all ones", "1", "11111111111", onesSig, TokenNaN},
		{"negative infinity", "1", "11111111111", zeroSig, TokenNegInf},
		{"positive infinity", "0", "11111111111", zeroSig, TokenPosInf},
	}

	e := newEngine(t, 0)
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			x, err := e.DecodeExact(d.sign, d.exp, d.sig)
			require.NoError(t, err)
			assert.Equal(t, ExactDecimal{Value: d.want, Special: true, Token: d.want}, x)
		})
	}
}

func TestEngine_DecodeExact_malformed(t *testing.T) {
	e := newEngine(t, 0)
	_, err := e.DecodeExact("0", "0111", zeroSig)
	require.ErrorIs(t, err, ErrMalformedBits)
	_, err = e.DecodeExact("0", "01111111111", strings.Repeat("z", SignificandBits))
	require.ErrorIs(t, err, ErrMalformedBits)
	_, err = e.Exact(Bits{})
	require.ErrorIs(t, err, ErrMalformedBits)
}

// exactString returns the plain decimal expansion of f.
func exactString(f float64) string {
	s := new(big.Rat).SetFloat64(f).FloatString(1100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func TestEngine_Exact_crossCheck(t *testing.T) {
	// Values in [2**-16, 2**61) have fewer than 100 significant digits and
	// are printed in plain notation, so the expansion must match exactly.
	e := newEngine(t, 0)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		f := math.Ldexp(1+rnd.Float64(), rnd.Intn(77)-16)
		if rnd.Intn(2) == 0 {
			f = -f
		}
		x, err := e.Exact(EncodeFloat64(f))
		require.NoError(t, err)
		require.Equal(t, exactString(f), x.Value, "%g", f)
	}
}

func TestEngine_Exact_wide(t *testing.T) {
	// 800 digits are enough for every subnormal.
	e := newEngine(t, 800)
	for _, f := range []float64{math.SmallestNonzeroFloat64, 1.5e-320, 3e-310} {
		x, err := e.Exact(EncodeFloat64(f))
		require.NoError(t, err)
		want := strings.TrimLeft(strings.TrimPrefix(exactString(f), "0."), "0")
		got := strings.Replace(x.Value[:strings.IndexByte(x.Value, 'e')], ".", "", 1)
		assert.Equal(t, want, got, "%g", f)
		assert.True(t, x.Denormalized)
	}
}

func TestEngine_Exact_parseBack(t *testing.T) {
	e := newEngine(t, 0)
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 3000; i++ {
		f := math.Float64frombits(rnd.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		x, err := e.Exact(EncodeFloat64(f))
		require.NoError(t, err)
		g, err := strconv.ParseFloat(x.Value, 64)
		require.NoError(t, err, x.Value)
		require.Equal(t, f, g, "%s", x.Value)
	}
}

func TestEngine_concurrent(t *testing.T) {
	e := newEngine(t, 0)
	want, err := e.Exact(Encode("0.1"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := e.Exact(Encode("0.1"))
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}
	wg.Wait()
}

func TestEngine_logging(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t, 0, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	_, err := e.Exact(Encode("1"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"engine ready"`)
	assert.Contains(t, buf.String(), `"class":"Normal"`)
}

func TestExactDecimal_String(t *testing.T) {
	assert.Equal(t, "NaN", ExactDecimal{Value: "x", Token: TokenNaN}.String())
	assert.Equal(t, "4e-324 (subnormal)", ExactDecimal{Value: "4e-324", Denormalized: true}.String())
	assert.Equal(t, "0.5", ExactDecimal{Value: "0.5"}.Display())
}
