// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bitsZero Bits

var (
	_ encoding.TextMarshaler   = bitsZero
	_ encoding.TextUnmarshaler = &bitsZero
	_ gob.GobEncoder           = bitsZero
	_ gob.GobDecoder           = &bitsZero
)

var marshalInputs = []string{"0.1", "-2.5", "5e-324", "-0", "Infinity", "NaN", ""}

func TestBitsGobEncoding(t *testing.T) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	dec := gob.NewDecoder(&buf)
	for _, in := range marshalInputs {
		buf.Reset()
		want := Encode(in)
		require.NoError(t, enc.Encode(want), in)
		var got Bits
		require.NoError(t, dec.Decode(&got), in)
		assert.Equal(t, want, got, in)
	}
}

func TestBitsGobDecode_errors(t *testing.T) {
	var b Bits
	require.Error(t, b.GobDecode([]byte{2, 0, 0, 0, 0, 0, 0, 0, 0}))
	require.Error(t, b.GobDecode([]byte{bitsGobVersion, 0, 0}))
	require.NoError(t, b.GobDecode(nil))
	assert.True(t, b.Empty())

	_, err := Bits{Sign: "0"}.GobEncode()
	require.ErrorIs(t, err, ErrMalformedBits)
}

func TestBitsJSONEncoding(t *testing.T) {
	for _, in := range marshalInputs {
		want := Encode(in)
		text, err := json.Marshal(want)
		require.NoError(t, err)
		var got Bits
		require.NoError(t, json.Unmarshal(text, &got), string(text))
		assert.Equal(t, want, got, in)
	}
}

func TestBitsUnmarshalText(t *testing.T) {
	var b Bits
	require.NoError(t, b.UnmarshalText([]byte("0011111111110000000000000000000000000000000000000000000000000000")))
	assert.Equal(t, Encode("1"), b)

	require.NoError(t, b.UnmarshalText([]byte("  1 10000000000 0100000000000000000000000000000000000000000000000000\n")))
	assert.Equal(t, "-2.5", b.Interpreted)

	require.NoError(t, b.UnmarshalText([]byte(" ")))
	assert.True(t, b.Empty())

	for _, bad := range []string{"0 1", "0101", "0 01111111111 0000 1", "2 01111111111 " + zeroSig} {
		require.ErrorIs(t, b.UnmarshalText([]byte(bad)), ErrMalformedBits, bad)
	}

	_, err := Bits{Sign: "0", Exponent: "1"}.MarshalText()
	require.ErrorIs(t, err, ErrMalformedBits)
}
