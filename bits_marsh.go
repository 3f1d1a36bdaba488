// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Bits.

package binary64

import (
	"encoding/binary"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const bitsGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. Only the bit pattern is
// marshaled; Special and Interpreted are recomputed on decoding.
func (b Bits) GobEncode() ([]byte, error) {
	if b.Empty() {
		return []byte{bitsGobVersion}, nil
	}
	u, err := b.Uint64()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 1+8)
	buf[0] = bitsGobVersion
	binary.BigEndian.PutUint64(buf[1:], u)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (b *Bits) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*b = Bits{}
		return nil
	}
	if buf[0] != bitsGobVersion {
		return fmt.Errorf("Bits.GobDecode: encoding version %d not supported", buf[0])
	}
	switch len(buf) {
	case 1:
		*b = Bits{}
	case 1 + 8:
		*b = FromUint64(binary.BigEndian.Uint64(buf[1:]))
	default:
		return fmt.Errorf("Bits.GobDecode: invalid length %d", len(buf))
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The output is
// the same as b.String(). Malformed fields are reported as an error.
func (b Bits) MarshalText() (text []byte, err error) {
	if b.Empty() {
		return []byte{}, nil
	}
	if _, err = b.Uint64(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// either the three fields separated by white space, or all 64 bits in a
// single word. Empty text decodes to the empty Bits.
func (b *Bits) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	var u uint64
	var err error
	switch len(fields) {
	case 0:
		*b = Bits{}
		return nil
	case 1:
		w := fields[0]
		if len(w) != TotalBits {
			return errorsmod.Wrapf(ErrMalformedBits, "cannot unmarshal %q: want %d bits, got %d", text, TotalBits, len(w))
		}
		u, err = join(w[:SignBits], w[SignBits:SignBits+ExponentBits], w[SignBits+ExponentBits:])
	case 3:
		u, err = join(fields[0], fields[1], fields[2])
	default:
		return errorsmod.Wrapf(ErrMalformedBits, "cannot unmarshal %q: want 1 or 3 fields, got %d", text, len(fields))
	}
	if err != nil {
		return err
	}
	*b = FromUint64(u)
	return nil
}
