// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Rats.

package rational

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// MarshalText implements the encoding.TextMarshaler interface. The numerator
// and denominator are written as stored, reduced or not.
func (x Rat) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// "num/den" as produced by MarshalText, which is kept unreduced, as well as
// anything Parse accepts.
func (z *Rat) UnmarshalText(text []byte) error {
	s := string(text)
	ns, ds, ok := strings.Cut(s, "/")
	if !ok {
		r, err := Parse(s)
		if err != nil {
			return err
		}
		*z = r
		return nil
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(ns), 10)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidIntegerPart, "numerator %q", ns)
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(ds), 10)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidIntegerPart, "denominator %q", ds)
	}
	r, err := New(num, den)
	if err != nil {
		return err
	}
	*z = r
	return nil
}
