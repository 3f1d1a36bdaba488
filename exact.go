// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

// ExactDecimal is the decimal expansion of a binary64 bit pattern.
//
// Token holds one of the Token constants for NaN, ±Inf and ±0, and is empty
// otherwise. When set, it takes precedence over Value for display.
type ExactDecimal struct {
	Value        string
	Denormalized bool // exponent field all zeros, significand not zero
	Special      bool // exponent field all ones: NaN or ±Inf
	Token        string
}

// Display returns Token if set, Value otherwise.
func (x ExactDecimal) Display() string {
	if x.Token != "" {
		return x.Token
	}
	return x.Value
}

// String returns x.Display(), tagged with " (subnormal)" for denormalized
// values.
func (x ExactDecimal) String() string {
	if x.Denormalized {
		return x.Display() + " (subnormal)"
	}
	return x.Display()
}
