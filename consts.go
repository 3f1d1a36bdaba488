// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors the layout constants of the IEEE-754 binary64 format.

package binary64

// Field widths and exponent bias of a binary64 value.
const (
	SignBits        = 1
	ExponentBits    = 11
	SignificandBits = 52
	TotalBits       = SignBits + ExponentBits + SignificandBits

	Bias        = 1<<(ExponentBits-1) - 1 // 1023
	MaxExponent = 1<<ExponentBits - 1     // biased exponent of ±Inf and NaN
)

const (
	expMask  = MaxExponent
	sigMask  = 1<<SignificandBits - 1
	quietBit = 1 << (SignificandBits - 1)
)

// Canonical tokens for values that have no finite decimal expansion, and for
// signed zeros.
const (
	TokenNaN     = "NaN"
	TokenPosInf  = "Infinity"
	TokenNegInf  = "-Infinity"
	TokenPosZero = "0"
	TokenNegZero = "-0"
)

// Internal representation: a binary64 value x is fully described by its sign
// bit, biased exponent field e and significand field m:
//
// x                 e         m
// -----------------------------------------
// ±0                0         0
// subnormal         0         != 0
// normal            1..2046   any
// ±Inf              2047      0
// NaN               2047      != 0

// A Class describes which row of the table above a value falls in.
type Class byte

// The Class value order is relevant - do not change!
const (
	Zero Class = iota
	Subnormal
	Normal
	Inf
	NaN
)

var classNames = [...]string{
	Zero:      "Zero",
	Subnormal: "Subnormal",
	Normal:    "Normal",
	Inf:       "Inf",
	NaN:       "NaN",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(?)"
}

func classify(exp, sig uint64) Class {
	switch exp {
	case 0:
		if sig == 0 {
			return Zero
		}
		return Subnormal
	case expMask:
		if sig == 0 {
			return Inf
		}
		return NaN
	}
	return Normal
}
