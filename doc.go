// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package binary64 converts between decimal numbers and the bits of IEEE-754
double precision values, and expands those bits back into exact decimals.

A binary64 value is 64 bits: 1 sign bit, an 11-bit biased exponent and a
52-bit significand. The Bits type holds the three fields as strings of '0' and
'1' characters, most significant bit first:

    b := binary64.Encode("0.1")
    fmt.Println(b)              // 0 01111111011 1001100110011001100110011001100110011001100110011010
    fmt.Println(b.Interpreted)  // 0.1

Encode reads its input the way a lenient parse-float does: leading white space
is skipped and only the longest numeric prefix is converted, so "3.14abc"
encodes 3.14 and "abc" the canonical quiet NaN. A blank input returns the
empty Bits{}, which stands for "no input yet".

Decode goes the other way through the native float64 type. That is enough to
round-trip bit patterns but not to show what they mean: strconv prints the
shortest decimal that maps back to the same bits, which hides the conversion
error. An Engine computes the value of the bits themselves with decimal
arithmetic at a fixed precision of at least 100 significant digits:

    e, _ := binary64.New(0)
    x, _ := e.Exact(binary64.Encode("0.1"))
    fmt.Println(x)  // 0.1000000000000000055511151231257827021181583404541015625

Every binary64 value has a terminating decimal expansion. The longest ones
belong to subnormals and have about 750 significant digits, so at the default
precision of 100 digits the tail of very small values is rounded. Raise the
precision with New to see more of it.

Engine.Analyze puts the pieces together: it encodes a decimal input, expands
the stored value and measures the conversion error exactly with the rational
package:

    r, _ := e.Analyze("0.1")
    fmt.Println(r.Error)  // -1/180143985094819840
    fmt.Println(r.Ratio)  // -1/18014398509481985

FractionToBits and BitsToFraction map a significand field to and from a
fraction in [0, 1). Together with ExponentToBits, ComposeBits and SliderValues
they back editors that expose the exponent and significand as numeric
controls.

Errors returned by this package wrap ErrMalformedBits, ErrPrecision or
ErrInvalidRounding, and should be tested with errors.Is.
*/
package binary64
