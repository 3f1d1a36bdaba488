// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math implements power-of-two scaling for decimals.
package math

import (
	"fortio.org/safecast"
	"github.com/cockroachdb/apd/v2"

	"github.com/db47h/binary64/context"
)

// constants
var (
	one  = apd.New(1, 0)
	two  = apd.New(2, 0)
	half = apd.New(5, -1)
)

// Pow2 sets z to the value of 2**n rounded using c's precision and rounding
// mode, and returns z. Negative powers are computed as powers of 0.5, never
// by division, so that results which fit the precision are exact.
//
// Errors are recorded in c, see (*context.Context).Err.
func Pow2(c *context.Context, z *apd.Decimal, n int) *apd.Decimal {
	x := two
	if n < 0 {
		x = half
		n = -n
	}
	u, err := safecast.Conv[uint64](n)
	if err != nil {
		// n was math.MinInt
		c.SetErr(err)
		return z
	}
	return pow(c, z, x, u)
}

// pow sets z to the rounded value of x^n and returns z.
func pow(c *context.Context, z, x *apd.Decimal, n uint64) *apd.Decimal {
	if n == 0 {
		return z.Set(one)
	}
	t := c.New()
	y := c.New().Set(one)
	z.Set(x)

	for n > 1 {
		if n%2 != 0 {
			c.Mul(y, t.Set(y), z)
		}
		c.Mul(z, t.Set(z), t)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	if y.Cmp(one) == 0 {
		return z
	}
	return c.Mul(z, t.Set(z), y)
}
