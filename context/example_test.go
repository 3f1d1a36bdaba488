package context_test

import (
	"fmt"

	"github.com/cockroachdb/apd/v2"

	"github.com/db47h/binary64/context"
)

var (
	one  = apd.New(1, 0)
	half = apd.New(5, -1)
)

// fraction returns the sum of 2**-(i+1) for every '1' in bits, using ctx's
// rounding mode and precision.
func fraction(ctx *context.Context, bits string) (*apd.Decimal, error) {
	sum, term, t := ctx.New(), ctx.New().Set(half), ctx.New()
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			ctx.Add(sum, t.Set(sum), term)
		}
		ctx.Mul(term, t.Set(term), half)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("error computing fraction: %w", err)
	}
	return sum, nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(0, context.ToNearestEven)
	f, err := fraction(ctx, "1001100110011001100110011001100110011001100110011010")
	if err != nil {
		fmt.Println(err)
		return
	}
	// 1.fraction × 2**-4 is the binary64 value closest to 0.1
	v := ctx.Add(ctx.New(), f, one)
	ctx.Mul(v, ctx.New().Set(v), apd.New(625, -4))
	fmt.Println(v.Text('f'))

	// a context with 5 digits truncates 2**-8 = 0.00390625 on the way to 2**-10
	ctx5 := context.New(5, context.ToZero)
	f, _ = fraction(ctx5, "0000000001")
	fmt.Println(f.Text('f'))

	// division by zero is caught and reported by Err
	ctx.Quo(ctx.New(), one, ctx.New())
	fmt.Println(ctx.Err() != nil)
	//
	// Output:
	// 0.1000000000000000055511151231257827021181583404541015625
	// 0.00097655
	// true
}
