package math_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/cockroachdb/apd/v2"
	"github.com/stretchr/testify/require"

	"github.com/db47h/binary64/context"
	"github.com/db47h/binary64/math"
)

func Benchmark_Pow2(b *testing.B) {
	for _, prec := range []uint{100, 200, 500, 1000} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			c := context.New(prec, context.ToNearestEven)
			z := c.New()
			for i := 0; i < b.N; i++ {
				math.Pow2(c, z, -1074)
			}
		})
	}
}

func Test_Pow2(t *testing.T) {
	td := []struct {
		n   int
		res string
	}{
		{0, "1"},
		{1, "2"},
		{10, "1024"},
		{63, "9223372036854775808"},
		{-1, "0.5"},
		{-4, "0.0625"},
		{-10, "0.0009765625"},
		{-52, "2.220446049250313080847263336181640625E-16"},
	}

	for _, d := range td {
		t.Run(strconv.Itoa(d.n), func(t *testing.T) {
			c := context.New(100, context.ToNearestEven)
			z := math.Pow2(c, c.New(), d.n)
			require.NoError(t, c.Err())
			want, _, err := apd.NewFromString(d.res)
			require.NoError(t, err)
			require.Zero(t, z.Cmp(want), "2**%d: got %s, want %s", d.n, z, want)
		})
	}
}

// exact returns 2**n as an unrounded decimal.
func exact(n int) *apd.Decimal {
	if n >= 0 {
		return apd.NewWithBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)), 0)
	}
	k := int64(-n)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return apd.NewWithBigInt(five, int32(n))
}

func Test_Pow2Rounded(t *testing.T) {
	// Every squaring rounds, so only the leading digits are guaranteed.
	for _, prec := range []uint{100, 150, 400} {
		c := context.New(prec, context.ToNearestEven)
		wide := context.New(prec+20, context.ToNearestEven)
		tolerance := apd.New(1, -int32(prec)+3)
		for _, n := range []int{-1074, -1022, -700, -333, 333, 700, 1023} {
			z := math.Pow2(c, c.New(), n)
			require.NoError(t, c.Err())

			want := exact(n)
			rel := wide.Sub(wide.New(), z, want)
			wide.Quo(rel, wide.New().Set(rel), want)
			wide.Abs(rel, wide.New().Set(rel))
			require.NoError(t, wide.Err())
			require.Negative(t, rel.Cmp(tolerance), "prec %d, 2**%d: relative error %s", prec, n, rel)
		}
	}
}

func Test_Pow2Exact(t *testing.T) {
	// 2**-k has k decimal places and fewer than k significant digits: exact
	// as long as k stays below the precision.
	c := context.New(100, context.ToNearestEven)
	for k := 1; k <= 100; k++ {
		z := math.Pow2(c, c.New(), -k)
		require.NoError(t, c.Err())
		require.Zero(t, z.Cmp(exact(-k)), "2**-%d = %s", k, z)
	}
}
