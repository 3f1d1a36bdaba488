// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/binary64"
	"github.com/db47h/binary64/rational"
)

const flagWidth = "width"

// parseBits reads either the three fields or a single 64-bit word.
func parseBits(args []string) (binary64.Bits, error) {
	var b binary64.Bits
	if err := b.UnmarshalText([]byte(strings.Join(args, " "))); err != nil {
		return binary64.Bits{}, err
	}
	return b, nil
}

func encodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode DECIMAL...",
		Short: "Print the bit fields of the doubles nearest to decimal numbers",
		Long: `Print the bit fields of the doubles nearest to decimal numbers.

Input is parsed leniently: trailing garbage is ignored ("3.14abc" is 3.14) and
input without a numeric prefix encodes NaN.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				b := binary64.Encode(s)
				a.log.Debug().Str("input", s).Stringer("bits", b).Msg("encode")
				if err := a.print(cmd.OutOrStdout(), newBitsOutput(s, b)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func decodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode (SIGN EXPONENT SIGNIFICAND | BITS)",
		Short: "Print the shortest decimal of a bit pattern",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBits(args)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), valueOutput{Value: b.Interpreted})
		},
	}
}

func exactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exact (DECIMAL | SIGN EXPONENT SIGNIFICAND)",
		Short: "Print the exact decimal value of a double",
		Long: `Print the exact decimal value of a double.

With one argument, the decimal number is encoded first. With three, they are
taken as the sign, exponent and significand fields.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				x   binary64.ExactDecimal
				err error
			)
			input := ""
			if len(args) == 1 {
				input = args[0]
				x, err = a.engine.Exact(binary64.Encode(input))
			} else {
				x, err = a.engine.DecodeExact(args[0], args[1], args[2])
			}
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), newExactOutput(input, x))
		},
	}
}

func ratCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rat DECIMAL",
		Short: "Print the exact fraction of a decimal number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rational.Parse(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), valueOutput{Input: args[0], Value: r.String()})
		},
	}
}

func analyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze DECIMAL",
		Short: "Show how a decimal number is stored and the conversion error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.engine.Analyze(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), newReportOutput(r))
		},
	}
}

func fractionCmd(a *app) *cobra.Command {
	fractionCmd := &cobra.Command{
		Use:   "fraction",
		Short: "Convert between significand bits and fractions in [0, 1)",
	}

	toBitsCmd := &cobra.Command{
		Use:   "to-bits FRACTION",
		Short: "Print the significand bits nearest to a fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid fraction: %w", err)
			}
			width, err := cmd.Flags().GetInt(flagWidth)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), valueOutput{Input: args[0], Value: binary64.FractionToBits(f, width)})
		},
	}
	toBitsCmd.Flags().Int(flagWidth, binary64.SignificandBits, "number of bits")

	fromBitsCmd := &cobra.Command{
		Use:   "from-bits BITS",
		Short: "Print the fraction denoted by significand bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := binary64.ParseFraction(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), valueOutput{Input: args[0], Value: strconv.FormatFloat(f, 'g', -1, 64)})
		},
	}

	fractionCmd.AddCommand(toBitsCmd, fromBitsCmd)
	return fractionCmd
}
