// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command binary64 inspects how decimal numbers are stored as IEEE-754 double
// precision values.
//
//	binary64 encode 0.1
//	binary64 exact 0 01111111011 1001100110011001100110011001100110011001100110011010
//	binary64 analyze 0.1 --output json
package main

import (
	"os"

	"github.com/rs/zerolog"
)

const codeRootCmdErr = 1

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out: os.Stderr,
		FormatTimestamp: func(interface{}) string {
			return ""
		},
	})

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("binary64")
		os.Exit(codeRootCmdErr)
	}
}
