// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

// DONTCOVER

import errorsmod "cosmossdk.io/errors"

const codespace = "rational"

// rational sentinel errors
var (
	ErrEmptyInput         = errorsmod.Register(codespace, 1100, "empty input")
	ErrInvalidFormat      = errorsmod.Register(codespace, 1101, "invalid number format")
	ErrInvalidDecimalPart = errorsmod.Register(codespace, 1102, "invalid characters in decimal part")
	ErrInvalidIntegerPart = errorsmod.Register(codespace, 1103, "invalid characters in number")
	ErrInvalidScientific  = errorsmod.Register(codespace, 1104, "invalid scientific notation")
	ErrDivisionByZero     = errorsmod.Register(codespace, 1105, "division by zero")
	ErrZeroDenominator    = errorsmod.Register(codespace, 1106, "zero denominator")
	ErrNotFinite          = errorsmod.Register(codespace, 1107, "value is not finite")
)
