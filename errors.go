// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary64

import errorsmod "cosmossdk.io/errors"

const codespace = "binary64"

// binary64 sentinel errors. Returned errors wrap one of these and should be
// matched with errors.Is.
var (
	ErrMalformedBits   = errorsmod.Register(codespace, 1100, "malformed bits")
	ErrPrecision       = errorsmod.Register(codespace, 1101, "insufficient decimal precision")
	ErrInvalidRounding = errorsmod.Register(codespace, 1102, "invalid rounding mode")
)
