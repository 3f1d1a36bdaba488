// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/binary64"
)

type bitsOutput struct {
	Input       string `json:"input,omitempty"`
	Sign        string `json:"sign"`
	Exponent    string `json:"exponent"`
	Significand string `json:"significand"`
	Special     bool   `json:"special"`
	Value       string `json:"value"`
}

func newBitsOutput(input string, b binary64.Bits) bitsOutput {
	return bitsOutput{
		Input:       input,
		Sign:        b.Sign,
		Exponent:    b.Exponent,
		Significand: b.Significand,
		Special:     b.Special,
		Value:       b.Interpreted,
	}
}

func (o bitsOutput) text(w io.Writer) {
	if o.Input != "" {
		fmt.Fprintf(w, "input:        %s\n", o.Input)
	}
	fmt.Fprintf(w, "sign:         %s\n", o.Sign)
	fmt.Fprintf(w, "exponent:     %s\n", o.Exponent)
	fmt.Fprintf(w, "significand:  %s\n", o.Significand)
	fmt.Fprintf(w, "value:        %s\n", o.Value)
}

type exactOutput struct {
	Input        string `json:"input,omitempty"`
	Exact        string `json:"exact"`
	Denormalized bool   `json:"denormalized"`
	Special      bool   `json:"special"`
}

func newExactOutput(input string, x binary64.ExactDecimal) exactOutput {
	return exactOutput{
		Input:        input,
		Exact:        x.Display(),
		Denormalized: x.Denormalized,
		Special:      x.Special,
	}
}

func (o exactOutput) text(w io.Writer) {
	if o.Denormalized {
		fmt.Fprintf(w, "%s (subnormal)\n", o.Exact)
		return
	}
	fmt.Fprintln(w, o.Exact)
}

type reportOutput struct {
	Input         string      `json:"input"`
	Bits          *bitsOutput `json:"bits,omitempty"`
	Exact         string      `json:"exact,omitempty"`
	Denormalized  bool        `json:"denormalized,omitempty"`
	Approx        string      `json:"approx,omitempty"`
	Intended      string      `json:"intended,omitempty"`
	Nearest       string      `json:"nearest,omitempty"`
	Error         string      `json:"error,omitempty"`
	Ratio         string      `json:"ratio,omitempty"`
	RationalError string      `json:"rational_error,omitempty"`
}

func newReportOutput(r *binary64.Report) reportOutput {
	o := reportOutput{Input: r.Input}
	if r.Empty() {
		return o
	}
	bo := newBitsOutput("", r.Bits)
	o.Bits = &bo
	o.Exact = r.Exact.Display()
	o.Denormalized = r.Exact.Denormalized
	o.Approx = r.Bits.Interpreted
	if r.RationalErr != nil {
		o.RationalError = r.RationalErr.Error()
		return o
	}
	o.Intended = r.Intended.String()
	o.Nearest = r.Nearest.String()
	o.Error = r.Error.String()
	o.Ratio = r.RatioText()
	return o
}

func (o reportOutput) text(w io.Writer) {
	fmt.Fprintf(w, "input:        %s\n", strconv.Quote(o.Input))
	if o.Bits == nil {
		fmt.Fprintln(w, "(no input)")
		return
	}
	o.Bits.text(w)
	exact := o.Exact
	if o.Denormalized {
		exact += " (subnormal)"
	}
	fmt.Fprintf(w, "exact:        %s\n", exact)
	if o.RationalError != "" {
		fmt.Fprintf(w, "rational:     %s\n", o.RationalError)
		return
	}
	fmt.Fprintf(w, "intended:     %s\n", o.Intended)
	fmt.Fprintf(w, "nearest:      %s\n", o.Nearest)
	fmt.Fprintf(w, "error:        %s\n", o.Error)
	fmt.Fprintf(w, "ratio:        %s\n", o.Ratio)
}

type valueOutput struct {
	Input string `json:"input,omitempty"`
	Value string `json:"value"`
}

func (o valueOutput) text(w io.Writer) {
	fmt.Fprintln(w, o.Value)
}

type texter interface {
	text(w io.Writer)
}

// print writes v to w in the configured output format.
func (a *app) print(w io.Writer, v texter) error {
	if a.cfg.Output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	v.text(w)
	return nil
}
