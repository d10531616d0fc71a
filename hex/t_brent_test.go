// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_brent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent01. scalar root finding")

	// cos(x) = x
	fcn := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}
	x, nit, err := brent(fcn, 0, 1, 1e-12, 100, chk.Verbose)
	if err != nil {
		tst.Errorf("brent failed:\n%v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("x=%v after %d iterations\n", x, nit)
	}
	chk.Float64(tst, "x", 1e-10, x, 0.7390851332151607)
	if nit < 2 || nit > 100 {
		tst.Errorf("suspicious iteration count %d\n", nit)
		return
	}

	// root exactly at a bracket end
	fcn = func(x float64) (float64, error) {
		return x * (x - 2.0), nil
	}
	x, nit, err = brent(fcn, 0, 1, 1e-12, 100, false)
	if err != nil {
		tst.Errorf("brent failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "x at end", 1e-15, x, 0)
	chk.Int(tst, "nit at end", nit, 1)

	// cubic with a single root inside the bracket
	fcn = func(x float64) (float64, error) {
		return x*x*x - 2.0*x - 5.0, nil
	}
	x, _, err = brent(fcn, 2, 3, 1e-14, 100, false)
	if err != nil {
		tst.Errorf("brent failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "cubic root", 1e-10, x, 2.0945514815423265)
}

func Test_brent02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("brent02. failures")

	// same sign at both ends
	fcn := func(x float64) (float64, error) {
		return math.Cos(x) - x, nil
	}
	_, _, err := brent(fcn, 2, 3, 1e-12, 100, false)
	if err == nil {
		tst.Errorf("unbracketed interval must fail\n")
		return
	}
	if chk.Verbose {
		io.Pf("error message: %v\n", err)
	}

	// evaluation errors propagate
	fcn = func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, chk.Err("no state at x=%g", x)
		}
		return math.Cos(x) - x, nil
	}
	_, _, err = brent(fcn, 0, 1, 1e-12, 100, false)
	if err == nil {
		tst.Errorf("evaluation errors must propagate\n")
		return
	}
}
