// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voidfrac

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testcnd returns two-phase conditions typical of a small evaporator channel
func testcnd() *Conditions {
	return &Conditions{RhoL: 1000, RhoV: 10, MuL: 2e-4, MuV: 1e-5, G: 300, Dh: 0.01}
}

func Test_void01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("void01. bounds and monotonicity")

	c := testcnd()
	for _, name := range []string{"homogeneous", "zivi", "hughmark"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		if err := mdl.Init(c); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		α0, _ := mdl.Alpha(0)
		α1, _ := mdl.Alpha(1)
		chk.Float64(tst, name+": α(0)", 1e-15, α0, 0)
		chk.Float64(tst, name+": α(1)", 1e-15, α1, 1)
		prev := 0.0
		for _, x := range utl.LinSpace(0.05, 0.95, 19) {
			α, ok := mdl.Alpha(x)
			if !ok {
				tst.Errorf("%s: α(%g) did not converge", name, x)
				return
			}
			if α <= prev || α >= 1 {
				tst.Errorf("%s: α(%g)=%g is not increasing within (0,1)", name, x, α)
				return
			}
			prev = α
		}
	}

	// unknown model
	if _, err := New("unknown"); err == nil {
		tst.Errorf("New should have failed with an unknown model name")
	}
}

func Test_void02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("void02. model agreement at x=0.5, density ratio 100")

	c := testcnd()
	αs := make([]float64, 3)
	for i, name := range []string{"homogeneous", "zivi", "hughmark"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		if err := mdl.Init(c); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}
		α, ok := mdl.Alpha(0.5)
		if !ok {
			tst.Errorf("%s did not converge", name)
			return
		}
		αs[i] = α
		io.Pforan("%-12s α(0.5) = %.4f\n", name, α)
	}

	// slip models hold up more liquid than the no-slip model
	if αs[1] >= αs[0] {
		tst.Errorf("zivi should predict a lower void fraction than homogeneous: %g >= %g", αs[1], αs[0])
	}
	lo, hi := αs[0], αs[0]
	for _, α := range αs {
		lo = math.Min(lo, α)
		hi = math.Max(hi, α)
	}
	if hi-lo > 0.15 {
		tst.Errorf("model spread %g exceeds 0.15", hi-lo)
	}
}

func Test_void03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("void03. hughmark iteration controls and fallback")

	// defaults converge within the cap
	c := testcnd()
	hm := new(Hughmark)
	if err := hm.Init(c); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	α, ok := hm.Alpha(0.5)
	if !ok {
		tst.Errorf("hughmark should converge with default controls")
		return
	}
	io.Pforan("α = %.4f\n", α)

	// exhausting both iteration caps triggers the α=1 fallback
	hm = new(Hughmark)
	hm.NmaxIt = 1
	hm.NmaxBis = 1
	if err := hm.Init(c); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	α, ok = hm.Alpha(0.5)
	if ok {
		tst.Errorf("hughmark should not converge with NmaxIt=NmaxBis=1")
		return
	}
	chk.Float64(tst, "fallback α", 1e-15, α, 1)

	// invalid conditions
	if err := new(Hughmark).Init(&Conditions{RhoL: 1000, RhoV: 10, MuL: 2e-4, MuV: 1e-5}); err == nil {
		tst.Errorf("Init should have failed with zero mass flux")
	}
}

func Test_void04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("void04. liquid-weight integral vs closed form")

	// homogeneous model has a closed-form integral:
	//   w̄ = r・[(r+b)・ln(u2/u1) - (u2-u1)] / (b²・(xb-xa))
	// with r = ρv/ρl, b = 1-r and u = r + b・x
	c := testcnd()
	mdl, err := New("homogeneous")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if err := mdl.Init(c); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	r := c.RhoV / c.RhoL
	b := 1.0 - r
	xa, xb := 0.2, 0.8
	u1, u2 := r+b*xa, r+b*xb
	wana := r * ((r+b)*math.Log(u2/u1) - (u2 - u1)) / (b * b * (xb - xa))

	wbar, nfail := LiquidMean(mdl, xa, xb)
	chk.Int(tst, "nfail", nfail, 0)
	chk.AnaNum(tst, "w̄", 1e-5, wana, wbar, chk.Verbose)

	// degenerate interval evaluates the midpoint
	wbar, _ = LiquidMean(mdl, 0.5, 0.5)
	α, _ := mdl.Alpha(0.5)
	chk.Float64(tst, "w̄ midpoint", 1e-15, wbar, 1.0-α)
}
