// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// twophstate returns a two-phase transport state typical of a low-pressure
// organic working fluid
func twophstate(g float64, x float64) *TwoPhase {
	return &TwoPhase{
		G: g, X: x,
		RhoL: 1300, RhoV: 10.75,
		MuL: 3e-4, MuV: 1.1e-5,
		KL: 0.08, PrL: 5.25,
		Hfg: 1.9e5, DT: 5.0,
	}
}

func Test_cond01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cond01. akers equivalent-Reynolds branches")

	s := &TwoPhase{G: 100, X: 0.5, RhoL: 1000, RhoV: 10, MuL: 2e-4, KL: 0.1, PrL: 5}
	chk.Float64(tst, "Geq", 1e-12, s.Geq(), 100.0*(0.5+0.5*10.0))

	mdl, err := NewCondensation("akers", &Geometry{Dh: 0.01})
	if err != nil {
		tst.Errorf("NewCondensation failed:\n%v", err)
		return
	}

	// Reeq = 550*0.01/2e-4 = 27500: low branch
	nu := 5.03 * math.Cbrt(27500.0) * math.Pow(5.0, 1.0/3.0)
	chk.Float64(tst, "h low branch", 1e-10, mdl.H(s), nu*0.1/0.01)

	// tripling G moves Reeq to 82500: high branch
	s.G = 300
	nu = 0.0265 * math.Pow(82500.0, 0.8) * math.Pow(5.0, 1.0/3.0)
	chk.Float64(tst, "h high branch", 1e-10, mdl.H(s), nu*0.1/0.01)
}

func Test_cond02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cond02. cavallini regimes")

	mdl, err := NewCondensation("cavallini", &Geometry{Dh: 0.004})
	if err != nil {
		tst.Errorf("NewCondensation failed:\n%v", err)
		return
	}

	// high mass flux: shear dominated, independent of ΔT
	sa := twophstate(300, 0.5)
	sb := twophstate(300, 0.5)
	sa.DT, sb.DT = 2.0, 20.0
	ha, hb := mdl.H(sa), mdl.H(sb)
	chk.Float64(tst, "shear regime ΔT-independent", 1e-12, ha, hb)
	io.Pforan("shear   h = %.1f\n", ha)

	// low mass flux: gravity dominated, film improves with smaller ΔT
	sa = twophstate(25, 0.5)
	sb = twophstate(25, 0.5)
	sa.DT, sb.DT = 2.0, 20.0
	ha, hb = mdl.H(sa), mdl.H(sb)
	if ha <= hb {
		tst.Errorf("gravity regime should improve with smaller ΔT: h(2K)=%g <= h(20K)=%g", ha, hb)
		return
	}
	io.Pforan("gravity h = %.1f\n", ha)

	// finite and positive across the quality range in both regimes
	for _, g := range []float64{25.0, 300.0} {
		for _, x := range utl.LinSpace(0.05, 0.95, 10) {
			h := mdl.H(twophstate(g, x))
			if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
				tst.Errorf("h(G=%g, x=%g) = %g is not positive and finite", g, x, h)
				return
			}
		}
	}
}

func Test_boil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boil01. han plate evaporation")

	geo := plategeo()
	mdl, err := NewBoiling("han", geo)
	if err != nil {
		tst.Errorf("NewBoiling failed:\n%v", err)
		return
	}

	// closed form at a fixed boiling number
	β := geo.Phi * math.Pi / 180.0
	ge1 := 2.81 * math.Pow(geo.Pco/geo.Dh, -0.041) * math.Pow(math.Pi/2.0-β, -2.83)
	ge2 := 0.746 * math.Pow(geo.Pco/geo.Dh, -0.082) * math.Pow(math.Pi/2.0-β, 0.61)
	s := twophstate(25, 0.5)
	reeq := s.Geq() * geo.Dh / s.MuL
	nu := ge1 * math.Pow(reeq, ge2) * math.Pow(1e-3, 0.3) * math.Pow(s.PrL, 0.4)
	chk.Float64(tst, "h(bo=1e-3)", 1e-10, mdl.H(s, 1e-3), nu*s.KL/geo.Dh)

	// increasing heat flux strengthens nucleate boiling
	if mdl.H(s, 2e-3) <= mdl.H(s, 1e-3) {
		tst.Errorf("h should increase with the boiling number")
	}

	// geometry checks
	if _, err := NewBoiling("han", &Geometry{Dh: 0.004, Phi: 60}); err == nil {
		tst.Errorf("han should require the corrugation pitch")
	}
	if _, err := NewBoiling("unknown", geo); err == nil {
		tst.Errorf("NewBoiling should have failed with an unknown name")
	}
}
