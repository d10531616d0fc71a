// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_inp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp01. read case file")

	c, err := ReadCase("data/phex.json")
	if err != nil {
		tst.Errorf("ReadCase failed:\n%v", err)
		return
	}

	chk.String(tst, c.Prms.Kind, KindCorr)
	chk.String(tst, c.Hot.Mode, ModeTemperature)
	chk.String(tst, c.Cold.Mode, ModeEnthalpy) // defaulted
	chk.String(tst, c.Cold.Fluid, "wf1")
	chk.Float64(tst, "hot mdot", 1e-15, c.Hot.Mdot, 0.4)
	chk.Float64(tst, "cold dh", 1e-15, c.Prms.Cold.Geo.Dh, 0.004)
	chk.String(tst, c.Prms.Cold.CorrTP, "han")

	// defaults
	chk.Int(tst, "nsub", c.Prms.Nsub, 5)
	chk.String(tst, c.Prms.Void, "zivi")
	chk.Float64(tst, "flowexp", 1e-15, c.Prms.Hot.FlowExp, 0.8)

	if _, err := ReadCase("data/missing.json"); err == nil {
		tst.Errorf("ReadCase should have failed with a missing file")
	}
}

func Test_inp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp02. validation")

	// stream checks
	s := &Stream{Fluid: "water", Mode: "quality", P: 1e5, Mdot: 1}
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should reject an unknown input mode")
	}
	s.Mode = ModeEnthalpy
	s.P = 0
	if err := s.Validate(); err == nil {
		tst.Errorf("Validate should reject a non-positive pressure")
	}

	// variant checks
	p := &Params{Kind: "magic"}
	p.SetDefault()
	if err := p.Validate(); err == nil {
		tst.Errorf("Validate should reject an unknown kind")
	}
	p = &Params{Kind: KindPinch}
	p.SetDefault()
	if err := p.Validate(); err == nil {
		tst.Errorf("Validate should reject a zero target pinch")
	}
	p = &Params{Kind: KindPolEff, EffPoly: []float64{0.8, 0.1}}
	p.SetDefault()
	p.Hot.MdotNom, p.Cold.MdotNom = 1, 1
	if err := p.Validate(); err == nil {
		tst.Errorf("Validate should reject a short effectiveness polynomial")
	}
	p = &Params{Kind: KindEff, Eff: 1.2}
	p.SetDefault()
	if err := p.Validate(); err == nil {
		tst.Errorf("Validate should reject an effectiveness above one")
	}
}

func Test_inp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inp03. side swap is pure and involutive")

	p := &Params{
		Kind:    KindPolEff,
		EffPoly: []float64{0.9, 0.05, -0.03, 0.01, 0.02, -0.01},
	}
	p.SetDefault()
	p.Hot.MdotNom, p.Cold.MdotNom = 0.4, 0.05
	p.Hot.HLiq, p.Cold.HLiq = 5000, 3000

	s := p.Swapped()
	chk.Float64(tst, "swapped hot HLiq", 1e-15, s.Hot.HLiq, 3000)
	chk.Float64(tst, "swapped hot mdotnom", 1e-15, s.Hot.MdotNom, 0.05)
	chk.Array(tst, "swapped effpoly", 1e-15, s.EffPoly, []float64{0.9, -0.03, 0.05, -0.01, 0.02, 0.01})

	// receiver untouched
	chk.Float64(tst, "original hot HLiq", 1e-15, p.Hot.HLiq, 5000)
	chk.Array(tst, "original effpoly", 1e-15, p.EffPoly, []float64{0.9, 0.05, -0.03, 0.01, 0.02, -0.01})

	// double swap restores the original
	ss := s.Swapped()
	chk.Float64(tst, "restored cold HLiq", 1e-15, ss.Cold.HLiq, 3000)
	chk.Array(tst, "restored effpoly", 1e-15, ss.EffPoly, p.EffPoly)
}
