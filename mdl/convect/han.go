// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Han implements the brazed-plate evaporation correlation [8]
//
//   Ge1 = 2.81・(Λ/Dh)^(-0.041)・(π/2-β)^(-2.83)
//   Ge2 = 0.746・(Λ/Dh)^(-0.082)・(π/2-β)^0.61
//   Nu  = Ge1・Reeq^Ge2・Boeq^0.3・Prl^0.4
//
// with Λ the corrugation pitch, β the chevron angle and Reeq built on the
// equivalent mass flux of Akers. The equivalent boiling number
// Boeq = q/(Geq・hfg) couples to the local heat flux and is iterated by the
// zone evaluator.
type Han struct {
	ge1 float64
	ge2 float64
	dh  float64
}

// add model to database
func init() {
	blAllocators["han"] = func() Boiling { return new(Han) }
}

// Init initialises this model
func (o *Han) Init(g *Geometry) error {
	if g.Dh <= 0 || g.Pco <= 0 {
		return chk.Err("han: hydraulic diameter and corrugation pitch must be positive: Dh=%g, Pco=%g", g.Dh, g.Pco)
	}
	if g.Phi <= 0 || g.Phi >= 90 {
		return chk.Err("han: chevron angle must be within (0,90) degrees: Phi=%g", g.Phi)
	}
	β := g.Phi * math.Pi / 180.0
	o.ge1 = 2.81 * math.Pow(g.Pco/g.Dh, -0.041) * math.Pow(math.Pi/2.0-β, -2.83)
	o.ge2 = 0.746 * math.Pow(g.Pco/g.Dh, -0.082) * math.Pow(math.Pi/2.0-β, 0.61)
	o.dh = g.Dh
	return nil
}

// H computes the boiling film coefficient at boiling number bo
func (o *Han) H(s *TwoPhase, bo float64) float64 {
	bo = math.Max(bo, 1e-8)
	reeq := s.Geq() * o.dh / s.MuL
	nu := o.ge1 * math.Pow(reeq, o.ge2) * math.Pow(bo, 0.3) * math.Pow(s.PrL, 0.4)
	return nu * s.KL / o.dh
}
