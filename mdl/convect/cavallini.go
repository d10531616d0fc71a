// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Cavallini implements the two-regime condensation model [7]. The
// dimensionless gas velocity
//
//   Jg = x・G / √(g・Dh・ρv・(ρl-ρv))
//
// classifies the flow against the transition value Jgᵀ: above it the film is
// shear dominated (ΔT-independent branch), below it gravity matters and the
// coefficient picks up a Nusselt-film term driven by the local temperature
// difference, for which the zone log-mean ΔT is used.
type Cavallini struct {
	CT float64 // transition constant; 1.6 for hydrocarbons, 2.6 otherwise
	dh float64
}

// add model to database
func init() {
	cdAllocators["cavallini"] = func() Condensation { return new(Cavallini) }
}

// Init initialises this model
func (o *Cavallini) Init(g *Geometry) error {
	if g.Dh <= 0 {
		return chk.Err("cavallini: hydraulic diameter must be positive: Dh=%g", g.Dh)
	}
	o.dh = g.Dh
	if o.CT == 0 {
		o.CT = 2.6
	}
	return nil
}

// H computes the condensing film coefficient
func (o *Cavallini) H(s *TwoPhase) float64 {
	x := math.Min(math.Max(s.X, 1e-4), 1.0-1e-4)
	jg := x * s.G / math.Sqrt(grav*o.dh*s.RhoV*(s.RhoL-s.RhoV))
	xtt := math.Pow((1.0-x)/x, 0.9) * math.Sqrt(s.RhoV/s.RhoL) * math.Pow(s.MuL/s.MuV, 0.1)
	jgt := math.Pow(math.Pow(7.5/(4.3*math.Pow(xtt, 1.111)+1.0), -3.0)+math.Pow(o.CT, -3.0), -1.0/3.0)

	relo := s.G * o.dh / s.MuL
	hlo := 0.023 * math.Pow(relo, 0.8) * math.Pow(s.PrL, 0.4) * s.KL / o.dh
	ha := hlo * (1.0 + 1.128*math.Pow(x, 0.817)*math.Pow(s.RhoL/s.RhoV, 0.3685)*math.Pow(s.MuL/s.MuV, 0.2363)*math.Pow(1.0-s.MuV/s.MuL, 2.144)*math.Pow(s.PrL, -0.1))

	// shear dominated
	if jg > jgt {
		return ha
	}

	// gravity dominated
	ΔT := math.Max(s.DT, 0.01)
	hstrat := 0.725/(1.0+0.741*math.Pow((1.0-x)/x, 0.3321))*math.Pow(s.KL*s.KL*s.KL*s.RhoL*(s.RhoL-s.RhoV)*grav*s.Hfg/(s.MuL*o.dh*ΔT), 0.25) + (1.0-math.Pow(x, 0.087))*hlo
	return (ha*math.Pow(jgt/jg, 0.8)-hstrat)*(jg/jgt) + hstrat
}
