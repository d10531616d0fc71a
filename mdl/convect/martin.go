// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Martin implements the generalized Lévêque correlation [1] for chevron
// plates with corrugation angle φ
//
//   Re < 2000:  ξ0 = 64/Re                       ξ1 = 597/Re + 3.85
//   Re ≥ 2000:  ξ0 = (1.8・log10(Re) - 1.5)⁻²    ξ1 = 39/Re^0.289
//
//   1/√ξ = cosφ/√(0.18・tanφ + 0.36・sinφ + ξ0/cosφ) + (1-cosφ)/√(3.8・ξ1)
//   Nu   = 0.122・Pr^(1/3)・(ξ・Re²・sin(2φ))^0.374
//
// The wall viscosity-ratio factor is not applied because wall temperatures
// are not tracked by the zone evaluator.
type Martin struct {
	φ float64 // corrugation angle [rad]
}

// add model to database
func init() {
	spAllocators["martin"] = func() SinglePhase { return new(Martin) }
}

// Init initialises this model
func (o *Martin) Init(g *Geometry) error {
	if g.Phi <= 0 || g.Phi >= 90 {
		return chk.Err("martin: corrugation angle must be within (0,90) degrees: Phi=%g", g.Phi)
	}
	o.φ = g.Phi * math.Pi / 180.0
	return nil
}

// Nu computes the Nusselt number
func (o *Martin) Nu(re, pr float64) float64 {
	var ξ0, ξ1 float64
	if re < 2000 {
		ξ0 = 64.0 / re
		ξ1 = 597.0/re + 3.85
	} else {
		ξ0 = math.Pow(1.8*math.Log10(re)-1.5, -2.0)
		ξ1 = 39.0 / math.Pow(re, 0.289)
	}
	den := math.Cos(o.φ)/math.Sqrt(0.18*math.Tan(o.φ)+0.36*math.Sin(o.φ)+ξ0/math.Cos(o.φ)) + (1.0-math.Cos(o.φ))/math.Sqrt(3.8*ξ1)
	ξ := 1.0 / (den * den)
	return 0.122 * math.Pow(pr, 1.0/3.0) * math.Pow(ξ*re*re*math.Sin(2.0*o.φ), 0.374)
}
