// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Wanniarachchi implements the chevron-plate correlation [2], blending
// laminar and turbulent contributions
//
//   m   = 0.646 + 0.00111・β
//   Nul = 3.65・β^(-0.455)・Φ^0.661・Re^0.339
//   Nut = 12.6・β^(-1.142)・Φ^(1-m)・Re^m
//   Nu  = (Nul³ + Nut³)^(1/3)・Pr^(1/3)
//
// with β the chevron angle in degrees (valid 20 to 62) and Φ the area
// enlargement factor.
type Wanniarachchi struct {
	β float64 // chevron angle [deg]
	Φ float64 // area enlargement factor
}

// add model to database
func init() {
	spAllocators["wanniarachchi"] = func() SinglePhase { return new(Wanniarachchi) }
}

// Init initialises this model
func (o *Wanniarachchi) Init(g *Geometry) error {
	if g.Phi < 20 || g.Phi > 62 {
		return chk.Err("wanniarachchi: chevron angle must be within [20,62] degrees: Phi=%g", g.Phi)
	}
	o.β = g.Phi
	o.Φ = g.Enl
	if o.Φ == 0 {
		o.Φ = 1.17
	}
	return nil
}

// Nu computes the Nusselt number
func (o *Wanniarachchi) Nu(re, pr float64) float64 {
	m := 0.646 + 0.00111*o.β
	nul := 3.65 * math.Pow(o.β, -0.455) * math.Pow(o.Φ, 0.661) * math.Pow(re, 0.339)
	nut := 12.6 * math.Pow(o.β, -1.142) * math.Pow(o.Φ, 1.0-m) * math.Pow(re, m)
	return math.Cbrt(nul*nul*nul+nut*nut*nut) * math.Pow(pr, 1.0/3.0)
}
