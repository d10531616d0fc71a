// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// BriggsYoung implements crossflow over banks of circular finned tubes [5]
//
//   Nu = 0.134・Re^0.681・Pr^(1/3)・(s/hf)^0.2・(s/tf)^0.1134
//
// with s the clear fin spacing, hf the fin height and tf the fin thickness.
// Re is based on the tube outer diameter (set Geometry.Dh accordingly).
type BriggsYoung struct {
	shf float64 // spacing to fin height ratio
	stf float64 // spacing to fin thickness ratio
}

// add model to database
func init() {
	spAllocators["briggsyoung"] = func() SinglePhase { return new(BriggsYoung) }
}

// Init initialises this model
func (o *BriggsYoung) Init(g *Geometry) error {
	if g.Fsp <= 0 || g.Fht <= 0 || g.Fth <= 0 {
		return chk.Err("briggsyoung: fin spacing, height and thickness must be positive: s=%g, hf=%g, tf=%g", g.Fsp, g.Fht, g.Fth)
	}
	o.shf = g.Fsp / g.Fht
	o.stf = g.Fsp / g.Fth
	return nil
}

// Nu computes the Nusselt number
func (o *BriggsYoung) Nu(re, pr float64) float64 {
	return 0.134 * math.Pow(re, 0.681) * math.Pow(pr, 1.0/3.0) * math.Pow(o.shf, 0.2) * math.Pow(o.stf, 0.1134)
}
