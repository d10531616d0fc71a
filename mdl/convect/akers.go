// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Akers implements the equivalent-Reynolds condensation correlation [6]
//
//   Geq  = G・((1-x) + x・√(ρl/ρv))
//   Reeq = Geq・Dh/μl
//
//   Reeq > 5e4:  Nu = 0.0265・Reeq^0.8・Prl^(1/3)
//   otherwise:   Nu = 5.03・Reeq^(1/3)・Prl^(1/3)
//
type Akers struct {
	dh float64
}

// add model to database
func init() {
	cdAllocators["akers"] = func() Condensation { return new(Akers) }
}

// Init initialises this model
func (o *Akers) Init(g *Geometry) error {
	if g.Dh <= 0 {
		return chk.Err("akers: hydraulic diameter must be positive: Dh=%g", g.Dh)
	}
	o.dh = g.Dh
	return nil
}

// H computes the condensing film coefficient
func (o *Akers) H(s *TwoPhase) float64 {
	reeq := s.Geq() * o.dh / s.MuL
	var nu float64
	if reeq > 5e4 {
		nu = 0.0265 * math.Pow(reeq, 0.8) * math.Pow(s.PrL, 1.0/3.0)
	} else {
		nu = 5.03 * math.Cbrt(reeq) * math.Pow(s.PrL, 1.0/3.0)
	}
	return nu * s.KL / o.dh
}
