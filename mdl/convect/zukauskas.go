// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Zukauskas implements crossflow over staggered tube banks [3]
//
//   Nu = C2・C・Re^m・Pr^0.36
//
// with C and m selected by Reynolds range and C2 correcting banks with fewer
// than 16 rows. Re must be based on the maximum velocity in the bank and on
// the tube outer diameter (set Geometry.Dh accordingly).
type Zukauskas struct {
	ptpl float64 // transverse to longitudinal pitch ratio
	crow float64 // row count correction C2
}

// add model to database
func init() {
	spAllocators["zukauskas"] = func() SinglePhase { return new(Zukauskas) }
}

// row correction for staggered banks
func rowFactor(n int) float64 {
	switch {
	case n <= 0 || n >= 16:
		return 1.0
	case n == 1:
		return 0.64
	case n == 2:
		return 0.76
	case n == 3:
		return 0.84
	case n == 4:
		return 0.89
	case n <= 6:
		return 0.92
	case n <= 9:
		return 0.95
	case n <= 12:
		return 0.97
	default:
		return 0.98
	}
}

// Init initialises this model
func (o *Zukauskas) Init(g *Geometry) error {
	if g.Pt <= 0 || g.Pl <= 0 {
		return chk.Err("zukauskas: tube pitches must be positive: Pt=%g, Pl=%g", g.Pt, g.Pl)
	}
	o.ptpl = g.Pt / g.Pl
	o.crow = rowFactor(g.Nrows)
	return nil
}

// Nu computes the Nusselt number
func (o *Zukauskas) Nu(re, pr float64) float64 {
	var c, m float64
	switch {
	case re < 100:
		c, m = 0.90, 0.40
	case re < 1000:
		c, m = 0.52, 0.50
	case re < 2e5:
		m = 0.60
		if o.ptpl < 2 {
			c = 0.35 * math.Pow(o.ptpl, 0.2)
		} else {
			c = 0.40
		}
	default:
		c, m = 0.022, 0.84
	}
	return o.crow * c * math.Pow(re, m) * math.Pow(pr, 0.36)
}
