// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voidfrac

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Hughmark implements the implicit drift-flux model [2]. The correlating
// group Z depends on the void fraction itself through the mixture viscosity,
//
//   Re = Dh・G / (μl + α・(μv-μl))
//   Fr = Vm² / (g・Dh)         Vm = G・(x/ρv + (1-x)/ρl)
//   Z  = Re^(1/6)・Fr^(1/8) / yl^(1/4)
//   α  = Kh(Z)・β
//
// with β the homogeneous void fraction, yl = 1-β and Kh tabulated. The model
// iterates α with a fixed point scheme and falls back to bisection; if the
// residual still exceeds 5e-2 it returns α=1 with ok=false.
type Hughmark struct {
	NmaxIt  int     // max fixed point iterations
	Itol    float64 // relative fixed point tolerance on α
	NmaxBis int     // max bisection iterations of the fallback
	c       *Conditions
}

// add model to database
func init() {
	allocators["hughmark"] = func() Model { return new(Hughmark) }
}

// tabulated correlating parameter Kh(Z) from [2]
var (
	hmZ = []float64{1.3, 1.5, 2, 3, 4, 5, 6, 8, 10, 15, 20, 40, 70, 130}
	hmK = []float64{0.185, 0.225, 0.325, 0.49, 0.605, 0.675, 0.72, 0.767, 0.78, 0.808, 0.83, 0.88, 0.93, 0.98}
)

// Init initialises this model and sets default control constants
func (o *Hughmark) Init(c *Conditions) error {
	if c.RhoL <= 0 || c.RhoV <= 0 || c.MuL <= 0 || c.MuV <= 0 {
		return chk.Err("hughmark: phase properties must be positive: ρl=%g, ρv=%g, μl=%g, μv=%g", c.RhoL, c.RhoV, c.MuL, c.MuV)
	}
	if c.G <= 0 || c.Dh <= 0 {
		return chk.Err("hughmark: mass flux and hydraulic diameter must be positive: G=%g, Dh=%g", c.G, c.Dh)
	}
	o.c = c
	if o.NmaxIt == 0 {
		o.NmaxIt = 10
	}
	if o.Itol == 0 {
		o.Itol = 0.01
	}
	if o.NmaxBis == 0 {
		o.NmaxBis = 50
	}
	return nil
}

// Alpha computes the void fraction at quality x
func (o *Hughmark) Alpha(x float64) (float64, bool) {
	if x <= 0 {
		return 0, true
	}
	if x >= 1 {
		return 1, true
	}
	β := 1.0 / (1.0 + (1.0-x)/x*(o.c.RhoV/o.c.RhoL))

	// fixed point iterations
	α := β
	for it := 0; it < o.NmaxIt; it++ {
		αnew := o.kh(x, α, β) * β
		if math.Abs(αnew-α) <= o.Itol*math.Abs(αnew) {
			return αnew, true
		}
		α = αnew
	}

	// bisection fallback on r(α) = α - Kh(α)・β
	lo, hi := 0.0, 1.0
	for it := 0; it < o.NmaxBis; it++ {
		mid := 0.5 * (lo + hi)
		if mid-o.kh(x, mid, β)*β < 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= 1e-4 {
			break
		}
	}
	α = 0.5 * (lo + hi)
	if math.Abs(α-o.kh(x, α, β)*β) > 5e-2 {
		return 1, false
	}
	return α, true
}

// kh computes the correlating parameter Kh for a trial void fraction
func (o *Hughmark) kh(x, α, β float64) float64 {
	c := o.c
	re := c.Dh * c.G / (c.MuL + α*(c.MuV-c.MuL))
	vm := c.G * (x/c.RhoV + (1.0-x)/c.RhoL)
	fr := vm * vm / (grav * c.Dh)
	yl := 1.0 - β
	z := math.Pow(re, 1.0/6.0) * math.Pow(fr, 1.0/8.0) / math.Pow(yl, 0.25)
	if z <= hmZ[0] {
		return hmK[0]
	}
	if z >= hmZ[len(hmZ)-1] {
		return hmK[len(hmK)-1]
	}
	for i := 1; i < len(hmZ); i++ {
		if z <= hmZ[i] {
			return hmK[i-1] + (hmK[i]-hmK[i-1])*(z-hmZ[i-1])/(hmZ[i]-hmZ[i-1])
		}
	}
	return hmK[len(hmK)-1]
}

// gravity acceleration
const grav = 9.81
