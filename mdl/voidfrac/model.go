// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voidfrac implements void fraction models for two-phase flow and the
// liquid-weight integral used for refrigerant mass inventory
//  References:
//   [1] Zivi SM (1964) Estimation of steady-state steam void-fraction by means of the
//       principle of minimum entropy production, Journal of Heat Transfer, 86(2), 247-251
//   [2] Hughmark GA (1962) Holdup in gas-liquid flow, Chemical Engineering Progress, 58(4), 62-65
package voidfrac

import "github.com/cpmech/gosl/chk"

// Conditions holds the local two-phase flow conditions seen by the models
type Conditions struct {
	RhoL float64 // liquid density [kg/m³]
	RhoV float64 // vapor density [kg/m³]
	MuL  float64 // liquid viscosity [Pa·s]
	MuV  float64 // vapor viscosity [Pa·s]
	G    float64 // mass flux [kg/(m²·s)]
	Dh   float64 // hydraulic diameter [m]
}

// Model computes the cross-sectional void fraction α(x) for a vapor quality x.
// The ok flag reports convergence; iterative models return α=1 and ok=false
// when they fail to converge instead of aborting.
type Model interface {
	Init(c *Conditions) error       // initialises the model and checks conditions
	Alpha(x float64) (float64, bool) // void fraction at quality x
}

// New returns a new void fraction model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'voidfrac' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// LiquidMean computes the mean liquid weight over a quality interval,
//
//   w̄ = 1/(xb-xa) ・ ∫ (1-α) dx   from xa to xb
//
// with Simpson integration, and returns the number of quality points at which
// the model did not converge.
func LiquidMean(mdl Model, xa, xb float64) (wbar float64, nfail int) {
	if xb < xa {
		xa, xb = xb, xa
	}
	if xb-xa < 1e-12 {
		α, ok := mdl.Alpha((xa + xb) / 2.0)
		if !ok {
			nfail++
		}
		return 1.0 - α, nfail
	}
	n := 10 // even number of Simpson subintervals
	Δx := (xb - xa) / float64(n)
	sum := 0.0
	for i := 0; i <= n; i++ {
		α, ok := mdl.Alpha(xa + float64(i)*Δx)
		if !ok {
			nfail++
		}
		w := 1.0 - α
		switch {
		case i == 0 || i == n:
			sum += w
		case i%2 == 1:
			sum += 4.0 * w
		default:
			sum += 2.0 * w
		}
	}
	wbar = sum / (3.0 * float64(n))
	return
}
