// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Fin describes an annular fin array on one exchanger side. A nil *Fin means
// the side is unfinned and has unit surface efficiency.
type Fin struct {
	Kcond float64 `json:"kcond"` // fin material conductivity [W/(m·K)]
	Th    float64 `json:"th"`    // fin thickness [m]
	Rroot float64 `json:"rroot"` // fin root radius [m]
	Rtip  float64 `json:"rtip"`  // fin tip radius [m]
	Frac  float64 `json:"frac"`  // finned fraction of the total area
}

// Validate checks the fin data
func (o *Fin) Validate() error {
	if o == nil {
		return nil
	}
	if o.Kcond <= 0 || o.Th <= 0 || o.Rroot <= 0 {
		return chk.Err("fin: conductivity, thickness and root radius must be positive: k=%g, t=%g, r1=%g", o.Kcond, o.Th, o.Rroot)
	}
	if o.Rtip <= o.Rroot {
		return chk.Err("fin: tip radius must exceed root radius: r2=%g <= r1=%g", o.Rtip, o.Rroot)
	}
	if o.Frac < 0 || o.Frac > 1 {
		return chk.Err("fin: finned area fraction must be within [0,1]: frac=%g", o.Frac)
	}
	return nil
}

// Efficiency computes the single-fin efficiency with the Schmidt annular-fin
// approximation
//
//   m   = √(2h/(k・t))
//   r2c = Rtip + t/2
//   φ   = (r2c/Rroot - 1)・(1 + 0.35・ln(r2c/Rroot))
//   η   = tanh(m・Rroot・φ) / (m・Rroot・φ)
//
func (o *Fin) Efficiency(h float64) float64 {
	m := math.Sqrt(2.0 * h / (o.Kcond * o.Th))
	r2c := o.Rtip + 0.5*o.Th
	ρ := r2c / o.Rroot
	φ := (ρ - 1.0) * (1.0 + 0.35*math.Log(ρ))
	ml := m * o.Rroot * φ
	if ml < 1e-6 {
		return 1.0
	}
	return math.Tanh(ml) / ml
}

// SurfEff computes the overall surface efficiency discounting the convective
// coefficient h
func (o *Fin) SurfEff(h float64) float64 {
	if o == nil {
		return 1.0
	}
	return 1.0 - o.Frac*(1.0-o.Efficiency(h))
}
