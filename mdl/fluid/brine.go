// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Brine implements an incompressible single-phase coolant with constant
// specific heat and a density linear in temperature:
//
//   h(T) = Cp・(T - Tref)
//   ρ(T) = Rho0・(1 - Bet・(T - Tref))
//
type Brine struct {
	FluidName string  // identifier
	Tref      float64 // datum temperature [K]
	Cp        float64 // specific heat [J/(kg·K)]
	Rho0      float64 // density at Tref [kg/m³]
	Bet       float64 // volumetric expansion coefficient [1/K]
	Mu        float64 // viscosity [Pa·s]
	K         float64 // conductivity [W/(m·K)]
}

// Name returns the fluid identifier
func (o *Brine) Name() string { return o.FluidName }

// TwoPhase returns false: brines have no saturation dome
func (o *Brine) TwoPhase() bool { return false }

// AtPH computes the state from pressure and enthalpy
func (o *Brine) AtPH(p, h float64) (*State, error) {
	return o.AtPT(p, o.Tref+h/o.Cp)
}

// AtPT computes the state from pressure and temperature
func (o *Brine) AtPT(p, T float64) (*State, error) {
	return &State{
		P:   p,
		T:   T,
		H:   o.Cp * (T - o.Tref),
		S:   o.Cp * math.Log(T/o.Tref),
		Rho: o.Rho0 * (1.0 - o.Bet*(T-o.Tref)),
		X:   -1,
		Cp:  o.Cp,
		Mu:  o.Mu,
		K:   o.K,
		Pr:  o.Cp * o.Mu / o.K,
	}, nil
}

// AtPX always fails: brines have no saturation states
func (o *Brine) AtPX(p, x float64) (*State, error) {
	return nil, chk.Err("fluid %q is single-phase and has no saturation states", o.FluidName)
}
