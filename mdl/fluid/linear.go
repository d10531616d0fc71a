// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Linear implements a two-phase fluid with a linearized saturation line,
// constant phase heat capacities and latent heat, constant liquid density,
// ideal-gas vapor density and constant transport properties per phase.
// The enthalpy and entropy datum is liquid at Tref. The model is:
//
//   Tsat(p) = Tsat0 + DTsatDP・(p - Pref)
//   hls(p)  = CpL・(Tsat - Tref)         saturated liquid enthalpy
//   hvs(p)  = hls + Hfg                  saturated vapor enthalpy
//   ρvap    = p / (Rvap・T)
//
type Linear struct {
	FluidName string  // identifier
	Pref      float64 // reference pressure [Pa]
	Tref      float64 // datum temperature [K]
	Tsat0     float64 // saturation temperature at Pref [K]
	DTsatDP   float64 // saturation line slope [K/Pa]
	CpL       float64 // liquid specific heat [J/(kg·K)]
	CpV       float64 // vapor specific heat [J/(kg·K)]
	Hfg       float64 // latent heat [J/kg]
	RhoL      float64 // liquid density [kg/m³]
	Rvap      float64 // vapor gas constant [J/(kg·K)]
	MuL       float64 // liquid viscosity [Pa·s]
	MuV       float64 // vapor viscosity [Pa·s]
	KL        float64 // liquid conductivity [W/(m·K)]
	KV        float64 // vapor conductivity [W/(m·K)]
}

// tolerance for deciding that a temperature sits on the saturation line
const satTol = 1e-9

// Name returns the fluid identifier
func (o *Linear) Name() string { return o.FluidName }

// TwoPhase returns true: this fluid has a saturation dome
func (o *Linear) TwoPhase() bool { return true }

// Tsat returns the saturation temperature at p
func (o *Linear) Tsat(p float64) float64 {
	return o.Tsat0 + o.DTsatDP*(p-o.Pref)
}

// HSat returns the saturated liquid and vapor enthalpies at p
func (o *Linear) HSat(p float64) (hls, hvs float64) {
	hls = o.CpL * (o.Tsat(p) - o.Tref)
	hvs = hls + o.Hfg
	return
}

// AtPH computes the state from pressure and enthalpy
func (o *Linear) AtPH(p, h float64) (*State, error) {
	Ts := o.Tsat(p)
	hls, hvs := o.HSat(p)
	s := &State{P: p, H: h}
	switch {
	case h < hls:
		s.T = o.Tref + h/o.CpL
		s.X = -1
		o.fillLiq(s)
	case h > hvs:
		s.T = Ts + (h-hvs)/o.CpV
		s.X = 2
		o.fillVap(s, Ts)
	default:
		s.T = Ts
		s.X = (h - hls) / o.Hfg
		o.fillDome(s, Ts)
	}
	return s, nil
}

// AtPT computes the state from pressure and temperature. Temperatures on the
// saturation line resolve to the saturated liquid state.
func (o *Linear) AtPT(p, T float64) (*State, error) {
	Ts := o.Tsat(p)
	if math.Abs(T-Ts) <= satTol {
		return o.AtPX(p, 0)
	}
	s := &State{P: p, T: T}
	if T < Ts {
		s.H = o.CpL * (T - o.Tref)
		s.X = -1
		o.fillLiq(s)
		return s, nil
	}
	_, hvs := o.HSat(p)
	s.H = hvs + o.CpV*(T-Ts)
	s.X = 2
	o.fillVap(s, Ts)
	return s, nil
}

// AtPX computes the saturation state from pressure and quality
func (o *Linear) AtPX(p, x float64) (*State, error) {
	if x < 0 || x > 1 {
		return nil, chk.Err("fluid %q: quality x=%g is outside [0,1]", o.FluidName, x)
	}
	Ts := o.Tsat(p)
	hls, _ := o.HSat(p)
	s := &State{P: p, T: Ts, H: hls + x*o.Hfg, X: x}
	switch x {
	case 0:
		o.fillLiq(s)
		s.X = 0
	case 1:
		o.fillVap(s, Ts)
		s.X = 1
	default:
		o.fillDome(s, Ts)
	}
	return s, nil
}

func (o *Linear) fillLiq(s *State) {
	s.S = o.CpL * math.Log(s.T/o.Tref)
	s.Rho = o.RhoL
	s.Cp = o.CpL
	s.Mu = o.MuL
	s.K = o.KL
	s.Pr = o.CpL * o.MuL / o.KL
}

func (o *Linear) fillVap(s *State, Ts float64) {
	sls := o.CpL * math.Log(Ts/o.Tref)
	svs := sls + o.Hfg/Ts
	s.S = svs + o.CpV*math.Log(s.T/Ts)
	s.Rho = s.P / (o.Rvap * s.T)
	s.Cp = o.CpV
	s.Mu = o.MuV
	s.K = o.KV
	s.Pr = o.CpV * o.MuV / o.KV
}

func (o *Linear) fillDome(s *State, Ts float64) {
	sls := o.CpL * math.Log(Ts/o.Tref)
	s.S = sls + s.X*o.Hfg/Ts
	vl := 1.0 / o.RhoL
	vv := o.Rvap * Ts / s.P
	s.Rho = 1.0 / (vl + s.X*(vv-vl))
	s.Mu = o.MuL + s.X*(o.MuV-o.MuL)
	s.K = o.KL + s.X*(o.KV-o.KL)
}
