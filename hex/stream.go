// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hex implements a steady-state counter-flow heat exchanger solver:
// an outer duty search closed by a pinch, effectiveness or area law over a
// moving-boundary zone profile, with per-zone convective correlations and a
// void-fraction based mass inventory.
package hex

import (
	"math"

	"github.com/Luftmenschh/ORCmKit/inp"
	"github.com/Luftmenschh/ORCmKit/mdl/fluid"
	"github.com/cpmech/gosl/utl"
)

// stream holds one resolved stream: the supply state, the flow rate and the
// saturation enthalpies at the supply pressure
type stream struct {
	fl    fluid.Model // property model
	mode  string      // input mode tag
	p     float64     // supply pressure [Pa]
	hin   float64     // supply enthalpy [J/kg]
	tin   float64     // supply temperature [K]
	mdot  float64     // mass flow rate [kg/s]
	twoph bool        // enthalpy driven with a saturation dome
	hls   float64     // saturated liquid enthalpy at p [J/kg]
	hvs   float64     // saturated vapor enthalpy at p [J/kg]
}

// newStream resolves an input record against the fluid database. Temperature
// driven streams are treated as liquid-like single-phase throughout.
func newStream(s *inp.Stream, db fluid.Database) (*stream, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	fl, err := db.Get(s.Fluid)
	if err != nil {
		return nil, err
	}
	o := &stream{fl: fl, mode: s.Mode, p: s.P, mdot: s.Mdot}
	switch s.Mode {
	case inp.ModeEnthalpy:
		st, err := fl.AtPH(s.P, s.H)
		if err != nil {
			return nil, err
		}
		o.hin, o.tin = s.H, st.T
	case inp.ModeTemperature:
		st, err := fl.AtPT(s.P, s.T)
		if err != nil {
			return nil, err
		}
		o.hin, o.tin = st.H, s.T
	}
	if fl.TwoPhase() && s.Mode == inp.ModeEnthalpy {
		sl, err := fl.AtPX(s.P, 0)
		if err != nil {
			return nil, err
		}
		sv, err := fl.AtPX(s.P, 1)
		if err != nil {
			return nil, err
		}
		o.twoph = true
		o.hls, o.hvs = sl.H, sv.H
	}
	return o, nil
}

// regime classifies a cell of this stream by its mean enthalpy
func (o *stream) regime(hmean float64) int {
	if !o.twoph {
		return RegLiquid
	}
	switch {
	case hmean < o.hls:
		return RegLiquid
	case hmean > o.hvs:
		return RegVapor
	}
	return RegTwoPhase
}

// quality returns the vapor quality of an enthalpy, clamped to [0,1]
func (o *stream) quality(h float64) float64 {
	x := (h - o.hls) / (o.hvs - o.hls)
	return math.Min(math.Max(x, 0), 1)
}

// satFracs returns the duty fractions of the saturation boundaries and of the
// equal-enthalpy subdivisions of the two-phase range, restricted to the open
// active range (hlo,hhi). hlo is the enthalpy at duty fraction zero.
func (o *stream) satFracs(hlo, hhi, q float64, nsub int) (xs []float64) {
	if !o.twoph {
		return
	}
	a := math.Max(o.hls, hlo)
	b := math.Min(o.hvs, hhi)
	if b-a <= 0 {
		return
	}
	for _, h := range utl.LinSpace(a, b, nsub+1) {
		if h <= hlo || h >= hhi {
			continue
		}
		xs = append(xs, (h-hlo)*o.mdot/q)
	}
	return
}
