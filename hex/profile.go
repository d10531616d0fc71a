// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"
	"sort"
)

// Profile holds the boundary states of both streams on the shared cumulative
// duty fraction axis. Index 0 sits at the hot-outlet / cold-inlet end of the
// counter-flow arrangement; enthalpies increase with the index on both sides.
type Profile struct {
	Q      float64   // total duty [W]
	X      []float64 // cumulative duty fraction per boundary
	Hh     []float64 // hot stream enthalpy [J/kg]
	Hc     []float64 // cold stream enthalpy [J/kg]
	Th     []float64 // hot stream temperature [K]
	Tc     []float64 // cold stream temperature [K]
	Sh     []float64 // hot stream entropy [J/(kg·K)]
	Sc     []float64 // cold stream entropy [J/(kg·K)]
	DT     []float64 // hot minus cold temperature difference [K]
	Pinch  float64   // smallest boundary temperature difference [K]
	Ipinch int       // boundary index of the pinch
}

// buildProfile computes the boundary profile at duty q. Phase boundaries of
// both streams are merged on the duty fraction axis, with the two-phase range
// of each stream subdivided into nsub equal-enthalpy cells.
func buildProfile(hot, cold *stream, q float64, nsub int) (*Profile, error) {
	p := &Profile{Q: q}
	if q <= 0 {
		p.Q = 0
		p.X = []float64{0, 1}
		for range p.X {
			if err := p.fill(hot, cold, hot.hin, cold.hin); err != nil {
				return nil, err
			}
		}
		p.locatePinch()
		return p, nil
	}

	// exit enthalpies from the overall energy balance
	hhOut := hot.hin - q/hot.mdot
	hcOut := cold.hin + q/cold.mdot

	// collect and merge phase boundaries of both streams
	xs := append(hot.satFracs(hhOut, hot.hin, q, nsub), cold.satFracs(cold.hin, hcOut, q, nsub)...)
	sort.Float64s(xs)
	p.X = append(p.X, 0)
	for _, x := range xs {
		if x <= 1e-10 || x >= 1.0-1e-10 {
			continue
		}
		if x-p.X[len(p.X)-1] < 1e-10 {
			continue
		}
		p.X = append(p.X, x)
	}
	p.X = append(p.X, 1)

	// boundary states
	for _, x := range p.X {
		hh := hhOut + x*q/hot.mdot
		hc := cold.hin + x*q/cold.mdot
		if err := p.fill(hot, cold, hh, hc); err != nil {
			return nil, err
		}
	}
	p.locatePinch()
	return p, nil
}

// fill appends one pair of boundary states
func (o *Profile) fill(hot, cold *stream, hh, hc float64) error {
	sh, err := hot.fl.AtPH(hot.p, hh)
	if err != nil {
		return err
	}
	sc, err := cold.fl.AtPH(cold.p, hc)
	if err != nil {
		return err
	}
	o.Hh = append(o.Hh, hh)
	o.Hc = append(o.Hc, hc)
	o.Th = append(o.Th, sh.T)
	o.Tc = append(o.Tc, sc.T)
	o.Sh = append(o.Sh, sh.S)
	o.Sc = append(o.Sc, sc.S)
	o.DT = append(o.DT, sh.T-sc.T)
	return nil
}

// locatePinch finds the smallest boundary temperature difference
func (o *Profile) locatePinch() {
	o.Pinch, o.Ipinch = o.DT[0], 0
	for i, dt := range o.DT {
		if dt < o.Pinch {
			o.Pinch, o.Ipinch = dt, i
		}
	}
}

// lmtd computes the log-mean temperature difference of a cell from its end
// differences, flooring each end at 0.01 K. Numerically equal ends reduce to
// the plain difference.
func lmtd(dta, dtb float64) float64 {
	da := math.Max(dta, 0.01)
	db := math.Max(dtb, 0.01)
	if math.Abs(da-db) < 1e-12 {
		return da
	}
	return (da - db) / math.Log(da/db)
}
