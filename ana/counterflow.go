// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form counter-flow heat exchanger relations
// with constant properties, used to verify the zone solver.
//
//	References:
//	 [1] Incropera FP, DeWitt DP, Bergman TL and Lavine AS (2007)
//	     Fundamentals of Heat and Mass Transfer. 6th ed, Wiley, Chapters 11
//	 [2] Kays WM and London AL (1984) Compact Heat Exchangers. 3rd ed,
//	     McGraw-Hill
package ana

import "math"

// Counterflow holds capacity rates and the conductance of an ideal
// counter-flow exchanger with constant specific heats
type Counterflow struct {
	Ch float64 // hot capacity rate [W/K]
	Cc float64 // cold capacity rate [W/K]
	UA float64 // overall conductance [W/K]
}

// Eff computes the effectiveness by the ε-NTU relation
//
//	ε = (1 - exp(-NTU・(1-Cr))) / (1 - Cr・exp(-NTU・(1-Cr)))
//
// degenerating to ε = NTU/(1+NTU) for balanced capacity rates
func (o Counterflow) Eff() float64 {
	cmin, cmax := o.Ch, o.Cc
	if cmin > cmax {
		cmin, cmax = cmax, cmin
	}
	cr := cmin / cmax
	ntu := o.UA / cmin
	if math.Abs(cr-1.0) < 1e-12 {
		return ntu / (1.0 + ntu)
	}
	e := math.Exp(-ntu * (1.0 - cr))
	return (1.0 - e) / (1.0 - cr*e)
}

// Duty computes the transferred duty for the given supply temperatures
func (o Counterflow) Duty(thin, tcin float64) float64 {
	cmin := math.Min(o.Ch, o.Cc)
	return o.Eff() * cmin * (thin - tcin)
}

// Outlets computes both outlet temperatures
func (o Counterflow) Outlets(thin, tcin float64) (thout, tcout float64) {
	q := o.Duty(thin, tcin)
	return thin - q/o.Ch, tcin + q/o.Cc
}

// LMTD computes the log-mean temperature difference of the terminal
// temperatures of a counter-flow arrangement
func LMTD(thin, thout, tcin, tcout float64) float64 {
	dta := thout - tcin
	dtb := thin - tcout
	if math.Abs(dta-dtb) < 1e-12 {
		return dta
	}
	return (dta - dtb) / math.Log(dta/dtb)
}

// SizeUA computes the conductance required to transfer q between the given
// terminal temperatures
func SizeUA(q, thin, thout, tcin, tcout float64) float64 {
	return q / LMTD(thin, thout, tcin, tcout)
}
