// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

// phase regime tags
const (
	RegLiquid = iota // subcooled liquid or liquid-like single phase
	RegTwoPhase
	RegVapor
)

// regName maps regime tags to short labels
var regName = map[int]string{RegLiquid: "liq", RegTwoPhase: "two", RegVapor: "vap"}

// Zone holds one exchanger cell: a duty fraction interval bounded by phase
// boundaries or subdivision points, with matching cells on both streams
type Zone struct {
	Xa, Xb float64 // duty fraction bounds
	Q      float64 // zone duty [W]
	RegH   int     // hot stream regime
	RegC   int     // cold stream regime
	Hha    float64 // hot enthalpy at Xa [J/kg]
	Hhb    float64 // hot enthalpy at Xb [J/kg]
	Hca    float64 // cold enthalpy at Xa [J/kg]
	Hcb    float64 // cold enthalpy at Xb [J/kg]
	DTlm   float64 // log-mean temperature difference [K]
	Hh     float64 // hot side convective coefficient [W/(m²·K)]
	Hc     float64 // cold side convective coefficient [W/(m²·K)]
	EtaH   float64 // hot side surface efficiency
	EtaC   float64 // cold side surface efficiency
	U      float64 // overall coefficient referenced to the hot area [W/(m²·K)]
	AreaH  float64 // required hot side area [m²]
	AreaC  float64 // required cold side area [m²]
	Vh     float64 // allocated hot side volume [m³]
	Vc     float64 // allocated cold side volume [m³]
	MassH  float64 // hot side fluid mass [kg]
	MassC  float64 // cold side fluid mass [kg]
	BoIt   int     // boiling number iterations
	BoConv bool    // boiling number loop converged
	VfFail int     // void fraction evaluations that did not converge
}

// zones builds the cell records of a profile. Thermal and inventory fields
// are filled later by the evaluator.
func zones(p *Profile, hot, cold *stream) []Zone {
	zs := make([]Zone, len(p.X)-1)
	for i := range zs {
		z := &zs[i]
		z.Xa, z.Xb = p.X[i], p.X[i+1]
		z.Q = (z.Xb - z.Xa) * p.Q
		z.Hha, z.Hhb = p.Hh[i], p.Hh[i+1]
		z.Hca, z.Hcb = p.Hc[i], p.Hc[i+1]
		z.RegH = hot.regime(0.5 * (z.Hha + z.Hhb))
		z.RegC = cold.regime(0.5 * (z.Hca + z.Hcb))
		z.DTlm = lmtd(p.DT[i], p.DT[i+1])
		z.EtaH, z.EtaC = 1, 1
		z.BoConv = true
	}
	return zs
}
