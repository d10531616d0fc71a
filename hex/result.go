// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// status codes
const (
	StatusConverged       = 1  // closure satisfied within tolerance
	StatusDutyLimited     = 2  // duty pinned at the thermodynamic maximum
	StatusInfeasiblePinch = -1 // target pinch unreachable at any duty
	StatusInfeasibleArea  = -2 // installed area cannot be matched by any duty
	StatusNoTransfer      = -3 // no driving temperature difference or no flow
)

// StatusName returns a short label for a status code
func StatusName(status int) string {
	switch status {
	case StatusConverged:
		return "converged"
	case StatusDutyLimited:
		return "duty-limited"
	case StatusInfeasiblePinch:
		return "infeasible-pinch"
	case StatusInfeasibleArea:
		return "infeasible-area"
	case StatusNoTransfer:
		return "no-transfer"
	}
	return "unknown"
}

// AreaInfo extends results of the area-closed variants
type AreaInfo struct {
	Req   float64 // required hot side area [m²]
	Inst  float64 // installed hot side area [m²]
	Resid float64 // relative closure residual 1-Req/Inst
}

// EffInfo extends results of the effectiveness variants
type EffInfo struct {
	Eps float64 // applied effectiveness after clamping
}

// PinchInfo extends results of the fixed-pinch variant
type PinchInfo struct {
	Target float64 // requested pinch [K]
}

// Result holds the outcome of an exchanger calculation
type Result struct {
	Kind    string        // model variant tag
	Status  int           // status code
	Q       float64       // solved duty [W]
	Qmax    float64       // thermodynamic duty limit [W]
	Pinch   float64       // achieved pinch [K]
	HhOut   float64       // hot outlet enthalpy [J/kg]
	HcOut   float64       // cold outlet enthalpy [J/kg]
	ThOut   float64       // hot outlet temperature [K]
	TcOut   float64       // cold outlet temperature [K]
	AreaH   float64       // required hot side area [m²] (coefficient variants)
	AreaC   float64       // required cold side area [m²]
	MassH   float64       // hot side fluid mass [kg]
	MassC   float64       // cold side fluid mass [kg]
	Prof    *Profile      // boundary profile at the solved duty
	Zones   []Zone        // cell records at the solved duty
	Area    *AreaInfo     // area closure data (area variants)
	Eff     *EffInfo      // effectiveness data (eff variants)
	Pin     *PinchInfo    // pinch data (pinch variant)
	Nit     int           // outer search iterations
	Swapped bool          // stream roles were exchanged and mapped back
	Elapsed time.Duration // computation time
	TraceSh []float64     // temperature-entropy trace: hot entropy [J/(kg·K)]
	TraceTh []float64     // temperature-entropy trace: hot temperature [K]
	TraceSc []float64     // temperature-entropy trace: cold entropy [J/(kg·K)]
	TraceTc []float64     // temperature-entropy trace: cold temperature [K]
}

// Report prints a summary of the result
func (o *Result) Report() {
	io.Pf("\n")
	io.Pfcyan("exchanger result (%s)\n", o.Kind)
	io.Pf("  status = %s\n", StatusName(o.Status))
	io.Pf("  Q      = %g W  (Qmax = %g W)\n", o.Q, o.Qmax)
	io.Pf("  pinch  = %g K\n", o.Pinch)
	io.Pf("  Th,out = %g K   Tc,out = %g K\n", o.ThOut, o.TcOut)
	if o.Pin != nil {
		io.Pf("  target = %g K\n", o.Pin.Target)
	}
	if o.Eff != nil {
		io.Pf("  ε      = %g\n", o.Eff.Eps)
	}
	if o.Area != nil {
		io.Pf("  area   = %g m² required / %g m² installed  (residual = %g)\n", o.Area.Req, o.Area.Inst, o.Area.Resid)
	}
	io.Pf("  mass   = %g kg (hot)  %g kg (cold)\n", o.MassH, o.MassC)
	io.Pf("  zones  = %d   iterations = %d   elapsed = %v\n", len(o.Zones), o.Nit, o.Elapsed)
	for _, z := range o.Zones {
		io.Pfgrey("    [%6.4f,%6.4f] %s/%s  q=%11.3f  ΔTlm=%8.4f  U=%10.4f  Ah=%9.6f\n",
			z.Xa, z.Xb, regName[z.RegH], regName[z.RegC], z.Q, z.DTlm, z.U, z.AreaH)
	}
}

// traceNpts is the number of samples of the temperature-entropy trace
const traceNpts = 50

// buildTrace samples both streams densely over the active enthalpy ranges to
// produce smooth temperature-entropy polylines for diagram generation
func buildTrace(res *Result, hot, cold *stream, q float64) error {
	res.TraceSh = make([]float64, traceNpts)
	res.TraceTh = make([]float64, traceNpts)
	res.TraceSc = make([]float64, traceNpts)
	res.TraceTc = make([]float64, traceNpts)
	hhOut, hcOut := hot.hin, cold.hin
	if q > 0 {
		hhOut = hot.hin - q/hot.mdot
		hcOut = cold.hin + q/cold.mdot
	}
	for i, x := range utl.LinSpace(0, 1, traceNpts) {
		sh, err := hot.fl.AtPH(hot.p, hhOut+x*(hot.hin-hhOut))
		if err != nil {
			return err
		}
		sc, err := cold.fl.AtPH(cold.p, cold.hin+x*(hcOut-cold.hin))
		if err != nil {
			return err
		}
		res.TraceSh[i], res.TraceTh[i] = sh.S, sh.T
		res.TraceSc[i], res.TraceTc[i] = sc.S, sc.T
	}
	return nil
}
