// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"
	"time"

	"github.com/Luftmenschh/ORCmKit/inp"
	"github.com/Luftmenschh/ORCmKit/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// solver constants
const (
	noTransferDT = 0.01 // smallest workable supply temperature difference [K]
	pinchTol     = 1e-8 // pinch closure duty tolerance, relative to Qmax
	cstTol       = 1e-6 // area closure duty tolerance of the csthtc variant
	strictTol    = 1e-8 // area closure duty tolerance of the flowhtc/corr variants
	brentNmax    = 200  // outer search iteration cap
	crossedResid = -1e3 // area residual reported for crossed profiles
)

// Solve computes the duty, boundary profile, required areas and mass
// inventory of a counter-flow exchanger for the configured model variant.
// Configuration problems return an error; physical limitations (unreachable
// pinch, no driving temperature difference) return a result with a negative
// status instead.
func Solve(hotIn, coldIn inp.Stream, par *inp.Params, db fluid.Database) (*Result, error) {
	cputime := time.Now()
	if par == nil {
		return nil, chk.Err("model parameters must not be nil")
	}
	prms := *par
	prms.SetDefault()
	if err := prms.Validate(); err != nil {
		return nil, err
	}
	hot, err := newStream(&hotIn, db)
	if err != nil {
		return nil, err
	}
	cold, err := newStream(&coldIn, db)
	if err != nil {
		return nil, err
	}
	if prms.Verbose {
		io.Pf("solving %q exchanger: %s (%g kg/s, %g K) / %s (%g kg/s, %g K)\n",
			prms.Kind, hotIn.Fluid, hot.mdot, hot.tin, coldIn.Fluid, cold.mdot, cold.tin)
	}

	// orientation normalization: internally the hot stream enters warmer
	pp := &prms
	swapped := hot.tin < cold.tin
	if swapped {
		hot, cold = cold, hot
		pp = prms.Swapped()
		if pp.Verbose {
			io.Pfyel("  stream roles exchanged for the solution\n")
		}
	}

	ev, err := newEvaluator(pp, hot, cold)
	if err != nil {
		return nil, err
	}
	res := &Result{Kind: pp.Kind}

	switch {
	case hot.mdot <= 0 || cold.mdot <= 0 || hot.tin-cold.tin <= noTransferDT:
		err = ev.finish(res, 0, StatusNoTransfer)
	default:
		err = ev.solve(res)
	}
	if err != nil {
		return nil, err
	}
	if swapped {
		res.swapBack()
	}
	res.Elapsed = time.Since(cputime)
	if pp.Verbose {
		res.Report()
	}
	return res, nil
}

// solve runs the duty closure of the configured variant and assembles the
// final state at the solved duty
func (o *evaluator) solve(res *Result) error {
	qmax, err := qMax(o.hot, o.cold)
	if err != nil {
		return err
	}
	res.Qmax = qmax

	var q float64
	var status, nit int
	switch o.par.Kind {
	case inp.KindPinch:
		res.Pin = &PinchInfo{Target: o.par.Pinch}
		q, status, nit, err = o.solvePinch(qmax)
	case inp.KindEff, inp.KindPolEff:
		var eps float64
		q, status, eps, err = o.solveEff(qmax)
		res.Eff = &EffInfo{Eps: eps}
	default:
		q, status, nit, err = o.solveArea(qmax)
	}
	if err != nil {
		return err
	}
	res.Nit = nit
	if err = o.finish(res, q, status); err != nil {
		return err
	}
	if hasArea(o.par.Kind) {
		res.Area = &AreaInfo{Req: res.AreaH, Inst: o.par.Hot.Geo.Atot}
		res.Area.Resid = 1.0 - res.Area.Req/res.Area.Inst
	}
	return nil
}

// finish builds the profile, zones, areas and inventory at the final duty
func (o *evaluator) finish(res *Result, q float64, status int) error {
	prof, err := buildProfile(o.hot, o.cold, q, o.par.Nsub)
	if err != nil {
		return err
	}
	zs := zones(prof, o.hot, o.cold)
	ahReq := 0.0
	if hasArea(o.par.Kind) && q > 0 {
		if ahReq, err = o.areas(zs); err != nil {
			return err
		}
	}
	if err = o.masses(zs, ahReq); err != nil {
		return err
	}
	res.Status = status
	res.Q = prof.Q
	res.Prof = prof
	res.Zones = zs
	res.Pinch = prof.Pinch
	res.HhOut = prof.Hh[0]
	res.HcOut = prof.Hc[len(prof.Hc)-1]
	res.ThOut = prof.Th[0]
	res.TcOut = prof.Tc[len(prof.Tc)-1]
	for i := range zs {
		res.AreaH += zs[i].AreaH
		res.AreaC += zs[i].AreaC
		res.MassH += zs[i].MassH
		res.MassC += zs[i].MassC
	}
	if o.par.Trace {
		return buildTrace(res, o.hot, o.cold, prof.Q)
	}
	return nil
}

// qMax computes the thermodynamic duty limit: each stream brought to the
// other's supply temperature, keeping the smaller duty
func qMax(hot, cold *stream) (float64, error) {
	sh, err := hot.fl.AtPT(hot.p, cold.tin)
	if err != nil {
		return 0, err
	}
	sc, err := cold.fl.AtPT(cold.p, hot.tin)
	if err != nil {
		return 0, err
	}
	qh := hot.mdot * (hot.hin - sh.H)
	qc := cold.mdot * (sc.H - cold.hin)
	return math.Min(qh, qc), nil
}

// solvePinch finds the duty at which the profile pinch matches the target
func (o *evaluator) solvePinch(qmax float64) (q float64, status, nit int, err error) {
	fcn := func(q float64) (float64, error) {
		p, e := buildProfile(o.hot, o.cold, q, o.par.Nsub)
		if e != nil {
			return 0, e
		}
		return o.par.Pinch - p.Pinch, nil
	}
	r0, err := fcn(0)
	if err != nil {
		return 0, 0, 0, err
	}
	if r0 > 0 {
		// target above the supply temperature difference
		return 0, StatusInfeasiblePinch, 0, nil
	}
	rmax, err := fcn(qmax)
	if err != nil {
		return 0, 0, 0, err
	}
	if rmax <= 0 {
		// pinch still above the target at full duty
		return qmax, StatusDutyLimited, 0, nil
	}
	q, nit, err = brent(fcn, 0, qmax, pinchTol*qmax, brentNmax, o.par.Verbose)
	if err != nil {
		return 0, 0, nit, err
	}
	return q, StatusConverged, nit, nil
}

// solveEff computes the closed-form effectiveness duty
//
//	Q* = ε・Qmax   with   ε = c0 + c1・rh + c2・rc + c3・rh² + c4・rh・rc + c5・rc²
//
// in the polynomial variant, where rh and rc are the flow rate ratios to the
// nominal values. ε is clamped to [1e-5,1].
func (o *evaluator) solveEff(qmax float64) (q float64, status int, eps float64, err error) {
	eps = o.par.Eff
	if o.par.Kind == inp.KindPolEff {
		rh := o.hot.mdot / o.par.Hot.MdotNom
		rc := o.cold.mdot / o.par.Cold.MdotNom
		c := o.par.EffPoly
		eps = c[0] + c[1]*rh + c[2]*rc + c[3]*rh*rh + c[4]*rh*rc + c[5]*rc*rc
	}
	eps = math.Min(math.Max(eps, 1e-5), 1.0)
	if _, err = buildProfile(o.hot, o.cold, qmax, o.par.Nsub); err != nil {
		return
	}
	return eps * qmax, StatusConverged, eps, nil
}

// solveArea finds the duty at which the required area matches the installed
// area. An oversized exchanger pins the duty at the thermodynamic maximum.
func (o *evaluator) solveArea(qmax float64) (q float64, status, nit int, err error) {
	inst := o.par.Hot.Geo.Atot
	fcn := func(q float64) (float64, error) {
		p, e := buildProfile(o.hot, o.cold, q, o.par.Nsub)
		if e != nil {
			return 0, e
		}
		if p.Pinch < 0 {
			// crossed profile: steer the search back to lower duties
			return crossedResid, nil
		}
		ah, e := o.areas(zones(p, o.hot, o.cold))
		if e != nil {
			return 0, e
		}
		return 1.0 - ah/inst, nil
	}
	rmax, err := fcn(qmax)
	if err != nil {
		return 0, 0, 0, err
	}
	if math.IsNaN(rmax) {
		return 0, StatusInfeasibleArea, 0, nil
	}
	if rmax >= 0 {
		// more surface installed than the full duty requires
		return qmax, StatusDutyLimited, 0, nil
	}
	tol := strictTol
	if o.par.Kind == inp.KindCstHtc {
		tol = cstTol
	}
	q, nit, err = brent(fcn, 0, qmax, tol*qmax, brentNmax, o.par.Verbose)
	if err != nil {
		return 0, 0, nit, err
	}
	return q, StatusConverged, nit, nil
}
