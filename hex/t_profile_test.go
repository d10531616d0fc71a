// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"
	"testing"

	"github.com/Luftmenschh/ORCmKit/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_prof01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prof01. boundary merge and energy balance")

	db := testdb()
	hs, cs, _ := evapCase(inp.KindPinch)
	hot, err := newStream(&hs, db)
	if err != nil {
		tst.Errorf("newStream failed:\n%v\n", err)
		return
	}
	cold, err := newStream(&cs, db)
	if err != nil {
		tst.Errorf("newStream failed:\n%v\n", err)
		return
	}

	for _, q := range []float64{2000, 5000, 9000, 11000} {
		p, err := buildProfile(hot, cold, q, 5)
		if err != nil {
			tst.Errorf("buildProfile(%g) failed:\n%v\n", q, err)
			return
		}
		if chk.Verbose {
			io.Pf("q=%6.0f  n=%d  pinch=%8.4f at %d\n", q, len(p.X), p.Pinch, p.Ipinch)
		}
		n := len(p.X)
		chk.Float64(tst, "X[0]", 1e-15, p.X[0], 0)
		chk.Float64(tst, "X[end]", 1e-15, p.X[n-1], 1)
		for i := 1; i < n; i++ {
			if p.X[i] <= p.X[i-1] {
				tst.Errorf("duty fractions are not strictly increasing\n")
				return
			}
			// cell energy balance on both streams
			dx := p.X[i] - p.X[i-1]
			chk.Float64(tst, "qh cell", 1e-6, hot.mdot*(p.Hh[i]-p.Hh[i-1]), dx*q)
			chk.Float64(tst, "qc cell", 1e-6, cold.mdot*(p.Hc[i]-p.Hc[i-1]), dx*q)
		}
		// overall balance
		chk.Float64(tst, "hh out", 1e-8, p.Hh[0], hot.hin-q/hot.mdot)
		chk.Float64(tst, "hc out", 1e-8, p.Hc[n-1], cold.hin+q/cold.mdot)
	}

	// the saturated liquid boundary is inserted once the cold stream
	// crosses into the dome
	p, err := buildProfile(hot, cold, 5000, 5)
	if err != nil {
		tst.Errorf("buildProfile failed:\n%v\n", err)
		return
	}
	found := false
	for _, h := range p.Hc {
		if math.Abs(h-cold.hls) < 1e-8 {
			found = true
		}
	}
	if !found {
		tst.Errorf("saturated liquid boundary was not inserted\n")
		return
	}

	// full dome crossing carries nsub+1 saturation related boundaries
	p, err = buildProfile(hot, cold, 11000, 5)
	if err != nil {
		tst.Errorf("buildProfile failed:\n%v\n", err)
		return
	}
	ndome := 0
	for _, h := range p.Hc {
		if h > cold.hls-1e-8 && h < cold.hvs+1e-8 {
			ndome++
		}
	}
	chk.Int(tst, "dome boundaries", ndome, 6)
}

func Test_prof02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prof02. pinch and area monotonicity over the duty range")

	db := testdb()
	hs, cs, par := evapCase(inp.KindCstHtc)
	hot, err := newStream(&hs, db)
	if err != nil {
		tst.Errorf("newStream failed:\n%v\n", err)
		return
	}
	cold, err := newStream(&cs, db)
	if err != nil {
		tst.Errorf("newStream failed:\n%v\n", err)
		return
	}
	ev, err := newEvaluator(par, hot, cold)
	if err != nil {
		tst.Errorf("newEvaluator failed:\n%v\n", err)
		return
	}

	qmax, err := qMax(hot, cold)
	if err != nil {
		tst.Errorf("qMax failed:\n%v\n", err)
		return
	}
	chk.Float64(tst, "Qmax", 1e-6, qmax, 11550)

	pinchPrev := math.MaxFloat64
	areaPrev := 0.0
	for _, q := range utl.LinSpace(0, qmax, 12) {
		p, err := buildProfile(hot, cold, q, par.Nsub)
		if err != nil {
			tst.Errorf("buildProfile(%g) failed:\n%v\n", q, err)
			return
		}
		if p.Pinch > pinchPrev+1e-9 {
			tst.Errorf("pinch increased with duty at q=%g\n", q)
			return
		}
		pinchPrev = p.Pinch
		if q == 0 {
			continue
		}
		area, err := ev.areas(zones(p, hot, cold))
		if err != nil {
			tst.Errorf("areas(%g) failed:\n%v\n", q, err)
			return
		}
		if area < areaPrev-1e-12 {
			tst.Errorf("required area decreased with duty at q=%g\n", q)
			return
		}
		areaPrev = area
		if chk.Verbose {
			io.Pf("q=%8.1f  pinch=%8.4f  area=%8.5f\n", q, p.Pinch, area)
		}
	}

	// supply temperature difference at zero duty
	p, err := buildProfile(hot, cold, 0, par.Nsub)
	if err != nil {
		tst.Errorf("buildProfile(0) failed:\n%v\n", err)
		return
	}
	chk.Int(tst, "len(X) zero duty", len(p.X), 2)
	chk.Array(tst, "DT zero duty", 1e-12, p.DT, []float64{35, 35})
	chk.Float64(tst, "pinch zero duty", 1e-12, p.Pinch, 35)
}

func Test_prof03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prof03. log-mean temperature difference")

	// distinct ends
	chk.Float64(tst, "lmtd(2,8)", 1e-14, lmtd(2, 8), (2.0-8.0)/math.Log(2.0/8.0))

	// numerically equal ends reduce to the plain difference
	chk.Float64(tst, "lmtd(5,5)", 1e-15, lmtd(5, 5), 5)

	// floor keeps vanishing and negative ends workable
	chk.Float64(tst, "lmtd floor both", 1e-15, lmtd(1e-5, -3), 0.01)
	v := lmtd(-3, 4)
	if v <= 0 || v >= 4 {
		tst.Errorf("floored lmtd %g is out of range\n", v)
		return
	}
	chk.Float64(tst, "lmtd floor one", 1e-14, v, (0.01-4.0)/math.Log(0.01/4.0))

	// symmetry
	chk.Float64(tst, "lmtd symmetry", 1e-14, lmtd(3, 17), lmtd(17, 3))
}
