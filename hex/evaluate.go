// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"math"

	"github.com/Luftmenschh/ORCmKit/inp"
	"github.com/Luftmenschh/ORCmKit/mdl/convect"
	"github.com/Luftmenschh/ORCmKit/mdl/voidfrac"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// evaluator computes zone coefficients, conductances, required areas and the
// mass inventory. Correlations and the void fraction model are resolved once
// per solver call.
type evaluator struct {
	par  *inp.Params         // model parameters (orientation-normalized)
	hot  *stream             // hot stream
	cold *stream             // cold stream
	spH  convect.SinglePhase // hot single-phase correlation (corr variant)
	spC  convect.SinglePhase // cold single-phase correlation (corr variant)
	cd   convect.Condensation
	bl   convect.Boiling
	gH   float64 // hot side mass flux [kg/(m²·s)]
	gC   float64 // cold side mass flux [kg/(m²·s)]
}

// newEvaluator resolves the configured correlations and validates the void
// fraction model name
func newEvaluator(par *inp.Params, hot, cold *stream) (*evaluator, error) {
	o := &evaluator{par: par, hot: hot, cold: cold}
	if _, err := voidfrac.New(par.Void); err != nil {
		return nil, err
	}
	if par.Hot.Geo.Aflow > 0 {
		o.gH = hot.mdot / par.Hot.Geo.Aflow
	}
	if par.Cold.Geo.Aflow > 0 {
		o.gC = cold.mdot / par.Cold.Geo.Aflow
	}
	if par.Kind != inp.KindCorr {
		return o, nil
	}
	var err error
	if o.spH, err = convect.NewSinglePhase(par.Hot.Corr, &par.Hot.Geo); err != nil {
		return nil, err
	}
	if o.spC, err = convect.NewSinglePhase(par.Cold.Corr, &par.Cold.Geo); err != nil {
		return nil, err
	}
	if hot.twoph {
		if par.Hot.CorrTP == "" {
			return nil, chk.Err("condensation correlation of the hot side is missing")
		}
		if o.cd, err = convect.NewCondensation(par.Hot.CorrTP, &par.Hot.Geo); err != nil {
			return nil, err
		}
	}
	if cold.twoph {
		if par.Cold.CorrTP == "" {
			return nil, chk.Err("boiling correlation of the cold side is missing")
		}
		if o.bl, err = convect.NewBoiling(par.Cold.CorrTP, &par.Cold.Geo); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// hasArea tells whether a model variant closes the duty on the installed area
func hasArea(kind string) bool {
	return kind == inp.KindCstHtc || kind == inp.KindFlowHtc || kind == inp.KindCorr
}

// areas fills the thermal fields of every zone and returns the total required
// hot side area
func (o *evaluator) areas(zs []Zone) (ahReq float64, err error) {
	rat := o.par.Hot.Geo.Atot / o.par.Cold.Geo.Atot
	for i := range zs {
		z := &zs[i]
		if z.Q <= 0 {
			continue
		}

		// hot side coefficient
		switch {
		case o.par.Kind != inp.KindCorr:
			if z.Hh, err = o.prescribed(&o.par.Hot, o.hot, z.RegH); err != nil {
				return 0, chk.Err("hot side: %v", err)
			}
		case z.RegH == RegTwoPhase:
			st, e := o.twophase(o.hot, o.gH, z.Hha, z.Hhb, z.DTlm)
			if e != nil {
				return 0, e
			}
			z.Hh = o.cd.H(st)
		default:
			if z.Hh, err = o.sphase(o.spH, o.hot, o.gH, o.par.Hot.Geo.Dh, z.Hha, z.Hhb); err != nil {
				return 0, err
			}
		}
		z.EtaH = o.par.Hot.Fin.SurfEff(z.Hh)

		// cold side coefficient, conductance and area
		if o.par.Kind == inp.KindCorr && z.RegC == RegTwoPhase {
			if err = o.boilZone(z, rat); err != nil {
				return 0, err
			}
		} else {
			if o.par.Kind != inp.KindCorr {
				if z.Hc, err = o.prescribed(&o.par.Cold, o.cold, z.RegC); err != nil {
					return 0, chk.Err("cold side: %v", err)
				}
			} else {
				if z.Hc, err = o.sphase(o.spC, o.cold, o.gC, o.par.Cold.Geo.Dh, z.Hca, z.Hcb); err != nil {
					return 0, err
				}
			}
			z.EtaC = o.par.Cold.Fin.SurfEff(z.Hc)
			z.U = 1.0 / (1.0/(z.EtaH*z.Hh) + rat/(z.EtaC*z.Hc))
			z.AreaH = z.Q / (z.DTlm * z.U)
			z.AreaC = z.AreaH / rat
		}
		ahReq += z.AreaH
	}
	return
}

// prescribed selects the prescribed coefficient of a regime, scaled by the
// flow rate ratio in the flow-dependent variant
func (o *evaluator) prescribed(s *inp.Side, st *stream, reg int) (float64, error) {
	var h float64
	switch reg {
	case RegLiquid:
		h = s.HLiq
	case RegTwoPhase:
		h = s.HTp
	default:
		h = s.HVap
	}
	if h <= 0 {
		return 0, chk.Err("prescribed coefficient of the %q regime must be positive. h=%g is invalid", regName[reg], h)
	}
	if o.par.Kind == inp.KindFlowHtc {
		h *= math.Pow(st.mdot/s.MdotNom, s.FlowExp)
	}
	return h, nil
}

// sphase computes a single-phase coefficient from a correlation evaluated at
// the mean state of the cell
func (o *evaluator) sphase(mdl convect.SinglePhase, st *stream, g, dh, ha, hb float64) (float64, error) {
	mean, err := st.fl.AtPH(st.p, 0.5*(ha+hb))
	if err != nil {
		return 0, err
	}
	re := g * dh / mean.Mu
	return mdl.Nu(re, mean.Pr) * mean.K / dh, nil
}

// twophase assembles the transport state of a two-phase cell side
func (o *evaluator) twophase(st *stream, g, ha, hb, dtlm float64) (*convect.TwoPhase, error) {
	sl, err := st.fl.AtPX(st.p, 0)
	if err != nil {
		return nil, err
	}
	sv, err := st.fl.AtPX(st.p, 1)
	if err != nil {
		return nil, err
	}
	return &convect.TwoPhase{
		G:    g,
		X:    st.quality(0.5 * (ha + hb)),
		RhoL: sl.Rho,
		RhoV: sv.Rho,
		MuL:  sl.Mu,
		MuV:  sv.Mu,
		KL:   sl.K,
		PrL:  sl.Pr,
		Hfg:  sv.H - sl.H,
		DT:   dtlm,
	}, nil
}

// boilZone computes the cold side coefficient of a boiling cell. The boiling
// number couples to the local heat flux through the conductance
//
//	bo = q̇ / (Geq・hfg)   with   q̇ = U・ΔTlm
//
// and is resolved by successive substitution, capped at 10 passes or a
// relative change below 5 %.
func (o *evaluator) boilZone(z *Zone, rat float64) error {
	st, err := o.twophase(o.cold, o.gC, z.Hca, z.Hcb, z.DTlm)
	if err != nil {
		return err
	}
	geq := st.Geq()
	bo := 1e-4
	z.BoConv = false
	for it := 1; it <= 10; it++ {
		z.BoIt = it
		z.Hc = o.bl.H(st, bo)
		z.EtaC = o.par.Cold.Fin.SurfEff(z.Hc)
		z.U = 1.0 / (1.0/(z.EtaH*z.Hh) + rat/(z.EtaC*z.Hc))
		bonew := z.U * z.DTlm / (geq * st.Hfg)
		conv := math.Abs(bonew-bo) <= 0.05*bo
		bo = bonew
		if conv {
			z.BoConv = true
			break
		}
	}
	z.AreaH = z.Q / (z.DTlm * z.U)
	z.AreaC = z.AreaH / rat
	if o.par.Verbose {
		io.Pfgrey("    boiling cell [%.4f,%.4f]: it=%d bo=%g hc=%g\n", z.Xa, z.Xb, z.BoIt, bo, z.Hc)
	}
	return nil
}
