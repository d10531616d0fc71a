// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"github.com/Luftmenschh/ORCmKit/inp"
	"github.com/Luftmenschh/ORCmKit/mdl/voidfrac"
)

// masses fills the per-zone volume allocation and fluid mass of both sides.
// Volumes follow the required-area shares when areas were computed (ahReq>0)
// and the duty fraction shares otherwise.
func (o *evaluator) masses(zs []Zone, ahReq float64) error {
	for i := range zs {
		z := &zs[i]
		share := z.Xb - z.Xa
		if ahReq > 0 {
			share = z.AreaH / ahReq
		}
		z.Vh = o.par.Hot.Geo.Vtot * share
		z.Vc = o.par.Cold.Geo.Vtot * share
		mh, nfh, err := o.sideMass(o.hot, &o.par.Hot, o.gH, z.RegH, z.Hha, z.Hhb, z.Vh)
		if err != nil {
			return err
		}
		mc, nfc, err := o.sideMass(o.cold, &o.par.Cold, o.gC, z.RegC, z.Hca, z.Hcb, z.Vc)
		if err != nil {
			return err
		}
		z.MassH, z.MassC = mh, mc
		z.VfFail = nfh + nfc
	}
	return nil
}

// sideMass computes the fluid mass held in one side of a zone. Two-phase
// cells integrate the void fraction over the quality range; single-phase
// cells use the mean of the boundary densities.
func (o *evaluator) sideMass(st *stream, s *inp.Side, g float64, reg int, ha, hb, v float64) (mass float64, nfail int, err error) {
	if v <= 0 {
		return 0, 0, nil
	}
	if reg == RegTwoPhase {
		sl, e := st.fl.AtPX(st.p, 0)
		if e != nil {
			return 0, 0, e
		}
		sv, e := st.fl.AtPX(st.p, 1)
		if e != nil {
			return 0, 0, e
		}
		mdl, e := voidfrac.New(o.par.Void)
		if e != nil {
			return 0, 0, e
		}
		cnd := &voidfrac.Conditions{RhoL: sl.Rho, RhoV: sv.Rho, MuL: sl.Mu, MuV: sv.Mu, G: g, Dh: s.Geo.Dh}
		if e := mdl.Init(cnd); e != nil {
			return 0, 0, e
		}
		wbar, nf := voidfrac.LiquidMean(mdl, st.quality(ha), st.quality(hb))
		return v * (sl.Rho*wbar + sv.Rho*(1.0-wbar)), nf, nil
	}
	sa, e := st.fl.AtPH(st.p, ha)
	if e != nil {
		return 0, 0, e
	}
	sb, e := st.fl.AtPH(st.p, hb)
	if e != nil {
		return 0, 0, e
	}
	return v * 0.5 * (sa.Rho + sb.Rho), 0, nil
}
