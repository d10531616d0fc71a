// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

// swapBack relabels a result computed with exchanged stream roles so that it
// reports under the caller's original labeling. Per-side quantities are
// swapped and the duty fraction axis is mirrored, so vectors are reversed.
// The pinch and the temperature differences remain the internal positive
// physical values.
func (o *Result) swapBack() {
	o.Swapped = true
	o.HhOut, o.HcOut = o.HcOut, o.HhOut
	o.ThOut, o.TcOut = o.TcOut, o.ThOut
	o.AreaH, o.AreaC = o.AreaC, o.AreaH
	o.MassH, o.MassC = o.MassC, o.MassH
	if o.Prof != nil {
		p := o.Prof
		p.Hh, p.Hc = p.Hc, p.Hh
		p.Th, p.Tc = p.Tc, p.Th
		p.Sh, p.Sc = p.Sc, p.Sh
		for _, v := range [][]float64{p.X, p.Hh, p.Hc, p.Th, p.Tc, p.Sh, p.Sc, p.DT} {
			reverse(v)
		}
		for i := range p.X {
			p.X[i] = 1.0 - p.X[i]
		}
		p.Ipinch = len(p.X) - 1 - p.Ipinch
	}
	for i := range o.Zones {
		z := &o.Zones[i]
		if z.AreaC > 0 {
			z.U *= z.AreaH / z.AreaC
		}
		z.Xa, z.Xb = 1.0-z.Xb, 1.0-z.Xa
		z.RegH, z.RegC = z.RegC, z.RegH
		z.Hha, z.Hhb, z.Hca, z.Hcb = z.Hcb, z.Hca, z.Hhb, z.Hha
		z.Hh, z.Hc = z.Hc, z.Hh
		z.EtaH, z.EtaC = z.EtaC, z.EtaH
		z.AreaH, z.AreaC = z.AreaC, z.AreaH
		z.Vh, z.Vc = z.Vc, z.Vh
		z.MassH, z.MassC = z.MassC, z.MassH
	}
	for i, j := 0, len(o.Zones)-1; i < j; i, j = i+1, j-1 {
		o.Zones[i], o.Zones[j] = o.Zones[j], o.Zones[i]
	}
	if o.TraceTh != nil {
		o.TraceSh, o.TraceSc = o.TraceSc, o.TraceSh
		o.TraceTh, o.TraceTc = o.TraceTc, o.TraceTh
		for _, v := range [][]float64{o.TraceSh, o.TraceTh, o.TraceSc, o.TraceTc} {
			reverse(v)
		}
	}
}

// reverse flips a vector in place
func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
