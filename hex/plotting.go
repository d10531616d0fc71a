// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hex

import (
	"github.com/cpmech/gosl/plt"
)

// PlotProfile plots the temperature profile over the duty fraction axis and,
// when the trace was assembled, the temperature-entropy diagram underneath.
// Output goes to dirout/fnkey.eps
func PlotProfile(res *Result, dirout, fnkey string) {
	if res.Prof == nil {
		return
	}
	withTrace := len(res.TraceTh) > 0
	if withTrace {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(res.Prof.X, res.Prof.Th, &plt.A{C: "r", Ls: "-", M: ".", L: "hot"})
	plt.Plot(res.Prof.X, res.Prof.Tc, &plt.A{C: "b", Ls: "-", M: ".", L: "cold"})
	plt.Gll("$x_{duty}$", "$T\\;[K]$", nil)
	if withTrace {
		plt.Subplot(2, 1, 2)
		plt.Plot(res.TraceSh, res.TraceTh, &plt.A{C: "r", Ls: "-"})
		plt.Plot(res.TraceSc, res.TraceTc, &plt.A{C: "b", Ls: "-"})
		plt.Gll("$s\\;[J/(kg\\cdot K)]$", "$T\\;[K]$", nil)
		plt.SetTicksNormal()
	}
	plt.Save(dirout, fnkey+".eps")
}
