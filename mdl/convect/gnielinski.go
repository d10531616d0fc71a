// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convect

import "math"

// Gnielinski implements pipe flow with a Reynolds regime split: the laminar
// branch uses the constant-wall-temperature limit and the turbulent branch
// uses [4]
//
//   Re < 2300:  Nu = 3.66
//   otherwise:  f  = (0.79・ln(Re) - 1.64)⁻²
//               Nu = (f/8)・(Re-1000)・Pr / (1 + 12.7・√(f/8)・(Pr^(2/3)-1))
//
type Gnielinski struct{}

// add model to database
func init() {
	spAllocators["gnielinski"] = func() SinglePhase { return new(Gnielinski) }
}

// Init initialises this model
func (o *Gnielinski) Init(g *Geometry) error { return nil }

// Nu computes the Nusselt number
func (o *Gnielinski) Nu(re, pr float64) float64 {
	if re < 2300 {
		return 3.66
	}
	f := math.Pow(0.79*math.Log(re)-1.64, -2.0)
	return (f / 8.0) * (re - 1000.0) * pr / (1.0 + 12.7*math.Sqrt(f/8.0)*(math.Pow(pr, 2.0/3.0)-1.0))
}
