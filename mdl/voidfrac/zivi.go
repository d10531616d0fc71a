// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voidfrac

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Zivi implements the minimum-entropy-production slip-ratio model [1]
//
//   S = (ρl/ρv)^(1/3)
//   α = 1 / (1 + (1-x)/x ・ ρv/ρl ・ S)
//
type Zivi struct {
	c *Conditions
}

// add model to database
func init() {
	allocators["zivi"] = func() Model { return new(Zivi) }
}

// Init initialises this model
func (o *Zivi) Init(c *Conditions) error {
	if c.RhoL <= 0 || c.RhoV <= 0 {
		return chk.Err("zivi: phase densities must be positive: ρl=%g, ρv=%g", c.RhoL, c.RhoV)
	}
	o.c = c
	return nil
}

// Alpha computes the void fraction at quality x
func (o *Zivi) Alpha(x float64) (float64, bool) {
	if x <= 0 {
		return 0, true
	}
	if x >= 1 {
		return 1, true
	}
	return 1.0 / (1.0 + (1.0-x)/x*math.Pow(o.c.RhoV/o.c.RhoL, 2.0/3.0)), true
}
