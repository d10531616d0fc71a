// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voidfrac

import "github.com/cpmech/gosl/chk"

// Homogeneous implements the no-slip void fraction model
//
//   α = 1 / (1 + (1-x)/x ・ ρv/ρl)
//
type Homogeneous struct {
	c *Conditions
}

// add model to database
func init() {
	allocators["homogeneous"] = func() Model { return new(Homogeneous) }
}

// Init initialises this model
func (o *Homogeneous) Init(c *Conditions) error {
	if c.RhoL <= 0 || c.RhoV <= 0 {
		return chk.Err("homogeneous: phase densities must be positive: ρl=%g, ρv=%g", c.RhoL, c.RhoV)
	}
	o.c = c
	return nil
}

// Alpha computes the void fraction at quality x
func (o *Homogeneous) Alpha(x float64) (float64, bool) {
	if x <= 0 {
		return 0, true
	}
	if x >= 1 {
		return 1, true
	}
	return 1.0 / (1.0 + (1.0-x)/x*(o.c.RhoV/o.c.RhoL)), true
}
