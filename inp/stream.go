// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input records of the exchanger solver: stream
// supply states and model parameters, read from JSON case files
package inp

import "github.com/cpmech/gosl/chk"

// input mode tags
const (
	ModeEnthalpy    = "enthalpy"
	ModeTemperature = "temperature"
)

// Stream holds the supply state of one exchanger stream. Mode selects which
// of H or T defines the state. Stream records are never modified by the
// solver.
type Stream struct {
	Fluid string  `json:"fluid"` // fluid identifier in the database
	Mode  string  `json:"mode"`  // "enthalpy" or "temperature"
	P     float64 `json:"p"`     // supply pressure [Pa]
	H     float64 `json:"h"`     // supply enthalpy [J/kg] (enthalpy mode)
	T     float64 `json:"t"`     // supply temperature [K] (temperature mode)
	Mdot  float64 `json:"mdot"`  // mass flow rate [kg/s]
}

// SetDefault sets default values
func (o *Stream) SetDefault() {
	if o.Mode == "" {
		o.Mode = ModeEnthalpy
	}
}

// Validate checks this stream record. Non-positive flow rates are not
// rejected here: the solver reports them as a no-transfer result.
func (o *Stream) Validate() error {
	if o.Mode != ModeEnthalpy && o.Mode != ModeTemperature {
		return chk.Err("stream input mode %q is invalid: must be %q or %q", o.Mode, ModeEnthalpy, ModeTemperature)
	}
	if o.Fluid == "" {
		return chk.Err("stream fluid identifier must be given")
	}
	if o.P <= 0 {
		return chk.Err("stream pressure must be positive: p=%g", o.P)
	}
	return nil
}
