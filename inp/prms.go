// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/Luftmenschh/ORCmKit/mdl/convect"
	"github.com/cpmech/gosl/chk"
)

// model variant tags
const (
	KindPinch   = "pinch"   // fixed pinch
	KindEff     = "eff"     // fixed effectiveness
	KindPolEff  = "poleff"  // polynomial effectiveness
	KindCstHtc  = "csthtc"  // prescribed constant coefficients
	KindFlowHtc = "flowhtc" // prescribed flow-dependent coefficients
	KindCorr    = "corr"    // correlation based
)

// Side holds the parameters of one exchanger side
type Side struct {
	Geo     convect.Geometry `json:"geo"`           // transfer surface geometry
	Fin     *convect.Fin     `json:"fin,omitempty"` // fin array; nil if unfinned
	Corr    string           `json:"corr"`          // single-phase correlation name
	CorrTP  string           `json:"corrtp"`        // condensation (hot) or boiling (cold) correlation name
	HLiq    float64          `json:"hliq"`          // prescribed liquid-regime coefficient [W/(m²·K)]
	HTp     float64          `json:"htp"`           // prescribed two-phase coefficient [W/(m²·K)]
	HVap    float64          `json:"hvap"`          // prescribed vapor-regime coefficient [W/(m²·K)]
	FlowExp float64          `json:"flowexp"`       // flow-rate scaling exponent of the prescribed coefficients
	MdotNom float64          `json:"mdotnom"`       // nominal mass flow rate [kg/s]
}

// Params holds the exchanger model parameters. The effectiveness polynomial
// of the "poleff" variant is
//
//   ε = c0 + c1・rh + c2・rc + c3・rh² + c4・rh・rc + c5・rc²
//
// with rh and rc the hot and cold flow rates normalized by the nominal ones.
type Params struct {
	Kind    string    `json:"kind"`    // model variant tag
	Nsub    int       `json:"nsub"`    // equal-enthalpy subdivisions of two-phase ranges
	Void    string    `json:"void"`    // void fraction model name
	Pinch   float64   `json:"pinch"`   // target pinch [K] (pinch variant)
	Eff     float64   `json:"eff"`     // effectiveness (eff variant)
	EffPoly []float64 `json:"effpoly"` // effectiveness polynomial coefficients (poleff variant)
	Hot     Side      `json:"hot"`     // hot side parameters
	Cold    Side      `json:"cold"`    // cold side parameters
	Trace   bool      `json:"trace"`   // assemble the temperature-entropy trace
	Verbose bool      `json:"verbose"` // print solver progress
}

// SetDefault sets default values
func (o *Params) SetDefault() {
	if o.Nsub == 0 {
		o.Nsub = 5
	}
	if o.Void == "" {
		o.Void = "homogeneous"
	}
	if o.Hot.FlowExp == 0 {
		o.Hot.FlowExp = 0.8
	}
	if o.Cold.FlowExp == 0 {
		o.Cold.FlowExp = 0.8
	}
}

// Validate checks the parameters of the selected model variant
func (o *Params) Validate() error {
	switch o.Kind {
	case KindPinch:
		if o.Pinch <= 0 {
			return chk.Err("pinch variant: target pinch must be positive: pinch=%g", o.Pinch)
		}
	case KindEff:
		if o.Eff <= 0 || o.Eff > 1 {
			return chk.Err("eff variant: effectiveness must be within (0,1]: eff=%g", o.Eff)
		}
	case KindPolEff:
		if len(o.EffPoly) != 6 {
			return chk.Err("poleff variant: effectiveness polynomial needs 6 coefficients: got %d", len(o.EffPoly))
		}
		if o.Hot.MdotNom <= 0 || o.Cold.MdotNom <= 0 {
			return chk.Err("poleff variant: nominal flow rates must be positive: hot=%g, cold=%g", o.Hot.MdotNom, o.Cold.MdotNom)
		}
	case KindCstHtc, KindFlowHtc, KindCorr:
		if o.Hot.Geo.Atot <= 0 || o.Cold.Geo.Atot <= 0 {
			return chk.Err("%s variant: installed areas must be positive: hot=%g, cold=%g", o.Kind, o.Hot.Geo.Atot, o.Cold.Geo.Atot)
		}
		if o.Kind == KindFlowHtc {
			if o.Hot.MdotNom <= 0 || o.Cold.MdotNom <= 0 {
				return chk.Err("flowhtc variant: nominal flow rates must be positive: hot=%g, cold=%g", o.Hot.MdotNom, o.Cold.MdotNom)
			}
		}
		if o.Kind == KindCorr {
			if o.Hot.Geo.Dh <= 0 || o.Cold.Geo.Dh <= 0 || o.Hot.Geo.Aflow <= 0 || o.Cold.Geo.Aflow <= 0 {
				return chk.Err("corr variant: hydraulic diameters and flow areas must be positive")
			}
			if o.Hot.Corr == "" || o.Cold.Corr == "" {
				return chk.Err("corr variant: single-phase correlation names must be given")
			}
		}
	default:
		return chk.Err("model kind %q is invalid", o.Kind)
	}
	if o.Nsub < 1 {
		return chk.Err("number of two-phase subdivisions must be at least 1: nsub=%d", o.Nsub)
	}
	if err := o.Hot.Fin.Validate(); err != nil {
		return err
	}
	return o.Cold.Fin.Validate()
}

// Swapped returns a copy of the parameters with the hot and cold sides, the
// nominal flows and the role-sensitive effectiveness polynomial coefficients
// exchanged. The receiver is not modified.
func (o *Params) Swapped() *Params {
	s := *o
	s.Hot, s.Cold = o.Cold, o.Hot
	if len(o.EffPoly) == 6 {
		p := o.EffPoly
		s.EffPoly = []float64{p[0], p[2], p[1], p[5], p[4], p[3]}
	}
	return &s
}

// Case holds a complete exchanger calculation input
type Case struct {
	Hot  Stream `json:"hot"`  // hot stream supply
	Cold Stream `json:"cold"` // cold stream supply
	Prms Params `json:"prms"` // model parameters
}

// ReadCase reads a complete case from a JSON file, sets defaults and
// validates all records
func ReadCase(fn string) (*Case, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", fn, err)
	}
	var c Case
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, chk.Err("cannot unmarshal case file %q:\n%v", fn, err)
	}
	c.Hot.SetDefault()
	c.Cold.SetDefault()
	c.Prms.SetDefault()
	if err := c.Hot.Validate(); err != nil {
		return nil, err
	}
	if err := c.Cold.Validate(); err != nil {
		return nil, err
	}
	if err := c.Prms.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
