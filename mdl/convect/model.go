// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package convect implements convective heat transfer correlations for the
// exchanger zone evaluator: single-phase forced convection, condensation and
// boiling, plus the annular-fin surface efficiency
//  References:
//   [1] Martin H (1996) A theoretical approach to predict the performance of
//       chevron-type plate heat exchangers, Chemical Engineering and Processing, 35(4), 301-310
//   [2] Wanniarachchi AS, Ratnam U, Tilton BE and Dutta-Roy K (1995) Approximate
//       correlations for chevron-type plate heat exchangers, ASME HTD-Vol 314
//   [3] Žukauskas A (1972) Heat transfer from tubes in crossflow, Advances in
//       Heat Transfer, 8, 93-160
//   [4] Gnielinski V (1976) New equations for heat and mass transfer in turbulent
//       pipe and channel flow, International Chemical Engineering, 16(2), 359-368
//   [5] Briggs DE and Young EH (1963) Convection heat transfer and pressure drop of
//       air flowing across triangular pitch banks of finned tubes, Chem Eng Prog Symp Ser, 59(41), 1-10
//   [6] Akers WW, Deans HA and Crosser OK (1959) Condensing heat transfer within
//       horizontal tubes, Chem Eng Prog Symp Ser, 55(29), 171-176
//   [7] Cavallini A, Del Col D, Doretti L, Matkovic M, Rossetto L and Zilio C (2006)
//       Condensation in horizontal smooth tubes: a new heat transfer model for
//       heat exchanger design, Heat Transfer Engineering, 27(8), 31-38
//   [8] Han D-H, Lee K-J and Kim Y-H (2003) Experiments on the characteristics of
//       evaporation of R410A in brazed plate heat exchangers with different
//       geometric configurations, Applied Thermal Engineering, 23(10), 1209-1225
package convect

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Geometry holds the transfer-surface geometry of one exchanger side. Only
// the fields consumed by the selected correlations need to be set. Dh is the
// characteristic length throughout; for tube banks set it to the tube outer
// diameter.
type Geometry struct {
	Dh    float64 `json:"dh"`    // hydraulic diameter [m]
	Aflow float64 `json:"aflow"` // free flow cross-section [m²]
	Atot  float64 `json:"atot"`  // installed exchange area [m²]
	Vtot  float64 `json:"vtot"`  // internal volume [m³]
	Phi   float64 `json:"phi"`   // plate corrugation (chevron) angle [deg]
	Pco   float64 `json:"pco"`   // corrugation pitch [m]
	Enl   float64 `json:"enl"`   // plate area enlargement factor
	Nrows int     `json:"nrows"` // tube rows in the flow direction
	Pt    float64 `json:"pt"`    // transverse tube pitch [m]
	Pl    float64 `json:"pl"`    // longitudinal tube pitch [m]
	Fsp   float64 `json:"fsp"`   // clear fin spacing [m]
	Fht   float64 `json:"fht"`   // fin height [m]
	Fth   float64 `json:"fth"`   // fin thickness [m]
}

// TwoPhase holds the local two-phase transport state of a zone, evaluated at
// the saturation states of the zone pressure
type TwoPhase struct {
	G    float64 // mass flux [kg/(m²·s)]
	X    float64 // mean vapor quality
	RhoL float64 // saturated liquid density [kg/m³]
	RhoV float64 // saturated vapor density [kg/m³]
	MuL  float64 // saturated liquid viscosity [Pa·s]
	MuV  float64 // saturated vapor viscosity [Pa·s]
	KL   float64 // saturated liquid conductivity [W/(m·K)]
	PrL  float64 // saturated liquid Prandtl number
	Hfg  float64 // latent heat [J/kg]
	DT   float64 // driving temperature difference [K]
}

// Geq returns the equivalent all-liquid mass flux of Akers [6]
func (o *TwoPhase) Geq() float64 {
	return o.G * ((1.0 - o.X) + o.X*math.Sqrt(o.RhoL/o.RhoV))
}

// SinglePhase computes the Nusselt number of single-phase forced convection
type SinglePhase interface {
	Init(g *Geometry) error  // initialises the model and checks geometry
	Nu(re, pr float64) float64 // Nusselt number
}

// Condensation computes the condensing film coefficient [W/(m²·K)]
type Condensation interface {
	Init(g *Geometry) error
	H(s *TwoPhase) float64
}

// Boiling computes the boiling film coefficient [W/(m²·K)] at a given boiling
// number. The boiling number couples to the local heat flux and is iterated
// by the caller.
type Boiling interface {
	Init(g *Geometry) error
	H(s *TwoPhase, bo float64) float64
}

// NewSinglePhase returns an initialised single-phase correlation
func NewSinglePhase(name string, g *Geometry) (SinglePhase, error) {
	allocator, ok := spAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'convect' single-phase database", name)
	}
	mdl := allocator()
	if err := mdl.Init(g); err != nil {
		return nil, err
	}
	return mdl, nil
}

// NewCondensation returns an initialised condensation correlation
func NewCondensation(name string, g *Geometry) (Condensation, error) {
	allocator, ok := cdAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'convect' condensation database", name)
	}
	mdl := allocator()
	if err := mdl.Init(g); err != nil {
		return nil, err
	}
	return mdl, nil
}

// NewBoiling returns an initialised boiling correlation
func NewBoiling(name string, g *Geometry) (Boiling, error) {
	allocator, ok := blAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'convect' boiling database", name)
	}
	mdl := allocator()
	if err := mdl.Init(g); err != nil {
		return nil, err
	}
	return mdl, nil
}

// allocators hold all available models
var (
	spAllocators = map[string]func() SinglePhase{}
	cdAllocators = map[string]func() Condensation{}
	blAllocators = map[string]func() Boiling{}
)

// gravity acceleration
const grav = 9.81
