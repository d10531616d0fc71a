// Copyright 2016 The ORCmKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements thermophysical property models for working fluids
// and secondary (brine-like) coolants. The models here are idealized and
// self-contained; a full property evaluator (e.g. a CoolProp or REFPROP
// front-end) can be plugged in by implementing the Model interface.
package fluid

import "github.com/cpmech/gosl/chk"

// State holds one thermodynamic state
//  Quality convention:
//   X = -1     single-phase liquid (and brines)
//   X ∈ [0,1]  inside the saturation dome
//   X = 2      superheated vapor
type State struct {
	P   float64 // pressure [Pa]
	T   float64 // temperature [K]
	H   float64 // specific enthalpy [J/kg]
	S   float64 // specific entropy [J/(kg·K)]
	Rho float64 // density [kg/m³]
	X   float64 // vapor quality
	Cp  float64 // isobaric specific heat [J/(kg·K)]; zero inside the dome
	Mu  float64 // dynamic viscosity [Pa·s]
	K   float64 // thermal conductivity [W/(m·K)]
	Pr  float64 // Prandtl number; zero inside the dome
}

// Model defines fluid property models
type Model interface {
	Name() string                      // fluid identifier
	TwoPhase() bool                    // whether the fluid has a saturation dome
	AtPH(p, h float64) (*State, error) // state from pressure and enthalpy
	AtPT(p, T float64) (*State, error) // state from pressure and temperature
	AtPX(p, x float64) (*State, error) // saturation state from pressure and quality
}

// Database holds fluid models accessible by name
type Database map[string]Model

// NewDatabase returns a database with the given models
func NewDatabase(models ...Model) Database {
	db := Database{}
	for _, m := range models {
		db[m.Name()] = m
	}
	return db
}

// Get returns a fluid model from the database
func (o Database) Get(name string) (Model, error) {
	mdl, ok := o[name]
	if !ok {
		return nil, chk.Err("fluid %q is not available in database", name)
	}
	return mdl, nil
}
