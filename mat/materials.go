// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat holds reference properties of fluids and construction materials
package mat

// Water handles the properties of liquid water
type Water struct {
	Θ   float64 // reference temperature; default = 20°C or 293.15K
	Rho float64 // density @ reference temperature
	Mu  float64 // dynamic viscosity @ reference temperature
}

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature; default = 25°C or 298.15K
	R    float64 // specific ideal gas constant
	Patm float64 // absolute atmospheric pressure
	Rho  float64 // density @ reference temperature
	Mu   float64 // dynamic viscosity @ reference temperature
}

// CarbonSteel handles the properties of carbon steel plate and tubing
type CarbonSteel struct {
	Rho     float64 // density
	Tshell  float64 // typical shell wall thickness
	Ttube   float64 // typical tube wall thickness
	Tbaffle float64 // typical baffle plate thickness
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 293.15    // [K]     20°C
	o.Rho = 998.2   // [kg/m³] 20°C
	o.Mu = 1.002e-3 // [Pa・s]  20°C
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 298.15                 // [K]          25°C
	o.R = 287.058                // [J/(kg・K)]
	o.Patm = 101325.0            // [Pa]
	o.Rho = o.Patm / (o.R * o.Θ) // [kg/m³]      25°C
	o.Mu = 1.8e-5                // [Pa・s]       25°C
}

// Init initialises data
func (o *CarbonSteel) Init() {
	o.Rho = 7850.0      // [kg/m³]
	o.Tshell = 0.0127   // [m] 1/2 inch plate
	o.Ttube = 0.00211   // [m] 14 BWG tubing
	o.Tbaffle = 0.00635 // [m] 1/4 inch plate
}
