// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sep

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/A-JMinor/Equipment-Design-Chemical-Processes/mat"
)

// Sizing chains the terminal velocity, vessel sizing and hold-up time
// calculations into a complete separator estimate
type Sizing struct {
	RhoGas      float64 // gas phase density [kg/m³]
	RhoLiq      float64 // liquid phase density [kg/m³]
	GasFlow     float64 // gas volumetric flow rate [m³/s]
	LiqFlow     float64 // liquid volumetric flow rate [m³/s]
	Mu          float64 // gas dynamic viscosity [Pa・s]
	DropDia     float64 // droplet diameter targeted for separation [m]
	HDRatio     float64 // vessel height-to-diameter ratio
	Margin      float64 // design velocity as a fraction of the terminal velocity
	LiqFraction float64 // fraction of the vessel volume occupied by liquid
}

// Design holds the results of a separator sizing
type Design struct {
	TerminalVelocity float64 // droplet settling velocity [m/s]
	Diameter         float64 // vessel inner diameter [m]
	Volume           float64 // vessel volume [m³]
	HoldUpTime       float64 // liquid residence time [s]
	GasVelocity      float64 // superficial gas velocity [m/s]
}

// Init initialises this structure
func (o *Sizing) Init(prms fun.Params) (err error) {
	o.DropDia = DefaultDropletDiameter
	o.HDRatio = DefaultHDRatio
	o.Margin = 1.0
	o.LiqFraction = DefaultLiquidFraction
	for _, p := range prms {
		switch p.N {
		case "rhog":
			o.RhoGas = p.V
		case "rhol":
			o.RhoLiq = p.V
		case "qg":
			o.GasFlow = p.V
		case "ql":
			o.LiqFlow = p.V
		case "mug":
			o.Mu = p.V
		case "dsphere":
			o.DropDia = p.V
		case "hd":
			o.HDRatio = p.V
		case "margin":
			o.Margin = p.V
		case "fliq":
			o.LiqFraction = p.V
		default:
			return chk.Err("sep.Sizing: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters. The example separates water
// droplets from dry air at ambient conditions.
func (o Sizing) GetPrms(example bool) fun.Params {
	if example {
		var air mat.DryAir
		air.Init()
		var water mat.Water
		water.Init()
		return fun.Params{
			&fun.P{N: "rhog", V: air.Rho},   // [kg/m³]
			&fun.P{N: "rhol", V: water.Rho}, // [kg/m³]
			&fun.P{N: "qg", V: 0.5},         // [m³/s]
			&fun.P{N: "ql", V: 0.002},       // [m³/s]
			&fun.P{N: "mug", V: air.Mu},     // [Pa・s]
		}
	}
	return fun.Params{
		&fun.P{N: "rhog", V: o.RhoGas},
		&fun.P{N: "rhol", V: o.RhoLiq},
		&fun.P{N: "qg", V: o.GasFlow},
		&fun.P{N: "ql", V: o.LiqFlow},
		&fun.P{N: "mug", V: o.Mu},
		&fun.P{N: "dsphere", V: o.DropDia},
		&fun.P{N: "hd", V: o.HDRatio},
		&fun.P{N: "margin", V: o.Margin},
		&fun.P{N: "fliq", V: o.LiqFraction},
	}
}

// Run computes the complete separator design
//  Output:
//   d -- terminal velocity, vessel diameter and volume, hold-up time and
//        superficial gas velocity
func (o Sizing) Run() (d Design, err error) {
	d.TerminalVelocity, err = TerminalVelocity(o.DropDia, o.RhoGas, o.RhoLiq, o.Mu)
	if err != nil {
		return
	}
	d.Diameter, err = VesselDiameter(o.GasFlow, d.TerminalVelocity, o.Margin)
	if err != nil {
		return
	}
	d.Volume, err = VesselVolume(d.Diameter, o.HDRatio)
	if err != nil {
		return
	}
	d.HoldUpTime, err = HoldUpTime(d.Volume, o.LiqFlow, o.LiqFraction)
	if err != nil {
		return
	}
	d.GasVelocity, err = GasVelocity(o.GasFlow, d.Diameter)
	return
}
