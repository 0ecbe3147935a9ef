// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/A-JMinor/Equipment-Design-Chemical-Processes/mat"
)

// Sizing chains the tube count, shell diameter, baffle arrangement and
// weight calculations into a complete exchanger estimate. Barely filled
// bundles are raised to a practical minimum number of tubes, and a cap on
// the tube count may be set to reject designs needing a larger shell.
type Sizing struct {
	Dout         float64         // tube outer diameter [m]
	Length       float64         // tube length [m]
	PitchRatio   float64         // tube pitch as a multiple of Dout
	Ptype        PitchType       // tube layout pattern
	Npasses      int             // number of tube passes
	Cut          float64         // baffle cut fraction
	SpacingRatio float64         // target baffle spacing as a fraction of the shell diameter
	MinTubes     int             // practical minimum number of tubes
	MaxTubes     int             // maximum allowable number of tubes; 0 disables the cap
	Steel        mat.CarbonSteel // construction material
}

// Design holds the results of a complete exchanger estimate
type Design struct {
	Ntubes   int     // number of tubes
	ShellDia float64 // shell inner diameter [m]
	Baffles  Baffles // baffle arrangement
	Weight   Weight  // component and total masses [kg]
}

// Init initialises this structure
func (o *Sizing) Init(prms fun.Params) (err error) {
	o.PitchRatio = 1.25
	o.Ptype = Triangular
	o.Npasses = 1
	o.Cut = 0.25
	o.SpacingRatio = defaultSpacingRatio
	o.MinTubes = 20
	o.Steel.Init()
	for _, p := range prms {
		switch p.N {
		case "dout":
			o.Dout = p.V
		case "length":
			o.Length = p.V
		case "rp":
			o.PitchRatio = p.V
		case "square":
			if p.V > 0 {
				o.Ptype = Square
			}
		case "npasses":
			o.Npasses = int(p.V)
		case "cut":
			o.Cut = p.V
		case "rspacing":
			o.SpacingRatio = p.V
		case "mintubes":
			o.MinTubes = int(p.V)
		case "maxtubes":
			o.MaxTubes = int(p.V)
		case "rhosteel":
			o.Steel.Rho = p.V
		case "tshell":
			o.Steel.Tshell = p.V
		case "ttube":
			o.Steel.Ttube = p.V
		case "tbaffle":
			o.Steel.Tbaffle = p.V
		default:
			return chk.Err("hx.Sizing: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Sizing) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "dout", V: 0.02},  // [m]
			&fun.P{N: "length", V: 4.0}, // [m]
			&fun.P{N: "rp", V: 1.25},    // [-]
			&fun.P{N: "cut", V: 0.25},   // [-]
		}
	}
	var square float64
	if o.Ptype == Square {
		square = 1
	}
	return fun.Params{
		&fun.P{N: "dout", V: o.Dout},
		&fun.P{N: "length", V: o.Length},
		&fun.P{N: "rp", V: o.PitchRatio},
		&fun.P{N: "square", V: square},
		&fun.P{N: "npasses", V: float64(o.Npasses)},
		&fun.P{N: "cut", V: o.Cut},
		&fun.P{N: "rspacing", V: o.SpacingRatio},
		&fun.P{N: "mintubes", V: float64(o.MinTubes)},
		&fun.P{N: "maxtubes", V: float64(o.MaxTubes)},
		&fun.P{N: "rhosteel", V: o.Steel.Rho},
		&fun.P{N: "tshell", V: o.Steel.Tshell},
		&fun.P{N: "ttube", V: o.Steel.Ttube},
		&fun.P{N: "tbaffle", V: o.Steel.Tbaffle},
	}
}

// Run computes the complete exchanger design for a required heat transfer area
//  Input:
//   area -- required heat transfer area [m²]
//  Output:
//   d -- tube count, shell diameter, baffle arrangement and weight
func (o Sizing) Run(area float64) (d Design, err error) {
	d.Ntubes, err = TubeCount(area, o.Dout, o.Length)
	if err != nil {
		return
	}

	// a single tube stands, but small bundles are raised to the practical minimum
	if d.Ntubes > 1 && d.Ntubes < o.MinTubes {
		d.Ntubes = o.MinTubes
	}
	if o.MaxTubes > 0 && d.Ntubes > o.MaxTubes {
		return d, chk.Err("area=%g needs %d tubes, above the %d allowed; increase tube length or diameter", area, d.Ntubes, o.MaxTubes)
	}

	d.ShellDia, err = ShellDiameter(d.Ntubes, o.Dout, o.PitchRatio, o.Ptype, o.Npasses)
	if err != nil {
		return
	}
	d.Baffles, err = BaffleSpacing(d.ShellDia, o.Length, o.Cut, o.SpacingRatio)
	if err != nil {
		return
	}
	d.Weight, err = ExchangerWeight(d.ShellDia, o.Length, d.Ntubes, o.Dout, d.Baffles, o.Steel)
	return
}
