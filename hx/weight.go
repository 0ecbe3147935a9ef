// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/A-JMinor/Equipment-Design-Chemical-Processes/mat"
)

// Weight holds the component and total masses of a shell-and-tube exchanger
type Weight struct {
	Shell   float64 // shell barrel [kg]
	Tubes   float64 // tube bundle [kg]
	Baffles float64 // baffle plates [kg]
	Total   float64 // sum of the above [kg]
}

// ExchangerWeight estimates the mass of a shell-and-tube exchanger by adding
// the shell barrel, the tube bundle and the baffle plates. Each component is
// an annulus or plate volume multiplied by the material density. Baffles are
// included only when their spacing fits within the tube length.
//  Input:
//   shellDia   -- shell outer diameter [m]
//   tubeLength -- tube (and shell) length [m]
//   ntubes     -- number of tubes
//   dout       -- tube outer diameter [m]
//   b          -- baffle arrangement
//   steel      -- construction material with density and wall thicknesses
//  Output:
//   w -- component and total masses [kg]
func ExchangerWeight(shellDia, tubeLength float64, ntubes int, dout float64, b Baffles, steel mat.CarbonSteel) (w Weight, err error) {
	if shellDia <= 0 {
		return w, chk.Err("shell diameter must be positive. shellDia=%g is invalid", shellDia)
	}
	if tubeLength <= 0 {
		return w, chk.Err("tube length must be positive. tubeLength=%g is invalid", tubeLength)
	}
	if ntubes < 1 {
		return w, chk.Err("number of tubes must be at least 1. ntubes=%d is invalid", ntubes)
	}
	if dout <= 0 {
		return w, chk.Err("tube outer diameter must be positive. dout=%g is invalid", dout)
	}
	if steel.Rho <= 0 || steel.Tshell <= 0 || steel.Ttube <= 0 || steel.Tbaffle <= 0 {
		return w, chk.Err("material density and wall thicknesses must be positive. ρ=%g, tshell=%g, ttube=%g, tbaffle=%g are invalid", steel.Rho, steel.Tshell, steel.Ttube, steel.Tbaffle)
	}
	if shellDia <= 2*steel.Tshell {
		return w, chk.Err("shell diameter %g must exceed twice the shell thickness %g", shellDia, steel.Tshell)
	}
	if dout <= 2*steel.Ttube {
		return w, chk.Err("tube outer diameter %g must exceed twice the tube thickness %g", dout, steel.Ttube)
	}

	// shell barrel: annulus between outer and inner diameter
	din := shellDia - 2.0*steel.Tshell
	shellVol := math.Pi * (shellDia*shellDia - din*din) / 4.0 * tubeLength
	w.Shell = shellVol * steel.Rho

	// tube bundle
	tin := dout - 2.0*steel.Ttube
	tubeVol := float64(ntubes) * math.Pi * (dout*dout - tin*tin) / 4.0 * tubeLength
	w.Tubes = tubeVol * steel.Rho

	// baffle plates
	if b.Count > 0 && b.Spacing > 0 && b.Spacing < tubeLength {
		bafVol := math.Pi * din * din / 4.0 * steel.Tbaffle * float64(b.Count)
		w.Baffles = bafVol * steel.Rho
	}

	w.Total = w.Shell + w.Tubes + w.Baffles
	return
}
