// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sep

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// design assumptions for vertical separator vessels
const (
	// DefaultHDRatio is the assumed vessel height-to-diameter ratio
	DefaultHDRatio = 3.0

	// DefaultLiquidFraction is the fraction of the vessel volume occupied by
	// liquid at steady state
	DefaultLiquidFraction = 0.6
)

// VesselDiameter computes the vessel inner diameter so that the superficial
// gas velocity stays at or below the droplet terminal velocity
//  Input:
//   gasFlow -- gas volumetric flow rate [m³/s]
//   ut      -- droplet terminal velocity [m/s]
//   margin  -- design velocity as a fraction of ut; must not exceed 1 and
//              values ≤ 0 select 1 (design velocity equal to ut)
//  Output:
//   dia -- vessel inner diameter [m]
func VesselDiameter(gasFlow, ut, margin float64) (dia float64, err error) {
	if gasFlow <= 0 {
		return 0, chk.Err("gas flow rate must be positive. gasFlow=%g is invalid", gasFlow)
	}
	if ut <= 0 {
		return 0, chk.Err("terminal velocity must be positive. ut=%g is invalid", ut)
	}
	if margin > 1 {
		return 0, chk.Err("design velocity margin must not exceed 1. margin=%g is invalid", margin)
	}
	if margin <= 0 {
		margin = 1.0
	}
	return math.Sqrt(4.0 * gasFlow / (math.Pi * margin * ut)), nil
}

// VesselVolume computes the vessel volume from its diameter and a
// height-to-diameter ratio
//  Input:
//   dia     -- vessel inner diameter [m]
//   hdRatio -- height-to-diameter ratio; values ≤ 0 select 3
//  Output:
//   vol -- vessel volume [m³]
func VesselVolume(dia, hdRatio float64) (vol float64, err error) {
	if dia <= 0 {
		return 0, chk.Err("vessel diameter must be positive. dia=%g is invalid", dia)
	}
	if hdRatio <= 0 {
		hdRatio = DefaultHDRatio
	}
	return math.Pi / 4.0 * dia * dia * (hdRatio * dia), nil
}

// HoldUpTime computes the liquid residence time within the vessel
//  Input:
//   vol         -- vessel volume [m³]
//   liqFlow     -- liquid volumetric flow rate [m³/s]
//   liqFraction -- fraction of the volume occupied by liquid; must not
//                  exceed 1 and values ≤ 0 select the 0.6 design assumption
//  Output:
//   t -- hold-up time [s]
func HoldUpTime(vol, liqFlow, liqFraction float64) (t float64, err error) {
	if vol <= 0 {
		return 0, chk.Err("vessel volume must be positive. vol=%g is invalid", vol)
	}
	if liqFlow <= 0 {
		return 0, chk.Err("liquid flow rate must be positive. liqFlow=%g is invalid", liqFlow)
	}
	if liqFraction > 1 {
		return 0, chk.Err("liquid fraction must not exceed 1. liqFraction=%g is invalid", liqFraction)
	}
	if liqFraction <= 0 {
		liqFraction = DefaultLiquidFraction
	}
	return liqFraction * vol / liqFlow, nil
}

// GasVelocity computes the superficial gas velocity through the vessel
//  Input:
//   gasFlow -- gas volumetric flow rate [m³/s]
//   dia     -- vessel inner diameter [m]
//  Output:
//   v -- superficial gas velocity [m/s]
func GasVelocity(gasFlow, dia float64) (v float64, err error) {
	if gasFlow <= 0 {
		return 0, chk.Err("gas flow rate must be positive. gasFlow=%g is invalid", gasFlow)
	}
	if dia <= 0 {
		return 0, chk.Err("vessel diameter must be positive. dia=%g is invalid", dia)
	}
	return gasFlow / (math.Pi / 4.0 * dia * dia), nil
}
