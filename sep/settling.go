// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sep implements sizing calculations for vertical gas-liquid separators
package sep

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// grav is the gravitational acceleration [m/s²]
const grav = 9.81

// DefaultDropletDiameter is the droplet diameter targeted for separation of
// water-like liquids [m]. Smaller values demand larger vessels; for more
// viscous liquids a larger diameter may still separate effectively.
const DefaultDropletDiameter = 0.0001

// TerminalVelocity computes the settling velocity of liquid droplets in a
// gas stream using Stokes' law modified for non-ideal drag. The
// dimensionless droplet diameter
//   d* = d・(ρg・(ρl−ρg)・g/μ²)^(1/3)
// spans the Stokes, intermediate and turbulent regimes through the
// dimensionless velocity
//   u* = (18/d*² + 0.591/√d*)⁻¹
// which converts back with ut = u*・(μ・(ρl−ρg)・g/ρg²)^(1/3)
//  Input:
//   dropDia -- droplet diameter targeted for separation [m]
//   rhoGas  -- gas phase density [kg/m³]
//   rhoLiq  -- liquid phase density [kg/m³]
//   mu      -- gas dynamic viscosity [Pa・s]
//  Output:
//   ut -- droplet terminal velocity [m/s]
func TerminalVelocity(dropDia, rhoGas, rhoLiq, mu float64) (ut float64, err error) {
	if dropDia <= 0 {
		return 0, chk.Err("droplet diameter must be positive. dropDia=%g is invalid", dropDia)
	}
	if rhoGas <= 0 {
		return 0, chk.Err("gas density must be positive. rhoGas=%g is invalid", rhoGas)
	}
	if mu <= 0 {
		return 0, chk.Err("gas viscosity must be positive. mu=%g is invalid", mu)
	}
	if rhoGas >= rhoLiq {
		return 0, chk.Err("gas density must be smaller than liquid density for droplets to settle. rhoGas=%g and rhoLiq=%g are invalid", rhoGas, rhoLiq)
	}
	ds := dropDia * math.Pow(rhoGas*(rhoLiq-rhoGas)*grav/(mu*mu), 1.0/3.0)
	us := 1.0 / (18.0/(ds*ds) + 0.591/math.Sqrt(ds))
	return us * math.Pow(mu*(rhoLiq-rhoGas)*grav/(rhoGas*rhoGas), 1.0/3.0), nil
}
