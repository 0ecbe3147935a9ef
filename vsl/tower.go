// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vsl implements weight estimation of vertical pressure vessels and towers
package vsl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/A-JMinor/Equipment-Design-Chemical-Processes/mat"
)

// unit conversion factors; the wall thickness correlations work in
// imperial units (inches, psig, °F) while the interface stays SI
const (
	kgm3ToLbin3 = 0.000036127298147753
	mToIn       = 39.3701
	kPaToPsig   = 0.145038
	kgToLb      = 2.20462
)

// wall thickness limits [in]
const (
	minThickness       = 0.25
	corrosionAllowance = 0.125
)

// Tower estimates the weight of a vertical processing vessel following
// Seader's method: the design pressure and temperature fix the allowable
// stress and elastic modulus, the wall thickness follows from a fixed-point
// iteration, and the weight from the thin-shell formula.
type Tower struct {
	Pmin float64 // lowest operating pressure [kPa]
	Tmax float64 // highest operating temperature [K]
	Dia  float64 // inner diameter [m]
	Ltt  float64 // tangent-to-tangent length [m]
	Rho  float64 // material density [kg/m³]
}

// Init initialises this structure
func (o *Tower) Init(prms fun.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "pmin":
			o.Pmin = p.V
		case "tmax":
			o.Tmax = p.V
		case "d":
			o.Dia = p.V
		case "l":
			o.Ltt = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("vsl.Tower: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters. The example is a carbon steel
// tower at 200 kPa and 400 K.
func (o Tower) GetPrms(example bool) fun.Params {
	if example {
		var steel mat.CarbonSteel
		steel.Init()
		return fun.Params{
			&fun.P{N: "pmin", V: 200.0},    // [kPa]
			&fun.P{N: "tmax", V: 400.0},    // [K]
			&fun.P{N: "d", V: 2.0},         // [m]
			&fun.P{N: "l", V: 10.0},        // [m]
			&fun.P{N: "rho", V: steel.Rho}, // [kg/m³]
		}
	}
	return fun.Params{
		&fun.P{N: "pmin", V: o.Pmin},
		&fun.P{N: "tmax", V: o.Tmax},
		&fun.P{N: "d", V: o.Dia},
		&fun.P{N: "l", V: o.Ltt},
		&fun.P{N: "rho", V: o.Rho},
	}
}

// designPressure returns the design pressure [psig] from the lowest
// operating pressure
func (o Tower) designPressure() float64 {
	pg := o.Pmin * kPaToPsig
	switch {
	case o.Pmin <= 34.5:
		return 10.0
	case o.Pmin <= 6895.0:
		lp := math.Log(pg)
		return math.Exp(0.60608 + 0.91615*lp + 0.0015655*lp*lp)
	}
	return 1.1 * pg
}

// designTemperature returns the design temperature [°F] with a 50°F margin
// over the highest operating temperature
func (o Tower) designTemperature() float64 {
	return (o.Tmax-273.15)*9.0/5.0 + 32.0 + 50.0
}

// elasticModulus returns the modulus of elasticity [psi] at the design
// temperature [°F]
func elasticModulus(degF float64) float64 {
	switch {
	case degF < 200.0:
		return 30.2e6
	case degF < 400.0:
		return 29.5e6
	case degF < 650.0:
		return 28.3e6
	}
	return 26.0e6
}

// allowableStress returns the allowable stress [psi] at the design
// temperature [°F]
func allowableStress(degF float64) (float64, error) {
	switch {
	case degF <= 750.0:
		return 15000.0, nil
	case degF <= 800.0:
		return 14750.0, nil
	case degF <= 850.0:
		return 14200.0, nil
	case degF <= 900.0:
		return 13100.0, nil
	}
	return 0, chk.Err("design temperature %g°F is too high for the wall thickness correlation", degF)
}

// maxThicknessIt bounds the wall thickness iteration
const maxThicknessIt = 100

// fixpoint iterates t ← f(t) from the minimum thickness until the relative
// change drops below 0.1%
func fixpoint(f func(t float64) float64) (float64, error) {
	t0 := minThickness
	for it := 0; it < maxThicknessIt; it++ {
		t := f(t0)
		if math.Abs((t0-t)/t0) <= 0.001 {
			return t, nil
		}
		t0 = t
	}
	return 0, chk.Err("wall thickness iteration did not converge after %d iterations", maxThicknessIt)
}

// WallThickness computes the required wall thickness [in]. Vessels at or
// above atmospheric pressure combine the wind and pressure terms; vessels
// under vacuum use the external pressure branch with a corrosion allowance.
func (o Tower) WallThickness() (t float64, err error) {
	if o.Pmin <= 0 {
		return 0, chk.Err("operating pressure must be positive. pmin=%g is invalid", o.Pmin)
	}
	if o.Tmax <= 0 {
		return 0, chk.Err("operating temperature must be positive. tmax=%g is invalid", o.Tmax)
	}
	if o.Dia <= 0 {
		return 0, chk.Err("diameter must be positive. d=%g is invalid", o.Dia)
	}
	if o.Ltt <= 0 {
		return 0, chk.Err("tangent-to-tangent length must be positive. l=%g is invalid", o.Ltt)
	}

	dT := o.designTemperature()
	S, err := allowableStress(dT)
	if err != nil {
		return
	}
	dP := o.designPressure()
	din := o.Dia * mToIn
	lin := o.Ltt * mToIn

	if o.Pmin >= 101.0 {
		// wind load plus internal pressure
		tE, ferr := fixpoint(func(t float64) float64 {
			return 0.22 * (din + t + 18.0) * lin * lin / (S * (din + t) * (din + t))
		})
		if ferr != nil {
			return 0, ferr
		}
		tp := dP * din / (2.0*S - 1.2*dP)
		t = (tp + tE + tp) / 2.0
	} else {
		// external pressure (vacuum) branch
		E := elasticModulus(dT)
		tE, ferr := fixpoint(func(t float64) float64 {
			return 1.3 * (din + t) * math.Pow(dP*lin/(E*(din+t)), 0.4)
		})
		if ferr != nil {
			return 0, ferr
		}
		if tE/din >= 0.05 {
			return 0, chk.Err("wall thickness %g in is beyond the validity of the vacuum correlation for diameter %g in", tE, din)
		}
		t = tE + corrosionAllowance
		if tEC := lin*(0.18*din-2.2)*1e-5 - 0.19; tEC > 0 {
			t += tEC
		}
	}

	if t < minThickness {
		t = minThickness
	}
	return
}

// Weight computes the vessel weight [kg]
func (o Tower) Weight() (w float64, err error) {
	if o.Rho <= 0 {
		return 0, chk.Err("material density must be positive. rho=%g is invalid", o.Rho)
	}
	t, err := o.WallThickness()
	if err != nil {
		return
	}
	din := o.Dia * mToIn
	lin := o.Ltt * mToIn
	w = math.Pi * t * (o.Rho * kgm3ToLbin3) * (din + t) * (lin + 0.8*din)
	return w / kgToLb, nil
}
