// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kern's limits for baffle spacing as fractions of the shell diameter
const (
	minSpacingRatio     = 0.2
	maxSpacingRatio     = 1.0
	defaultSpacingRatio = 0.4
)

// Baffles holds the baffle arrangement resulting from Kern's method
type Baffles struct {
	Spacing float64 // centre-to-centre baffle spacing [m]
	Count   int     // number of baffle plates along the shell
	Cut     float64 // baffle cut fraction
}

// BaffleSpacing computes the baffle arrangement following Kern's method:
// the target spacing spacingRatio・shellDia is clipped to the allowed range
// [0.2・shellDia, shellDia] and the number of baffles follows from the tube
// length, rounded down.
//  Input:
//   shellDia     -- shell inner diameter [m]
//   tubeLength   -- tube (and shell) length [m]
//   cutFraction  -- baffle cut fraction; must lie within (0, 0.5); 0.25 is typical
//   spacingRatio -- target spacing as a fraction of shellDia; values ≤ 0 select 0.4
//  Output:
//   b -- baffle spacing, count and cut
func BaffleSpacing(shellDia, tubeLength, cutFraction, spacingRatio float64) (b Baffles, err error) {
	if shellDia <= 0 {
		return b, chk.Err("shell diameter must be positive. shellDia=%g is invalid", shellDia)
	}
	if tubeLength <= 0 {
		return b, chk.Err("tube length must be positive. tubeLength=%g is invalid", tubeLength)
	}
	if cutFraction <= 0 || cutFraction >= 0.5 {
		return b, chk.Err("baffle cut fraction must lie within (0, 0.5). cutFraction=%g is invalid", cutFraction)
	}
	if spacingRatio <= 0 {
		spacingRatio = defaultSpacingRatio
	}
	spacing := spacingRatio * shellDia
	if spacing < minSpacingRatio*shellDia {
		spacing = minSpacingRatio * shellDia
	}
	if spacing > maxSpacingRatio*shellDia {
		spacing = maxSpacingRatio * shellDia
	}
	b.Spacing = spacing
	b.Count = int(math.Floor(tubeLength / spacing))
	b.Cut = cutFraction
	return
}
