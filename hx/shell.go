// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PitchType selects the tube layout pattern
type PitchType string

// available tube layout patterns
const (
	Triangular PitchType = "triangular"
	Square     PitchType = "square"
)

// MinShellDiameter is the smallest practical shell diameter [m]
const MinShellDiameter = 0.15

// shellToBundle is the shell-to-bundle diameter ratio accounting for the
// clearance between the outermost tubes and the shell wall
const shellToBundle = 1.3

// bundleConstants holds the (K1, n1) pairs of the tube-count correlation
//   Nt = K1・(Db/dout)^n1
// tabulated for pitch = 1.25・dout and 1, 2, 4, 6 and 8 tube passes
var bundleConstants = map[PitchType]map[int][2]float64{
	Triangular: {
		1: {0.319, 2.142},
		2: {0.249, 2.207},
		4: {0.175, 2.285},
		6: {0.0743, 2.499},
		8: {0.0365, 2.675},
	},
	Square: {
		1: {0.215, 2.207},
		2: {0.156, 2.291},
		4: {0.158, 2.263},
		6: {0.0402, 2.617},
		8: {0.0331, 2.643},
	},
}

// BundleDiameter computes the tube bundle diameter from the inverted
// tube-count correlation. The tabulated constants correspond to a pitch
// ratio of 1.25; other ratios rescale the result linearly with the pitch
// pitchRatio・dout.
//  Input:
//   ntubes     -- number of tubes
//   dout       -- tube outer diameter [m]
//   pitchRatio -- tube pitch as a multiple of dout; must be at least 1
//   ptype      -- tube layout pattern
//   npasses    -- number of tube passes (1, 2, 4, 6 or 8)
//  Output:
//   db -- bundle diameter [m]
func BundleDiameter(ntubes int, dout, pitchRatio float64, ptype PitchType, npasses int) (db float64, err error) {
	if ntubes < 1 {
		return 0, chk.Err("number of tubes must be at least 1. ntubes=%d is invalid", ntubes)
	}
	if dout <= 0 {
		return 0, chk.Err("tube outer diameter must be positive. dout=%g is invalid", dout)
	}
	if pitchRatio < 1 {
		return 0, chk.Err("pitch ratio must be at least 1 so that tubes do not overlap. pitchRatio=%g is invalid", pitchRatio)
	}
	table, ok := bundleConstants[ptype]
	if !ok {
		return 0, chk.Err("pitch type %q is not available; use %q or %q", ptype, Triangular, Square)
	}
	kn, ok := table[npasses]
	if !ok {
		return 0, chk.Err("bundle constants are not available for %d tube passes", npasses)
	}
	K1, n1 := kn[0], kn[1]
	return dout * math.Pow(float64(ntubes)/K1, 1.0/n1) * (pitchRatio / 1.25), nil
}

// ShellDiameter computes the minimum shell diameter housing a tube bundle,
// clipped from below to MinShellDiameter
//  Input: (see BundleDiameter)
//  Output:
//   ds -- shell inner diameter [m]
func ShellDiameter(ntubes int, dout, pitchRatio float64, ptype PitchType, npasses int) (ds float64, err error) {
	db, err := BundleDiameter(ntubes, dout, pitchRatio, ptype, npasses)
	if err != nil {
		return
	}
	return math.Max(shellToBundle*db, MinShellDiameter), nil
}
