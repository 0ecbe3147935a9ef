// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hx implements sizing calculations for shell-and-tube heat exchangers
package hx

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// TubeCount estimates the number of tubes required to provide a heat transfer
// area with tubes of fixed outer diameter and length. The count is rounded up
// so the bundle never falls short of the required area.
//  Input:
//   area   -- required heat transfer area [m²]
//   dout   -- tube outer diameter [m]
//   length -- tube length [m]
//  Output:
//   n -- number of tubes
func TubeCount(area, dout, length float64) (n int, err error) {
	if area <= 0 {
		return 0, chk.Err("heat transfer area must be positive. area=%g is invalid", area)
	}
	if dout <= 0 {
		return 0, chk.Err("tube outer diameter must be positive. dout=%g is invalid", dout)
	}
	if length <= 0 {
		return 0, chk.Err("tube length must be positive. length=%g is invalid", length)
	}
	return int(math.Ceil(area / (math.Pi * dout * length))), nil
}
