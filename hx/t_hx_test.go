// Copyright 2024 The Equipment-Design Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/A-JMinor/Equipment-Design-Chemical-Processes/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_tubes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tubes01. tube count for 50 m² of transfer area")

	n, err := TubeCount(50, 0.02, 4)
	if err != nil {
		tst.Errorf("TubeCount failed: %v\n", err)
		return
	}
	io.Pforan("n = %v\n", n)
	chk.Int(tst, "n", n, 199)
}

func Test_tubes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tubes02. rounding up is minimal")

	dout, length := 0.02, 4.0
	atube := math.Pi * dout * length
	for _, area := range utl.LinSpace(0.5, 500, 81) {
		n, err := TubeCount(area, dout, length)
		if err != nil {
			tst.Errorf("TubeCount failed: %v\n", err)
			return
		}
		if float64(n)*atube < area {
			tst.Errorf("%d tubes fall short of area=%g\n", n, area)
			return
		}
		if float64(n-1)*atube >= area {
			tst.Errorf("%d tubes over-provide area=%g\n", n, area)
			return
		}
	}
}

func Test_tubes03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tubes03. invalid input")

	for _, args := range [][]float64{
		{-50, 0.02, 4},
		{0, 0.02, 4},
		{50, 0, 4},
		{50, 0.02, -1},
	} {
		_, err := TubeCount(args[0], args[1], args[2])
		if err == nil {
			tst.Errorf("TubeCount should have failed with area=%g, dout=%g, length=%g\n", args[0], args[1], args[2])
			return
		}
		io.Pf("%v\n", err)
	}
}

func Test_shell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell01. shell diameter for a 199-tube bundle")

	ds, err := ShellDiameter(199, 0.02, 1.25, Triangular, 1)
	if err != nil {
		tst.Errorf("ShellDiameter failed: %v\n", err)
		return
	}
	io.Pforan("Ds (triangular) = %v\n", ds)
	chk.Float64(tst, "Ds triangular", 1e-8, ds, 0.524635594)

	ds, err = ShellDiameter(199, 0.02, 1.25, Square, 1)
	if err != nil {
		tst.Errorf("ShellDiameter failed: %v\n", err)
		return
	}
	io.Pforan("Ds (square)     = %v\n", ds)
	chk.Float64(tst, "Ds square", 1e-8, ds, 0.574204996)

	// tiny bundles hit the practical minimum
	ds, err = ShellDiameter(1, 0.02, 1.25, Triangular, 1)
	if err != nil {
		tst.Errorf("ShellDiameter failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Ds minimum", 1e-15, ds, MinShellDiameter)
}

func Test_shell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell02. shell diameter grows with the tube count")

	prev := 0.0
	for _, nt := range utl.IntRange2(1, 301) {
		ds, err := ShellDiameter(nt, 0.02, 1.25, Triangular, 1)
		if err != nil {
			tst.Errorf("ShellDiameter failed: %v\n", err)
			return
		}
		if ds < prev {
			tst.Errorf("shell diameter decreased from %g to %g at ntubes=%d\n", prev, ds, nt)
			return
		}
		prev = ds
	}
}

func Test_shell03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell03. invalid input")

	if _, err := ShellDiameter(0, 0.02, 1.25, Triangular, 1); err == nil {
		tst.Errorf("ShellDiameter should have failed with ntubes=0\n")
		return
	}
	if _, err := ShellDiameter(199, 0.02, 1.25, "rotated", 1); err == nil {
		tst.Errorf("ShellDiameter should have failed with an unknown pitch type\n")
		return
	}
	if _, err := ShellDiameter(199, 0.02, 1.25, Triangular, 3); err == nil {
		tst.Errorf("ShellDiameter should have failed with 3 passes\n")
		return
	}
	if _, err := ShellDiameter(199, 0.02, 0.9, Triangular, 1); err == nil {
		tst.Errorf("ShellDiameter should have failed with overlapping tubes\n")
		return
	}
}

func Test_baffles01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("baffles01. Kern spacing and count")

	b, err := BaffleSpacing(0.524635594, 4.0, 0.25, 0)
	if err != nil {
		tst.Errorf("BaffleSpacing failed: %v\n", err)
		return
	}
	io.Pforan("spacing = %v\n", b.Spacing)
	io.Pforan("count   = %v\n", b.Count)
	chk.Float64(tst, "spacing", 1e-8, b.Spacing, 0.209854238)
	chk.Int(tst, "count", b.Count, 19)
	chk.Float64(tst, "cut", 1e-15, b.Cut, 0.25)

	// spacing requests outside Kern's range are clipped, not honoured
	b, err = BaffleSpacing(0.5, 4.0, 0.25, 0.05)
	if err != nil {
		tst.Errorf("BaffleSpacing failed: %v\n", err)
		return
	}
	chk.Float64(tst, "spacing clipped low", 1e-15, b.Spacing, 0.1)

	b, err = BaffleSpacing(0.5, 4.0, 0.25, 2.0)
	if err != nil {
		tst.Errorf("BaffleSpacing failed: %v\n", err)
		return
	}
	chk.Float64(tst, "spacing clipped high", 1e-15, b.Spacing, 0.5)
	chk.Int(tst, "count clipped high", b.Count, 8)
}

func Test_baffles02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("baffles02. invalid input")

	if _, err := BaffleSpacing(-0.5, 4.0, 0.25, 0); err == nil {
		tst.Errorf("BaffleSpacing should have failed with a negative shell diameter\n")
		return
	}
	if _, err := BaffleSpacing(0.5, 0, 0.25, 0); err == nil {
		tst.Errorf("BaffleSpacing should have failed with a zero tube length\n")
		return
	}
	if _, err := BaffleSpacing(0.5, 4.0, 0.6, 0); err == nil {
		tst.Errorf("BaffleSpacing should have failed with a cut fraction above 0.5\n")
		return
	}
}

func Test_weight01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weight01. exchanger weight from shell, tubes and baffles")

	var steel mat.CarbonSteel
	steel.Init()

	b := Baffles{Spacing: 0.209854238, Count: 19, Cut: 0.25}
	w, err := ExchangerWeight(0.524635594, 4.0, 199, 0.02, b, steel)
	if err != nil {
		tst.Errorf("ExchangerWeight failed: %v\n", err)
		return
	}
	io.Pforan("shell   = %v kg\n", w.Shell)
	io.Pforan("tubes   = %v kg\n", w.Tubes)
	io.Pforan("baffles = %v kg\n", w.Baffles)
	io.Pforan("total   = %v kg\n", w.Total)
	chk.Float64(tst, "shell", 1e-4, w.Shell, 641.355123)
	chk.Float64(tst, "tubes", 1e-4, w.Tubes, 741.012259)
	chk.Float64(tst, "baffles", 1e-4, w.Baffles, 185.394970)
	chk.Float64(tst, "total", 1e-4, w.Total, 1567.762352)

	// baffles wider apart than the tube length contribute nothing
	b = Baffles{Spacing: 5.0, Count: 1, Cut: 0.25}
	w, err = ExchangerWeight(0.524635594, 4.0, 199, 0.02, b, steel)
	if err != nil {
		tst.Errorf("ExchangerWeight failed: %v\n", err)
		return
	}
	chk.Float64(tst, "baffles skipped", 1e-15, w.Baffles, 0)
}

func Test_weight02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weight02. invalid input")

	var steel mat.CarbonSteel
	steel.Init()
	b := Baffles{Spacing: 0.2, Count: 19, Cut: 0.25}

	if _, err := ExchangerWeight(0, 4.0, 199, 0.02, b, steel); err == nil {
		tst.Errorf("ExchangerWeight should have failed with a zero shell diameter\n")
		return
	}
	if _, err := ExchangerWeight(0.52, 4.0, 0, 0.02, b, steel); err == nil {
		tst.Errorf("ExchangerWeight should have failed with no tubes\n")
		return
	}
	if _, err := ExchangerWeight(0.52, 4.0, 199, 0.004, b, steel); err == nil {
		tst.Errorf("ExchangerWeight should have failed with tubes thinner than two walls\n")
		return
	}
	steel.Rho = 0
	if _, err := ExchangerWeight(0.52, 4.0, 199, 0.02, b, steel); err == nil {
		tst.Errorf("ExchangerWeight should have failed with a zero density\n")
		return
	}
}
