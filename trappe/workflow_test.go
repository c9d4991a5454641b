/*
 * workflow_test.go, part of govasp.
 *
 *
 * Copyright 2026 A. Quevedo <aquevedo{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package trappe

import (
	"path/filepath"
	"testing"

	vasp "github.com/aquevedo/govasp"
)

func TestAddAmmoniaBetween(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "POSCAR_nh3")
	pl := &vasp.Placement{
		P1: vasp.Point{2, 2, 2},
		P2: vasp.Point{8, 8, 8},
		At: vasp.AtMidpoint,
	}
	err := AddAmmoniaBetween("../test/POSCAR", "../test/NH3.def", pl, out, nil)
	if err != nil {
		Te.Fatal(err)
	}
	P, err := vasp.PoscarFileRead(out)
	if err != nil {
		Te.Fatal(err)
	}
	if P.Len() != 10 { //6 framework + N + 3 H
		Te.Fatalf("got %d atoms, want 10", P.Len())
	}
	//the anchor N lands on the midpoint of the reference points
	var n vasp.Point
	found := false
	for i := 0; i < P.Len(); i++ {
		if P.Symbol(i) == "N" {
			n = P.CartAtom(i)
			found = true
			break
		}
	}
	if !found {
		Te.Fatal("no nitrogen in the output")
	}
	if n.Sub(vasp.Point{5, 5, 5}).Norm() > 1e-9 {
		Te.Errorf("N position: %v", n)
	}
}

func TestAddHydrogenBetween(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "POSCAR_h2")
	pl := &vasp.Placement{
		P1: vasp.Point{0, 0, 2},
		P2: vasp.Point{0, 0, 8},
		At: vasp.AtSecond,
	}
	err := AddHydrogenBetween("../test/POSCAR", "../test/H2.def", pl, out, nil)
	if err != nil {
		Te.Fatal(err)
	}
	P, err := vasp.PoscarFileRead(out)
	if err != nil {
		Te.Fatal(err)
	}
	if P.Len() != 8 {
		Te.Fatalf("got %d atoms, want 8", P.Len())
	}
	c1, c2 := P.CartAtom(6), P.CartAtom(7)
	center := c1.Add(c2).Scale(0.5)
	if center.Sub(vasp.Point{0, 0, 8}).Norm() > 1e-9 {
		Te.Errorf("H2 center: %v", center)
	}
}
