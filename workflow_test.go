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

package vasp

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestAddIonsFromPDB(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "POSCAR_ions")
	opts := &InsertOpts{
		Wrap:           true,
		Flags:          &Movable,
		FrameworkFlags: &Fixed,
	}
	err := AddIonsFromPDB("test/POSCAR", "test/ions.pdb", out, -1, opts)
	if err != nil {
		Te.Fatal(err)
	}
	P, err := PoscarFileRead(out)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("workflow output:", P.Comment, P.Symbols, P.Counts)
	if P.Len() != 8 { //6 framework atoms + 2 ions from the last frame
		Te.Fatalf("got %d atoms, want 8", P.Len())
	}
	if P.Symbols[len(P.Symbols)-1] != "Na" {
		Te.Errorf("species after the merge: %v", P.Symbols)
	}
	if !P.Selective {
		Te.Fatal("the output lost its selective dynamics")
	}
	for i := 0; i < 6; i++ {
		if P.Flag(i) != Fixed {
			Te.Errorf("framework atom %d is not frozen", i)
		}
	}
	for i := 6; i < 8; i++ {
		if P.Flag(i) != Movable {
			Te.Errorf("ion %d is not movable", i)
		}
	}
}

func TestAddTemplateBetween(Te *testing.T) {
	h2 := &RigidTemplate{
		Name: "H2",
		Atoms: []Site{
			{Symbol: "H", Pos: Point{0, 0, -0.37}},
			{Symbol: "H", Pos: Point{0, 0, 0.37}},
		},
	}
	pl := &Placement{P1: Point{2, 2, 2}, P2: Point{8, 8, 8}, At: AtMidpoint}
	out := filepath.Join(Te.TempDir(), "POSCAR_h2")
	if err := AddTemplateBetween("test/POSCAR", h2, pl, out, nil); err != nil {
		Te.Fatal(err)
	}
	P, err := PoscarFileRead(out)
	if err != nil {
		Te.Fatal(err)
	}
	if P.Len() != 8 {
		Te.Fatalf("got %d atoms, want 8", P.Len())
	}
	//the molecule center should sit at the cell center, (5,5,5) cartesian
	c1 := P.CartAtom(6)
	c2 := P.CartAtom(7)
	center := c1.Add(c2).Scale(0.5)
	if center.Sub(Point{5, 5, 5}).Norm() > 1e-9 {
		Te.Errorf("H2 center: %v", center)
	}
	if d := c1.Sub(c2).Norm(); d < 0.73 || d > 0.75 {
		Te.Errorf("H-H distance after insertion: %v", d)
	}
}
