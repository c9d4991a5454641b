/*
 * def_test.go, part of govasp.
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
	"fmt"
	"math"
	"strings"
	"testing"

	vasp "github.com/aquevedo/govasp"
)

func TestFileReadDef(Te *testing.T) {
	atoms, err := FileReadDef("../test/NH3.def")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("read", len(atoms), "sites from the NH3 def file")
	if len(atoms) != 4 {
		Te.Fatalf("got %d sites, want 4", len(atoms))
	}
	if atoms[0].Name != "N_1" || atoms[0].Symbol() != "N" {
		Te.Errorf("first site: %+v", atoms[0])
	}
	if atoms[1].Symbol() != "H" || atoms[1].X != 0.94 {
		Te.Errorf("second site: %+v", atoms[1])
	}
	if atoms[0].Dummy() {
		Te.Error("the nitrogen was taken for a dummy site")
	}
}

func TestAmmonia(Te *testing.T) {
	t, err := Ammonia("../test/NH3.def")
	if err != nil {
		Te.Fatal(err)
	}
	if len(t.Atoms) != 4 {
		Te.Fatalf("ammonia template has %d atoms, want 4", len(t.Atoms))
	}
	//anchored on the N: the nitrogen sits at the template origin
	if t.Atoms[0].Symbol != "N" || t.Atoms[0].Pos != (vasp.Point{0, 0, 0}) {
		Te.Errorf("anchor atom: %+v", t.Atoms[0])
	}
	for i := 1; i < 4; i++ {
		if t.Atoms[i].Symbol != "H" {
			Te.Errorf("atom %d: %+v", i, t.Atoms[i])
		}
		d := t.Atoms[i].Pos.Norm()
		if math.Abs(d-0.94) > 0.01 {
			Te.Errorf("N-H distance of atom %d: %v", i, d)
		}
	}
}

func TestHydrogen(Te *testing.T) {
	t, err := Hydrogen("../test/H2.def")
	if err != nil {
		Te.Fatal(err)
	}
	//the dummy M site is dropped, the two H stay
	if len(t.Atoms) != 2 {
		Te.Fatalf("hydrogen template has %d atoms, want 2", len(t.Atoms))
	}
	center := t.Atoms[0].Pos.Add(t.Atoms[1].Pos).Scale(0.5)
	if center.Norm() > 1e-10 {
		Te.Errorf("the template is not centered: %v", center)
	}
	if d := t.Atoms[0].Pos.Sub(t.Atoms[1].Pos).Norm(); math.Abs(d-0.74) > 1e-10 {
		Te.Errorf("H-H distance: %v", d)
	}
}

func TestDefErrors(Te *testing.T) {
	//no atomic-positions section at all
	_, err := ReadDef(strings.NewReader("# just\n# comments\n"), "empty")
	if err == nil {
		Te.Error("a def file without positions was accepted")
	} else {
		fmt.Println("rejected with:", err)
	}
	//a mangled atom line
	bad := "# atomic positions\n1 N_1 0.0 zero 0.0\n"
	if _, err := ReadDef(strings.NewReader(bad), "bad"); err == nil {
		Te.Error("a mangled atom line was accepted")
	}
	//H2 loader on an ammonia file
	if _, err := Hydrogen("../test/NH3.def"); err == nil {
		Te.Error("Hydrogen accepted a 3-H ammonia file")
	}
	//ammonia loader needs an N site
	if _, err := Ammonia("../test/H2.def"); err == nil {
		Te.Error("Ammonia accepted a nitrogen-free file")
	}
}
