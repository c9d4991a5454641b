/*
 * place_test.go, part of govasp.
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
	"errors"
	"math"
	"testing"
)

func almostEqual(p, q Point) bool {
	return p.Sub(q).Norm() < 1e-10
}

func TestAnchorMidpoint(Te *testing.T) {
	pl := &Placement{P1: Point{2, 0, 0}, P2: Point{8, 0, 0}, At: AtMidpoint}
	a, err := pl.Anchor()
	if err != nil {
		Te.Fatal(err)
	}
	if !almostEqual(a, Point{5, 0, 0}) {
		Te.Errorf("midpoint anchor: %v", a)
	}
}

func TestAnchorOffset(Te *testing.T) {
	pl := &Placement{
		P1: Point{2, 0, 0}, P2: Point{8, 0, 0},
		At: AtMidpoint, Offset: 3.0, Dir: TowardSecond,
	}
	a, err := pl.Anchor()
	if err != nil {
		Te.Fatal(err)
	}
	if !almostEqual(a, Point{8, 0, 0}) {
		Te.Errorf("anchor 3 A toward the second point: %v", a)
	}
	pl.Dir = TowardFirst
	a, err = pl.Anchor()
	if err != nil {
		Te.Fatal(err)
	}
	if !almostEqual(a, Point{2, 0, 0}) {
		Te.Errorf("anchor 3 A toward the first point: %v", a)
	}
}

func TestAnchorAxisOffsets(Te *testing.T) {
	pl := &Placement{
		P1: Point{0, 0, 0}, P2: Point{0, 0, 4},
		At: AtSecond, AxisOff: Point{1, -2, 0.5},
	}
	a, err := pl.Anchor()
	if err != nil {
		Te.Fatal(err)
	}
	if !almostEqual(a, Point{1, -2, 4.5}) {
		Te.Errorf("anchor with axis offsets: %v", a)
	}
}

func TestAnchorDegenerate(Te *testing.T) {
	pl := &Placement{
		P1: Point{1, 1, 1}, P2: Point{1, 1, 1},
		Offset: 2.0,
	}
	_, err := pl.Anchor()
	if err == nil {
		Te.Fatal("an along-line offset with coinciding reference points was accepted")
	}
	var derr DegenerateReferencePointsError
	if !errors.As(err, &derr) {
		Te.Errorf("wrong error type: %v", err)
	}
	//without the offset the same points are fine: the anchor is just the
	//(trivial) midpoint
	pl.Offset = 0
	if a, err := pl.Anchor(); err != nil || !almostEqual(a, Point{1, 1, 1}) {
		Te.Errorf("zero-offset anchor: %v, %v", a, err)
	}
}

func TestPlaceTemplate(Te *testing.T) {
	water := &RigidTemplate{ //not really water, but the shape will do
		Name: "tip",
		Atoms: []Site{
			{Symbol: "O", Pos: Point{0, 0, 0}},
			{Symbol: "H", Pos: Point{0.76, 0.59, 0}},
			{Symbol: "H", Pos: Point{-0.76, 0.59, 0}},
		},
	}
	pl := &Placement{P1: Point{0, 0, 0}, P2: Point{10, 0, 0}, At: AtMidpoint}
	sites, err := Place(water, pl)
	if err != nil {
		Te.Fatal(err)
	}
	if len(sites) != 3 {
		Te.Fatalf("placed %d atoms", len(sites))
	}
	//template order is preserved and every atom gets the same translation
	if sites[0].Symbol != "O" || !almostEqual(sites[0].Pos, Point{5, 0, 0}) {
		Te.Errorf("anchor atom: %+v", sites[0])
	}
	if !almostEqual(sites[1].Pos, Point{5.76, 0.59, 0}) {
		Te.Errorf("first H: %+v", sites[1])
	}
	d12 := sites[1].Pos.Sub(sites[2].Pos).Norm()
	if math.Abs(d12-1.52) > 1e-10 {
		Te.Errorf("internal geometry changed on placement: H-H = %v", d12)
	}
}
