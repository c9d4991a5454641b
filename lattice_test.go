/*
 * lattice_test.go, part of govasp.
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
	"fmt"
	"math"
	"testing"
)

//yes, a triclinic cell, to make sure nothing relies on orthogonality.
var triclinic = Lattice{
	Vecs: [3]Point{
		{8.0, 0.0, 0.0},
		{2.0, 7.5, 0.0},
		{1.0, 1.5, 9.0},
	},
	Scale: 1.2,
}

func TestFracCartRoundTrip(Te *testing.T) {
	fracs := []Point{
		{0, 0, 0},
		{0.5, 0.5, 0.5},
		{0.1, 0.9, 0.3},
		{-0.2, 1.7, 0.0},
	}
	for _, f := range fracs {
		c := triclinic.ToCart(f)
		back, err := triclinic.ToFrac(c)
		if err != nil {
			Te.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			if math.Abs(back[i]-f[i]) > 1e-10 {
				Te.Errorf("round trip of %v gave %v", f, back)
			}
		}
	}
	fmt.Println("frac->cart->frac round trips survived")
}

func TestWrapFrac(Te *testing.T) {
	cases := []struct{ in, want Point }{
		{Point{0.25, 0.5, 0.75}, Point{0.25, 0.5, 0.75}},
		{Point{1.25, -0.25, 2.5}, Point{0.25, 0.75, 0.5}},
		{Point{-1.0, 1.0, 0.0}, Point{0.0, 0.0, 0.0}},
		{Point{-1e-17, 0.999999, -3.75}, Point{0.0, 0.999999, 0.25}},
	}
	for _, c := range cases {
		got := WrapFrac(c.in)
		for i := 0; i < 3; i++ {
			if math.Abs(got[i]-c.want[i]) > 1e-10 {
				Te.Errorf("WrapFrac(%v) = %v, want %v", c.in, got, c.want)
			}
			if got[i] < 0 || got[i] >= 1 {
				Te.Errorf("WrapFrac(%v)[%d] = %v is outside [0,1)", c.in, i, got[i])
			}
		}
		//idempotence
		again := WrapFrac(got)
		if again != got {
			Te.Errorf("WrapFrac is not idempotent on %v: %v then %v", c.in, got, again)
		}
	}
}

func TestSingularLattice(Te *testing.T) {
	flat := Lattice{
		Vecs: [3]Point{
			{1, 0, 0},
			{2, 0, 0}, //colinear with the first
			{0, 0, 1},
		},
		Scale: 1.0,
	}
	_, err := flat.ToFrac(Point{1, 1, 1})
	if err == nil {
		Te.Fatal("a colinear cell should not be invertible")
	}
	var serr SingularLatticeError
	if !errors.As(err, &serr) {
		Te.Errorf("wrong error type for a singular cell: %v", err)
	}
}

func TestVolume(Te *testing.T) {
	cubic := Lattice{
		Vecs:  [3]Point{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}},
		Scale: 2.0,
	}
	//the scale multiplies every vector, so the volume goes with its cube
	if v := cubic.Volume(); math.Abs(v-8000) > 1e-6 {
		Te.Errorf("volume of the scaled cubic cell: got %v, want 8000", v)
	}
}
