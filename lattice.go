/*
 * lattice.go, part of govasp.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything with an absolute value smaller than this is
//considered zero.

// Point is a position in 3D space. Whether its components are cartesian Å
// or cell fractions depends on the coordinate mode in use.
type Point [3]float64

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub returns the component-wise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Scale returns p with every component multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{p[0] * f, p[1] * f, p[2] * f}
}

// Norm returns the euclidean norm of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
}

// Lattice holds the three POSCAR cell vectors, as rows, plus the overall
// scale factor. The scale must be positive: the negative-scale convention,
// where its absolute value is the target cell volume, is not supported and
// is rejected by the POSCAR reader.
type Lattice struct {
	Vecs  [3]Point
	Scale float64
}

// Cart returns the scaled cell matrix, with the cell vectors as rows.
func (L *Lattice) Cart() *mat.Dense {
	M := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M.Set(i, j, L.Vecs[i][j]*L.Scale)
		}
	}
	return M
}

// Volume returns the signed volume of the scaled cell.
func (L *Lattice) Volume() float64 {
	return mat.Det(L.Cart())
}

// ToCart converts a fractional position to cartesian Å: cart = frac * M,
// with M the scaled cell matrix. It cannot fail for finite input.
func (L *Lattice) ToCart(f Point) Point {
	return matVec(L.Cart(), f)
}

// ToFrac converts a cartesian position to fractional coordinates by
// solving cart = frac * M for frac. Returns a SingularLatticeError for a
// degenerate cell.
func (L *Lattice) ToFrac(c Point) (Point, error) {
	inv, err := L.inverse()
	if err != nil {
		return Point{}, errDecorate(err, "ToFrac")
	}
	return matVec(inv, c), nil
}

// converter returns a function converting cartesian positions to
// fractional ones with the cell inverse computed only once. Used when many
// positions are converted against the same lattice.
func (L *Lattice) converter() (func(Point) Point, error) {
	inv, err := L.inverse()
	if err != nil {
		return nil, errDecorate(err, "converter")
	}
	return func(c Point) Point { return matVec(inv, c) }, nil
}

func (L *Lattice) inverse() (*mat.Dense, error) {
	M := L.Cart()
	if math.Abs(mat.Det(M)) < appzero {
		return nil, SingularLatticeError{}
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(M); err != nil {
		return nil, SingularLatticeError{}
	}
	return inv, nil
}

//row vector times matrix, the convention for both frac->cart and its
//inverse (POSCAR cell vectors are rows).
func matVec(M *mat.Dense, v Point) Point {
	var r Point
	for j := 0; j < 3; j++ {
		r[j] = v[0]*M.At(0, j) + v[1]*M.At(1, j) + v[2]*M.At(2, j)
	}
	return r
}

// WrapFrac maps each fractional component into [0,1) with a floor-based
// modulo, so negative coordinates wrap to the positive side instead of
// being truncated. It is idempotent.
func WrapFrac(f Point) Point {
	var w Point
	for i, v := range f {
		w[i] = v - math.Floor(v)
		if w[i] >= 1 { //v - floor(v) rounds up to 1.0 for tiny negative v
			w[i] = 0
		}
	}
	return w
}
