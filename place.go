/*
 * place.go, part of govasp.
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
	"strings"
)

// PlaceMode selects the base reference point when placing a rigid
// template: the midpoint of the two reference points, or either one of
// them.
type PlaceMode int

const (
	AtMidpoint PlaceMode = iota
	AtFirst
	AtSecond
)

// ParsePlaceMode maps the command-line spellings midpoint/first/second to
// a PlaceMode.
func ParsePlaceMode(s string) (PlaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "midpoint":
		return AtMidpoint, nil
	case "first":
		return AtFirst, nil
	case "second":
		return AtSecond, nil
	}
	return AtMidpoint, fmt.Errorf("place must be one of: midpoint, first, second (got %q)", s)
}

// OffsetDir gives the sign of the along-line offset: toward the second
// reference point or back toward the first.
type OffsetDir int

const (
	TowardSecond OffsetDir = iota
	TowardFirst
)

// ParseOffsetDir maps the command-line spellings +/plus and -/minus to an
// OffsetDir.
func ParseOffsetDir(s string) (OffsetDir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "plus":
		return TowardSecond, nil
	case "-", "minus":
		return TowardFirst, nil
	}
	return TowardSecond, fmt.Errorf("offset direction must be one of: +, -, plus, minus (got %q)", s)
}

// RigidTemplate is a named local-frame description of a small rigid
// molecule: an ordered list of atoms whose positions are cartesian Å
// offsets from the anchor, which sits at the local origin. Templates are
// placed by translation only; they keep their orientation.
type RigidTemplate struct {
	Name  string
	Atoms []Site
}

// Placement describes where a rigid template's anchor goes: a base point
// derived from two cartesian reference points, an optional signed offset
// along the P1->P2 line, and independent per-axis offsets applied last.
type Placement struct {
	P1, P2 Point
	At     PlaceMode
	//Offset is the distance in Å to move from the base point along the
	//P1->P2 line, in the direction given by Dir.
	Offset float64
	Dir    OffsetDir
	//AxisOff is added as-is after everything else.
	AxisOff Point
}

// Anchor resolves the placement to the absolute cartesian anchor point.
// Returns a DegenerateReferencePointsError when a nonzero along-line
// offset is requested but P1 == P2, in which case the line direction is
// undefined; it never silently falls back to a zero direction.
func (pl *Placement) Anchor() (Point, error) {
	var base Point
	switch pl.At {
	case AtFirst:
		base = pl.P1
	case AtSecond:
		base = pl.P2
	default:
		base = pl.P1.Add(pl.P2).Scale(0.5)
	}
	if pl.Offset != 0 {
		v := pl.P2.Sub(pl.P1)
		n := v.Norm()
		if n < appzero {
			return Point{}, DegenerateReferencePointsError{}
		}
		sign := 1.0
		if pl.Dir == TowardFirst {
			sign = -1.0
		}
		base = base.Add(v.Scale(sign * pl.Offset / n))
	}
	return base.Add(pl.AxisOff), nil
}

// Place puts the template at the placement's anchor and returns the
// absolute cartesian sites, one per template atom, in template order (the
// anchor atom typically first).
func Place(t *RigidTemplate, pl *Placement) ([]Site, error) {
	anchor, err := pl.Anchor()
	if err != nil {
		return nil, errDecorate(err, "Place")
	}
	sites := make([]Site, len(t.Atoms))
	for i, a := range t.Atoms {
		sites[i] = Site{Symbol: a.Symbol, Pos: anchor.Add(a.Pos)}
	}
	return sites, nil
}
