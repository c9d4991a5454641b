/*
 * helpers.go, part of govasp.
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

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	vasp "github.com/aquevedo/govasp"
)

// parseTriplet turns a 3-character T/F string such as "TTF" into selective
// dynamics flags. An empty string means "no override" and yields nil.
func parseTriplet(s string) (*vasp.Flags, error) {
	if s == "" {
		return nil, nil
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return nil, fmt.Errorf("flag triplet %q: want exactly 3 characters of T or F", s)
	}
	var f vasp.Flags
	for i := 0; i < 3; i++ {
		switch s[i] {
		case 'T':
			f[i] = true
		case 'F':
			f[i] = false
		default:
			return nil, fmt.Errorf("flag triplet %q: character %c is not T or F", s, s[i])
		}
	}
	return &f, nil
}

// outMode resolves the optional output coordinate-mode override from the
// --out-coords flag, falling back to the config file. Empty means "keep the
// structure's own mode".
func outMode(cmd *cobra.Command) ([]vasp.CoordMode, error) {
	s, _ := cmd.Flags().GetString("out-coords")
	if !cmd.Flags().Changed("out-coords") {
		s = viper.GetString("out-coords")
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "direct", "d", "fractional":
		return []vasp.CoordMode{vasp.Direct}, nil
	case "cartesian", "c", "cart":
		return []vasp.CoordMode{vasp.Cartesian}, nil
	}
	return nil, fmt.Errorf("unknown coordinate mode %q: want direct or cartesian", s)
}

// wrapOpt resolves the wrap setting: --no-wrap on the command line wins,
// otherwise the config value (default true) applies.
func wrapOpt(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("no-wrap") {
		nowrap, _ := cmd.Flags().GetBool("no-wrap")
		return !nowrap
	}
	return viper.GetBool("wrap")
}

// refPoints resolves the two reference points for molecule placement. If
// --idx1/--idx2 are given they select atoms (1-based) from P and the points
// are their Cartesian positions; otherwise the explicit --x1..--z2
// coordinates are used.
func refPoints(cmd *cobra.Command, P *vasp.Poscar) (p1, p2 vasp.Point, err error) {
	if cmd.Flags().Changed("idx1") || cmd.Flags().Changed("idx2") {
		if !cmd.Flags().Changed("idx1") || !cmd.Flags().Changed("idx2") {
			return p1, p2, fmt.Errorf("--idx1 and --idx2 must be given together")
		}
		i1, _ := cmd.Flags().GetInt("idx1")
		i2, _ := cmd.Flags().GetInt("idx2")
		if i1 < 1 || i1 > P.Len() || i2 < 1 || i2 > P.Len() {
			return p1, p2, fmt.Errorf("atom indexes %d, %d out of range 1..%d", i1, i2, P.Len())
		}
		return P.CartAtom(i1 - 1), P.CartAtom(i2 - 1), nil
	}
	coords := make([]float64, 6)
	for i, name := range []string{"x1", "y1", "z1", "x2", "y2", "z2"} {
		coords[i], _ = cmd.Flags().GetFloat64(name)
	}
	p1 = vasp.Point{coords[0], coords[1], coords[2]}
	p2 = vasp.Point{coords[3], coords[4], coords[5]}
	return p1, p2, nil
}

// placementFlags registers the flags shared by the molecule subcommands.
func placementFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("x1", 0, "x of the first reference point (Cartesian)")
	cmd.Flags().Float64("y1", 0, "y of the first reference point")
	cmd.Flags().Float64("z1", 0, "z of the first reference point")
	cmd.Flags().Float64("x2", 0, "x of the second reference point")
	cmd.Flags().Float64("y2", 0, "y of the second reference point")
	cmd.Flags().Float64("z2", 0, "z of the second reference point")
	cmd.Flags().Int("idx1", 0, "1-based POSCAR atom index for the first reference point")
	cmd.Flags().Int("idx2", 0, "1-based POSCAR atom index for the second reference point")
	cmd.Flags().String("place", "midpoint", "anchor position: midpoint, first or second")
	cmd.Flags().Float64("offset", 0, "shift along the line between the reference points (Angstrom)")
	cmd.Flags().String("dir", "+", "offset direction: + (toward second) or - (toward first)")
	cmd.Flags().Float64("offset-x", 0, "extra Cartesian x shift of the anchor")
	cmd.Flags().Float64("offset-y", 0, "extra Cartesian y shift of the anchor")
	cmd.Flags().Float64("offset-z", 0, "extra Cartesian z shift of the anchor")
	cmd.Flags().String("flags", "", "selective dynamics triplet for the molecule, e.g. TTT")
	cmd.Flags().String("framework-flags", "", "selective dynamics triplet applied to existing atoms")
	cmd.Flags().Bool("no-wrap", false, "do not wrap new atoms into the cell")
	cmd.Flags().String("out-coords", "", "coordinate mode of the output: direct or cartesian")
}

// placement builds the Placement from the shared flags, reading the POSCAR
// only when atom indexes are used as reference points.
func placement(cmd *cobra.Command, poscarPath string) (*vasp.Placement, error) {
	var P *vasp.Poscar
	if cmd.Flags().Changed("idx1") || cmd.Flags().Changed("idx2") {
		var err error
		P, err = vasp.PoscarFileRead(poscarPath)
		if err != nil {
			return nil, err
		}
	}
	return placementFrom(cmd, P)
}

// placementFrom builds the Placement resolving --idx1/--idx2 against an
// already loaded structure.
func placementFrom(cmd *cobra.Command, P *vasp.Poscar) (*vasp.Placement, error) {
	p1, p2, err := refPoints(cmd, P)
	if err != nil {
		return nil, err
	}
	placeStr, _ := cmd.Flags().GetString("place")
	at, err := vasp.ParsePlaceMode(placeStr)
	if err != nil {
		return nil, err
	}
	dirStr, _ := cmd.Flags().GetString("dir")
	dir, err := vasp.ParseOffsetDir(dirStr)
	if err != nil {
		return nil, err
	}
	off, _ := cmd.Flags().GetFloat64("offset")
	ox, _ := cmd.Flags().GetFloat64("offset-x")
	oy, _ := cmd.Flags().GetFloat64("offset-y")
	oz, _ := cmd.Flags().GetFloat64("offset-z")
	return &vasp.Placement{
		P1:      p1,
		P2:      p2,
		At:      at,
		Offset:  off,
		Dir:     dir,
		AxisOff: vasp.Point{ox, oy, oz},
	}, nil
}

// insertOpts builds InsertOpts from the shared flags.
func insertOpts(cmd *cobra.Command, flagName string) (*vasp.InsertOpts, error) {
	mol, _ := cmd.Flags().GetString(flagName)
	fw, _ := cmd.Flags().GetString("framework-flags")
	mf, err := parseTriplet(mol)
	if err != nil {
		return nil, err
	}
	ff, err := parseTriplet(fw)
	if err != nil {
		return nil, err
	}
	return &vasp.InsertOpts{Wrap: wrapOpt(cmd), Flags: mf, FrameworkFlags: ff}, nil
}

// defPath resolves a .def template path from a flag, falling back to the
// config file key (def.nh3, def.h2).
func defPath(cmd *cobra.Command, key string) (string, error) {
	s, _ := cmd.Flags().GetString("def")
	if s == "" {
		s = viper.GetString("def." + key)
	}
	if s == "" {
		return "", fmt.Errorf("no .def template: give --def or set def.%s in the config", key)
	}
	return s, nil
}
