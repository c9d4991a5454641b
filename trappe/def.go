/*
 * def.go, part of govasp.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	vasp "github.com/aquevedo/govasp"
)

// DefAtom is one entry of the "# atomic positions" section of a .def
// file: the site index, the force-field site name, and cartesian
// coordinates in Å.
type DefAtom struct {
	Index   int
	Name    string
	X, Y, Z float64
}

// Symbol returns the element symbol encoded in the site name: the part
// before the first underscore, so "N_nh3" gives "N". Names without an
// underscore are taken whole.
func (a *DefAtom) Symbol() string {
	name, _, _ := strings.Cut(a.Name, "_")
	return vasp.NormalizeSymbol(name)
}

// Dummy reports whether the site is a massless dummy site (M_*), a charge
// carrier with no atom behind it.
func (a *DefAtom) Dummy() bool {
	return strings.HasPrefix(a.Name, "M_") || a.Name == "M"
}

// Pos returns the site position as a point.
func (a *DefAtom) Pos() vasp.Point {
	return vasp.Point{a.X, a.Y, a.Z}
}

// ReadDef reads the atomic-positions section of a .def file from r and
// returns its entries in file order, dummies included. The name is used
// only in error messages.
func ReadDef(r io.Reader, name string) ([]*DefAtom, error) {
	buf := bufio.NewReader(r)
	var s string
	var err error
	found := false
	for s, err = buf.ReadString('\n'); err == nil || s != ""; s, err = buf.ReadString('\n') {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "# atomic positions") {
			found = true
			break
		}
		if err != nil {
			break
		}
	}
	if !found {
		return nil, Error{NoPositionsSection, name, nil}
	}
	atoms := []*DefAtom{}
	for s, err = buf.ReadString('\n'); err == nil || s != ""; s, err = buf.ReadString('\n') {
		t := strings.TrimSpace(s)
		if t == "" || strings.HasPrefix(t, "#") {
			break //the section ends at the first blank or comment line
		}
		at, aerr := atomFromDefLine(t)
		if aerr != nil {
			return nil, Error{fmt.Sprintf("%s: %q", aerr.Error(), t), name, nil}
		}
		atoms = append(atoms, at)
		if err != nil {
			break
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Couldn't read def file %s: %w", name, err)
	}
	if len(atoms) == 0 {
		return nil, Error{NoAtoms, name, nil}
	}
	return atoms, nil
}

// FileReadDef opens and reads the .def file name, see ReadDef.
func FileReadDef(name string) ([]*DefAtom, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDef(f, name)
}

//one "idx name x y z" line of the atomic-positions section.
func atomFromDefLine(s string) (*DefAtom, error) {
	f := strings.Fields(s)
	if len(f) < 5 {
		return nil, fmt.Errorf("atom line needs 5 fields (idx name x y z), got %d", len(f))
	}
	at := new(DefAtom)
	var err error
	at.Index, err = strconv.Atoi(f[0])
	if err != nil {
		return nil, fmt.Errorf("bad site index %q", f[0])
	}
	at.Name = f[1]
	at.X, err = strconv.ParseFloat(f[2], 64)
	if err == nil {
		at.Y, err = strconv.ParseFloat(f[3], 64)
	}
	if err == nil {
		at.Z, err = strconv.ParseFloat(f[4], 64)
	}
	if err != nil {
		return nil, fmt.Errorf("bad coordinate in atom line")
	}
	return at, nil
}

// Ammonia reads a TraPPE ammonia .def file and returns a rigid template
// holding the N and H sites, anchored on the nitrogen (the N sits at the
// template origin). Dummy sites and anything that is not N_* or H_* are
// left out.
func Ammonia(name string) (*vasp.RigidTemplate, error) {
	atoms, err := FileReadDef(name)
	if err != nil {
		return nil, err
	}
	var anchor *DefAtom
	kept := []*DefAtom{}
	for _, a := range atoms {
		if strings.HasPrefix(a.Name, "N_") {
			if anchor == nil {
				anchor = a
			}
			kept = append(kept, a)
		} else if strings.HasPrefix(a.Name, "H_") {
			kept = append(kept, a)
		}
	}
	if anchor == nil {
		return nil, Error{NoNitrogen, name, nil}
	}
	t := &vasp.RigidTemplate{Name: "NH3"}
	for _, a := range kept {
		t.Atoms = append(t.Atoms, vasp.Site{Symbol: a.Symbol(), Pos: a.Pos().Sub(anchor.Pos())})
	}
	return t, nil
}

// Hydrogen reads a TraPPE H2 .def file and returns a rigid template with
// the two H sites anchored on their midpoint, so the template origin is
// the molecule's center. Dummy sites (M_*) are ignored; anything other
// than exactly two H_* sites is an error.
func Hydrogen(name string) (*vasp.RigidTemplate, error) {
	atoms, err := FileReadDef(name)
	if err != nil {
		return nil, err
	}
	kept := []*DefAtom{}
	for _, a := range atoms {
		if strings.HasPrefix(a.Name, "H_") {
			kept = append(kept, a)
		}
	}
	if len(kept) != 2 {
		return nil, Error{fmt.Sprintf("expected exactly 2 H sites for H2, found %d", len(kept)), name, nil}
	}
	center := kept[0].Pos().Add(kept[1].Pos()).Scale(0.5)
	t := &vasp.RigidTemplate{Name: "H2"}
	for _, a := range kept {
		t.Atoms = append(t.Atoms, vasp.Site{Symbol: a.Symbol(), Pos: a.Pos().Sub(center)})
	}
	return t, nil
}

//Errors

// Error is the error type for def-file reading. It implements vasp.Error.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("trappe: def file %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the def file associated to the error.
func (err Error) FileName() string { return err.filename }

const (
	NoPositionsSection = `cannot find the "# atomic positions" section`
	NoAtoms            = "no atoms in the atomic-positions section"
	NoNitrogen         = "no N site found"
)
