/*
 * poscar.go, part of govasp.
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

/**Note: the accessor functions here panic instead of returning errors when
 * given an out-of-range index. They are "fundamental" functions: if
 * something goes wrong in them the calling program is way-most likely
 * wrong and should crash. All structural mutation goes through Insert
 * (insert.go), never through callers poking at the slices, so the
 * per-species grouping invariant of the POSCAR format holds at all
 * times.**/

// CoordMode tells whether atom positions are cell fractions (Direct) or
// cartesian Å.
type CoordMode int

const (
	Direct CoordMode = iota
	Cartesian
)

func (m CoordMode) String() string {
	if m == Direct {
		return "Direct"
	}
	return "Cartesian"
}

// Flags is the selective-dynamics T/F triplet of one atom: whether the
// atom may move along each lattice direction during relaxation.
type Flags [3]bool

var (
	// Movable marks an atom free to relax in every direction.
	Movable = Flags{true, true, true}
	// Fixed marks an atom frozen in place.
	Fixed = Flags{false, false, false}
)

// Site is one atom considered for (or read from) a structure: an element
// symbol plus a position. The meaning of the position, fractional or
// cartesian, is given by context.
type Site struct {
	Symbol string
	Pos    Point
}

// SpeciesCount is one (element, number-of-atoms) entry of a structure, in
// file order. Symbol is empty when the POSCAR carries no symbols line.
type SpeciesCount struct {
	Symbol string
	Count  int
}

// Poscar is the in-memory form of a VASP POSCAR/CONTCAR file. Atoms are
// grouped by species: all atoms of species i are contiguous in Coords and
// their number is Counts[i]. Symbols may be empty (old-style POSCAR with
// no symbols line); once absent it stays absent, also on write. Flags is
// non-nil, and parallel to Coords, exactly when Selective is true.
type Poscar struct {
	Comment   string
	Lattice   Lattice
	Symbols   []string
	Counts    []int
	Mode      CoordMode
	Selective bool
	Coords    []Point
	Flags     []Flags
}

// Len returns the total number of atoms, i.e. the sum of the per-species
// counts.
func (P *Poscar) Len() int {
	n := 0
	for _, c := range P.Counts {
		n += c
	}
	return n
}

// HasSymbols reports whether the structure carries element symbols.
func (P *Poscar) HasSymbols() bool {
	return len(P.Symbols) > 0
}

// Species returns the ordered species/count pairs of the structure.
func (P *Poscar) Species() []SpeciesCount {
	s := make([]SpeciesCount, len(P.Counts))
	for i, c := range P.Counts {
		s[i].Count = c
		if P.HasSymbols() {
			s[i].Symbol = P.Symbols[i]
		}
	}
	return s
}

// speciesIndex returns the index of the species group atom i belongs to.
// Panics if out of range.
func (P *Poscar) speciesIndex(i int) int {
	if i < 0 {
		panic("Poscar: requested atom out of bounds")
	}
	acc := 0
	for k, c := range P.Counts {
		acc += c
		if i < acc {
			return k
		}
	}
	panic("Poscar: requested atom out of bounds")
}

// Symbol returns the element symbol of the ith atom, expanding the counts,
// or the empty string when the structure has no symbols line. Panics if
// out of range.
func (P *Poscar) Symbol(i int) string {
	k := P.speciesIndex(i)
	if !P.HasSymbols() {
		return ""
	}
	return P.Symbols[k]
}

// Atom returns the (symbol, position) view of the ith atom. The position
// is in the structure's coordinate mode. Panics if out of range.
func (P *Poscar) Atom(i int) Site {
	return Site{Symbol: P.Symbol(i), Pos: P.Coords[i]}
}

// Flag returns the selective-dynamics triplet of the ith atom. Structures
// without selective dynamics report every atom as Movable. Panics if out
// of range.
func (P *Poscar) Flag(i int) Flags {
	if i < 0 || i >= len(P.Coords) {
		panic("Poscar: requested atom out of bounds")
	}
	if !P.Selective {
		return Movable
	}
	return P.Flags[i]
}

// CartAtom returns the cartesian position of the ith atom, converting from
// fractional coordinates when the structure is in Direct mode. Panics if
// out of range.
func (P *Poscar) CartAtom(i int) Point {
	if i < 0 || i >= len(P.Coords) {
		panic("Poscar: requested atom out of bounds")
	}
	if P.Mode == Cartesian {
		return P.Coords[i]
	}
	return P.Lattice.ToCart(P.Coords[i])
}

// Copy returns a deep copy of the structure. The copy and the receiver
// never observe each other's later mutations.
func (P *Poscar) Copy() *Poscar {
	out := new(Poscar)
	out.Comment = P.Comment
	out.Lattice = P.Lattice
	out.Mode = P.Mode
	out.Selective = P.Selective
	if P.Symbols != nil {
		out.Symbols = append([]string{}, P.Symbols...)
	}
	out.Counts = append([]int{}, P.Counts...)
	out.Coords = append([]Point{}, P.Coords...)
	if P.Flags != nil {
		out.Flags = append([]Flags{}, P.Flags...)
	}
	return out
}
