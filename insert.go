/*
 * insert.go, part of govasp.
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

import "slices"

// InsertOpts controls how a group of new atoms is merged into a structure.
// A nil Flags or FrameworkFlags pointer means "leave the corresponding
// atoms as they are"; supplying either one turns selective dynamics on for
// the whole output structure.
type InsertOpts struct {
	//Wrap maps inserted fractional positions into [0,1). For a structure
	//in Cartesian mode the new positions take an internal
	//cartesian->fractional->cartesian round trip; pre-existing atoms are
	//never converted, so they cannot drift.
	Wrap bool
	//Flags are the selective-dynamics flags given to the new atoms.
	Flags *Flags
	//FrameworkFlags, when given, overwrite the flags of every
	//pre-existing atom. Used to freeze a framework (FFF) while the
	//inserted ions or molecules stay movable.
	FrameworkFlags *Flags
}

// Insert merges sites, whose positions are in the coordinate mode given by
// mode, into P, and returns the merged structure as a new independent
// value; P is never modified. A nil opts means wrapping enabled and no
// flag changes.
//
// Positions are converted into the structure's own coordinate mode first
// (an empty structure adopts the incoming mode instead). Atoms of a
// species already present are inserted right after the last existing atom
// of that species, and new species are appended at the end in first-seen
// order, so the per-species grouping of the POSCAR format survives any
// sequence of insertions. Structures without a symbols line cannot match
// species: each incoming species just becomes an extra anonymous counts
// entry at the end.
//
// Coinciding positions are allowed; it is the caller's job to place atoms
// sensibly. The merge is all-or-nothing: on error P's copy is discarded
// and nothing partial is returned.
func Insert(P *Poscar, sites []Site, mode CoordMode, opts *InsertOpts) (*Poscar, error) {
	if opts == nil {
		opts = &InsertOpts{Wrap: true}
	}
	out := P.Copy()
	if len(sites) == 0 {
		return out, nil
	}
	if out.Len() == 0 && len(out.Coords) == 0 {
		out.Mode = mode
	}

	symbols := make([]string, len(sites))
	positions := make([]Point, len(sites))
	for i, st := range sites {
		symbols[i] = NormalizeSymbol(st.Symbol)
		positions[i] = st.Pos
	}
	positions, err := preparePositions(&out.Lattice, positions, mode, out.Mode, opts.Wrap)
	if err != nil {
		return nil, errDecorate(err, "Insert")
	}

	//Retroactive selective dynamics: enabling it for the new atoms (or
	//for the framework) turns it on for everyone, with unflagged
	//pre-existing atoms defaulting to fully movable.
	enable := out.Selective || opts.Flags != nil || opts.FrameworkFlags != nil
	if enable {
		if !out.Selective {
			out.Flags = make([]Flags, len(out.Coords))
			for i := range out.Flags {
				out.Flags[i] = Movable
			}
			out.Selective = true
		}
		if opts.FrameworkFlags != nil {
			for i := range out.Flags {
				out.Flags[i] = *opts.FrameworkFlags
			}
		}
	}
	newFlags := Movable
	if opts.Flags != nil {
		newFlags = *opts.Flags
	}

	//A structure read without a symbols line stays symbol-less forever; a
	//genuinely empty structure gets symbols from its first insertion.
	withSymbols := out.HasSymbols() || len(out.Counts) == 0

	//group the incoming atoms by species, in first-seen order
	order := []string{}
	groups := map[string][]Point{}
	for i, sym := range symbols {
		if _, ok := groups[sym]; !ok {
			order = append(order, sym)
		}
		groups[sym] = append(groups[sym], positions[i])
	}

	for _, sym := range order {
		batch := groups[sym]
		k := -1
		if out.HasSymbols() {
			k = slices.Index(out.Symbols, sym)
		}
		if k < 0 {
			//new species (or no symbols line): append at the end
			if withSymbols {
				out.Symbols = append(out.Symbols, sym)
			}
			out.Counts = append(out.Counts, len(batch))
			out.Coords = append(out.Coords, batch...)
			if out.Selective {
				for range batch {
					out.Flags = append(out.Flags, newFlags)
				}
			}
			continue
		}
		//existing species: splice in right after its last atom
		at := 0
		for i := 0; i <= k; i++ {
			at += out.Counts[i]
		}
		out.Counts[k] += len(batch)
		out.Coords = slices.Insert(out.Coords, at, batch...)
		if out.Selective {
			fl := make([]Flags, len(batch))
			for i := range fl {
				fl[i] = newFlags
			}
			out.Flags = slices.Insert(out.Flags, at, fl...)
		}
	}
	return out, nil
}

//converts the incoming positions to the structure's coordinate mode and
//applies cell wrapping. Wrapping happens in fractional space only; for a
//Cartesian target the positions round-trip through fractional space.
func preparePositions(L *Lattice, positions []Point, from, to CoordMode, wrap bool) ([]Point, error) {
	out := positions
	if from != to {
		var err error
		out, err = convertAll(L, positions, from, to)
		if err != nil {
			return nil, errDecorate(err, "preparePositions")
		}
	} else {
		out = append([]Point{}, positions...)
	}
	if !wrap {
		return out, nil
	}
	if to == Direct {
		for i := range out {
			out[i] = WrapFrac(out[i])
		}
		return out, nil
	}
	conv, err := L.converter()
	if err != nil {
		return nil, errDecorate(err, "preparePositions")
	}
	for i := range out {
		out[i] = L.ToCart(WrapFrac(conv(out[i])))
	}
	return out, nil
}
