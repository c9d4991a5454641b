/*
 * workflow.go, part of govasp.
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

//The high-level, path-in/path-out entry points. They chain
//read -> extract/place -> insert -> write, which is all the vaspinit
//command (and most scripts) need. Failure at any stage aborts before the
//output file is created, so no half-written POSCAR is left behind.

// AddIonsFromPDB reads the POSCAR at poscarPath, merges in the ions of the
// given MODEL of the PDB movie at pdbPath (negative model counts from the
// end), and writes the result to outPath. outMode, when given, forces the
// output coordinate mode.
func AddIonsFromPDB(poscarPath, pdbPath, outPath string, model int, opts *InsertOpts, outMode ...CoordMode) error {
	P, err := PoscarFileRead(poscarPath)
	if err != nil {
		return err
	}
	ions, err := PDBFrameFileRead(pdbPath, model)
	if err != nil {
		return err
	}
	merged, err := Insert(P, ions, Cartesian, opts)
	if err != nil {
		return err
	}
	return PoscarFileWrite(outPath, merged, outMode...)
}

// AddTemplateBetween reads the POSCAR at poscarPath, places the rigid
// template per pl, inserts the resulting atoms, and writes the result to
// outPath. outMode, when given, forces the output coordinate mode.
func AddTemplateBetween(poscarPath string, t *RigidTemplate, pl *Placement, outPath string, opts *InsertOpts, outMode ...CoordMode) error {
	P, err := PoscarFileRead(poscarPath)
	if err != nil {
		return err
	}
	sites, err := Place(t, pl)
	if err != nil {
		return err
	}
	merged, err := Insert(P, sites, Cartesian, opts)
	if err != nil {
		return err
	}
	return PoscarFileWrite(outPath, merged, outMode...)
}
