/*
 * doc.go, part of govasp.
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

/*Package vasp reads and writes VASP POSCAR/CONTCAR structure files and
merges into them atoms taken from classical-simulation output, producing
new POSCAR files with correct atom counts, coordinate systems and
selective-dynamics flags.


	**govasp capabilities**

    Reads/writes POSCAR files, with or without a species-symbols line,
	with or without selective dynamics, in Direct or Cartesian coordinates.

    Extracts single frames from PDB movie files (RASPA GCMC/MD output),
	including gzip- and zstd-compressed movies.

    Inserts groups of atoms (ions, rigid molecules) into a structure
	while keeping the per-species grouping of the POSCAR format intact.

    Places rigid TraPPE molecule templates (see the trappe subpackage)
	between two reference points, with along-line and per-axis offsets.

The target user is a computational chemist preparing DFT input decks from
RASPA output, either through the library or the vaspinit command.

All positions are in Å when cartesian, and in cell fractions when the
coordinate mode is Direct. Lattice math goes through gonum.
*/
package vasp
