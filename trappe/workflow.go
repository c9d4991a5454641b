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

package trappe

import (
	vasp "github.com/aquevedo/govasp"
)

// AddAmmoniaBetween reads the POSCAR at poscarPath and the TraPPE ammonia
// template at defPath, places the molecule per pl, and writes the merged
// structure to outPath. See vasp.AddTemplateBetween.
func AddAmmoniaBetween(poscarPath, defPath string, pl *vasp.Placement, outPath string, opts *vasp.InsertOpts, outMode ...vasp.CoordMode) error {
	t, err := Ammonia(defPath)
	if err != nil {
		return err
	}
	return vasp.AddTemplateBetween(poscarPath, t, pl, outPath, opts, outMode...)
}

// AddHydrogenBetween is AddAmmoniaBetween for a TraPPE H2 template.
func AddHydrogenBetween(poscarPath, defPath string, pl *vasp.Placement, outPath string, opts *vasp.InsertOpts, outMode ...vasp.CoordMode) error {
	t, err := Hydrogen(defPath)
	if err != nil {
		return err
	}
	return vasp.AddTemplateBetween(poscarPath, t, pl, outPath, opts, outMode...)
}
