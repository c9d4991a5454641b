/*
 * addions.go, part of govasp.
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

	"github.com/spf13/cobra"

	vasp "github.com/aquevedo/govasp"
)

var addIonsCmd = &cobra.Command{
	Use:   "add-ions",
	Short: "Merge ions from a PDB movie frame into a POSCAR",
	RunE: func(cmd *cobra.Command, args []string) error {
		poscar, _ := cmd.Flags().GetString("poscar")
		pdb, _ := cmd.Flags().GetString("pdb")
		out, _ := cmd.Flags().GetString("out")
		model, _ := cmd.Flags().GetInt("model-index")
		opts, err := insertOpts(cmd, "ion-flags")
		if err != nil {
			return err
		}
		mode, err := outMode(cmd)
		if err != nil {
			return err
		}
		if err := vasp.AddIonsFromPDB(poscar, pdb, out, model, opts, mode...); err != nil {
			return err
		}
		fmt.Println("Wrote updated POSCAR with ions:", out)
		return nil
	},
}

func init() {
	addIonsCmd.Flags().String("poscar", "POSCAR", "input POSCAR file")
	addIonsCmd.Flags().String("pdb", "", "PDB movie with the ion positions")
	addIonsCmd.Flags().String("out", "POSCAR_ions", "output POSCAR file")
	addIonsCmd.Flags().Int("model-index", -1, "PDB MODEL to take, negative counts from the end")
	addIonsCmd.Flags().String("ion-flags", "", "selective dynamics triplet for the ions, e.g. TTT")
	addIonsCmd.Flags().String("framework-flags", "", "selective dynamics triplet applied to existing atoms")
	addIonsCmd.Flags().Bool("no-wrap", false, "do not wrap new atoms into the cell")
	addIonsCmd.Flags().String("out-coords", "", "coordinate mode of the output: direct or cartesian")
	_ = addIonsCmd.MarkFlagRequired("pdb")
	rootCmd.AddCommand(addIonsCmd)
}
