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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vasp "github.com/aquevedo/govasp"
	"github.com/aquevedo/govasp/trappe"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Add ions from a PDB frame, then place a rigid molecule, in one run",
	Long: "workflow chains add-ions and a molecule placement without writing\n" +
		"intermediate files (use --out-ions to keep the intermediate structure).\n" +
		"Reference atom indexes given with --idx1/--idx2 refer to the structure\n" +
		"after the ions were merged.",
	RunE: func(cmd *cobra.Command, args []string) error {
		poscarPath, _ := cmd.Flags().GetString("poscar")
		pdb, _ := cmd.Flags().GetString("pdb")
		out, _ := cmd.Flags().GetString("out")
		outIons, _ := cmd.Flags().GetString("out-ions")
		model, _ := cmd.Flags().GetInt("model-index")
		molName, _ := cmd.Flags().GetString("molecule")

		mode, err := outMode(cmd)
		if err != nil {
			return err
		}

		P, err := vasp.PoscarFileRead(poscarPath)
		if err != nil {
			return err
		}
		ions, err := vasp.PDBFrameFileRead(pdb, model)
		if err != nil {
			return err
		}
		ionOpts, err := insertOpts(cmd, "ion-flags")
		if err != nil {
			return err
		}
		P, err = vasp.Insert(P, ions, vasp.Cartesian, ionOpts)
		if err != nil {
			return err
		}
		if outIons != "" {
			if err := vasp.PoscarFileWrite(outIons, P, mode...); err != nil {
				return err
			}
			fmt.Println("Wrote intermediate POSCAR with ions:", outIons)
		}

		var tmpl *vasp.RigidTemplate
		switch molName {
		case "nh3":
			def, err := defPath(cmd, "nh3")
			if err != nil {
				return err
			}
			tmpl, err = trappe.Ammonia(def)
			if err != nil {
				return err
			}
		case "h2":
			def, err := defPath(cmd, "h2")
			if err != nil {
				return err
			}
			tmpl, err = trappe.Hydrogen(def)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown molecule %q: want nh3 or h2", molName)
		}

		pl, err := placementFrom(cmd, P)
		if err != nil {
			return err
		}
		sites, err := vasp.Place(tmpl, pl)
		if err != nil {
			return err
		}
		// The framework flags were applied in the ion step; reapplying them
		// here would also freeze the ions.
		molOpts := &vasp.InsertOpts{Wrap: ionOpts.Wrap}
		if molOpts.Flags, err = parseTripletFlag(cmd, "flags"); err != nil {
			return err
		}
		P, err = vasp.Insert(P, sites, vasp.Cartesian, molOpts)
		if err != nil {
			return err
		}
		if err := vasp.PoscarFileWrite(out, P, mode...); err != nil {
			return err
		}
		fmt.Println("Wrote final POSCAR:", out)
		return nil
	},
}

func parseTripletFlag(cmd *cobra.Command, name string) (*vasp.Flags, error) {
	s, _ := cmd.Flags().GetString(name)
	return parseTriplet(s)
}

func init() {
	workflowCmd.Flags().String("poscar", "POSCAR", "input POSCAR file")
	workflowCmd.Flags().String("pdb", "", "PDB movie with the ion positions")
	workflowCmd.Flags().String("out", "POSCAR_final", "final output POSCAR file")
	workflowCmd.Flags().String("out-ions", "", "also write the intermediate POSCAR after the ion step")
	workflowCmd.Flags().Int("model-index", -1, "PDB MODEL to take, negative counts from the end")
	workflowCmd.Flags().String("ion-flags", "", "selective dynamics triplet for the ions")
	workflowCmd.Flags().String("molecule", "nh3", "molecule to place: nh3 or h2")
	workflowCmd.Flags().String("def", "", "TraPPE .def file with the molecule geometry")
	placementFlags(workflowCmd)
	_ = workflowCmd.MarkFlagRequired("pdb")
	rootCmd.AddCommand(workflowCmd)
}
