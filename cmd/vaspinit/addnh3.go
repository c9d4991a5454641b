/*
 * addnh3.go, part of govasp.
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

	"github.com/aquevedo/govasp/trappe"
)

var addNH3Cmd = &cobra.Command{
	Use:   "add-nh3",
	Short: "Place a rigid TraPPE ammonia between two reference points",
	RunE: func(cmd *cobra.Command, args []string) error {
		poscar, _ := cmd.Flags().GetString("poscar")
		out, _ := cmd.Flags().GetString("out")
		def, err := defPath(cmd, "nh3")
		if err != nil {
			return err
		}
		pl, err := placement(cmd, poscar)
		if err != nil {
			return err
		}
		opts, err := insertOpts(cmd, "flags")
		if err != nil {
			return err
		}
		mode, err := outMode(cmd)
		if err != nil {
			return err
		}
		if err := trappe.AddAmmoniaBetween(poscar, def, pl, out, opts, mode...); err != nil {
			return err
		}
		fmt.Println("Wrote updated POSCAR with NH3:", out)
		return nil
	},
}

func init() {
	addNH3Cmd.Flags().String("poscar", "POSCAR", "input POSCAR file")
	addNH3Cmd.Flags().String("out", "POSCAR_nh3", "output POSCAR file")
	addNH3Cmd.Flags().String("def", "", "TraPPE .def file with the ammonia geometry")
	placementFlags(addNH3Cmd)
	rootCmd.AddCommand(addNH3Cmd)
}
