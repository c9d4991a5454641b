/*
 * atomicdata.go, part of govasp.
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

import (
	"fmt"
	"strings"
)

// NormalizeSymbol cleans up an element symbol to the capitalization VASP
// expects: letters only, first letter upper case, the rest lower case.
// Input with no letters at all becomes "X".
func NormalizeSymbol(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	t := b.String()
	if t == "" {
		return "X"
	}
	if len(t) == 1 {
		return strings.ToUpper(t)
	}
	return strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
}

//This tries to guess a chemical element symbol from a PDB atom name.
//It deals with the species common in RASPA GCMC output (alkali and
//alkaline-earth cations, halides) plus the usual bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || (len(name) > 0 && name[0] == 'H') {
		symbol = "H" //I thiiink only Hs can have 4-char names.
	} else if strings.HasPrefix(name, "C") {
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		case "CA":
			symbol = "Ca"
		case "CS":
			symbol = "Cs"
		default:
			symbol = "C"
		}
	} else if strings.HasPrefix(name, "N") {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if strings.HasPrefix(name, "O") {
		symbol = "O"
	} else if strings.HasPrefix(name, "P") {
		symbol = "P"
	} else if strings.HasPrefix(name, "S") {
		switch name {
		case "SE":
			symbol = "Se"
		case "SI":
			symbol = "Si"
		case "SR":
			symbol = "Sr"
		default:
			symbol = "S"
		}
	} else if strings.HasPrefix(name, "K") {
		symbol = "K"
	} else if strings.HasPrefix(name, "LI") {
		symbol = "Li"
	} else if strings.HasPrefix(name, "RB") {
		symbol = "Rb"
	} else if strings.HasPrefix(name, "MG") {
		symbol = "Mg"
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "Zn"
	} else if strings.HasPrefix(name, "F") {
		symbol = "F"
	} else if strings.HasPrefix(name, "BR") {
		symbol = "Br"
	} else if strings.HasPrefix(name, "I") {
		symbol = "I"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %q", name)
	}
	return symbol, nil
}
