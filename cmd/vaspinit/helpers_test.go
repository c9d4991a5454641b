/*
 * helpers_test.go, part of govasp.
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
	"testing"

	vasp "github.com/aquevedo/govasp"
)

func TestParseTriplet(Te *testing.T) {
	f, err := parseTriplet("TTF")
	if err != nil {
		Te.Fatal(err)
	}
	if *f != (vasp.Flags{true, true, false}) {
		Te.Errorf("TTF parsed as %v", *f)
	}
	//lower case and surrounding spaces are fine
	f, err = parseTriplet(" fft ")
	if err != nil {
		Te.Fatal(err)
	}
	if *f != (vasp.Flags{false, false, true}) {
		Te.Errorf("fft parsed as %v", *f)
	}
	//empty means no override
	f, err = parseTriplet("")
	if err != nil || f != nil {
		Te.Errorf("empty triplet: %v, %v", f, err)
	}
	for _, bad := range []string{"TT","TTTT", "TXF"} {
		if _, err := parseTriplet(bad); err == nil {
			Te.Errorf("%q was accepted", bad)
		}
	}
}
