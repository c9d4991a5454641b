/*
 * pdb.go, part of govasp.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Pdb_read family. Only the little needed for ion extraction is here:
//RASPA movie files carry MODEL/ENDMDL frames of ATOM/HETATM records, and
//all this library wants from them is (element, cartesian position) pairs
//for one frame.

//Columns 77-78 hold the element symbol, right-justified. Many RASPA and
//homemade PDBs leave them empty, so we fall back to guessing from the
//atom name in columns 13-16.
func elementFromPDBLine(line string) string {
	if len(line) >= 78 {
		if elem := strings.TrimSpace(line[76:78]); elem != "" {
			return NormalizeSymbol(elem)
		}
	}
	name := ""
	if len(line) >= 16 {
		name = strings.TrimSpace(line[12:16])
	}
	if name == "" {
		return "X"
	}
	if sym, err := symbolFromName(strings.ToUpper(name)); err == nil {
		return sym
	}
	//last resort: first letter of the name
	for _, ch := range name {
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
			return NormalizeSymbol(string(ch))
		}
	}
	return "X"
}

//parses the x/y/z of an ATOM/HETATM record. Fixed columns first, then a
//whitespace-token fallback for sloppily written files. ok is false when
//no coordinates could be recovered (the line is then skipped, matching
//the leniency of the tools that produce these files).
func coordsFromPDBLine(line string) (Point, bool) {
	if len(line) >= 54 {
		x, err1 := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
		z, err3 := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
		if err1 == nil && err2 == nil && err3 == nil {
			return Point{x, y, z}, true
		}
	}
	var got []float64
	for _, t := range fi(line) {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			got = append(got, v)
		}
	}
	if len(got) < 3 {
		return Point{}, false
	}
	return Point{got[0], got[1], got[2]}, true
}

// PDBFrameRead extracts the atoms of one MODEL of a PDB movie read from r
// and returns them as cartesian sites (Å). A negative model counts from
// the end, so -1 is the last frame. Files without MODEL records are
// treated as holding a single frame 0 (also reachable as -1). The name is
// used only in error messages.
func PDBFrameRead(r io.Reader, model int, name string) ([]Site, error) {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	frames := [][]Site{}
	current := []Site{}
	inModel := false
	haveModel := false
	for scn.Scan() {
		line := scn.Text()
		rec := ""
		if len(line) >= 6 {
			rec = strings.ToUpper(strings.TrimSpace(line[:6]))
		} else {
			rec = strings.ToUpper(strings.TrimSpace(line))
		}
		switch rec {
		case "MODEL":
			if inModel {
				frames = append(frames, current)
				current = []Site{}
			}
			inModel = true
			haveModel = true
		case "ENDMDL":
			if inModel {
				frames = append(frames, current)
				current = []Site{}
				inModel = false
			}
		case "ATOM", "HETATM":
			pos, ok := coordsFromPDBLine(line)
			if !ok {
				continue
			}
			current = append(current, Site{Symbol: elementFromPDBLine(line), Pos: pos})
		}
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if !haveModel {
		if model != 0 && model != -1 {
			return nil, ModelIndexError{model, 1, name, nil}
		}
		return current, nil
	}
	if inModel { //movie truncated before its ENDMDL
		frames = append(frames, current)
	}
	idx := model
	if idx < 0 {
		idx = len(frames) + idx
	}
	if idx < 0 || idx >= len(frames) {
		return nil, ModelIndexError{model, len(frames), name, nil}
	}
	return frames[idx], nil
}

// PDBFrameFileRead reads one MODEL from the PDB file name, see
// PDBFrameRead. Files ending in .gz or .zst are decompressed on the fly;
// RASPA movies compress well and tend to be stored that way.
func PDBFrameFileRead(name string, model int) ([]Site, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	sites, err := PDBFrameRead(r, model, name)
	if err != nil {
		return nil, errDecorate(err, "PDBFrameFileRead")
	}
	return sites, nil
}
