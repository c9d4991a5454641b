/*
 * poscario.go, part of govasp.
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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var sf = fmt.Sprintf
var fi = strings.Fields

//poscarScanner hands out lines one at a time while keeping track of the
//1-based line number for error reporting.
type poscarScanner struct {
	scn  *bufio.Scanner
	name string
	line int
}

func (s *poscarScanner) next() (string, error) {
	if !s.scn.Scan() {
		if err := s.scn.Err(); err != nil {
			return "", fmt.Errorf("Couldn't read %s: %w", s.name, err)
		}
		return "", ParseError{"unexpected end of file", s.name, s.line, nil}
	}
	s.line++
	return strings.TrimRight(s.scn.Text(), "\r"), nil
}

func (s *poscarScanner) errf(format string, a ...any) error {
	return ParseError{sf(format, a...), s.name, s.line, nil}
}

func allInts(toks []string) bool {
	for _, t := range toks {
		if _, err := strconv.Atoi(t); err != nil {
			return false
		}
	}
	return len(toks) > 0
}

// PoscarRead parses a POSCAR/CONTCAR from r. The name is used only in
// error messages; pass the file name or anything that identifies the
// stream to whoever has to fix the input.
func PoscarRead(r io.Reader, name string) (*Poscar, error) {
	s := &poscarScanner{scn: bufio.NewScanner(r), name: name}
	P := new(Poscar)

	var err error
	P.Comment, err = s.next()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}

	line, err := s.next()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	toks := fi(line)
	if len(toks) != 1 {
		return nil, s.errf("expected a single scale factor, got %d tokens", len(toks))
	}
	P.Lattice.Scale, err = strconv.ParseFloat(toks[0], 64)
	if err != nil {
		return nil, s.errf("bad scale factor %q", toks[0])
	}
	if P.Lattice.Scale <= 0 {
		return nil, UnsupportedError{NegativeScale, name, nil}
	}

	for i := 0; i < 3; i++ {
		line, err = s.next()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		toks = fi(line)
		if len(toks) < 3 {
			return nil, s.errf("lattice vector needs 3 components, got %d", len(toks))
		}
		for j := 0; j < 3; j++ {
			P.Lattice.Vecs[i][j], err = strconv.ParseFloat(toks[j], 64)
			if err != nil {
				return nil, s.errf("bad lattice component %q", toks[j])
			}
		}
	}

	//Symbols line or counts line: the lookahead rule. If every token on
	//the line parses as an integer, the symbols line is absent and this
	//already is the counts line.
	line, err = s.next()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	toks = fi(line)
	if len(toks) == 0 {
		return nil, s.errf("blank line where species symbols or counts were expected")
	}
	if !allInts(toks) {
		P.Symbols = make([]string, 0, len(toks))
		for _, t := range toks {
			P.Symbols = append(P.Symbols, NormalizeSymbol(t))
		}
		line, err = s.next()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		toks = fi(line)
		if !allInts(toks) {
			return nil, s.errf("expected the counts line after the symbols line")
		}
	}
	P.Counts = make([]int, 0, len(toks))
	for _, t := range toks {
		c, _ := strconv.Atoi(t) //allInts already vetted the tokens
		if c < 0 {
			return nil, s.errf("negative atom count %d", c)
		}
		P.Counts = append(P.Counts, c)
	}
	if P.HasSymbols() && len(P.Symbols) != len(P.Counts) {
		if len(P.Symbols) < len(P.Counts) {
			return nil, s.errf("%d species symbols for %d counts", len(P.Symbols), len(P.Counts))
		}
		P.Symbols = P.Symbols[:len(P.Counts)]
	}

	line, err = s.next()
	if err != nil {
		return nil, errDecorate(err, "PoscarRead")
	}
	trimmed := strings.TrimSpace(line)
	if trimmed != "" && (trimmed[0] == 'S' || trimmed[0] == 's') {
		P.Selective = true
		line, err = s.next()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		trimmed = strings.TrimSpace(line)
	}
	if trimmed == "" {
		return nil, s.errf("blank line where the coordinate mode was expected")
	}
	if trimmed[0] == 'D' || trimmed[0] == 'd' {
		P.Mode = Direct
	} else {
		P.Mode = Cartesian
	}

	nat := P.Len()
	P.Coords = make([]Point, 0, nat)
	if P.Selective {
		P.Flags = make([]Flags, 0, nat)
	}
	for i := 0; i < nat; i++ {
		line, err = s.next()
		if err != nil {
			return nil, errDecorate(err, "PoscarRead")
		}
		toks = fi(line)
		if len(toks) < 3 {
			return nil, s.errf("atom line needs 3 coordinates, got %d tokens", len(toks))
		}
		var pos Point
		for j := 0; j < 3; j++ {
			pos[j], err = strconv.ParseFloat(toks[j], 64)
			if err != nil {
				return nil, s.errf("bad coordinate %q", toks[j])
			}
		}
		P.Coords = append(P.Coords, pos)
		if P.Selective {
			fl := Movable //short atom lines default to fully movable
			if len(toks) >= 6 {
				for j := 0; j < 3; j++ {
					fl[j] = strings.HasPrefix(strings.ToUpper(toks[3+j]), "T")
				}
			}
			P.Flags = append(P.Flags, fl)
		}
	}
	//Anything after the coordinates (velocities, predictor-corrector
	//blocks in CONTCARs) is ignored.
	return P, nil
}

// PoscarFileRead opens and parses the POSCAR file name.
func PoscarFileRead(name string) (*Poscar, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	P, err := PoscarRead(f, name)
	if err != nil {
		return nil, errDecorate(err, "PoscarFileRead")
	}
	return P, nil
}

// PoscarWrite serializes P to w. If mode is given, positions are converted
// to that coordinate mode on output; P itself is never modified. The
// symbols line is omitted when the structure carries no symbols.
func PoscarWrite(w io.Writer, P *Poscar, mode ...CoordMode) error {
	outMode := P.Mode
	if len(mode) > 0 {
		outMode = mode[0]
	}
	coords := P.Coords
	if outMode != P.Mode {
		var err error
		coords, err = convertAll(&P.Lattice, P.Coords, P.Mode, outMode)
		if err != nil {
			return errDecorate(err, "PoscarWrite")
		}
	}

	var err error
	pr := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}
	pr("%s\n", P.Comment)
	pr("%.16f\n", P.Lattice.Scale)
	for i := 0; i < 3; i++ {
		v := P.Lattice.Vecs[i]
		pr("  % .16f  % .16f  % .16f\n", v[0], v[1], v[2])
	}
	if P.HasSymbols() {
		pr("%s\n", strings.Join(P.Symbols, " "))
	}
	counts := make([]string, len(P.Counts))
	for i, c := range P.Counts {
		counts[i] = strconv.Itoa(c)
	}
	pr("%s\n", strings.Join(counts, " "))
	if P.Selective {
		pr("Selective dynamics\n")
	}
	pr("%s\n", outMode)
	for i, c := range coords {
		if P.Selective {
			fl := P.Flags[i]
			pr("% .16f  % .16f  % .16f   %s  %s  %s\n", c[0], c[1], c[2], tf(fl[0]), tf(fl[1]), tf(fl[2]))
		} else {
			pr("% .16f  % .16f  % .16f\n", c[0], c[1], c[2])
		}
	}
	return err
}

// PoscarFileWrite creates (or truncates) the file name and writes P to it,
// with the same optional coordinate-mode override as PoscarWrite.
func PoscarFileWrite(name string, P *Poscar, mode ...CoordMode) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	buf := bufio.NewWriter(out)
	if err := PoscarWrite(buf, P, mode...); err != nil {
		return errDecorate(err, "PoscarFileWrite")
	}
	return buf.Flush()
}

func tf(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

//converts a whole coordinate list between modes. from == to is the
//caller's problem; this always converts.
func convertAll(L *Lattice, coords []Point, from, to CoordMode) ([]Point, error) {
	out := make([]Point, len(coords))
	if from == Direct && to == Cartesian {
		for i, c := range coords {
			out[i] = L.ToCart(c)
		}
		return out, nil
	}
	conv, err := L.converter()
	if err != nil {
		return nil, errDecorate(err, "convertAll")
	}
	for i, c := range coords {
		out[i] = conv(c)
	}
	return out, nil
}
