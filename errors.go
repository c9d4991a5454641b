/*
 * errors.go, part of govasp.
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

import "fmt"

//Errors

// Error is the interface for errors that all packages in this library
// implement. The Decorate method adds information to the error (normally,
// the name of the function passing it up) without changing its type or
// wrapping it into something else. It returns the current decoration slice.
// If passed an empty string it just returns the current value.
type Error interface {
	error
	Decorate(string) []string
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Errors from outside the library are
// wrapped instead.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}

// ParseError reports a malformed POSCAR or PDB input file. It carries the
// file name (empty when reading from a stream) and the 1-based line where
// reading failed.
type ParseError struct {
	message  string
	filename string
	line     int
	deco     []string
}

func (err ParseError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("govasp: file %s, line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("govasp: file %s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err ParseError) Decorate(deco string) []string {
	//err.deco is a slice, so a pointer itself: the append is visible
	//through every copy of the error.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the input file the failing data came from.
func (err ParseError) FileName() string { return err.filename }

// Line returns the 1-based offending line, or 0 if not applicable.
func (err ParseError) Line() int { return err.line }

// SingularLatticeError signals a degenerate cell matrix, which cannot be
// inverted to obtain fractional coordinates.
type SingularLatticeError struct {
	deco []string
}

func (err SingularLatticeError) Error() string {
	return "govasp: singular lattice matrix (det ~ 0)"
}

func (err SingularLatticeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// DegenerateReferencePointsError signals that the two reference points of a
// placement coincide while an along-line offset was requested, so the
// direction of the offset is undefined.
type DegenerateReferencePointsError struct {
	deco []string
}

func (err DegenerateReferencePointsError) Error() string {
	return "govasp: reference points coincide, the along-line offset direction is undefined"
}

func (err DegenerateReferencePointsError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// UnsupportedError reports a POSCAR feature this library does not handle,
// such as the negative-scale (explicit cell volume) convention.
type UnsupportedError struct {
	message  string
	filename string
	deco     []string
}

func (err UnsupportedError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("govasp: file %s: unsupported: %s", err.filename, err.message)
	}
	return fmt.Sprintf("govasp: unsupported: %s", err.message)
}

func (err UnsupportedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ModelIndexError reports a PDB MODEL selection out of the range present in
// the file.
type ModelIndexError struct {
	index    int
	models   int
	filename string
	deco     []string
}

func (err ModelIndexError) Error() string {
	return fmt.Sprintf("govasp: file %s: MODEL index %d out of range (%d models)", err.filename, err.index, err.models)
}

func (err ModelIndexError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Messages used by more than one error site.
const (
	NegativeScale = "scale factor must be positive; the negative-scale volume convention is not handled"
)
