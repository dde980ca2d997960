/*
 * errors.go, part of flexrec.
 *
 * Copyright 2026 The flexrec authors.
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
 */

package flex

import (
	"errors"
	"fmt"
)

// Kinds of failure. Every error returned by this package unwraps to one of
// them, so they can be checked with errors.Is.
var (
	ErrInputNotFound            = errors.New("input not found or unreadable")
	ErrParse                    = errors.New("malformed structure file")
	ErrResidueAtomCountMismatch = errors.New("residue atom count mismatch")
	ErrMalformedTemplateLine    = errors.New("malformed template line")
)

// Error is the error type of the flex package. It implements chem.Error.
// All errors in this package are critical: the run can't go on after them.
type Error struct {
	kind     error
	message  string
	filename string //the file that has problems, or empty string if none.
	line     int    //1-based line in filename, 0 if it doesn't apply
	cause    error
	deco     []string
}

func (err Error) Error() string {
	s := err.kind.Error()
	switch {
	case err.filename != "" && err.line > 0:
		s = fmt.Sprintf("%s:%d: %s", err.filename, err.line, s)
	case err.filename != "":
		s = fmt.Sprintf("%s: %s", err.filename, s)
	}
	if err.message != "" {
		s += ": " + err.message
	}
	if err.cause != nil {
		s += ": " + err.cause.Error()
	}
	return s
}

// Unwrap gives errors.Is and errors.As access to both the kind
// of the error and the underlying cause, if any.
func (err Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

// Decorate returns the decoration slice of the error with dec added to it.
// The error itself is not modified. An empty dec just returns the current value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file associated with the error, if any.
func (err Error) FileName() string { return err.filename }

// Line returns the line of FileName where the problem was found, or 0.
func (err Error) Line() int { return err.line }

// Critical always returns true.
func (err Error) Critical() bool { return true }
