/*
 * interfaces.go, part of flexrec.
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

package chem

import "fmt"

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string to the decoration slice and returns the slice. An empty string just returns the current value.
}

// CError (Chemical error) is the basic error type for the chem package.
// It implements chem.Error
type CError struct {
	msg      string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err CError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("%s: %s", err.filename, err.msg)
	}
	return err.msg
}

// Decorate returns the decoration slice of the error with dec added to it.
// The error itself is not modified, see errDecorate. An empty dec just returns
// the current value.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file to which the failing operation was associated.
func (err CError) FileName() string { return err.filename }

// Critical returns whether the error is critical or it can be ignored
func (err CError) Critical() bool { return err.critical }

// errDecorate returns err with caller added to its decoration, if err
// is a CError. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(CError); ok {
		err2.deco = err2.Decorate(caller)
		return err2
	}
	return err
}
