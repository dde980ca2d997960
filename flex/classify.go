/*
 * classify.go, part of flexrec.
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
	"fmt"
	"strconv"
	"strings"
)

// Fixed columns (0-based, half-open) of the legacy PDB format used to
// classify and rebuild ATOM records.
const (
	nameStart   = 12
	nameEnd     = 16
	chainCol    = 21
	resnumStart = 22
	resnumEnd   = 26
	coordStart  = 30
	coordEnd    = 54
)

// backbone holds the atom names never taken from the poses.
var backbone = map[string]bool{
	"CA": true,
	"N":  true,
	"C":  true,
	"O":  true,
	"H":  true,
	"HN": true,
}

// Substitutable returns true if an atom called name gets its coordinates
// from the poses: backbone atoms and anything whose name starts with H
// (hydrogens) stay as in the rigid receptor.
func Substitutable(name string) bool {
	return !backbone[name] && !strings.HasPrefix(name, "H")
}

// TemplateLine contains the fields of a template line needed to
// decide whether it is substituted.
type TemplateLine struct {
	Atom bool       //is this an ATOM record? Nothing else is ever substituted
	Key  ResidueKey //valid only if Atom is true
	Name string     //atom name, trimmed. Valid only if Atom is true
}

// ParseTemplateLine extracts the residue key and atom name from a template line.
// Lines that don't start with "ATOM" give a zero TemplateLine and no error. ATOM
// lines too short to contain the residue number, or with a residue number that
// is not an integer, give an error wrapping ErrMalformedTemplateLine. Each line
// is parsed on its own, nothing is remembered between calls.
func ParseTemplateLine(line string) (TemplateLine, error) {
	var ret TemplateLine
	body := strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(body, "ATOM") {
		return ret, nil
	}
	if len(body) < resnumEnd {
		return ret, Error{kind: ErrMalformedTemplateLine, message: fmt.Sprintf("ATOM record has %d columns, at least %d needed", len(body), resnumEnd)}
	}
	resnum, err := strconv.Atoi(strings.TrimSpace(body[resnumStart:resnumEnd]))
	if err != nil {
		return ret, Error{kind: ErrMalformedTemplateLine, message: fmt.Sprintf("bad residue number %q", body[resnumStart:resnumEnd]), cause: err}
	}
	ret.Atom = true
	ret.Key = ResidueKey{Chain: body[chainCol : chainCol+1], MolID: resnum}
	ret.Name = strings.TrimSpace(body[nameStart:nameEnd])
	return ret, nil
}

// substituteLine returns the template line with the atom name replaced by name and
// the coordinates replaced by coords. Everything else, including the columns after
// the coordinates, is kept as it was. The returned line always ends in a newline.
func substituteLine(line, name string, coords [3]float64) (string, error) {
	body := strings.TrimRight(line, "\r\n")
	eol := line[len(body):]
	if eol == "" {
		eol = "\n"
	}
	if len(body) < coordStart {
		return "", Error{kind: ErrMalformedTemplateLine, message: fmt.Sprintf("ATOM record has %d columns, at least %d needed to replace coordinates", len(body), coordStart)}
	}
	if len(name) > 4 {
		return "", Error{kind: ErrParse, message: fmt.Sprintf("atom name %q longer than 4 characters", name)}
	}
	var b strings.Builder
	b.Grow(len(body) + len(eol))
	if len(name) == 4 {
		//4-character names take the whole name field.
		b.WriteString(body[:nameStart])
		b.WriteString(name)
		b.WriteString(body[nameEnd:coordStart])
	} else {
		b.WriteString(body[:nameStart+1])
		fmt.Fprintf(&b, "%-4s", name)
		b.WriteString(body[nameEnd+1 : coordStart])
	}
	fmt.Fprintf(&b, "%8.3f%8.3f%8.3f", coords[0], coords[1], coords[2])
	if len(body) > coordEnd {
		b.WriteString(body[coordEnd:])
	}
	b.WriteString(eol)
	return b.String(), nil
}
