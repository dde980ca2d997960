/*
 * template.go, part of flexrec.
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
	"io"
	"strings"

	chem "github.com/rmera/flexrec"
)

// TemplateSource provides the rigid receptor. Open is called once per pose,
// and each call must give a fresh stream positioned at the beginning.
type TemplateSource interface {
	Open() (io.ReadCloser, error)
	Name() string
}

// FileTemplate is a TemplateSource reading the PDB file with the given name,
// which can be compressed (see chem.OpenFile).
type FileTemplate string

// Open opens the file. Errors wrap ErrInputNotFound.
func (F FileTemplate) Open() (io.ReadCloser, error) {
	r, err := chem.OpenFile(string(F))
	if err != nil {
		return nil, Error{kind: ErrInputNotFound, filename: string(F), cause: err, deco: []string{"FileTemplate.Open"}}
	}
	return r, nil
}

// Name returns the file name.
func (F FileTemplate) Name() string { return string(F) }

// StringTemplate is an in-memory TemplateSource.
type StringTemplate struct {
	Label string
	Data  string
}

func (S StringTemplate) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(S.Data)), nil
}

func (S StringTemplate) Name() string { return S.Label }

// CheckTemplate opens and closes t, to find out early whether it can be read.
func CheckTemplate(t TemplateSource) error {
	r, err := t.Open()
	if err != nil {
		return err
	}
	return r.Close()
}
