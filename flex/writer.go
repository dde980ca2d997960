/*
 * writer.go, part of flexrec.
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
	"bytes"
	"fmt"
	"io"
)

// ModelWriter wraps the body of each pose in MODEL/ENDMDL records and
// writes it to its destination in one Write call.
type ModelWriter struct {
	w      io.Writer
	buf    bytes.Buffer
	models int
}

// NewModelWriter returns a ModelWriter writing to w.
func NewModelWriter(w io.Writer) *ModelWriter {
	return &ModelWriter{w: w}
}

// WriteModel writes the model with the given index and body. Models are
// expected to be written in index order.
func (M *ModelWriter) WriteModel(index int, body []byte) error {
	M.buf.Reset()
	fmt.Fprintf(&M.buf, "MODEL %d\n", index)
	M.buf.Write(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		M.buf.WriteByte('\n') //a template without a final newline
	}
	M.buf.WriteString("ENDMDL\n")
	if _, err := M.w.Write(M.buf.Bytes()); err != nil {
		return fmt.Errorf("WriteModel: model %d: %w", index, err)
	}
	M.models++
	return nil
}

// Models returns the number of models written so far.
func (M *ModelWriter) Models() int {
	return M.models
}
