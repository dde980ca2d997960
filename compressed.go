/*
 * compressed.go, part of flexrec.
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

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression formats recognized from file extensions.
const (
	Plain = ""
	Gzip  = "gz"
	Zstd  = "zst"
)

// CompressionFormat returns the compression format implied by the extension
// of fname: Gzip for .gz, Zstd for .zst and .zstd, Plain for anything else.
func CompressionFormat(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return Plain
}

// multiCloser reads or writes through the outermost stream
// and closes all the layers, innermost last.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// zstdCloser is needed because the Close method of *zstd.Decoder
// doesn't return an error, so it can't be an io.Closer.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// OpenFile opens fname for reading, decompressing it on the fly if
// the extension says it is compressed (see CompressionFormat).
func OpenFile(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, CError{err.Error(), fname, []string{"os.Open", "OpenFile"}, true}
	}
	switch CompressionFormat(fname) {
	case Gzip:
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{"Can't read gzip header: " + err.Error(), fname, []string{"gzip.NewReader", "OpenFile"}, true}
		}
		return &multiCloser{Reader: r, closers: []io.Closer{r, f}}, nil
	case Zstd:
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{"Can't start zstd decoder: " + err.Error(), fname, []string{"zstd.NewReader", "OpenFile"}, true}
		}
		return &multiCloser{Reader: r, closers: []io.Closer{zstdCloser{r}, f}}, nil
	}
	return f, nil
}

// CreateFile creates (or truncates) fname for writing, compressing the
// data if the extension calls for it (see CompressionFormat). The returned
// object must be closed for the compressed stream to be complete.
func CreateFile(fname string) (io.WriteCloser, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, CError{err.Error(), fname, []string{"os.Create", "CreateFile"}, true}
	}
	switch CompressionFormat(fname) {
	case Gzip:
		w, err := gzip.NewWriterLevel(f, gzip.DefaultCompression)
		if err != nil {
			f.Close()
			return nil, CError{err.Error(), fname, []string{"gzip.NewWriterLevel", "CreateFile"}, true}
		}
		return &multiCloser{Writer: w, closers: []io.Closer{w, f}}, nil
	case Zstd:
		w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, CError{err.Error(), fname, []string{"zstd.NewWriter", "CreateFile"}, true}
		}
		return &multiCloser{Writer: w, closers: []io.Closer{w, f}}, nil
	}
	return f, nil
}
