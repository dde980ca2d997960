/*
 * engine.go, part of flexrec.
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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Stats summarizes a restoration run.
type Stats struct {
	Poses       int          //models written
	Residues    int          //flexible residues
	Substituted int          //template lines substituted, summed over all poses
	Missing     []ResidueKey //flexible residues without any ATOM record in the template
}

// PoseStats summarizes the rendering of one pose.
type PoseStats struct {
	Substituted int
	Missing     []ResidueKey
}

// Restorer splices the flexible residues of each pose into the rigid template.
type Restorer struct {
	Index    *Index
	Template TemplateSource
	//Workers is the number of poses rendered at the same time. Values
	//below 2 render the poses one after the other. The output is the
	//same in both cases.
	Workers int
}

// NewRestorer returns a sequential Restorer for the given poses and template.
func NewRestorer(idx *Index, tmpl TemplateSource) *Restorer {
	return &Restorer{Index: idx, Template: tmpl, Workers: 1}
}

// RenderPose writes to w every template line for the given pose, substituted
// or verbatim, without the model delimiters. The template is read again from
// the beginning on each call.
// A flexible residue with ATOM records in the template must have exactly as many
// substitutable atoms there as in the poses. Flexible residues with no ATOM records
// at all in the template are not an error: they are reported in the returned PoseStats.
func (R *Restorer) RenderPose(pose int, w io.Writer) (PoseStats, error) {
	var ps PoseStats
	if pose < 0 || pose >= R.Index.Poses() {
		return ps, fmt.Errorf("RenderPose: pose %d out of range (%d poses)", pose, R.Index.Poses())
	}
	src, err := R.Template.Open()
	if err != nil {
		return ps, err
	}
	defer src.Close()
	name := R.Template.Name()
	rd := bufio.NewReader(src)
	cursor := make(map[ResidueKey]int, len(R.Index.keys))
	seen := make(map[ResidueKey]bool, len(R.Index.keys))
	subs := 0
	for lineno := 1; ; lineno++ {
		line, rerr := rd.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return ps, Error{kind: ErrInputNotFound, filename: name, line: lineno, cause: rerr, deco: []string{"RenderPose"}}
		}
		if line == "" {
			break
		}
		tl, err := ParseTemplateLine(line)
		if err != nil {
			return ps, withPlace(err, name, lineno)
		}
		if tl.Atom && R.Index.Flexible(tl.Key) {
			seen[tl.Key] = true
			if Substitutable(tl.Name) {
				atoms := R.Index.Atoms(tl.Key)
				c := cursor[tl.Key]
				if c >= len(atoms) {
					return ps, Error{kind: ErrResidueAtomCountMismatch, filename: name, line: lineno,
						message: fmt.Sprintf("residue %s has more substitutable atoms in the template than the %d in the poses (extra atom %s)", tl.Key, len(atoms), tl.Name)}
				}
				line, err = substituteLine(line, atoms[c].Name, R.Index.Coord(pose, atoms[c]))
				if err != nil {
					return ps, withPlace(err, name, lineno)
				}
				cursor[tl.Key] = c + 1
				subs++
			}
		}
		if _, err := io.WriteString(w, line); err != nil {
			return ps, fmt.Errorf("RenderPose: %w", err)
		}
		if rerr == io.EOF {
			break
		}
	}
	ps.Substituted = subs
	for _, k := range R.Index.keys {
		if !seen[k] {
			ps.Missing = append(ps.Missing, k)
			continue
		}
		if n := len(R.Index.Atoms(k)); cursor[k] != n {
			return ps, Error{kind: ErrResidueAtomCountMismatch, filename: name,
				message: fmt.Sprintf("residue %s has %d substitutable atoms in the template but %d in the poses", k, cursor[k], n)}
		}
	}
	return ps, nil
}

// Restore writes one model per pose to out, in pose order. On error,
// whatever was written to out before the failure stays there.
func (R *Restorer) Restore(out io.Writer) (Stats, error) {
	stats := Stats{Residues: len(R.Index.keys)}
	mw := NewModelWriter(out)
	var err error
	if R.Workers > 1 && R.Index.Poses() > 1 {
		err = R.restoreConc(mw, R.Workers, &stats)
	} else {
		err = R.restoreSeq(mw, &stats)
	}
	stats.Poses = mw.Models()
	return stats, err
}

// addPose accumulates the results of pose p in stats. The missing residues
// are the same for every pose, so they are taken from the first one.
func (S *Stats) addPose(p int, ps PoseStats) {
	S.Substituted += ps.Substituted
	if p == 0 {
		S.Missing = ps.Missing
	}
}

func (R *Restorer) restoreSeq(mw *ModelWriter, stats *Stats) error {
	var body bytes.Buffer
	for p := 0; p < R.Index.Poses(); p++ {
		body.Reset()
		ps, err := R.RenderPose(p, &body)
		if err != nil {
			return errDecorate(err, fmt.Sprintf("Restore: pose %d", p))
		}
		if err := mw.WriteModel(p, body.Bytes()); err != nil {
			return err
		}
		stats.addPose(p, ps)
	}
	return nil
}

type rendered struct {
	body []byte
	ps   PoseStats
	err  error
}

// restoreConc renders the poses with up to workers goroutines, each with its
// own template stream, and writes them in pose order as they become available.
func (R *Restorer) restoreConc(mw *ModelWriter, workers int, stats *Stats) error {
	n := R.Index.Poses()
	results := make([]chan rendered, n)
	for i := range results {
		results[i] = make(chan rendered, 1) //each one receives exactly one value
	}
	jobs := make(chan int)
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				var body bytes.Buffer
				ps, err := R.RenderPose(p, &body)
				results[p] <- rendered{body.Bytes(), ps, err}
			}
		}()
	}
	go func() {
		defer close(jobs)
		for p := 0; p < n; p++ {
			select {
			case jobs <- p:
			case <-done:
				return
			}
		}
	}()
	var err error
	for p := 0; p < n; p++ {
		r := <-results[p]
		if r.err != nil {
			err = errDecorate(r.err, fmt.Sprintf("Restore: pose %d", p))
			break
		}
		if err = mw.WriteModel(p, r.body); err != nil {
			break
		}
		stats.addPose(p, r.ps)
	}
	close(done)
	wg.Wait()
	return err
}

// withPlace adds the file name and line number to a package Error.
func withPlace(err error, name string, line int) error {
	if e, ok := err.(Error); ok {
		e.filename = name
		e.line = line
		return e
	}
	return err
}

// errDecorate adds caller to the decoration of err, if err is a
// package Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
