/*
 * residue_test.go, part of flexrec.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/flexrec"
	v3 "github.com/rmera/flexrec/v3"
)

var testdir = "../test"

// poseMolecule builds a Molecule with the given atoms (chain, residue
// number and name) and one frame per element of frames.
func poseMolecule(Te *testing.T, atoms []PoseAtom, frames ...[]float64) *chem.Molecule {
	Te.Helper()
	ats := make([]*chem.Atom, 0, len(atoms))
	for i, v := range atoms {
		ats = append(ats, &chem.Atom{Name: v.Name, ID: i + 1, MolName: "UNK", Chain: v.Key.Chain, MolID: v.Key.MolID})
	}
	coords := make([]*v3.Matrix, 0, len(frames))
	for _, v := range frames {
		m, err := v3.NewMatrix(v)
		if err != nil {
			Te.Fatal(err)
		}
		coords = append(coords, m)
	}
	mol, err := chem.NewMolecule(coords, chem.NewTopology(ats), nil)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestLoadPoses(Te *testing.T) {
	idx, err := LoadPoses(filepath.Join(testdir, "flex.pdb"))
	if err != nil {
		Te.Fatal(err)
	}
	if idx.Poses() != 2 {
		Te.Errorf("Expected 2 poses, got %d", idx.Poses())
	}
	key := ResidueKey{"A", 10}
	keys := idx.Keys()
	if len(keys) != 1 || keys[0] != key || !idx.Flexible(key) {
		Te.Fatalf("Wrong flexible residues: %v", keys)
	}
	if idx.Flexible(ResidueKey{"B", 10}) {
		Te.Error("B:10 is not flexible")
	}
	atoms := idx.Atoms(key)
	if len(atoms) != 2 {
		Te.Fatalf("Expected CB and OG, got %+v", atoms)
	}
	want := []PoseAtom{{"CB", key, 0, 1}, {"OG", key, 1, 2}}
	for i, v := range want {
		if atoms[i] != v {
			Te.Errorf("Atom %d is %+v, expected %+v", i, atoms[i], v)
		}
	}
	if c := idx.Coord(1, atoms[0]); c != [3]float64{5.123, 1.987, -0.456} {
		Te.Errorf("Wrong coordinates for CB in pose 1: %v", c)
	}
	if c := idx.Coord(0, atoms[1]); c != [3]float64{6.108, 3.936, 0} {
		Te.Errorf("Wrong coordinates for OG in pose 0: %v", c)
	}
}

// The order of the atoms in each residue is the order in which they were
// read, even when the residues are interleaved.
func TestIndexOrder(Te *testing.T) {
	a, b := ResidueKey{"A", 10}, ResidueKey{"A", 12}
	atoms := []PoseAtom{
		{Name: "CB", Key: b}, {Name: "CB", Key: a}, {Name: "HB2", Key: a}, {Name: "CG", Key: b},
		{Name: "CG", Key: a}, {Name: "CA", Key: b}, {Name: "SD", Key: b}, {Name: "CE", Key: b},
	}
	frame := make([]float64, 3*len(atoms))
	for i := range frame {
		frame[i] = float64(i)
	}
	idx, err := NewIndex(poseMolecule(Te, atoms, frame))
	if err != nil {
		Te.Fatal(err)
	}
	if k := idx.Keys(); len(k) != 2 || k[0] != b || k[1] != a {
		Te.Errorf("Keys should be in order of appearance: %v", k)
	}
	check := func(key ResidueKey, names []string, rows []int) {
		got := idx.Atoms(key)
		if len(got) != len(names) {
			Te.Fatalf("%s: expected %v, got %+v", key, names, got)
		}
		for i := range got {
			if got[i].Name != names[i] || got[i].Seq != i || got[i].Index != rows[i] || got[i].Key != key {
				Te.Errorf("%s: atom %d is %+v", key, i, got[i])
			}
		}
	}
	check(a, []string{"CB", "CG"}, []int{1, 4})
	check(b, []string{"CB", "CG", "SD", "CE"}, []int{0, 3, 6, 7})
	if c := idx.Coord(0, idx.Atoms(b)[2]); c != [3]float64{18, 19, 20} {
		Te.Errorf("Wrong coordinates for SD: %v", c)
	}
}

// A residue with only backbone atoms and hydrogens is flexible, but has no
// atoms to substitute.
func TestIndexBackboneOnly(Te *testing.T) {
	key := ResidueKey{"C", 3}
	idx, err := NewIndex(poseMolecule(Te, []PoseAtom{{Name: "CA", Key: key}, {Name: "HA", Key: key}}, make([]float64, 6)))
	if err != nil {
		Te.Fatal(err)
	}
	if !idx.Flexible(key) || len(idx.Atoms(key)) != 0 {
		Te.Errorf("Wrong index for a backbone-only residue: %v %v", idx.Flexible(key), idx.Atoms(key))
	}
}

func TestLoadPosesErrors(Te *testing.T) {
	_, err := LoadPoses(filepath.Join(testdir, "nothere.pdb"))
	if !errors.Is(err, ErrInputNotFound) {
		Te.Errorf("Expected an input not found error, got %v", err)
	}
	dir := Te.TempDir()
	bad := filepath.Join(dir, "bad.pdb")
	if err := os.WriteFile(bad, []byte("REMARK no atoms here\nEND\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err = LoadPoses(bad)
	if !errors.Is(err, ErrParse) {
		Te.Errorf("Expected a parse error, got %v", err)
	}
	var ferr Error
	if !errors.As(err, &ferr) || ferr.FileName() != bad {
		Te.Errorf("The error should name the file: %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		Te.Errorf("The error message should contain the file name: %s", err)
	}
	if _, err := NewIndex(nil); !errors.Is(err, ErrParse) {
		Te.Errorf("A nil molecule should give a parse error, got %v", err)
	}
}
