/*
 * residue.go, part of flexrec.
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

	chem "github.com/rmera/flexrec"
	v3 "github.com/rmera/flexrec/v3"
)

// ResidueKey identifies a residue by chain and residue number.
// Insertion codes and alternate locations are ignored.
type ResidueKey struct {
	Chain string //one character
	MolID int    //residue number
}

func (k ResidueKey) String() string {
	return fmt.Sprintf("%s:%d", k.Chain, k.MolID)
}

// PoseAtom is a substitutable atom of a flexible residue, as read from the poses.
type PoseAtom struct {
	Name  string
	Key   ResidueKey
	Seq   int //position among the substitutable atoms of its residue, in loading order
	Index int //row of the atom in the coordinates of every pose
}

// Index contains the flexible residues found in the poses and, for each of
// them, the ordered substitutable atoms. It is built once and is not modified
// afterwards, so it can be shared by concurrent readers.
type Index struct {
	coords   []*v3.Matrix
	residues map[ResidueKey][]PoseAtom
	keys     []ResidueKey //in order of first appearance
}

// NewIndex builds an Index from the flexible residues in mol, one pose per
// frame of mol. Every residue with at least one atom is flexible, but only
// its substitutable atoms (see Substitutable) are kept, in the order they
// appear in mol.
func NewIndex(mol *chem.Molecule) (*Index, error) {
	if mol == nil || mol.Len() == 0 || mol.LenFrames() == 0 {
		return nil, Error{kind: ErrParse, message: "no atoms or no poses in the flexible residues"}
	}
	if err := mol.Corrupted(); err != nil {
		return nil, Error{kind: ErrParse, cause: err}
	}
	I := &Index{
		coords:   mol.Coords,
		residues: make(map[ResidueKey][]PoseAtom),
		keys:     make([]ResidueKey, 0, 10),
	}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		key := ResidueKey{Chain: at.Chain, MolID: at.MolID}
		list, ok := I.residues[key]
		if !ok {
			I.keys = append(I.keys, key)
			list = make([]PoseAtom, 0, 10)
		}
		if Substitutable(at.Name) {
			list = append(list, PoseAtom{Name: at.Name, Key: key, Seq: len(list), Index: i})
		}
		I.residues[key] = list
	}
	return I, nil
}

// LoadPoses reads the flexible residues and their poses from the PDB file name
// (plain or compressed, see chem.OpenFile) and returns their Index. A file that
// can't be opened gives an error wrapping ErrInputNotFound, one that can't be
// parsed, an error wrapping ErrParse.
func LoadPoses(name string) (*Index, error) {
	f, err := chem.OpenFile(name)
	if err != nil {
		return nil, Error{kind: ErrInputNotFound, filename: name, cause: err, deco: []string{"LoadPoses"}}
	}
	defer f.Close()
	mol, err := chem.PDBRead(f)
	if err != nil {
		return nil, Error{kind: ErrParse, filename: name, cause: err, deco: []string{"LoadPoses"}}
	}
	I, err := NewIndex(mol)
	if err != nil {
		e := err.(Error)
		e.filename = name
		return nil, e
	}
	return I, nil
}

// Poses returns the number of poses.
func (I *Index) Poses() int {
	return len(I.coords)
}

// Flexible returns true if the residue key has atoms in the poses.
func (I *Index) Flexible(key ResidueKey) bool {
	_, ok := I.residues[key]
	return ok
}

// Keys returns the flexible residues, in the order they first appear in the poses.
func (I *Index) Keys() []ResidueKey {
	ret := make([]ResidueKey, len(I.keys))
	copy(ret, I.keys)
	return ret
}

// Atoms returns the substitutable atoms of the residue key, in order.
// The slice must not be modified.
func (I *Index) Atoms(key ResidueKey) []PoseAtom {
	return I.residues[key]
}

// Coord returns the coordinates of at in the given pose. Panics if
// pose is out of range.
func (I *Index) Coord(pose int, at PoseAtom) [3]float64 {
	if pose < 0 || pose >= len(I.coords) {
		panic(fmt.Sprintf("Pose requested (%d) out of range (%d poses)", pose, len(I.coords)))
	}
	return I.coords[pose].Vec(at.Index)
}
