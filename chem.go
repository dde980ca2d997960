/*
 * chem.go, part of flexrec.
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
	"fmt"

	v3 "github.com/rmera/flexrec/v3"
)

// Atom contains the information read for an atom, except for the coordinates,
// which are kept in a matrix per model, and the b-factors, which are in a
// separate slice of float64.
type Atom struct {
	Name      string  //PDB name of the atom
	ID        int     //The serial number of the atom in the file
	MolName   string  //PDB name of the residue or molecule (3-letter code for residues)
	MolName1  byte    //the one letter name for residues and nucleotids
	Char16    byte    //Whatever is in the column 16 (counting from 0) in a PDB file, anything.
	MolID     int     //PDB index of the corresponding residue or molecule
	Chain     string  //One-character chain identifier
	Mass      float64 //hopefully all these float64 are not too much memory
	Occupancy float64
	Symbol    string
	Het       bool //is the atom an hetatm in the pdb file?
	index     int  //order of the atom in the topology, set when the topology is built
}

// Index returns the position of the atom in its topology.
func (N *Atom) Index() int {
	return N.index
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time
// (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the atoms ats.
// The atoms get their indexes set to their position in ats.
func NewTopology(ats []*Atom) *Topology {
	top := new(Topology)
	if ats == nil {
		ats = make([]*Atom, 0)
	}
	top.Atoms = ats
	for i, v := range top.Atoms {
		v.index = i
	}
	return top
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(fmt.Sprintf("Topology: Requested Atom %d out of bounds (%d)", i, T.Len()))
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

/**Type Molecule**/

// Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
// coordinates and b-factors, is stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
}

// NewMolecule makes a molecule with the coordinates coords, topology top and b-factors bfactors,
// and returns it. bfactors can be nil, in which case no b-factors are kept.
// It returns an error if the number of atoms and coordinates in any frame don't match.
func NewMolecule(coords []*v3.Matrix, top *Topology, bfactors [][]float64) (*Molecule, error) {
	if top == nil {
		return nil, CError{"Supplied a nil Topology", "", []string{"NewMolecule"}, true}
	}
	if len(coords) == 0 {
		return nil, CError{"Supplied no coordinates", "", []string{"NewMolecule"}, true}
	}
	mol := &Molecule{Topology: top, Coords: coords, Bfactors: bfactors}
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

// LenFrames returns the number of frames (models) in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

// Corrupted checks whether the molecule is corrupted, i.e. the
// coordinates don't match the number of atoms, or the b-factors
// for a frame don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i, v := range M.Coords {
		if v == nil || v.NVecs() != M.Len() {
			n := 0
			if v != nil {
				n = v.NVecs()
			}
			return CError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), n), "", []string{"Corrupted"}, true}
		}
	}
	for i, v := range M.Bfactors {
		if len(v) != M.Len() {
			return CError{fmt.Sprintf("Inconsistent b-factors/atoms in frame %d: Atoms %d, b-factors: %d", i, M.Len(), len(v)), "", []string{"Corrupted"}, true}
		}
	}
	return nil
}
