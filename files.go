/*
 * files.go, part of flexrec.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/flexrec/v3"
)

//PDB reading family

// A map for assigning mass to elements.
// Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
}

// A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HIE": 'H',
	"HID": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

// symbolFromName tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
// It only deals with some common bio-elements.
func symbolFromName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("Empty PDB name, can't guess symbol")
	}
	symbol := ""
	switch {
	case len(name) == 4 || name[0] == 'H': //only Hs can have 4-char names in amber.
		symbol = "H"
	case name == "CU":
		symbol = "Cu"
	case name == "CO":
		symbol = "Co"
	case name == "CL":
		symbol = "Cl"
	case name[0] == 'C': //Ca is not considered here
		symbol = "C"
	case name == "NA":
		symbol = "Na"
	case name[0] == 'N':
		symbol = "N"
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name == "SE":
		symbol = "Se"
	case name[0] == 'S':
		symbol = "S"
	case strings.HasPrefix(name, "ZN"):
		symbol = "Zn"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

// fixSymbolCase turns PDB element columns like "ZN" into "Zn".
func fixSymbolCase(s string) string {
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// the shortest ATOM/HETATM line that still contains the three coordinates.
const pdbMinCoordLine = 54

// readFullPDBLine parses a valid ATOM or HETATM line of a PDB file, returns an Atom
// object with the info except for the coordinates and b-factors, which are returned
// separately as an array of 3 float64 and a float64, respectively.
// Serial, occupancy and b-factor are optional, since many programs don't write them
// or can't fit them in their columns.
func readFullPDBLine(line string, contlines int) (*Atom, [3]float64, float64, error) {
	var coords [3]float64
	if len(line) < pdbMinCoordLine {
		return nil, coords, 0, fmt.Errorf("line %d too short for a coordinate record (%d characters)", contlines, len(line))
	}
	var err error
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	//Serials can be blank or overflowed (*****) in big or generated files,
	//so they are read if possible, and left as 0 if not.
	atom.ID, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Char16 = line[16]
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.MolName1 = three2OneLetter[atom.MolName]
	atom.Chain = line[21:22]
	atom.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, coords, 0, fmt.Errorf("line %d: bad residue number: %w", contlines, err)
	}
	coords, bfactor, cerr := readOnlyCoordsPDBLine(line, contlines)
	if cerr != nil {
		return nil, coords, 0, cerr
	}
	if len(line) >= 60 {
		//Not an error if we can't read it.
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 78 {
		atom.Symbol = fixSymbolCase(strings.TrimSpace(line[76:78]))
	}
	//Try to guess the symbol from the atom name if it was not in the file.
	//No error checking here, just fills symbol with the empty string the function returns
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	atom.Mass = symbolMass[atom.Symbol] //Not error checking
	return atom, coords, bfactor, nil
}

// readOnlyCoordsPDBLine parses a PDB line if only the coordinates and b-factor are to be read.
func readOnlyCoordsPDBLine(line string, contlines int) ([3]float64, float64, error) {
	var coords [3]float64
	if len(line) < pdbMinCoordLine {
		return coords, 0, fmt.Errorf("line %d too short for a coordinate record (%d characters)", contlines, len(line))
	}
	var err error
	for i := 0; i < 3; i++ {
		field := line[30+8*i : 38+8*i]
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return coords, 0, fmt.Errorf("line %d: couldn't parse coordinate %d from %q: %w", contlines, i, field, err)
		}
	}
	var bfactor float64
	if len(line) >= 66 {
		bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	return coords, bfactor, nil
}

// PDBFileRead reads the atomic entries of the PDB file pdbname, which can be compressed
// (see OpenFile). Returns a Molecule with one coordinate matrix per model. If there is
// only one model, the coordinates slice will be of length 1.
func PDBFileRead(pdbname string) (*Molecule, error) {
	pdbfile, err := OpenFile(pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	defer pdbfile.Close()
	mol, err := pdbBufIORead(bufio.NewReader(pdbfile), pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}

// PDBRead reads the atomic entries of a PDB from an io.Reader. Returns a Molecule with
// one coordinate matrix per model.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	mol, err := pdbBufIORead(bufio.NewReader(pdb), "")
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	return mol, nil
}

// pdbBufIORead does the actual reading. The first model defines the topology,
// the following ones only contribute coordinates and b-factors, and must have
// exactly as many atoms as the first.
func pdbBufIORead(pdb *bufio.Reader, name string) (*Molecule, error) {
	molecule := make([]*Atom, 0)
	coords := make([][]float64, 1)
	coords[0] = make([]float64, 0)
	bfactors := make([][]float64, 1)
	bfactors[0] = make([]float64, 0)
	firstModel := true //are we reading the first model? if not we only save coordinates
	contlines := 0     //count the lines read to better report errors
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, CError{err.Error(), name, []string{"pdbBufIORead"}, true}
		}
		if line == "" && err == io.EOF {
			break
		}
		contlines++
		line = strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			var c [3]float64
			var bfac float64
			var perr error
			if firstModel {
				var atom *Atom
				atom, c, bfac, perr = readFullPDBLine(line, contlines)
				if perr == nil {
					//atom data other than coords is the same in all models so we just read it for the first one.
					molecule = append(molecule, atom)
				}
			} else {
				c, bfac, perr = readOnlyCoordsPDBLine(line, contlines)
			}
			if perr != nil {
				return nil, CError{perr.Error(), name, []string{"pdbBufIORead"}, true}
			}
			last := len(coords) - 1
			coords[last] = append(coords[last], c[0], c[1], c[2])
			bfactors[last] = append(bfactors[last], bfac)
		case strings.HasPrefix(line, "MODEL"):
			//Model numbers are not trusted. A MODEL record after we have
			//read some atoms starts a new frame.
			if len(coords[len(coords)-1]) > 0 {
				firstModel = false
				coords = append(coords, make([]float64, 0, len(molecule)*3))
				bfactors = append(bfactors, make([]float64, 0, len(molecule)))
			}
		}
		if err == io.EOF {
			break
		}
	}
	if len(molecule) == 0 {
		return nil, CError{"no ATOM or HETATM records found, the file doesn't appear to be a valid PDB", name, []string{"pdbBufIORead"}, true}
	}
	//A trailing MODEL record with nothing after it.
	if len(coords[len(coords)-1]) == 0 {
		coords = coords[:len(coords)-1]
		bfactors = bfactors[:len(bfactors)-1]
	}
	frames := len(coords)
	mcoords := make([]*v3.Matrix, frames)
	for i := 0; i < frames; i++ {
		if len(coords[i]) != len(molecule)*3 {
			return nil, CError{fmt.Sprintf("model %d has %d atoms, but the first model has %d", i+1, len(coords[i])/3, len(molecule)), name, []string{"pdbBufIORead"}, true}
		}
		var err error
		mcoords[i], err = v3.NewMatrix(coords[i])
		if err != nil {
			return nil, CError{fmt.Sprintf("couldn't build the coordinates of model %d: %s", i+1, err.Error()), name, []string{"pdbBufIORead"}, true}
		}
	}
	top := NewTopology(molecule)
	mol, err := NewMolecule(mcoords, top, bfactors)
	if err != nil {
		return nil, errDecorate(err, "pdbBufIORead")
	}
	return mol, nil
}

//End PDB reading family
