/*
 * doc.go, part of flexrec.
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


/*
Package chem is the base package of flexrec. It provides atom and molecule
structures and the facilities to read PDB files with one or more models,
plain or compressed.

The flexible-residue restoration itself lives in the flex package, and the
command line tool in cmd/flexrec.

	**Capabilities**

	Reads PDB files, with any number of models, into a Molecule with one
	coordinate matrix (v3.Matrix) per model.

	Opens and creates files compressed with gzip or zstd, chosen from the
	file extension, so every reader and writer in flexrec can deal with them.

	Errors carry the name of the file involved and a "decoration" with the
	functions the error went through (see the Error interface).
*/
package chem
