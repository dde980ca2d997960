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
Package flex restores full receptor models from the output of a flexible
docking run (smina/gnina with --out_flex), which contains only the
flexible side chains, one model per pose.

For each pose, the rigid receptor PDB is read line by line. ATOM lines
that belong to a flexible residue and are not backbone atoms or hydrogens
get the name and coordinates of the next atom of that residue in the
pose. Every other line is copied unchanged. Each pose becomes one
MODEL/ENDMDL block of the output.

	idx, err := flex.LoadPoses("flex.pdb")
	if err != nil {
		log.Fatal(err)
	}
	stats, err := flex.NewRestorer(idx, flex.FileTemplate("rigid.pdb")).Restore(out)

The atoms of a flexible residue must appear in the same order in the
rigid receptor and in the poses. If the number of substitutable atoms
of a residue differs between both, the run fails with an error wrapping
ErrResidueAtomCountMismatch.
*/
package flex
