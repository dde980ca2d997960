/*
 * classify_test.go, part of flexrec.
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
	"fmt"
	"strings"
	"testing"
)

// pdbLine returns an ATOM line in the usual fixed-column format.
func pdbLine(serial int, name, res, chain string, resnum int, x, y, z float64) string {
	n := name
	if len(n) < 4 {
		n = " " + n
	}
	return fmt.Sprintf("%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
		"ATOM", serial, n, res, chain, resnum, x, y, z, 1.0, 20.0, name[:1])
}

func TestParseTemplateLine(Te *testing.T) {
	tl, err := ParseTemplateLine(pdbLine(7, "CB", "SER", "A", 10, 1, 2, 3))
	if err != nil {
		Te.Fatal(err)
	}
	if !tl.Atom || tl.Key != (ResidueKey{"A", 10}) || tl.Name != "CB" {
		Te.Errorf("Wrong fields: %+v", tl)
	}
	tl, err = ParseTemplateLine(pdbLine(7, "HD21", "ASN", "B", 1234, 1, 2, 3))
	if err != nil {
		Te.Fatal(err)
	}
	if tl.Key.String() != "B:1234" || tl.Name != "HD21" {
		Te.Errorf("Wrong fields for a 4-character name: %+v", tl)
	}
	het := strings.Replace(pdbLine(1, "O", "HOH", "W", 1, 0, 0, 0), "ATOM  ", "HETATM", 1)
	for _, v := range []string{het, "REMARK nothing\n", "TER\n", "END", ""} {
		tl, err := ParseTemplateLine(v)
		if err != nil || tl.Atom {
			Te.Errorf("%q should not be an ATOM record: %+v %v", v, tl, err)
		}
	}
}

func TestParseTemplateLineErrors(Te *testing.T) {
	bad := []string{
		"ATOM      1  CB  SER A\n",
		"ATOM      1  CB  SER A  1",
		"ATOM      1  CB  SER A  1x       1.000   2.000   3.000\n",
		"ATOM      1  CB  SER A            1.000   2.000   3.000\n",
	}
	for _, v := range bad {
		_, err := ParseTemplateLine(v)
		if !errors.Is(err, ErrMalformedTemplateLine) {
			Te.Errorf("%q should give a malformed line error, got %v", v, err)
		}
	}
	//just long enough
	tl, err := ParseTemplateLine("ATOM      1  CB  SER A  10\n")
	if err != nil || tl.Key != (ResidueKey{"A", 10}) {
		Te.Errorf("A 26-column ATOM line should parse: %+v %v", tl, err)
	}
}

func TestSubstitutable(Te *testing.T) {
	cases := map[string]bool{
		"CA": false, "N": false, "C": false, "O": false, "H": false, "HN": false,
		"HA": false, "HB2": false, "HG": false, "HD21": false,
		"CB": true, "OG": true, "CG1": true, "NZ": true, "SD": true, "OXT": true, "CD11": true,
	}
	for k, v := range cases {
		if Substitutable(k) != v {
			Te.Errorf("Substitutable(%s) should be %v", k, v)
		}
	}
}

// sameOutside checks that a and b are equal except, maybe, in the name
// field and the coordinates.
func sameOutside(Te *testing.T, a, b string) {
	Te.Helper()
	if len(a) != len(b) {
		Te.Fatalf("Lines of different length:\n%q\n%q", a, b)
	}
	for i := range a {
		if (i >= 12 && i < 17) || (i >= 30 && i < 54) {
			continue
		}
		if a[i] != b[i] {
			Te.Errorf("Column %d changed: %q vs %q\n%s%s", i, a[i], b[i], a, b)
		}
	}
}

func TestSubstituteLine(Te *testing.T) {
	orig := pdbLine(9, "CB", "SER", "A", 10, 5.504, 2.662, 0)
	got, err := substituteLine(orig, "CB", [3]float64{5.1234, -1.9876, -100.4564})
	if err != nil {
		Te.Fatal(err)
	}
	want := pdbLine(9, "CB", "SER", "A", 10, 5.123, -1.988, -100.456)
	if got != want {
		Te.Errorf("Got\n%sexpected\n%s", got, want)
	}
	sameOutside(Te, orig, got)
	if c := got[30:54]; c != "   5.123  -1.988-100.456" {
		Te.Errorf("Wrong coordinate fields: %q", c)
	}
	//the name is taken from the pose.
	got, err = substituteLine(orig, "OG", [3]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if got[12:17] != " OG  " {
		Te.Errorf("Wrong name field: %q", got[12:17])
	}
	sameOutside(Te, orig, got)
	//4-character names fill the whole name field, column 16 is kept.
	orig4 := pdbLine(9, "CD11", "XXX", "A", 10, 0, 0, 0)
	orig4 = orig4[:16] + "B" + orig4[17:]
	got, err = substituteLine(orig4, "CD11", [3]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if got[12:17] != "CD11B" {
		Te.Errorf("Wrong 4-character name field: %q", got[12:17])
	}
}

func TestSubstituteLineEnds(Te *testing.T) {
	//no columns after the coordinates, no newline.
	short := "ATOM      9  CB  SER A  10       5.504   2.662   0.000"
	got, err := substituteLine(short, "CB", [3]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if got != "ATOM      9  CB  SER A  10       1.000   2.000   3.000\n" {
		Te.Errorf("Wrong line: %q", got)
	}
	//no coordinates at all, but enough columns to write them.
	got, err = substituteLine("ATOM      9  CB  SER A  10    \r\n", "CB", [3]float64{1, 2, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if got != "ATOM      9  CB  SER A  10       1.000   2.000   3.000\r\n" {
		Te.Errorf("Wrong line: %q", got)
	}
	_, err = substituteLine("ATOM      9  CB  SER A  10\n", "CB", [3]float64{1, 2, 3})
	if !errors.Is(err, ErrMalformedTemplateLine) {
		Te.Errorf("A line without room for the coordinates should fail, got %v", err)
	}
}
