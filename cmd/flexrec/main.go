/*
 * main.go, part of flexrec.
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

// flexrec rebuilds full receptors from the flexible side chains produced by a
// flexible docking run, writing one model per pose.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	chem "github.com/rmera/flexrec"
	"github.com/rmera/flexrec/flex"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("flexrec: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "flexrec: Assemble full receptors from flexible docking results.\n Usage:\n  %s rigid.pdb flex.pdb out.pdb\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "rigid.pdb is the full rigid receptor, flex.pdb the flexible side chains\n(one MODEL per pose) and out.pdb the output, with one MODEL per pose.\nAny file can be gzip (.gz) or zstd (.zst) compressed.\nIf something fails, out.pdb may be left incomplete.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(2)
	}
	stats, err := run(args[0], args[1], args[2])
	if err != nil {
		if t := trail(err); t != "" {
			log.Printf("error went through: %s", t)
		}
		log.Fatal(err)
	}
	if len(stats.Missing) > 0 {
		log.Printf("flexible residues %v have no ATOM records in %s, their poses were not used", stats.Missing, args[0])
	}
	log.Printf("wrote %d models to %s (%d flexible residues, %d atoms substituted)", stats.Poses, args[2], stats.Residues, stats.Substituted)
}

// run does the whole job. The inputs are checked before the output is created.
func run(rigid, flexname, outname string) (flex.Stats, error) {
	var stats flex.Stats
	tmpl := flex.FileTemplate(rigid)
	if err := flex.CheckTemplate(tmpl); err != nil {
		return stats, err
	}
	idx, err := flex.LoadPoses(flexname)
	if err != nil {
		return stats, err
	}
	out, err := chem.CreateFile(outname)
	if err != nil {
		return stats, err
	}
	bout := bufio.NewWriter(out)
	stats, err = flex.NewRestorer(idx, tmpl).Restore(bout)
	if ferr := bout.Flush(); err == nil {
		err = ferr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return stats, err
}

// trail returns the functions a chem.Error went through, innermost first,
// or an empty string for other errors.
func trail(err error) string {
	var cerr chem.Error
	if !errors.As(err, &cerr) {
		return ""
	}
	return strings.Join(cerr.Decorate(""), " <- ")
}
