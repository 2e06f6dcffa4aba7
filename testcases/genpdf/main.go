// seehuhn.de/go/vents - count overlapping lattice line segments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf writes a PDF file for each test case, showing the
// overlap map and the segments.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/vents"
	"seehuhn.de/go/vents/pdfmap"
	"seehuhn.de/go/vents/testcases"
)

const outDir = "testdata/pdf"

func main() {
	log.SetPrefix("genpdf: ")
	log.SetFlags(0)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(outDir, name+".pdf")); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	segs, err := vents.ParseSegments(tc.Input)
	if err != nil {
		return err
	}
	if tc.AxisOnly {
		segs = slices.DeleteFunc(segs, func(s vents.Segment) bool {
			return !vents.AxisAligned(s)
		})
	}
	m := vents.Accumulate(segs)
	return pdfmap.Write(pdfPath, m, &pdfmap.Options{Segments: segs})
}
