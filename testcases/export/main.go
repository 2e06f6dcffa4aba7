// Command export writes the reference grids for all test cases.
// Run from the go-vents module root directory.
package main

import (
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/vents"
	"seehuhn.de/go/vents/testcases"
)

const refDir = "testdata/reference"

func main() {
	log.SetPrefix("export: ")
	log.SetFlags(0)

	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			m, err := accumulate(tc)
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			if got := len(m); got != tc.Points {
				log.Printf("%s: %d points, test case expects %d", name, got, tc.Points)
			}

			fname := filepath.Join(refDir, name+".txt")
			if err := os.WriteFile(fname, []byte(m.Render()), 0644); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func accumulate(tc testcases.TestCase) (vents.OverlapMap, error) {
	segs, err := vents.ParseSegments(tc.Input)
	if err != nil {
		return nil, err
	}
	var keep func(vents.Segment) bool
	if tc.AxisOnly {
		keep = vents.AxisAligned
	}
	return vents.AccumulateFunc(segs, keep), nil
}
