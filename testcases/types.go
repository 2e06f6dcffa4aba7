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

package testcases

import "strings"

// TestCase defines a single overlap counting test.
type TestCase struct {
	Name     string // lowercase a-z and _ only
	Input    string // one segment per line
	AxisOnly bool   // skip diagonal segments
	Points   int    // expected number of covered points
	Danger   int    // expected number of points covered at least twice
}

// lines joins segment strings into an input block.
func lines(segs ...string) string {
	return strings.Join(segs, "\n")
}
