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

package vents

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteGrid writes the map as a text grid, one line per row from y = 0 to
// the largest y, one cell per column from x = 0 to the largest x.  Empty
// cells are shown as ".", covered cells by their count.  If some count has
// more than one digit, all cells are widened to the same number of
// characters and counts are right-aligned.  Points with a negative
// coordinate are not shown.
func (m OverlapMap) WriteGrid(w io.Writer) error {
	bounds := m.Bounds()
	width := len(strconv.Itoa(m.Max()))
	empty := strings.Repeat(".", width)

	out := bufio.NewWriter(w)
	for y := range bounds.Max.Y {
		for x := range bounds.Max.X {
			hits := m[C(x, y)]
			if hits == 0 {
				out.WriteString(empty)
				continue
			}
			s := strconv.Itoa(hits)
			if len(s) < width {
				out.WriteString(empty[:width-len(s)])
			}
			out.WriteString(s)
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

// Render returns the text grid written by [OverlapMap.WriteGrid].
func (m OverlapMap) Render() string {
	var sb strings.Builder
	m.WriteGrid(&sb)
	return sb.String()
}
