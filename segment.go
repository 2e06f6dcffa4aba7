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
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// separator divides the two endpoints in the text form of a segment.
const separator = " -> "

// Segment is a line segment between two lattice points.  Both endpoint
// orders are valid and cover the same points.
type Segment struct {
	From, To Coord
}

// ParseSegment parses a segment of the form "x1,y1 -> x2,y2".
func ParseSegment(text string) (Segment, error) {
	from, to, ok := strings.Cut(text, separator)
	if !ok {
		return Segment{}, &FormatError{Text: text, Reason: `missing "` + separator + `"`}
	}
	a, err := ParseCoord(from)
	if err != nil {
		return Segment{}, err
	}
	b, err := ParseCoord(to)
	if err != nil {
		return Segment{}, err
	}
	return Segment{From: a, To: b}, nil
}

// String formats the segment as "x1, y1 -> x2, y2".
func (s Segment) String() string {
	return s.From.String() + separator + s.To.String()
}

// Reverse returns the segment with the endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{From: s.To, To: s.From}
}

// Orientation classifies the segment.
func (s Segment) Orientation() Orientation {
	d := s.To.Sub(s.From)
	switch {
	case d.X == 0 && d.Y == 0:
		return Point
	case d.Y == 0:
		return Horizontal
	case d.X == 0:
		return Vertical
	case abs(d.X) == abs(d.Y):
		return Diagonal
	default:
		return Unsupported
	}
}

// AxisAligned reports whether the segment is horizontal, vertical or a
// single point.  It can be used as a filter for [AccumulateFunc].
func AxisAligned(s Segment) bool {
	switch s.Orientation() {
	case Point, Horizontal, Vertical:
		return true
	default:
		return false
	}
}

// Path returns the segment as a one-piece path through the lattice points
// at its ends.
func (s Segment) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{s.From.Vec2()}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{s.To.Vec2()})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or +1.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
