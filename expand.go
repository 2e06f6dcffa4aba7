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
	"fmt"
	"iter"
)

// Points returns the lattice points covered by s, in order from s.From to
// s.To along the segment.  Horizontal and vertical segments are an
// exception: their points are always returned in increasing order of the
// varying coordinate.  Unsupported segments cover no points.
func Points(s Segment) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		p, step, n := walk(s)
		for range n {
			if !yield(p) {
				return
			}
			p = p.Add(step)
		}
	}
}

// Expand returns the lattice points covered by s, as yielded by [Points].
func Expand(s Segment) []Coord {
	points := make([]Coord, 0, Len(s))
	for p := range Points(s) {
		points = append(points, p)
	}
	return points
}

// ExpandStrict is like [Expand], but returns [ErrUnsupported] for segments
// which are neither axis-aligned nor 45° diagonals.
func ExpandStrict(s Segment) ([]Coord, error) {
	if s.Orientation() == Unsupported {
		return nil, unsupported(s)
	}
	return Expand(s), nil
}

// Len returns the number of points covered by s.
func Len(s Segment) int {
	_, _, n := walk(s)
	return n
}

// walk returns the first point, the step between consecutive points and
// the number of points of the rasterised segment.
func walk(s Segment) (start, step Coord, n int) {
	d := s.To.Sub(s.From)
	switch s.Orientation() {
	case Point:
		return s.From, Coord{}, 1
	case Horizontal:
		return C(min(s.From.X, s.To.X), s.From.Y), C(1, 0), abs(d.X) + 1
	case Vertical:
		return C(s.From.X, min(s.From.Y, s.To.Y)), C(0, 1), abs(d.Y) + 1
	case Diagonal:
		return s.From, C(sign(d.X), sign(d.Y)), abs(d.X) + 1
	default:
		return s.From, Coord{}, 0
	}
}

func unsupported(s Segment) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, s)
}
