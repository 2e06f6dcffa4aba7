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

import "strconv"

// Orientation is the geometric class of a segment, which determines how the
// segment is rasterised.
type Orientation int

const (
	// Unsupported segments are neither axis-aligned nor 45° diagonals.
	// They cover no lattice points.
	Unsupported Orientation = iota

	// Point segments start and end at the same lattice point.
	Point

	// Horizontal segments have From.Y == To.Y.
	Horizontal

	// Vertical segments have From.X == To.X.
	Vertical

	// Diagonal segments move by the same distance along both axes.
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Unsupported:
		return "unsupported"
	case Point:
		return "point"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}
