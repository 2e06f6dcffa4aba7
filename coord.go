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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Coord is a lattice point.  Coordinates are compared with ==, and can be
// used as map keys.
type Coord struct {
	X, Y int
}

// C returns the coordinate (x, y).
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// ParseCoord parses a coordinate of the form "x,y".  Spaces around the
// numbers are ignored, so that the output of [Coord.String] can be read back.
func ParseCoord(text string) (Coord, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return Coord{}, &FormatError{Text: text, Reason: "missing comma"}
	}
	if strings.Contains(ys, ",") {
		return Coord{}, &FormatError{Text: text, Reason: "too many fields"}
	}
	x, err := parseInt(xs)
	if err != nil {
		return Coord{}, err
	}
	y, err := parseInt(ys)
	if err != nil {
		return Coord{}, err
	}
	return Coord{X: x, Y: y}, nil
}

func parseInt(field string) (int, error) {
	field = strings.TrimSpace(field)
	// 32-bit range keeps differences and point counts within int
	n, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, &ParseError{Text: field, Err: err}
	}
	return int(n), nil
}

// String formats the coordinate as "x, y".
func (c Coord) String() string {
	return strconv.Itoa(c.X) + ", " + strconv.Itoa(c.Y)
}

// Add returns c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Vec2 converts the coordinate to a floating point vector.
func (c Coord) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
}
