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
	"strings"
)

// ReadSegments reads one segment per line until the end of r.  Reading
// stops at the first malformed line; the returned error is a [*LineError]
// wrapping the [*FormatError] or [*ParseError] for that line.
func ReadSegments(r io.Reader) ([]Segment, error) {
	var segs []Segment
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			return nil, &LineError{Line: line, Err: &FormatError{Text: text, Reason: "empty line"}}
		}
		s, err := ParseSegment(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		segs = append(segs, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}

// ParseSegments reads segments from a block of text, as [ReadSegments].
func ParseSegments(text string) ([]Segment, error) {
	return ReadSegments(strings.NewReader(text))
}
