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
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates that a line or coordinate lacks a required separator.
	ErrFormat = errors.New("vents: malformed input")

	// ErrParse indicates that a numeric field is not a base-10 integer.
	ErrParse = errors.New("vents: invalid integer")

	// ErrUnsupported indicates a segment which is neither axis-aligned nor
	// an exact 45° diagonal.  Only strict callers see this error; [Expand]
	// silently returns no points for such segments.
	ErrUnsupported = errors.New("vents: unsupported segment orientation")
)

// FormatError reports text which does not have the shape "x,y" or
// "x1,y1 -> x2,y2".
type FormatError struct {
	Text   string // the offending text
	Reason string // what is missing, e.g. `missing " -> "`
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("vents: %s in %q", e.Reason, e.Text)
}

// Is makes errors.Is(err, ErrFormat) succeed.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ParseError reports a coordinate field which is not an integer.
type ParseError struct {
	Text string // the field which failed to parse
	Err  error  // the error returned by strconv
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vents: invalid integer %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) succeed.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LineError records the input line on which reading stopped.
type LineError struct {
	Line int // 1-based line number
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
