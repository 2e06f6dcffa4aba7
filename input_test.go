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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/vents/testcases"
)

func TestReadSegments(t *testing.T) {
	segs, err := ReadSegments(strings.NewReader(testcases.All["sample"][0].Input + "\n"))
	require.NoError(t, err)
	require.Len(t, segs, 10)
	assert.Equal(t, seg(0, 9, 5, 9), segs[0])
	assert.Equal(t, seg(5, 5, 8, 2), segs[9])
}

func TestReadSegmentsCRLF(t *testing.T) {
	segs, err := ParseSegments("1,1 -> 1,3\r\n2,2 -> 4,4\r\n")
	require.NoError(t, err)
	assert.Equal(t, []Segment{seg(1, 1, 1, 3), seg(2, 2, 4, 4)}, segs)
}

func TestReadSegmentsEmpty(t *testing.T) {
	segs, err := ParseSegments("")
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestReadSegmentsErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"separator", "0,9 -> 5,9\n1,2 3,4\n", 2, ErrFormat},
		{"integer", "a,2 -> 3,4", 1, ErrParse},
		{"blank", "0,9 -> 5,9\n\n0,0 -> 1,1", 2, ErrFormat},
		{"late", "0,0 -> 1,1\n0,0 -> 1,1\n0,0 -> 1,x", 3, ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := ParseSegments(tc.in)
			assert.Nil(t, segs)
			require.ErrorIs(t, err, tc.want)

			var lerr *LineError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tc.line, lerr.Line)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}
