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

package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/vents"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func sampleMap(t *testing.T) vents.OverlapMap {
	segs, err := vents.ParseSegments("3,0 -> 3,5\n0,3 -> 5,3\n3,3 -> 4,4\n0,3 -> 0,3")
	require.NoError(t, err)
	return vents.Accumulate(segs)
}

func TestCell(t *testing.T) {
	cases := []struct {
		hits  int
		r     rune
		style tcell.Style
	}{
		{0, '.', StyleEmpty},
		{1, '1', StyleSingle},
		{2, '2', StyleDouble},
		{3, '3', StyleDanger},
		{9, '9', StyleDanger},
		{10, '+', StyleDanger},
	}
	for _, tc := range cases {
		r, style := Cell(tc.hits)
		assert.Equal(t, tc.r, r, "hits=%d", tc.hits)
		assert.Equal(t, tc.style, style, "hits=%d", tc.hits)
	}
}

func TestDraw(t *testing.T) {
	m := sampleMap(t)
	screen := newScreen(t, 10, 8)
	Draw(screen, m, vents.Coord{})

	for _, tc := range []struct {
		x, y int
		want rune
	}{
		{0, 0, '.'},
		{3, 0, '1'},
		{0, 3, '2'},
		{3, 3, '3'},
		{4, 4, '1'},
		{5, 5, '.'},
		{6, 0, ' '}, // right of the map
		{0, 6, ' '}, // below the map
	} {
		r, _, _, _ := screen.GetContent(tc.x, tc.y)
		assert.Equal(t, tc.want, r, "cell (%d, %d)", tc.x, tc.y)
	}
}

func TestDrawOrigin(t *testing.T) {
	m := sampleMap(t)
	screen := newScreen(t, 4, 4)
	Draw(screen, m, vents.C(3, 3))

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, '3', r)
	assert.Equal(t, StyleDanger, style)

	r, _, _, _ = screen.GetContent(2, 0)
	assert.Equal(t, '1', r)
}

func TestViewerHandle(t *testing.T) {
	m := sampleMap(t)
	v := &Viewer{Screen: newScreen(t, 4, 4), Map: m}

	key := func(k tcell.Key) *tcell.EventKey {
		return tcell.NewEventKey(k, 0, tcell.ModNone)
	}

	assert.True(t, v.Handle(key(tcell.KeyRight)))
	assert.True(t, v.Handle(key(tcell.KeyDown)))
	assert.Equal(t, vents.C(1, 1), v.Origin)

	// scrolling stops at the map border
	for range 10 {
		v.Handle(key(tcell.KeyLeft))
	}
	assert.Equal(t, vents.C(0, 1), v.Origin)
	for range 10 {
		v.Handle(key(tcell.KeyRight))
	}
	assert.Equal(t, vents.C(5, 1), v.Origin)

	assert.True(t, v.Handle(key(tcell.KeyHome)))
	assert.Equal(t, vents.Coord{}, v.Origin)

	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.Handle(key(tcell.KeyEscape)))
}

func TestViewerStatus(t *testing.T) {
	m := sampleMap(t)
	screen := newScreen(t, 30, 5)
	v := &Viewer{Screen: screen, Map: m}
	v.redraw()

	var line []rune
	for x := range 30 {
		r, _, _, _ := screen.GetContent(x, 4)
		line = append(line, r)
	}
	assert.Contains(t, string(line), "danger zone: 2")
}
