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

// Package termview shows overlap maps on a terminal screen.
package termview

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/vents"
)

// Styles used for the cells of the map.
var (
	StyleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleSingle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleDouble = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Cell returns the rune and style used to show a lattice point which is
// covered by the given number of segments.
func Cell(hits int) (rune, tcell.Style) {
	switch {
	case hits <= 0:
		return '.', StyleEmpty
	case hits == 1:
		return '1', StyleSingle
	case hits == 2:
		return '2', StyleDouble
	case hits <= 9:
		return rune('0' + hits), StyleDanger
	default:
		return '+', StyleDanger
	}
}

// Draw fills the screen with the part of m whose top left corner is at
// origin.  Cells beyond the bounds of m are cleared.
func Draw(screen tcell.Screen, m vents.OverlapMap, origin vents.Coord) {
	w, h := screen.Size()
	bounds := m.Bounds()
	for y := range h {
		for x := range w {
			p := origin.Add(vents.C(x, y))
			if p.X < 0 || p.Y < 0 || p.X >= bounds.Max.X || p.Y >= bounds.Max.Y {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			r, style := Cell(m[p])
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Viewer is an interactive, scrollable view of an overlap map.
type Viewer struct {
	Screen tcell.Screen
	Map    vents.OverlapMap
	Origin vents.Coord // top left visible lattice point
}

// Run draws the map and handles key events until the user presses q,
// Escape or Ctrl-C.  Arrow keys scroll the view.  Run does not finalise
// the screen.
func (v *Viewer) Run() {
	v.redraw()
	for {
		ev := v.Screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.Handle(ev) {
			return
		}
		v.redraw()
	}
}

// Handle processes a single event.  It returns false when the viewer
// should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scroll(0, -1)
		case tcell.KeyDown:
			v.scroll(0, 1)
		case tcell.KeyLeft:
			v.scroll(-1, 0)
		case tcell.KeyRight:
			v.scroll(1, 0)
		case tcell.KeyHome:
			v.Origin = vents.Coord{}
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		v.Screen.Sync()
	}
	return true
}

// scroll moves the origin, keeping it inside the map bounds.
func (v *Viewer) scroll(dx, dy int) {
	b := v.Map.Bounds()
	o := v.Origin.Add(vents.C(dx, dy))
	o.X = max(0, min(o.X, b.Max.X-1))
	o.Y = max(0, min(o.Y, b.Max.Y-1))
	v.Origin = o
}

func (v *Viewer) redraw() {
	Draw(v.Screen, v.Map, v.Origin)
	v.drawStatus()
	v.Screen.Show()
}

// drawStatus writes the danger zone count into the bottom line.
func (v *Viewer) drawStatus() {
	w, h := v.Screen.Size()
	if h == 0 {
		return
	}
	msg := " danger zone: " + strconv.Itoa(v.Map.DangerZone()) + "  (arrows scroll, q quits) "
	style := tcell.StyleDefault.Reverse(true)
	for x := range w {
		r := ' '
		if x < len(msg) {
			r = rune(msg[x])
		}
		v.Screen.SetContent(x, h-1, r, nil, style)
	}
}
