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

// Package pdfmap writes overlap maps as single-page PDF files.
package pdfmap

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/vents"
)

// DefaultCell is the side length of one lattice cell, in PDF points.
const DefaultCell = 12.0

// Options controls the appearance of the PDF page.
type Options struct {
	// Cell is the side length of a lattice cell in PDF points.
	// Zero means DefaultCell.
	Cell float64

	// Segments, if non-nil, are drawn as lines on top of the cells.
	Segments []vents.Segment
}

// PageBox returns the page rectangle needed to show m with the given
// cell size.
func PageBox(m vents.OverlapMap, cell float64) rect.Rect {
	b := m.Bounds()
	return rect.Rect{
		URx: float64(b.Dx()) * cell,
		URy: float64(b.Dy()) * cell,
	}
}

// Write creates the file fname with one page showing m.  Each covered
// lattice point is a filled square; the more segments cover the point,
// the darker the square.  The point (0, 0) is at the top left.
func Write(fname string, m vents.OverlapMap, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	cell := opt.Cell
	if cell <= 0 {
		cell = DefaultCell
	}

	box := PageBox(m, cell)
	paper := &pdf.Rectangle{
		LLx: box.LLx,
		LLy: box.LLy,
		URx: box.URx,
		URy: box.URy,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, lattice rows grow downwards.
	page.Transform(matrix.Matrix{cell, 0, 0, -cell, 0, box.URy})

	top := m.Max()
	for p, hits := range m {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		page.SetFillColor(color.DeviceGray(1 - 0.8*float64(hits)/float64(top)))
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		page.Fill()
	}

	drawn := false
	for _, s := range opt.Segments {
		if s.Orientation() == vents.Unsupported {
			continue
		}
		if !drawn {
			page.SetStrokeColor(color.DeviceGray(0))
			page.SetLineWidth(0.125)
			page.SetLineCap(graphics.LineCapRound)
			page.SetLineJoin(graphics.LineJoinRound)
			drawn = true
		}
		for cmd, pts := range s.Path() {
			// lattice points sit at the centres of the cells
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X+0.5, pts[0].Y+0.5)
			case path.CmdLineTo:
				page.LineTo(pts[0].X+0.5, pts[0].Y+0.5)
			}
		}
	}
	if drawn {
		page.Stroke()
	}

	return page.Close()
}
