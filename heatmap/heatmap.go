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

// Package heatmap draws overlap maps as grayscale images.
//
// Each lattice point becomes one pixel, or a square of pixels after
// scaling.  The gray level of a point is proportional to its count, so
// that the point with the largest count is white.
package heatmap

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vents"
)

// Image returns the map as a grayscale image with one pixel per lattice
// point.  The image covers the rectangle [vents.OverlapMap.Bounds].
func Image(m vents.OverlapMap) *image.Gray {
	img := image.NewGray(m.Bounds())
	top := m.Max()
	if top == 0 {
		return img
	}
	for p, hits := range m {
		if !(image.Point{X: p.X, Y: p.Y}).In(img.Rect) {
			continue
		}
		img.SetGray(p.X, p.Y, color.Gray{Y: uint8(255 * hits / top)})
	}
	return img
}

// Scale enlarges src by an integer factor, without interpolation.
func Scale(src *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

// Overlay strokes the centre lines of the segments onto dst, which must
// have been scaled by the given factor.  The lines are drawn anti-aliased
// in colour c.
func Overlay(dst draw.Image, segs []vents.Segment, factor int, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	half := max(1, float64(factor)/4) / 2

	for _, s := range segs {
		if s.Orientation() == vents.Unsupported {
			continue
		}
		p0 := centre(s.From, factor)
		p1 := centre(s.To, factor)

		d := p1.Sub(p0)
		if l := d.Length(); l > 0 {
			d = d.Mul(half / l)
		} else {
			d = vec.Vec2{X: half}
		}
		n := vec.Vec2{X: -d.Y, Y: d.X}
		p0 = p0.Sub(d)
		p1 = p1.Add(d)

		moveTo(r, p0.Add(n))
		lineTo(r, p1.Add(n))
		lineTo(r, p1.Sub(n))
		lineTo(r, p0.Sub(n))
		r.ClosePath()
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// centre returns the centre of the pixel square of p.
func centre(p vents.Coord, factor int) vec.Vec2 {
	return p.Vec2().Mul(float64(factor)).Add(vec.Vec2{X: float64(factor) / 2, Y: float64(factor) / 2})
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
