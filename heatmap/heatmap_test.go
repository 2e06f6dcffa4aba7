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

package heatmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/vents"
)

func plus(t *testing.T) ([]vents.Segment, vents.OverlapMap) {
	segs, err := vents.ParseSegments("3,0 -> 3,5\n0,3 -> 5,3")
	require.NoError(t, err)
	return segs, vents.Accumulate(segs)
}

func TestImage(t *testing.T) {
	_, m := plus(t)
	img := Image(m)

	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())
	assert.Equal(t, uint8(255), img.GrayAt(3, 3).Y)
	assert.Equal(t, uint8(127), img.GrayAt(3, 0).Y)
	assert.Equal(t, uint8(127), img.GrayAt(5, 3).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}

func TestImageEmpty(t *testing.T) {
	img := Image(vents.OverlapMap{})
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}

func TestImageNegative(t *testing.T) {
	m := vents.OverlapMap{vents.C(-1, 0): 1, vents.C(1, 1): 2}
	img := Image(m)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
}

func TestScale(t *testing.T) {
	_, m := plus(t)
	src := Image(m)

	dst := Scale(src, 4)
	assert.Equal(t, image.Rect(0, 0, 24, 24), dst.Bounds())
	for _, p := range []image.Point{{12, 12}, {13, 14}, {15, 15}} {
		assert.Equal(t, uint8(255), dst.GrayAt(p.X, p.Y).Y, "pixel %v", p)
	}
	assert.Equal(t, uint8(127), dst.GrayAt(13, 1).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(1, 1).Y)

	assert.Same(t, src, Scale(src, 1))
}

func TestOverlay(t *testing.T) {
	segs := []vents.Segment{
		{From: vents.C(0, 0), To: vents.C(2, 0)},
		{From: vents.C(0, 0), To: vents.C(1, 5)}, // unsupported, not drawn
	}
	const factor = 8
	img := image.NewGray(image.Rect(0, 0, 3*factor, 6*factor))
	Overlay(img, segs, factor, color.White)

	assert.Greater(t, img.GrayAt(10, 3).Y, uint8(200))
	assert.Greater(t, img.GrayAt(10, 4).Y, uint8(200))
	assert.Equal(t, uint8(0), img.GrayAt(10, 7).Y)
	assert.Equal(t, uint8(0), img.GrayAt(22, 4).Y)
	assert.Equal(t, uint8(0), img.GrayAt(4, 20).Y)
}

func TestWritePNG(t *testing.T) {
	_, m := plus(t)
	img := Scale(Image(m), 2)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	gray := color.GrayModel.Convert(decoded.At(7, 7)).(color.Gray)
	assert.Equal(t, uint8(255), gray.Y)
}
