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
	"context"
	"image"
)

// OverlapMap maps each covered lattice point to the number of segments
// which cover it.  Points not covered by any segment are absent.
type OverlapMap map[Coord]int

// Accumulate folds the segments into a new overlap map.  Unsupported
// segments are ignored.
func Accumulate(segs []Segment) OverlapMap {
	return AccumulateFunc(segs, nil)
}

// AccumulateFunc is like [Accumulate], but only folds the segments for
// which keep returns true.  A nil keep function keeps all segments.
func AccumulateFunc(segs []Segment, keep func(Segment) bool) OverlapMap {
	m := make(OverlapMap)
	for _, s := range segs {
		if keep == nil || keep(s) {
			m.Add(s)
		}
	}
	return m
}

// AccumulateParallel folds the segments using the given number of
// goroutines.  The result is the same as for [Accumulate].
func AccumulateParallel(ctx context.Context, segs []Segment, workers int) (OverlapMap, error) {
	r := &Rasteriser{}
	return r.AccumulateParallel(ctx, segs, workers)
}

// Add increments the count of every point covered by s.
func (m OverlapMap) Add(s Segment) {
	for p := range Points(s) {
		m[p]++
	}
}

// Merge adds the counts from other to m.
func (m OverlapMap) Merge(other OverlapMap) {
	for p, n := range other {
		m[p] += n
	}
}

// DangerZone returns the number of points covered by at least two segments.
func (m OverlapMap) DangerZone() int {
	return m.AtLeast(2)
}

// AtLeast returns the number of points covered by n or more segments.
func (m OverlapMap) AtLeast(n int) int {
	count := 0
	for _, hits := range m {
		if hits >= n {
			count++
		}
	}
	return count
}

// Max returns the largest count in the map, or 0 if the map is empty.
func (m OverlapMap) Max() int {
	best := 0
	for _, hits := range m {
		best = max(best, hits)
	}
	return best
}

// Bounds returns the rectangle from (0, 0) to just past the largest x and y
// coordinates in the map.  The rectangle of an empty map contains the
// single point (0, 0).
func (m OverlapMap) Bounds() image.Rectangle {
	var xMax, yMax int
	for p := range m {
		xMax = max(xMax, p.X)
		yMax = max(yMax, p.Y)
	}
	return image.Rect(0, 0, xMax+1, yMax+1)
}
