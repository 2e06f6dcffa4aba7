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
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Rasteriser converts segments to lattice points and folds them into
// overlap maps.  The caller creates one instance and reuses it for many
// segments.  The internal point buffer grows as needed but never shrinks.
//
// The zero value is ready to use.  A Rasteriser is not safe for concurrent
// use; [Rasteriser.AccumulateParallel] gives each worker its own copy.
type Rasteriser struct {
	// Strict makes unsupported segments an error.  If Strict is false,
	// unsupported segments silently cover no points.
	Strict bool

	// Keep, if non-nil, selects the segments to rasterise.  Segments for
	// which Keep returns false are skipped.
	Keep func(Segment) bool

	// Skipped counts the unsupported segments seen since the last call to
	// Reset, when Strict is false.
	Skipped int

	points []Coord // reused by Expand
}

// NewRasteriser returns a Rasteriser with the given strictness.
func NewRasteriser(strict bool) *Rasteriser {
	return &Rasteriser{Strict: strict}
}

// Reset clears the skip counter.  Buffers are kept for reuse.
func (r *Rasteriser) Reset() {
	r.Skipped = 0
	r.points = r.points[:0]
}

// Expand returns the lattice points covered by s.  The returned slice is
// owned by the Rasteriser and is valid only until the next call.
func (r *Rasteriser) Expand(s Segment) ([]Coord, error) {
	n := Len(s)
	if n == 0 {
		if r.Strict {
			return nil, unsupported(s)
		}
		r.Skipped++
	}
	r.points = slices.Grow(r.points[:0], n)
	for p := range Points(s) {
		r.points = append(r.points, p)
	}
	return r.points, nil
}

// AddTo rasterises the segments and increments the count of every covered
// point in m.  In strict mode, AddTo stops at the first unsupported segment;
// the segments before it have already been added.
func (r *Rasteriser) AddTo(m OverlapMap, segs []Segment) error {
	for _, s := range segs {
		if err := r.add(m, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rasteriser) add(m OverlapMap, s Segment) error {
	if r.Keep != nil && !r.Keep(s) {
		return nil
	}
	points, err := r.Expand(s)
	if err != nil {
		return err
	}
	for _, p := range points {
		m[p]++
	}
	return nil
}

// Accumulate folds segs into a new overlap map.
func (r *Rasteriser) Accumulate(segs []Segment) (OverlapMap, error) {
	m := make(OverlapMap)
	if err := r.AddTo(m, segs); err != nil {
		return nil, err
	}
	return m, nil
}

// AccumulateParallel is like [Rasteriser.Accumulate], but splits segs into
// chunks which are rasterised concurrently, one goroutine per chunk.  The
// partial maps are merged once all workers have finished.  If workers is
// not positive, GOMAXPROCS workers are used.
//
// The Keep function must be safe for concurrent use.  Skipped is
// incremented by the total over all workers.
func (r *Rasteriser) AccumulateParallel(ctx context.Context, segs []Segment, workers int) (OverlapMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(segs)))
	chunk := (len(segs) + workers - 1) / workers

	parts := make([]OverlapMap, workers)
	skipped := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		lo := min(i*chunk, len(segs))
		hi := min(lo+chunk, len(segs))
		g.Go(func() error {
			w := Rasteriser{Strict: r.Strict, Keep: r.Keep}
			m := make(OverlapMap)
			for _, s := range segs[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := w.add(m, s); err != nil {
					return err
				}
			}
			parts[i] = m
			skipped[i] = w.Skipped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := parts[0]
	r.Skipped += skipped[0]
	for i := 1; i < workers; i++ {
		m.Merge(parts[i])
		r.Skipped += skipped[i]
	}
	return m, nil
}
