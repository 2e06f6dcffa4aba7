// Package vents counts the lattice points where line segments overlap.
//
// Segments are given as text, one per line, in the form "x1,y1 -> x2,y2".
// Each segment is expanded into the lattice points it covers.  Horizontal,
// vertical and 45° diagonal segments are supported; other segments cover
// no points.  The points of all segments are collected in an [OverlapMap],
// and [OverlapMap.DangerZone] reports how many points are covered by two
// or more segments:
//
//	segs, err := vents.ReadSegments(r)
//	if err != nil {
//		return err
//	}
//	m := vents.Accumulate(segs)
//	fmt.Println(m.DangerZone())
package vents

//go:generate go run ./testcases/export
