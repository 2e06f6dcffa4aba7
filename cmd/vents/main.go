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

// Command vents counts the points where at least two line segments overlap.
//
// Usage:
//
//	vents [options] [file]
//
// The input has one segment per line, in the form "x1,y1 -> x2,y2".  If no
// file is given, or the file is "-", segments are read from standard input.
// The danger zone count is written to standard output.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/vents"
	"seehuhn.de/go/vents/heatmap"
	"seehuhn.de/go/vents/pdfmap"
	"seehuhn.de/go/vents/termview"
)

type options struct {
	axis    bool
	strict  bool
	grid    bool
	png     string
	scale   int
	lines   bool
	pdf     string
	view    bool
	workers int
}

func main() {
	log.SetPrefix("vents: ")
	log.SetFlags(0)

	var opt options
	flag.BoolVar(&opt.axis, "axis", false, "ignore diagonal segments")
	flag.BoolVar(&opt.strict, "strict", false, "reject segments which are neither axis-aligned nor at 45°")
	flag.BoolVar(&opt.grid, "grid", false, "print the overlap grid to stderr")
	flag.StringVar(&opt.png, "png", "", "write a heat map `image` in PNG format")
	flag.IntVar(&opt.scale, "scale", 8, "pixels per lattice point for -png")
	flag.BoolVar(&opt.lines, "lines", false, "draw the segments on top of the -png heat map")
	flag.StringVar(&opt.pdf, "pdf", "", "write the overlap map to a PDF `file`")
	flag.BoolVar(&opt.view, "view", false, "show the overlap map in the terminal")
	flag.IntVar(&opt.workers, "workers", 1, "number of goroutines used to accumulate the map (0 = GOMAXPROCS)")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: vents [options] [file]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(opt, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(opt options, fname string) error {
	segs, err := readInput(fname)
	if err != nil {
		return err
	}

	r := vents.NewRasteriser(opt.strict)
	if opt.axis {
		r.Keep = vents.AxisAligned
	}
	var m vents.OverlapMap
	if opt.workers == 1 {
		m, err = r.Accumulate(segs)
	} else {
		m, err = r.AccumulateParallel(context.Background(), segs, opt.workers)
	}
	if err != nil {
		return err
	}
	if r.Skipped > 0 {
		log.Printf("skipped %d unsupported segments", r.Skipped)
	}

	fmt.Println(m.DangerZone())

	if opt.grid {
		if err := m.WriteGrid(os.Stderr); err != nil {
			return err
		}
	}
	if opt.png != "" {
		if err := writePNG(opt, m, segs); err != nil {
			return fmt.Errorf("%s: %w", opt.png, err)
		}
	}
	if opt.pdf != "" {
		pdfOpt := &pdfmap.Options{Segments: segs}
		if err := pdfmap.Write(opt.pdf, m, pdfOpt); err != nil {
			return fmt.Errorf("%s: %w", opt.pdf, err)
		}
	}
	if opt.view {
		return view(m)
	}
	return nil
}

func readInput(fname string) ([]vents.Segment, error) {
	var in io.Reader = os.Stdin
	if fname != "" && fname != "-" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	} else {
		fname = "stdin"
	}

	segs, err := vents.ReadSegments(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return segs, nil
}

func writePNG(opt options, m vents.OverlapMap, segs []vents.Segment) (err error) {
	img := heatmap.Scale(heatmap.Image(m), opt.scale)
	if opt.lines {
		heatmap.Overlay(img, segs, max(opt.scale, 1), color.Gray{Y: 96})
	}

	f, err := os.Create(opt.png)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return heatmap.WritePNG(f, img)
}

func view(m vents.OverlapMap) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &termview.Viewer{Screen: screen, Map: m}
	v.Run()
	return nil
}
