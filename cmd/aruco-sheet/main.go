// seehuhn.de/go/fiducial - print sheets of fiducial markers
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

// Aruco-sheet writes a PDF page of ArUco markers, each labelled with its ID.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/fiducial/internal/buildinfo"
	"seehuhn.de/go/fiducial/internal/profile"
	"seehuhn.de/go/fiducial/layout"
	"seehuhn.de/go/fiducial/marker"
	"seehuhn.de/go/fiducial/marker/opencv"
	"seehuhn.de/go/fiducial/sheet"
)

var (
	outArg     = flag.String("o", "aruco_markers_with_ids.pdf", "output file name")
	sizeArg    = flag.Float64("size", sheet.DefaultMarkerSize, "marker edge length in `mm`")
	paperArg   = flag.String("paper", "a4", "paper `name` (a3, a4, a5, letter, legal) or size in mm, e.g. 210x297")
	dictArg    = flag.String("dict", marker.DefaultDictionary.String(), "marker `dictionary`")
	pxArg      = flag.Int("px", sheet.DefaultResolution, "marker bitmap resolution in `pixels`")
	forceArg   = flag.Bool("f", false, "overwrite output file if it exists")
	verboseArg = flag.Bool("v", false, "log progress to stderr")
	listArg    = flag.Bool("list", false, "list the available dictionaries and exit")
	versionArg = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "aruco-sheet \u2014 print a page of ArUco markers\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("aruco-sheet"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  aruco-sheet [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  aruco-sheet -size 20 -o markers.pdf\n")
		fmt.Fprintf(os.Stderr, "  aruco-sheet -paper letter -dict 4x4_250\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	switch {
	case *versionArg:
		fmt.Println(buildinfo.Short("aruco-sheet"))
		return
	case *listArg:
		listDictionaries()
		return
	}

	level := slog.LevelWarn
	if *verboseArg {
		level = slog.LevelDebug
	}
	sheet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("ArUco markers PDF with IDs has been generated.")
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	opt, err := options()
	if err != nil {
		return err
	}

	if !*forceArg {
		if _, err := os.Stat(*outArg); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", *outArg)
		}
	}

	return sheet.Create(*outArg, opencv.Generator{}, opt)
}

func options() (*sheet.Options, error) {
	paper, err := layout.ParsePaper(*paperArg)
	if err != nil {
		return nil, err
	}
	dict, err := marker.ParseDictionary(*dictArg)
	if err != nil {
		return nil, err
	}
	opt := &sheet.Options{
		Paper:      paper,
		MarkerSize: *sizeArg,
		Dictionary: dict,
		Resolution: *pxArg,
	}
	if opt.MarkerSize == 0 || opt.Resolution == 0 {
		// Zero would silently select the defaults.
		return nil, errors.New("marker size and resolution must be positive")
	}
	return opt, nil
}

func listDictionaries() {
	for _, d := range marker.Dictionaries {
		fmt.Printf("%-16s %dx%d bits, %4d markers\n", d, d.Bits(), d.Bits(), d.Len())
	}
}
