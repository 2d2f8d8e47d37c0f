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

// Package sheet writes printable PDF pages of fiducial markers.
//
// Every marker on the page is labelled with its ID.  The markers are
// arranged by the layout package and rendered by a [marker.Generator]:
//
//	err := sheet.Create("markers.pdf", opencv.Generator{}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/image"

	"seehuhn.de/go/fiducial/layout"
	"seehuhn.de/go/fiducial/marker"
)

// Default values for the fields in [Options].
const (
	DefaultMarkerSize = 12.0 // mm
	DefaultResolution = 200  // pixels
	DefaultFontSize   = 8.0  // PDF units
	DefaultTitle      = "ArUco markers"
)

// ErrTooManyMarkers is returned when the page has room for more markers
// than the dictionary contains.
var ErrTooManyMarkers = errors.New("not enough markers in dictionary")

// Options control the appearance of a marker sheet.
// Zero fields are replaced by default values.
type Options struct {
	// Paper is the page size.  The default is A4.
	Paper layout.Paper

	// MarkerSize is the edge length of a marker, in millimetres.
	MarkerSize float64

	// Dictionary selects the markers.  The default is 5x5_250.
	Dictionary marker.Dictionary

	// Resolution is the number of pixels along one edge of a marker
	// bitmap.
	Resolution int

	// FontSize is the font size for the ID labels.
	FontSize float64

	// Title is stored in the document information dictionary.
	Title string
}

func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.Paper == (layout.Paper{}) {
		res.Paper = layout.A4
	}
	if res.MarkerSize == 0 {
		res.MarkerSize = DefaultMarkerSize
	}
	if res.Dictionary == 0 {
		res.Dictionary = marker.DefaultDictionary
	}
	if res.Resolution == 0 {
		res.Resolution = DefaultResolution
	}
	if res.FontSize == 0 {
		res.FontSize = DefaultFontSize
	}
	if res.Title == "" {
		res.Title = DefaultTitle
	}
	return res
}

// Plan checks the options and computes the layout of the sheet.
// No markers are generated.
func Plan(opt *Options) (*layout.Grid, error) {
	opt = opt.withDefaults()

	dict := opt.Dictionary
	if !dict.IsValid() {
		return nil, fmt.Errorf("unknown marker dictionary %s", dict)
	}
	if opt.Resolution < marker.MinPixels(dict) {
		return nil, fmt.Errorf("marker resolution %d too small for dictionary %s (need at least %d)",
			opt.Resolution, dict, marker.MinPixels(dict))
	}
	if !(opt.FontSize > 0) {
		return nil, fmt.Errorf("invalid font size %g", opt.FontSize)
	}

	grid, err := layout.New(opt.Paper, opt.MarkerSize)
	if err != nil {
		return nil, err
	}
	if grid.Count() > dict.Len() {
		return nil, fmt.Errorf("%w: %d markers fit on the page, but %s has only %d",
			ErrTooManyMarkers, grid.Count(), dict, dict.Len())
	}
	return grid, nil
}

// Create writes a marker sheet to the named file.
// If an error occurs, the file is removed again.
func Create(fileName string, gen marker.Generator, opt *Options) (err error) {
	// Check the options before touching the file system.
	if _, err := Plan(opt); err != nil {
		return err
	}

	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()

	return Write(fd, gen, opt)
}

// Write writes a marker sheet to w.
//
// The page contains as many markers as fit on the paper, with IDs
// 0, 1, ..., in row-major order starting at the top left.
func Write(w io.Writer, gen marker.Generator, opt *Options) error {
	opt = opt.withDefaults()
	grid, err := Plan(opt)
	if err != nil {
		return err
	}

	page, err := document.WriteSinglePage(w, grid.PageSize(), pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Out.GetMeta().Info = &pdf.Info{
		Title:    pdf.TextString(opt.Title),
		Subject:  pdf.TextString(fmt.Sprintf("%d markers from dictionary %s", grid.Count(), opt.Dictionary)),
		Producer: "seehuhn.de/go/fiducial",
	}

	err = drawMarkers(page, grid, gen, opt)
	if err != nil {
		return err
	}

	err = page.Close()
	if err != nil {
		return err
	}

	logger().Info("wrote marker sheet",
		"markers", grid.Count(),
		"cols", grid.Cols,
		"rows", grid.Rows,
		"dictionary", opt.Dictionary.String(),
		"paper", opt.Paper.String())
	return nil
}

func drawMarkers(page *document.Page, grid *layout.Grid, gen marker.Generator, opt *Options) error {
	labelFont := standard.Helvetica.New()
	page.SetFillColor(color.DeviceGray(0))

	for cell := range grid.Cells() {
		id := cell.Index

		raw, err := gen.Generate(opt.Dictionary, id, opt.Resolution)
		if err != nil {
			return fmt.Errorf("marker %d: %w", id, err)
		}
		bitmap, err := marker.Normalize(raw, opt.Resolution)
		if err != nil {
			return fmt.Errorf("marker %d: %w", id, err)
		}
		img := image.FromImage(bitmap, color.DeviceGraySpace, 1)

		page.PushGraphicsState()
		page.Transform(matrix.Translate(cell.X, cell.Y))
		page.Transform(matrix.Scale(cell.Size, cell.Size))
		page.DrawXObject(img)
		page.PopGraphicsState()

		page.TextBegin()
		page.TextSetFont(labelFont, opt.FontSize)
		page.TextFirstLine(cell.LabelX, cell.LabelY)
		page.TextShow(Label(id))
		page.TextEnd()

		if page.Err != nil {
			return fmt.Errorf("marker %d: %w", id, page.Err)
		}
		logger().Debug("placed marker", "id", id, "row", cell.Row, "col", cell.Col)
	}
	return nil
}

// Label returns the text printed below the marker with the given ID.
func Label(id int) string {
	return "ID: " + strconv.Itoa(id)
}
