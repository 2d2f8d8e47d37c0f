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

// Package layout arranges square markers in a regular grid on a page.
//
// Sizes are specified in millimetres, positions are returned in PDF units
// (1/72 inch) with the origin in the lower left corner of the page.
// Markers are placed row by row, starting in the top left corner.
// Below every marker there is room for a one-line text label.
package layout

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/pdf"
)

// PointsPerMM is the number of PDF units in one millimetre.
const PointsPerMM = 72 / 25.4

// Spacing of the grid, in millimetres.
const (
	// GapX is the horizontal space added to the right of every marker.
	GapX = 5.0

	// GapY is the vertical space added below every marker.
	// This leaves room for the label.
	GapY = 10.0

	// LabelDrop is the distance from the bottom edge of a marker to the
	// baseline of its label.
	LabelDrop = 3.0
)

// MaxPaperSize is the largest supported page dimension, in millimetres.
// This corresponds to the limit of 14400 PDF units for page sizes.
const MaxPaperSize = 14400 / PointsPerMM

// LabelShift is the distance, in PDF units, by which a label starts to the
// left of the centre of its marker.
const LabelShift = 10.0

var (
	// ErrInvalidSize is returned when a marker or paper size is not a
	// positive, finite number, or when the paper exceeds [MaxPaperSize].
	ErrInvalidSize = errors.New("invalid size")

	// ErrNoRoom is returned when not even a single marker fits on the page.
	ErrNoRoom = errors.New("marker does not fit on the page")
)

// Grid describes the placement of markers on a page.
type Grid struct {
	Paper Paper

	// MarkerSize is the edge length of a marker in millimetres.
	MarkerSize float64

	Cols, Rows int
}

// Cell is the position of one marker on the page.
// All coordinates are in PDF units.
type Cell struct {
	Index    int
	Row, Col int

	// X and Y give the lower left corner of the marker.
	X, Y float64

	// Size is the edge length of the marker.
	Size float64

	// LabelX and LabelY give the start of the label baseline.
	LabelX, LabelY float64
}

// New computes the grid for markers of the given edge length (in mm) on
// the given paper.
func New(paper Paper, markerSize float64) (*Grid, error) {
	if !paper.valid() {
		return nil, fmt.Errorf("%w: paper %s", ErrInvalidSize, paper)
	}
	if !positive(markerSize) {
		return nil, fmt.Errorf("%w: marker size %g", ErrInvalidSize, markerSize)
	}

	g := &Grid{
		Paper:      paper,
		MarkerSize: markerSize,
		Cols:       int(math.Floor(paper.Width / (markerSize + GapX))),
		Rows:       int(math.Floor(paper.Height / (markerSize + GapY))),
	}
	if g.Count() == 0 {
		return nil, fmt.Errorf("%w: %gmm marker on %smm paper",
			ErrNoRoom, markerSize, paper)
	}
	return g, nil
}

// Count returns the number of markers on the page.
func (g *Grid) Count() int {
	return g.Cols * g.Rows
}

// Cell returns the position of marker i.
// The function panics if i is not in the range [0, g.Count()).
func (g *Grid) Cell(i int) Cell {
	if i < 0 || i >= g.Count() {
		panic(fmt.Sprintf("layout: cell index %d out of range [0, %d)", i, g.Count()))
	}

	row := i / g.Cols
	col := i % g.Cols
	x := float64(col) * (g.MarkerSize + GapX) * PointsPerMM
	y := (g.Paper.Height - float64(row+1)*(g.MarkerSize+GapY)) * PointsPerMM

	return Cell{
		Index:  i,
		Row:    row,
		Col:    col,
		X:      x,
		Y:      y,
		Size:   g.MarkerSize * PointsPerMM,
		LabelX: x + g.MarkerSize/2*PointsPerMM - LabelShift,
		LabelY: y - LabelDrop*PointsPerMM,
	}
}

// Cells iterates over all cells in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range g.Count() {
			if !yield(g.Cell(i)) {
				return
			}
		}
	}
}

// PageSize returns the media box for the page, in PDF units.
func (g *Grid) PageSize() *pdf.Rectangle {
	return g.Paper.Rect()
}
