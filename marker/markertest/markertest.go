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

// Package markertest provides a marker generator for use in tests.
//
// The generated patterns are not valid fiducial markers.  Data bit k of
// marker id (counting row by row from the top left) is black if bit k
// of id is set.
package markertest

import (
	"image"
	"image/color"

	"seehuhn.de/go/fiducial/marker"
)

// Call records the arguments of one call to Generate.
type Call struct {
	Dict       marker.Dictionary
	ID         int
	SidePixels int
}

// Generator is a [marker.Generator] which records all calls.
type Generator struct {
	Calls []Call

	// Fail, if non-nil, maps marker IDs to errors returned for these IDs.
	Fail map[int]error

	// Modules, if true, makes Generate ignore sidePixels and return an
	// image with one pixel per module.
	Modules bool
}

var _ marker.Generator = (*Generator)(nil)

// Generate implements the [marker.Generator] interface.
func (g *Generator) Generate(dict marker.Dictionary, id, sidePixels int) (image.Image, error) {
	g.Calls = append(g.Calls, Call{Dict: dict, ID: id, SidePixels: sidePixels})

	if err := g.Fail[id]; err != nil {
		return nil, err
	}
	if err := marker.CheckID(dict, id); err != nil {
		return nil, err
	}

	n := dict.Bits() + 2
	side := sidePixels
	if g.Modules {
		side = n
	}

	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := range side {
		for x := range side {
			if IsBlack(dict, id, x*n/side, y*n/side) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img, nil
}

// IsBlack reports whether the module in column col and row row of the
// test pattern for marker id is black.  Row and column include the
// border.
func IsBlack(dict marker.Dictionary, id, col, row int) bool {
	n := dict.Bits()
	if col == 0 || row == 0 || col > n || row > n {
		return true
	}
	k := (row-1)*n + (col - 1)
	return k < 63 && id&(1<<k) != 0
}
