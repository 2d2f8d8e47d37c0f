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

// Package marker describes square fiducial markers and the dictionaries
// they are taken from.
//
// The bit patterns of the markers are not computed here.  A [Generator],
// for example the OpenCV based one in the opencv subpackage, renders
// individual markers as bitmaps.
package marker

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrInvalidID is returned when a marker ID is outside the range of the
// dictionary.
var ErrInvalidID = errors.New("invalid marker ID")

// Generator renders fiducial markers.
type Generator interface {
	// Generate returns an image of marker id from the given dictionary.
	// The image is sidePixels wide and high and includes a black border
	// of one module around the data bits.
	Generate(dict Dictionary, id, sidePixels int) (image.Image, error)
}

// CheckID returns an error if id is not a valid marker ID for dict.
func CheckID(dict Dictionary, id int) error {
	if !dict.IsValid() {
		return fmt.Errorf("unknown marker dictionary %s", dict)
	}
	if id < 0 || id >= dict.Len() {
		return fmt.Errorf("%w: %d not in [0, %d) for dictionary %s",
			ErrInvalidID, id, dict.Len(), dict)
	}
	return nil
}

// MinPixels returns the smallest bitmap size which can represent the
// markers of dict, including the border.
func MinPixels(dict Dictionary) int {
	return dict.Bits() + 2
}

// Normalize scales a marker bitmap to exactly sidePixels by sidePixels
// and converts every pixel to either pure black or pure white.
// Nearest-neighbour sampling is used, so that module edges stay sharp.
func Normalize(img image.Image, sidePixels int) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("empty marker image")
	}
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("marker image is not square (%dx%d)", b.Dx(), b.Dy())
	}
	if sidePixels <= 0 {
		return nil, fmt.Errorf("invalid marker resolution %d", sidePixels)
	}

	dst := image.NewGray(image.Rect(0, 0, sidePixels, sidePixels))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	for i, y := range dst.Pix {
		if y < 128 {
			dst.Pix[i] = 0
		} else {
			dst.Pix[i] = 255
		}
	}
	return dst, nil
}
