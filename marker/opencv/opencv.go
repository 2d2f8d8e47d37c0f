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

// Package opencv renders fiducial markers using the aruco module of OpenCV.
//
// This package uses cgo and needs the OpenCV libraries at build time,
// see https://gocv.io/getting-started/ for installation instructions.
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"seehuhn.de/go/fiducial/marker"
)

// BorderBits is the width of the black border around the data bits,
// in modules.
const BorderBits = 1

var codes = map[marker.Dictionary]gocv.ArucoDictionaryCode{
	marker.Dict4x4_50:        gocv.ArucoDict4x4_50,
	marker.Dict4x4_100:       gocv.ArucoDict4x4_100,
	marker.Dict4x4_250:       gocv.ArucoDict4x4_250,
	marker.Dict4x4_1000:      gocv.ArucoDict4x4_1000,
	marker.Dict5x5_50:        gocv.ArucoDict5x5_50,
	marker.Dict5x5_100:       gocv.ArucoDict5x5_100,
	marker.Dict5x5_250:       gocv.ArucoDict5x5_250,
	marker.Dict5x5_1000:      gocv.ArucoDict5x5_1000,
	marker.Dict6x6_50:        gocv.ArucoDict6x6_50,
	marker.Dict6x6_100:       gocv.ArucoDict6x6_100,
	marker.Dict6x6_250:       gocv.ArucoDict6x6_250,
	marker.Dict6x6_1000:      gocv.ArucoDict6x6_1000,
	marker.Dict7x7_50:        gocv.ArucoDict7x7_50,
	marker.Dict7x7_100:       gocv.ArucoDict7x7_100,
	marker.Dict7x7_250:       gocv.ArucoDict7x7_250,
	marker.Dict7x7_1000:      gocv.ArucoDict7x7_1000,
	marker.DictArucoOriginal: gocv.ArucoDictArucoOriginal,
	marker.DictAprilTag16h5:  gocv.ArucoDictAprilTag_16h5,
	marker.DictAprilTag25h9:  gocv.ArucoDictAprilTag_25h9,
	marker.DictAprilTag36h10: gocv.ArucoDictAprilTag_36h10,
	marker.DictAprilTag36h11: gocv.ArucoDictAprilTag_36h11,
}

// Generator renders markers using OpenCV.
// The zero value is ready to use.
type Generator struct{}

var _ marker.Generator = Generator{}

// Generate implements the [marker.Generator] interface.
// The returned image is an [*image.Gray].
func (Generator) Generate(dict marker.Dictionary, id, sidePixels int) (image.Image, error) {
	code, ok := codes[dict]
	if !ok {
		return nil, fmt.Errorf("dictionary %s not supported by OpenCV", dict)
	}
	if err := marker.CheckID(dict, id); err != nil {
		return nil, err
	}
	if sidePixels < marker.MinPixels(dict) {
		return nil, fmt.Errorf("marker resolution %d too small for dictionary %s",
			sidePixels, dict)
	}

	mat := gocv.NewMat()
	defer mat.Close()

	err := gocv.ArucoGenerateImageMarker(code, id, sidePixels, mat, BorderBits)
	if err != nil {
		return nil, fmt.Errorf("marker %d: %w", id, err)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("marker %d: %w", id, err)
	}
	return img, nil
}
