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

package marker

import (
	"fmt"
	"strings"
)

// Dictionary identifies one of the predefined marker dictionaries.
type Dictionary int

// The predefined dictionaries.
// The names follow the naming used by OpenCV, for example Dict5x5_250 is
// a set of 250 markers with 5x5 data bits each.
const (
	Dict4x4_50 Dictionary = iota + 1
	Dict4x4_100
	Dict4x4_250
	Dict4x4_1000
	Dict5x5_50
	Dict5x5_100
	Dict5x5_250
	Dict5x5_1000
	Dict6x6_50
	Dict6x6_100
	Dict6x6_250
	Dict6x6_1000
	Dict7x7_50
	Dict7x7_100
	Dict7x7_250
	Dict7x7_1000
	DictArucoOriginal
	DictAprilTag16h5
	DictAprilTag25h9
	DictAprilTag36h10
	DictAprilTag36h11
)

// DefaultDictionary is used when no dictionary is specified.
const DefaultDictionary = Dict5x5_250

type dictInfo struct {
	name string
	bits int
	size int
}

var dictionaries = map[Dictionary]dictInfo{
	Dict4x4_50:        {"4x4_50", 4, 50},
	Dict4x4_100:       {"4x4_100", 4, 100},
	Dict4x4_250:       {"4x4_250", 4, 250},
	Dict4x4_1000:      {"4x4_1000", 4, 1000},
	Dict5x5_50:        {"5x5_50", 5, 50},
	Dict5x5_100:       {"5x5_100", 5, 100},
	Dict5x5_250:       {"5x5_250", 5, 250},
	Dict5x5_1000:      {"5x5_1000", 5, 1000},
	Dict6x6_50:        {"6x6_50", 6, 50},
	Dict6x6_100:       {"6x6_100", 6, 100},
	Dict6x6_250:       {"6x6_250", 6, 250},
	Dict6x6_1000:      {"6x6_1000", 6, 1000},
	Dict7x7_50:        {"7x7_50", 7, 50},
	Dict7x7_100:       {"7x7_100", 7, 100},
	Dict7x7_250:       {"7x7_250", 7, 250},
	Dict7x7_1000:      {"7x7_1000", 7, 1000},
	DictArucoOriginal: {"original", 5, 1024},
	DictAprilTag16h5:  {"apriltag_16h5", 4, 30},
	DictAprilTag25h9:  {"apriltag_25h9", 5, 35},
	DictAprilTag36h10: {"apriltag_36h10", 6, 2320},
	DictAprilTag36h11: {"apriltag_36h11", 6, 587},
}

// Dictionaries lists all predefined dictionaries.
var Dictionaries = []Dictionary{
	Dict4x4_50, Dict4x4_100, Dict4x4_250, Dict4x4_1000,
	Dict5x5_50, Dict5x5_100, Dict5x5_250, Dict5x5_1000,
	Dict6x6_50, Dict6x6_100, Dict6x6_250, Dict6x6_1000,
	Dict7x7_50, Dict7x7_100, Dict7x7_250, Dict7x7_1000,
	DictArucoOriginal,
	DictAprilTag16h5, DictAprilTag25h9, DictAprilTag36h10, DictAprilTag36h11,
}

// IsValid reports whether d is one of the predefined dictionaries.
func (d Dictionary) IsValid() bool {
	_, ok := dictionaries[d]
	return ok
}

func (d Dictionary) String() string {
	if info, ok := dictionaries[d]; ok {
		return info.name
	}
	return fmt.Sprintf("Dictionary(%d)", int(d))
}

// Bits returns the number of data bits along one edge of a marker,
// not counting the border.
func (d Dictionary) Bits() int {
	return dictionaries[d].bits
}

// Len returns the number of markers in the dictionary.
// Valid marker IDs are 0, ..., Len()-1.
func (d Dictionary) Len() int {
	return dictionaries[d].size
}

// ParseDictionary converts a dictionary name like "5x5_250" into a
// Dictionary.  The OpenCV spelling "DICT_5X5_250" is also accepted.
func ParseDictionary(s string) (Dictionary, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "dict_")
	if key == "aruco_original" {
		key = "original"
	}
	for _, d := range Dictionaries {
		if dictionaries[d].name == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown marker dictionary %q", s)
}
