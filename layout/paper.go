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

package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf"
)

// Paper is a page size, given in millimetres.
type Paper struct {
	Width, Height float64
}

// Common paper sizes.
var (
	A3     = Paper{Width: 297, Height: 420}
	A4     = Paper{Width: 210, Height: 297}
	A5     = Paper{Width: 148, Height: 210}
	Letter = Paper{Width: 215.9, Height: 279.4}
	Legal  = Paper{Width: 215.9, Height: 355.6}
)

var paperNames = map[string]Paper{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// ParsePaper converts a paper name like "a4" or "letter", or an explicit
// size in millimetres like "210x297", into a Paper.
func ParsePaper(s string) (Paper, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := paperNames[key]; ok {
		return p, nil
	}

	wStr, hStr, ok := strings.Cut(key, "x")
	if !ok {
		return Paper{}, fmt.Errorf("unknown paper size %q", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(wStr), 64)
	if err != nil {
		return Paper{}, fmt.Errorf("invalid paper width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hStr), 64)
	if err != nil {
		return Paper{}, fmt.Errorf("invalid paper height in %q: %w", s, err)
	}

	p := Paper{Width: w, Height: h}
	if !p.valid() {
		return Paper{}, fmt.Errorf("%w: paper %q", ErrInvalidSize, s)
	}
	return p, nil
}

// String returns the paper size in the form accepted by [ParsePaper].
func (p Paper) String() string {
	return strconv.FormatFloat(p.Width, 'f', -1, 64) + "x" +
		strconv.FormatFloat(p.Height, 'f', -1, 64)
}

// Rect returns the paper size as a PDF rectangle, in PDF units.
func (p Paper) Rect() *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: p.Width * PointsPerMM,
		URy: p.Height * PointsPerMM,
	}
}

func (p Paper) valid() bool {
	return positive(p.Width) && positive(p.Height) &&
		p.Width <= MaxPaperSize && p.Height <= MaxPaperSize
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
