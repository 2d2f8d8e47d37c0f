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

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fiducial/layout"
	"seehuhn.de/go/fiducial/marker"
	"seehuhn.de/go/fiducial/sheet"
)

func TestOptions(t *testing.T) {
	type testCase struct {
		name  string
		size  float64
		paper string
		dict  string
		px    int
		want  *sheet.Options // nil means an error is expected
	}
	cases := []testCase{
		{
			name: "defaults", size: 12, paper: "a4", dict: "5x5_250", px: 200,
			want: &sheet.Options{
				Paper:      layout.A4,
				MarkerSize: 12,
				Dictionary: marker.Dict5x5_250,
				Resolution: 200,
			},
		},
		{
			name: "custom", size: 20, paper: "100x150", dict: "4x4_50", px: 60,
			want: &sheet.Options{
				Paper:      layout.Paper{Width: 100, Height: 150},
				MarkerSize: 20,
				Dictionary: marker.Dict4x4_50,
				Resolution: 60,
			},
		},
		{name: "zero size", size: 0, paper: "a4", dict: "5x5_250", px: 200},
		{name: "zero resolution", size: 12, paper: "a4", dict: "5x5_250", px: 0},
		{name: "bad paper", size: 12, paper: "b7", dict: "5x5_250", px: 200},
		{name: "bad dictionary", size: 12, paper: "a4", dict: "9x9_10", px: 200},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			*sizeArg, *paperArg, *dictArg, *pxArg = c.size, c.paper, c.dict, c.px

			got, err := options()
			if c.want == nil {
				if err == nil {
					t.Fatalf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("options (-want +got):\n%s", diff)
			}
		})
	}
}
