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

package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	const path = "seehuhn.de/go/fiducial"
	cases := []struct {
		version  string
		settings map[string]string
		want     string
	}{
		{"v0.1.0", nil, path + " v0.1.0"},
		{"(devel)", map[string]string{"vcs.revision": "0123456789abcdef"}, path + " 01234567"},
		{"(devel)", map[string]string{"vcs.revision": "0123456789abcdef", "vcs.modified": "true"}, path + " 01234567+dirty"},
		{"", map[string]string{"vcs.revision": "abc"}, path + " abc"},
		{"(devel)", nil, ""},
	}
	for _, c := range cases {
		info := &debug.BuildInfo{}
		info.Main.Path = path
		info.Main.Version = c.version
		for k, v := range c.settings {
			info.Settings = append(info.Settings, debug.BuildSetting{Key: k, Value: v})
		}
		if got := describe(info); got != c.want {
			t.Errorf("describe(%q, %v) = %q, want %q", c.version, c.settings, got, c.want)
		}
	}
}

func TestShort(t *testing.T) {
	s := Short("aruco-sheet")
	if !strings.HasPrefix(s, "aruco-sheet") {
		t.Errorf("Short() = %q", s)
	}
}
