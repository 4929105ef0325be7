// seehuhn.de/go/pdfannot - construct annotation objects for PDF files
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

package annotation

import (
	"testing"

	"seehuhn.de/go/pdfannot/pdf"
)

func TestFlagsString(t *testing.T) {
	cases := []struct {
		in   Flags
		want string
	}{
		{0, "0"},
		{FlagPrint, "Print"},
		{FlagPrint | FlagNoZoom | FlagNoRotate, "Print|NoZoom|NoRotate"},
		{FlagLockedContents | 1<<12, "LockedContents|0x1000"},
	}
	for _, test := range cases {
		if got := test.in.String(); got != test.want {
			t.Errorf("%d: expected %q, got %q", uint16(test.in), test.want, got)
		}
	}
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"print", "Locked", "NOVIEW"})
	if err != nil {
		t.Fatal(err)
	}
	if f != FlagPrint|FlagLocked|FlagNoView {
		t.Errorf("wrong flags %s", f)
	}

	if _, err := ParseFlags([]string{"print", "glow"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestFlagsEntry(t *testing.T) {
	a := NewText(Rect{0, 0, 1, 1}).
		WithFlags(FlagPrint | FlagNoZoom).
		WithContents("x")
	want := "<</Type /Annot /Subtype /Text /Rect [0 0 1 1] /Contents (x) /F 12>>"
	if got := pdf.Format(a.Encode()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// an explicit zero value is kept
	a = NewText(Rect{}).WithFlags(0)
	if a.Encode().Get("F") != pdf.Integer(0) {
		t.Error("missing /F entry")
	}
}
