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

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfannot/pdf"
)

func TestHighlightEncode(t *testing.T) {
	h := Highlight{QuadPoints: QuadPoints{0, 0, 1, 0, 1, 1, 0, 1}}
	dict := h.Encode()

	if diff := cmp.Diff([]pdf.Name{"Subtype", "QuadPoints"}, dict.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	want := "<</Subtype /Highlight /QuadPoints [0 0 1 0 1 1 0 1]>>"
	if got := pdf.Format(dict); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHighlightZeroQuad(t *testing.T) {
	// degenerate quadrilaterals are written as given
	dict := Highlight{}.Encode()
	want := "<</Subtype /Highlight /QuadPoints [0 0 0 0 0 0 0 0]>>"
	if got := pdf.Format(dict); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
