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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/pdf"
)

func TestRectEncode(t *testing.T) {
	cases := []struct {
		in   Rect
		want string
	}{
		{Rect{0, 0, 1, 1}, "[0 0 1 1]"},
		{Rect{10.5, 20, 30, 40.25}, "[10.5 20 30 40.25]"},
		// no normalisation of the corners
		{Rect{5, 6, 1, 2}, "[5 6 1 2]"},
		{Rect{-1, -2, -3, -4}, "[-1 -2 -3 -4]"},
	}
	for _, test := range cases {
		got := pdf.Format(test.in.Encode())
		if got != test.want {
			t.Errorf("%v: expected %s, got %s", test.in, test.want, got)
		}
	}
}

func TestRectEncodeOrder(t *testing.T) {
	r := Rect{LLx: 1, LLy: 2, URx: 3, URy: 4}
	want := pdf.Array{pdf.Number(1), pdf.Number(2), pdf.Number(3), pdf.Number(4)}
	if diff := cmp.Diff(want, r.Encode()); diff != "" {
		t.Errorf("Rect.Encode (-want +got):\n%s", diff)
	}
}

func TestQuadPointsEncode(t *testing.T) {
	q := QuadPoints{8, 7, 6, 5, 4, 3, 2, 1}
	a := q.Encode()
	if len(a) != 8 {
		t.Fatalf("expected 8 elements, got %d", len(a))
	}
	for i := range q {
		if a[i] != pdf.Number(q[i]) {
			t.Errorf("element %d: expected %g, got %v", i, q[i], a[i])
		}
	}
	if got := pdf.Format(a); got != "[8 7 6 5 4 3 2 1]" {
		t.Errorf("wrong rendering %s", got)
	}
}

func TestRectFromGeom(t *testing.T) {
	r := RectFromGeom(rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 4})
	if diff := cmp.Diff(Rect{1, 2, 3, 4}, r); diff != "" {
		t.Errorf("RectFromGeom (-want +got):\n%s", diff)
	}
}

func TestQuadFromRect(t *testing.T) {
	q := QuadFromRect(rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1})
	want := QuadPoints{0, 0, 1, 0, 1, 1, 0, 1}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("QuadFromRect (-want +got):\n%s", diff)
	}
}

func TestQuadPointsRoundTrip(t *testing.T) {
	p := [4]vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}
	q := QuadFromPoints(p)
	if diff := cmp.Diff(QuadPoints{1, 2, 3, 4, 5, 6, 7, 8}, q); diff != "" {
		t.Errorf("QuadFromPoints (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p, q.Points()); diff != "" {
		t.Errorf("Points (-want +got):\n%s", diff)
	}
}
