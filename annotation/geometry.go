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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfannot/pdf"
)

// Rect gives the location of an annotation on the page, in default user
// space units.
//
// The coordinates are written exactly as given.  In particular, no check is
// made that the lower-left corner is below and to the left of the upper-right
// corner.  The coordinates must be finite: an annotation with NaN or
// infinite coordinates cannot be written to a PDF file, and formatting its
// dictionary with [pdf.Format] panics.
type Rect struct {
	LLx, LLy, URx, URy float64
}

// RectFromGeom converts a rectangle from the geometry package.
func RectFromGeom(r rect.Rect) Rect {
	return Rect{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy}
}

// Encode returns the PDF array [llx lly urx ury].
func (r Rect) Encode() pdf.Array {
	return pdf.NumberArray(r.LLx, r.LLy, r.URx, r.URy)
}

// QuadPoints describes a quadrilateral by the coordinates of its four
// corners, in the order x1 y1 x2 y2 x3 y3 x4 y4.
//
// The values are written in the given order, and the shape of the
// quadrilateral is not checked.  As for [Rect], all values must be finite.
type QuadPoints [8]float64

// QuadFromPoints constructs QuadPoints from four corner points.
func QuadFromPoints(p [4]vec.Vec2) QuadPoints {
	var q QuadPoints
	for i, v := range p {
		q[2*i] = v.X
		q[2*i+1] = v.Y
	}
	return q
}

// QuadFromRect returns the corners of r in counter-clockwise order,
// starting at the lower left corner.
func QuadFromRect(r rect.Rect) QuadPoints {
	return QuadPoints{
		r.LLx, r.LLy,
		r.URx, r.LLy,
		r.URx, r.URy,
		r.LLx, r.URy,
	}
}

// Points returns the four corners of the quadrilateral.
func (q QuadPoints) Points() [4]vec.Vec2 {
	var p [4]vec.Vec2
	for i := range p {
		p[i] = vec.Vec2{X: q[2*i], Y: q[2*i+1]}
	}
	return p
}

// Encode returns the eight coordinates as a PDF array.
func (q QuadPoints) Encode() pdf.Array {
	return pdf.NumberArray(q[:]...)
}
