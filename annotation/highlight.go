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

import "seehuhn.de/go/pdfannot/pdf"

// PDF 2.0 sections: 12.5.6.10

// Highlight marks a region of the page, normally a run of text, as
// highlighted.
type Highlight struct {
	// QuadPoints (required) gives the corners of the highlighted region.
	QuadPoints QuadPoints
}

var _ Type = Highlight{}

// AnnotationType returns "Highlight".
// This implements the [Type] interface.
func (h Highlight) AnnotationType() pdf.Name {
	return "Highlight"
}

// Encode returns the dictionary entries specific to highlight annotations,
// namely /Subtype and /QuadPoints.
func (h Highlight) Encode() *pdf.Dict {
	dict := pdf.NewDict()
	dict.Set("Subtype", h.AnnotationType())
	dict.Set("QuadPoints", h.QuadPoints.Encode())
	return dict
}

func (h Highlight) asObject() pdf.Object {
	return h.Encode()
}
