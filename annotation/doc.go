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

// Package annotation constructs PDF annotation dictionaries for text notes
// and highlights.
//
// An [Annotation] combines a location on the page ([Rect]) with a subtype,
// either [Text] or [Highlight], and optional contents.  The method
// [Annotation.Encode] turns this into a [pdf.Dict], with the entries in a
// fixed order:
//
//	a := annotation.NewText(annotation.Rect{URx: 1, URy: 1}).
//		WithContents("The quick brown fox ate the lazy mouse")
//	fmt.Println(pdf.Format(a.Encode()))
//
// prints
//
//	<</Type /Annot /Subtype /Text /Rect [0 0 1 1] /Contents (The quick brown fox ate the lazy mouse)>>
//
// Coordinates are not validated.  All conversions in this package are pure
// functions of their input.
package annotation
