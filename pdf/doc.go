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

// Package pdf implements the generic PDF object model used to express
// annotation dictionaries before they are written to a file.
//
// The following types implement the [Object] interface:
//
//	Array
//	Bool
//	*Dict
//	Integer
//	Name
//	Number
//	Real
//	String
//
// Unlike a plain Go map, a [Dict] remembers the order in which keys were
// added.  This order is used when the dictionary is written, so that the
// output of [Format] is deterministic and reflects the order of construction:
//
//	dict := pdf.NewDict()
//	dict.Set("Type", pdf.Name("Annot"))
//	dict.Set("Rect", pdf.NumberArray(0, 0, 1, 1))
//	fmt.Println(pdf.Format(dict)) // <</Type /Annot /Rect [0 0 1 1]>>
package pdf
