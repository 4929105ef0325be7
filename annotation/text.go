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
	"seehuhn.de/go/pdfannot/optional"
	"seehuhn.de/go/pdfannot/pdf"
)

// PDF 2.0 sections: 12.5.6.4

// Text represents a "sticky note" attached to a point in the document.
// Text annotations are displayed as icons on the page, which can be clicked
// to reveal the annotation's contents in a pop-up window.
//
// All fields are optional.  Unset fields are omitted from the annotation
// dictionary.
type Text struct {
	// Open specifies whether the pop-up window should be initially open.
	Open optional.Bool

	// Icon is the name of an icon that is used in displaying the annotation.
	// The standard names are provided as constants, e.g. [IconNote].
	// Viewers may support additional names.
	//
	// This corresponds to the /Name entry in the PDF annotation dictionary.
	Icon optional.String

	// State, if non-nil, gives the state of the annotation.
	//
	// This corresponds to the /StateModel and /State entries in the PDF
	// annotation dictionary.
	State StateModel
}

var _ Type = Text{}

// Standard icon names for text annotations.
const (
	IconComment      = "Comment"
	IconKey          = "Key"
	IconNote         = "Note"
	IconHelp         = "Help"
	IconNewParagraph = "NewParagraph"
	IconParagraph    = "Paragraph"
	IconInsert       = "Insert"
)

// AnnotationType returns "Text".
// This implements the [Type] interface.
func (t Text) AnnotationType() pdf.Name {
	return "Text"
}

// Encode returns the dictionary entries specific to text annotations:
// /Subtype, followed by /Open, /Name, /StateModel and /State where set.
func (t Text) Encode() *pdf.Dict {
	dict := pdf.NewDict()
	dict.Set("Subtype", t.AnnotationType())

	if open, ok := t.Open.Get(); ok {
		dict.Set("Open", pdf.Bool(open))
	}
	if icon, ok := t.Icon.Get(); ok {
		dict.Set("Name", pdf.Name(icon))
	}
	if t.State != nil {
		dict.Merge(t.State.Encode())
	}

	return dict
}

func (t Text) asObject() pdf.Object {
	return t.Encode()
}
