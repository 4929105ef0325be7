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
	"fmt"

	"seehuhn.de/go/pdfannot/optional"
	"seehuhn.de/go/pdfannot/pdf"
)

// PDF 2.0 sections: 12.5.2

// Type is the subtype-specific part of an annotation.
// The implementations are [Text] and [Highlight].
type Type interface {
	// AnnotationType returns the value of the /Subtype entry,
	// e.g. "Text" or "Highlight".
	AnnotationType() pdf.Name

	// asObject returns the subtype-specific dictionary entries.
	asObject() pdf.Object
}

// Annotation is a PDF annotation which is ready to be converted into an
// annotation dictionary.
//
// Annotation values are immutable: the With... methods return a modified
// copy and leave the receiver unchanged.  Use [New], [NewText] or
// [NewHighlight] to construct an Annotation.
type Annotation struct {
	subtype    Type
	rect       Rect
	contents   optional.String
	uniqueName optional.String
	flags      optional.Value[Flags]
}

// New returns an annotation with the given location and subtype.
// New panics if subtype is nil, or is a nil pointer to a subtype.
func New(rect Rect, subtype Type) Annotation {
	checkSubtype(subtype)
	return Annotation{
		subtype: subtype,
		rect:    rect,
	}
}

// NewText returns a text annotation at the given location,
// with no optional fields set.
func NewText(rect Rect) Annotation {
	return New(rect, Text{})
}

// NewHighlight returns a highlight annotation covering the given
// quadrilateral.
func NewHighlight(rect Rect, quad QuadPoints) Annotation {
	return New(rect, Highlight{QuadPoints: quad})
}

// WithContents returns a copy of a with the text to be displayed for the
// annotation set to contents.
func (a Annotation) WithContents(contents string) Annotation {
	a.contents = optional.NewString(contents)
	return a
}

// WithUniqueName returns a copy of a with the annotation name set.
// This is a string which uniquely identifies the annotation among all
// annotations on its page.
func (a Annotation) WithUniqueName(name string) Annotation {
	a.uniqueName = optional.NewString(name)
	return a
}

// WithFlags returns a copy of a with the annotation flags set.
func (a Annotation) WithFlags(flags Flags) Annotation {
	a.flags = optional.New(flags)
	return a
}

// WithSubtype returns a copy of a with the subtype replaced.
// WithSubtype panics if subtype is nil, or is a nil pointer to a subtype.
func (a Annotation) WithSubtype(subtype Type) Annotation {
	checkSubtype(subtype)
	a.subtype = subtype
	return a
}

// checkSubtype panics if no subtype data is available.
// Since the methods of Text and Highlight have value receivers, pointers
// to these types also implement Type.
func checkSubtype(subtype Type) {
	isNil := false
	switch s := subtype.(type) {
	case nil:
		isNil = true
	case *Text:
		isNil = s == nil
	case *Highlight:
		isNil = s == nil
	}
	if isNil {
		panic(fmt.Sprintf("annotation: nil subtype (%T)", subtype))
	}
}

// Subtype returns the subtype-specific part of the annotation.
func (a Annotation) Subtype() Type {
	return a.subtype
}

// Rect returns the location of the annotation on the page.
func (a Annotation) Rect() Rect {
	return a.rect
}

// Contents returns the text to be displayed for the annotation,
// and whether it has been set.
func (a Annotation) Contents() (string, bool) {
	return a.contents.Get()
}

// UniqueName returns the annotation name, and whether it has been set.
func (a Annotation) UniqueName() (string, bool) {
	return a.uniqueName.Get()
}

// Flags returns the annotation flags, and whether they have been set.
func (a Annotation) Flags() (Flags, bool) {
	return a.flags.Get()
}

// Encode converts the annotation into a PDF annotation dictionary.
//
// The entries are written in the order /Type, /Subtype, the subtype-specific
// entries, /Rect, /Contents, /NM and /F.  The last three are omitted if not
// set.  /Rect is written after the subtype entries, so that it can never be
// replaced by a subtype.
//
// Encode does not modify a and always returns the same result for the same
// annotation.  Encode panics if a has no subtype, which can only happen for
// the zero Annotation.
func (a Annotation) Encode() *pdf.Dict {
	if a.subtype == nil {
		panic("annotation: missing subtype")
	}

	dict := pdf.NewDict()
	dict.Set("Type", pdf.Name("Annot"))

	obj := a.subtype.asObject()
	inner, ok := obj.(*pdf.Dict)
	if !ok || inner == nil {
		panic(fmt.Sprintf("annotation: %s subtype encoded as %T, not a dictionary",
			a.subtype.AnnotationType(), obj))
	}
	dict.Merge(inner)

	dict.Set("Rect", a.rect.Encode())
	if contents, ok := a.contents.Get(); ok {
		dict.Set("Contents", pdf.TextString(contents))
	}
	if name, ok := a.uniqueName.Get(); ok {
		dict.Set("NM", pdf.TextString(name))
	}
	if flags, ok := a.flags.Get(); ok {
		dict.Set("F", pdf.Integer(flags))
	}

	return dict
}
