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

// Package annotfile reads descriptions of annotations from TOML files.
//
// A file contains a list of [[annotation]] tables:
//
//	[[annotation]]
//	type = "text"
//	rect = [0, 0, 24, 24]
//	contents = "Please check this paragraph."
//	open = true
//	icon = "Comment"
//	state = "review:accepted"
//
//	[[annotation]]
//	type = "highlight"
//	rect = [72, 700, 144, 712]
//	quad = [72, 700, 144, 700, 144, 712, 72, 712]
//	nm = "hl-1"
//	flags = ["print", "nozoom"]
//
// The keys open, icon and state are only allowed for text annotations,
// and quad is required for (and only allowed for) highlights.
package annotfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/pdfannot/annotation"
	"seehuhn.de/go/pdfannot/optional"
)

// Options control how annotation descriptions are interpreted.
type Options struct {
	// DefaultIcon, if non-empty, is used for text annotations which
	// do not specify an icon.
	DefaultIcon string
}

// Error describes a problem with one of the annotations in a file.
type Error struct {
	// Index is the 1-based position of the annotation in the file.
	Index int

	// Field is the key which caused the problem.
	Field string

	Err error
}

func (err *Error) Error() string {
	return "annotation " + strconv.Itoa(err.Index) + ": " + err.Field + ": " + err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

type file struct {
	Annotations []entry `toml:"annotation"`
}

type entry struct {
	Type     string   `toml:"type"`
	Rect     []any    `toml:"rect"`
	Quad     []any    `toml:"quad"`
	Contents *string  `toml:"contents"`
	NM       *string  `toml:"nm"`
	Open     *bool    `toml:"open"`
	Icon     *string  `toml:"icon"`
	State    *string  `toml:"state"`
	Flags    []string `toml:"flags"`
}

// Decode reads all annotations described in r.
// If opt is nil, default options are used.
func Decode(r io.Reader, opt *Options) ([]annotation.Annotation, error) {
	if opt == nil {
		opt = &Options{}
	}

	var f file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("annotfile: %w", err)
	}

	res := make([]annotation.Annotation, 0, len(f.Annotations))
	for i := range f.Annotations {
		a, err := f.Annotations[i].convert(i+1, opt)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (e *entry) convert(idx int, opt *Options) (annotation.Annotation, error) {
	var zero annotation.Annotation
	fail := func(field string, err error) (annotation.Annotation, error) {
		return zero, &Error{Index: idx, Field: field, Err: err}
	}

	if e.Rect == nil {
		return fail("rect", errMissing)
	}
	coords, err := numbers(e.Rect, 4)
	if err != nil {
		return fail("rect", err)
	}
	rect := annotation.Rect{LLx: coords[0], LLy: coords[1], URx: coords[2], URy: coords[3]}

	var subtype annotation.Type
	switch strings.ToLower(e.Type) {
	case "text":
		if e.Quad != nil {
			return fail("quad", errOnlyFor("highlight"))
		}
		text := annotation.Text{}
		if e.Open != nil {
			text.Open = optional.NewBool(*e.Open)
		}
		if e.Icon != nil {
			text.Icon = optional.NewString(*e.Icon)
		} else if opt.DefaultIcon != "" {
			text.Icon = optional.NewString(opt.DefaultIcon)
		}
		if e.State != nil {
			state, err := annotation.ParseStateModel(*e.State)
			if err != nil {
				return fail("state", err)
			}
			text.State = state
		}
		subtype = text
	case "highlight":
		switch {
		case e.Open != nil:
			return fail("open", errOnlyFor("text"))
		case e.Icon != nil:
			return fail("icon", errOnlyFor("text"))
		case e.State != nil:
			return fail("state", errOnlyFor("text"))
		case e.Quad == nil:
			return fail("quad", errMissing)
		}
		qq, err := numbers(e.Quad, 8)
		if err != nil {
			return fail("quad", err)
		}
		var quad annotation.QuadPoints
		copy(quad[:], qq)
		subtype = annotation.Highlight{QuadPoints: quad}
	case "":
		return fail("type", errMissing)
	default:
		return fail("type", fmt.Errorf("unsupported annotation type %q", e.Type))
	}

	a := annotation.New(rect, subtype)
	if e.Contents != nil {
		a = a.WithContents(*e.Contents)
	}
	if e.NM != nil {
		a = a.WithUniqueName(*e.NM)
	}
	if e.Flags != nil {
		flags, err := annotation.ParseFlags(e.Flags)
		if err != nil {
			return fail("flags", err)
		}
		a = a.WithFlags(flags)
	}
	return a, nil
}

// numbers converts a TOML array to exactly n numbers.
func numbers(vals []any, n int) ([]float64, error) {
	if len(vals) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(vals))
	}
	res := make([]float64, n)
	for i, v := range vals {
		switch x := v.(type) {
		case int64:
			res[i] = float64(x)
		case float64:
			res[i] = x
		default:
			return nil, fmt.Errorf("element %d is not a number", i+1)
		}
	}
	return res, nil
}
