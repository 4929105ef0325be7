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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"

	"seehuhn.de/go/pdfannot/annotation"
	"seehuhn.de/go/pdfannot/pdf"
)

// write prints the annotation dictionaries to w, one per annotation.
func (a *app) write(w io.Writer, annots []annotation.Annotation) error {
	pretty := usePretty(a.v.GetString(cfgFormat), w)
	uniqueNames := a.v.GetBool(cfgUniqueNames)

	for _, annot := range annots {
		if _, hasName := annot.UniqueName(); uniqueNames && !hasName {
			annot = annot.WithUniqueName(uuid.NewString())
		}

		dict := annot.Encode()
		var s string
		if pretty {
			s = prettyDict(dict)
		} else {
			s = pdf.Format(dict)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// usePretty decides whether the multi-line output format is used.
// In "auto" mode, this is the case when writing to a terminal.
func usePretty(format string, w io.Writer) bool {
	switch format {
	case formatPretty:
		return true
	case formatCompact:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// prettyDict formats a dictionary with one entry per line.
func prettyDict(dict *pdf.Dict) string {
	b := &strings.Builder{}
	b.WriteString("<<\n")
	for key, val := range dict.All() {
		fmt.Fprintf(b, "  %s %s\n", pdf.Format(key), pdf.Format(val))
	}
	b.WriteString(">>")
	return b.String()
}
