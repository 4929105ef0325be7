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

// Command pdf-annot constructs PDF annotation dictionaries for text notes
// and highlights and prints them in PDF syntax.
//
// Usage:
//
//	pdf-annot text --rect 0,0,24,24 --contents "check this" --state review:accepted
//	pdf-annot highlight --rect 72,700,144,712 --quad 72,700,144,700,144,712,72,712
//	pdf-annot file annotations.toml
//
// Settings are read from pdf-annot.toml in the current directory or the user
// configuration directory, from PDFANNOT_* environment variables, and from
// the command line, with later sources taking precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pdf-annot:", err)
		os.Exit(1)
	}
}
