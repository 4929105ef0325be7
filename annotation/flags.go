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
	"strings"
)

// Flags specifies how a viewer should treat an annotation.
// This corresponds to the /F entry in the annotation dictionary.
type Flags uint16

// Annotation flags.  The PDF version which introduced each flag is given in
// parentheses.
const (
	// FlagInvisible: do not display the annotation if its type is not
	// supported by the viewer.
	FlagInvisible Flags = 1 << 0

	// FlagHidden (PDF 1.2): never display or print the annotation.
	FlagHidden Flags = 1 << 1

	// FlagPrint (PDF 1.2): print the annotation when the page is printed.
	FlagPrint Flags = 1 << 2

	// FlagNoZoom (PDF 1.3): do not scale the icon with the page magnification.
	FlagNoZoom Flags = 1 << 3

	// FlagNoRotate (PDF 1.3): do not rotate the icon with the page.
	FlagNoRotate Flags = 1 << 4

	// FlagNoView (PDF 1.3): do not display the annotation on screen.
	FlagNoView Flags = 1 << 5

	// FlagReadOnly (PDF 1.3): do not allow the user to interact with the
	// annotation.
	FlagReadOnly Flags = 1 << 6

	// FlagLocked (PDF 1.4): do not allow the annotation to be deleted or its
	// properties to be modified.
	FlagLocked Flags = 1 << 7

	// FlagToggleNoView (PDF 1.5): invert FlagNoView for selection and
	// mouse hovering.
	FlagToggleNoView Flags = 1 << 8

	// FlagLockedContents (PDF 1.7): do not allow the contents to be modified.
	FlagLockedContents Flags = 1 << 9
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagInvisible, "Invisible"},
	{FlagHidden, "Hidden"},
	{FlagPrint, "Print"},
	{FlagNoZoom, "NoZoom"},
	{FlagNoRotate, "NoRotate"},
	{FlagNoView, "NoView"},
	{FlagReadOnly, "ReadOnly"},
	{FlagLocked, "Locked"},
	{FlagToggleNoView, "ToggleNoView"},
	{FlagLockedContents, "LockedContents"},
}

// String returns the names of the set flags, separated by "|".
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			f &^= fn.flag
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(f)))
	}
	return strings.Join(parts, "|")
}

// ParseFlag converts a flag name like "Print" to the corresponding flag.
// Names are compared case-insensitively.
func ParseFlag(name string) (Flags, error) {
	for _, fn := range flagNames {
		if strings.EqualFold(name, fn.name) {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown annotation flag %q", name)
}

// ParseFlags combines a list of flag names into a Flags value.
func ParseFlags(names []string) (Flags, error) {
	var res Flags
	for _, name := range names {
		f, err := ParseFlag(name)
		if err != nil {
			return 0, err
		}
		res |= f
	}
	return res, nil
}
