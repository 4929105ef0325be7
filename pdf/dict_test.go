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

package pdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictOrder(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Annot"))
	d.Set("Subtype", Name("Text"))
	d.Set("Rect", NumberArray(0, 0, 1, 1))

	want := []Name{"Type", "Subtype", "Rect"}
	if diff := cmp.Diff(want, d.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}

	got := Format(d)
	if got != "<</Type /Annot /Subtype /Text /Rect [0 0 1 1]>>" {
		t.Errorf("wrong rendering %q", got)
	}
}

func TestDictOverwriteKeepsPosition(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Set("B", Integer(2))
	d.Set("A", Integer(3))

	if got := Format(d); got != "<</A 3 /B 2>>" {
		t.Errorf("wrong rendering %q", got)
	}
	if d.Len() != 2 {
		t.Errorf("wrong length %d", d.Len())
	}
}

func TestDictSetNilDeletes(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Set("B", Integer(2))
	d.Set("A", nil)

	if d.Get("A") != nil {
		t.Error("A still present")
	}
	if diff := cmp.Diff([]Name{"B"}, d.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}

	// deleting a missing key is harmless
	d.Delete("C")
	if d.Len() != 1 {
		t.Errorf("wrong length %d", d.Len())
	}
}

func TestDictMerge(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Annot"))
	d.Set("Subtype", Name("Square"))

	other := NewDict()
	other.Set("Subtype", Name("Text"))
	other.Set("Open", Bool(true))
	other.Set("Name", Name("Comment"))

	d.Merge(other)

	want := "<</Type /Annot /Subtype /Text /Open true /Name /Comment>>"
	if got := Format(d); got != want {
		t.Errorf("wrong rendering:\n  %s\n  %s", got, want)
	}

	// the source dictionary is not modified
	if other.Len() != 3 {
		t.Errorf("source modified, %d entries", other.Len())
	}
}

func TestDictMergeNil(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Merge(nil)
	if d.Len() != 1 {
		t.Errorf("wrong length %d", d.Len())
	}
}

func TestDictZeroValue(t *testing.T) {
	var d Dict
	if d.Len() != 0 {
		t.Error("zero dict not empty")
	}
	d.Set("K", Name("V"))
	if got := Format(&d); got != "<</K /V>>" {
		t.Errorf("wrong rendering %q", got)
	}
}

func TestDictAllStopsEarly(t *testing.T) {
	d := NewDict()
	d.Set("A", Integer(1))
	d.Set("B", Integer(2))
	d.Set("C", Integer(3))

	var seen []Name
	for key := range d.All() {
		seen = append(seen, key)
		if key == "B" {
			break
		}
	}
	if diff := cmp.Diff([]Name{"A", "B"}, seen); diff != "" {
		t.Errorf("iteration (-want +got):\n%s", diff)
	}
}

func TestDictString(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Annot"))
	d.Set("Rect", NumberArray(0, 0, 1, 1))
	if got := d.String(); got != "<Annot Dict, 2 entries>" {
		t.Errorf("wrong description %q", got)
	}
}
