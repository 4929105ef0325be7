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
	"io"
	"iter"
	"slices"
	"strconv"
)

// Dict represents a dictionary object in a PDF file.
//
// Keys are kept in insertion order.  Setting a key which is already present
// replaces the value but keeps the key in its original position.
// The zero value is an empty dictionary, ready to use.
type Dict struct {
	keys []Name
	vals map[Name]Object
}

// NewDict returns a new, empty dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[Name]Object)}
}

// Set sets the value for the given key.
// If val is nil, the key is removed from the dictionary.
func (d *Dict) Set(key Name, val Object) {
	if val == nil {
		d.Delete(key)
		return
	}
	if d.vals == nil {
		d.vals = make(map[Name]Object)
	}
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Delete removes key from the dictionary.
// Deleting a key which is not present is a no-op.
func (d *Dict) Delete(key Name) {
	if _, exists := d.vals[key]; !exists {
		return
	}
	delete(d.vals, key)
	d.keys = slices.DeleteFunc(d.keys, func(k Name) bool { return k == key })
}

// Get returns the value stored for key, or nil if the key is not present.
func (d *Dict) Get(key Name) Object {
	if d == nil {
		return nil
	}
	return d.vals[key]
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys of the dictionary, in insertion order.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// All iterates over the entries of the dictionary, in insertion order.
func (d *Dict) All() iter.Seq2[Name, Object] {
	return func(yield func(Name, Object) bool) {
		if d == nil {
			return
		}
		for _, key := range d.keys {
			if !yield(key, d.vals[key]) {
				return
			}
		}
	}
}

// Merge copies all entries of other into d.  Values from other replace
// existing values for the same key, keys not yet present in d are appended
// in the order they appear in other.
func (d *Dict) Merge(other *Dict) {
	for key, val := range other.All() {
		d.Set(key, val)
	}
}

func (d *Dict) String() string {
	tp, ok := d.Get("Type").(Name)
	var desc string
	if ok {
		desc = string(tp) + " Dict"
	} else {
		desc = "Dict"
	}
	return "<" + desc + ", " + strconv.Itoa(d.Len()) + " entries>"
}

// PDF implements the [Object] interface.
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for i, key := range d.keys {
		if i > 0 {
			_, err = w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = d.vals[key].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte(">>"))
	return err
}
