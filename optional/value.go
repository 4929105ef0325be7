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

// Package optional provides values which keep track of whether they
// have been set.
//
// This is used for dictionary entries where "not set" differs from the
// zero value, for example the /Open entry of a text annotation, where an
// absent entry and an explicit "false" are written differently.
package optional

// Value represents an optional value of type T.
// The zero Value is unset.
type Value[T comparable] struct {
	isSet bool
	val   T
}

// Bool represents an optional boolean value.
type Bool = Value[bool]

// String represents an optional string.
type String = Value[string]

// New creates a new Value which is set to v.
func New[T comparable](v T) Value[T] {
	var x Value[T]
	x.Set(v)
	return x
}

// NewBool creates a new Bool with the given value.
func NewBool(v bool) Bool {
	return New(v)
}

// NewString creates a new String with the given value.
func NewString(v string) String {
	return New(v)
}

// Get returns the value and whether it is set.
func (x Value[T]) Get() (T, bool) {
	return x.val, x.isSet
}

// IsSet reports whether a value has been set.
func (x Value[T]) IsSet() bool {
	return x.isSet
}

// Set sets the value.
func (x *Value[T]) Set(v T) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Value[T]) Clear() {
	var zero T
	x.isSet = false
	x.val = zero
}

// Equal compares two values for equality.
// Two unset values are equal.
func (x Value[T]) Equal(other Value[T]) bool {
	return x.isSet == other.isSet && x.val == other.val
}
