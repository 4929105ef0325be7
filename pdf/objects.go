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
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Object represents an object in a PDF file.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents a real number in a PDF file.
//
// PDF has no representation for NaN or infinite values; writing
// these returns an error.  Values are written in positional notation, so
// very large magnitudes produce long tokens.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("pdf: cannot write %v as a number", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// maxExactInt is the largest magnitude up to which every integer can be
// represented exactly as a float64.
const maxExactInt = 1 << 53

// A Number is either an Integer or a Real.
// Integral values are written without a decimal point.
// As for [Real], NaN and infinite values cannot be written.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	f := float64(x)
	if f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
		return Integer(f).PDF(w)
	}
	return Real(f).PDF(w)
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	for _, c := range l {
		if isRegular(c) {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(buf, "#%02x", c)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// isRegular reports whether c can appear unescaped in a name.
func isRegular(c byte) bool {
	if c < 0x21 || c > 0x7e || c == '#' {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.  Use [TextString] to construct
// strings which hold human-readable text.
//
// Strings of printable ASCII characters are written as literal strings,
// all other strings are written in hexadecimal form.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	if !isPlainText(string(x)) {
		_, err := fmt.Fprintf(w, "<%x>", []byte(x))
		return err
	}

	buf := make([]byte, 0, len(x)+2)
	buf = append(buf, '(')
	for _, c := range x {
		switch c {
		case '(', ')', '\\':
			buf = append(buf, '\\', c)
		case '\r':
			// readers would turn a bare CR into LF
			buf = append(buf, '\\', 'r')
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// Array represent an array of objects in a PDF file.
type Array []Object

// NumberArray wraps a sequence of numbers as a PDF array,
// keeping the order of the arguments.
func NumberArray(xx ...float64) Array {
	res := make(Array, len(xx))
	for i, x := range xx {
		res[i] = Number(x)
	}
	return res
}

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the [Object] interface.
// Nil elements are written as null.
func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		var err error
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Format formats a PDF object as a string, in the same way as
// it would be written to a PDF file.
//
// Format panics if the object cannot be represented in a PDF file,
// for example if it contains a NaN or infinite number.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		panic(err)
	}
	return buf.String()
}
