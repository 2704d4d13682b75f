// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package display dumps matrices and vectors as fixed-width text for manual
// inspection. The output is not meant to be parsed.
//
// Each element is written with Field, each matrix row ends with a newline,
// and Separator follows the whole matrix or vector.
package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/go-matkern/storage"
)

const (
	// Field is the per-element format.
	Field = "%15.10g"

	// Separator is written after a full matrix or vector.
	Separator = "\n\n\n"
)

// ErrReleased is returned when asked to print a released buffer.
var ErrReleased = errors.New("display: buffer released")

// Printer formats buffers with a configurable field and separator.
type Printer struct {
	Field     string
	Separator string
}

// Default uses Field and Separator.
var Default = Printer{Field: Field, Separator: Separator}

// WriteRows writes a row-pointer matrix to w.
func (p Printer) WriteRows(w io.Writer, r *storage.Rows) error {
	if r.Released() {
		return ErrReleased
	}
	m, n := r.Dims()
	return p.writeMatrix(w, m, n, r.At)
}

// WriteFlat writes a flat matrix to w.
func (p Printer) WriteFlat(w io.Writer, f *storage.Flat) error {
	if f.Released() {
		return ErrReleased
	}
	m, n := f.Dims()
	return p.writeMatrix(w, m, n, f.At)
}

// WriteVector writes a vector to w on a single line.
func (p Printer) WriteVector(w io.Writer, v *storage.Vector) error {
	if v.Released() {
		return ErrReleased
	}
	return p.WriteValues(w, v.Data())
}

// WriteValues writes a raw slice, such as a kernel result, like a vector.
func (p Printer) WriteValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, x := range values {
		fmt.Fprintf(bw, p.Field, x)
	}
	bw.WriteString(p.Separator)
	return bw.Flush()
}

func (p Printer) writeMatrix(w io.Writer, m, n int, at func(i, j int) float64) error {
	bw := bufio.NewWriter(w)
	for i := range m {
		for j := range n {
			fmt.Fprintf(bw, p.Field, at(i, j))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(p.Separator)
	return bw.Flush()
}

// WriteRows writes r to w with the Default printer.
func WriteRows(w io.Writer, r *storage.Rows) error { return Default.WriteRows(w, r) }

// WriteFlat writes f to w with the Default printer.
func WriteFlat(w io.Writer, f *storage.Flat) error { return Default.WriteFlat(w, f) }

// WriteVector writes v to w with the Default printer.
func WriteVector(w io.Writer, v *storage.Vector) error { return Default.WriteVector(w, v) }

// PrintRows writes r to stdout.
func PrintRows(r *storage.Rows) error { return WriteRows(os.Stdout, r) }

// PrintFlat writes f to stdout.
func PrintFlat(f *storage.Flat) error { return WriteFlat(os.Stdout, f) }

// PrintVector writes v to stdout.
func PrintVector(v *storage.Vector) error { return WriteVector(os.Stdout, v) }
