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

package storage

import "fmt"

// Flat is a matrix stored as one contiguous row-major buffer.
// Element (i,j) lives at offset i*n+j.
type Flat struct {
	owner *Allocator
	data  []float64
	m, n  int
}

// NewFlat allocates an m x n matrix in a single buffer. If zeroed is false
// the buffer is filled with generated values (see package doc).
func (a *Allocator) NewFlat(m, n int, zeroed bool) (*Flat, error) {
	count, err := elements(m, n)
	if err != nil {
		return nil, err
	}
	data, err := a.alloc(count)
	if err != nil {
		return nil, fmt.Errorf("flat %dx%d: %w", m, n, err)
	}
	f := &Flat{owner: a, data: data, m: m, n: n}
	if !zeroed {
		for i := range m {
			a.fillRow(data[i*n:(i+1)*n], i)
		}
	}
	return f, nil
}

// Release gives the buffer back to the allocator. It is a no-op on a nil or
// already released matrix.
func (f *Flat) Release() {
	if f == nil || f.data == nil {
		return
	}
	f.owner.free(len(f.data))
	f.data = nil
}

// Released reports whether Release has been called.
func (f *Flat) Released() bool {
	return f == nil || f.data == nil
}

// Dims returns the number of rows and columns.
func (f *Flat) Dims() (m, n int) {
	return f.m, f.n
}

// Data returns the row-major backing buffer, or nil after Release.
func (f *Flat) Data() []float64 {
	if f == nil {
		return nil
	}
	return f.data
}

// Row returns row i as a slice of the backing buffer.
func (f *Flat) Row(i int) []float64 {
	return f.data[i*f.n : (i+1)*f.n]
}

// At returns element (i,j).
func (f *Flat) At(i, j int) float64 {
	return f.data[i*f.n+j]
}

// Set assigns element (i,j).
func (f *Flat) Set(i, j int, v float64) {
	f.data[i*f.n+j] = v
}

// Zero resets every element to 0, for reuse as a result buffer.
func (f *Flat) Zero() {
	clear(f.data)
}
