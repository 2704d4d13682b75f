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

// Rows is a matrix stored as independently allocated rows.
// All rows have length n.
type Rows struct {
	owner *Allocator
	rows  [][]float64
	m, n  int
}

// NewRows allocates m rows of n elements each. If zeroed is false the rows
// are filled with generated values (see package doc).
//
// If any row cannot be allocated, every row allocated so far is released
// and the error wraps ErrAllocation.
func (a *Allocator) NewRows(m, n int, zeroed bool) (*Rows, error) {
	if _, err := elements(m, n); err != nil {
		return nil, err
	}
	index, err := guardedMake[[]float64](m)
	if err != nil {
		return nil, fmt.Errorf("row index of %dx%d: %w", m, n, err)
	}

	r := &Rows{owner: a, rows: index, m: m, n: n}
	for i := range m {
		row, err := a.alloc(n)
		if err != nil {
			r.Release()
			return nil, fmt.Errorf("row %d of %dx%d: %w", i, m, n, err)
		}
		r.rows[i] = row
		if !zeroed {
			a.fillRow(row, i)
		}
	}
	return r, nil
}

// Release gives every row back to the allocator. It is a no-op on a nil or
// already released matrix.
func (r *Rows) Release() {
	if r == nil || r.rows == nil {
		return
	}
	for i, row := range r.rows {
		if row != nil {
			r.owner.free(len(row))
			r.rows[i] = nil
		}
	}
	r.rows = nil
}

// Released reports whether Release has been called.
func (r *Rows) Released() bool {
	return r == nil || r.rows == nil
}

// Dims returns the number of rows and columns.
func (r *Rows) Dims() (m, n int) {
	return r.m, r.n
}

// Row returns row i. The slice aliases the matrix.
func (r *Rows) Row(i int) []float64 {
	return r.rows[i]
}

// At returns element (i,j).
func (r *Rows) At(i, j int) float64 {
	return r.rows[i][j]
}

// Set assigns element (i,j).
func (r *Rows) Set(i, j int, v float64) {
	r.rows[i][j] = v
}

// Flatten copies the matrix into a new Flat owned by the same allocator,
// so it can be passed to the kernels.
func (r *Rows) Flatten() (*Flat, error) {
	f, err := r.owner.NewFlat(r.m, r.n, true)
	if err != nil {
		return nil, err
	}
	for i, row := range r.rows {
		copy(f.data[i*r.n:(i+1)*r.n], row)
	}
	return f, nil
}
