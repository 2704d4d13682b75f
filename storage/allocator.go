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

import (
	"fmt"
	"math/rand/v2"
)

// DefaultBase scales the magnitude of generated values: diagonal entries use
// 2*Base and vector entries 4*Base.
const DefaultBase = 32

// Allocator hands out buffers and keeps count of the float64 elements that
// are still owned by live handles. The zero value is not usable; use
// NewAllocator.
type Allocator struct {
	base  int
	limit int
	src   *rand.Rand
	inUse int
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithBase sets the value-generation scale (BASE).
func WithBase(base int) Option {
	return func(a *Allocator) { a.base = base }
}

// WithLimit caps the number of elements that may be live at once.
// Requests that would exceed it fail with ErrAllocation. Zero means no cap.
func WithLimit(elements int) Option {
	return func(a *Allocator) { a.limit = elements }
}

// WithSource draws generated values from src instead of the process-wide
// source.
func WithSource(src *rand.Rand) Option {
	return func(a *Allocator) { a.src = src }
}

// NewAllocator returns an Allocator with DefaultBase, no limit and the
// process-wide source, modified by opts.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{base: DefaultBase}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Default backs the package-level constructors.
var Default = NewAllocator()

// Base returns the value-generation scale.
func (a *Allocator) Base() int { return a.base }

// InUse returns the number of elements held by unreleased buffers.
func (a *Allocator) InUse() int { return a.inUse }

// alloc claims count zeroed elements.
func (a *Allocator) alloc(count int) ([]float64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, count)
	}
	if a.limit > 0 && count > a.limit-a.inUse {
		return nil, fmt.Errorf("%w: %d elements requested, %d of %d in use",
			ErrAllocation, count, a.inUse, a.limit)
	}
	buf, err := guardedMake[float64](count)
	if err != nil {
		return nil, err
	}
	a.inUse += count
	return buf, nil
}

func (a *Allocator) free(count int) {
	a.inUse -= count
}

func (a *Allocator) uniform() float64 {
	if a.src != nil {
		return a.src.Float64()
	}
	return global.Float64()
}

// matrixValue generates element (i,j) of a random matrix.
func (a *Allocator) matrixValue(i, j int) float64 {
	scale := 1.0
	if i == j {
		scale = float64(a.base << 1)
	}
	return scale * a.uniform()
}

// vectorValue generates one element of a random vector.
func (a *Allocator) vectorValue() float64 {
	return float64(a.base<<2) * a.uniform()
}

// fillRow fills row i of a random matrix in column order.
func (a *Allocator) fillRow(row []float64, i int) {
	for j := range row {
		row[j] = a.matrixValue(i, j)
	}
}

// NewRows allocates an m x n row-pointer matrix from the Default allocator.
func NewRows(m, n int, zeroed bool) (*Rows, error) {
	return Default.NewRows(m, n, zeroed)
}

// NewFlat allocates an m x n flat matrix from the Default allocator.
func NewFlat(m, n int, zeroed bool) (*Flat, error) {
	return Default.NewFlat(m, n, zeroed)
}

// NewVector allocates an n-element vector from the Default allocator.
func NewVector(n int, zeroed bool) (*Vector, error) {
	return Default.NewVector(n, zeroed)
}
