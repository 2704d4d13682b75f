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

// Vector is a contiguous buffer of float64 values.
type Vector struct {
	owner *Allocator
	data  []float64
}

// NewVector allocates n elements. If zeroed is false each element is
// 4*Base*U with U uniform in [0,1).
func (a *Allocator) NewVector(n int, zeroed bool) (*Vector, error) {
	data, err := a.alloc(n)
	if err != nil {
		return nil, fmt.Errorf("vector %d: %w", n, err)
	}
	if !zeroed {
		for i := range data {
			data[i] = a.vectorValue()
		}
	}
	return &Vector{owner: a, data: data}, nil
}

// Release gives the buffer back to the allocator. It is a no-op on a nil or
// already released vector.
func (v *Vector) Release() {
	if v == nil || v.data == nil {
		return
	}
	v.owner.free(len(v.data))
	v.data = nil
}

// Released reports whether Release has been called.
func (v *Vector) Released() bool {
	return v == nil || v.data == nil
}

// Len returns the number of elements, 0 after Release.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Data returns the backing buffer, or nil after Release.
func (v *Vector) Data() []float64 {
	if v == nil {
		return nil
	}
	return v.data
}

// At returns element i.
func (v *Vector) At(i int) float64 {
	return v.data[i]
}

// Set assigns element i.
func (v *Vector) Set(i int, x float64) {
	v.data[i] = x
}

// Zero resets every element to 0, for reuse as a result buffer.
func (v *Vector) Zero() {
	clear(v.data)
}
