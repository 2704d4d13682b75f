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
	"errors"
	"fmt"
	"math"
)

// ErrAllocation is the only error returned by this package. Constructors wrap
// it with the failing request; match it with errors.Is.
var ErrAllocation = errors.New("storage: allocation failed")

// elements validates an m x n request and returns m*n.
func elements(m, n int) (int, error) {
	if m < 0 || n < 0 {
		return 0, fmt.Errorf("%w: negative shape %dx%d", ErrAllocation, m, n)
	}
	if n != 0 && m > math.MaxInt/n {
		return 0, fmt.Errorf("%w: shape %dx%d overflows", ErrAllocation, m, n)
	}
	return m * n, nil
}

// guardedMake turns a runtime refusal of the requested length into
// ErrAllocation instead of a panic.
func guardedMake[T any](count int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]T, count), nil
}
