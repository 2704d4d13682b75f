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

// Package verify computes reference products with gonum and compares kernel
// output against them.
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the relative tolerance used when kernels are compared.
const DefaultTolerance = 1e-9

// ErrMismatch is returned by Compare when an element is out of tolerance.
var ErrMismatch = errors.New("verify: results differ")

// MatVec returns m * v for a row-major rows x cols matrix, computed by gonum.
func MatVec(m, v []float64, rows, cols int) []float64 {
	out := make([]float64, rows)
	if rows == 0 || cols == 0 {
		return out
	}
	a := mat.NewDense(rows, cols, m[:rows*cols])
	x := mat.NewVecDense(cols, v[:cols])
	y := mat.NewVecDense(rows, out)
	y.MulVec(a, x)
	return out
}

// MatMul returns a * b for row-major n x n matrices, computed by gonum.
func MatMul(a, b []float64, n int) []float64 {
	out := make([]float64, n*n)
	if n == 0 {
		return out
	}
	c := mat.NewDense(n, n, out)
	c.Mul(mat.NewDense(n, n, a[:n*n]), mat.NewDense(n, n, b[:n*n]))
	return out
}

// Compare reports the first element of got that differs from want by more
// than rel relative to the larger magnitude.
func Compare(got, want []float64, rel float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: length %d, want %d", ErrMismatch, len(got), len(want))
	}
	for i := range want {
		if !scalar.EqualWithinRel(got[i], want[i], rel) {
			return fmt.Errorf("%w at %d: got %.17g, want %.17g", ErrMismatch, i, got[i], want[i])
		}
	}
	return nil
}

// MaxRelError returns the largest relative difference between got and want.
// Elements equal in both are skipped.
func MaxRelError(got, want []float64) float64 {
	var worst float64
	for i := range min(len(got), len(want)) {
		if got[i] == want[i] {
			continue
		}
		denom := max(math.Abs(got[i]), math.Abs(want[i]))
		worst = max(worst, math.Abs(got[i]-want[i])/denom)
	}
	return worst
}
