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

package matvec

// MatVec accumulates the matrix-vector product: result += M * v
//
// Parameters:
//   - mat: matrix in row-major order with shape [m, n]
//   - vec: input vector of length n
//   - m: number of rows in the matrix
//   - n: number of columns in the matrix
//   - result: output vector of length m, allocated and zeroed by the caller
//
// A nil result is a no-op.
//
// Panics if:
//   - len(mat) < m * n
//   - len(vec) < n
//   - len(result) < m
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	mat := []float64{1, 2, 3, 4, 5, 6}
//	vec := []float64{1, 0, 1}
//	result := make([]float64, 2)
//	MatVec(mat, vec, 2, 3, result)  // result = [4, 10]
func MatVec(mat, vec []float64, m, n int, result []float64) {
	if result == nil {
		return
	}
	checkShapes(mat, vec, m, n, result)

	for i := range m {
		for j := range n {
			result[i] += mat[i*n+j] * vec[j]
		}
	}
}

func checkShapes(mat, vec []float64, m, n int, result []float64) {
	if len(mat) < m*n {
		panic("matvec: matrix slice too small")
	}
	if len(vec) < n {
		panic("matvec: vector slice too small")
	}
	if len(result) < m {
		panic("matvec: result slice too small")
	}
}
