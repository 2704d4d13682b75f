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

package matmul

// MatMul accumulates C += A * B where A, B and C are n x n (row-major).
// C[i,j] += sum(A[i,k] * B[k,j]) for k in 0..n-1
//
// C must be allocated and zeroed by the caller. A nil c is a no-op.
func MatMul(a, b []float64, n int, c []float64) {
	if c == nil {
		return
	}
	checkShapes(a, b, n, c)

	for i := range n {
		for j := range n {
			for k := range n {
				c[i*n+j] += a[i*n+k] * b[k*n+j]
			}
		}
	}
}

func checkShapes(a, b []float64, n int, c []float64) {
	size := n * n
	if len(a) < size {
		panic("matmul: A slice too short")
	}
	if len(b) < size {
		panic("matmul: B slice too short")
	}
	if len(c) < size {
		panic("matmul: C slice too short")
	}
}
