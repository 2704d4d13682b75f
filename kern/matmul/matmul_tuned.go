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

//go:generate go run ../../cmd/kerngen --kind matmul --stride 8 --output .

// Tile and strip sizes.
// 3 tiles of 8x8 float64 = 3 * 8 * 8 * 8 = 1.5KB, well inside L1.
// BlockSize must be a multiple of Stride.
const (
	BlockSize = 8
	Stride    = 8
)

// MatMulTuned computes C = A * B where A, B and C are n x n (row-major),
// using cache blocking plus register blocking on rows of B.
//
// Loop order: tile row (ii), tile column (jj), tile depth (kk), then i, j in
// steps of Stride, then k. For each k one A[i,k] load is reused across Stride
// contiguous B[k,j:j+Stride] values and Stride accumulators.
//
// Each output strip starts from zero on the first k tile and from its stored
// partial sum on later tiles, so C is zeroed exactly once per strip and does
// not need to be cleared by the caller. Per element the summation order over k
// is the same as MatMul on a zeroed C.
//
// a, b and c must not overlap; the kernel does not check.
//
// A nil c is a no-op.
//
// Panics if:
//   - len(a) < n*n
//   - len(b) < n*n
//   - len(c) < n*n
func MatMulTuned(a, b []float64, n int, c []float64) {
	if c == nil {
		return
	}
	checkShapes(a, b, n, c)

	for ii := 0; ii < n; ii += BlockSize {
		iEnd := min(ii+BlockSize, n)

		for jj := 0; jj < n; jj += BlockSize {
			jEnd := min(jj+BlockSize, n)

			for kk := 0; kk < n; kk += BlockSize {
				kEnd := min(kk+BlockSize, n)
				fresh := kk == 0

				for i := ii; i < iEnd; i++ {
					var j int
					for j = jj; j+Stride <= jEnd; j += Stride {
						mulStrip8(a, b, c, n, i, j, kk, kEnd, fresh)
					}

					// Scalar tail for clipped tiles
					for ; j < jEnd; j++ {
						var sum float64
						if !fresh {
							sum = c[i*n+j]
						}
						for k := kk; k < kEnd; k++ {
							sum += a[i*n+k] * b[k*n+j]
						}
						c[i*n+j] = sum
					}
				}
			}
		}
	}
}
