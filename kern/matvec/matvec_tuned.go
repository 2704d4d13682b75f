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

//go:generate go run ../../cmd/kerngen --kind matvec --stride 8 --output .

// Stride is the number of rows that share one load of vec[j].
// It must match the stride the group kernel was generated with.
const Stride = 8

// MatVecTuned accumulates result += M * v like MatVec, restructured for
// register reuse.
//
// Rows are taken Stride at a time. For each group the column loop loads
// vec[j] once and updates Stride accumulators, which start from and are
// stored back to result[i:i+Stride]. Rows from the last multiple of Stride
// up to m are handled one at a time.
//
// mat, vec and result must not overlap; the kernel does not check.
//
// The summation order per row is the same as MatVec, so results agree with
// it to within rounding.
//
// A nil result is a no-op. Panics under the same conditions as MatVec.
func MatVecTuned(mat, vec []float64, m, n int, result []float64) {
	if result == nil {
		return
	}
	checkShapes(mat, vec, m, n, result)

	limit := m - m%Stride

	for i := 0; i < limit; i += Stride {
		matVecGroup8(mat, vec, n, i, result)
	}

	// Remainder rows
	vec = vec[:n]
	for i := limit; i < m; i++ {
		row := mat[i*n : i*n+n]
		acc := result[i]
		for j, x := range vec {
			acc += row[j] * x
		}
		result[i] = acc
	}
}
