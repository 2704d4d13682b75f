// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matvec_test

import (
	"fmt"

	"github.com/ajroetker/go-matkern/kern/matvec"
)

func ExampleMatVecTuned() {
	// 10 rows: one full group of 8 plus two remainder rows.
	const m, n = 10, 3
	mat := make([]float64, m*n)
	for i := range m {
		mat[i*n+i%n] = float64(i + 1)
	}
	vec := []float64{1, 10, 100}

	result := make([]float64, m)
	matvec.MatVecTuned(mat, vec, m, n, result)
	fmt.Println(result)
	// Output: [1 20 300 4 50 600 7 80 900 10]
}
