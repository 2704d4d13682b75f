// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package matvec

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-matkern/storage"
)

const relTolerance = 1e-9

func operands(t testing.TB, seed uint64, m, n int) (mat, vec []float64) {
	t.Helper()
	a := storage.NewAllocator(storage.WithSource(storage.NewSource(seed)))
	f, err := a.NewFlat(m, n, false)
	require.NoError(t, err)
	v, err := a.NewVector(n, false)
	require.NoError(t, err)
	return f.Data(), v.Data()
}

func TestMatVecTunedMatchesMatVec(t *testing.T) {
	testCases := []struct {
		m, n int
	}{
		{8, 8},
		{10, 10},
		{16, 5},
		{3, 7},
		{0, 4},
		{4, 0},
		{13, 100},
		{64, 64},
		{100, 33},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%dx%d", tc.m, tc.n), func(t *testing.T) {
			mat, vec := operands(t, uint64(tc.m*1000+tc.n), tc.m, tc.n)

			want := make([]float64, tc.m)
			got := make([]float64, tc.m)
			MatVec(mat, vec, tc.m, tc.n, want)
			MatVecTuned(mat, vec, tc.m, tc.n, got)

			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(relTolerance, 0)); diff != "" {
				t.Errorf("MatVecTuned mismatch (-naive +tuned):\n%s", diff)
			}
		})
	}
}

func TestMatVecIdentity(t *testing.T) {
	const n = 8
	mat := make([]float64, n*n)
	for i := range n {
		mat[i*n+i] = 1
	}
	vec := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	for name, kernel := range map[string]func(mat, vec []float64, m, n int, result []float64){
		"MatVec":      MatVec,
		"MatVecTuned": MatVecTuned,
	} {
		t.Run(name, func(t *testing.T) {
			result := make([]float64, n)
			kernel(mat, vec, n, n, result)
			if diff := cmp.Diff(vec, result); diff != "" {
				t.Errorf("I*v != v (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatVecNonSquare(t *testing.T) {
	mat := []float64{1, 2, 3, 4, 5, 6}
	vec := []float64{1, 0, 1}

	want := []float64{4, 10}
	for _, kernel := range []func(mat, vec []float64, m, n int, result []float64){MatVec, MatVecTuned} {
		result := make([]float64, 2)
		kernel(mat, vec, 2, 3, result)
		require.Equal(t, want, result)
	}
}

func TestMatVecAccumulates(t *testing.T) {
	const m, n = 11, 6
	mat, vec := operands(t, 5, m, n)

	product := make([]float64, m)
	MatVec(mat, vec, m, n, product)

	for name, kernel := range map[string]func(mat, vec []float64, m, n int, result []float64){
		"MatVec":      MatVec,
		"MatVecTuned": MatVecTuned,
	} {
		t.Run(name, func(t *testing.T) {
			result := make([]float64, m)
			for i := range result {
				result[i] = float64(i)
			}
			kernel(mat, vec, m, n, result)
			for i := range result {
				require.InEpsilon(t, product[i]+float64(i), result[i], relTolerance)
			}
		})
	}
}

func TestMatVecNilResult(t *testing.T) {
	mat, vec := operands(t, 9, 8, 8)
	require.NotPanics(t, func() {
		MatVec(mat, vec, 8, 8, nil)
		MatVecTuned(mat, vec, 8, 8, nil)
	})
}

func TestMatVecShortSlices(t *testing.T) {
	mat := make([]float64, 16)
	vec := make([]float64, 4)
	result := make([]float64, 4)

	require.PanicsWithValue(t, "matvec: matrix slice too small", func() {
		MatVecTuned(mat, vec, 5, 4, make([]float64, 5))
	})
	require.PanicsWithValue(t, "matvec: vector slice too small", func() {
		MatVec(mat, vec[:3], 4, 4, result)
	})
	require.PanicsWithValue(t, "matvec: result slice too small", func() {
		MatVecTuned(mat, vec, 4, 4, result[:2])
	})
}

func BenchmarkMatVec(b *testing.B) {
	for _, size := range []int{64, 256, 1024} {
		mat, vec := operands(b, 1, size, size)
		result := make([]float64, size)

		b.Run(fmt.Sprintf("naive/%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * size * 8))
			for b.Loop() {
				MatVec(mat, vec, size, size, result)
			}
		})
		b.Run(fmt.Sprintf("tuned/%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * size * 8))
			for b.Loop() {
				MatVecTuned(mat, vec, size, size, result)
			}
		})
	}
}
