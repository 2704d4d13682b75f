// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package storage

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestZeroedBuffers(t *testing.T) {
	a := NewAllocator()

	f, err := a.NewFlat(5, 7, true)
	require.NoError(t, err)
	defer f.Release()
	if diff := cmp.Diff(make([]float64, 35), f.Data()); diff != "" {
		t.Errorf("flat not zeroed (-want +got):\n%s", diff)
	}

	v, err := a.NewVector(9, true)
	require.NoError(t, err)
	defer v.Release()
	if diff := cmp.Diff(make([]float64, 9), v.Data()); diff != "" {
		t.Errorf("vector not zeroed (-want +got):\n%s", diff)
	}

	r, err := a.NewRows(4, 6, true)
	require.NoError(t, err)
	defer r.Release()
	for i := range 4 {
		if diff := cmp.Diff(make([]float64, 6), r.Row(i)); diff != "" {
			t.Errorf("row %d not zeroed (-want +got):\n%s", i, diff)
		}
	}
}

func TestGeneratedRanges(t *testing.T) {
	const base = 16
	a := NewAllocator(WithBase(base), WithSource(NewSource(1)))

	testCases := []struct {
		name string
		m, n int
	}{
		{"square", 12, 12},
		{"wide", 3, 10},
		{"tall", 10, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := a.NewFlat(tc.m, tc.n, false)
			require.NoError(t, err)
			defer f.Release()
			r, err := a.NewRows(tc.m, tc.n, false)
			require.NoError(t, err)
			defer r.Release()

			for i := range tc.m {
				for j := range tc.n {
					limit := 1.0
					if i == j {
						limit = 2 * base
					}
					for _, x := range []float64{f.At(i, j), r.At(i, j)} {
						require.GreaterOrEqual(t, x, 0.0)
						require.Less(t, x, limit, "element (%d,%d)", i, j)
					}
				}
			}
		})
	}

	v, err := a.NewVector(64, false)
	require.NoError(t, err)
	defer v.Release()
	for i := range v.Len() {
		require.GreaterOrEqual(t, v.At(i), 0.0)
		require.Less(t, v.At(i), 4.0*base)
	}
}

func TestDiagonalDominance(t *testing.T) {
	const (
		n       = 8
		samples = 200
	)
	a := NewAllocator(WithSource(NewSource(3)))

	var diagSum, offSum float64
	for range samples {
		f, err := a.NewFlat(n, n, false)
		require.NoError(t, err)
		for i := range n {
			for j := range n {
				if i == j {
					diagSum += math.Abs(f.At(i, j))
				} else {
					offSum += math.Abs(f.At(i, j))
				}
			}
		}
		f.Release()
	}

	// Per row: E|diag| = Base, E(sum of |off-diagonal|) = (n-1)/2.
	meanDiag := diagSum / (samples * n)
	meanOff := offSum / (samples * n)
	require.Greater(t, meanDiag, meanOff)
	require.InDelta(t, float64(DefaultBase), meanDiag, 0.1*DefaultBase)
	require.InDelta(t, float64(n-1)/2, meanOff, 0.5)
}

func TestReleaseIdempotent(t *testing.T) {
	a := NewAllocator()

	f, err := a.NewFlat(3, 3, false)
	require.NoError(t, err)
	v, err := a.NewVector(3, false)
	require.NoError(t, err)
	r, err := a.NewRows(3, 3, false)
	require.NoError(t, err)
	require.Equal(t, 21, a.InUse())

	for range 2 {
		f.Release()
		v.Release()
		r.Release()
	}
	require.Zero(t, a.InUse())
	require.True(t, f.Released())
	require.True(t, v.Released())
	require.True(t, r.Released())
	require.Nil(t, f.Data())
	require.Zero(t, v.Len())

	var (
		nilFlat *Flat
		nilVec  *Vector
		nilRows *Rows
	)
	require.NotPanics(t, func() {
		nilFlat.Release()
		nilVec.Release()
		nilRows.Release()
	})
}

func TestRowsPartialFailureReleases(t *testing.T) {
	a := NewAllocator(WithLimit(25))

	r, err := a.NewRows(4, 8, false)
	require.ErrorIs(t, err, ErrAllocation)
	require.Nil(t, r)
	require.Zero(t, a.InUse(), "rows allocated before the failure must be released")

	r, err = a.NewRows(3, 8, false)
	require.NoError(t, err)
	require.Equal(t, 24, a.InUse())
	r.Release()
	require.Zero(t, a.InUse())
}

func TestAllocationErrors(t *testing.T) {
	a := NewAllocator(WithLimit(100))

	testCases := []struct {
		name  string
		alloc func() error
	}{
		{"flat over limit", func() error { _, err := a.NewFlat(11, 10, true); return err }},
		{"vector over limit", func() error { _, err := a.NewVector(101, true); return err }},
		{"negative rows", func() error { _, err := a.NewRows(-1, 4, true); return err }},
		{"negative vector", func() error { _, err := a.NewVector(-3, true); return err }},
		{"overflow", func() error { _, err := NewFlat(math.MaxInt, 2, true); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.alloc(), ErrAllocation)
			require.Zero(t, a.InUse())
		})
	}
}

func TestSeedReproducible(t *testing.T) {
	Seed(7)
	first, err := NewFlat(4, 4, false)
	require.NoError(t, err)
	defer first.Release()

	Seed(7)
	second, err := NewFlat(4, 4, false)
	require.NoError(t, err)
	defer second.Release()

	require.Equal(t, first.Data(), second.Data())

	third, err := NewFlat(4, 4, false)
	require.NoError(t, err)
	defer third.Release()
	require.NotEqual(t, first.Data(), third.Data(), "source must not be reseeded per call")
}

func TestFlatIndexing(t *testing.T) {
	a := NewAllocator()
	f, err := a.NewFlat(2, 3, true)
	require.NoError(t, err)
	defer f.Release()

	for i := range 2 {
		for j := range 3 {
			f.Set(i, j, float64(10*i+j))
		}
	}
	require.Equal(t, []float64{0, 1, 2, 10, 11, 12}, f.Data())
	require.Equal(t, []float64{10, 11, 12}, f.Row(1))

	f.Zero()
	require.Equal(t, make([]float64, 6), f.Data())
}

func TestFlatten(t *testing.T) {
	a := NewAllocator(WithSource(NewSource(11)))
	r, err := a.NewRows(3, 5, false)
	require.NoError(t, err)
	defer r.Release()

	f, err := r.Flatten()
	require.NoError(t, err)
	defer f.Release()

	require.Equal(t, 30, a.InUse())
	m, n := f.Dims()
	require.Equal(t, 3, m)
	require.Equal(t, 5, n)
	for i := range m {
		require.Equal(t, r.Row(i), f.Row(i))
	}
}
