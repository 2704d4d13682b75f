// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-matkern/storage"
)

func field(s string) string {
	return strings.Repeat(" ", 15-len(s)) + s
}

func TestWriteFlat(t *testing.T) {
	a := storage.NewAllocator()
	f, err := a.NewFlat(2, 3, true)
	require.NoError(t, err)
	defer f.Release()
	f.Set(0, 0, 1.5)
	f.Set(0, 2, -2)
	f.Set(1, 1, 0.125)

	var sb strings.Builder
	require.NoError(t, WriteFlat(&sb, f))

	want := field("1.5") + field("0") + field("-2") + "\n" +
		field("0") + field("0.125") + field("0") + "\n" +
		Separator
	require.Equal(t, want, sb.String())
}

func TestWriteRowsMatchesFlat(t *testing.T) {
	a := storage.NewAllocator(storage.WithSource(storage.NewSource(8)))
	r, err := a.NewRows(4, 4, false)
	require.NoError(t, err)
	defer r.Release()
	f, err := r.Flatten()
	require.NoError(t, err)
	defer f.Release()

	var rows, flat strings.Builder
	require.NoError(t, WriteRows(&rows, r))
	require.NoError(t, WriteFlat(&flat, f))
	require.Equal(t, flat.String(), rows.String())
	require.Equal(t, 4, strings.Count(rows.String(), "\n")-len(Separator))
}

func TestWriteVector(t *testing.T) {
	a := storage.NewAllocator()
	v, err := a.NewVector(3, true)
	require.NoError(t, err)
	defer v.Release()
	v.Set(1, 1234567.125)

	var sb strings.Builder
	require.NoError(t, WriteVector(&sb, v))
	require.Equal(t, field("0")+field("1234567.125")+field("0")+Separator, sb.String())
}

func TestCustomPrinter(t *testing.T) {
	p := Printer{Field: "%v,", Separator: "--\n"}

	var sb strings.Builder
	require.NoError(t, p.WriteValues(&sb, []float64{1, 2.5}))
	require.Equal(t, "1,2.5,--\n", sb.String())
}

func TestReleased(t *testing.T) {
	a := storage.NewAllocator()
	f, err := a.NewFlat(2, 2, true)
	require.NoError(t, err)
	f.Release()

	var sb strings.Builder
	require.ErrorIs(t, WriteFlat(&sb, f), ErrReleased)
	require.ErrorIs(t, WriteVector(&sb, nil), ErrReleased)
	require.Empty(t, sb.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	require.ErrorIs(t, Default.WriteValues(failingWriter{}, []float64{1}), errWrite)
}
