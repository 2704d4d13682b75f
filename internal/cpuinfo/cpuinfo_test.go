// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package cpuinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	r := Collect()
	require.Equal(t, runtime.GOOS, r.GOOS)
	require.Equal(t, runtime.GOARCH, r.GOARCH)
	require.Positive(t, r.NumCPU)
	if runtime.GOARCH == "amd64" {
		require.NotEmpty(t, r.Features)
		require.True(t, r.Features[0].Present, "SSE2 is the amd64 baseline")
	}
	t.Log(r.Summary())
}

func TestReportWrite(t *testing.T) {
	r := Report{
		GOOS:   "linux",
		GOARCH: "amd64",
		NumCPU: 4,
		Features: []Feature{
			{"AVX2", true, ""},
			{"FMA", false, "fused multiply-add"},
		},
	}

	var sb strings.Builder
	require.NoError(t, r.Write(&sb))
	out := sb.String()
	require.Contains(t, out, "NumCPU: 4\n")
	require.Contains(t, out, "=== golang.org/x/sys/cpu.X86 ===")
	require.Contains(t, out, "  HasAVX2:     true\n")
	require.Contains(t, out, "  HasFMA:      false (fused multiply-add)\n")
	require.Equal(t, "linux/amd64 4 CPUs [AVX2]", r.Summary())
}
