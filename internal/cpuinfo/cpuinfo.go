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

// Package cpuinfo reports the CPU features detected by Go, so benchmark
// numbers can be read against the hardware they came from.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Feature is one CPU capability flag.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Report describes the machine running the benchmarks.
type Report struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []Feature
}

// Collect reads the runtime and golang.org/x/sys/cpu state.
func Collect() Report {
	r := Report{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
	switch r.GOARCH {
	case "arm64":
		r.Features = arm64Features()
	case "amd64":
		r.Features = amd64Features()
	}
	return r
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, ""},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"SSE42", cpu.X86.HasSSE42, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// Summary is a one-line description, e.g. "linux/amd64 8 CPUs [SSE2 AVX2 FMA]".
func (r Report) Summary() string {
	var present []string
	for _, f := range r.Features {
		if f.Present {
			present = append(present, f.Name)
		}
	}
	return fmt.Sprintf("%s/%s %d CPUs [%s]", r.GOOS, r.GOARCH, r.NumCPU, strings.Join(present, " "))
}

// Write prints the full report, one feature per line.
func (r Report) Write(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GOOS: %s\n", r.GOOS)
	fmt.Fprintf(&sb, "GOARCH: %s\n", r.GOARCH)
	fmt.Fprintf(&sb, "NumCPU: %d\n", r.NumCPU)
	if len(r.Features) > 0 {
		fmt.Fprintf(&sb, "\n=== golang.org/x/sys/cpu.%s ===\n", archVar(r.GOARCH))
	}
	for _, f := range r.Features {
		line := fmt.Sprintf("  Has%-9s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		sb.WriteString(line + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func archVar(goarch string) string {
	if goarch == "amd64" {
		return "X86"
	}
	return strings.ToUpper(goarch)
}
