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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matkern/internal/verify"
	"github.com/ajroetker/go-matkern/kern/matmul"
	"github.com/ajroetker/go-matkern/kern/matvec"
	"github.com/ajroetker/go-matkern/storage"
)

func newVerifyCmd(cfg *config) *cobra.Command {
	var (
		sizes     []int
		tolerance float64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every kernel against gonum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := normalizeSizes(sizes)
			if err != nil {
				return err
			}
			return verifyKernels(cmd.OutOrStdout(), cfg.allocator(), sizes, tolerance)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1, 7, 8, 10, 16, 33, 64}, "Matrix orders to check")
	cmd.Flags().Float64Var(&tolerance, "tolerance", verify.DefaultTolerance, "Relative tolerance")
	return cmd
}

// verifyKernels runs all four kernels on random operands of each size and
// compares them with gonum. Every failure is reported; the returned error
// joins them.
func verifyKernels(w io.Writer, alloc *storage.Allocator, sizes []int, tolerance float64) error {
	var errs []error
	for _, n := range sizes {
		if err := verifySize(w, alloc, n, tolerance); err != nil {
			errs = append(errs, fmt.Errorf("n=%d: %w", n, err))
		}
	}
	return errors.Join(errs...)
}

func verifySize(w io.Writer, alloc *storage.Allocator, n int, tolerance float64) error {
	a, err := alloc.NewFlat(n, n, false)
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := alloc.NewFlat(n, n, false)
	if err != nil {
		return err
	}
	defer b.Release()
	v, err := alloc.NewVector(n, false)
	if err != nil {
		return err
	}
	defer v.Release()

	wantVec := verify.MatVec(a.Data(), v.Data(), n, n)
	wantMat := verify.MatMul(a.Data(), b.Data(), n)

	checks := []struct {
		name string
		want []float64
		run  func(out []float64)
	}{
		{"MatVec", wantVec, func(out []float64) { matvec.MatVec(a.Data(), v.Data(), n, n, out) }},
		{"MatVecTuned", wantVec, func(out []float64) { matvec.MatVecTuned(a.Data(), v.Data(), n, n, out) }},
		{"MatMul", wantMat, func(out []float64) { matmul.MatMul(a.Data(), b.Data(), n, out) }},
		{"MatMulTuned", wantMat, func(out []float64) { matmul.MatMulTuned(a.Data(), b.Data(), n, out) }},
	}

	var errs []error
	for _, c := range checks {
		out := make([]float64, len(c.want))
		c.run(out)
		status := "ok"
		if err := verify.Compare(out, c.want, tolerance); err != nil {
			status = "FAIL"
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
		fmt.Fprintf(w, "n=%-5d %-12s max rel err %.2e  %s\n", n, c.name, verify.MaxRelError(out, c.want), status)
	}
	return errors.Join(errs...)
}
