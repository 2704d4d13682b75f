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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matkern/display"
	"github.com/ajroetker/go-matkern/kern/matmul"
	"github.com/ajroetker/go-matkern/kern/matvec"
	"github.com/ajroetker/go-matkern/storage"
)

func newPrintCmd(cfg *config) *cobra.Command {
	var (
		rows, cols int
		zeroed     bool
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Generate small operands and dump them with the tuned results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows < 1 || cols < 1 {
				return fmt.Errorf("%w: --rows and --cols must be positive", ErrBadFlag)
			}
			return printOperands(cmd.OutOrStdout(), cfg.allocator(), rows, cols, zeroed)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 8, "Number of rows (m)")
	cmd.Flags().IntVar(&cols, "cols", 8, "Number of columns (n)")
	cmd.Flags().BoolVar(&zeroed, "zero", false, "Generate zero-filled operands")
	return cmd
}

// printOperands dumps a row-pointer matrix, its flat copy, a vector and the
// tuned products. The matrix product is only shown for square shapes.
func printOperands(w io.Writer, alloc *storage.Allocator, m, n int, zeroed bool) error {
	rowsMat, err := alloc.NewRows(m, n, zeroed)
	if err != nil {
		return err
	}
	defer rowsMat.Release()
	flat, err := rowsMat.Flatten()
	if err != nil {
		return err
	}
	defer flat.Release()
	vec, err := alloc.NewVector(n, zeroed)
	if err != nil {
		return err
	}
	defer vec.Release()
	result, err := alloc.NewVector(m, true)
	if err != nil {
		return err
	}
	defer result.Release()

	fmt.Fprintf(w, "A (%dx%d, rows):\n", m, n)
	if err := display.WriteRows(w, rowsMat); err != nil {
		return err
	}
	fmt.Fprintln(w, "A (flat):")
	if err := display.WriteFlat(w, flat); err != nil {
		return err
	}
	fmt.Fprintln(w, "v:")
	if err := display.WriteVector(w, vec); err != nil {
		return err
	}

	matvec.MatVecTuned(flat.Data(), vec.Data(), m, n, result.Data())
	fmt.Fprintln(w, "A*v:")
	if err := display.WriteVector(w, result); err != nil {
		return err
	}

	if m != n {
		return nil
	}
	product, err := alloc.NewFlat(n, n, true)
	if err != nil {
		return err
	}
	defer product.Release()
	matmul.MatMulTuned(flat.Data(), flat.Data(), n, product.Data())
	fmt.Fprintln(w, "A*A:")
	return display.WriteFlat(w, product)
}
