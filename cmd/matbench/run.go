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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-matkern/internal/cpuinfo"
	"github.com/ajroetker/go-matkern/internal/verify"
)

func newRunCmd(cfg *config) *cobra.Command {
	var (
		sizes []int
		reps  int
		op    string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time naive and tuned kernels for each size",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opList, err := ops(op)
			if err != nil {
				return err
			}
			sizes, err := normalizeSizes(sizes)
			if err != nil {
				return err
			}
			results, err := runBenchmarks(cfg.allocator(), opList, sizes, reps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s seed=%d base=%d reps=%d\n", cpuinfo.Collect().Summary(), cfg.seed, cfg.base, reps)
			return writeReport(out, results)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{64, 128, 256}, "Matrix orders to run")
	cmd.Flags().IntVar(&reps, "reps", 5, "Repetitions per kernel; the best run is reported")
	cmd.Flags().StringVar(&op, "op", OpAll, "Operation: matvec, matmul or all")
	return cmd
}

// writeReport prints one line per result. Large numbers are grouped the
// English way (1,234,567).
func writeReport(w io.Writer, results []Result) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "op\tn\tflops\tnaive best\tnaive avg\ttuned best\ttuned avg\tnaive MFLOP/s\ttuned MFLOP/s\tspeedup\tmax rel err\t\n")
	for _, r := range results {
		p.Fprintf(tw, "%s\t%d\t%d\t%v\t%v\t%v\t%v\t%.1f\t%.1f\t%.2fx\t%.2e\t\n",
			r.Op, r.Size, r.Flops,
			r.Naive.Best, r.Naive.Avg, r.Tuned.Best, r.Tuned.Avg,
			r.Naive.MFLOPS(r.Flops), r.Tuned.MFLOPS(r.Flops),
			r.Speedup(), r.RelErr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range results {
		if r.RelErr > verify.DefaultTolerance {
			return fmt.Errorf("%s n=%d: tuned differs from naive by %.2e: %w",
				r.Op, r.Size, r.RelErr, verify.ErrMismatch)
		}
	}
	return nil
}
