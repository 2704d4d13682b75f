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
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-matkern/internal/verify"
	"github.com/ajroetker/go-matkern/kern/matmul"
	"github.com/ajroetker/go-matkern/kern/matvec"
	"github.com/ajroetker/go-matkern/storage"
)

// Operation names accepted by --op.
const (
	OpMatVec = "matvec"
	OpMatMul = "matmul"
	OpAll    = "all"
)

// ErrBadFlag is returned for flag values the commands cannot use.
var ErrBadFlag = errors.New("matbench: invalid flag value")

// Timing summarises repeated runs of one kernel.
type Timing struct {
	Best time.Duration
	Avg  time.Duration
}

// MFLOPS returns the rate of the best run for flops floating-point operations.
func (t Timing) MFLOPS(flops int) float64 {
	if t.Best <= 0 {
		return 0
	}
	return float64(flops) / t.Best.Seconds() / 1e6
}

// Result is one row of the benchmark report.
type Result struct {
	Op     string
	Size   int
	Flops  int
	Naive  Timing
	Tuned  Timing
	RelErr float64
}

// Speedup is naive best time over tuned best time.
func (r Result) Speedup() float64 {
	if r.Tuned.Best <= 0 {
		return 0
	}
	return r.Naive.Best.Seconds() / r.Tuned.Best.Seconds()
}

// timeKernel runs reset then fn reps times and times fn only.
func timeKernel(reps int, reset, fn func()) Timing {
	var best, total time.Duration
	for i := range reps {
		reset()
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		total += elapsed
		if i == 0 || elapsed < best {
			best = elapsed
		}
	}
	return Timing{Best: best, Avg: total / time.Duration(reps)}
}

// benchMatVec times an n x n matrix-vector product.
func benchMatVec(alloc *storage.Allocator, n, reps int) (Result, error) {
	mat, err := alloc.NewFlat(n, n, false)
	if err != nil {
		return Result{}, err
	}
	defer mat.Release()
	vec, err := alloc.NewVector(n, false)
	if err != nil {
		return Result{}, err
	}
	defer vec.Release()
	naive, err := alloc.NewVector(n, true)
	if err != nil {
		return Result{}, err
	}
	defer naive.Release()
	tuned, err := alloc.NewVector(n, true)
	if err != nil {
		return Result{}, err
	}
	defer tuned.Release()

	r := Result{Op: OpMatVec, Size: n, Flops: 2 * n * n}
	r.Naive = timeKernel(reps, naive.Zero, func() {
		matvec.MatVec(mat.Data(), vec.Data(), n, n, naive.Data())
	})
	r.Tuned = timeKernel(reps, tuned.Zero, func() {
		matvec.MatVecTuned(mat.Data(), vec.Data(), n, n, tuned.Data())
	})
	r.RelErr = verify.MaxRelError(tuned.Data(), naive.Data())
	return r, nil
}

// benchMatMul times an n x n matrix-matrix product.
func benchMatMul(alloc *storage.Allocator, n, reps int) (Result, error) {
	a, err := alloc.NewFlat(n, n, false)
	if err != nil {
		return Result{}, err
	}
	defer a.Release()
	b, err := alloc.NewFlat(n, n, false)
	if err != nil {
		return Result{}, err
	}
	defer b.Release()
	naive, err := alloc.NewFlat(n, n, true)
	if err != nil {
		return Result{}, err
	}
	defer naive.Release()
	tuned, err := alloc.NewFlat(n, n, true)
	if err != nil {
		return Result{}, err
	}
	defer tuned.Release()

	r := Result{Op: OpMatMul, Size: n, Flops: 2 * n * n * n}
	r.Naive = timeKernel(reps, naive.Zero, func() {
		matmul.MatMul(a.Data(), b.Data(), n, naive.Data())
	})
	r.Tuned = timeKernel(reps, tuned.Zero, func() {
		matmul.MatMulTuned(a.Data(), b.Data(), n, tuned.Data())
	})
	r.RelErr = verify.MaxRelError(tuned.Data(), naive.Data())
	return r, nil
}

// ops expands --op into the operations to run.
func ops(op string) ([]string, error) {
	switch op {
	case OpMatVec, OpMatMul:
		return []string{op}, nil
	case OpAll:
		return []string{OpMatVec, OpMatMul}, nil
	}
	return nil, fmt.Errorf("%w: --op %q (want %s)", ErrBadFlag, op,
		strings.Join([]string{OpMatVec, OpMatMul, OpAll}, ", "))
}

// normalizeSizes drops duplicates and sorts; non-positive sizes are rejected.
func normalizeSizes(sizes []int) ([]int, error) {
	if bad := lo.Filter(sizes, func(n int, _ int) bool { return n <= 0 }); len(bad) > 0 {
		return nil, fmt.Errorf("%w: --sizes must be positive, got %v", ErrBadFlag, bad)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: --sizes is empty", ErrBadFlag)
	}
	out := lo.Uniq(sizes)
	slices.Sort(out)
	return out, nil
}

// runBenchmarks runs every (op, size) pair.
func runBenchmarks(alloc *storage.Allocator, opList []string, sizes []int, reps int) ([]Result, error) {
	if reps < 1 {
		return nil, fmt.Errorf("%w: --reps must be at least 1, got %d", ErrBadFlag, reps)
	}
	benches := map[string]func(*storage.Allocator, int, int) (Result, error){
		OpMatVec: benchMatVec,
		OpMatMul: benchMatMul,
	}

	var results []Result
	for _, op := range opList {
		for _, n := range sizes {
			r, err := benches[op](alloc, n, reps)
			if err != nil {
				return results, fmt.Errorf("%s n=%d: %w", op, n, err)
			}
			results = append(results, r)
		}
	}
	return results, nil
}
