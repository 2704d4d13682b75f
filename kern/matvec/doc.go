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

// Package matvec provides float64 matrix-vector multiplication kernels over
// row-major matrices.
//
// Two kernels are provided and are interchangeable:
//   - MatVec: reference double loop.
//   - MatVecTuned: rows processed in groups of Stride, so each vec[j] load is
//     reused by Stride accumulators held in registers. Rows past the last
//     full group take a scalar remainder loop.
//
// Both kernels accumulate into result (result += M * v) and never clear it;
// pass a zeroed result to get M * v. A nil result is a silent no-op.
//
// MatVecTuned requires that mat, vec and result do not overlap. Overlapping
// buffers give undefined results.
//
// The unrolled group kernel lives in z_matvec_unrolled.go and is produced by
// cmd/kerngen.
package matvec
