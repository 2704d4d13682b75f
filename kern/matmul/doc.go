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

// Package matmul provides float64 square matrix multiplication kernels over
// row-major matrices of order n.
//
// # Kernels
//
//   - MatMul: reference i-j-k triple loop, C += A * B.
//   - MatMulTuned: cache tiles of BlockSize along i, j and k, with an
//     unrolled strip of Stride C elements kept in registers across each k
//     tile, C = A * B.
//
// MatMul only accumulates; the caller zeroes C first. MatMulTuned writes
// every element of C, zeroing each output strip once before the first k
// tile, so partial sums from earlier k tiles are never discarded.
//
// Orders that are not a multiple of BlockSize are supported: edge tiles are
// clipped and leftover columns use a scalar strip.
//
// MatMulTuned requires that a, b and c do not overlap. Overlapping buffers
// give undefined results.
//
// The unrolled strip kernel lives in z_matmul_unrolled.go and is produced by
// cmd/kerngen.
package matmul
