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

// Package storage allocates the operands used by the kernels in kern/.
//
// Three buffer kinds are provided:
//
//   - Rows: a matrix stored as m independently allocated rows of n elements.
//   - Flat: a matrix stored as one contiguous row-major buffer, element (i,j)
//     at offset i*n+j.
//   - Vector: a contiguous buffer of n elements.
//
// Every buffer is owned by the handle returned from its constructor and is
// given back with Release. Release is nil-safe and idempotent, and a failed
// constructor never leaves elements allocated behind it.
//
// # Generated values
//
// Non-zeroed matrices are filled with
//
//	A[i][j] = (i == j ? 2*Base : 1) * U
//
// and non-zeroed vectors with 4*Base*U, where U is uniform in [0,1) and drawn
// from the process-wide source. The diagonal scaling makes generated square
// matrices diagonally dominant in expectation while n-1 < 2*Base.
//
// The process-wide source is seeded once with DefaultSeed and only reseeded by
// an explicit call to Seed, so runs are reproducible.
//
// # Usage
//
//	storage.Seed(42)
//
//	a, err := storage.NewFlat(n, n, false)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
package storage
