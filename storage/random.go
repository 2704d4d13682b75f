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

package storage

import "math/rand/v2"

// DefaultSeed seeds the process-wide source at startup.
const DefaultSeed uint64 = 20240901

// global is the process-wide source. It is not safe for concurrent use;
// generation is single-threaded.
var global = newSource(DefaultSeed)

func newSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed replaces the process-wide source with one seeded from seed.
// Nothing else in this package reseeds it.
func Seed(seed uint64) {
	global = newSource(seed)
}

// NewSource returns an independent source for use with WithSource.
func NewSource(seed uint64) *rand.Rand {
	return newSource(seed)
}
