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

// Command matbench times and checks the naive and tuned kernels.
//
// Usage:
//
//	matbench run --sizes 64,128,256 --reps 5
//	matbench verify --sizes 8,10,64
//	matbench print --rows 8 --cols 8
//	matbench cpu
//
// The random source is seeded once at startup from --seed, or from
// MATKERN_SEED when the flag is not given.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matkern/storage"
)

// SeedEnv names the environment variable read for the default seed.
const SeedEnv = "MATKERN_SEED"

type config struct {
	seed uint64
	base int
}

// allocator seeds the process-wide source and returns an allocator with the
// configured base.
func (c *config) allocator() *storage.Allocator {
	storage.Seed(c.seed)
	return storage.NewAllocator(storage.WithBase(c.base))
}

// seedFromEnv returns the seed in SeedEnv, or storage.DefaultSeed when it is
// unset or not a number.
func seedFromEnv() uint64 {
	val := os.Getenv(SeedEnv)
	if val == "" {
		return storage.DefaultSeed
	}
	seed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return storage.DefaultSeed
	}
	return seed
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "matbench",
		Short:         "Benchmark naive and tuned dense matrix kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Uint64Var(&cfg.seed, "seed", seedFromEnv(), "Seed for the random source (env "+SeedEnv+")")
	root.PersistentFlags().IntVar(&cfg.base, "base", storage.DefaultBase, "Magnitude of generated values (BASE)")

	root.AddCommand(
		newRunCmd(cfg),
		newVerifyCmd(cfg),
		newPrintCmd(cfg),
		newCPUCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
