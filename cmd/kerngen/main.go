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

// Command kerngen generates the register-unrolled inner kernels used by
// kern/matvec and kern/matmul.
//
// Usage:
//
//	kerngen --kind matvec --stride 8 --output .
//	kerngen --kind matmul --stride 4 --output /tmp --pkg scratch
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/kerngen --kind matvec --stride 8 --output .
//
// The output file is z_<kind>_unrolled.go. The stride must match the Stride
// constant of the package that uses the kernel.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

var (
	kind       = flag.String("kind", "", "Kernel kind ("+strings.Join(Kinds(), ",")+") (required)")
	stride     = flag.Int("stride", 8, "Unroll factor")
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("pkg", "", "Output package name (default: the kind)")
)

func main() {
	flag.Parse()

	if *kind == "" {
		fmt.Fprintf(os.Stderr, "Error: --kind flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Kind:      *kind,
		Stride:    *stride,
		OutputDir: *outputDir,
		Package:   *packageOut,
	}
	path, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", path)
}
