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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// MaxStride bounds the unroll factor; past this the accumulators no longer
// fit in registers on any supported target.
const MaxStride = 32

// kernelKind describes one family of unrolled kernels.
type kernelKind struct {
	// nameParts are joined in camelCase and suffixed with the stride,
	// e.g. ["mat", "vec", "group"] -> matVecGroup8.
	nameParts []string
	tmpl      *template.Template
}

var kinds = map[string]kernelKind{
	"matvec": {
		nameParts: []string{"mat", "vec", "group"},
		tmpl:      template.Must(template.New("matvec").Parse(matvecTemplate)),
	},
	"matmul": {
		nameParts: []string{"mul", "strip"},
		tmpl:      template.Must(template.New("matmul").Parse(matmulTemplate)),
	},
}

// Kinds returns the supported kernel kinds in sorted order.
func Kinds() []string {
	names := lo.Keys(kinds)
	slices.Sort(names)
	return names
}

// templateData is passed to the kernel templates.
type templateData struct {
	Package      string
	Name         string
	Stride       int
	Last         int
	Lanes        []int
	Accumulators string
}

// Generator renders one unrolled kernel file.
type Generator struct {
	Kind      string
	Stride    int
	OutputDir string
	Package   string
}

// KernelName returns the identifier of the generated function.
func KernelName(parts []string, stride int) string {
	caser := cases.Title(language.English)
	var sb strings.Builder
	for i, p := range parts {
		if i == 0 {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(caser.String(p))
	}
	sb.WriteString(strconv.Itoa(stride))
	return sb.String()
}

// FileName returns the output file name for kind.
func FileName(kind string) string {
	return fmt.Sprintf("z_%s_unrolled.go", kind)
}

// Generate returns the formatted source for the configured kernel.
func (g *Generator) Generate() ([]byte, error) {
	k, ok := kinds[g.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", g.Kind, strings.Join(Kinds(), ","))
	}
	if g.Stride < 1 || g.Stride > MaxStride {
		return nil, fmt.Errorf("stride %d out of range [1, %d]", g.Stride, MaxStride)
	}

	pkg := g.Package
	if pkg == "" {
		pkg = g.Kind
	}
	lanes := lo.Range(g.Stride)
	data := templateData{
		Package: pkg,
		Name:    KernelName(k.nameParts, g.Stride),
		Stride:  g.Stride,
		Last:    g.Stride - 1,
		Lanes:   lanes,
		Accumulators: strings.Join(lo.Map(lanes, func(lane int, _ int) string {
			return "c" + strconv.Itoa(lane)
		}), ", "),
	}

	var buf bytes.Buffer
	if err := k.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", g.Kind, err)
	}

	src, err := imports.Process(FileName(g.Kind), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s kernel: %w\n%s", g.Kind, err, buf.String())
	}
	return src, nil
}

// Run generates the kernel and writes it to OutputDir.
func (g *Generator) Run() (string, error) {
	src, err := g.Generate()
	if err != nil {
		return "", err
	}
	path := filepath.Join(g.OutputDir, FileName(g.Kind))
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

const matvecTemplate = `// Code generated by kerngen. DO NOT EDIT.

package {{.Package}}

// {{.Name}} accumulates rows i through i+{{.Last}} of mat * vec into result.
// Each vec[j] is loaded once and feeds {{.Stride}} accumulators.
func {{.Name}}(mat, vec []float64, n, i int, result []float64) {
	vec = vec[:n]
	res := result[i : i+{{.Stride}}]

	off := i * n
{{- range .Lanes}}
{{- if .}}
	off += n
{{- end}}
	row{{.}} := mat[off : off+n]
{{- end}}
{{range .Lanes}}
	acc{{.}} := res[{{.}}]
{{- end}}

	for j, x := range vec {
{{- range .Lanes}}
		acc{{.}} += row{{.}}[j] * x
{{- end}}
	}
{{range .Lanes}}
	res[{{.}}] = acc{{.}}
{{- end}}
}
`

const matmulTemplate = `// Code generated by kerngen. DO NOT EDIT.

package {{.Package}}

// {{.Name}} updates C[i, j:j+{{.Stride}}] with A[i, kStart:kEnd] * B[kStart:kEnd, j:j+{{.Stride}}].
// The {{.Stride}} C values are held in registers for the whole k range, starting from
// zero when fresh is set and from the stored partial sums otherwise.
func {{.Name}}(a, b, c []float64, n, i, j, kStart, kEnd int, fresh bool) {
	cRow := c[i*n+j : i*n+j+{{.Stride}}]
	aRow := a[i*n : i*n+n]

	var {{.Accumulators}} float64
	if !fresh {
{{- range .Lanes}}
		c{{.}} = cRow[{{.}}]
{{- end}}
	}

	for k := kStart; k < kEnd; k++ {
		aik := aRow[k]
		bRow := b[k*n+j : k*n+j+{{.Stride}}]
{{- range .Lanes}}
		c{{.}} += aik * bRow[{{.}}]
{{- end}}
	}
{{range .Lanes}}
	cRow[{{.}}] = c{{.}}
{{- end}}
}
`
