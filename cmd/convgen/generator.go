// Copyright 2025 go-vision Authors
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
	"strings"

	"golang.org/x/tools/imports"
)

const typeParams = "[T image.Pixel, K kernel.Coefficient, A Accumulator]"

// Generator emits the unrolled loops for a set of kernel widths.
type Generator struct {
	Package string
	Widths  []int
}

// op describes one generated operation: its name, the dispatcher's
// parameter list and the arguments forwarded to each width.
type op struct {
	name   string
	doc    string
	kernel string
	params string
	args   string
	emit   func(buf *bytes.Buffer, w int)
}

func (g *Generator) ops() []op {
	return []op{
		{
			name:   "horizontal",
			doc:    "runs the unrolled horizontal loop over rows [y0, y1)",
			kernel: "*kernel.Kernel1D[K]",
			params: "src, dst *image.Gray[T], s scale[A], y0, y1 int",
			args:   "k, src, dst, s, y0, y1",
			emit:   emitHorizontal,
		},
		{
			name:   "vertical",
			doc:    "runs the unrolled vertical loop over destination rows [y0, y1)",
			kernel: "*kernel.Kernel1D[K]",
			params: "src, dst *image.Gray[T], s scale[A], y0, y1 int",
			args:   "k, src, dst, s, y0, y1",
			emit:   emitVertical,
		},
		{
			name:   "convolve",
			doc:    "runs the unrolled 2D loop over destination rows [y0, y1)",
			kernel: "*kernel.Kernel2D[K]",
			params: "src, dst *image.Gray[T], s scale[A], y0, y1 int",
			args:   "k, src, dst, s, y0, y1",
			emit:   emitConvolve,
		},
		{
			name:   "horizontalDown",
			doc:    "runs the unrolled horizontal down-sampling loop over rows [y0, y1)",
			kernel: "*kernel.Kernel1D[K]",
			params: "skip int, src, dst *image.Gray[T], s scale[A], c0, n, y0, y1 int",
			args:   "k, skip, src, dst, s, c0, n, y0, y1",
			emit:   emitHorizontalDown,
		},
		{
			name:   "verticalDown",
			doc:    "runs the unrolled vertical down-sampling loop for samples [j0, j1)",
			kernel: "*kernel.Kernel1D[K]",
			params: "skip int, src, dst *image.Gray[T], s scale[A], c0, j0, j1 int",
			args:   "k, skip, src, dst, s, c0, j0, j1",
			emit:   emitVerticalDown,
		},
		{
			name:   "convolveDown",
			doc:    "runs the unrolled 2D down-sampling loop for sample rows [j0, j1)",
			kernel: "*kernel.Kernel2D[K]",
			params: "skip int, src, dst *image.Gray[T], s scale[A], cx0, nx, cy0, j0, j1 int",
			args:   "k, skip, src, dst, s, cx0, nx, cy0, j0, j1",
			emit:   emitConvolveDown,
		},
	}
}

// Generate returns the formatted source of the generated file.
func (g *Generator) Generate(filename string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by convgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"github.com/ajroetker/go-vision/image\"\n")
	fmt.Fprintf(&buf, "\t\"github.com/ajroetker/go-vision/kernel\"\n")
	fmt.Fprintf(&buf, ")\n\n")

	widths := make([]string, len(g.Widths))
	for i, w := range g.Widths {
		widths[i] = fmt.Sprint(w)
	}
	fmt.Fprintf(&buf, "// unrolledWidths lists the kernel widths with generated loops.\n")
	fmt.Fprintf(&buf, "var unrolledWidths = []int{%s}\n", strings.Join(widths, ", "))

	ops := g.ops()
	for _, o := range ops {
		g.emitDispatcher(&buf, o)
	}
	for _, o := range ops {
		for _, w := range g.Widths {
			fmt.Fprintf(&buf, "\nfunc %s%d%s(k %s, %s) {\n", o.name, w, typeParams, o.kernel, o.params)
			o.emit(&buf, w)
			fmt.Fprintf(&buf, "}\n")
		}
	}

	return imports.Process(filename, buf.Bytes(), nil)
}

func (g *Generator) emitDispatcher(buf *bytes.Buffer, o op) {
	fmt.Fprintf(buf, "\n// %sUnrolled %s. It returns false, without\n", o.name, o.doc)
	fmt.Fprintf(buf, "// touching dst, when no loop exists for the kernel's shape.\n")
	fmt.Fprintf(buf, "func %sUnrolled%s(k %s, %s) bool {\n", o.name, typeParams, o.kernel, o.params)
	fmt.Fprintf(buf, "\tif !k.IsSymmetricOdd() {\n\t\treturn false\n\t}\n")
	fmt.Fprintf(buf, "\tswitch k.Width() {\n")
	for _, w := range g.Widths {
		fmt.Fprintf(buf, "\tcase %d:\n\t\t%s%d(%s)\n", w, o.name, w, o.args)
	}
	fmt.Fprintf(buf, "\tdefault:\n\t\treturn false\n\t}\n")
	fmt.Fprintf(buf, "\treturn true\n}\n")
}

// loadCoefficients declares k1..kw from the slice named c.
func loadCoefficients(buf *bytes.Buffer, indent string, w int) {
	for i := range w {
		fmt.Fprintf(buf, "%sk%d := A(c[%d])\n", indent, i+1, i)
	}
}

// sumStatements accumulates q[0..w) into total, one statement per tap.
func sumStatements(buf *bytes.Buffer, indent string, w int) {
	fmt.Fprintf(buf, "%stotal := A(q[0]) * k1\n", indent)
	for i := 1; i < w; i++ {
		fmt.Fprintf(buf, "%stotal += A(q[%d]) * k%d\n", indent, i, i+1)
	}
}

// columnStatements accumulates a column starting at index i into total.
func columnStatements(buf *bytes.Buffer, indent string, w int) {
	fmt.Fprintf(buf, "%si := indexSrc + x\n", indent)
	fmt.Fprintf(buf, "%stotal := A(src.Data[i]) * k1\n", indent)
	for t := 1; t < w; t++ {
		fmt.Fprintf(buf, "%si += stride\n", indent)
		fmt.Fprintf(buf, "%stotal += A(src.Data[i]) * k%d\n", indent, t+1)
	}
}

// rowExpression returns the sum of products of q with k1..kw.
func rowExpression(w int) string {
	terms := make([]string, w)
	for i := range w {
		terms[i] = fmt.Sprintf("A(q[%d])*k%d", i, i+1)
	}
	return strings.Join(terms, " + ")
}

func emitHorizontal(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tc := k.Coefficients()\n")
	loadCoefficients(buf, "\t", w)
	fmt.Fprintf(buf, "\n\tx1 := src.Width - %d\n", r)
	fmt.Fprintf(buf, "\tfor y := y0; y < y1; y++ {\n")
	fmt.Fprintf(buf, "\t\tp := src.Data[src.StartIndex+y*src.Stride:]\n")
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + y*dst.Stride + %d\n", r)
	fmt.Fprintf(buf, "\t\tfor x := %d; x < x1; x++ {\n", r)
	fmt.Fprintf(buf, "\t\t\tq := p[x-%d : x+%d]\n", r, r+1)
	sumStatements(buf, "\t\t\t", w)
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst] = T(s.apply(total))\n")
	fmt.Fprintf(buf, "\t\t\tindexDst++\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}

func emitVertical(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tc := k.Coefficients()\n")
	loadCoefficients(buf, "\t", w)
	fmt.Fprintf(buf, "\n\tstride := src.Stride\n")
	fmt.Fprintf(buf, "\tfor y := y0; y < y1; y++ {\n")
	fmt.Fprintf(buf, "\t\tindexSrc := src.StartIndex + (y-%d)*stride\n", r)
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + y*dst.Stride\n")
	fmt.Fprintf(buf, "\t\tfor x := range src.Width {\n")
	columnStatements(buf, "\t\t\t", w)
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst+x] = T(s.apply(total))\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}

// emitRowPasses writes the kernel-row loop of the 2D routines. The first
// kernel row assigns into totalRow and the others accumulate, so totalRow
// never needs clearing.
func emitRowPasses(buf *bytes.Buffer, w int, rowStart, loopHead, window string) {
	fmt.Fprintf(buf, "\t\tfor ky := range %d {\n", w)
	fmt.Fprintf(buf, "\t\t\tc := coef[ky*%d : ky*%d+%d]\n", w, w, w)
	loadCoefficients(buf, "\t\t\t", w)
	fmt.Fprintf(buf, "\t\t\t%s\n", rowStart)
	fmt.Fprintf(buf, "\t\t\tif ky == 0 {\n")
	fmt.Fprintf(buf, "\t\t\t\t%s {\n", loopHead)
	fmt.Fprintf(buf, "\t\t\t\t\tq := %s\n", window)
	fmt.Fprintf(buf, "\t\t\t\t\ttotalRow[i] = %s\n", rowExpression(w))
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t} else {\n")
	fmt.Fprintf(buf, "\t\t\t\t%s {\n", loopHead)
	fmt.Fprintf(buf, "\t\t\t\t\tq := %s\n", window)
	fmt.Fprintf(buf, "\t\t\t\t\ttotalRow[i] += %s\n", rowExpression(w))
	fmt.Fprintf(buf, "\t\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t}\n")
}

func emitConvolve(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tcoef := k.Coefficients()\n")
	fmt.Fprintf(buf, "\tx1 := src.Width - %d\n", r)
	fmt.Fprintf(buf, "\ttotalRow := make([]A, src.Width)\n")
	fmt.Fprintf(buf, "\tfor y := y0; y < y1; y++ {\n")
	emitRowPasses(buf, w,
		fmt.Sprintf("p := src.Data[src.StartIndex+(y-%d+ky)*src.Stride:]", r),
		fmt.Sprintf("for i := %d; i < x1; i++", r),
		fmt.Sprintf("p[i-%d : i+%d]", r, r+1))
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + y*dst.Stride\n")
	fmt.Fprintf(buf, "\t\tfor x := %d; x < x1; x++ {\n", r)
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst+x] = T(s.apply(totalRow[x]))\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}

func emitHorizontalDown(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tc := k.Coefficients()\n")
	loadCoefficients(buf, "\t", w)
	fmt.Fprintf(buf, "\n\tfor y := y0; y < y1; y++ {\n")
	fmt.Fprintf(buf, "\t\tindexSrc := src.StartIndex + y*src.Stride + c0 - %d\n", r)
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + y*dst.Stride + c0/skip\n")
	fmt.Fprintf(buf, "\t\tfor range n {\n")
	fmt.Fprintf(buf, "\t\t\tq := src.Data[indexSrc : indexSrc+%d]\n", w)
	sumStatements(buf, "\t\t\t", w)
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst] = T(s.apply(total))\n")
	fmt.Fprintf(buf, "\t\t\tindexDst++\n")
	fmt.Fprintf(buf, "\t\t\tindexSrc += skip\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}

func emitVerticalDown(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tc := k.Coefficients()\n")
	loadCoefficients(buf, "\t", w)
	fmt.Fprintf(buf, "\n\tstride := src.Stride\n")
	fmt.Fprintf(buf, "\tfor j := j0; j < j1; j++ {\n")
	fmt.Fprintf(buf, "\t\tindexSrc := src.StartIndex + (c0+j*skip-%d)*stride\n", r)
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + (c0/skip+j)*dst.Stride\n")
	fmt.Fprintf(buf, "\t\tfor x := range src.Width {\n")
	columnStatements(buf, "\t\t\t", w)
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst+x] = T(s.apply(total))\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}

func emitConvolveDown(buf *bytes.Buffer, w int) {
	r := w / 2
	fmt.Fprintf(buf, "\tcoef := k.Coefficients()\n")
	fmt.Fprintf(buf, "\ttotalRow := make([]A, nx)\n")
	fmt.Fprintf(buf, "\tfor j := j0; j < j1; j++ {\n")
	fmt.Fprintf(buf, "\t\tcy := cy0 + j*skip\n")
	emitRowPasses(buf, w,
		fmt.Sprintf("indexSrc := src.StartIndex + (cy-%d+ky)*src.Stride + cx0 - %d", r, r),
		"for i := range nx",
		fmt.Sprintf("src.Data[indexSrc+i*skip : indexSrc+i*skip+%d]", w))
	fmt.Fprintf(buf, "\t\tindexDst := dst.StartIndex + (cy0/skip+j)*dst.Stride + cx0/skip\n")
	fmt.Fprintf(buf, "\t\tfor i, total := range totalRow {\n")
	fmt.Fprintf(buf, "\t\t\tdst.Data[indexDst+i] = T(s.apply(total))\n")
	fmt.Fprintf(buf, "\t\t}\n\t}\n")
}
