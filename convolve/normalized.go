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

package convolve

import (
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

// The loops in this file skip samples outside the image and divide by the
// sum of the coefficients that were used, so a border pixel is a weighted
// average of the pixels that exist.

func horizontalJustBorderRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	lo, hi := edges(src.Width, len(coef), off)
	for y := y0; y < y1; y++ {
		row := src.Data[src.StartIndex+y*src.Stride : src.StartIndex+y*src.Stride+src.Width]
		indexDst := dst.StartIndex + y*dst.Stride
		for x := range lo {
			dst.Data[indexDst+x] = partial1D[T, K, A](coef, row, x-off)
		}
		for x := hi; x < src.Width; x++ {
			dst.Data[indexDst+x] = partial1D[T, K, A](coef, row, x-off)
		}
	}
}

// partial1D applies coef to row starting at start, skipping samples outside
// row.
func partial1D[T image.Pixel, K kernel.Coefficient, A Accumulator](coef []K, row []T, start int) T {
	var total, weight A
	for i, c := range coef {
		x := start + i
		if x < 0 || x >= len(row) {
			continue
		}
		total += A(row[x]) * A(c)
		weight += A(c)
	}
	return normalize[T](total, weight)
}

// verticalNormalizedRows computes every pixel of rows [y0, y1) with partial
// normalization.
func verticalNormalizedRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	for y := y0; y < y1; y++ {
		t0 := max(0, off-y)
		t1 := min(len(coef), src.Height-y+off)
		indexDst := dst.StartIndex + y*dst.Stride
		for x := range src.Width {
			var total, weight A
			i := src.StartIndex + (y-off+t0)*src.Stride + x
			for _, c := range coef[t0:t1] {
				total += A(src.Data[i]) * A(c)
				weight += A(c)
				i += src.Stride
			}
			dst.Data[indexDst+x] = normalize[T](total, weight)
		}
	}
}

func convolveJustBorderRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], src, dst *image.Gray[T], y0, y1 int) {
	w, off := k.Width(), k.Offset()
	xlo, xhi := edges(src.Width, w, off)
	ylo, yhi := edges(src.Height, w, off)
	for y := y0; y < y1; y++ {
		indexDst := dst.StartIndex + y*dst.Stride
		if y < ylo || y >= yhi {
			for x := range src.Width {
				dst.Data[indexDst+x] = partial2D[T, K, A](k, src, x, y)
			}
			continue
		}
		for x := range xlo {
			dst.Data[indexDst+x] = partial2D[T, K, A](k, src, x, y)
		}
		for x := xhi; x < src.Width; x++ {
			dst.Data[indexDst+x] = partial2D[T, K, A](k, src, x, y)
		}
	}
}

func partial2D[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], src *image.Gray[T], x, y int) T {
	coef := k.Coefficients()
	w, off := k.Width(), k.Offset()
	kx0, kx1 := max(0, off-x), min(w, src.Width-x+off)
	ky0, ky1 := max(0, off-y), min(w, src.Height-y+off)
	var total, weight A
	for ky := ky0; ky < ky1; ky++ {
		indexSrc := src.StartIndex + (y-off+ky)*src.Stride + x - off
		for kx := kx0; kx < kx1; kx++ {
			c := A(coef[ky*w+kx])
			total += A(src.Data[indexSrc+kx]) * c
			weight += c
		}
	}
	return normalize[T](total, weight)
}

// horizontalDownNormalizedRows writes every output column of rows [y0, y1),
// column i centered on source column i*skip.
func horizontalDownNormalizedRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	for y := y0; y < y1; y++ {
		row := src.Data[src.StartIndex+y*src.Stride : src.StartIndex+y*src.Stride+src.Width]
		indexDst := dst.StartIndex + y*dst.Stride
		for i := range dst.Width {
			dst.Data[indexDst+i] = partial1D[T, K, A](coef, row, i*skip-off)
		}
	}
}

// verticalDownNormalizedRows writes output rows [j0, j1), row j centered on
// source row j*skip.
func verticalDownNormalizedRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], j0, j1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	for j := j0; j < j1; j++ {
		c := j * skip
		t0 := max(0, off-c)
		t1 := min(len(coef), src.Height-c+off)
		indexDst := dst.StartIndex + j*dst.Stride
		for x := range src.Width {
			var total, weight A
			i := src.StartIndex + (c-off+t0)*src.Stride + x
			for _, v := range coef[t0:t1] {
				total += A(src.Data[i]) * A(v)
				weight += A(v)
				i += src.Stride
			}
			dst.Data[indexDst+x] = normalize[T](total, weight)
		}
	}
}
