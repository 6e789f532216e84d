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
	"github.com/ajroetker/go-vision/border"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

// Edge loops compute the pixels the inner loops skip, reading every sample
// through the bound border.

func horizontalEdgeRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	width := b.Image().Width
	lo, hi := edges(width, len(coef), off)
	at := func(x, y int) T {
		var total A
		for i, c := range coef {
			total += A(b.Get(x-off+i, y)) * A(c)
		}
		return T(s.apply(total))
	}
	for y := y0; y < y1; y++ {
		indexDst := dst.StartIndex + y*dst.Stride
		for x := range lo {
			dst.Data[indexDst+x] = at(x, y)
		}
		for x := hi; x < width; x++ {
			dst.Data[indexDst+x] = at(x, y)
		}
	}
}

// verticalEdgeRows computes every pixel of rows [y0, y1) through the border.
func verticalEdgeRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	width := b.Image().Width
	for y := y0; y < y1; y++ {
		indexDst := dst.StartIndex + y*dst.Stride
		for x := range width {
			var total A
			for i, c := range coef {
				total += A(b.Get(x, y-off+i)) * A(c)
			}
			dst.Data[indexDst+x] = T(s.apply(total))
		}
	}
}

// convolveEdgeRows computes the border pixels of rows [y0, y1): the whole row
// outside the vertical footprint range, the edge columns inside it.
func convolveEdgeRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], b border.Border[T], dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	w, off := k.Width(), k.Offset()
	img := b.Image()
	xlo, xhi := edges(img.Width, w, off)
	ylo, yhi := edges(img.Height, w, off)
	at := func(x, y int) T {
		var total A
		for ky := range w {
			for kx, c := range coef[ky*w : ky*w+w] {
				total += A(b.Get(x-off+kx, y-off+ky)) * A(c)
			}
		}
		return T(s.apply(total))
	}
	for y := y0; y < y1; y++ {
		indexDst := dst.StartIndex + y*dst.Stride
		if y < ylo || y >= yhi {
			for x := range img.Width {
				dst.Data[indexDst+x] = at(x, y)
			}
			continue
		}
		for x := range xlo {
			dst.Data[indexDst+x] = at(x, y)
		}
		for x := xhi; x < img.Width; x++ {
			dst.Data[indexDst+x] = at(x, y)
		}
	}
}

// horizontalDownBorderRows writes every output column of rows [y0, y1). The
// output column i is centered on source column i*skip.
func horizontalDownBorderRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	src := b.Image()
	lo, hi := footprint(src.Width, len(coef), off)
	for y := y0; y < y1; y++ {
		row := src.Data[src.StartIndex+y*src.Stride:]
		indexDst := dst.StartIndex + y*dst.Stride
		for i := range dst.Width {
			c := i * skip
			var total A
			if c >= lo && c < hi {
				q := row[c-off:]
				for t, v := range coef {
					total += A(q[t]) * A(v)
				}
			} else {
				for t, v := range coef {
					total += A(b.Get(c-off+t, y)) * A(v)
				}
			}
			dst.Data[indexDst+i] = T(s.apply(total))
		}
	}
}

// verticalDownBorderRows writes output rows [j0, j1), row j centered on source
// row j*skip.
func verticalDownBorderRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], s scale[A], j0, j1 int) {
	coef := k.Coefficients()
	off := k.Offset()
	src := b.Image()
	lo, hi := footprint(src.Height, len(coef), off)
	for j := j0; j < j1; j++ {
		c := j * skip
		indexDst := dst.StartIndex + j*dst.Stride
		inside := c >= lo && c < hi
		indexSrc := src.StartIndex + (c-off)*src.Stride
		for x := range src.Width {
			var total A
			if inside {
				i := indexSrc + x
				for _, v := range coef {
					total += A(src.Data[i]) * A(v)
					i += src.Stride
				}
			} else {
				for t, v := range coef {
					total += A(b.Get(x, c-off+t)) * A(v)
				}
			}
			dst.Data[indexDst+x] = T(s.apply(total))
		}
	}
}
