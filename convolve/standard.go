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

// The loops in this file are the reference implementation. The generated
// unrolled loops must produce the same values.

func horizontalRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	x0, x1 := footprint(src.Width, len(coef), k.Offset())
	for y := y0; y < y1; y++ {
		p := src.Data[src.StartIndex+y*src.Stride:]
		indexDst := dst.StartIndex + y*dst.Stride + x0
		for x := x0; x < x1; x++ {
			q := p[x-k.Offset():]
			var total A
			for i, c := range coef {
				total += A(q[i]) * A(c)
			}
			dst.Data[indexDst] = T(s.apply(total))
			indexDst++
		}
	}
}

// verticalRows convolves destination rows [y0, y1), which must lie inside
// the footprint range.
func verticalRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	stride := src.Stride
	for y := y0; y < y1; y++ {
		indexSrc := src.StartIndex + (y-k.Offset())*stride
		indexDst := dst.StartIndex + y*dst.Stride
		for x := range src.Width {
			var total A
			i := indexSrc + x
			for _, c := range coef {
				total += A(src.Data[i]) * A(c)
				i += stride
			}
			dst.Data[indexDst+x] = T(s.apply(total))
		}
	}
}

func convolveRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], src, dst *image.Gray[T], s scale[A], y0, y1 int) {
	coef := k.Coefficients()
	w, off := k.Width(), k.Offset()
	x0, x1 := footprint(src.Width, w, off)
	for y := y0; y < y1; y++ {
		indexDst := dst.StartIndex + y*dst.Stride
		for x := x0; x < x1; x++ {
			var total A
			for ky := range w {
				q := src.Data[src.StartIndex+(y-off+ky)*src.Stride+x-off:]
				for kx, c := range coef[ky*w : ky*w+w] {
					total += A(q[kx]) * A(c)
				}
			}
			dst.Data[indexDst+x] = T(s.apply(total))
		}
	}
}

func horizontalDownRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], s scale[A], c0, n, y0, y1 int) {
	coef := k.Coefficients()
	for y := y0; y < y1; y++ {
		indexSrc := src.StartIndex + y*src.Stride + c0 - k.Offset()
		indexDst := dst.StartIndex + y*dst.Stride + c0/skip
		for range n {
			var total A
			for i, c := range coef {
				total += A(src.Data[indexSrc+i]) * A(c)
			}
			dst.Data[indexDst] = T(s.apply(total))
			indexDst++
			indexSrc += skip
		}
	}
}

func verticalDownRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], s scale[A], c0, j0, j1 int) {
	coef := k.Coefficients()
	stride := src.Stride
	for j := j0; j < j1; j++ {
		indexSrc := src.StartIndex + (c0+j*skip-k.Offset())*stride
		indexDst := dst.StartIndex + (c0/skip+j)*dst.Stride
		for x := range src.Width {
			var total A
			i := indexSrc + x
			for _, c := range coef {
				total += A(src.Data[i]) * A(c)
				i += stride
			}
			dst.Data[indexDst+x] = T(s.apply(total))
		}
	}
}

func convolveDownRows[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], s scale[A], cx0, nx, cy0, j0, j1 int) {
	coef := k.Coefficients()
	w, off := k.Width(), k.Offset()
	for j := j0; j < j1; j++ {
		cy := cy0 + j*skip
		indexDst := dst.StartIndex + (cy0/skip+j)*dst.Stride + cx0/skip
		for i := range nx {
			cx := cx0 + i*skip
			var total A
			for ky := range w {
				q := src.Data[src.StartIndex+(cy-off+ky)*src.Stride+cx-off:]
				for kx, c := range coef[ky*w : ky*w+w] {
					total += A(q[kx]) * A(c)
				}
			}
			dst.Data[indexDst+i] = T(s.apply(total))
		}
	}
}
