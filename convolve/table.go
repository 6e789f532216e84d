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

// table holds the row loops of one Engine with its accumulator type bound.
// Divisors are passed as K and converted once per call.
type table[T image.Pixel, K kernel.Coefficient] struct {
	horizontal     func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K, y0, y1 int)
	vertical       func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K, y0, y1 int)
	convolve       func(k *kernel.Kernel2D[K], src, dst *image.Gray[T], div K, y0, y1 int)
	horizontalDown func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K, c0, n, y0, y1 int)
	verticalDown   func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K, c0, j0, j1 int)
	convolveDown   func(k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], div K, cx0, nx, cy0, j0, j1 int)

	horizontalEdges      func(k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int)
	verticalEdges        func(k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int)
	convolveEdges        func(k *kernel.Kernel2D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int)
	horizontalDownBorder func(k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], div K, y0, y1 int)
	verticalDownBorder   func(k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], div K, j0, j1 int)

	horizontalJustBorder     func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], y0, y1 int)
	verticalNormalized       func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], y0, y1 int)
	convolveJustBorder       func(k *kernel.Kernel2D[K], src, dst *image.Gray[T], y0, y1 int)
	horizontalDownNormalized func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], y0, y1 int)
	verticalDownNormalized   func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], j0, j1 int)
}

func newTable[T image.Pixel, K kernel.Coefficient, A Accumulator](unrolled bool) table[T, K] {
	return table[T, K]{
		horizontal: func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K, y0, y1 int) {
			s := newScale[K, A](div)
			if unrolled && horizontalUnrolled(k, src, dst, s, y0, y1) {
				return
			}
			horizontalRows(k, src, dst, s, y0, y1)
		},
		vertical: func(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K, y0, y1 int) {
			s := newScale[K, A](div)
			if unrolled && verticalUnrolled(k, src, dst, s, y0, y1) {
				return
			}
			verticalRows(k, src, dst, s, y0, y1)
		},
		convolve: func(k *kernel.Kernel2D[K], src, dst *image.Gray[T], div K, y0, y1 int) {
			s := newScale[K, A](div)
			if unrolled && convolveUnrolled(k, src, dst, s, y0, y1) {
				return
			}
			convolveRows(k, src, dst, s, y0, y1)
		},
		horizontalDown: func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K, c0, n, y0, y1 int) {
			s := newScale[K, A](div)
			if unrolled && horizontalDownUnrolled(k, skip, src, dst, s, c0, n, y0, y1) {
				return
			}
			horizontalDownRows(k, skip, src, dst, s, c0, n, y0, y1)
		},
		verticalDown: func(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K, c0, j0, j1 int) {
			s := newScale[K, A](div)
			if unrolled && verticalDownUnrolled(k, skip, src, dst, s, c0, j0, j1) {
				return
			}
			verticalDownRows(k, skip, src, dst, s, c0, j0, j1)
		},
		convolveDown: func(k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], div K, cx0, nx, cy0, j0, j1 int) {
			s := newScale[K, A](div)
			if unrolled && convolveDownUnrolled(k, skip, src, dst, s, cx0, nx, cy0, j0, j1) {
				return
			}
			convolveDownRows(k, skip, src, dst, s, cx0, nx, cy0, j0, j1)
		},

		horizontalEdges: func(k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int) {
			horizontalEdgeRows(k, b, dst, newScale[K, A](div), y0, y1)
		},
		verticalEdges: func(k *kernel.Kernel1D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int) {
			verticalEdgeRows(k, b, dst, newScale[K, A](div), y0, y1)
		},
		convolveEdges: func(k *kernel.Kernel2D[K], b border.Border[T], dst *image.Gray[T], div K, y0, y1 int) {
			convolveEdgeRows(k, b, dst, newScale[K, A](div), y0, y1)
		},
		horizontalDownBorder: func(k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], div K, y0, y1 int) {
			horizontalDownBorderRows(k, skip, b, dst, newScale[K, A](div), y0, y1)
		},
		verticalDownBorder: func(k *kernel.Kernel1D[K], skip int, b border.Border[T], dst *image.Gray[T], div K, j0, j1 int) {
			verticalDownBorderRows(k, skip, b, dst, newScale[K, A](div), j0, j1)
		},

		horizontalJustBorder:     horizontalJustBorderRows[T, K, A],
		verticalNormalized:       verticalNormalizedRows[T, K, A],
		convolveJustBorder:       convolveJustBorderRows[T, K, A],
		horizontalDownNormalized: horizontalDownNormalizedRows[T, K, A],
		verticalDownNormalized:   verticalDownNormalizedRows[T, K, A],
	}
}
