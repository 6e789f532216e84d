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

// The functions below call the generated loops directly. They return false,
// leaving dst untouched, when k is not centered, its width has no generated
// loop, or the images have the wrong shapes. dst is never reshaped. An
// Engine falls back to the reference loops on its own; these exist for
// callers that manage dispatch themselves.

// UnrolledWidths returns the kernel widths with generated loops.
func UnrolledWidths() []int {
	return append([]int(nil), unrolledWidths...)
}

// UnrolledHorizontal is the unrolled form of Engine.HorizontalDiv.
func UnrolledHorizontal[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || !image.SameShape(src, dst) || k.Width() > src.Width {
		return false
	}
	return horizontalUnrolled(k, src, dst, newScale[K, A](divisor), 0, src.Height)
}

// UnrolledVertical is the unrolled form of Engine.VerticalDiv.
func UnrolledVertical[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || !image.SameShape(src, dst) || k.Width() > src.Height {
		return false
	}
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	return verticalUnrolled(k, src, dst, newScale[K, A](divisor), lo, hi)
}

// UnrolledConvolve is the unrolled form of Engine.ConvolveDiv.
func UnrolledConvolve[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || !image.SameShape(src, dst) || k.Width() > min(src.Width, src.Height) {
		return false
	}
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	return convolveUnrolled(k, src, dst, newScale[K, A](divisor), lo, hi)
}

// UnrolledHorizontalDown is the unrolled form of Engine.HorizontalDownDiv.
// dst must already be (src.Width/skip)x(src.Height).
func UnrolledHorizontalDown[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || skip < 1 || k.Width() > src.Width ||
		dst.Width != src.Width/skip || dst.Height != src.Height {
		return false
	}
	c0, n := downSpan(src.Width, dst.Width, skip, k.Width(), k.Offset())
	return horizontalDownUnrolled(k, skip, src, dst, newScale[K, A](divisor), c0, n, 0, src.Height)
}

// UnrolledVerticalDown is the unrolled form of Engine.VerticalDownDiv.
// dst must already be (src.Width)x(src.Height/skip).
func UnrolledVerticalDown[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || skip < 1 || k.Width() > src.Height ||
		dst.Width != src.Width || dst.Height != src.Height/skip {
		return false
	}
	c0, n := downSpan(src.Height, dst.Height, skip, k.Width(), k.Offset())
	return verticalDownUnrolled(k, skip, src, dst, newScale[K, A](divisor), c0, 0, n)
}

// UnrolledConvolveDown is the unrolled form of Engine.ConvolveDownDiv.
// dst must already be (src.Width/skip)x(src.Height/skip).
func UnrolledConvolveDown[T image.Pixel, K kernel.Coefficient, A Accumulator](k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], divisor K) bool {
	if divisor == 0 || skip < 1 || k.Width() > min(src.Width, src.Height) ||
		dst.Width != src.Width/skip || dst.Height != src.Height/skip {
		return false
	}
	cx0, nx := downSpan(src.Width, dst.Width, skip, k.Width(), k.Offset())
	cy0, ny := downSpan(src.Height, dst.Height, skip, k.Width(), k.Offset())
	return convolveDownUnrolled(k, skip, src, dst, newScale[K, A](divisor), cx0, nx, cy0, 0, ny)
}
