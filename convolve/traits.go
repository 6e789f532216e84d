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

// Accumulator is the type weighted sums are computed in.
type Accumulator interface {
	~int32 | ~int64 | ~float32 | ~float64
}

func isIntegral[A Accumulator]() bool {
	return A(1)/A(2) == 0
}

// scale is the division applied when a sum is stored. Integer sums are
// rounded as (total + div/2) / div.
type scale[A Accumulator] struct {
	div  A
	half A
}

func newScale[K kernel.Coefficient, A Accumulator](divisor K) scale[A] {
	d := A(divisor)
	if isIntegral[A]() {
		return scale[A]{div: d, half: d / 2}
	}
	return scale[A]{div: d}
}

func (s scale[A]) apply(total A) A {
	return (total + s.half) / s.div
}

// normalize divides total by the weight of the coefficients that produced
// it. A zero weight stores zero.
func normalize[T image.Pixel, A Accumulator](total, weight A) T {
	if weight == 0 {
		return 0
	}
	if isIntegral[A]() {
		return T((total + weight/2) / weight)
	}
	return T(total / weight)
}

// footprint returns the range of centers along an axis of length size whose
// kernel samples all fall inside: [lo, hi).
func footprint(size, width, offset int) (lo, hi int) {
	lo = offset
	hi = size - (width - offset - 1)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// edges is footprint clamped to [0, size), so [0, lo) and [hi, size) are
// the border ranges.
func edges(size, width, offset int) (lo, hi int) {
	lo = min(offset, size)
	hi = max(size-(width-offset-1), lo)
	return lo, hi
}

// downOffset is the first center sampled by a down convolution without a
// border.
func downOffset(radius, skip int) int {
	if radius <= skip {
		return skip
	}
	return radius + radius%skip
}

// downSpan returns the first center c0 and the number of centers n sampled
// along an axis of length size, stepping by skip. Output index c0/skip+j
// receives center c0+j*skip; n stops before the footprint leaves the image
// or the output index reaches dstSize.
func downSpan(size, dstSize, skip, width, offset int) (c0, n int) {
	c0 = downOffset(width/2, skip)
	for c0 < offset {
		c0 += skip
	}
	last := min(size-(width-offset), dstSize*skip-1)
	if last < c0 {
		return c0, 0
	}
	return c0, (last-c0)/skip + 1
}
