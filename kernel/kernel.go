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

package kernel

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyKernel is returned when a kernel has no coefficients.
	ErrEmptyKernel = errors.New("kernel has no coefficients")

	// ErrInvalidOffset is returned when the kernel offset is outside [0,width).
	ErrInvalidOffset = errors.New("kernel offset outside kernel")

	// ErrNotSquare is returned when 2D kernel data is not width*width long.
	ErrNotSquare = errors.New("2D kernel data is not square")

	// ErrInvalidSize is returned for non-positive sigma and radius together.
	ErrInvalidSize = errors.New("sigma or radius must be positive")
)

// Coefficient is a constraint for kernel element types.
type Coefficient interface {
	~int32 | ~float32 | ~float64
}

// Kernel1D is a one dimensional convolution kernel.
//
// Data[Offset] is applied to the pixel being computed; Data[i] to the pixel
// i-Offset positions away.
type Kernel1D[K Coefficient] struct {
	data   []K
	offset int
}

// New1D creates a symmetric kernel with offset == radius. The width must be
// odd.
func New1D[K Coefficient](data ...K) (*Kernel1D[K], error) {
	if len(data) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(data)%2 == 0 {
		return nil, errors.Wrapf(ErrInvalidOffset, "width %d is even, use New1DOffset", len(data))
	}
	return New1DOffset(len(data)/2, data...)
}

// New1DOffset creates a kernel with an explicit offset.
func New1DOffset[K Coefficient](offset int, data ...K) (*Kernel1D[K], error) {
	if len(data) == 0 {
		return nil, ErrEmptyKernel
	}
	if offset < 0 || offset >= len(data) {
		return nil, errors.Wrapf(ErrInvalidOffset, "offset %d width %d", offset, len(data))
	}
	owned := make([]K, len(data))
	copy(owned, data)
	return &Kernel1D[K]{data: owned, offset: offset}, nil
}

// Width returns the number of coefficients.
func (k *Kernel1D[K]) Width() int {
	return len(k.data)
}

// Radius returns Width()/2.
func (k *Kernel1D[K]) Radius() int {
	return len(k.data) / 2
}

// Offset returns the index of the coefficient applied to the center pixel.
func (k *Kernel1D[K]) Offset() int {
	return k.offset
}

// At returns coefficient i.
func (k *Kernel1D[K]) At(i int) K {
	return k.data[i]
}

// Data returns a copy of the coefficients.
func (k *Kernel1D[K]) Data() []K {
	out := make([]K, len(k.data))
	copy(out, k.data)
	return out
}

// Coefficients returns the coefficient slice without copying. Callers must
// not modify it.
func (k *Kernel1D[K]) Coefficients() []K {
	return k.data
}

// Sum returns the sum of all coefficients.
func (k *Kernel1D[K]) Sum() K {
	var total K
	for _, v := range k.data {
		total += v
	}
	return total
}

// IsSymmetricOdd reports whether the kernel has an odd width and is centered,
// the shape required by the unrolled convolution routines.
func (k *Kernel1D[K]) IsSymmetricOdd() bool {
	return len(k.data)%2 == 1 && k.offset == len(k.data)/2
}

// Kernel2D is a square convolution kernel stored in row-major order.
type Kernel2D[K Coefficient] struct {
	data   []K
	width  int
	offset int
}

// New2D creates a centered square kernel. width must be odd and
// len(data) == width*width.
func New2D[K Coefficient](width int, data ...K) (*Kernel2D[K], error) {
	if width <= 0 || len(data) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(data) != width*width {
		return nil, errors.Wrapf(ErrNotSquare, "width %d with %d elements", width, len(data))
	}
	if width%2 == 0 {
		return nil, errors.Wrapf(ErrInvalidOffset, "width %d is even", width)
	}
	owned := make([]K, len(data))
	copy(owned, data)
	return &Kernel2D[K]{data: owned, width: width, offset: width / 2}, nil
}

// Width returns the number of coefficients along each axis.
func (k *Kernel2D[K]) Width() int {
	return k.width
}

// Radius returns Width()/2.
func (k *Kernel2D[K]) Radius() int {
	return k.width / 2
}

// Offset returns the row and column of the center coefficient.
func (k *Kernel2D[K]) Offset() int {
	return k.offset
}

// At returns the coefficient at column x, row y.
func (k *Kernel2D[K]) At(x, y int) K {
	return k.data[y*k.width+x]
}

// Coefficients returns the row-major coefficients without copying. Callers
// must not modify them.
func (k *Kernel2D[K]) Coefficients() []K {
	return k.data
}

// Sum returns the sum of all coefficients.
func (k *Kernel2D[K]) Sum() K {
	var total K
	for _, v := range k.data {
		total += v
	}
	return total
}

// IsSymmetricOdd reports whether the kernel is centered with an odd width.
func (k *Kernel2D[K]) IsSymmetricOdd() bool {
	return k.width%2 == 1 && k.offset == k.width/2
}

// Outer returns the 2D kernel a^T*b, where b indexes columns and a rows. The
// convolution of an image with it equals the horizontal pass with b followed
// by the vertical pass with a.
func Outer[K Coefficient](vertical, horizontal *Kernel1D[K]) (*Kernel2D[K], error) {
	if vertical.Width() != horizontal.Width() || !vertical.IsSymmetricOdd() || !horizontal.IsSymmetricOdd() {
		return nil, errors.Errorf("outer product needs two centered kernels of equal width, got %d and %d",
			vertical.Width(), horizontal.Width())
	}
	w := vertical.Width()
	data := make([]K, w*w)
	for y := range w {
		for x := range w {
			data[y*w+x] = vertical.data[y] * horizontal.data[x]
		}
	}
	return &Kernel2D[K]{data: data, width: w, offset: w / 2}, nil
}

// Fixed1D is an integer kernel together with the divisor that maps its
// weighted sums back to pixel range.
type Fixed1D struct {
	Kernel  *Kernel1D[int32]
	Divisor int32
}

// Fixed2D is the 2D counterpart of Fixed1D.
type Fixed2D struct {
	Kernel  *Kernel2D[int32]
	Divisor int32
}
