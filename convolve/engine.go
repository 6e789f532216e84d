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
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/border"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/internal/cpu"
	"github.com/ajroetker/go-vision/internal/workerpool"
	"github.com/ajroetker/go-vision/kernel"
)

// minRowsPerTask keeps bands large enough to amortize the hand-off to a
// worker.
const minRowsPerTask = 8

// Option configures an Engine.
type Option func(*options)

type options struct {
	pool     *workerpool.Pool
	unrolled bool
}

// WithPool splits the destination rows of every operation across pool.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// WithUnrolled enables or disables the generated unrolled loops. They are
// enabled by default unless VISION_NO_UNROLL is set.
func WithUnrolled(enabled bool) Option {
	return func(o *options) { o.unrolled = enabled }
}

// Engine convolves images of pixel type T with kernels of type K.
type Engine[T image.Pixel, K kernel.Coefficient] struct {
	pool        *workerpool.Pool
	unrolled    bool
	accumulator string
	fn          table[T, K]

	mu   sync.Mutex
	work *image.Gray[T]
}

// New builds the engine for T and K. The supported pairs are 8-bit pixels
// with int32 kernels, 16 and 32-bit integer pixels with int32 kernels, and
// float pixels with a kernel of the same float type. Anything else returns
// ErrUnsupportedType.
func New[T image.Pixel, K kernel.Coefficient](opts ...Option) (*Engine[T, K], error) {
	o := options{unrolled: !cpu.NoUnrollEnv()}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine[T, K]{pool: o.pool, unrolled: o.unrolled}

	var zeroT T
	var zeroK K
	_, intKernel := any(zeroK).(int32)
	_, f32Kernel := any(zeroK).(float32)
	_, f64Kernel := any(zeroK).(float64)
	switch any(zeroT).(type) {
	case uint8, int8:
		if intKernel {
			e.fn, e.accumulator = newTable[T, K, int32](o.unrolled), "int32"
		}
	case uint16, int16, uint32, int32:
		if intKernel {
			e.fn, e.accumulator = newTable[T, K, int64](o.unrolled), "int64"
		}
	case float32:
		if f32Kernel {
			e.fn, e.accumulator = newTable[T, K, float32](o.unrolled), "float32"
		}
	case float64:
		if f64Kernel {
			e.fn, e.accumulator = newTable[T, K, float64](o.unrolled), "float64"
		}
	}
	if e.fn.horizontal == nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "pixel %s with kernel %T", image.TypeName[T](), zeroK)
	}
	return e, nil
}

// Unrolled reports whether the generated loops are used.
func (e *Engine[T, K]) Unrolled() bool { return e.unrolled }

// Accumulator returns the name of the type sums are computed in.
func (e *Engine[T, K]) Accumulator() string { return e.accumulator }

func (e *Engine[T, K]) String() string {
	return fmt.Sprintf("convolve.Engine[%s,%T] acc=%s unrolled=%v workers=%d",
		image.TypeName[T](), *new(K), e.accumulator, e.unrolled, e.pool.NumWorkers())
}

// rows runs fn over [0, n) split in bands.
func (e *Engine[T, K]) rows(n int, fn func(y0, y1 int)) {
	e.pool.ParallelRows(n, minRowsPerTask, fn)
}

func checkImages[T image.Pixel](src, dst *image.Gray[T]) error {
	if src == nil || dst == nil {
		return errors.Wrap(ErrShapeMismatch, "nil image")
	}
	if src.Width == 0 || src.Height == 0 {
		return errors.Wrapf(ErrShapeMismatch, "empty source %dx%d", src.Width, src.Height)
	}
	return nil
}

// reshape gives dst the requested shape, which fails only for a sub-image
// of a different shape.
func reshape[T image.Pixel](dst *image.Gray[T], width, height int) error {
	if dst.Width == width && dst.Height == height {
		return nil
	}
	if err := dst.Reshape(width, height); err != nil {
		return errors.Wrapf(ErrShapeMismatch, "destination %dx%d needs %dx%d: %v",
			dst.Width, dst.Height, width, height, err)
	}
	return nil
}

// canReshape reports the error reshape would return, without changing dst.
func canReshape[T image.Pixel](dst *image.Gray[T], width, height int) error {
	if dst.IsSubImage() && (dst.Width != width || dst.Height != height) {
		return errors.Wrapf(ErrShapeMismatch, "destination sub-image %dx%d needs %dx%d",
			dst.Width, dst.Height, width, height)
	}
	return nil
}

func checkFits(width, size int, axis string) error {
	if width > size {
		return errors.Wrapf(ErrKernelTooLarge, "kernel width %d, image %s %d", width, axis, size)
	}
	return nil
}

func checkSkip(skip, size int) error {
	if skip < 1 {
		return errors.Wrapf(ErrInvalidSkip, "skip %d", skip)
	}
	if size/skip == 0 {
		return errors.Wrapf(ErrInvalidSkip, "skip %d leaves no samples in %d pixels", skip, size)
	}
	return nil
}

func checkBorder[T image.Pixel](b border.Border[T]) error {
	if b == nil {
		return ErrNilBorder
	}
	return nil
}

// Horizontal convolves each row of src with k. Only pixels whose kernel
// footprint is inside the row are written.
func (e *Engine[T, K]) Horizontal(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.horizontal(k, src, dst, 1)
}

// HorizontalDiv is Horizontal with each sum divided by divisor.
func (e *Engine[T, K]) HorizontalDiv(k *kernel.Kernel1D[K], src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.horizontal(k, src, dst, divisor)
}

func (e *Engine[T, K]) horizontal(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Width, "width"); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	e.rows(src.Height, func(y0, y1 int) {
		e.fn.horizontal(k, src, dst, div, y0, y1)
	})
	return nil
}

// Vertical convolves each column of src with k. Only pixels whose kernel
// footprint is inside the column are written.
func (e *Engine[T, K]) Vertical(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.vertical(k, src, dst, 1)
}

// VerticalDiv is Vertical with each sum divided by divisor.
func (e *Engine[T, K]) VerticalDiv(k *kernel.Kernel1D[K], src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.vertical(k, src, dst, divisor)
}

func (e *Engine[T, K]) vertical(k *kernel.Kernel1D[K], src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Height, "height"); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	e.rows(hi-lo, func(y0, y1 int) {
		e.fn.vertical(k, src, dst, div, lo+y0, lo+y1)
	})
	return nil
}

// Convolve applies the 2D kernel k. Only pixels whose kernel footprint is
// inside the image are written.
func (e *Engine[T, K]) Convolve(k *kernel.Kernel2D[K], src, dst *image.Gray[T]) error {
	return e.convolve(k, src, dst, 1)
}

// ConvolveDiv is Convolve with each sum divided by divisor.
func (e *Engine[T, K]) ConvolveDiv(k *kernel.Kernel2D[K], src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.convolve(k, src, dst, divisor)
}

func (e *Engine[T, K]) convolve(k *kernel.Kernel2D[K], src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Width, "width"); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Height, "height"); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	e.rows(hi-lo, func(y0, y1 int) {
		e.fn.convolve(k, src, dst, div, lo+y0, lo+y1)
	})
	return nil
}

// HorizontalDown convolves every row and keeps one sample every skip
// columns. dst becomes (src.Width/skip)x(src.Height). The first center is
// skip when radius <= skip and radius + radius%skip otherwise; it lands in
// column center/skip. Columns whose footprint would leave the image are not
// written.
func (e *Engine[T, K]) HorizontalDown(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T]) error {
	return e.horizontalDown(k, skip, src, dst, 1)
}

// HorizontalDownDiv is HorizontalDown with each sum divided by divisor.
func (e *Engine[T, K]) HorizontalDownDiv(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.horizontalDown(k, skip, src, dst, divisor)
}

func (e *Engine[T, K]) horizontalDown(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Width); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Width, "width"); err != nil {
		return err
	}
	dstWidth := src.Width / skip
	if err := reshape(dst, dstWidth, src.Height); err != nil {
		return err
	}
	c0, n := downSpan(src.Width, dstWidth, skip, k.Width(), k.Offset())
	e.rows(src.Height, func(y0, y1 int) {
		e.fn.horizontalDown(k, skip, src, dst, div, c0, n, y0, y1)
	})
	return nil
}

// VerticalDown convolves every column and keeps one row every skip rows.
// dst becomes (src.Width)x(src.Height/skip). Row placement follows
// HorizontalDown.
func (e *Engine[T, K]) VerticalDown(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T]) error {
	return e.verticalDown(k, skip, src, dst, 1)
}

// VerticalDownDiv is VerticalDown with each sum divided by divisor.
func (e *Engine[T, K]) VerticalDownDiv(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.verticalDown(k, skip, src, dst, divisor)
}

func (e *Engine[T, K]) verticalDown(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Height); err != nil {
		return err
	}
	if err := checkFits(k.Width(), src.Height, "height"); err != nil {
		return err
	}
	dstHeight := src.Height / skip
	if err := reshape(dst, src.Width, dstHeight); err != nil {
		return err
	}
	c0, n := downSpan(src.Height, dstHeight, skip, k.Width(), k.Offset())
	e.rows(n, func(j0, j1 int) {
		e.fn.verticalDown(k, skip, src, dst, div, c0, j0, j1)
	})
	return nil
}

// ConvolveDown applies the 2D kernel and keeps one sample every skip pixels
// along both axes. dst becomes (src.Width/skip)x(src.Height/skip).
func (e *Engine[T, K]) ConvolveDown(k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T]) error {
	return e.convolveDown(k, skip, src, dst, 1)
}

// ConvolveDownDiv is ConvolveDown with each sum divided by divisor.
func (e *Engine[T, K]) ConvolveDownDiv(k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], divisor K) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	return e.convolveDown(k, skip, src, dst, divisor)
}

func (e *Engine[T, K]) convolveDown(k *kernel.Kernel2D[K], skip int, src, dst *image.Gray[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, min(src.Width, src.Height)); err != nil {
		return err
	}
	if err := checkFits(k.Width(), min(src.Width, src.Height), "size"); err != nil {
		return err
	}
	dstWidth, dstHeight := src.Width/skip, src.Height/skip
	if err := reshape(dst, dstWidth, dstHeight); err != nil {
		return err
	}
	cx0, nx := downSpan(src.Width, dstWidth, skip, k.Width(), k.Offset())
	cy0, ny := downSpan(src.Height, dstHeight, skip, k.Width(), k.Offset())
	e.rows(ny, func(j0, j1 int) {
		e.fn.convolveDown(k, skip, src, dst, div, cx0, nx, cy0, j0, j1)
	})
	return nil
}

// HorizontalBorder convolves each row of src with k and writes every pixel.
// Samples outside the image are read through b, which is bound to src.
func (e *Engine[T, K]) HorizontalBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T], b border.Border[T]) error {
	return e.horizontalBorder(k, src, dst, b, 1)
}

func (e *Engine[T, K]) horizontalBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T], b border.Border[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkBorder(b); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	b.SetImage(src)
	inner := k.Width() <= src.Width
	e.rows(src.Height, func(y0, y1 int) {
		if inner {
			e.fn.horizontal(k, src, dst, div, y0, y1)
		}
		e.fn.horizontalEdges(k, b, dst, div, y0, y1)
	})
	return nil
}

// VerticalBorder convolves each column of src with k and writes every pixel.
func (e *Engine[T, K]) VerticalBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T], b border.Border[T]) error {
	return e.verticalBorder(k, src, dst, b, 1)
}

func (e *Engine[T, K]) verticalBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T], b border.Border[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkBorder(b); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	b.SetImage(src)
	lo, hi := edges(src.Height, k.Width(), k.Offset())
	if k.Width() <= src.Height {
		e.rows(hi-lo, func(y0, y1 int) {
			e.fn.vertical(k, src, dst, div, lo+y0, lo+y1)
		})
	}
	e.fn.verticalEdges(k, b, dst, div, 0, lo)
	e.fn.verticalEdges(k, b, dst, div, hi, src.Height)
	return nil
}

// ConvolveBorder applies the 2D kernel and writes every pixel.
func (e *Engine[T, K]) ConvolveBorder(k *kernel.Kernel2D[K], src, dst *image.Gray[T], b border.Border[T]) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkBorder(b); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	b.SetImage(src)
	inner := k.Width() <= src.Width && k.Width() <= src.Height
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	e.rows(src.Height, func(y0, y1 int) {
		if a, z := max(y0, lo), min(y1, hi); inner && a < z {
			e.fn.convolve(k, src, dst, 1, a, z)
		}
		e.fn.convolveEdges(k, b, dst, 1, y0, y1)
	})
	return nil
}

// HorizontalDownBorder writes every sample of the horizontally down-sampled
// image: column i is centered on source column i*skip.
func (e *Engine[T, K]) HorizontalDownBorder(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], b border.Border[T]) error {
	return e.horizontalDownBorder(k, skip, src, dst, b, 1)
}

func (e *Engine[T, K]) horizontalDownBorder(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], b border.Border[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Width); err != nil {
		return err
	}
	if err := checkBorder(b); err != nil {
		return err
	}
	if err := reshape(dst, src.Width/skip, src.Height); err != nil {
		return err
	}
	b.SetImage(src)
	e.rows(src.Height, func(y0, y1 int) {
		e.fn.horizontalDownBorder(k, skip, b, dst, div, y0, y1)
	})
	return nil
}

// VerticalDownBorder writes every row of the vertically down-sampled image:
// row j is centered on source row j*skip.
func (e *Engine[T, K]) VerticalDownBorder(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], b border.Border[T]) error {
	return e.verticalDownBorder(k, skip, src, dst, b, 1)
}

func (e *Engine[T, K]) verticalDownBorder(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], b border.Border[T], div K) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Height); err != nil {
		return err
	}
	if err := checkBorder(b); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height/skip); err != nil {
		return err
	}
	b.SetImage(src)
	e.rows(dst.Height, func(j0, j1 int) {
		e.fn.verticalDownBorder(k, skip, b, dst, div, j0, j1)
	})
	return nil
}

func kernelSum[K kernel.Coefficient](sum K) error {
	if sum == 0 {
		return errors.Wrap(ErrZeroDivisor, "kernel sums to zero")
	}
	return nil
}

// windows returns the distinct coefficient ranges [a, b) applied by the
// centers j*step, j in [0, count), on an axis of length size.
func windows(width, offset, size, step, count int) [][2]int {
	var out [][2]int
	seen := make(map[[2]int]bool)
	for j := range count {
		c := j * step
		w := [2]int{max(0, offset-c), min(width, size-c+offset)}
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

// checkWeights1D rejects kernels for which some center along an axis of
// length size would be normalized by a zero weight.
func checkWeights1D[K kernel.Coefficient](k *kernel.Kernel1D[K], size, step, count int) error {
	if err := kernelSum(k.Sum()); err != nil {
		return err
	}
	coef := k.Coefficients()
	for _, w := range windows(len(coef), k.Offset(), size, step, count) {
		var weight K
		for _, c := range coef[w[0]:w[1]] {
			weight += c
		}
		if weight == 0 {
			return errors.Wrapf(ErrZeroDivisor, "coefficients [%d,%d) applied at the border sum to zero", w[0], w[1])
		}
	}
	return nil
}

// checkWeights2D is checkWeights1D for a 2D kernel on a width x height image.
func checkWeights2D[K kernel.Coefficient](k *kernel.Kernel2D[K], width, height int) error {
	if err := kernelSum(k.Sum()); err != nil {
		return err
	}
	coef := k.Coefficients()
	n, off := k.Width(), k.Offset()
	cols := windows(n, off, width, 1, width)
	for _, wy := range windows(n, off, height, 1, height) {
		for _, wx := range cols {
			var weight K
			for ky := wy[0]; ky < wy[1]; ky++ {
				for kx := wx[0]; kx < wx[1]; kx++ {
					weight += coef[ky*n+kx]
				}
			}
			if weight == 0 {
				return errors.Wrapf(ErrZeroDivisor, "coefficients [%d,%d)x[%d,%d) applied at the border sum to zero",
					wx[0], wx[1], wy[0], wy[1])
			}
		}
	}
	return nil
}

// HorizontalNormalized convolves each row and divides every pixel by the
// sum of the coefficients applied to pixels inside the image.
func (e *Engine[T, K]) HorizontalNormalized(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.horizontalNormalized(k, src, dst, true)
}

// HorizontalJustBorder writes only the pixels of HorizontalNormalized whose
// footprint leaves the image.
func (e *Engine[T, K]) HorizontalJustBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.horizontalNormalized(k, src, dst, false)
}

func (e *Engine[T, K]) horizontalNormalized(k *kernel.Kernel1D[K], src, dst *image.Gray[T], inner bool) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkWeights1D(k, src.Width, 1, src.Width); err != nil {
		return err
	}
	sum := k.Sum()
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	inner = inner && k.Width() <= src.Width
	e.rows(src.Height, func(y0, y1 int) {
		if inner {
			e.fn.horizontal(k, src, dst, sum, y0, y1)
		}
		e.fn.horizontalJustBorder(k, src, dst, y0, y1)
	})
	return nil
}

// VerticalNormalized convolves each column with border normalization.
func (e *Engine[T, K]) VerticalNormalized(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.verticalNormalized(k, src, dst, true)
}

// VerticalJustBorder writes only the border rows of VerticalNormalized.
func (e *Engine[T, K]) VerticalJustBorder(k *kernel.Kernel1D[K], src, dst *image.Gray[T]) error {
	return e.verticalNormalized(k, src, dst, false)
}

func (e *Engine[T, K]) verticalNormalized(k *kernel.Kernel1D[K], src, dst *image.Gray[T], inner bool) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkWeights1D(k, src.Height, 1, src.Height); err != nil {
		return err
	}
	sum := k.Sum()
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	lo, hi := edges(src.Height, k.Width(), k.Offset())
	if inner && k.Width() <= src.Height {
		e.rows(hi-lo, func(y0, y1 int) {
			e.fn.vertical(k, src, dst, sum, lo+y0, lo+y1)
		})
	}
	e.fn.verticalNormalized(k, src, dst, 0, lo)
	e.fn.verticalNormalized(k, src, dst, hi, src.Height)
	return nil
}

// ConvolveNormalized applies the 2D kernel with border normalization.
func (e *Engine[T, K]) ConvolveNormalized(k *kernel.Kernel2D[K], src, dst *image.Gray[T]) error {
	return e.convolveNormalized(k, src, dst, true)
}

// ConvolveJustBorder writes only the border pixels of ConvolveNormalized.
func (e *Engine[T, K]) ConvolveJustBorder(k *kernel.Kernel2D[K], src, dst *image.Gray[T]) error {
	return e.convolveNormalized(k, src, dst, false)
}

func (e *Engine[T, K]) convolveNormalized(k *kernel.Kernel2D[K], src, dst *image.Gray[T], inner bool) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkWeights2D(k, src.Width, src.Height); err != nil {
		return err
	}
	sum := k.Sum()
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	inner = inner && k.Width() <= src.Width && k.Width() <= src.Height
	lo, hi := footprint(src.Height, k.Width(), k.Offset())
	e.rows(src.Height, func(y0, y1 int) {
		if a, z := max(y0, lo), min(y1, hi); inner && a < z {
			e.fn.convolve(k, src, dst, sum, a, z)
		}
		e.fn.convolveJustBorder(k, src, dst, y0, y1)
	})
	return nil
}

// HorizontalDownNormalized writes every sample of the horizontally
// down-sampled image with border normalization.
func (e *Engine[T, K]) HorizontalDownNormalized(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T]) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Width); err != nil {
		return err
	}
	if err := checkWeights1D(k, src.Width, skip, src.Width/skip); err != nil {
		return err
	}
	if err := reshape(dst, src.Width/skip, src.Height); err != nil {
		return err
	}
	e.rows(src.Height, func(y0, y1 int) {
		e.fn.horizontalDownNormalized(k, skip, src, dst, y0, y1)
	})
	return nil
}

// VerticalDownNormalized writes every row of the vertically down-sampled
// image with border normalization.
func (e *Engine[T, K]) VerticalDownNormalized(k *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T]) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, src.Height); err != nil {
		return err
	}
	if err := checkWeights1D(k, src.Height, skip, src.Height/skip); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height/skip); err != nil {
		return err
	}
	e.rows(dst.Height, func(j0, j1 int) {
		e.fn.verticalDownNormalized(k, skip, src, dst, j0, j1)
	})
	return nil
}
