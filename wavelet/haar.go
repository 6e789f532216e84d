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

// Package wavelet implements the multi-level 2D Haar transform.
//
// The forward transform runs on the down-sampling convolutions of package
// convolve: each level filters rows and then columns with the averaging and
// differencing kernels and keeps every second sample. The coefficients of a
// level are stored in quadrants of the output, with the next level replacing
// the top left (average) quadrant:
//
//	+----+----+
//	| LL | HL |
//	+----+----+
//	| LH | HH |
//	+----+----+
package wavelet

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/border"
	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

var (
	// ErrInvalidLevels is returned for fewer than one level.
	ErrInvalidLevels = errors.New("wavelet needs at least one level")

	// ErrInvalidShape is returned when an image side is not a multiple of
	// 2^levels.
	ErrInvalidShape = errors.New("image size not divisible by 2^levels")
)

// Float is the constraint for transform pixels, which are also the kernel
// type.
type Float interface {
	~float32 | ~float64
}

// Haar computes the transform. It reuses intermediate images between calls
// and must not be shared between goroutines.
type Haar[T Float] struct {
	levels int
	engine *convolve.Engine[T, T]
	lo, hi *kernel.Kernel1D[T]
	border border.Border[T]

	rowLo, rowHi *image.Gray[T]
	work         *image.Gray[T]
}

// NewHaar creates a transform with the given number of levels.
func NewHaar[T Float](levels int, opts ...convolve.Option) (*Haar[T], error) {
	if levels < 1 {
		return nil, errors.Wrapf(ErrInvalidLevels, "levels %d", levels)
	}
	e, err := convolve.New[T, T](opts...)
	if err != nil {
		return nil, err
	}
	// Centered on the even sample: the first tap is always zero.
	lo, err := kernel.New1D[T](0, 0.5, 0.5)
	if err != nil {
		return nil, err
	}
	hi, err := kernel.New1D[T](0, 0.5, -0.5)
	if err != nil {
		return nil, err
	}
	b, err := border.New[T](border.Extended, 0)
	if err != nil {
		return nil, err
	}
	return &Haar[T]{
		levels: levels,
		engine: e,
		lo:     lo,
		hi:     hi,
		border: b,
		rowLo:  image.NewGray[T](0, 0),
		rowHi:  image.NewGray[T](0, 0),
		work:   image.NewGray[T](0, 0),
	}, nil
}

// Levels returns the number of levels.
func (h *Haar[T]) Levels() int { return h.levels }

func (h *Haar[T]) checkShape(img *image.Gray[T]) error {
	if img == nil {
		return errors.Wrap(ErrInvalidShape, "nil image")
	}
	n := 1 << h.levels
	if img.Width == 0 || img.Height == 0 || img.Width%n != 0 || img.Height%n != 0 {
		return errors.Wrapf(ErrInvalidShape, "%dx%d with %d levels", img.Width, img.Height, h.levels)
	}
	return nil
}

// quadrants returns the four w x h quadrants of the top left 2w x 2h region
// of img.
func quadrants[T Float](img *image.Gray[T], w, h int) (ll, hl, lh, hh *image.Gray[T]) {
	ll, _ = img.SubImage(0, 0, w, h)
	hl, _ = img.SubImage(w, 0, 2*w, h)
	lh, _ = img.SubImage(0, h, w, 2*h)
	hh, _ = img.SubImage(w, h, 2*w, 2*h)
	return ll, hl, lh, hh
}

// Forward transforms src into dst, which is reshaped to src's shape. src
// and dst may be the same image.
func (h *Haar[T]) Forward(src, dst *image.Gray[T]) error {
	if err := h.checkShape(src); err != nil {
		return err
	}
	if dst == nil {
		return errors.Wrap(ErrInvalidShape, "nil destination")
	}
	if err := dst.Reshape(src.Width, src.Height); err != nil {
		return err
	}

	in := src
	for level := range h.levels {
		w, ht := src.Width>>level, src.Height>>level
		if level > 0 {
			region, _ := dst.SubImage(0, 0, w, ht)
			if err := h.work.Reshape(w, ht); err != nil {
				return err
			}
			if err := h.work.CopyFrom(region); err != nil {
				return err
			}
			in = h.work
		}
		if err := h.engine.HorizontalDownBorder(h.lo, 2, in, h.rowLo, h.border); err != nil {
			return errors.Wrapf(err, "level %d", level)
		}
		if err := h.engine.HorizontalDownBorder(h.hi, 2, in, h.rowHi, h.border); err != nil {
			return errors.Wrapf(err, "level %d", level)
		}
		ll, hl, lh, hh := quadrants(dst, w/2, ht/2)
		for _, pass := range []struct {
			k        *kernel.Kernel1D[T]
			src, dst *image.Gray[T]
		}{
			{h.lo, h.rowLo, ll},
			{h.hi, h.rowLo, lh},
			{h.lo, h.rowHi, hl},
			{h.hi, h.rowHi, hh},
		} {
			if err := h.engine.VerticalDownBorder(pass.k, 2, pass.src, pass.dst, h.border); err != nil {
				return errors.Wrapf(err, "level %d", level)
			}
		}
	}
	return nil
}

// Inverse reconstructs the image from the coefficients in src into dst,
// which is reshaped to src's shape. src and dst may be the same image.
func (h *Haar[T]) Inverse(src, dst *image.Gray[T]) error {
	if err := h.checkShape(src); err != nil {
		return err
	}
	if dst == nil {
		return errors.Wrap(ErrInvalidShape, "nil destination")
	}
	if err := dst.Reshape(src.Width, src.Height); err != nil {
		return err
	}
	if src != dst {
		if err := dst.CopyFrom(src); err != nil {
			return err
		}
	}

	for level := h.levels - 1; level >= 0; level-- {
		w, ht := src.Width>>level, src.Height>>level
		region, _ := dst.SubImage(0, 0, w, ht)
		if err := h.work.Reshape(w, ht); err != nil {
			return err
		}
		if err := h.work.CopyFrom(region); err != nil {
			return err
		}
		ll, hl, lh, hh := quadrants(h.work, w/2, ht/2)
		for y := range ht / 2 {
			top, bottom := region.Row(2*y), region.Row(2*y+1)
			rowLL, rowHL, rowLH, rowHH := ll.Row(y), hl.Row(y), lh.Row(y), hh.Row(y)
			for x := range w / 2 {
				// undo the column pass, then the row pass
				l0, l1 := rowLL[x]+rowLH[x], rowLL[x]-rowLH[x]
				h0, h1 := rowHL[x]+rowHH[x], rowHL[x]-rowHH[x]
				top[2*x], top[2*x+1] = l0+h0, l0-h0
				bottom[2*x], bottom[2*x+1] = l1+h1, l1-h1
			}
		}
	}
	return nil
}
