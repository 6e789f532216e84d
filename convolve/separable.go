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
	"strings"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/border"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

type modeKind int

const (
	modeInner modeKind = iota
	modeBorder
	modeNormalized
)

// Mode selects how separable convolution treats pixels near the border.
type Mode struct {
	kind    modeKind
	border  border.Type
	value   float64
	divisor float64
}

var (
	// Inner writes only pixels whose footprint is inside the image in both
	// directions.
	Inner = Mode{kind: modeInner}

	// Normalized writes every pixel, dividing by the weight of the
	// coefficients that fell inside the image.
	Normalized = Mode{kind: modeNormalized}
)

// Bordered writes every pixel, reading outside samples with policy t. value
// is used by border.Value.
func Bordered(t border.Type, value float64) Mode {
	return Mode{kind: modeBorder, border: t, value: value}
}

// WithDivisor returns m with each pass divided by d, which is how integer
// kernels from kernel.ToFixed1D are applied. Normalized mode ignores it.
func (m Mode) WithDivisor(d float64) Mode {
	m.divisor = d
	return m
}

func (m Mode) String() string {
	switch m.kind {
	case modeInner:
		return "inner"
	case modeNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("border(%s)", m.border)
	}
}

// ParseMode maps "inner", "normalized" or a border.Type name to a Mode.
// value is the outside pixel value for border.Value.
func ParseMode(name string, value float64) (Mode, error) {
	switch strings.ToLower(name) {
	case "inner":
		return Inner, nil
	case "normalized":
		return Normalized, nil
	}
	t, err := border.ParseType(name)
	if err != nil {
		return Mode{}, err
	}
	if t == border.Skip {
		return Inner, nil
	}
	return Bordered(t, value), nil
}

func divisorOf[K kernel.Coefficient](m Mode) (K, error) {
	switch {
	case m.divisor == 0:
		return 1, nil
	case K(m.divisor) == 0:
		return 0, errors.Wrapf(ErrZeroDivisor, "divisor %v", m.divisor)
	}
	return K(m.divisor), nil
}

func borderOf[T image.Pixel](m Mode) (border.Border[T], error) {
	b, err := border.New[T](m.border, T(m.value))
	if errors.Is(err, border.ErrSkipNotRuntime) {
		return nil, errors.Wrap(ErrSkipBorder, "use Inner mode")
	}
	return b, err
}

// Separable convolves horizontally with kx into an intermediate image owned
// by the engine, then vertically with ky into dst.
func (e *Engine[T, K]) Separable(kx, ky *kernel.Kernel1D[K], src, dst *image.Gray[T], m Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.work == nil {
		e.work = image.NewGray[T](0, 0)
	}
	return e.SeparableWork(kx, ky, src, dst, e.work, m)
}

// SeparableWork is Separable with a caller supplied intermediate image. work
// is reshaped to src's shape and must not be a sub-image.
func (e *Engine[T, K]) SeparableWork(kx, ky *kernel.Kernel1D[K], src, dst, work *image.Gray[T], m Mode) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if work == nil {
		return errors.Wrap(ErrShapeMismatch, "nil work image")
	}
	if err := canReshape(work, src.Width, src.Height); err != nil {
		return err
	}
	if err := canReshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	div, err := divisorOf[K](m)
	if err != nil {
		return err
	}

	switch m.kind {
	case modeNormalized:
		if err := checkWeights1D(kx, src.Width, 1, src.Width); err != nil {
			return err
		}
		if err := checkWeights1D(ky, src.Height, 1, src.Height); err != nil {
			return err
		}
		if err := e.horizontalNormalized(kx, src, work, true); err != nil {
			return err
		}
		return e.verticalNormalized(ky, work, dst, true)

	case modeBorder:
		b, err := borderOf[T](m)
		if err != nil {
			return err
		}
		if err := e.horizontalBorder(kx, src, work, b, div); err != nil {
			return err
		}
		return e.verticalBorder(ky, work, dst, b, div)
	}

	if err := checkFits(kx.Width(), src.Width, "width"); err != nil {
		return err
	}
	if err := checkFits(ky.Width(), src.Height, "height"); err != nil {
		return err
	}
	if err := e.horizontal(kx, src, work, div); err != nil {
		return err
	}
	if err := reshape(dst, src.Width, src.Height); err != nil {
		return err
	}
	// The vertical pass only reads columns the horizontal pass wrote.
	x0, x1 := footprint(src.Width, kx.Width(), kx.Offset())
	if x1 <= x0 {
		return nil
	}
	workCols, _ := work.SubImage(x0, 0, x1, src.Height)
	dstCols, _ := dst.SubImage(x0, 0, x1, src.Height)
	return e.vertical(ky, workCols, dstCols, div)
}

// SeparableDown is Separable followed by keeping one sample every skip
// pixels along both axes. dst becomes (src.Width/skip)x(src.Height/skip).
// In Inner mode samples are placed as in HorizontalDown; in the other modes
// sample (i, j) is centered on source pixel (i*skip, j*skip).
func (e *Engine[T, K]) SeparableDown(kx, ky *kernel.Kernel1D[K], skip int, src, dst *image.Gray[T], m Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.work == nil {
		e.work = image.NewGray[T](0, 0)
	}
	return e.separableDown(kx, ky, skip, src, dst, e.work, m)
}

func (e *Engine[T, K]) separableDown(kx, ky *kernel.Kernel1D[K], skip int, src, dst, work *image.Gray[T], m Mode) error {
	if err := checkImages(src, dst); err != nil {
		return err
	}
	if err := checkSkip(skip, min(src.Width, src.Height)); err != nil {
		return err
	}
	dstWidth, dstHeight := src.Width/skip, src.Height/skip
	if err := canReshape(dst, dstWidth, dstHeight); err != nil {
		return err
	}
	div, err := divisorOf[K](m)
	if err != nil {
		return err
	}

	switch m.kind {
	case modeNormalized:
		if err := checkWeights1D(kx, src.Width, skip, dstWidth); err != nil {
			return err
		}
		if err := checkWeights1D(ky, src.Height, skip, dstHeight); err != nil {
			return err
		}
		if err := e.HorizontalDownNormalized(kx, skip, src, work); err != nil {
			return err
		}
		return e.VerticalDownNormalized(ky, skip, work, dst)

	case modeBorder:
		b, err := borderOf[T](m)
		if err != nil {
			return err
		}
		if err := e.horizontalDownBorder(kx, skip, src, work, b, div); err != nil {
			return err
		}
		return e.verticalDownBorder(ky, skip, work, dst, b, div)
	}

	if err := checkFits(kx.Width(), src.Width, "width"); err != nil {
		return err
	}
	if err := checkFits(ky.Width(), src.Height, "height"); err != nil {
		return err
	}
	if err := e.horizontalDown(kx, skip, src, work, div); err != nil {
		return err
	}
	if err := reshape(dst, dstWidth, dstHeight); err != nil {
		return err
	}
	c0, n := downSpan(src.Width, dstWidth, skip, kx.Width(), kx.Offset())
	if n == 0 {
		return nil
	}
	x0 := c0 / skip
	workCols, _ := work.SubImage(x0, 0, x0+n, work.Height)
	dstCols, _ := dst.SubImage(x0, 0, x0+n, dstHeight)
	return e.verticalDown(ky, skip, workCols, dstCols, div)
}
