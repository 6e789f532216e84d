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

// Package pyramid builds Gaussian image pyramids where each level is half
// the size of the one below it.
package pyramid

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/blur"
	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

var (
	// ErrInvalidLevels is returned for fewer than one level.
	ErrInvalidLevels = errors.New("pyramid needs at least one level")

	// ErrTooSmall is returned when the top level would have no pixels.
	ErrTooSmall = errors.New("image too small for pyramid")
)

// Config describes a pyramid. Level 0 is a copy of the input; level i is
// level i-1 smoothed with a Gaussian of Sigma (or Radius) and down-sampled by
// two.
type Config struct {
	Levels int
	Sigma  float64
	Radius int
	Mode   convolve.Mode
}

// DefaultConfig is a four level pyramid with sigma 1 and border
// normalization.
func DefaultConfig() Config {
	return Config{Levels: 4, Sigma: 1, Mode: convolve.Normalized}
}

// Pyramid holds the levels of the last processed image. The level images
// are reused between calls.
type Pyramid[T image.Pixel, K kernel.Coefficient] struct {
	cfg     Config
	engine  *convolve.Engine[T, K]
	kernel  *kernel.Kernel1D[K]
	divisor float64
	levels  []*image.Gray[T]
}

// New validates cfg and builds its kernel. cache may be nil.
func New[T image.Pixel, K kernel.Coefficient](cfg Config, cache *kernel.Cache, opts ...convolve.Option) (*Pyramid[T, K], error) {
	if cfg.Levels < 1 {
		return nil, errors.Wrapf(ErrInvalidLevels, "levels %d", cfg.Levels)
	}
	e, err := convolve.New[T, K](opts...)
	if err != nil {
		return nil, err
	}
	k, div, err := blur.Gaussian[K](cache, cfg.Sigma, cfg.Radius)
	if err != nil {
		return nil, errors.Wrap(err, "pyramid kernel")
	}
	p := &Pyramid[T, K]{cfg: cfg, engine: e, kernel: k, divisor: div}
	for range cfg.Levels {
		p.levels = append(p.levels, image.NewGray[T](0, 0))
	}
	return p, nil
}

// NumLevels returns the number of levels.
func (p *Pyramid[T, K]) NumLevels() int { return len(p.levels) }

// Level returns level i. It is overwritten by the next Process call.
func (p *Pyramid[T, K]) Level(i int) *image.Gray[T] { return p.levels[i] }

// Scale returns how many input pixels one pixel of level i spans.
func (p *Pyramid[T, K]) Scale(i int) int { return 1 << i }

// Process rebuilds every level from src.
func (p *Pyramid[T, K]) Process(src *image.Gray[T]) error {
	if src == nil {
		return errors.Wrap(ErrTooSmall, "nil image")
	}
	top := len(p.levels) - 1
	if src.Width>>top == 0 || src.Height>>top == 0 {
		return errors.Wrapf(ErrTooSmall, "%dx%d has no level %d", src.Width, src.Height, top)
	}
	if err := p.levels[0].Reshape(src.Width, src.Height); err != nil {
		return err
	}
	if err := p.levels[0].CopyFrom(src); err != nil {
		return err
	}
	mode := p.cfg.Mode.WithDivisor(p.divisor)
	for i := 1; i <= top; i++ {
		if err := p.engine.SeparableDown(p.kernel, p.kernel, 2, p.levels[i-1], p.levels[i], mode); err != nil {
			return errors.Wrapf(err, "level %d", i)
		}
	}
	return nil
}
