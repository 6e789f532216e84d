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

// Package blur smooths images with separable Gaussian and mean filters.
//
// A Blur wraps a convolve.Engine and a kernel.Cache, so repeated calls with
// the same parameters build the Gaussian kernel once. The convolve.Mode
// argument picks the border treatment; convolve.Normalized keeps border
// pixels at the brightness of their neighbourhood.
package blur

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/convolve"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

// ErrInvalidRadius is returned by Mean for a negative radius.
var ErrInvalidRadius = errors.New("invalid blur radius")

// Blur applies smoothing filters with pixel type T and kernel type K. It
// inherits the engine's restriction to one goroutine at a time.
type Blur[T image.Pixel, K kernel.Coefficient] struct {
	engine *convolve.Engine[T, K]
	cache  *kernel.Cache
}

// New creates a Blur. cache may be nil, in which case kernels are rebuilt on
// every call.
func New[T image.Pixel, K kernel.Coefficient](cache *kernel.Cache, opts ...convolve.Option) (*Blur[T, K], error) {
	e, err := convolve.New[T, K](opts...)
	if err != nil {
		return nil, err
	}
	return &Blur[T, K]{engine: e, cache: cache}, nil
}

// Engine returns the underlying convolution engine.
func (b *Blur[T, K]) Engine() *convolve.Engine[T, K] { return b.engine }

// Gaussian blurs src into dst. Either sigma or radius may be zero, in which
// case it is derived from the other. Integer kernels are fixed-point
// Gaussians applied with their divisor.
func (b *Blur[T, K]) Gaussian(src, dst *image.Gray[T], sigma float64, radius int, m convolve.Mode) error {
	k, div, err := Gaussian[K](b.cache, sigma, radius)
	if err != nil {
		return err
	}
	return b.engine.Separable(k, k, src, dst, m.WithDivisor(div))
}

// Mean replaces every pixel with the average of the (2*radius+1)^2 block
// around it.
func (b *Blur[T, K]) Mean(src, dst *image.Gray[T], radius int, m convolve.Mode) error {
	if radius < 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %d", radius)
	}
	width := 2*radius + 1
	ones := make([]K, width)
	for i := range ones {
		ones[i] = 1
	}
	k, err := kernel.New1D(ones...)
	if err != nil {
		return err
	}
	return b.engine.Separable(k, k, src, dst, m.WithDivisor(float64(width)))
}

// Gaussian returns the 1D Gaussian kernel for K through cache and the
// divisor each pass must apply: the fixed-point sum for int32 kernels, 1 for
// float kernels, which already sum to one.
func Gaussian[K kernel.Coefficient](cache *kernel.Cache, sigma float64, radius int) (*kernel.Kernel1D[K], float64, error) {
	var zero K
	switch any(zero).(type) {
	case float32:
		k, err := kernel.CachedGaussian1D[float32](cache, sigma, radius)
		if err != nil {
			return nil, 0, err
		}
		return any(k).(*kernel.Kernel1D[K]), 1, nil
	case float64:
		k, err := kernel.CachedGaussian1D[float64](cache, sigma, radius)
		if err != nil {
			return nil, 0, err
		}
		return any(k).(*kernel.Kernel1D[K]), 1, nil
	case int32:
		f, err := kernel.CachedGaussianFixed1D(cache, sigma, radius)
		if err != nil {
			return nil, 0, err
		}
		return any(f.Kernel).(*kernel.Kernel1D[K]), float64(f.Divisor), nil
	}
	return nil, 0, errors.Errorf("no Gaussian kernel for %T", zero)
}
