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
	"math"

	"github.com/pkg/errors"
)

// MinFrac is the fractional resolution used when converting a float kernel
// to fixed point: the smallest non-zero coefficient maps to 1/MinFrac.
const MinFrac = 1.0 / 100

// FloatCoefficient is a constraint for floating-point kernel elements.
type FloatCoefficient interface {
	~float32 | ~float64
}

// SigmaForRadius chooses a sigma for a Gaussian of the given radius and
// derivative order (0 for the plain Gaussian).
func SigmaForRadius(radius float64, order int) (float64, error) {
	if radius <= 0 {
		return 0, errors.Wrapf(ErrInvalidSize, "radius %v", radius)
	}
	return (radius*2.0 + 1.0) / (5.0 + 0.8*float64(order)), nil
}

// RadiusForSigma chooses a radius for a Gaussian with the given sigma and
// derivative order.
func RadiusForSigma(sigma float64, order int) (int, error) {
	if sigma <= 0 {
		return 0, errors.Wrapf(ErrInvalidSize, "sigma %v", sigma)
	}
	return int(math.Ceil(((5+0.8*float64(order))*sigma - 1) / 2)), nil
}

// resolveSize fills in whichever of sigma and radius is not positive.
func resolveSize(sigma float64, radius int) (float64, int, error) {
	var err error
	switch {
	case radius <= 0 && sigma <= 0:
		return 0, 0, errors.Wrapf(ErrInvalidSize, "sigma %v radius %d", sigma, radius)
	case radius <= 0:
		radius, err = RadiusForSigma(sigma, 0)
		// very small sigmas round to radius 0, which is a copy
		radius = max(radius, 1)
	case sigma <= 0:
		sigma, err = SigmaForRadius(float64(radius), 0)
	}
	return sigma, radius, err
}

// Gaussian1D creates a Gaussian kernel normalized to sum to one.
// If radius <= 0 it is computed from sigma; if sigma <= 0 it is computed from
// radius.
func Gaussian1D[K FloatCoefficient](sigma float64, radius int) (*Kernel1D[K], error) {
	sigma, radius, err := resolveSize(sigma, radius)
	if err != nil {
		return nil, err
	}
	data := make([]K, 2*radius+1)
	var total float64
	weights := make([]float64, len(data))
	for i := range weights {
		weights[i] = gaussianPDF(sigma, float64(i-radius))
		total += weights[i]
	}
	for i, w := range weights {
		data[i] = K(w / total)
	}
	return &Kernel1D[K]{data: data, offset: radius}, nil
}

// Gaussian2D creates a square Gaussian kernel normalized to sum to one.
func Gaussian2D[K FloatCoefficient](sigma float64, radius int) (*Kernel2D[K], error) {
	sigma, radius, err := resolveSize(sigma, radius)
	if err != nil {
		return nil, err
	}
	g, err := Gaussian1D[float64](sigma, radius)
	if err != nil {
		return nil, err
	}
	w := g.Width()
	data := make([]K, w*w)
	for y := range w {
		for x := range w {
			data[y*w+x] = K(g.data[y] * g.data[x])
		}
	}
	return &Kernel2D[K]{data: data, width: w, offset: radius}, nil
}

// GaussianFixed1D creates an integer Gaussian kernel and its divisor.
func GaussianFixed1D(sigma float64, radius int) (Fixed1D, error) {
	g, err := Gaussian1D[float64](sigma, radius)
	if err != nil {
		return Fixed1D{}, err
	}
	return ToFixed1D(g, MinFrac)
}

// GaussianFixed2D creates an integer 2D Gaussian kernel and its divisor.
func GaussianFixed2D(sigma float64, radius int) (Fixed2D, error) {
	g, err := Gaussian2D[float64](sigma, radius)
	if err != nil {
		return Fixed2D{}, err
	}
	return ToFixed2D(g, MinFrac)
}

func gaussianPDF(sigma, x float64) float64 {
	return math.Exp(-x*x/(2*sigma*sigma)) / (math.Sqrt(2*math.Pi) * sigma)
}
