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

// ErrAllZero is returned when a kernel has no non-zero coefficient to scale by.
var ErrAllZero = errors.New("kernel coefficients are all zero")

// NormalizeSumToOne returns a copy of k scaled so its coefficients sum to one.
func NormalizeSumToOne[K FloatCoefficient](k *Kernel1D[K]) (*Kernel1D[K], error) {
	total := k.Sum()
	if total == 0 {
		return nil, errors.Wrap(ErrAllZero, "normalize")
	}
	data := make([]K, len(k.data))
	for i, v := range k.data {
		data[i] = v / total
	}
	return &Kernel1D[K]{data: data, offset: k.offset}, nil
}

// fixedScale returns the factor that maps the smallest non-zero |coefficient|
// to 1/minFrac.
func fixedScale[K FloatCoefficient](data []K, minFrac float64) (float64, error) {
	if minFrac <= 0 || minFrac > 1 {
		return 0, errors.Errorf("minFrac %v outside (0,1]", minFrac)
	}
	smallest := math.MaxFloat64
	for _, v := range data {
		if a := math.Abs(float64(v)); a != 0 && a < smallest {
			smallest = a
		}
	}
	if smallest == math.MaxFloat64 {
		return 0, ErrAllZero
	}
	return 1 / (smallest * minFrac), nil
}

// ToFixed1D converts a float kernel into an integer kernel. The divisor is
// the sum of the integer coefficients, or 1 when they sum to zero (derivative
// kernels).
func ToFixed1D[K FloatCoefficient](k *Kernel1D[K], minFrac float64) (Fixed1D, error) {
	scale, err := fixedScale(k.data, minFrac)
	if err != nil {
		return Fixed1D{}, errors.Wrap(err, "to fixed 1D")
	}
	data := make([]int32, len(k.data))
	var total int32
	for i, v := range k.data {
		data[i] = int32(math.Round(float64(v) * scale))
		total += data[i]
	}
	if total == 0 {
		total = 1
	}
	return Fixed1D{Kernel: &Kernel1D[int32]{data: data, offset: k.offset}, Divisor: total}, nil
}

// ToFixed2D converts a float 2D kernel into an integer kernel and divisor.
func ToFixed2D[K FloatCoefficient](k *Kernel2D[K], minFrac float64) (Fixed2D, error) {
	scale, err := fixedScale(k.data, minFrac)
	if err != nil {
		return Fixed2D{}, errors.Wrap(err, "to fixed 2D")
	}
	data := make([]int32, len(k.data))
	var total int32
	for i, v := range k.data {
		data[i] = int32(math.Round(float64(v) * scale))
		total += data[i]
	}
	if total == 0 {
		total = 1
	}
	return Fixed2D{Kernel: &Kernel2D[int32]{data: data, width: k.width, offset: k.offset}, Divisor: total}, nil
}

// MaxAbsSum returns the sum of absolute coefficient values, the largest gain
// the kernel can apply to a constant image. Used to size accumulators.
func MaxAbsSum[K Coefficient](k *Kernel1D[K]) float64 {
	var total float64
	for _, v := range k.data {
		total += math.Abs(float64(v))
	}
	return total
}
