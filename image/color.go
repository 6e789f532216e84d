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

package image

import (
	"github.com/pkg/errors"
)

// BT.601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGBToGray computes luma from the first three bands of rgb:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// out is reshaped to the size of rgb.
func RGBToGray[T Pixel](rgb *Planar[T], out *Gray[float32]) error {
	if rgb.NumBands() < 3 {
		return errors.Errorf("rgb to gray: need 3 bands, got %d", rgb.NumBands())
	}
	if err := out.Reshape(rgb.Width(), rgb.Height()); err != nil {
		return err
	}
	r, g, b := rgb.Band(0), rgb.Band(1), rgb.Band(2)
	for y := range out.Height {
		rRow, gRow, bRow := r.Row(y), g.Row(y), b.Row(y)
		outRow := out.Row(y)
		for x := range outRow {
			outRow[x] = float32(lumaR*float64(rRow[x]) + lumaG*float64(gRow[x]) + lumaB*float64(bRow[x]))
		}
	}
	return nil
}
