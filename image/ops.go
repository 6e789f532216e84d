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

// Scale applies a linear transformation: out = img * scale + offset.
// out is reshaped to match img. Integer results are truncated toward zero.
func Scale[T Pixel](img, out *Gray[T], scale, offset float64) error {
	if err := out.Reshape(img.Width, img.Height); err != nil {
		return err
	}
	for y := range img.Height {
		inRow := img.Row(y)
		outRow := out.Row(y)
		for x, v := range inRow {
			outRow[x] = T(float64(v)*scale + offset)
		}
	}
	return nil
}

// Clamp clamps pixel values to [lo, hi]. img and out may be the same image.
func Clamp[T Pixel](img, out *Gray[T], lo, hi T) error {
	if lo > hi {
		return errors.Errorf("clamp: lo %v > hi %v", lo, hi)
	}
	if err := out.Reshape(img.Width, img.Height); err != nil {
		return err
	}
	for y := range img.Height {
		inRow := img.Row(y)
		outRow := out.Row(y)
		for x, v := range inRow {
			outRow[x] = min(max(v, lo), hi)
		}
	}
	return nil
}

// Convert copies img into out, converting each element with a Go numeric
// conversion. Values outside the range of To wrap or truncate.
func Convert[From, To Pixel](img *Gray[From], out *Gray[To]) error {
	if err := out.Reshape(img.Width, img.Height); err != nil {
		return err
	}
	for y := range img.Height {
		inRow := img.Row(y)
		outRow := out.Row(y)
		for x, v := range inRow {
			outRow[x] = To(v)
		}
	}
	return nil
}

// MinMax returns the smallest and largest pixel values.
// Both are zero for an empty image.
func MinMax[T Pixel](img *Gray[T]) (lo, hi T) {
	if img.Width == 0 || img.Height == 0 {
		return lo, hi
	}
	lo = img.UnsafeGet(0, 0)
	hi = lo
	for y := range img.Height {
		for _, v := range img.Row(y) {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}
