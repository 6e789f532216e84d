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

package main

import (
	stdimage "image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/internal/workerpool"
)

// loadGray decodes the file at path and converts it to 8-bit luma.
func loadGray(path string) (*image.Gray[uint8], error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	rgb := image.NewPlanar[uint8](b.Dx(), b.Dy(), 3)
	for c := range 3 {
		band := rgb.Band(c)
		for y := range band.Height {
			row := band.Row(y)
			off := y * nrgba.Stride
			for x := range row {
				row[x] = nrgba.Pix[off+4*x+c]
			}
		}
	}

	luma := image.NewGray[float32](0, 0)
	if err := image.RGBToGray(rgb, luma); err != nil {
		return nil, err
	}
	// Round, then keep the result inside the uint8 range.
	if err := image.Scale(luma, luma, 1, 0.5); err != nil {
		return nil, err
	}
	if err := image.Clamp(luma, luma, 0, 255); err != nil {
		return nil, err
	}
	out := image.NewGray[uint8](0, 0)
	if err := image.Convert(luma, out); err != nil {
		return nil, err
	}
	return out, nil
}

// saveGray encodes img to path. The format follows the file extension.
func saveGray(img *image.Gray[uint8], path string) error {
	out := stdimage.NewGray(stdimage.Rect(0, 0, img.Width, img.Height))
	for y := range img.Height {
		copy(out.Pix[y*out.Stride:], img.Row(y))
	}
	if err := imaging.Save(out, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// stretch maps disparity values in [0, invalid) onto [0, 255] and invalid
// pixels to 0. Rows are split across pool, which may be nil.
func stretch(pool *workerpool.Pool, disparity *image.Gray[uint8], invalid uint8) *image.Gray[uint8] {
	out := image.NewGray[uint8](disparity.Width, disparity.Height)
	if invalid <= 1 {
		return out
	}
	pool.ParallelFor(disparity.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src, dst := disparity.Row(y), out.Row(y)
			for x, v := range src {
				if v >= invalid {
					continue
				}
				dst[x] = uint8(int(v) * 255 / int(invalid-1))
			}
		}
	})
	return out
}
