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

// Planar bundles same-sized Gray bands, for example the R, G and B planes of
// a color image.
type Planar[T Pixel] struct {
	bands []*Gray[T]
}

// NewPlanar creates a planar image with numBands zero-filled bands.
func NewPlanar[T Pixel](width, height, numBands int) *Planar[T] {
	bands := make([]*Gray[T], max(numBands, 0))
	for i := range bands {
		bands[i] = NewGray[T](width, height)
	}
	return &Planar[T]{bands: bands}
}

// NumBands returns the number of bands.
func (p *Planar[T]) NumBands() int {
	return len(p.bands)
}

// Band returns the specified band, or nil when i is out of range.
func (p *Planar[T]) Band(i int) *Gray[T] {
	if i < 0 || i >= len(p.bands) {
		return nil
	}
	return p.bands[i]
}

// Width returns the image width (all bands have the same size).
func (p *Planar[T]) Width() int {
	if len(p.bands) == 0 {
		return 0
	}
	return p.bands[0].Width
}

// Height returns the image height.
func (p *Planar[T]) Height() int {
	if len(p.bands) == 0 {
		return 0
	}
	return p.bands[0].Height
}

// Reshape reshapes every band.
func (p *Planar[T]) Reshape(width, height int) error {
	for i, b := range p.bands {
		if err := b.Reshape(width, height); err != nil {
			return errors.Wrapf(err, "band %d", i)
		}
	}
	return nil
}

// SubImage returns a planar view where each band is a sub-image of the
// corresponding band of p.
func (p *Planar[T]) SubImage(x0, y0, x1, y1 int) (*Planar[T], error) {
	out := &Planar[T]{bands: make([]*Gray[T], len(p.bands))}
	for i, b := range p.bands {
		sub, err := b.SubImage(x0, y0, x1, y1)
		if err != nil {
			return nil, errors.Wrapf(err, "band %d", i)
		}
		out.bands[i] = sub
	}
	return out, nil
}
