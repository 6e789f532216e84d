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

package disparity

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
)

// MaxRange is the largest disparity range a uint8 disparity image can hold
// together with the invalid value.
const MaxRange = 255

// Config collects the block matching parameters.
type Config struct {
	MinDisparity   int
	RangeDisparity int
	RadiusX        int
	RadiusY        int

	// MaxError is the largest mean absolute difference per block pixel a
	// match may have. Negative disables the check.
	MaxError int

	// RightToLeft is the largest difference allowed between the left to
	// right match and the right to left match of the same pixel. Negative
	// disables the check.
	RightToLeft int
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if err := checkRange(c.MinDisparity, c.RangeDisparity); err != nil {
		return err
	}
	if c.RadiusX < 0 || c.RadiusY < 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %dx%d", c.RadiusX, c.RadiusY)
	}
	return nil
}

// BlockError converts MaxError into a bound on the total block score.
func (c Config) BlockError() int {
	if c.MaxError < 0 {
		return -1
	}
	return c.MaxError * (2*c.RadiusX + 1) * (2*c.RadiusY + 1)
}

func checkRange(minDisparity, rangeDisparity int) error {
	if minDisparity < 0 {
		return errors.Wrapf(ErrInvalidDisparity, "minimum %d", minDisparity)
	}
	if rangeDisparity <= 0 || rangeDisparity > MaxRange {
		return errors.Wrapf(ErrInvalidDisparity, "range %d not in [1,%d]", rangeDisparity, MaxRange)
	}
	return nil
}

// New builds a SAD block matcher with a WinnerTakeAll selector and
// configures it with the range in c.
func New[T image.Pixel, S Score](c Config, opts ...Option) (*BlockMatcher[T, S], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sel := NewWinnerTakeAll[S](c.BlockError(), c.RightToLeft)
	m, err := NewSAD[T, S](c.RadiusX, c.RadiusY, sel, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.Configure(c.MinDisparity, c.RangeDisparity); err != nil {
		return nil, err
	}
	return m, nil
}
