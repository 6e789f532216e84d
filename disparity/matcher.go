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
	"fmt"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/internal/workerpool"
)

// minRowsPerBlock keeps each worker's block large enough that priming the
// vertical window is a small part of its work.
const minRowsPerBlock = 16

// Option configures a BlockMatcher.
type Option func(*options)

type options struct {
	pool *workerpool.Pool
}

// WithPool splits the rows of Process across pool.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// BlockMatcher scores rectangular blocks with the sum of absolute
// differences. Its scratch space is reused between Process calls, so a
// BlockMatcher must not be used from more than one goroutine at a time.
type BlockMatcher[T image.Pixel, S Score] struct {
	radiusX, radiusY int
	regionWidth      int
	regionHeight     int

	minDisparity   int
	rangeDisparity int
	configured     bool

	selector   Selector[S]
	pool       *workerpool.Pool
	workspaces []*workspace[S]
}

// workspace is the scratch space of one block of rows.
type workspace[S Score] struct {
	element []S
	// horizontal holds the row scores inside the vertical window, indexed
	// by image row modulo the block height.
	horizontal [][]S
	// vertical is the sum of horizontal.
	vertical []S
	selector Selector[S]
}

// NewSAD creates a matcher for blocks of (2*radiusX+1)x(2*radiusY+1)
// pixels. Configure must be called before Process.
func NewSAD[T image.Pixel, S Score](radiusX, radiusY int, selector Selector[S], opts ...Option) (*BlockMatcher[T, S], error) {
	if radiusX < 0 || radiusY < 0 {
		return nil, errors.Wrapf(ErrInvalidRadius, "radius %dx%d", radiusX, radiusY)
	}
	if selector == nil {
		return nil, ErrNilSelector
	}
	if err := checkTypes[T, S](); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &BlockMatcher[T, S]{
		radiusX:      radiusX,
		radiusY:      radiusY,
		regionWidth:  2*radiusX + 1,
		regionHeight: 2*radiusY + 1,
		selector:     selector,
		pool:         o.pool,
	}, nil
}

// Configure sets the disparity search range [minDisparity,
// minDisparity+rangeDisparity).
func (m *BlockMatcher[T, S]) Configure(minDisparity, rangeDisparity int) error {
	if err := checkRange(minDisparity, rangeDisparity); err != nil {
		return err
	}
	m.minDisparity = minDisparity
	m.rangeDisparity = rangeDisparity
	m.configured = true
	return nil
}

// MinDisparity returns the smallest disparity searched.
func (m *BlockMatcher[T, S]) MinDisparity() int { return m.minDisparity }

// RangeDisparity returns the number of disparities searched.
func (m *BlockMatcher[T, S]) RangeDisparity() int { return m.rangeDisparity }

// Invalid returns the value written for pixels without a disparity.
func (m *BlockMatcher[T, S]) Invalid() uint8 { return uint8(m.rangeDisparity) }

// BorderX returns the number of columns at each side of the image that are
// never scored; the left side additionally loses MinDisparity columns.
func (m *BlockMatcher[T, S]) BorderX() int { return m.radiusX }

// BorderY returns the number of rows at the top and bottom that are never
// scored.
func (m *BlockMatcher[T, S]) BorderY() int { return m.radiusY }

func (m *BlockMatcher[T, S]) String() string {
	return fmt.Sprintf("disparity.BlockMatcher[%s] SAD %dx%d d=[%d,%d)",
		image.TypeName[T](), m.regionWidth, m.regionHeight, m.minDisparity, m.minDisparity+m.rangeDisparity)
}

// Process computes the disparity of every pixel of left. disparity is
// reshaped to the shape of left. Rows and columns where the block does not
// fit are set to Invalid.
func (m *BlockMatcher[T, S]) Process(left, right *image.Gray[T], disparity *image.Gray[uint8]) error {
	if !m.configured {
		return ErrNotConfigured
	}
	if left == nil || right == nil || disparity == nil {
		return errors.Wrap(ErrShapeMismatch, "nil image")
	}
	if !image.SameShape(left, right) {
		return errors.Wrapf(ErrShapeMismatch, "left %dx%d, right %dx%d",
			left.Width, left.Height, right.Width, right.Height)
	}
	if maxDisparity := m.minDisparity + m.rangeDisparity - 1; maxDisparity > left.Width {
		return errors.Wrapf(ErrDisparityTooLarge, "maximum %d, width %d", maxDisparity, left.Width)
	}
	if m.regionWidth > left.Width || m.regionHeight > left.Height {
		return errors.Wrapf(ErrWindowTooLarge, "block %dx%d, image %dx%d",
			m.regionWidth, m.regionHeight, left.Width, left.Height)
	}
	if err := disparity.Reshape(left.Width, left.Height); err != nil {
		return errors.Wrapf(ErrShapeMismatch, "disparity image: %v", err)
	}

	invalid := m.Invalid()
	for y := range m.radiusY {
		fillRow(disparity.Row(y), invalid)
		fillRow(disparity.Row(left.Height-1-y), invalid)
	}

	m.grow(left.Width, m.pool.NumWorkers())
	for _, ws := range m.workspaces {
		ws.selector.Configure(disparity, m.minDisparity, m.rangeDisparity, m.radiusX)
	}
	rows := left.Height - 2*m.radiusY
	m.pool.ParallelRowsWorker(rows, minRowsPerBlock, func(worker, start, end int) {
		m.processBlock(m.workspaces[worker], left, right, start+m.radiusY, end+m.radiusY)
	})
	return nil
}

func fillRow(row []uint8, v uint8) {
	for i := range row {
		row[i] = v
	}
}

// grow makes sure there are workers workspaces sized for the current range
// and width. Buffers only grow.
func (m *BlockMatcher[T, S]) grow(width, workers int) {
	for len(m.workspaces) < workers {
		sel := m.selector
		if len(m.workspaces) > 0 {
			sel = m.selector.Clone()
		}
		m.workspaces = append(m.workspaces, &workspace[S]{selector: sel})
	}
	size := width * m.rangeDisparity
	for _, ws := range m.workspaces {
		if len(ws.element) < width {
			ws.element = make([]S, width)
		}
		if len(ws.vertical) < size {
			ws.vertical = make([]S, size)
			ws.horizontal = make([][]S, m.regionHeight)
			for i := range ws.horizontal {
				ws.horizontal[i] = make([]S, size)
			}
		}
	}
}

// processBlock selects the disparities of rows [y0, y1). The first row sums
// the full vertical window; each following row removes the oldest row score
// and adds the newest.
func (m *BlockMatcher[T, S]) processBlock(ws *workspace[S], left, right *image.Gray[T], y0, y1 int) {
	size := left.Width * m.rangeDisparity
	maxDisparity := min(left.Width, m.minDisparity+m.rangeDisparity)
	vertical := ws.vertical[:size]
	slot := func(row int) []S {
		return ws.horizontal[row%m.regionHeight][:size]
	}

	clear(vertical)
	for row := y0 - m.radiusY; row <= y0+m.radiusY; row++ {
		scores := slot(row)
		clear(scores)
		ScoreRowSAD(left, right, row, scores, m.minDisparity, maxDisparity, m.regionWidth, ws.element)
		for i, v := range scores {
			vertical[i] += v
		}
	}
	ws.selector.ProcessRow(y0, vertical)

	for y := y0 + 1; y < y1; y++ {
		scores := slot(y + m.radiusY)
		for i, v := range scores {
			vertical[i] -= v
		}
		ScoreRowSAD(left, right, y+m.radiusY, scores, m.minDisparity, maxDisparity, m.regionWidth, ws.element)
		for i, v := range scores {
			vertical[i] += v
		}
		ws.selector.ProcessRow(y, vertical)
	}
}
