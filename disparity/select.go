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

import "github.com/ajroetker/go-vision/image"

// Selector turns the block scores of one row into disparities.
type Selector[S Score] interface {
	// Configure binds the output image and the search parameters. It is
	// called before the first row of every Process call.
	Configure(disparity *image.Gray[uint8], minDisparity, rangeDisparity, radiusX int)

	// ProcessRow writes every column of row in the bound image. scores uses
	// the layout of ScoreRowSAD, summed over the block height.
	ProcessRow(row int, scores []S)

	// Clone returns a selector with the same settings that shares no state
	// with the receiver.
	Clone() Selector[S]
}

// WinnerTakeAll picks the disparity with the lowest score, optionally
// rejecting weak matches and matches that are not mutual.
type WinnerTakeAll[S Score] struct {
	maxError    int
	rightToLeft int

	disparity    *image.Gray[uint8]
	minDisparity int
	rangeD       int
	radiusX      int
	regionWidth  int
	width        int
}

// NewWinnerTakeAll creates the selector. maxError bounds the block score of
// an accepted match and rightToLeft bounds the difference with the best
// match seen from the right image; a negative value disables either check.
func NewWinnerTakeAll[S Score](maxError, rightToLeft int) *WinnerTakeAll[S] {
	return &WinnerTakeAll[S]{maxError: maxError, rightToLeft: rightToLeft}
}

// Configure implements Selector.
func (s *WinnerTakeAll[S]) Configure(disparity *image.Gray[uint8], minDisparity, rangeDisparity, radiusX int) {
	s.disparity = disparity
	s.minDisparity = minDisparity
	s.rangeD = rangeDisparity
	s.radiusX = radiusX
	s.regionWidth = 2*radiusX + 1
	s.width = disparity.Width
}

// Clone implements Selector.
func (s *WinnerTakeAll[S]) Clone() Selector[S] {
	return NewWinnerTakeAll[S](s.maxError, s.rightToLeft)
}

// ProcessRow implements Selector. Columns closer than radiusX to an edge,
// or closer than MinDisparity+radiusX to the left edge, are invalid.
func (s *WinnerTakeAll[S]) ProcessRow(row int, scores []S) {
	out := s.disparity.Row(row)
	invalid := uint8(s.rangeD)
	first := min(s.minDisparity+s.radiusX, s.width)
	last := max(s.width-s.radiusX, first)
	for x := range first {
		out[x] = invalid
	}
	for x := last; x < s.width; x++ {
		out[x] = invalid
	}

	for x := first; x < last; x++ {
		// left edge of the block, and the disparities that keep the right
		// block inside the image
		c := x - s.radiusX
		local := min(s.rangeD, c-s.minDisparity+1)

		index := c - s.minDisparity
		best, bestScore := 0, scores[index]
		for i := 1; i < local; i++ {
			index += s.width
			if v := scores[index]; v < bestScore {
				best, bestScore = i, v
			}
		}

		switch {
		case s.maxError >= 0 && bestScore > S(s.maxError):
			out[x] = invalid
		case s.rightToLeft >= 0 && abs(s.fromRight(scores, c-s.minDisparity-best)-best) > s.rightToLeft:
			out[x] = invalid
		default:
			out[x] = uint8(best)
		}
	}
}

// fromRight returns the best disparity, relative to the minimum, of the
// right image block whose left edge is column cr.
func (s *WinnerTakeAll[S]) fromRight(scores []S, cr int) int {
	local := min(s.rangeD, s.width-s.regionWidth-cr-s.minDisparity+1)
	index := cr
	best, bestScore := 0, scores[index]
	for i := 1; i < local; i++ {
		index += s.width + 1
		if v := scores[index]; v < bestScore {
			best, bestScore = i, v
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
