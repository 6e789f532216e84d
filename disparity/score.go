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
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
)

// Score is the type block scores are summed in.
//
// Valid pixel and score pairs:
//
//	int32:   uint8, int8, uint16, int16
//	float32: float32, float64, uint8, int8, uint16, int16
//
// Wider integer pixels can overflow an int32 difference, and float pixels
// would be truncated by it. NewSAD rejects other pairs with
// ErrUnsupportedType. ScoreRowSAD does not check.
type Score interface {
	~int32 | ~float32
}

// checkTypes reports whether S can hold the differences of T pixels.
func checkTypes[T image.Pixel, S Score]() error {
	var pixel T
	narrow := !image.IsFloat[T]() && unsafe.Sizeof(pixel) <= 2
	floatScore := S(1)/S(2) != 0
	if narrow || (floatScore && image.IsFloat[T]()) {
		return nil
	}
	var score S
	return errors.Wrapf(ErrUnsupportedType, "%s pixels with %T scores", image.TypeName[T](), score)
}

// ScoreRowSAD scores one image row for every disparity d in
// [minDisparity, maxDisparity). The block whose left edge is column c in the
// left image is compared with the block at column c-d in the right image,
// and its score is stored in scores[(d-minDisparity)*width + c-minDisparity].
// Each disparity band is written with a running sum along x, which keeps the
// writes sequential. element is scratch space of at least left.Width values.
//
// Bands too narrow to hold one block are not written.
func ScoreRowSAD[T image.Pixel, S Score](left, right *image.Gray[T], row int, scores []S, minDisparity, maxDisparity, regionWidth int, element []S) {
	width := left.Width
	rowL := left.Row(row)
	rowR := right.Row(row)
	for d := minDisparity; d < maxDisparity; d++ {
		band := d - minDisparity
		columns := width - d
		if columns < regionWidth {
			return
		}

		l := rowL[d:width]
		r := rowR[:columns]
		for i := range columns {
			diff := S(l[i]) - S(r[i])
			if diff < 0 {
				diff = -diff
			}
			element[i] = diff
		}

		var score S
		for _, v := range element[:regionWidth] {
			score += v
		}
		index := band*width + band
		scores[index] = score
		for c := 0; c < columns-regionWidth; c++ {
			index++
			score += element[c+regionWidth] - element[c]
			scores[index] = score
		}
	}
}
