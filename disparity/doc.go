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

// Package disparity computes dense stereo disparity by block matching.
//
// For every pixel of a rectified left image the matcher scores a
// (2*RadiusX+1)x(2*RadiusY+1) block against the right image shifted by each
// candidate disparity in [MinDisparity, MinDisparity+RangeDisparity) using
// the sum of absolute differences, then hands the scores of one image row to
// a Selector that writes the chosen disparity:
//
//	m, err := disparity.New[uint8, int32](disparity.Config{
//		RangeDisparity: 64,
//		RadiusX:        3,
//		RadiusY:        3,
//		MaxError:       -1,
//		RightToLeft:    1,
//	})
//	err = m.Process(left, right, out)
//
// Disparity values are stored relative to MinDisparity. Pixels that cannot
// be scored, and matches the selector rejects, hold RangeDisparity.
package disparity
