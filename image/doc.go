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

// Package image provides single-band 2D image buffers for the convolution and
// block matching code.
//
// The core type is Gray[T], a flat array with an explicit stride and start
// index. A sub-image is a view into its parent's backing array with its own
// geometry, so every algorithm in this module runs unchanged on a crop:
//
//	img := image.NewGray[uint8](640, 480)
//	roi, err := img.SubImage(100, 50, 300, 250)
//	// roi.Set(0, 0, v) writes img pixel (100, 50)
//
// Pixel (x, y) lives at Data[StartIndex+y*Stride+x]. Get and Set check bounds,
// UnsafeGet and UnsafeSet do not.
//
// # Point Operations
//
// Point operations transform each pixel independently:
//
//	Scale(img, out, scale, offset) // out = img * scale + offset
//	Clamp(img, out, lo, hi)        // clamp to range
//	Convert(img, out)              // element type conversion
//
// Planar[T] bundles same-sized bands, for example the R, G and B planes of a
// decoded color image.
package image
