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

// Package convolve implements 1D and 2D convolution over image.Gray images.
//
// An Engine is built once for a pixel type and a kernel type. It selects the
// accumulator (int32 for 8-bit pixels, int64 for wider integers, the kernel's
// own float type otherwise) and, unless disabled, routes kernels of width 3
// to 11 to generated unrolled loops:
//
//	eng, err := convolve.New[uint8, int32]()
//	g, _ := kernel.GaussianFixed1D(1.5, 0)
//	err = eng.HorizontalDiv(g.Kernel, src, dst, g.Divisor)
//
// Every operation validates its arguments before writing, then reshapes dst
// in place. The plain operations only write pixels whose kernel footprint is
// inside the image. The Border variants write every pixel, reading outside
// samples through a border.Border. The Normalized variants divide each pixel
// by the sum of the coefficients that landed inside the image. Down variants
// keep one sample every skip pixels.
//
// Engines carry a reusable intermediate image for separable convolution and
// must not be shared between goroutines. Use WithPool to split rows across a
// workerpool.Pool.
package convolve

//go:generate go run ../cmd/convgen -output unrolled.gen.go
