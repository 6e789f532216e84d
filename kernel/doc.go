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

// Package kernel provides 1D and 2D convolution kernels.
//
// A kernel is a coefficient table plus an offset that says which element
// lines up with the output pixel. Symmetric kernels have an odd width and
// offset == radius:
//
//	k, err := kernel.New1D[float32](0.25, 0.5, 0.25) // radius 1
//
// Integer kernels are fixed-point approximations of a float kernel. The
// divisor that scales them back lives next to the coefficients in Fixed1D and
// Fixed2D.
//
// # Gaussian Kernels
//
//	g, _ := kernel.Gaussian1D[float32](1.5, 0)       // radius from sigma
//	f, _ := kernel.GaussianFixed1D(0, 3)             // sigma from radius
//
// Kernels are never modified after construction, so they may be shared
// freely between goroutines.
package kernel
