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

package convolve

import "github.com/pkg/errors"

var (
	// ErrInvalidSkip is returned for a down-sampling factor below 1.
	ErrInvalidSkip = errors.New("skip must be at least 1")

	// ErrKernelTooLarge is returned when the kernel does not fit inside the
	// image for an operation that only writes the inner region.
	ErrKernelTooLarge = errors.New("kernel larger than image")

	// ErrShapeMismatch is returned when a destination cannot take the
	// required shape.
	ErrShapeMismatch = errors.New("image shape mismatch")

	// ErrUnsupportedType is returned by New for pixel and kernel type pairs
	// without an implementation.
	ErrUnsupportedType = errors.New("unsupported pixel and kernel types")

	// ErrZeroDivisor is returned for a zero divisor or a kernel summing to
	// zero in normalized convolution.
	ErrZeroDivisor = errors.New("divisor is zero")

	// ErrSkipBorder is returned when the skip policy is used where samples
	// outside the image must be read.
	ErrSkipBorder = errors.New("skip border cannot supply outside pixels")

	// ErrNilBorder is returned when a border variant is called without a
	// border.
	ErrNilBorder = errors.New("border is nil")
)
