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

import "github.com/pkg/errors"

var (
	// ErrInvalidDisparity is returned for a negative minimum disparity or a
	// range that is empty or does not fit in a uint8 disparity image.
	ErrInvalidDisparity = errors.New("invalid disparity range")

	// ErrInvalidRadius is returned for a negative block radius.
	ErrInvalidRadius = errors.New("invalid block radius")

	// ErrNilSelector is returned by NewSAD without a selector.
	ErrNilSelector = errors.New("nil disparity selector")

	// ErrNotConfigured is returned by Process before Configure succeeded.
	ErrNotConfigured = errors.New("block matcher not configured")

	// ErrShapeMismatch is returned when the left and right images differ in
	// shape or the output cannot take their shape.
	ErrShapeMismatch = errors.New("image shape mismatch")

	// ErrDisparityTooLarge is returned when the largest disparity exceeds the
	// image width.
	ErrDisparityTooLarge = errors.New("maximum disparity larger than image width")

	// ErrUnsupportedType is returned by NewSAD for pixel types whose
	// differences the score type cannot hold.
	ErrUnsupportedType = errors.New("unsupported pixel and score types")

	// ErrWindowTooLarge is returned when the block does not fit in the image.
	ErrWindowTooLarge = errors.New("block larger than image")
)
