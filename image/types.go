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

package image

// Floats is a constraint for floating-point pixel types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer pixel types.
type SignedInts interface {
	~int8 | ~int16 | ~int32
}

// UnsignedInts is a constraint for unsigned integer pixel types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all integer pixel types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Pixel is a constraint for every element type a Gray image can hold.
type Pixel interface {
	Floats | Integers
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Pixel]() bool {
	return T(1)/T(2) != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Pixel]() bool {
	var zero T
	return zero-1 < zero
}

// TypeName returns a short name for T, used in error messages.
func TypeName[T Pixel]() string {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return "uint8"
	case int8:
		return "int8"
	case uint16:
		return "uint16"
	case int16:
		return "int16"
	case uint32:
		return "uint32"
	case int32:
		return "int32"
	case float32:
		return "float32"
	case float64:
		return "float64"
	default:
		return "unknown"
	}
}
