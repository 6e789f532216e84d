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

// Package border defines how pixels outside an image are read.
//
// A Border wraps one image at a time and returns a value for any integer
// coordinate:
//
//	b, _ := border.New[uint8](border.Reflect, 0)
//	b.SetImage(img)
//	v := b.Get(-3, img.Height+5)
//
// SetImage only swaps a pointer, so a single Border can be reused for every
// frame of a stream.
//
// Skip is not a runtime policy. It tells the convolution code to process only
// the region where the kernel fits inside the image.
package border

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
)

// Type selects a border policy.
type Type int

const (
	// Extended clamps each coordinate to the nearest edge pixel.
	Extended Type = iota

	// Reflect mirrors the coordinate across the nearest edge, repeatedly,
	// without repeating the edge pixel: -1 -> 1, width -> width-2.
	Reflect

	// Value returns a constant for every coordinate outside the image.
	Value

	// Wrap tiles the image.
	Wrap

	// Skip leaves the border region untouched.
	Skip
)

// ErrUnknownType is returned by ParseType for unrecognized names.
var ErrUnknownType = errors.New("unknown border type")

// ErrSkipNotRuntime is returned when a runtime Border is requested for Skip.
var ErrSkipNotRuntime = errors.New("skip border has no runtime policy")

var typeNames = map[Type]string{
	Extended: "extended",
	Reflect:  "reflect",
	Value:    "value",
	Wrap:     "wrap",
	Skip:     "skip",
}

// String returns the lower case policy name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseType converts a policy name, case insensitive, to a Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, s := range typeNames {
		if s == name {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownType, "%q", name)
}

// IndexFunc maps any integer coordinate to one inside [0, size).
type IndexFunc func(index, size int) int

// Index returns the coordinate mapping of a policy. Value and Skip have
// none and return nil.
func Index(t Type) IndexFunc {
	switch t {
	case Extended:
		return Clamp
	case Reflect:
		return Mirror
	case Wrap:
		return WrapIndex
	default:
		return nil
	}
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Mirror reflects index into [0, size) without repeating the edge sample.
// Coordinates far outside the image are reflected repeatedly.
func Mirror(index, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2 * (size - 1)
	index %= period
	if index < 0 {
		index += period
	}
	if index >= size {
		index = period - index
	}
	return index
}

// WrapIndex returns index wrapped to [0, size) using modulo.
func WrapIndex(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}

// Border returns pixel values for coordinates inside or outside the image it
// is bound to.
type Border[T image.Pixel] interface {
	// Get returns the value at (x, y). Coordinates may be anywhere.
	Get(x, y int) T

	// SetImage binds the border to img.
	SetImage(img *image.Gray[T])

	// Image returns the bound image.
	Image() *image.Gray[T]

	// Type returns the policy.
	Type() Type
}

// New creates an unbound border. value is used only by the Value policy.
func New[T image.Pixel](t Type, value T) (Border[T], error) {
	switch t {
	case Extended, Reflect, Wrap:
		return &Indexed[T]{policy: t, index: Index(t)}, nil
	case Value:
		return &Constant[T]{Value: value}, nil
	case Skip:
		return nil, ErrSkipNotRuntime
	default:
		return nil, errors.Wrapf(ErrUnknownType, "%d", int(t))
	}
}

// WrapImage creates a border of type t bound to img.
func WrapImage[T image.Pixel](t Type, value T, img *image.Gray[T]) (Border[T], error) {
	b, err := New(t, value)
	if err != nil {
		return nil, err
	}
	b.SetImage(img)
	return b, nil
}

// Indexed implements the policies that map outside coordinates onto image
// pixels.
type Indexed[T image.Pixel] struct {
	img    *image.Gray[T]
	policy Type
	index  IndexFunc
}

// Get returns the value at (x, y).
func (b *Indexed[T]) Get(x, y int) T {
	img := b.img
	if x < 0 || x >= img.Width {
		x = b.index(x, img.Width)
	}
	if y < 0 || y >= img.Height {
		y = b.index(y, img.Height)
	}
	return img.Data[img.StartIndex+y*img.Stride+x]
}

// SetImage binds the border to img.
func (b *Indexed[T]) SetImage(img *image.Gray[T]) { b.img = img }

// Image returns the bound image.
func (b *Indexed[T]) Image() *image.Gray[T] { return b.img }

// Type returns the policy.
func (b *Indexed[T]) Type() Type { return b.policy }

// Constant returns Value for every coordinate outside the image.
type Constant[T image.Pixel] struct {
	Value T
	img   *image.Gray[T]
}

// Get returns the value at (x, y).
func (b *Constant[T]) Get(x, y int) T {
	img := b.img
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return b.Value
	}
	return img.Data[img.StartIndex+y*img.Stride+x]
}

// SetImage binds the border to img.
func (b *Constant[T]) SetImage(img *image.Gray[T]) { b.img = img }

// Image returns the bound image.
func (b *Constant[T]) Image() *image.Gray[T] { return b.img }

// Type returns Value.
func (b *Constant[T]) Type() Type { return Value }
