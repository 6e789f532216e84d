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

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned by the checked accessors for coordinates
	// outside [0,Width)x[0,Height).
	ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

	// ErrInvalidRect is returned when a sub-image rectangle is empty or does
	// not fit inside the image.
	ErrInvalidRect = errors.New("invalid sub-image rectangle")

	// ErrReshapeSubImage is returned when Reshape would have to reallocate a
	// view that does not own its backing array.
	ErrReshapeSubImage = errors.New("cannot reshape a sub-image")

	// ErrShapeMismatch is returned when two images must have the same shape.
	ErrShapeMismatch = errors.New("image shapes do not match")
)

// Gray is a single-band image stored in a flat array.
//
// Pixel (x, y) is stored at Data[StartIndex+y*Stride+x]. A sub-image shares
// Data with its parent and differs only in geometry.
type Gray[T Pixel] struct {
	Data       []T
	Width      int
	Height     int
	Stride     int // elements between the start of two consecutive rows
	StartIndex int // index of pixel (0,0) in Data

	subImage bool
}

// NewGray creates a zero-filled image with the specified dimensions.
// Negative dimensions are treated as zero.
func NewGray[T Pixel](width, height int) *Gray[T] {
	width = max(width, 0)
	height = max(height, 0)
	return &Gray[T]{
		Data:   make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// NewGrayFrom wraps an existing row-major slice without copying it.
func NewGrayFrom[T Pixel](data []T, width, height int) (*Gray[T], error) {
	if width < 0 || height < 0 || len(data) < width*height {
		return nil, errors.Wrapf(ErrInvalidRect, "%dx%d image needs %d elements, got %d",
			width, height, width*height, len(data))
	}
	return &Gray[T]{Data: data, Width: width, Height: height, Stride: width}, nil
}

// Reshape changes the image dimensions. The backing array is only
// reallocated when it is too small, so callers holding a reference to the
// image keep seeing the same object. Pixel values are not preserved.
func (img *Gray[T]) Reshape(width, height int) error {
	if img.Width == width && img.Height == height {
		return nil
	}
	if img.subImage {
		return errors.Wrapf(ErrReshapeSubImage, "%dx%d to %dx%d", img.Width, img.Height, width, height)
	}
	width = max(width, 0)
	height = max(height, 0)
	if cap(img.Data) < width*height {
		img.Data = make([]T, width*height)
	} else {
		img.Data = img.Data[:width*height]
	}
	img.Width = width
	img.Height = height
	img.Stride = width
	img.StartIndex = 0
	return nil
}

// IsSubImage reports whether img is a view into another image.
func (img *Gray[T]) IsSubImage() bool {
	return img.subImage
}

// IsInBounds reports whether (x, y) is a valid pixel coordinate.
func (img *Gray[T]) IsInBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// Index returns the position of pixel (x, y) in Data.
func (img *Gray[T]) Index(x, y int) int {
	return img.StartIndex + y*img.Stride + x
}

// Get returns the value at (x, y).
func (img *Gray[T]) Get(x, y int) (T, error) {
	if !img.IsInBounds(x, y) {
		var zero T
		return zero, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d", x, y, img.Width, img.Height)
	}
	return img.Data[img.StartIndex+y*img.Stride+x], nil
}

// Set sets the value at (x, y).
func (img *Gray[T]) Set(x, y int, value T) error {
	if !img.IsInBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d", x, y, img.Width, img.Height)
	}
	img.Data[img.StartIndex+y*img.Stride+x] = value
	return nil
}

// UnsafeGet returns the value at (x, y) without checking the coordinate
// against the image bounds.
func (img *Gray[T]) UnsafeGet(x, y int) T {
	return img.Data[img.StartIndex+y*img.Stride+x]
}

// UnsafeSet sets the value at (x, y) without checking the coordinate against
// the image bounds.
func (img *Gray[T]) UnsafeSet(x, y int, value T) {
	img.Data[img.StartIndex+y*img.Stride+x] = value
}

// Row returns a mutable slice over the pixels of row y.
// Returns nil for rows outside the image.
func (img *Gray[T]) Row(y int) []T {
	if y < 0 || y >= img.Height {
		return nil
	}
	start := img.StartIndex + y*img.Stride
	return img.Data[start : start+img.Width]
}

// SubImage returns a view of the rectangle [x0,x1)x[y0,y1). The view shares
// the backing array, so writes through it are visible in img.
func (img *Gray[T]) SubImage(x0, y0, x1, y1 int) (*Gray[T], error) {
	r := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
	if r.IsEmpty() || x0 < 0 || y0 < 0 || x1 > img.Width || y1 > img.Height {
		return nil, errors.Wrapf(ErrInvalidRect, "[%d,%d)x[%d,%d) in %dx%d", x0, x1, y0, y1, img.Width, img.Height)
	}
	return &Gray[T]{
		Data:       img.Data,
		Width:      r.Width(),
		Height:     r.Height(),
		Stride:     img.Stride,
		StartIndex: img.StartIndex + y0*img.Stride + x0,
		subImage:   true,
	}, nil
}

// SameShape returns true if both images have the same dimensions.
func SameShape[T, U Pixel](a *Gray[T], b *Gray[U]) bool {
	return a.Width == b.Width && a.Height == b.Height
}

// Clone creates a compact deep copy of the image. The copy is never a
// sub-image even when img is.
func (img *Gray[T]) Clone() *Gray[T] {
	clone := NewGray[T](img.Width, img.Height)
	for y := range img.Height {
		copy(clone.Row(y), img.Row(y))
	}
	return clone
}

// CopyFrom copies the pixels of src into img. Both must have the same shape.
func (img *Gray[T]) CopyFrom(src *Gray[T]) error {
	if !SameShape(img, src) {
		return errors.Wrapf(ErrShapeMismatch, "%dx%d vs %dx%d", img.Width, img.Height, src.Width, src.Height)
	}
	for y := range img.Height {
		copy(img.Row(y), src.Row(y))
	}
	return nil
}

// Fill sets all pixels to the specified value.
func (img *Gray[T]) Fill(value T) {
	for y := range img.Height {
		row := img.Row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Bounds returns the bounding rectangle of the image.
func (img *Gray[T]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.Width, Y1: img.Height}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		X0: max(r.X0, other.X0),
		Y0: max(r.Y0, other.Y0),
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
	}
}
