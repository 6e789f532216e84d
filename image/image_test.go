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
	"testing"

	"github.com/pkg/errors"
)

func TestNewGray(t *testing.T) {
	img := NewGray[float32](100, 50)

	if img.Width != 100 {
		t.Errorf("Width: got %d, want 100", img.Width)
	}
	if img.Height != 50 {
		t.Errorf("Height: got %d, want 50", img.Height)
	}
	if img.Stride != 100 {
		t.Errorf("Stride: got %d, want 100", img.Stride)
	}
	if len(img.Data) != 100*50 {
		t.Errorf("len(Data): got %d, want %d", len(img.Data), 100*50)
	}
}

func TestNewGray_NegativeDimensions(t *testing.T) {
	img := NewGray[uint8](-1, 10)
	if img.Width != 0 || len(img.Data) != 0 {
		t.Errorf("Negative width: got %dx%d", img.Width, img.Height)
	}
}

func TestGray_GetSet(t *testing.T) {
	img := NewGray[int16](4, 3)
	if err := img.Set(3, 2, -7); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := img.Get(3, 2)
	if err != nil || v != -7 {
		t.Errorf("Get(3,2) = %d, %v; want -7, nil", v, err)
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := img.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d): got %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := img.Set(c[0], c[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): got %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestGray_SubImageSharesStorage(t *testing.T) {
	img := NewGray[uint8](10, 8)
	sub, err := img.SubImage(2, 3, 7, 6)
	if err != nil {
		t.Fatalf("SubImage: %v", err)
	}
	if sub.Width != 5 || sub.Height != 3 {
		t.Fatalf("sub shape: got %dx%d, want 5x3", sub.Width, sub.Height)
	}
	if !sub.IsSubImage() {
		t.Error("IsSubImage should be true")
	}

	if err := sub.Set(0, 0, 42); err != nil {
		t.Fatal(err)
	}
	if got := img.UnsafeGet(2, 3); got != 42 {
		t.Errorf("parent (2,3): got %d, want 42", got)
	}

	img.UnsafeSet(6, 5, 9)
	if got := sub.UnsafeGet(4, 2); got != 9 {
		t.Errorf("sub (4,2): got %d, want 9", got)
	}

	// Nested views compose their offsets.
	subsub, err := sub.SubImage(1, 1, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	subsub.UnsafeSet(0, 0, 77)
	if got := img.UnsafeGet(3, 4); got != 77 {
		t.Errorf("nested view write: got %d, want 77", got)
	}
}

func TestGray_SubImageInvalid(t *testing.T) {
	img := NewGray[uint8](10, 8)
	cases := []Rect{
		{0, 0, 0, 5},
		{-1, 0, 3, 3},
		{0, 0, 11, 3},
		{0, 0, 3, 9},
		{5, 5, 4, 6},
	}
	for _, r := range cases {
		if _, err := img.SubImage(r.X0, r.Y0, r.X1, r.Y1); !errors.Is(err, ErrInvalidRect) {
			t.Errorf("SubImage(%v): got %v, want ErrInvalidRect", r, err)
		}
	}
}

func TestGray_Reshape(t *testing.T) {
	img := NewGray[float32](10, 10)
	data := img.Data

	if err := img.Reshape(5, 4); err != nil {
		t.Fatal(err)
	}
	if img.Width != 5 || img.Height != 4 || img.Stride != 5 {
		t.Errorf("after shrink: %dx%d stride %d", img.Width, img.Height, img.Stride)
	}
	if &img.Data[0] != &data[0] {
		t.Error("shrinking should reuse the backing array")
	}

	if err := img.Reshape(20, 20); err != nil {
		t.Fatal(err)
	}
	if len(img.Data) != 400 {
		t.Errorf("after grow: len %d, want 400", len(img.Data))
	}

	sub, _ := img.SubImage(0, 0, 3, 3)
	if err := sub.Reshape(3, 3); err != nil {
		t.Errorf("same-shape reshape of a view should be a no-op, got %v", err)
	}
	if err := sub.Reshape(4, 4); !errors.Is(err, ErrReshapeSubImage) {
		t.Errorf("got %v, want ErrReshapeSubImage", err)
	}
}

func TestGray_RowAndClone(t *testing.T) {
	img := NewGray[int32](6, 4)
	for y := range img.Height {
		for x := range img.Width {
			img.UnsafeSet(x, y, int32(y*10+x))
		}
	}
	sub, _ := img.SubImage(1, 1, 4, 3)

	row := sub.Row(1)
	if len(row) != 3 || row[0] != 21 || row[2] != 23 {
		t.Errorf("sub.Row(1) = %v, want [21 22 23]", row)
	}
	if sub.Row(-1) != nil || sub.Row(2) != nil {
		t.Error("Row outside the image should return nil")
	}

	clone := sub.Clone()
	if clone.IsSubImage() || clone.Stride != 3 {
		t.Errorf("clone should be compact: stride %d", clone.Stride)
	}
	clone.UnsafeSet(0, 0, -1)
	if sub.UnsafeGet(0, 0) == -1 {
		t.Error("clone should not share storage")
	}
	for y := range sub.Height {
		for x := range sub.Width {
			if clone.UnsafeGet(x, y) != sub.UnsafeGet(x, y) && !(x == 0 && y == 0) {
				t.Errorf("clone (%d,%d) differs", x, y)
			}
		}
	}
}

func TestGray_FillAndCopyFrom(t *testing.T) {
	img := NewGray[uint16](5, 5)
	sub, _ := img.SubImage(1, 1, 4, 4)
	sub.Fill(7)

	for y := range img.Height {
		for x := range img.Width {
			want := uint16(0)
			if x >= 1 && x < 4 && y >= 1 && y < 4 {
				want = 7
			}
			if got := img.UnsafeGet(x, y); got != want {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}

	dst := NewGray[uint16](3, 3)
	if err := dst.CopyFrom(sub); err != nil {
		t.Fatal(err)
	}
	if dst.UnsafeGet(2, 2) != 7 {
		t.Error("CopyFrom did not copy")
	}
	if err := dst.CopyFrom(img); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 110, Y1: 70}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size: %dx%d", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("should not be empty")
	}
	inter := r.Intersect(Rect{X0: 50, Y0: 0, X1: 200, Y1: 40})
	if inter != (Rect{X0: 50, Y0: 20, X1: 110, Y1: 40}) {
		t.Errorf("Intersect: got %+v", inter)
	}
}

func TestTypeTraits(t *testing.T) {
	if !IsFloat[float32]() || IsFloat[int32]() {
		t.Error("IsFloat")
	}
	if !IsSigned[int8]() || IsSigned[uint16]() || !IsSigned[float64]() {
		t.Error("IsSigned")
	}
	if TypeName[uint16]() != "uint16" {
		t.Errorf("TypeName: %s", TypeName[uint16]())
	}
}
