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

package border

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
)

func TestMirror(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 1},
		{-2, 5, 2},
		{5, 5, 3},
		{6, 5, 2},
		{-4, 5, 4},
		{-5, 5, 3},
		{8, 5, 0},
		{9, 5, 1},
		{-9, 5, 1},
		{3, 1, 0},
		{-3, 2, 1},
	}
	for _, tt := range tests {
		if got := Mirror(tt.index, tt.size); got != tt.want {
			t.Errorf("Mirror(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}

func TestClampAndWrap(t *testing.T) {
	if Clamp(-3, 4) != 0 || Clamp(10, 4) != 3 || Clamp(2, 4) != 2 {
		t.Error("Clamp")
	}
	if WrapIndex(-1, 4) != 3 || WrapIndex(9, 4) != 1 || WrapIndex(-8, 4) != 0 {
		t.Error("WrapIndex")
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(" " + name + " ")
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", name, got, err)
		}
		if typ.String() != name {
			t.Errorf("String() = %q, want %q", typ.String(), name)
		}
	}
	if _, err := ParseType("EXTENDED"); err != nil {
		t.Errorf("upper case: %v", err)
	}
	if _, err := ParseType("zero"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
}

func newTestImage() *image.Gray[int32] {
	img := image.NewGray[int32](4, 3)
	for y := range img.Height {
		for x := range img.Width {
			img.UnsafeSet(x, y, int32(y*10+x))
		}
	}
	return img
}

// Every policy must return a defined value for coordinates far outside the
// image, and the in-range value for in-range coordinates.
func TestBorder_AllCoordinates(t *testing.T) {
	img := newTestImage()
	for _, typ := range []Type{Extended, Reflect, Wrap, Value} {
		t.Run(typ.String(), func(t *testing.T) {
			b, err := WrapImage[int32](typ, -1, img)
			if err != nil {
				t.Fatal(err)
			}
			if b.Type() != typ || b.Image() != img {
				t.Fatal("binding")
			}
			for y := -img.Height - 2; y < 2*img.Height+2; y++ {
				for x := -img.Width - 2; x < 2*img.Width+2; x++ {
					got := b.Get(x, y)
					if img.IsInBounds(x, y) {
						if got != img.UnsafeGet(x, y) {
							t.Errorf("(%d,%d) inside: got %d", x, y, got)
						}
						continue
					}
					var want int32
					switch typ {
					case Extended:
						want = img.UnsafeGet(Clamp(x, img.Width), Clamp(y, img.Height))
					case Reflect:
						want = img.UnsafeGet(Mirror(x, img.Width), Mirror(y, img.Height))
					case Wrap:
						want = img.UnsafeGet(WrapIndex(x, img.Width), WrapIndex(y, img.Height))
					case Value:
						want = -1
					}
					if got != want {
						t.Errorf("(%d,%d): got %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBorder_Reflect(t *testing.T) {
	img := newTestImage()
	b, _ := WrapImage[int32](Reflect, 0, img)
	if got := b.Get(-1, 0); got != 1 {
		t.Errorf("(-1,0) = %d, want 1", got)
	}
	if got := b.Get(4, -1); got != 12 {
		t.Errorf("(4,-1) = %d, want 12", got)
	}
}

func TestBorder_SubImage(t *testing.T) {
	img := newTestImage()
	sub, _ := img.SubImage(1, 1, 3, 3)
	b, _ := WrapImage[int32](Extended, 0, sub)
	if got := b.Get(-5, -5); got != 11 {
		t.Errorf("clamped corner = %d, want 11", got)
	}
	if got := b.Get(7, 7); got != 22 {
		t.Errorf("clamped corner = %d, want 22", got)
	}
}

func TestBorder_Rebind(t *testing.T) {
	b, err := New[float32](Extended, 0)
	if err != nil {
		t.Fatal(err)
	}
	a := image.NewGray[float32](2, 2)
	a.Fill(1)
	c := image.NewGray[float32](3, 3)
	c.Fill(2)

	b.SetImage(a)
	if b.Get(-1, -1) != 1 {
		t.Error("first image")
	}
	b.SetImage(c)
	if b.Get(5, 5) != 2 {
		t.Error("rebound image")
	}
}

func TestNew_Skip(t *testing.T) {
	if _, err := New[uint8](Skip, 0); !errors.Is(err, ErrSkipNotRuntime) {
		t.Errorf("got %v, want ErrSkipNotRuntime", err)
	}
	if _, err := New[uint8](Type(42), 0); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
	if Index(Value) != nil {
		t.Error("Value has no index mapping")
	}
}
