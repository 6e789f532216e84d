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

package wavelet

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-vision/image"
)

func TestHaar_SingleBlock(t *testing.T) {
	h, err := NewHaar[float64](1)
	if err != nil {
		t.Fatal(err)
	}
	src, _ := image.NewGrayFrom([]float64{
		9, 1,
		3, 5,
	}, 2, 2)
	dst := image.NewGray[float64](2, 2)
	if err := h.Forward(src, dst); err != nil {
		t.Fatal(err)
	}
	want := []float64{
		4.5, 1.5, // LL = sum/4, HL = (row differences)/4
		0.5, 2.5, // LH = (row sums difference)/4, HH
	}
	if diff := cmp.Diff(want, dst.Data); diff != "" {
		t.Errorf("coefficients (-want +got):\n%s", diff)
	}
}

func TestHaar_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, levels := range []int{1, 2, 3} {
		src := image.NewGray[float32](64, 48)
		for i := range src.Data {
			src.Data[i] = rng.Float32()
		}
		h, err := NewHaar[float32](levels)
		if err != nil {
			t.Fatal(err)
		}
		coef := image.NewGray[float32](1, 1)
		if err := h.Forward(src, coef); err != nil {
			t.Fatal(err)
		}
		back := image.NewGray[float32](1, 1)
		if err := h.Inverse(coef, back); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(src.Data, back.Data, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
			t.Errorf("levels %d: round trip (-want +got):\n%s", levels, diff)
		}
	}
}

// The top level average of a constant image is the constant and every
// detail coefficient is zero.
func TestHaar_Constant(t *testing.T) {
	h, _ := NewHaar[float64](3)
	src := image.NewGray[float64](16, 8)
	src.Fill(7)
	if err := h.Forward(src, src); err != nil {
		t.Fatal(err)
	}
	for y := range 8 {
		for x := range 16 {
			want := 0.0
			if x < 2 && y < 1 {
				want = 7
			}
			if got := src.UnsafeGet(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if err := h.Inverse(src, src); err != nil {
		t.Fatal(err)
	}
	for i, v := range src.Data {
		if v != 7 {
			t.Fatalf("pixel %d = %v after inverse", i, v)
		}
	}
}

func TestHaar_SubImage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	parent := image.NewGray[float64](40, 30)
	for i := range parent.Data {
		parent.Data[i] = rng.Float64()
	}
	sub, _ := parent.SubImage(3, 5, 35, 21)
	h, _ := NewHaar[float64](2)

	want, got := image.NewGray[float64](1, 1), image.NewGray[float64](1, 1)
	if err := h.Forward(sub.Clone(), want); err != nil {
		t.Fatal(err)
	}
	if err := h.Forward(sub, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Data, got.Data); diff != "" {
		t.Errorf("sub-image (-want +got):\n%s", diff)
	}
}

func TestHaar_Errors(t *testing.T) {
	if _, err := NewHaar[float32](0); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("got %v, want ErrInvalidLevels", err)
	}
	h, _ := NewHaar[float32](2)
	if err := h.Forward(image.NewGray[float32](12, 10), image.NewGray[float32](1, 1)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
	if err := h.Inverse(image.NewGray[float32](6, 8), image.NewGray[float32](1, 1)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}
