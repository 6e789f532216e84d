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
)

func TestScale(t *testing.T) {
	img := NewGray[float32](4, 2)
	for i := range img.Data {
		img.Data[i] = float32(i)
	}
	out := NewGray[float32](0, 0)
	if err := Scale(img, out, 2, 1); err != nil {
		t.Fatal(err)
	}
	for i := range img.Data {
		if want := float32(i)*2 + 1; out.Data[i] != want {
			t.Errorf("out[%d] = %v, want %v", i, out.Data[i], want)
		}
	}
}

func TestClamp(t *testing.T) {
	img := NewGray[int16](5, 1)
	copy(img.Data, []int16{-10, 0, 5, 10, 300})
	if err := Clamp(img, img, 0, 255); err != nil {
		t.Fatal(err)
	}
	want := []int16{0, 0, 5, 10, 255}
	for i, w := range want {
		if img.Data[i] != w {
			t.Errorf("[%d] = %d, want %d", i, img.Data[i], w)
		}
	}
	if err := Clamp(img, img, 5, 1); err == nil {
		t.Error("expected error for lo > hi")
	}
}

func TestConvertAndMinMax(t *testing.T) {
	img := NewGray[uint8](3, 2)
	copy(img.Data, []uint8{5, 200, 17, 0, 255, 3})
	sub, _ := img.SubImage(1, 0, 3, 2)

	out := NewGray[float64](0, 0)
	if err := Convert(sub, out); err != nil {
		t.Fatal(err)
	}
	if out.Width != 2 || out.UnsafeGet(0, 1) != 255 {
		t.Errorf("Convert: %v", out.Data)
	}

	lo, hi := MinMax(sub)
	if lo != 3 || hi != 255 {
		t.Errorf("MinMax = %d,%d; want 3,255", lo, hi)
	}
}

func TestRGBToGray(t *testing.T) {
	rgb := NewPlanar[uint8](2, 1, 3)
	rgb.Band(0).Fill(255)
	out := NewGray[float32](0, 0)
	if err := RGBToGray(rgb, out); err != nil {
		t.Fatal(err)
	}
	if got := out.UnsafeGet(1, 0); got < 76.2 || got > 76.3 {
		t.Errorf("luma of pure red = %v, want ~76.245", got)
	}

	if err := RGBToGray(NewPlanar[uint8](2, 1, 1), out); err == nil {
		t.Error("expected error for a single band image")
	}
}

func TestPlanar_SubImage(t *testing.T) {
	p := NewPlanar[float32](6, 4, 3)
	sub, err := p.SubImage(1, 1, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if sub.NumBands() != 3 || sub.Width() != 4 || sub.Height() != 2 {
		t.Fatalf("sub: %d bands %dx%d", sub.NumBands(), sub.Width(), sub.Height())
	}
	sub.Band(2).UnsafeSet(0, 0, 1.5)
	if p.Band(2).UnsafeGet(1, 1) != 1.5 {
		t.Error("planar view should share storage")
	}
	if p.Band(3) != nil || p.Band(-1) != nil {
		t.Error("Band out of range should be nil")
	}
}
