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

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-vision/border"
	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/kernel"
)

// sentinel marks destination pixels an operation must not write.
const sentinel = 77

func isFloatKernel[K kernel.Coefficient]() bool {
	return K(1)/K(2) != 0
}

func randomImage[T image.Pixel](rng *rand.Rand, width, height int) *image.Gray[T] {
	img := image.NewGray[T](width, height)
	for i := range img.Data {
		if image.IsFloat[T]() {
			img.Data[i] = T(rng.Float64())
		} else {
			img.Data[i] = T(rng.Intn(100))
		}
	}
	return img
}

func randomCoefficients[K kernel.Coefficient](rng *rand.Rand, n int, positive bool) []K {
	data := make([]K, n)
	for i := range data {
		switch {
		case isFloatKernel[K]() && positive:
			data[i] = K(rng.Float64() + 0.1)
		case isFloatKernel[K]():
			data[i] = K(rng.Float64()*2 - 1)
		case positive:
			data[i] = K(rng.Intn(10) + 1)
		default:
			data[i] = K(rng.Intn(21) - 10)
		}
	}
	return data
}

func randomKernel1D[K kernel.Coefficient](t *testing.T, rng *rand.Rand, width int, positive bool) *kernel.Kernel1D[K] {
	t.Helper()
	k, err := kernel.New1D(randomCoefficients[K](rng, width, positive)...)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func randomKernel2D[K kernel.Coefficient](t *testing.T, rng *rand.Rand, width int, positive bool) *kernel.Kernel2D[K] {
	t.Helper()
	k, err := kernel.New2D(width, randomCoefficients[K](rng, width*width, positive)...)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// filled returns a width x height image with every pixel set to sentinel.
func filled[T image.Pixel](width, height int) *image.Gray[T] {
	img := image.NewGray[T](width, height)
	img.Fill(sentinel)
	return img
}

// padded copies img into the middle of a larger random image and returns
// the sub-image view.
func padded[T image.Pixel](t *testing.T, rng *rand.Rand, img *image.Gray[T]) *image.Gray[T] {
	t.Helper()
	outer := randomImage[T](rng, img.Width+5, img.Height+7)
	sub, err := outer.SubImage(2, 3, 2+img.Width, 3+img.Height)
	if err != nil {
		t.Fatal(err)
	}
	if err := sub.CopyFrom(img); err != nil {
		t.Fatal(err)
	}
	return sub
}

// store rounds a float64 total the way the engine stores a sum.
func store[T image.Pixel](total, div float64) T {
	if image.IsFloat[T]() {
		return T(total / div)
	}
	t, d := int64(math.Round(total)), int64(div)
	return T((t + d/2) / d)
}

// get reads (x, y) through b as float64.
func get[T image.Pixel](b border.Border[T], x, y int) float64 {
	return float64(b.Get(x, y))
}

// refHorizontal is a dense horizontal convolution reading every sample
// through b.
func refHorizontal[T image.Pixel, K kernel.Coefficient](k *kernel.Kernel1D[K], b border.Border[T], div float64) *image.Gray[T] {
	src := b.Image()
	out := image.NewGray[T](src.Width, src.Height)
	for y := range src.Height {
		for x := range src.Width {
			var total float64
			for i := range k.Width() {
				total += get(b, x-k.Offset()+i, y) * float64(k.At(i))
			}
			out.UnsafeSet(x, y, store[T](total, div))
		}
	}
	return out
}

func refVertical[T image.Pixel, K kernel.Coefficient](k *kernel.Kernel1D[K], b border.Border[T], div float64) *image.Gray[T] {
	src := b.Image()
	out := image.NewGray[T](src.Width, src.Height)
	for y := range src.Height {
		for x := range src.Width {
			var total float64
			for i := range k.Width() {
				total += get(b, x, y-k.Offset()+i) * float64(k.At(i))
			}
			out.UnsafeSet(x, y, store[T](total, div))
		}
	}
	return out
}

func refConvolve[T image.Pixel, K kernel.Coefficient](k *kernel.Kernel2D[K], b border.Border[T], div float64) *image.Gray[T] {
	src := b.Image()
	out := image.NewGray[T](src.Width, src.Height)
	off := k.Offset()
	for y := range src.Height {
		for x := range src.Width {
			var total float64
			for ky := range k.Width() {
				for kx := range k.Width() {
					total += get(b, x-off+kx, y-off+ky) * float64(k.At(kx, ky))
				}
			}
			out.UnsafeSet(x, y, store[T](total, div))
		}
	}
	return out
}

// refNormalized2D is the dense normalized reference: every pixel divides by
// the weight of the coefficients that landed inside the image.
func refNormalized2D[T image.Pixel, K kernel.Coefficient](k *kernel.Kernel2D[K], src *image.Gray[T]) *image.Gray[T] {
	out := image.NewGray[T](src.Width, src.Height)
	off := k.Offset()
	for y := range src.Height {
		for x := range src.Width {
			var total, weight float64
			for ky := range k.Width() {
				for kx := range k.Width() {
					sx, sy := x-off+kx, y-off+ky
					if !src.IsInBounds(sx, sy) {
						continue
					}
					c := float64(k.At(kx, ky))
					total += float64(src.UnsafeGet(sx, sy)) * c
					weight += c
				}
			}
			out.UnsafeSet(x, y, store[T](total, weight))
		}
	}
	return out
}

func extended[T image.Pixel](t *testing.T, img *image.Gray[T]) border.Border[T] {
	t.Helper()
	b, err := border.WrapImage[T](border.Extended, 0, img)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// region copies the pixels of [x0,x1)x[y0,y1) into a slice.
func region[T image.Pixel](img *image.Gray[T], x0, y0, x1, y1 int) []T {
	var out []T
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			out = append(out, img.UnsafeGet(x, y))
		}
	}
	return out
}

func approx[T image.Pixel]() cmp.Option {
	if image.IsFloat[T]() {
		return cmpopts.EquateApprox(0, 1e-4)
	}
	return cmp.Options{}
}

// checkRegion compares got and want over a rectangle.
func checkRegion[T image.Pixel](t *testing.T, name string, got, want *image.Gray[T], x0, y0, x1, y1 int) {
	t.Helper()
	if diff := cmp.Diff(region(want, x0, y0, x1, y1), region(got, x0, y0, x1, y1), approx[T]()); diff != "" {
		t.Errorf("%s: [%d,%d)x[%d,%d) mismatch (-want +got):\n%s", name, x0, x1, y0, y1, diff)
	}
}

// checkUntouched verifies every pixel outside [x0,x1)x[y0,y1) still holds
// sentinel.
func checkUntouched[T image.Pixel](t *testing.T, name string, img *image.Gray[T], x0, y0, x1, y1 int) {
	t.Helper()
	for y := range img.Height {
		for x := range img.Width {
			if x >= x0 && x < x1 && y >= y0 && y < y1 {
				continue
			}
			if v := img.UnsafeGet(x, y); v != sentinel {
				t.Errorf("%s: (%d,%d) = %v was written", name, x, y, v)
				return
			}
		}
	}
}

// checkInteriorUntouched verifies every pixel inside [x0,x1)x[y0,y1) still
// holds sentinel.
func checkInteriorUntouched[T image.Pixel](t *testing.T, name string, img *image.Gray[T], x0, y0, x1, y1 int) {
	t.Helper()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if v := img.UnsafeGet(x, y); v != sentinel {
				t.Errorf("%s: interior (%d,%d) = %v was written", name, x, y, v)
				return
			}
		}
	}
}
