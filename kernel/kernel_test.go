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

package kernel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestNew1D(t *testing.T) {
	k, err := New1D[int32](1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if k.Width() != 3 || k.Radius() != 1 || k.Offset() != 1 {
		t.Errorf("width %d radius %d offset %d", k.Width(), k.Radius(), k.Offset())
	}
	if k.Sum() != 4 {
		t.Errorf("Sum = %d, want 4", k.Sum())
	}
	if !k.IsSymmetricOdd() {
		t.Error("should be symmetric")
	}

	if _, err := New1D[float32](); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("empty: got %v", err)
	}
	if _, err := New1D[float32](1, 1); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("even width: got %v", err)
	}
	if _, err := New1DOffset[float32](2, 1, 1); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("offset out of range: got %v", err)
	}
}

func TestKernel1D_Immutable(t *testing.T) {
	src := []float64{1, 2, 3}
	k, _ := New1D(src...)
	src[0] = 100
	if k.At(0) != 1 {
		t.Error("constructor must copy its input")
	}
	d := k.Data()
	d[1] = 100
	if k.At(1) != 2 {
		t.Error("Data must return a copy")
	}
}

func TestNew1DOffset_NotSymmetric(t *testing.T) {
	k, err := New1DOffset[float32](0, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if k.IsSymmetricOdd() {
		t.Error("offset 0 width 2 is not symmetric")
	}
}

func TestNew2D(t *testing.T) {
	k, err := New2D[int32](3, 1, 2, 1, 2, 4, 2, 1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if k.Width() != 3 || k.Radius() != 1 || k.At(1, 1) != 4 || k.Sum() != 16 {
		t.Errorf("unexpected kernel %+v", k)
	}
	if _, err := New2D[int32](3, 1, 2); !errors.Is(err, ErrNotSquare) {
		t.Errorf("got %v, want ErrNotSquare", err)
	}
	if _, err := New2D[int32](2, 1, 2, 3, 4); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("got %v, want ErrInvalidOffset", err)
	}
}

func TestOuter(t *testing.T) {
	a, _ := New1D[int32](1, 2, 1)
	b, _ := New1D[int32](-1, 0, 1)
	k, err := Outer(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	if diff := cmp.Diff(want, k.Coefficients()); diff != "" {
		t.Errorf("Outer mismatch (-want +got):\n%s", diff)
	}

	c, _ := New1D[int32](1, 1, 1, 1, 1)
	if _, err := Outer(a, c); err == nil {
		t.Error("expected error for mismatched widths")
	}
}

func TestSigmaRadius(t *testing.T) {
	sigma, err := SigmaForRadius(2, 0)
	if err != nil || math.Abs(sigma-1.0) > 1e-12 {
		t.Errorf("SigmaForRadius(2) = %v, %v; want 1", sigma, err)
	}
	radius, err := RadiusForSigma(1.0, 0)
	if err != nil || radius != 2 {
		t.Errorf("RadiusForSigma(1) = %d, %v; want 2", radius, err)
	}
	if _, err := SigmaForRadius(0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v", err)
	}
	if _, err := RadiusForSigma(-1, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v", err)
	}
}

func TestGaussian1D(t *testing.T) {
	k, err := Gaussian1D[float32](1.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantRadius, _ := RadiusForSigma(1.5, 0)
	if k.Radius() != wantRadius {
		t.Errorf("radius %d, want %d", k.Radius(), wantRadius)
	}
	if s := k.Sum(); math.Abs(float64(s)-1) > 1e-6 {
		t.Errorf("sum %v, want 1", s)
	}
	for i := range k.Radius() {
		if k.At(i) != k.At(k.Width()-1-i) {
			t.Errorf("not symmetric at %d", i)
		}
		if k.At(i) >= k.At(i+1) {
			t.Errorf("not increasing toward the center at %d", i)
		}
	}

	k, err = Gaussian1D[float32](0, 3)
	if err != nil || k.Width() != 7 {
		t.Errorf("radius only: width %d err %v", k.Width(), err)
	}

	if _, err := Gaussian1D[float64](0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
}

func TestGaussianFixed1D(t *testing.T) {
	f, err := GaussianFixed1D(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kernel.Width() != 5 {
		t.Fatalf("width %d", f.Kernel.Width())
	}
	if f.Divisor != f.Kernel.Sum() {
		t.Errorf("divisor %d != sum %d", f.Divisor, f.Kernel.Sum())
	}
	// smallest coefficient maps to 1/MinFrac
	if f.Kernel.At(0) != 100 {
		t.Errorf("edge coefficient %d, want 100", f.Kernel.At(0))
	}

	g, _ := Gaussian1D[float64](0, 2)
	for i := range 5 {
		got := float64(f.Kernel.At(i)) / float64(f.Divisor)
		if math.Abs(got-g.At(i)) > 0.01 {
			t.Errorf("[%d] fixed %v float %v", i, got, g.At(i))
		}
	}
}

func TestGaussian2D(t *testing.T) {
	k, err := Gaussian2D[float64](1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(k.Sum()-1) > 1e-9 {
		t.Errorf("sum %v", k.Sum())
	}
	g, _ := Gaussian1D[float64](1, 2)
	if math.Abs(k.At(1, 3)-g.At(1)*g.At(3)) > 1e-12 {
		t.Error("2D kernel should be the outer product of the 1D kernel")
	}

	f, err := GaussianFixed2D(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kernel.At(0, 0) != 100 || f.Divisor != f.Kernel.Sum() {
		t.Errorf("corner %d divisor %d sum %d", f.Kernel.At(0, 0), f.Divisor, f.Kernel.Sum())
	}
}

func TestToFixed_Derivative(t *testing.T) {
	k, _ := New1D[float32](-0.5, 0, 0.5)
	f, err := ToFixed1D(k, MinFrac)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int32{-100, 0, 100}, f.Kernel.Coefficients()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if f.Divisor != 1 {
		t.Errorf("zero-sum kernel divisor %d, want 1", f.Divisor)
	}

	z, _ := New1D[float32](0, 0, 0)
	if _, err := ToFixed1D(z, MinFrac); !errors.Is(err, ErrAllZero) {
		t.Errorf("got %v, want ErrAllZero", err)
	}
}

func TestNormalizeSumToOne(t *testing.T) {
	k, _ := New1D[float64](1, 2, 1)
	n, err := NormalizeSumToOne(k)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.25, 0.5, 0.25}, n.Coefficients()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if MaxAbsSum(k) != 4 {
		t.Errorf("MaxAbsSum = %v", MaxAbsSum(k))
	}
}
