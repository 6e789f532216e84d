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
	"testing"
)

func TestCache(t *testing.T) {
	c, err := NewCache(2)
	if err != nil {
		t.Fatal(err)
	}

	a, err := CachedGaussian1D[float32](c, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := CachedGaussian1D[float32](c, 1.0, 0)
	if a != b {
		t.Error("second lookup should return the cached kernel")
	}

	// float64 kernels with the same parameters are a different entry
	d, _ := CachedGaussian1D[float64](c, 1.0, 0)
	if d.Width() != a.Width() {
		t.Errorf("width %d vs %d", d.Width(), a.Width())
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	// evicts the least recently used entry
	if _, err := CachedGaussianFixed1D(c, 2.0, 0); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d", c.Len())
	}
}

func TestCache_Nil(t *testing.T) {
	k, err := CachedGaussian1D[float64](nil, 0, 2)
	if err != nil || k.Width() != 5 {
		t.Errorf("nil cache: width %d err %v", k.Width(), err)
	}
}
