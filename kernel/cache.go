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
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of kernels kept by NewCache(0).
const DefaultCacheSize = 64

type cacheKey struct {
	kind   string
	sigma  float64
	radius int
}

// Cache memoizes Gaussian kernels by type, sigma and radius. Streaming callers
// blur every frame with the same parameters, so the kernel is built once.
// A Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, any]
}

// NewCache creates a cache holding up to size kernels. size <= 0 selects
// DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, any](size)
	if err != nil {
		return nil, errors.Wrap(err, "kernel cache")
	}
	return &Cache{entries: entries}, nil
}

// Len returns the number of cached kernels.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached kernel.
func (c *Cache) Purge() {
	c.entries.Purge()
}

func lookup[V any](c *Cache, key cacheKey, build func() (V, error)) (V, error) {
	if c == nil {
		return build()
	}
	if v, ok := c.entries.Get(key); ok {
		return v.(V), nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.entries.Add(key, v)
	return v, nil
}

// CachedGaussian1D returns Gaussian1D(sigma, radius), reusing a cached copy
// when one exists. A nil cache always builds a new kernel.
func CachedGaussian1D[K FloatCoefficient](c *Cache, sigma float64, radius int) (*Kernel1D[K], error) {
	var zero K
	key := cacheKey{kind: fmt.Sprintf("g1d/%T", zero), sigma: sigma, radius: radius}
	return lookup(c, key, func() (*Kernel1D[K], error) {
		return Gaussian1D[K](sigma, radius)
	})
}

// CachedGaussianFixed1D returns GaussianFixed1D(sigma, radius) through the
// cache.
func CachedGaussianFixed1D(c *Cache, sigma float64, radius int) (Fixed1D, error) {
	key := cacheKey{kind: "g1d/fixed", sigma: sigma, radius: radius}
	return lookup(c, key, func() (Fixed1D, error) {
		return GaussianFixed1D(sigma, radius)
	})
}
