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

package disparity

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-vision/image"
	"github.com/ajroetker/go-vision/internal/workerpool"
)

func BenchmarkProcess(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	left, right := stereoPair(rng, 640, 480, 12)
	c := Config{RangeDisparity: 64, RadiusX: 3, RadiusY: 3, MaxError: -1, RightToLeft: 1}
	pool := workerpool.New(0)
	defer pool.Close()

	for _, p := range []*workerpool.Pool{nil, pool} {
		m, err := New[uint8, int32](c, WithPool(p))
		if err != nil {
			b.Fatal(err)
		}
		out := image.NewGray[uint8](640, 480)
		b.Run(fmt.Sprintf("workers=%d", p.NumWorkers()), func(b *testing.B) {
			for b.Loop() {
				if err := m.Process(left, right, out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScoreRowSAD(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	left, right := stereoPair(rng, 640, 1, 12)
	scores := make([]int32, 640*64)
	element := make([]int32, 640)
	for b.Loop() {
		ScoreRowSAD(left, right, 0, scores, 0, 64, 7, element)
	}
}
