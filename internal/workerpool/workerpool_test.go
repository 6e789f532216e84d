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

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}

	def := New(0)
	defer def.Close()
	if def.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", def.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func checkDoubled(t *testing.T, results []int) {
	t.Helper()
	for i, v := range results {
		if v != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	results := make([]int, 100)
	pool.ParallelFor(len(results), func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	checkDoubled(t, results)
}

func TestParallelRows_MinRows(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var mu sync.Mutex
	var bands [][2]int
	pool.ParallelRows(20, 8, func(start, end int) {
		mu.Lock()
		bands = append(bands, [2]int{start, end})
		mu.Unlock()
	})
	// 20 rows with at least 8 per band gives 3 bands.
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3: %v", len(bands), bands)
	}
	covered := 0
	for _, b := range bands {
		covered += b[1] - b[0]
	}
	if covered != 20 {
		t.Errorf("covered %d rows, want 20", covered)
	}
}

func TestParallelRowsWorker_Slots(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var busy [4]atomic.Int32
	var count atomic.Int32
	pool.ParallelRowsWorker(103, 1, func(worker, start, end int) {
		if worker < 0 || worker >= pool.NumWorkers() {
			t.Errorf("worker %d out of range", worker)
			return
		}
		if busy[worker].Add(1) != 1 {
			t.Errorf("worker slot %d used concurrently", worker)
		}
		count.Add(int32(end - start))
		busy[worker].Add(-1)
	})
	if count.Load() != 103 {
		t.Errorf("count = %d, want 103", count.Load())
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	results := make([]int, 100)
	pool.ParallelForAtomic(len(results), func(i int) { results[i] = i * 2 })
	checkDoubled(t, results)
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	results := make([]int, 100)
	pool.ParallelForAtomicBatched(len(results), 7, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	checkDoubled(t, results)
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int32
	pool.ParallelFor(3, func(start, end int) { count.Add(int32(end - start)) })
	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers() = %d, want 1", pool.NumWorkers())
	}
	results := make([]int, 10)
	pool.ParallelRowsWorker(len(results), 1, func(worker, start, end int) {
		if worker != 0 || start != 0 || end != len(results) {
			t.Errorf("got (%d, %d, %d), want (0, 0, %d)", worker, start, end, len(results))
		}
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	checkDoubled(t, results)
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	results := make([]int, 100)
	pool.ParallelFor(len(results), func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	checkDoubled(t, results)
}

func BenchmarkParallelRows(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1024*1024)
	b.ResetTimer()
	for range b.N {
		pool.ParallelRows(1024, 16, func(start, end int) {
			for i := start * 1024; i < end*1024; i++ {
				data[i] += 1
			}
		})
	}
}
