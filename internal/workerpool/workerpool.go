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

// Package workerpool runs row bands of an image operation on a fixed set of
// goroutines that live for the lifetime of the Pool.
//
// A nil *Pool is valid and runs everything on the calling goroutine, so
// callers never need to special-case the sequential path:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelRows(img.Height, 16, func(y0, y1 int) {
//	    processRows(y0, y1)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once by New and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines. If numWorkers <= 0,
// GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers. A nil or closed pool reports 1.
func (p *Pool) NumWorkers() int {
	if p == nil || p.closed.Load() {
		return 1
	}
	return p.numWorkers
}

// Close shuts the pool down. Work already queued completes. Calling Close
// more than once is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and blocks
// until fn has returned for every range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelRows(n, 1, fn)
}

// ParallelRows splits [0, n) into contiguous bands of at least minRows rows,
// one per worker at most, and blocks until all bands are done. Small inputs
// run on the calling goroutine.
func (p *Pool) ParallelRows(n, minRows int, fn func(start, end int)) {
	p.ParallelRowsWorker(n, minRows, func(_, start, end int) { fn(start, end) })
}

// ParallelRowsWorker is ParallelRows but also passes the band number, which
// is always in [0, NumWorkers()). Bands never run concurrently with another
// band of the same number, so it can index per-worker scratch space.
func (p *Pool) ParallelRowsWorker(n, minRows int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	if minRows < 1 {
		minRows = 1
	}
	workers := min(p.NumWorkers(), (n+minRows-1)/minRows)
	if workers <= 1 {
		fn(0, 0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:      func() { fn(i, start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn for every index in [0, n), handing indices out
// one at a time. Use it when the cost per index varies a lot.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize using an
// atomic counter.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.NumWorkers(), numBatches)
	if workers <= 1 {
		fn(0, n)
		return
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
