// Copyright 2025 The go-msort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join sorting. A Pool is created once per Sorter and shared by every
// task of every sort run through it, so no goroutines are spawned per
// recursive call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Fork-join: both halves run, Do returns when both are done.
//	pool.Do(
//	    func() { sortHalf(lo, mid) },
//	    func() { sortHalf(mid, hi) },
//	)
//
//	// Data-parallel loop over contiguous chunks.
//	pool.ParallelFor(n, func(start, end int) {
//	    copy(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of queued work. barrier is nil for
// fork tasks, which signal their own completion.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		if item.barrier != nil {
			item.barrier.Done()
		}
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe; Close must not race with
// submissions.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// forkTask is the right half of a Do call. Whoever claims it first, a
// worker or the forking goroutine itself, runs it exactly once.
type forkTask struct {
	fn      func()
	claimed atomic.Bool
	done    sync.WaitGroup
}

func (t *forkTask) tryRun() bool {
	if !t.claimed.CompareAndSwap(false, true) {
		return false
	}
	t.fn()
	t.done.Done()
	return true
}

// Do runs left and right, possibly in parallel, and returns once both have
// completed.
//
// right is offered to the pool and left runs on the calling goroutine.
// Afterwards the caller runs right itself unless a worker already started
// it, in which case it waits. A join therefore only ever waits on a task
// that is executing, so Do may be nested to any depth on a bounded pool.
// When the queue is full, both run inline.
func (p *Pool) Do(left, right func()) {
	if p.closed.Load() {
		left()
		right()
		return
	}

	t := &forkTask{fn: right}
	t.done.Add(1)
	select {
	case p.workC <- workItem{fn: func() { t.tryRun() }}:
	default:
		left()
		right()
		return
	}

	left()
	// If we claim right here, its queue entry stays behind as a no-op
	// until a worker drains it. While such entries fill the buffer, later
	// Do calls take the inline path above; that loses parallelism, never
	// results.
	if !t.tryRun() {
		t.done.Wait()
	}
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing. Combines the load balancing of atomic distribution with
// reduced atomic operation overhead by processing multiple items per grab.
//
// fn receives (start, end) indices where work should process [start, end).
// batchSize controls how many items are grabbed per atomic operation.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
