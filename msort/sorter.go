// Copyright 2025 go-msort Authors
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

package msort

import (
	"cmp"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/exascience/pargo/parallel"
	"github.com/golang/glog"

	"github.com/ajroetker/go-msort/internal/scratch"
	"github.com/ajroetker/go-msort/msort/contrib/workerpool"
)

// Sorter owns the worker pool and configuration shared by every sort run
// through it. A Sorter is safe for concurrent use; Close it when done.
type Sorter struct {
	cfg    Config
	pool   *workerpool.Pool
	fork   forkJoiner
	level  DispatchLevel
	closed atomic.Bool
}

// New validates cfg and starts the Sorter's workers.
func New(cfg Config) (*Sorter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	s := &Sorter{cfg: cfg, level: kernelLevel(cfg.Kernel)}
	switch {
	case cfg.Workers == 1:
		s.fork = serialJoiner{}
	case cfg.Backend == BackendGoroutines:
		s.fork = pargoJoiner{}
	default:
		s.pool = workerpool.New(cfg.Workers)
		s.fork = s.pool
	}

	if glog.V(1) {
		glog.Infof("msort: sorter started: workers=%d backend=%s base=%s/%d merge=%d kernel=%s",
			cfg.Workers, cfg.Backend, cfg.BaseCase, cfg.BaseCutoff, cfg.MergeCutoff, s.level)
	}
	return s, nil
}

// Config returns the configuration the Sorter runs with, with Workers
// resolved.
func (s *Sorter) Config() Config {
	return s.cfg
}

// Level returns the merge kernel level Key sorts use.
func (s *Sorter) Level() DispatchLevel {
	return s.level
}

// Close stops the worker pool. Sorts must not be running concurrently with
// Close. Calling Close multiple times is safe.
func (s *Sorter) Close() {
	if s.closed.Swap(true) {
		return
	}
	if s.pool != nil {
		s.pool.Close()
	}
	glog.V(1).Info("msort: sorter closed")
}

// pargoJoiner forks with pargo, one goroutine per subtask.
type pargoJoiner struct{}

func (pargoJoiner) Do(left, right func()) {
	parallel.Do(left, right)
}

func kernelLevel(k Kernel) DispatchLevel {
	switch k {
	case KernelScalar:
		return DispatchScalar
	case KernelBlocked:
		return DispatchBlocked
	}
	return CurrentLevel()
}

// keyEngine builds the engine for a Key element type.
func keyEngine[T Key](s *Sorter) *engine[T] {
	e := &engine[T]{
		fork:        s.fork,
		baseCutoff:  s.cfg.BaseCutoff,
		mergeCutoff: s.cfg.MergeCutoff,
		less:        cmp.Less[T],
		merge:       Merge[T],
	}
	if s.level == DispatchBlocked {
		e.merge = mergeBlocked[T]
	}
	if s.cfg.BaseCase != BaseMerge {
		e.radix = radixKindOf[T]()
	}
	return e
}

// funcEngine builds the engine for an arbitrary element type.
func funcEngine[E any](s *Sorter, less func(a, b E) bool) *engine[E] {
	return &engine[E]{
		fork:        s.fork,
		baseCutoff:  s.cfg.BaseCutoff,
		mergeCutoff: s.cfg.MergeCutoff,
		less:        less,
		merge: func(dst, src []E, begin1, end1, begin2, end2, outBegin int) {
			MergeFunc(dst, src, begin1, end1, begin2, end2, outBegin, less)
		},
	}
}

// SortWith sorts data in ascending order using s.
func SortWith[T Key](s *Sorter, data []T) error {
	return run(s, keyEngine[T](s), data, s.cfg.HugePages)
}

// SortFuncWith sorts data by less using s. The sort is stable. Radix sort is
// never used.
func SortFuncWith[E any](s *Sorter, data []E, less func(a, b E) bool) error {
	return run(s, funcEngine(s, less), data, false)
}

// ParallelMerge merges the sorted runs src[begin1:end1] and
// src[begin2:end2] into dst at outBegin using s's pool and merge cutoff.
// The result is identical to Merge.
func ParallelMerge[T Key](s *Sorter, dst, src []T, begin1, end1, begin2, end2, outBegin int) {
	checkMerge(len(dst), len(src), begin1, end1, begin2, end2, outBegin)
	keyEngine[T](s).parallelMerge(dst, src, begin1, end1, begin2, end2, outBegin)
}

// ParallelMergeFunc is ParallelMerge ordered by less.
func ParallelMergeFunc[E any](s *Sorter, dst, src []E, begin1, end1, begin2, end2, outBegin int, less func(a, b E) bool) {
	checkMerge(len(dst), len(src), begin1, end1, begin2, end2, outBegin)
	funcEngine(s, less).parallelMerge(dst, src, begin1, end1, begin2, end2, outBegin)
}

// scratchLimit caps each scratch allocation in bytes; zero means no cap.
var scratchLimit int

// run is the driver: it allocates the scratch buffer, sorts the whole slice
// and copies the result back if it landed in scratch.
func run[E any](s *Sorter, e *engine[E], data []E, hugePages bool) error {
	if s.closed.Load() {
		return ErrClosed
	}
	n := len(data)
	if n <= 1 {
		return nil
	}

	buf, err := scratch.Alloc[E](n, scratch.Options{HugePages: hugePages, MaxBytes: scratchLimit})
	if err != nil {
		return fmt.Errorf("%w: %d elements: %w", ErrScratch, n, err)
	}
	defer func() {
		if err := buf.Release(); err != nil {
			glog.Warningf("msort: releasing scratch: %v", err)
		}
	}()

	landed := intoData
	if n < e.baseCutoff {
		landed = e.baseCase(data, buf.Data, intoData, 0, n)
	} else {
		e.sortRange(data, buf.Data, intoData, 0, n)
	}
	if landed == intoScratch {
		copyBack(s.pool, data, buf.Data)
	}

	if glog.V(2) {
		glog.Infof("msort: sorted %d elements (scratch=%s, result landed in %s)", n, buf.Kind(), landed)
	}
	return nil
}

// copyBack copies src into data, split across pool when there is one.
func copyBack[E any](pool *workerpool.Pool, data, src []E) {
	if pool == nil {
		copy(data, src)
		return
	}
	pool.ParallelFor(len(data), func(start, end int) {
		copy(data[start:end], src[start:end])
	})
}
