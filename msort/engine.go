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

// insertionCutoff is the range size below which the sequential base case
// switches to insertion sort.
const insertionCutoff = 16

// dest names the buffer a call must leave its range sorted in. The merge
// source of that call is always the other buffer.
type dest uint8

const (
	intoData dest = iota
	intoScratch
)

func (d dest) flip() dest { return d ^ 1 }

func (d dest) String() string {
	if d == intoData {
		return "data"
	}
	return "scratch"
}

// buffers returns the destination and source buffer for role d.
func buffers[E any](d dest, data, scratch []E) (dst, src []E) {
	if d == intoData {
		return data, scratch
	}
	return scratch, data
}

// forkJoiner runs two independent closures and returns once both are done.
type forkJoiner interface {
	Do(left, right func())
}

// serialJoiner runs both halves on the calling goroutine.
type serialJoiner struct{}

func (serialJoiner) Do(left, right func()) {
	left()
	right()
}

// engine carries everything a sort over one element type needs. Every
// method is a function of its arguments; the engine itself is never
// mutated once built.
type engine[E any] struct {
	fork        forkJoiner
	baseCutoff  int
	mergeCutoff int
	less        func(a, b E) bool

	// merge is the sequential kernel used below mergeCutoff and inside the
	// base case.
	merge func(dst, src []E, begin1, end1, begin2, end2, outBegin int)

	// radix is radixNone unless the base case may radix sort E.
	radix radixKind
}

// sortRange leaves [begin, end) sorted in the buffer d designates. On entry
// the unsorted elements of the range are in data.
func (e *engine[E]) sortRange(data, scratch []E, d dest, begin, end int) {
	n := end - begin
	switch {
	case n <= 1:
		if n == 1 && d == intoScratch {
			scratch[begin] = data[begin]
		}
	case n < e.baseCutoff:
		landed := e.baseCase(data, scratch, d, begin, end)
		settle(data, scratch, landed, d, begin, end)
	default:
		half := begin + n/2
		e.fork.Do(
			func() { e.sortRange(data, scratch, d.flip(), begin, half) },
			func() { e.sortRange(data, scratch, d.flip(), half, end) },
		)
		dst, src := buffers(d, data, scratch)
		e.parallelMerge(dst, src, begin, half, half, end, begin)
	}
}

// baseCase sorts [begin, end) without forking and returns the buffer the
// result is in. The merge strategy always honors d; radix sort leaves the
// result wherever its pass count ends.
func (e *engine[E]) baseCase(data, scratch []E, d dest, begin, end int) dest {
	if e.radix != radixNone {
		if radixSort(e.radix, data[begin:end], scratch[begin:end]) {
			return intoScratch
		}
		return intoData
	}
	e.mergeSortSeq(data, scratch, d, begin, end)
	return d
}

// settle copies [begin, end) from the buffer it landed in to the one d
// designates.
func settle[E any](data, scratch []E, landed, d dest, begin, end int) {
	if landed == d {
		return
	}
	dst, src := buffers(d, data, scratch)
	copy(dst[begin:end], src[begin:end])
}

// mergeSortSeq is the sequential form of sortRange: same splits, same role
// flips, sequential merges.
func (e *engine[E]) mergeSortSeq(data, scratch []E, d dest, begin, end int) {
	n := end - begin
	if n <= insertionCutoff {
		dst, _ := buffers(d, data, scratch)
		if d == intoScratch {
			copy(scratch[begin:end], data[begin:end])
		}
		insertionSort(dst[begin:end], e.less)
		return
	}
	half := begin + n/2
	e.mergeSortSeq(data, scratch, d.flip(), begin, half)
	e.mergeSortSeq(data, scratch, d.flip(), half, end)
	dst, src := buffers(d, data, scratch)
	e.merge(dst, src, begin, half, half, end, begin)
}

// parallelMerge merges src[begin1:end1] and src[begin2:end2] into dst at
// outBegin. The longer run is split at its midpoint and the pivot's final
// position found by binary search in the other run: lower bound when the
// pivot comes from the first run, upper bound when it comes from the
// second, so equal keys keep first-run-first order and none is lost or
// duplicated at the split. Both sides then merge as a fork-join pair.
func (e *engine[E]) parallelMerge(dst, src []E, begin1, end1, begin2, end2, outBegin int) {
	n1, n2 := end1-begin1, end2-begin2
	if n1+n2 == 0 {
		return
	}
	if n1+n2 < e.mergeCutoff {
		e.merge(dst, src, begin1, end1, begin2, end2, outBegin)
		return
	}
	checkSorted(src, begin1, end1, e.less)
	checkSorted(src, begin2, end2, e.less)

	if n1 >= n2 {
		mid1 := begin1 + n1/2
		mid2 := lowerBound(src, begin2, end2, src[mid1], e.less)
		outMid := outBegin + (mid1 - begin1) + (mid2 - begin2)
		dst[outMid] = src[mid1]

		e.fork.Do(
			func() { e.parallelMerge(dst, src, begin1, mid1, begin2, mid2, outBegin) },
			func() { e.parallelMerge(dst, src, mid1+1, end1, mid2, end2, outMid+1) },
		)
		return
	}

	mid2 := begin2 + n2/2
	mid1 := upperBound(src, begin1, end1, src[mid2], e.less)
	outMid := outBegin + (mid1 - begin1) + (mid2 - begin2)
	dst[outMid] = src[mid2]

	e.fork.Do(
		func() { e.parallelMerge(dst, src, begin1, mid1, begin2, mid2, outBegin) },
		func() { e.parallelMerge(dst, src, mid1, end1, mid2+1, end2, outMid+1) },
	)
}

// insertionSort is a stable insertion sort for short ranges.
func insertionSort[E any](data []E, less func(a, b E) bool) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
