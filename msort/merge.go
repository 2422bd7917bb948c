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

import "cmp"

// blockSteps is the unroll factor of mergeBlocked.
const blockSteps = 8

// Merge merges the sorted runs src[begin1:end1] and src[begin2:end2] into
// dst starting at outBegin. On equal keys the element of the first run is
// emitted first. dst must not overlap the unread part of either run.
//
// Exactly (end1-begin1)+(end2-begin2) elements are written.
func Merge[T Key](dst, src []T, begin1, end1, begin2, end2, outBegin int) {
	checkMerge(len(dst), len(src), begin1, end1, begin2, end2, outBegin)

	left, right, idx := begin1, begin2, outBegin
	for left < end1 && right < end2 {
		if cmp.Less(src[right], src[left]) {
			dst[idx] = src[right]
			right++
		} else {
			dst[idx] = src[left]
			left++
		}
		idx++
	}
	idx += copy(dst[idx:], src[left:end1])
	copy(dst[idx:], src[right:end2])
}

// MergeFunc is Merge ordered by less. less must be a strict weak order.
func MergeFunc[E any](dst, src []E, begin1, end1, begin2, end2, outBegin int, less func(a, b E) bool) {
	checkMerge(len(dst), len(src), begin1, end1, begin2, end2, outBegin)

	left, right, idx := begin1, begin2, outBegin
	for left < end1 && right < end2 {
		if less(src[right], src[left]) {
			dst[idx] = src[right]
			right++
		} else {
			dst[idx] = src[left]
			left++
		}
		idx++
	}
	idx += copy(dst[idx:], src[left:end1])
	copy(dst[idx:], src[right:end2])
}

// mergeBlocked produces exactly the output of Merge. While both runs have
// more than blockSteps elements left it takes blockSteps elements per outer
// iteration without bounds tests, choosing each one with a select instead of
// a branch.
func mergeBlocked[T Key](dst, src []T, begin1, end1, begin2, end2, outBegin int) {
	checkMerge(len(dst), len(src), begin1, end1, begin2, end2, outBegin)

	left, right, idx := begin1, begin2, outBegin
	for left+blockSteps < end1 && right+blockSteps < end2 {
		for range blockSteps {
			a, b := src[left], src[right]
			v, takeRight := a, 0
			if cmp.Less(b, a) {
				v, takeRight = b, 1
			}
			dst[idx] = v
			right += takeRight
			left += 1 - takeRight
			idx++
		}
	}

	for left < end1 && right < end2 {
		if cmp.Less(src[right], src[left]) {
			dst[idx] = src[right]
			right++
		} else {
			dst[idx] = src[left]
			left++
		}
		idx++
	}
	idx += copy(dst[idx:], src[left:end1])
	copy(dst[idx:], src[right:end2])
}

// lowerBound returns the first index in [begin, end) whose element is not
// less than pivot.
func lowerBound[E any](src []E, begin, end int, pivot E, less func(a, b E) bool) int {
	for begin < end {
		mid := int(uint(begin+end) >> 1)
		if less(src[mid], pivot) {
			begin = mid + 1
		} else {
			end = mid
		}
	}
	return begin
}

// upperBound returns the first index in [begin, end) whose element is
// greater than pivot.
func upperBound[E any](src []E, begin, end int, pivot E, less func(a, b E) bool) int {
	for begin < end {
		mid := int(uint(begin+end) >> 1)
		if less(pivot, src[mid]) {
			end = mid
		} else {
			begin = mid + 1
		}
	}
	return begin
}
