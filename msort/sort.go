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
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultSorter *Sorter
	defaultErr    error
)

// Default returns the process-wide Sorter used by Sort and SortFunc. It is
// built from DefaultConfig on first use and never closed.
func Default() (*Sorter, error) {
	defaultOnce.Do(func() {
		defaultSorter, defaultErr = New(DefaultConfig())
	})
	return defaultSorter, defaultErr
}

// Sort sorts data in-place in ascending order:
//   - 32- and 64-bit integers: radix sort below the base cutoff
//   - everything else: sequential merge sort below the base cutoff
//
// Larger inputs are split and merged in parallel on the default Sorter.
// The only error is a failed scratch allocation, in which case data is
// unchanged.
func Sort[T Key](data []T) error {
	if len(data) <= 1 {
		return nil
	}
	s, err := Default()
	if err != nil {
		return err
	}
	return SortWith(s, data)
}

// SortFunc sorts data in-place by less on the default Sorter. The sort is
// stable.
func SortFunc[E any](data []E, less func(a, b E) bool) error {
	if len(data) <= 1 {
		return nil
	}
	s, err := Default()
	if err != nil {
		return err
	}
	return SortFuncWith(s, data, less)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T Key](data []T) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is ordered by less.
func IsSortedFunc[E any](data []E, less func(a, b E) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
