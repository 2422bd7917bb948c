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

// Package verify checks sort results independently of the engine that
// produced them.
//
// Check sorts a reference copy with the standard library and compares
// element by element. Checksum gives a cheaper, order-independent
// fingerprint of a multiset, so a permutation can be confirmed without a
// second sort.
package verify

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
	"unsafe"

	"github.com/zeebo/xxh3"

	"github.com/ajroetker/go-msort/msort"
	"github.com/ajroetker/go-msort/msort/contrib/workerpool"
)

// MismatchError reports the first position where a result differs from
// the reference.
type MismatchError[T msort.Key] struct {
	Index     int
	Want, Got T
}

func (e *MismatchError[T]) Error() string {
	return fmt.Sprintf("verify: index %d: got %v, want %v", e.Index, e.Got, e.Want)
}

// LengthError reports a result of the wrong length.
type LengthError struct {
	Want, Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("verify: length %d, want %d", e.Got, e.Want)
}

// Check reports whether got is orig in ascending order. orig is not
// modified. NaNs compare equal to each other.
func Check[T msort.Key](orig, got []T) error {
	if len(orig) != len(got) {
		return &LengthError{Want: len(orig), Got: len(got)}
	}
	ref := slices.Clone(orig)
	slices.Sort(ref)
	for i := range ref {
		if cmp.Compare(ref[i], got[i]) != 0 {
			return &MismatchError[T]{Index: i, Want: ref[i], Got: got[i]}
		}
	}
	return nil
}

// elementHash hashes the in-memory bytes of v.
func elementHash[T msort.Key](v T) uint64 {
	return xxh3.Hash(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
}

// Checksum returns an order-independent fingerprint of data: the wrapping
// sum of the xxh3 hash of every element. Equal multisets give equal
// checksums.
func Checksum[T msort.Key](data []T) uint64 {
	var sum uint64
	for _, v := range data {
		sum += elementHash(v)
	}
	return sum
}

// checksumBatch is the number of elements a worker hashes per grab.
const checksumBatch = 1 << 14

// ParallelChecksum is Checksum spread over pool.
func ParallelChecksum[T msort.Key](pool *workerpool.Pool, data []T) uint64 {
	var sum atomic.Uint64
	pool.ParallelForAtomicBatched(len(data), checksumBatch, func(start, end int) {
		sum.Add(Checksum(data[start:end]))
	})
	return sum.Load()
}

// Permutation reports whether a and b hold the same multiset, by checksum.
// A false result is certain; a true one holds up to hash collisions.
func Permutation[T msort.Key](a, b []T) bool {
	return len(a) == len(b) && Checksum(a) == Checksum(b)
}
