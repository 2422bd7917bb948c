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
	"reflect"
	"unsafe"
)

// radixKind describes how radix sort reads the bits of an element type.
type radixKind uint8

const (
	radixNone radixKind = iota
	radixU32
	radixI32
	radixU64
	radixI64
)

// passes returns the number of 8-bit digits of the key.
func (k radixKind) passes() int {
	switch k {
	case radixU32, radixI32:
		return 4
	case radixU64, radixI64:
		return 8
	}
	return 0
}

// bias is XORed into the key so that signed values order as unsigned ones:
// flipping the sign bit moves negatives below zero.
func (k radixKind) bias() uint64 {
	switch k {
	case radixI32:
		return 1 << 31
	case radixI64:
		return 1 << 63
	}
	return 0
}

// radixKindOf reports whether T is a 32- or 64-bit integer type, including
// named types over one. Floats and narrower integers return radixNone.
func radixKindOf[T Key]() radixKind {
	t := reflect.TypeFor[T]()
	signed := false
	switch t.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		signed = true
	case reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	default:
		return radixNone
	}
	switch t.Size() {
	case 4:
		if signed {
			return radixI32
		}
		return radixU32
	case 8:
		if signed {
			return radixI64
		}
		return radixU64
	}
	return radixNone
}

// radixKey returns the biased digit key of v. E must have the width kind
// describes.
func radixKey[E any](kind radixKind, v *E) uint64 {
	if kind.passes() == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(v))) ^ kind.bias()
	}
	return *(*uint64)(unsafe.Pointer(v)) ^ kind.bias()
}

// radixSort sorts data with LSD radix sort, using tmp (same length) as the
// second buffer. Each pass is a stable counting sort on one byte with 256
// buckets, and the buffers swap roles after every pass. A pass whose digit
// is identical for every element is skipped.
//
// It returns true if the sorted result ended in tmp rather than data;
// skipped passes can leave the pass count odd.
func radixSort[E any](kind radixKind, data, tmp []E) (inTmp bool) {
	n := len(data)
	if n <= 1 {
		return false
	}

	src, dst := data, tmp
	for pass := range kind.passes() {
		shift := uint(pass * 8)

		var count [256]int
		for i := range src {
			count[(radixKey(kind, &src[i])>>shift)&0xFF]++
		}
		if count[(radixKey(kind, &src[0])>>shift)&0xFF] == n {
			continue
		}

		offset := 0
		for b := range count {
			c := count[b]
			count[b] = offset
			offset += c
		}

		for i := range src {
			digit := (radixKey(kind, &src[i]) >> shift) & 0xFF
			dst[count[digit]] = src[i]
			count[digit]++
		}

		src, dst = dst, src
		inTmp = !inTmp
	}
	return inTmp
}
