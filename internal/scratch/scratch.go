// Package scratch allocates the auxiliary buffer a sort ping-pongs with.
// Allocation failures are returned as errors instead of crashing the
// process where the runtime allows it.
package scratch

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrTooLarge is returned when n elements do not fit in the address space
// or exceed Options.MaxBytes.
var ErrTooLarge = errors.New("scratch: buffer too large")

// Options controls how a Buffer is backed.
type Options struct {
	// HugePages maps the buffer with mmap and advises transparent huge
	// pages (Linux only; ignored elsewhere). The element type must not
	// contain pointers: mapped memory is invisible to the garbage
	// collector.
	HugePages bool

	// MaxBytes caps the buffer size. Zero means no cap.
	MaxBytes int
}

// Buffer is a scratch slice plus whatever must happen to give it back.
type Buffer[E any] struct {
	Data    []E
	kind    string
	release func() error
}

// Kind reports how the buffer is backed ("heap" or "mmap").
func (b *Buffer[E]) Kind() string {
	return b.kind
}

// Release returns the buffer's memory. Data must not be used afterwards.
func (b *Buffer[E]) Release() error {
	b.Data = nil
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}

// Alloc returns an uninitialized-for-the-caller buffer of n elements.
func Alloc[E any](n int, opts Options) (*Buffer[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("scratch: negative length %d", n)
	}
	var zero E
	size := unsafe.Sizeof(zero)
	if size != 0 && uint64(n) > math.MaxInt/uint64(size) {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrTooLarge, n, size)
	}
	if opts.MaxBytes > 0 && n*int(size) > opts.MaxBytes {
		return nil, fmt.Errorf("%w: %d elements of %d bytes exceed %d bytes", ErrTooLarge, n, size, opts.MaxBytes)
	}
	if opts.HugePages && size != 0 && n > 0 {
		return allocMapped[E](n)
	}
	return allocHeap[E](n)
}

// allocHeap turns the runtime's recoverable makeslice panics into errors.
// Running out of memory outright still aborts the process.
func allocHeap[E any](n int) (buf *Buffer[E], err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("scratch: allocating %d elements: %v", n, r)
		}
	}()
	return &Buffer[E]{Data: make([]E, n), kind: "heap"}, nil
}
