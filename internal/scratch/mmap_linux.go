//go:build linux

package scratch

import (
	"fmt"
	"unsafe"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

func allocMapped[E any](n int) (*Buffer[E], error) {
	var zero E
	size := int(unsafe.Sizeof(zero)) * n

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("scratch: mmap %d bytes: %w", size, err)
	}
	// Huge pages are advisory; a kernel without THP still gives us memory.
	if err := unix.Madvise(mem, unix.MADV_HUGEPAGE); err != nil {
		glog.V(2).Infof("scratch: madvise(MADV_HUGEPAGE) on %d bytes: %v", size, err)
	}

	return &Buffer[E]{
		Data:    unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(mem))), n),
		kind:    "mmap",
		release: func() error { return unix.Munmap(mem) },
	}, nil
}
