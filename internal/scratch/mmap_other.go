//go:build !linux

package scratch

func allocMapped[E any](n int) (*Buffer[E], error) {
	return allocHeap[E](n)
}
