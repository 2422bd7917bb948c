// Package msort provides a task-parallel merge sort for fixed-width
// orderable elements.
//
// The engine splits the input recursively, sorts both halves as a fork-join
// pair on a persistent worker pool and recombines them with a parallel
// merge that partitions the two runs around a pivot found by binary search,
// so merge depth is logarithmic rather than one linear scan per level.
// Partitions below a cutoff are sorted without spawning, either by a
// sequential merge sort or, for 32- and 64-bit integer keys, by an LSD radix
// sort.
//
// # Buffers
//
// A sort uses exactly two buffers of equal length: the caller's slice and a
// scratch slice allocated once per call. Every recursion level flips which
// of the two receives its output, so no level allocates. The result always
// ends in the caller's slice.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-msort/msort"
//
//	func Process(data []int32) error {
//	    return msort.Sort(data) // in-place ascending sort
//	}
//
// For tuned cutoffs or a dedicated pool, build a Sorter:
//
//	cfg := msort.DefaultConfig()
//	cfg.BaseCutoff = 50_000
//	s, err := msort.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	err = msort.SortWith(s, data)
//
// # Stability
//
// Merges emit the left run first on equal keys and both base cases are
// stable, so SortFunc is a stable sort.
//
// # Environment
//
// MSORT_NO_FASTPATH=1 disables the unrolled merge kernel regardless of the
// detected CPU.
package msort
