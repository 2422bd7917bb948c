package msort

import "fmt"

// checkMerge panics on malformed merge ranges. It compiles to nothing unless
// built with the msort_debug tag.
func checkMerge(dstLen, srcLen, begin1, end1, begin2, end2, outBegin int) {
	if !debugChecks {
		return
	}
	if begin1 < 0 || begin1 > end1 || end1 > srcLen ||
		begin2 < 0 || begin2 > end2 || end2 > srcLen {
		panic(fmt.Sprintf("msort: bad runs [%d,%d) [%d,%d) over %d elements",
			begin1, end1, begin2, end2, srcLen))
	}
	if outBegin < 0 || outBegin+(end1-begin1)+(end2-begin2) > dstLen {
		panic(fmt.Sprintf("msort: output [%d,+%d) exceeds %d elements",
			outBegin, (end1-begin1)+(end2-begin2), dstLen))
	}
}

// checkSorted panics if src[begin:end] is not ordered by less. Only active
// under msort_debug.
func checkSorted[E any](src []E, begin, end int, less func(a, b E) bool) {
	if !debugChecks {
		return
	}
	for i := begin + 1; i < end; i++ {
		if less(src[i], src[i-1]) {
			panic(fmt.Sprintf("msort: run [%d,%d) unsorted at %d", begin, end, i))
		}
	}
}
