package msort

import "errors"

var (
	// ErrScratch is returned when the scratch buffer for a sort cannot be
	// allocated. The input slice is left untouched.
	ErrScratch = errors.New("msort: cannot allocate scratch buffer")

	// ErrInvalidConfig is returned by New and Config.Validate.
	ErrInvalidConfig = errors.New("msort: invalid config")

	// ErrClosed is returned when sorting with a Sorter after Close.
	ErrClosed = errors.New("msort: sorter is closed")
)
