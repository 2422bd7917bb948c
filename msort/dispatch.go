package msort

import (
	"os"
	"strconv"
)

// DispatchLevel represents the sequential merge kernel selected for this CPU.
type DispatchLevel int

const (
	// DispatchScalar indicates the plain one-element-per-iteration merge loop.
	DispatchScalar DispatchLevel = iota

	// DispatchBlocked indicates the 8x unrolled merge loop with branch-free
	// element selection. It relies on conditional moves (CMOVcc on amd64,
	// CSEL on arm64) being emitted for the select.
	DispatchBlocked
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// currentLevel is the detected kernel level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentFeatures lists the CPU features detection consulted.
// Set by init() in dispatch_*.go files.
var currentFeatures []string

// CurrentLevel returns the merge kernel level detected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CPUFeatures returns the CPU features that informed kernel selection, for
// diagnostics.
func CPUFeatures() []string {
	return append([]string(nil), currentFeatures...)
}

// NoFastPathEnv checks if the MSORT_NO_FASTPATH environment variable is set.
// When set, the scalar merge kernel is used regardless of CPU capabilities.
func NoFastPathEnv() bool {
	val := os.Getenv("MSORT_NO_FASTPATH")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
