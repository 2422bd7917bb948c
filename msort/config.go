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
	"fmt"
	"strings"
)

// Default cutoffs.
const (
	// DefaultBaseCutoff is the partition size below which no subtasks are
	// spawned. Found by binary search on a 96-thread node; see bench.Tune.
	DefaultBaseCutoff = 30000

	// DefaultMergeCutoff is the combined run length below which the
	// parallel merge falls back to a sequential merge.
	DefaultMergeCutoff = 250000
)

// BaseCase selects how partitions below Config.BaseCutoff are sorted.
type BaseCase int

const (
	// BaseAuto uses radix sort for 32- and 64-bit integer keys and the
	// sequential merge sort otherwise.
	BaseAuto BaseCase = iota

	// BaseMerge recurses sequentially with the same ping-pong merges as
	// the parallel levels.
	BaseMerge

	// BaseRadix requests LSD radix sort. Types radix sort cannot order
	// fall back to BaseMerge.
	BaseRadix
)

var baseCaseNames = []string{"auto", "merge", "radix"}

// String returns the flag spelling of b.
func (b BaseCase) String() string { return enumName(baseCaseNames, int(b)) }

// Set parses s; BaseCase implements pflag.Value.
func (b *BaseCase) Set(s string) error { return enumSet(baseCaseNames, s, (*int)(b)) }

// Type implements pflag.Value.
func (*BaseCase) Type() string { return "basecase" }

// Kernel selects the sequential merge loop.
type Kernel int

const (
	// KernelAuto uses the kernel CurrentLevel reports.
	KernelAuto Kernel = iota

	// KernelScalar forces the plain merge loop.
	KernelScalar

	// KernelBlocked forces the unrolled merge loop. It only applies to Key
	// element types; SortFunc always uses the scalar loop.
	KernelBlocked
)

var kernelNames = []string{"auto", "scalar", "blocked"}

// String returns the flag spelling of k.
func (k Kernel) String() string { return enumName(kernelNames, int(k)) }

// Set parses s; Kernel implements pflag.Value.
func (k *Kernel) Set(s string) error { return enumSet(kernelNames, s, (*int)(k)) }

// Type implements pflag.Value.
func (*Kernel) Type() string { return "kernel" }

// Backend selects how fork-join pairs are executed.
type Backend int

const (
	// BackendPool runs subtasks on the Sorter's persistent worker pool.
	BackendPool Backend = iota

	// BackendGoroutines runs subtasks with pargo's parallel.Do, one
	// goroutine per fork.
	BackendGoroutines
)

var backendNames = []string{"pool", "goroutines"}

// String returns the flag spelling of b.
func (b Backend) String() string { return enumName(backendNames, int(b)) }

// Set parses s; Backend implements pflag.Value.
func (b *Backend) Set(s string) error { return enumSet(backendNames, s, (*int)(b)) }

// Type implements pflag.Value.
func (*Backend) Type() string { return "backend" }

// Config holds the tunables of a Sorter. Start from DefaultConfig; the zero
// value is valid but spawns a task for every element.
type Config struct {
	// BaseCutoff is the partition size below which the scheduler sorts
	// directly instead of forking.
	BaseCutoff int

	// MergeCutoff is the combined run length below which merges run
	// sequentially.
	MergeCutoff int

	// Workers is the pool size. Zero means GOMAXPROCS; one disables
	// parallelism entirely.
	Workers int

	BaseCase BaseCase
	Kernel   Kernel
	Backend  Backend

	// HugePages maps the scratch buffer with mmap and asks for transparent
	// huge pages (Linux only). Only honored for Key element types.
	HugePages bool
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		BaseCutoff:  DefaultBaseCutoff,
		MergeCutoff: DefaultMergeCutoff,
	}
}

// Validate reports whether c can be used to build a Sorter.
func (c Config) Validate() error {
	switch {
	case c.BaseCutoff < 0:
		return fmt.Errorf("%w: negative BaseCutoff %d", ErrInvalidConfig, c.BaseCutoff)
	case c.MergeCutoff < 0:
		return fmt.Errorf("%w: negative MergeCutoff %d", ErrInvalidConfig, c.MergeCutoff)
	case c.Workers < 0:
		return fmt.Errorf("%w: negative Workers %d", ErrInvalidConfig, c.Workers)
	case c.BaseCase < BaseAuto || c.BaseCase > BaseRadix:
		return fmt.Errorf("%w: unknown BaseCase %d", ErrInvalidConfig, int(c.BaseCase))
	case c.Kernel < KernelAuto || c.Kernel > KernelBlocked:
		return fmt.Errorf("%w: unknown Kernel %d", ErrInvalidConfig, int(c.Kernel))
	case c.Backend < BackendPool || c.Backend > BackendGoroutines:
		return fmt.Errorf("%w: unknown Backend %d", ErrInvalidConfig, int(c.Backend))
	}
	return nil
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func enumSet(names []string, s string, dst *int) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("%q is not one of %s", s, strings.Join(names, ", "))
}
