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

// Package bench generates reproducible inputs and searches for the base
// cutoff that sorts them fastest.
package bench

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"github.com/ajroetker/go-msort/msort"
)

// DefaultSeed is the seed the reference benchmark initializes its input
// with.
const DefaultSeed = 95

// Generate returns n values uniformly spread over [0, n], so roughly one
// duplicate per value, reproducible for a given seed.
func Generate(n int, seed int64) []int32 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(float64(n) * rng.Float64())
	}
	return data
}

// Result holds the timings measured for one cutoff.
type Result struct {
	Cutoff int
	Times  []time.Duration
}

// Mean returns the average time in seconds.
func (r Result) Mean() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	return lo.SumBy(r.Times, func(d time.Duration) float64 { return d.Seconds() }) / float64(len(r.Times))
}

// Stdev returns the sample standard deviation in seconds, zero for fewer
// than two timings.
func (r Result) Stdev() float64 {
	if len(r.Times) < 2 {
		return 0
	}
	mean := r.Mean()
	var ss float64
	for _, d := range r.Times {
		ss += (d.Seconds() - mean) * (d.Seconds() - mean)
	}
	return math.Sqrt(ss / float64(len(r.Times)-1))
}

// Score ranks results; lower is better. Variance is penalized lightly.
func (r Result) Score() float64 {
	return r.Mean() + 0.1*r.Stdev()
}

// TuneConfig bounds the cutoff search.
type TuneConfig struct {
	Min, Max int

	// Tolerance is the window width at which the search stops. It must be
	// at least 1.
	Tolerance  int
	Iterations int
}

// DefaultTuneConfig searches [1000, 100000] down to a window of 2000 with
// three runs per cutoff.
func DefaultTuneConfig() TuneConfig {
	return TuneConfig{Min: 1000, Max: 100000, Tolerance: 2000, Iterations: 3}
}

// ErrTuneConfig is returned for an unusable TuneConfig.
var ErrTuneConfig = errors.New("bench: invalid tune config")

// Runner sorts once with the given cutoff and reports how long it took.
type Runner func(cutoff int) (time.Duration, error)

// Tune binary-searches the cutoff with the lowest Score. Each round
// measures the window's ends and midpoint (reusing earlier measurements),
// then keeps the half whose end won, or a window half as wide around an
// interior winner. It returns the best result overall and every result in
// the order measured.
func Tune(cfg TuneConfig, run Runner) (Result, []Result, error) {
	// A zero tolerance would let a window of width one stall with
	// mid == low.
	if cfg.Min < 0 || cfg.Min >= cfg.Max || cfg.Tolerance < 1 || cfg.Iterations < 1 {
		return Result{}, nil, fmt.Errorf("%w: %+v", ErrTuneConfig, cfg)
	}

	var results []Result
	measure := func(cutoff int) error {
		if slices.ContainsFunc(results, func(r Result) bool { return r.Cutoff == cutoff }) {
			return nil
		}
		r := Result{Cutoff: cutoff}
		for range cfg.Iterations {
			d, err := run(cutoff)
			if err != nil {
				return fmt.Errorf("bench: cutoff %d: %w", cutoff, err)
			}
			r.Times = append(r.Times, d)
		}
		glog.Infof("cutoff=%d mean=%.3fs stdev=%.3fs score=%.3f", cutoff, r.Mean(), r.Stdev(), r.Score())
		results = append(results, r)
		return nil
	}
	best := func(rs []Result) Result {
		return lo.MinBy(rs, func(a, b Result) bool { return a.Score() < b.Score() })
	}

	low, high := cfg.Min, cfg.Max
	for high-low > cfg.Tolerance {
		mid := (low + high) / 2
		for _, cutoff := range []int{low, mid, high} {
			if err := measure(cutoff); err != nil {
				return Result{}, results, err
			}
		}

		current := best(filterWindow(results, low, high))
		glog.Infof("window [%d, %d]: best cutoff=%d (mean=%.3fs)", low, high, current.Cutoff, current.Mean())
		switch current.Cutoff {
		case low:
			high = mid
		case high:
			low = mid
		default:
			width := high - low
			low = max(low, current.Cutoff-width/4)
			high = min(high, current.Cutoff+width/4)
		}
	}

	if len(results) == 0 {
		// Window already within tolerance: measure its ends.
		for _, cutoff := range []int{low, high} {
			if err := measure(cutoff); err != nil {
				return Result{}, results, err
			}
		}
	}
	return best(results), results, nil
}

func filterWindow(rs []Result, low, high int) []Result {
	return slices.DeleteFunc(slices.Clone(rs), func(r Result) bool {
		return r.Cutoff < low || r.Cutoff > high
	})
}

// SortRunner returns a Runner that sorts a fresh copy of input with base
// as configuration and the cutoff under test.
func SortRunner(input []int32, base msort.Config) Runner {
	data := make([]int32, len(input))
	return func(cutoff int) (time.Duration, error) {
		cfg := base
		cfg.BaseCutoff = cutoff
		s, err := msort.New(cfg)
		if err != nil {
			return 0, err
		}
		defer s.Close()

		copy(data, input)
		start := time.Now()
		if err := msort.SortWith(s, data); err != nil {
			return 0, err
		}
		return time.Since(start), nil
	}
}
