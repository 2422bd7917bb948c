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

package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-msort/msort"
	"github.com/ajroetker/go-msort/msort/contrib/bench"
)

func newTuneCmd() *cobra.Command {
	cfg := msort.DefaultConfig()
	tc := bench.DefaultTuneConfig()
	var seed int64
	cmd := &cobra.Command{
		Use:   "tune <array size>",
		Short: "Binary-search the base cutoff that sorts the array fastest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}
			best, all, err := bench.Tune(tc, bench.SortRunner(bench.Generate(size, seed), cfg))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			slices.SortFunc(all, func(a, b bench.Result) int { return cmp.Compare(a.Cutoff, b.Cutoff) })
			fmt.Fprintf(w, "%10s %12s %12s\n", "cutoff", "mean (s)", "stdev (s)")
			for _, r := range all {
				fmt.Fprintf(w, "%10d %12.6f %12.6f\n", r.Cutoff, r.Mean(), r.Stdev())
			}
			fmt.Fprintf(w, "best cutoff: %d (%f sec)\n", best.Cutoff, best.Mean())
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&tc.Min, "min", tc.Min, "smallest cutoff tried")
	fs.IntVar(&tc.Max, "max", tc.Max, "largest cutoff tried")
	fs.IntVar(&tc.Tolerance, "tolerance", tc.Tolerance, "stop once the search window is this narrow")
	fs.IntVar(&tc.Iterations, "iterations", tc.Iterations, "sorts timed per cutoff")
	fs.Int64Var(&seed, "seed", bench.DefaultSeed, "input generator seed")
	bindConfig(fs, &cfg)
	// The cutoff under search replaces --base-cutoff.
	_ = fs.MarkHidden("base-cutoff")
	return cmd
}
