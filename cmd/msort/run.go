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
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-msort/msort"
	"github.com/ajroetker/go-msort/msort/contrib/bench"
	"github.com/ajroetker/go-msort/msort/contrib/verify"
)

var errVerify = errors.New("verification failed")

func newRunCmd() *cobra.Command {
	cfg := msort.DefaultConfig()
	var seed int64
	cmd := &cobra.Command{
		Use:   "run <array size>",
		Short: "Sort seeded random int32 values, report the time and verify the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}
			return runSort(cmd.OutOrStdout(), size, seed, cfg)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", bench.DefaultSeed, "input generator seed")
	bindConfig(cmd.Flags(), &cfg)
	return cmd
}

func runSort(w io.Writer, size int, seed int64, cfg msort.Config) error {
	s, err := msort.New(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(w, "Initialization...")
	data := bench.Generate(size, seed)
	orig := slices.Clone(data)

	mib := float64(size) * 4 / (1 << 20)
	fmt.Fprintf(w, "Sorting %d elements of type int32 (%f MiB)...\n", size, mib)
	start := time.Now()
	if err := msort.SortWith(s, data); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "done, took %f sec. Verification...", elapsed.Seconds())
	if err := verify.Check(orig, data); err != nil {
		fmt.Fprintln(w, " FAILED.")
		return fmt.Errorf("%w: %w", errVerify, err)
	}
	fmt.Fprintln(w, " successful.")
	if glog.V(1) {
		glog.Infof("checksum=%016x", verify.Checksum(data))
	}
	return nil
}
