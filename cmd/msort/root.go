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
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-msort/msort"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "msort",
		Short:        "Parallel merge sort driver",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// cobra has already set glog's flags; this only marks the Go
			// flag set as parsed.
			return flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(newRunCmd(), newTuneCmd(), newInfoCmd())
	return root
}

// bindConfig registers one flag per Config field, defaulting to cfg's
// current values.
func bindConfig(fs *pflag.FlagSet, cfg *msort.Config) {
	fs.IntVar(&cfg.BaseCutoff, "base-cutoff", cfg.BaseCutoff, "partition size below which no subtasks are spawned")
	fs.IntVar(&cfg.MergeCutoff, "merge-cutoff", cfg.MergeCutoff, "combined run length below which merges are sequential")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count, 0 for GOMAXPROCS, 1 for sequential")
	fs.Var(&cfg.BaseCase, "base", "base case sort: auto, merge or radix")
	fs.Var(&cfg.Kernel, "kernel", "merge kernel: auto, scalar or blocked")
	fs.Var(&cfg.Backend, "backend", "fork-join backend: pool or goroutines")
	fs.BoolVar(&cfg.HugePages, "huge-pages", cfg.HugePages, "mmap the scratch buffer and request transparent huge pages")
}

func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid array size %q", arg)
	}
	return n, nil
}
