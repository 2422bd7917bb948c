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
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-msort/msort"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected merge kernel and defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			features := lo.Ternary(len(msort.CPUFeatures()) == 0, "none", strings.Join(msort.CPUFeatures(), " "))
			fmt.Fprintf(w, "platform:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "GOMAXPROCS:        %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(w, "cpu features:      %s\n", features)
			fmt.Fprintf(w, "dispatch level:    %s\n", msort.CurrentLevel())
			fmt.Fprintf(w, "MSORT_NO_FASTPATH: %t\n", msort.NoFastPathEnv())
			fmt.Fprintf(w, "base cutoff:       %d\n", msort.DefaultBaseCutoff)
			fmt.Fprintf(w, "merge cutoff:      %d\n", msort.DefaultMergeCutoff)
		},
	}
}
