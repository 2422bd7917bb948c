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

// Command msort sorts seeded random int32 arrays with the parallel merge
// sort, verifies the result and tunes the task cutoff.
//
// Usage:
//
//	msort run 100000000                     # sort, time and verify
//	msort run --base merge --workers 8 1000000
//	msort tune --min 1000 --max 100000 50000000
//	msort info
//
// glog flags (-v, -logtostderr, ...) are accepted by every command.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
