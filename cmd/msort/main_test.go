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
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"defaults", []string{"run", "5000"}},
		{"parallel", []string{"run", "--workers", "4", "--base-cutoff", "500", "--merge-cutoff", "1000", "20000"}},
		{"merge base", []string{"run", "--base", "merge", "--base-cutoff", "300", "--kernel", "scalar", "10000"}},
		{"goroutines", []string{"run", "--backend", "goroutines", "--base-cutoff", "1000", "--seed", "7", "10000"}},
		{"empty", []string{"run", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("run: %v\n%s", err, out)
			}
			if !strings.HasPrefix(out, "Initialization...\n") {
				t.Errorf("output does not start with Initialization:\n%s", out)
			}
			if !strings.Contains(out, "elements of type int32") || !strings.HasSuffix(out, "Verification... successful.\n") {
				t.Errorf("unexpected output:\n%s", out)
			}
		})
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"run"},
		{"run", "abc"},
		{"run", "-5"},
		{"run", "--base", "quick", "100"},
		{"run", "--merge-cutoff", "-1", "100"},
	} {
		if out, err := execute(t, args...); err == nil {
			t.Errorf("%v succeeded:\n%s", args, out)
		}
	}
}

func TestTune(t *testing.T) {
	out, err := execute(t, "tune", "--min", "100", "--max", "900", "--tolerance", "200", "--iterations", "1", "20000")
	if err != nil {
		t.Fatalf("tune: %v\n%s", err, out)
	}
	if !strings.Contains(out, "best cutoff: ") {
		t.Errorf("no best cutoff reported:\n%s", out)
	}
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"dispatch level:", "base cutoff:       30000", "merge cutoff:      250000"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}
