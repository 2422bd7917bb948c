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

//go:build amd64

package msort

import "golang.org/x/sys/cpu"

func init() {
	detectCPUFeatures()

	if NoFastPathEnv() {
		currentLevel = DispatchScalar
		return
	}

	// CMOVcc is part of the amd64 baseline; SSE2 is checked as the same
	// baseline marker the rest of the detection keys off.
	if cpu.X86.HasSSE2 {
		currentLevel = DispatchBlocked
	} else {
		currentLevel = DispatchScalar
	}
}

func detectCPUFeatures() {
	currentFeatures = currentFeatures[:0]
	for _, f := range []struct {
		name string
		has  bool
	}{
		{"sse2", cpu.X86.HasSSE2},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"bmi2", cpu.X86.HasBMI2},
		// ERMS speeds up the memmove behind copy-back and leaf copies.
		{"erms", cpu.X86.HasERMS},
	} {
		if f.has {
			currentFeatures = append(currentFeatures, f.name)
		}
	}
}
