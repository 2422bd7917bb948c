//go:build arm64

package msort

import "golang.org/x/sys/cpu"

func init() {
	currentFeatures = currentFeatures[:0]
	if cpu.ARM64.HasASIMD {
		currentFeatures = append(currentFeatures, "asimd")
	}
	if cpu.ARM64.HasSVE {
		currentFeatures = append(currentFeatures, "sve")
	}

	if NoFastPathEnv() {
		currentLevel = DispatchScalar
		return
	}

	// CSEL is part of ARMv8-A; ASIMD is checked for consistency with the
	// rest of the ARMv8 baseline.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchBlocked
	} else {
		currentLevel = DispatchScalar
	}
}
