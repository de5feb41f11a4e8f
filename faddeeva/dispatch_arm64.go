//go:build arm64

package faddeeva

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		currentLevel = DispatchSoftware
		return
	}

	// FMADD is part of the ARMv8-A base floating point unit, which is always
	// present alongside ASIMD.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchFMA
	} else {
		currentLevel = DispatchSoftware
	}
}
