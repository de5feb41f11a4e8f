// Copyright 2025 go-faddeeva Authors
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

package faddeeva

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the arithmetic path used for the exact products
// inside exp(±x²). All levels produce bitwise-identical results; they differ
// only in speed.
type DispatchLevel int

const (
	// DispatchSoftware splits products with Dekker's algorithm.
	DispatchSoftware DispatchLevel = iota

	// DispatchFMA uses the fused multiply-add instruction.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchSoftware:
		return "software"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the dispatch level chosen for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NoFMAEnv checks if the FADDEEVA_NO_FMA environment variable is set.
// When set, the software path is used regardless of CPU capabilities.
func NoFMAEnv() bool {
	val := os.Getenv("FADDEEVA_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
