//go:build !amd64 && !arm64

package faddeeva

func init() {
	// math.FMA falls back to a slow software emulation on most other
	// architectures, so the Dekker split is faster there.
	currentLevel = DispatchSoftware
}
