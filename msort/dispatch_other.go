//go:build !amd64 && !arm64

package msort

func init() {
	// Other architectures keep the scalar kernel until the unrolled loop
	// has been measured there.
	currentLevel = DispatchScalar
	currentFeatures = nil
}
