//go:build !gocv

package descriptor

// newDefaultBackend selects the pure-Go backend for builds without the
// "gocv" tag.
func newDefaultBackend() Backend {
	return nativeBackend{}
}
