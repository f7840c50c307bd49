//go:build !windows || !amd64

package d3d

// Load always fails outside windows/amd64.
func Load() (Driver, error) {
	return nil, ErrUnsupportedPlatform
}
