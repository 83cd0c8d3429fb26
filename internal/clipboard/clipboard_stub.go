//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

// Package clipboard publishes encoded images on the system clipboard.
package clipboard

import "fmt"

// Copy is not supported on this platform.
func Copy(mime string, data []byte) (<-chan struct{}, error) {
	return nil, fmt.Errorf("clipboard operations are not supported on this platform")
}
