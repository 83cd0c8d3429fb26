//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

func writeNative(string, []byte) (<-chan struct{}, bool, error) {
	return nil, false, nil
}
