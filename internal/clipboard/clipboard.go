//go:build linux || freebsd || openbsd || netbsd || dragonfly

// Package clipboard publishes encoded images on the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var errNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")

// WaylandHelper is the external program used on Wayland sessions. It forks
// a background server that keeps the data available after we exit.
var WaylandHelper = "wl-copy"

// Copy publishes data under the given MIME type.
//
// The returned channel closes once the data no longer depends on this
// process: immediately when a helper process serves it, or when another
// client takes ownership of an X11 selection we own.
func Copy(mime string, data []byte) (<-chan struct{}, error) {
	if len(data) == 0 {
		return nil, errors.New("clipboard: nothing to copy")
	}
	mime = strings.TrimSpace(mime)
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath(WaylandHelper); err == nil {
			return copyHelper(path, mime, data)
		}
	}
	if os.Getenv("DISPLAY") == "" {
		return nil, errNoDisplay
	}
	if done, ok, err := writeNative(mime, data); ok {
		return done, err
	}
	return serveX11(mime, data)
}

func copyHelper(path, mime string, data []byte) (<-chan struct{}, error) {
	cmd := exec.Command(path, "--type", mime)
	cmd.Stdin = bytes.NewReader(data)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", WaylandHelper, err, strings.TrimSpace(stderr.String()))
	}
	done := make(chan struct{})
	close(done)
	return done, nil
}
