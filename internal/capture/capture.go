// Package capture requests screenshots from the desktop environment.
package capture

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
)

// ErrCancelled is returned when the user dismisses the portal dialog.
var ErrCancelled = errors.New("screenshot cancelled")

// Options controls the portal request.
type Options struct {
	// Interactive lets the user pick a region or window.
	Interactive   bool
	IncludeCursor bool
}

// Screenshot asks the desktop portal for a screenshot and returns the bytes
// of the file it produced. The bytes are left encoded so callers can sniff
// the format themselves.
func Screenshot(ctx context.Context, opts Options) ([]byte, error) {
	uri, err := portalScreenshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	return readResult(uri)
}

func readResult(uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return nil, fmt.Errorf("portal returned unsupported uri %q", uri)
	}
	path := u.Path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("portal screenshot image: %w", err)
	}
	// best effort cleanup
	_ = os.Remove(path)
	return data, nil
}
