//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestPortalScreenshotOptions(t *testing.T) {
	prevToken := portalHandleToken
	portalHandleToken = func() string { return "test-token" }
	t.Cleanup(func() { portalHandleToken = prevToken })

	tests := []struct {
		name       string
		opts       Options
		wantCursor string
	}{
		{
			name:       "defaults",
			opts:       Options{},
			wantCursor: "hidden",
		},
		{
			name:       "interactive with cursor",
			opts:       Options{Interactive: true, IncludeCursor: true},
			wantCursor: "embedded",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := portalScreenshotOptions(tc.opts)

			if got := boolVariant(t, values, "interactive"); got != tc.opts.Interactive {
				t.Fatalf("interactive = %v, want %v", got, tc.opts.Interactive)
			}
			if got := boolVariant(t, values, "modal"); got != tc.opts.Interactive {
				t.Fatalf("modal = %v, want %v", got, tc.opts.Interactive)
			}
			if got := stringVariant(t, values, "cursor_mode"); got != tc.wantCursor {
				t.Fatalf("cursor_mode = %q, want %q", got, tc.wantCursor)
			}
			if got := stringVariant(t, values, "handle_token"); got != "test-token" {
				t.Fatalf("handle_token = %q, want %q", got, "test-token")
			}
			if len(values) != 4 {
				t.Fatalf("expected 4 options, got %d", len(values))
			}
		})
	}
}

func TestParseResponse(t *testing.T) {
	ok := map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/shot.png")}
	uri, err := parseResponse([]interface{}{uint32(0), ok})
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}
	if uri != "file:///tmp/shot.png" {
		t.Fatalf("uri = %q", uri)
	}

	if _, err := parseResponse([]interface{}{uint32(1), ok}); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if _, err := parseResponse([]interface{}{uint32(0), map[string]dbus.Variant{}}); err == nil {
		t.Fatal("expected an error for a response without uri")
	}
	if _, err := parseResponse(nil); err == nil {
		t.Fatal("expected an error for an empty body")
	}
}

func TestReadResultRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatal(err)
	}
	data, err := readResult("file://" + path)
	if err != nil {
		t.Fatalf("readResult: %v", err)
	}
	if string(data) != "\x89PNG" {
		t.Fatalf("data = %q", data)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected portal file to be removed, stat err %v", err)
	}
	if _, err := readResult("https://example.com/x.png"); err == nil {
		t.Fatal("expected an error for a non-file uri")
	}
}

func TestReadResultEscapedPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my shots")
	if err := os.Mkdir(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}
	uri := (&url.URL{Scheme: "file", Path: path}).String()
	data, err := readResult(uri)
	if err != nil {
		t.Fatalf("readResult(%q): %v", uri, err)
	}
	if string(data) != "data" {
		t.Fatalf("data = %q", data)
	}
}

func boolVariant(t *testing.T, values map[string]dbus.Variant, key string) bool {
	t.Helper()
	variant, ok := values[key]
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	v, ok := variant.Value().(bool)
	if !ok {
		t.Fatalf("key %q value is %T, want bool", key, variant.Value())
	}
	return v
}

func stringVariant(t *testing.T, values map[string]dbus.Variant, key string) string {
	t.Helper()
	variant, ok := values[key]
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	v, ok := variant.Value().(string)
	if !ok {
		t.Fatalf("key %q value is %T, want string", key, variant.Value())
	}
	return v
}
