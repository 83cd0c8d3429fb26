//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	_, err := Copy("image/png", []byte{1})
	if !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}

func TestCopyRejectsEmpty(t *testing.T) {
	if _, err := Copy("image/png", nil); err == nil {
		t.Fatal("expected an error for empty data")
	}
}

func TestCopyUsesWaylandHelper(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	script := "#!/bin/sh\necho \"$@\" > " + out + ".args\ncat > " + out + "\n"
	helper := filepath.Join(dir, "fake-wl-copy")
	if err := os.WriteFile(helper, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("WAYLAND_DISPLAY", "wayland-test")
	old := WaylandHelper
	WaylandHelper = "fake-wl-copy"
	t.Cleanup(func() { WaylandHelper = old })

	done, err := Copy("image/jpeg", []byte("payload"))
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	select {
	case <-done:
	default:
		t.Error("helper-backed copies should not need this process")
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("helper received %q", got)
	}
	args, _ := os.ReadFile(out + ".args")
	if string(args) != "--type image/jpeg\n" {
		t.Errorf("helper args %q", args)
	}
}
