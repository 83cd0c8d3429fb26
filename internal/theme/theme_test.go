package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nBackground: #112233\n# comment\nToolActive: #01020304\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("Expected name Mine, got %q", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("Unexpected Background: %+v", th.Background)
	}
	if th.ToolActive != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("Unexpected ToolActive: %+v", th.ToolActive)
	}
	if th.Foreground != Default().Foreground {
		t.Errorf("Foreground should keep its default")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: 112233")); err == nil {
		t.Fatal("expected error for color without #")
	}
	if _, err := Parse(strings.NewReader("Background: #12345")); err == nil {
		t.Fatal("expected error for short hex")
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAA, 0xBB, 0xCC, 0x10}} {
		got, err := ParseHex(Hex(c))
		if err != nil {
			t.Fatalf("ParseHex(%s): %v", Hex(c), err)
		}
		if got != c {
			t.Errorf("round trip %v gave %v", c, got)
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ocean.theme"), []byte("Name: Ocean\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	inline := Default()
	inline.Name = "inline"
	l := &Loader{ConfigDir: dir, Inline: map[string]*Theme{"mine": inline}}

	cases := map[string]string{
		"":      "Default",
		"mine":  "inline",
		"dark":  "Dark",
		"light": "Light",
		"ocean": "Ocean",
	}
	for name, want := range cases {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != want {
			t.Errorf("Load(%q) gave %q, want %q", name, th.Name, want)
		}
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestFieldsListsColors(t *testing.T) {
	fields := Fields(Default())
	if len(fields) != 9 {
		t.Fatalf("expected 9 color fields, got %d", len(fields))
	}
	if fields[0].Name != "Background" {
		t.Errorf("first field should be Background, got %s", fields[0].Name)
	}
}
