package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Get / Names ---

func TestGetDefault(t *testing.T) {
	th := Get(DefaultName)
	if th.Name != "tab10" {
		t.Errorf("Get(%q).Name = %q, want tab10", DefaultName, th.Name)
	}
	if th.Palette[0] != "#1f77b4" {
		t.Errorf("tab10 first color = %q, want #1f77b4", th.Palette[0])
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if Get("GruvBox").Name != "gruvbox" {
		t.Error("Get should match names case-insensitively")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	if th := Get("unknown-theme-xyz"); th.Name != DefaultName {
		t.Errorf("Get(unknown) = %q, want %q", th.Name, DefaultName)
	}
	if _, ok := Lookup("unknown-theme-xyz"); ok {
		t.Error("Lookup(unknown) reported ok")
	}
}

func TestNames(t *testing.T) {
	want := []string{"catppuccin", "dracula", "gruvbox", "nord", "tab10"}
	got := Names()
	if len(got) < len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() missing %q", w)
		}
	}
}

func TestBuiltinsAreValidTenColorPalettes(t *testing.T) {
	for _, name := range []string{"tab10", "gruvbox", "nord", "catppuccin", "dracula"} {
		th, ok := Lookup(name)
		if !ok {
			t.Fatalf("builtin %q missing", name)
		}
		if len(th.Palette) != PaletteSize {
			t.Errorf("%s palette has %d colors, want %d", name, len(th.Palette), PaletteSize)
		}
		if err := thValidateTheme(th); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

// --- color assignment ---

func TestColorForWrapsModuloPalette(t *testing.T) {
	th := Get("tab10")
	for i := 0; i < 25; i++ {
		if th.ColorFor(i) != th.ColorFor(i+PaletteSize) {
			t.Errorf("ColorFor(%d) != ColorFor(%d)", i, i+PaletteSize)
		}
	}
	if th.ColorFor(3) != "#d62728" {
		t.Errorf("ColorFor(3) = %q", th.ColorFor(3))
	}
	if th.ColorFor(-1) != th.ColorFor(PaletteSize-1) {
		t.Error("negative index should wrap")
	}
}

func TestColorForEmptyPaletteUsesForeground(t *testing.T) {
	th := Theme{Foreground: "#123456"}
	if th.ColorFor(0) != "#123456" {
		t.Errorf("ColorFor on empty palette = %q", th.ColorFor(0))
	}
}

func TestAssignFollowsKeyOrder(t *testing.T) {
	th := Get("tab10")
	keys := make([]string, 12)
	for i := range keys {
		keys[i] = strings.Repeat("k", i+1)
	}
	got := Assign(keys, th)
	if len(got) != 12 {
		t.Fatalf("len = %d", len(got))
	}
	for i, a := range got {
		if a.Key != keys[i] {
			t.Errorf("got[%d].Key = %q", i, a.Key)
		}
		if a.Color != th.Palette[i%PaletteSize] {
			t.Errorf("got[%d].Color = %q, want %q", i, a.Color, th.Palette[i%PaletteSize])
		}
	}
	if got[10].Color != got[0].Color {
		t.Error("11th key should reuse the first color")
	}
}

// --- TOML ---

// tenColors is a TOML array of PaletteSize colors starting with first.
func tenColors(first string) string {
	cols := []string{`"` + first + `"`}
	for i := 1; i < PaletteSize; i++ {
		cols = append(cols, fmt.Sprintf(`"#0000%02x"`, i))
	}
	return "[" + strings.Join(cols, ", ") + "]"
}

func TestLoadFromTOMLFullTheme(t *testing.T) {
	src := `
name = "mine"
[chart]
background = "#101010"
foreground = "#eeeeee"
grid = "#333333"
dim = "#777777"
accent = "#ff00ff"
[palette]
colors = ` + tenColors("#ff0000") + "\n"
	th, err := LoadFromTOML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "mine" || th.Background != "#101010" || th.Accent != "#ff00ff" {
		t.Errorf("chrome not loaded: %+v", th)
	}
	if th.ColorFor(0) != "#ff0000" || th.ColorFor(9) != "#000009" {
		t.Errorf("palette = %v", th.Palette)
	}
}

func TestLoadFromTOMLFillsChromeDefaults(t *testing.T) {
	src := `
name = "two"
[palette]
colors = ` + tenColors("#ff0000") + "\n"
	th, err := LoadFromTOML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if th.Background != Get("tab10").Background {
		t.Errorf("Background = %q, want default", th.Background)
	}
	if th.ColorFor(PaletteSize) != "#ff0000" {
		t.Errorf("ColorFor(%d) = %q, want wrap to #ff0000", PaletteSize, th.ColorFor(PaletteSize))
	}
}

func TestLoadFromTOMLRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"syntax":        `name = `,
		"no name":       "[palette]\ncolors = [\"#ff0000\"]",
		"empty palette": "name = \"x\"\n[palette]\ncolors = []",
		"short palette": "name = \"x\"\n[palette]\ncolors = [\"#ff0000\", \"#00ff00\"]",
		"long palette":  "name = \"x\"\n[palette]\ncolors = " + tenColors("#ff0000")[:len(tenColors("#ff0000"))-1] + ", \"#ffffff\"]",
		"bad palette":   "name = \"x\"\n[palette]\ncolors = " + tenColors("red"),
		"bad chrome":    "name = \"x\"\n[chart]\ngrid = \"#12\"\n[palette]\ncolors = " + tenColors("#ff0000"),
	}
	for name, src := range tests {
		if _, err := LoadFromTOML([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	src := "name = \"mine\"\n[palette]\ncolors = " + tenColors("#abcdef") + "\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "mine" || th.ColorFor(PaletteSize) != "#abcdef" {
		t.Errorf("loaded %+v", th)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should error")
	}
}
