package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
//
//	name = "mine"
//	[chart]
//	background = "#101010"
//	foreground = "#eeeeee"
//	grid = "#333333"
//	dim = "#777777"
//	accent = "#ff00ff"
//	[palette]
//	colors = ["#ff0000", "#00ff00", ...]  # exactly PaletteSize entries
type thTOMLTheme struct {
	Name    string        `toml:"name"`
	Chart   thTOMLChart   `toml:"chart"`
	Palette thTOMLPalette `toml:"palette"`
}

type thTOMLChart struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Grid       string `toml:"grid"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLPalette struct {
	Colors []string `toml:"colors"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes. Chart chrome
// colors that are omitted are taken from the default theme; the palette is
// required and must hold exactly PaletteSize colors.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	def := thTab10Theme()
	t := Theme{
		Name:       tt.Name,
		Background: thOr(tt.Chart.Background, def.Background),
		Foreground: thOr(tt.Chart.Foreground, def.Foreground),
		Grid:       thOr(tt.Chart.Grid, def.Grid),
		Dim:        thOr(tt.Chart.Dim, def.Dim),
		Accent:     thOr(tt.Chart.Accent, def.Accent),
		Palette:    tt.Palette.Colors,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(raw)
}

// thValidateTheme checks the name, the chrome colors and every palette entry.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	if len(t.Palette) != PaletteSize {
		return fmt.Errorf("theme %q: palette has %d colors, want %d", t.Name, len(t.Palette), PaletteSize)
	}

	chrome := []struct{ field, value string }{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"grid", t.Grid},
		{"dim", t.Dim},
		{"accent", t.Accent},
	}
	for _, c := range chrome {
		if !thHexColorRegex.MatchString(c.value) {
			return fmt.Errorf("theme %q: invalid hex color for %s: %q", t.Name, c.field, c.value)
		}
	}
	for i, c := range t.Palette {
		if !thHexColorRegex.MatchString(c) {
			return fmt.Errorf("theme %q: invalid hex color for palette[%d]: %q", t.Name, i, c)
		}
	}
	return nil
}

func thOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
