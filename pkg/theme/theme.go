// Package theme provides named color palettes for charts. Each measurement
// gets a palette color by its position in the collection, so a theme's
// palette order matters.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// PaletteSize is the number of series colors in every built-in palette.
const PaletteSize = 10

// Theme defines the colors used to draw a chart.
type Theme struct {
	Name string

	// Chart chrome
	Background string // hex color e.g. "#ffffff"
	Foreground string // axis text and titles
	Grid       string // grid lines
	Dim        string // secondary text
	Accent     string // highlights, prompts

	// Palette holds the per-series colors, assigned by index modulo length.
	Palette []string
}

// ColorFor returns the palette color for the series at index i. Negative
// indices wrap the same way as positive ones.
func (t Theme) ColorFor(i int) string {
	if len(t.Palette) == 0 {
		return t.Foreground
	}
	n := len(t.Palette)
	return t.Palette[((i%n)+n)%n]
}

// Assignment pairs a measurement key with its color.
type Assignment struct {
	Key   string
	Color string
}

// Assign returns one color per key, in key order.
func Assign(keys []string, t Theme) []Assignment {
	out := make([]Assignment, len(keys))
	for i, k := range keys {
		out[i] = Assignment{Key: k, Color: t.ColorFor(i)}
	}
	return out
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// DefaultName is the theme used when none is configured.
const DefaultName = "tab10"

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
