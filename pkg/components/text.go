package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the width of s in terminal cells, ignoring escape
// sequences.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, appending tail when
// anything was removed. Escape sequences before the cut are preserved.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with spaces to width visible cells.
func PadRight(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// PadLeft right-aligns s within width visible cells.
func PadLeft(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return strings.Repeat(" ", width-vis) + s
	}
	return s
}
