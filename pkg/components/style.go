// Package components holds the text-mode building blocks shared by the chart
// fallback and the interactive recorder: a Braille day graph, sparklines,
// and ANSI-aware text helpers.
package components

import "github.com/muesli/termenv"

// Styler colors text for one output color profile. A nil Styler, or one
// using termenv.Ascii, returns text unchanged.
type Styler struct {
	profile termenv.Profile
}

// NewStyler creates a Styler for profile.
func NewStyler(profile termenv.Profile) *Styler {
	return &Styler{profile: profile}
}

// DetectStyler creates a Styler for stdout, honouring NO_COLOR and
// CLICOLOR_FORCE.
func DetectStyler() *Styler {
	return NewStyler(termenv.EnvColorProfile())
}

// Plain reports whether the styler emits no escape sequences.
func (s *Styler) Plain() bool {
	return s == nil || s.profile == termenv.Ascii
}

// Fg colors text with a "#RRGGBB" foreground.
func (s *Styler) Fg(hex, text string) string {
	if s.Plain() || hex == "" {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(hex)).String()
}

// Bold renders text in bold.
func (s *Styler) Bold(text string) string {
	if s.Plain() {
		return text
	}
	return termenv.String(text).Bold().String()
}

// Faint renders text dimmed.
func (s *Styler) Faint(text string) string {
	if s.Plain() {
		return text
	}
	return termenv.String(text).Faint().String()
}
