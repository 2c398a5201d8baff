// Package terminal works out what the attached terminal can display: which
// emulator it is, which inline image protocol to use for the chart, its size
// in cells and pixels, and whether a human is on the other end at all.
//
// Detection only inspects environment variables and ioctls; it never writes
// query sequences to the terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // kitty graphics
	TermKitty              // kitty graphics
	TermWezTerm            // kitty graphics, sixel, iterm2 images
	TermITerm2             // iterm2 images
	TermAlacritty          // true color, no graphics
	TermGNOME              // VTE-based
	TermTmux               // multiplexer
	TermScreen             // multiplexer
	TermVSCode             // integrated terminal
	TermEmacs              // vterm/eat
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "gnome-terminal",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsKittyGraphics reports whether the terminal speaks the kitty
// graphics protocol.
func (t Terminal) SupportsKittyGraphics() bool {
	return t == TermGhostty || t == TermKitty || t == TermWezTerm
}

// SupportsITerm2Images reports whether the terminal supports iTerm2 inline
// images.
func (t Terminal) SupportsITerm2Images() bool {
	return t == TermITerm2 || t == TermWezTerm
}

// SupportsTrueColor reports whether the terminal supports 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// Detect identifies the terminal emulator from the process environment.
func Detect() Terminal {
	return DetectFrom(os.Getenv)
}

// DetectFrom identifies the terminal using getenv for lookups. Signals are
// checked from most to least reliable: TERM_PROGRAM, TERM, emulator-specific
// variables, VTE, emacs, then multiplexers.
func DetectFrom(getenv func(string) string) Terminal {
	switch strings.ToLower(getenv("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "alacritty":
		return TermAlacritty
	case "tmux":
		return TermTmux
	}

	term := getenv("TERM")
	switch {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case strings.HasPrefix(term, "screen") && getenv("STY") != "":
		return TermScreen
	}

	switch {
	case getenv("KITTY_WINDOW_ID") != "":
		return TermKitty
	case getenv("ITERM_SESSION_ID") != "", getenv("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case getenv("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case getenv("VTE_VERSION") != "":
		return TermGNOME
	case getenv("INSIDE_EMACS") != "":
		return TermEmacs
	case getenv("TMUX") != "":
		return TermTmux
	case getenv("STY") != "":
		return TermScreen
	}

	if term == "" || term == "dumb" {
		return TermUnknown
	}
	return TermGeneric
}
