package termtest

import (
	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
)

func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
		},
		Term:      terminal.TermGhostty,
		Protocol:  terminal.ProtocolKitty,
		Mode:      render.ModeImage,
		TrueColor: true,
	}
}

func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM":            "xterm-kitty",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		Term:      terminal.TermKitty,
		Protocol:  terminal.ProtocolKitty,
		Mode:      render.ModeImage,
		TrueColor: true,
	}
}

func ttITerm2Profile() TerminalProfile {
	return TerminalProfile{
		Name: "iTerm2",
		EnvVars: map[string]string{
			"TERM_PROGRAM":     "iTerm.app",
			"TERM":             "xterm-256color",
			"COLORTERM":        "truecolor",
			"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
		},
		Term:      terminal.TermITerm2,
		Protocol:  terminal.ProtocolITerm2,
		Mode:      render.ModeImage,
		TrueColor: true,
	}
}

// WezTerm speaks kitty, iTerm2 and sixel; kitty wins.
func ttWezTermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "WezTerm",
		EnvVars: map[string]string{
			"TERM_PROGRAM":       "WezTerm",
			"TERM":               "xterm-256color",
			"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
		},
		Term:      terminal.TermWezTerm,
		Protocol:  terminal.ProtocolKitty,
		Mode:      render.ModeImage,
		TrueColor: true,
	}
}

func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM": "alacritty",
		},
		Term:      terminal.TermAlacritty,
		Protocol:  terminal.ProtocolHalfblocks,
		Mode:      render.ModeText,
		TrueColor: true,
	}
}

func ttGNOMEProfile() TerminalProfile {
	return TerminalProfile{
		Name: "GNOME Terminal",
		EnvVars: map[string]string{
			"TERM":        "xterm-256color",
			"VTE_VERSION": "7006",
		},
		Term:      terminal.TermGNOME,
		Protocol:  terminal.ProtocolHalfblocks,
		Mode:      render.ModeText,
		TrueColor: true,
	}
}

func ttVSCodeProfile() TerminalProfile {
	return TerminalProfile{
		Name: "VS Code",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "vscode",
			"TERM":         "xterm-256color",
		},
		Term:      terminal.TermVSCode,
		Protocol:  terminal.ProtocolHalfblocks,
		Mode:      render.ModeText,
		TrueColor: true,
	}
}

// tmux rewrites TERM_PROGRAM and swallows graphics escapes, even when the
// outer terminal is kitty.
func ttTmuxInKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux in Kitty",
		EnvVars: map[string]string{
			"TERM_PROGRAM":    "tmux",
			"TERM":            "tmux-256color",
			"TMUX":            "/tmp/tmux-1000/default,1234,0",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		Term:      terminal.TermTmux,
		Protocol:  terminal.ProtocolHalfblocks,
		Mode:      render.ModeText,
		TrueColor: true,
	}
}

func ttSSHToGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "SSH to Ghostty",
		EnvVars: map[string]string{
			"TERM":           "xterm-ghostty",
			"SSH_TTY":        "/dev/pts/3",
			"SSH_CONNECTION": "10.0.0.2 51234 10.0.0.5 22",
		},
		Term:      terminal.TermGhostty,
		Protocol:  terminal.ProtocolHalfblocks,
		Mode:      render.ModeText,
		TrueColor: true,
	}
}

func ttEmacsVtermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Emacs vterm",
		EnvVars: map[string]string{
			"TERM":         "eterm-color",
			"INSIDE_EMACS": "29.1,vterm",
		},
		Term:     terminal.TermEmacs,
		Protocol: terminal.ProtocolNone,
		Mode:     render.ModeText,
	}
}

func ttDumbProfile() TerminalProfile {
	return TerminalProfile{
		Name: "dumb",
		EnvVars: map[string]string{
			"TERM": "dumb",
		},
		Term:     terminal.TermUnknown,
		Protocol: terminal.ProtocolNone,
		Mode:     render.ModeText,
	}
}
