package terminal

import "testing"

// env builds a getenv func from a map.
func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "3"}, TermKitty},
		{"wezterm mixed case", map[string]string{"TERM_PROGRAM": "WezTerm"}, TermWezTerm},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2", "TERM": "xterm-256color"}, TermITerm2},
		{"vte", map[string]string{"VTE_VERSION": "7200", "TERM": "xterm-256color"}, TermGNOME},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-0/default,1,0", "TERM": "tmux-256color"}, TermTmux},
		{"screen", map[string]string{"TERM": "screen-256color", "STY": "123.pts"}, TermScreen},
		{"emacs", map[string]string{"INSIDE_EMACS": "29.1,vterm", "TERM": "eterm-color"}, TermEmacs},
		{"program wins over mux", map[string]string{"TERM_PROGRAM": "kitty", "TMUX": "x"}, TermKitty},
		{"generic", map[string]string{"TERM": "xterm-256color"}, TermGeneric},
		{"dumb", map[string]string{"TERM": "dumb"}, TermUnknown},
		{"nothing", map[string]string{}, TermUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFrom(env(tt.vars)); got != tt.want {
				t.Errorf("DetectFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectProtocol(t *testing.T) {
	tests := []struct {
		term     Terminal
		ssh, mux bool
		want     GraphicsProtocol
	}{
		{TermKitty, false, false, ProtocolKitty},
		{TermWezTerm, false, false, ProtocolKitty},
		{TermITerm2, false, false, ProtocolITerm2},
		{TermAlacritty, false, false, ProtocolHalfblocks},
		{TermKitty, true, false, ProtocolHalfblocks},
		{TermITerm2, false, true, ProtocolHalfblocks},
		{TermUnknown, false, false, ProtocolNone},
		{TermEmacs, false, false, ProtocolNone},
	}
	for _, tt := range tests {
		if got := SelectProtocol(tt.term, tt.ssh, tt.mux); got != tt.want {
			t.Errorf("SelectProtocol(%v, ssh=%v, mux=%v) = %v, want %v", tt.term, tt.ssh, tt.mux, got, tt.want)
		}
	}
}

func TestResolveOverride(t *testing.T) {
	if got := Resolve(ProtocolSixel, TermKitty, false, false); got != ProtocolSixel {
		t.Errorf("override ignored: %v", got)
	}
	if got := Resolve(ProtocolAuto, TermKitty, false, false); got != ProtocolKitty {
		t.Errorf("auto = %v, want kitty", got)
	}
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		in   string
		want GraphicsProtocol
		ok   bool
	}{
		{"", ProtocolAuto, true},
		{"Kitty", ProtocolKitty, true},
		{"iterm2", ProtocolITerm2, true},
		{"sixel", ProtocolSixel, true},
		{"unicode", ProtocolHalfblocks, true},
		{"off", ProtocolNone, true},
		{"braille", ProtocolAuto, false},
	}
	for _, tt := range tests {
		got, err := ParseProtocol(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseProtocol(%q) = %v, %v", tt.in, got, err)
		}
	}
	for p := ProtocolAuto; p <= ProtocolHalfblocks; p++ {
		back, err := ParseProtocol(p.String())
		if err != nil || back != p {
			t.Errorf("round trip %v -> %v, %v", p, back, err)
		}
	}
}

func TestInspect(t *testing.T) {
	caps := inspect(env(map[string]string{
		"TERM_PROGRAM":   "ghostty",
		"SSH_CONNECTION": "10.0.0.1 22 10.0.0.2 5555",
	}), ProtocolAuto, true, true, Size{Cols: 100, Rows: 30})

	if caps.Term != TermGhostty || !caps.SSH || caps.Mux {
		t.Errorf("caps = %+v", caps)
	}
	if caps.Protocol != ProtocolHalfblocks {
		t.Errorf("ssh protocol = %v, want halfblocks", caps.Protocol)
	}
	if !caps.TrueColor || !caps.Interactive || caps.Size.Cols != 100 {
		t.Errorf("caps = %+v", caps)
	}

	plain := inspect(env(map[string]string{"TERM": "xterm", "COLORTERM": "24bit"}), ProtocolNone, false, true, Size{})
	if !plain.TrueColor || plain.Protocol != ProtocolNone || plain.Interactive || !plain.TTY {
		t.Errorf("plain caps = %+v", plain)
	}
}

func TestSizeFromEnv(t *testing.T) {
	s := sizeFromEnv(env(map[string]string{"COLUMNS": "132", "LINES": "-4"}))
	if s.Cols != 132 || s.Rows != 24 {
		t.Errorf("size = %+v, want 132x24", s)
	}
}

func TestDeriveCells(t *testing.T) {
	s := Size{Cols: 100, Rows: 50, PixelW: 1000, PixelH: 1000}
	s.deriveCells()
	if s.CellW != 10 || s.CellH != 20 {
		t.Errorf("cells = %dx%d, want 10x20", s.CellW, s.CellH)
	}
}
