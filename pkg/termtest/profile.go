// Package termtest replays the environments of real terminal emulators so
// detection, protocol selection and chart rendering can be checked across
// terminals without running them.
package termtest

import (
	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
)

// TerminalProfile is a terminal's environment plus what the tracker is
// expected to make of it.
type TerminalProfile struct {
	Name      string
	EnvVars   map[string]string
	Term      terminal.Terminal
	Protocol  terminal.GraphicsProtocol
	Mode      render.Mode // resolved display mode on an interactive session
	TrueColor bool
}

// Getenv returns a lookup over the profile's variables only.
func (p TerminalProfile) Getenv() func(string) string {
	return func(key string) string { return p.EnvVars[key] }
}

// Capabilities inspects the profile as an interactive terminal of size.
func (p TerminalProfile) Capabilities(size terminal.Size) terminal.Capabilities {
	return terminal.InspectEnv(p.Getenv(), terminal.ProtocolAuto, size)
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttITerm2Profile(),
		ttWezTermProfile(),
		ttAlacrittyProfile(),
		ttGNOMEProfile(),
		ttVSCodeProfile(),
		ttTmuxInKittyProfile(),
		ttSSHToGhosttyProfile(),
		ttEmacsVtermProfile(),
		ttDumbProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}
