package terminal

import (
	"fmt"
	"strings"
)

// GraphicsProtocol identifies how the chart image is drawn in the terminal.
type GraphicsProtocol int

const (
	ProtocolAuto       GraphicsProtocol = iota // pick from detection
	ProtocolNone                               // no inline images
	ProtocolKitty                              // kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images
	ProtocolSixel                              // DEC sixel
	ProtocolHalfblocks                         // U+2580 cells with 24-bit color
)

var protocolNames = [...]string{
	ProtocolAuto:       "auto",
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the configuration name of the protocol.
func (p GraphicsProtocol) String() string {
	if int(p) >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ParseProtocol maps a configuration value to a GraphicsProtocol.
func ParseProtocol(name string) (GraphicsProtocol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ProtocolAuto, nil
	case "none", "off", "disabled":
		return ProtocolNone, nil
	case "kitty":
		return ProtocolKitty, nil
	case "iterm2":
		return ProtocolITerm2, nil
	case "sixel":
		return ProtocolSixel, nil
	case "halfblocks", "half-blocks", "unicode":
		return ProtocolHalfblocks, nil
	default:
		return ProtocolAuto, fmt.Errorf("terminal: unknown protocol %q", name)
	}
}

// SelectProtocol returns the best protocol for term. Remote sessions and
// multiplexers fall back to halfblocks because escape-sequence images rarely
// survive them intact.
func SelectProtocol(term Terminal, ssh, mux bool) GraphicsProtocol {
	var proto GraphicsProtocol
	switch {
	case term.SupportsKittyGraphics():
		proto = ProtocolKitty
	case term.SupportsITerm2Images():
		proto = ProtocolITerm2
	case term == TermUnknown || term == TermEmacs:
		return ProtocolNone
	default:
		return ProtocolHalfblocks
	}
	if ssh || mux {
		return ProtocolHalfblocks
	}
	return proto
}

// Resolve returns override unless it is ProtocolAuto, in which case the
// protocol is selected from the detected terminal.
func Resolve(override GraphicsProtocol, term Terminal, ssh, mux bool) GraphicsProtocol {
	if override != ProtocolAuto {
		return override
	}
	return SelectProtocol(term, ssh, mux)
}
