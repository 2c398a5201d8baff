package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Capabilities summarises what the current session can display.
type Capabilities struct {
	Term        Terminal
	Protocol    GraphicsProtocol
	Size        Size
	TrueColor   bool
	SSH         bool
	Mux         bool // inside tmux or screen
	TTY         bool // stdout is a terminal
	Interactive bool // stdin and stdout are both terminals
}

// Inspect detects the capabilities of the current process. A protocol other
// than ProtocolAuto is used as-is.
func Inspect(override GraphicsProtocol) Capabilities {
	return inspect(os.Getenv, override, IsInteractive(os.Stdin), IsInteractive(os.Stdout), GetSize())
}

// InspectEnv is Inspect for an environment supplied by getenv, as seen from an
// interactive terminal of the given size. Diagnostics and tests use it to
// replay other terminals' environments.
func InspectEnv(getenv func(string) string, override GraphicsProtocol, size Size) Capabilities {
	return inspect(getenv, override, true, true, size)
}

func inspect(getenv func(string) string, override GraphicsProtocol, stdinTTY, stdoutTTY bool, size Size) Capabilities {
	term := DetectFrom(getenv)
	ssh := getenv("SSH_TTY") != "" || getenv("SSH_CONNECTION") != "" || getenv("SSH_CLIENT") != ""
	mux := getenv("TMUX") != "" || getenv("STY") != ""

	trueColor := term.SupportsTrueColor()
	if ct := getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		trueColor = true
	}

	return Capabilities{
		Term:        term,
		Protocol:    Resolve(override, term, ssh, mux),
		Size:        size,
		TrueColor:   trueColor,
		SSH:         ssh,
		Mux:         mux,
		TTY:         stdoutTTY,
		Interactive: stdinTTY && stdoutTTY,
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
