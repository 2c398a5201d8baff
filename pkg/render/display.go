package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/components"
	termimage "gitlab.com/tinyland/lab/metric-tracker/pkg/image"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
)

// Mode selects how Display shows the chart.
type Mode int

const (
	ModeAuto  Mode = iota // image, text or none depending on the terminal
	ModeImage             // inline image, falling back to text
	ModeText              // Braille chart
	ModeNone              // show nothing
)

var modeNames = [...]string{
	ModeAuto:  "auto",
	ModeImage: "image",
	ModeText:  "text",
	ModeNone:  "none",
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode maps a configuration value to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ModeAuto, nil
	case "image":
		return ModeImage, nil
	case "text":
		return ModeText, nil
	case "none", "off":
		return ModeNone, nil
	default:
		return ModeAuto, fmt.Errorf("render: unknown display mode %q (want auto, image, text or none)", name)
	}
}

// DisplayOptions configures Display.
type DisplayOptions struct {
	Mode   Mode
	Caps   terminal.Capabilities
	Width  int // PNG width in pixels
	Height int // PNG height in pixels
	In     io.Reader
	Out    io.Writer
	Styler *components.Styler
	Logger *slog.Logger
}

// Resolve returns the concrete mode for caps. Auto becomes none when stdout
// is not a terminal, image when the terminal has a real graphics protocol
// and text otherwise.
func (m Mode) Resolve(caps terminal.Capabilities) Mode {
	if m != ModeAuto {
		return m
	}
	switch {
	case !caps.TTY:
		return ModeNone
	case caps.Protocol == terminal.ProtocolKitty,
		caps.Protocol == terminal.ProtocolITerm2,
		caps.Protocol == terminal.ProtocolSixel:
		return ModeImage
	default:
		return ModeText
	}
}

// Display draws p and then blocks until the user presses Enter or q, or ctx
// is done. It does not block when the session is not interactive or nothing
// was drawn.
func Display(ctx context.Context, p *Plot, opts DisplayOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	cols, rows := viewport(opts.Caps.Size)

	mode := opts.Mode.Resolve(opts.Caps)
	logger.Debug("displaying chart",
		"mode", mode.String(),
		"protocol", opts.Caps.Protocol.String(),
		"cols", cols,
		"rows", rows,
	)

	var out string
	switch mode {
	case ModeNone:
		return nil
	case ModeImage:
		s, err := inlineImage(p, opts.Caps, width, height, cols, rows)
		if err != nil {
			logger.Warn("inline image unavailable, drawing text chart", "error", err)
			s = Text(p, cols, rows, opts.Styler)
		}
		out = s
	default:
		out = Text(p, cols, rows, opts.Styler)
	}

	if _, err := fmt.Fprintln(opts.Out, out); err != nil {
		return fmt.Errorf("render: display: %w", err)
	}
	if !opts.Caps.Interactive || opts.In == nil {
		return nil
	}
	return waitForClose(ctx, opts.In, opts.Out)
}

func inlineImage(p *Plot, caps terminal.Capabilities, width, height, cols, rows int) (string, error) {
	if caps.Protocol == terminal.ProtocolNone || caps.Protocol == terminal.ProtocolAuto {
		return "", termimage.ErrDisabled
	}
	img, err := Image(p, width, height)
	if err != nil {
		return "", err
	}
	return termimage.NewRenderer(caps).Render(img, cols, rows)
}

// viewport leaves two rows for the close prompt.
func viewport(s terminal.Size) (int, int) {
	cols, rows := s.Cols, s.Rows-2
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 22
	}
	return cols, rows
}

// closePrompt is a one-line bubbletea model that quits on Enter, q, Esc or
// Ctrl+C.
type closePrompt struct{}

var promptStyle = lipgloss.NewStyle().Faint(true)

func (closePrompt) Init() tea.Cmd { return nil }

func (m closePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (closePrompt) View() string {
	return promptStyle.Render("Press Enter or q to close the chart.") + "\n"
}

func waitForClose(ctx context.Context, in io.Reader, out io.Writer) error {
	prog := tea.NewProgram(closePrompt{},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("render: wait: %w", err)
	}
	return nil
}
