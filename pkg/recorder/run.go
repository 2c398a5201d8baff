package recorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/data"
)

// Options configures Run.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Styles Styles
	Logger *slog.Logger
}

// Run records values for today into c. It returns ErrInterrupted when the
// user quits early or ctx is cancelled; values accepted before that remain
// in c.
func Run(ctx context.Context, c *data.Collection, today data.Date, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.In != nil {
		progOpts = append(progOpts, tea.WithInput(opts.In))
	}
	if opts.Out != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Out))
	}

	final, err := tea.NewProgram(New(c, today, opts.Styles), progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		logger.Debug("recording cancelled", "error", err)
		return ErrInterrupted
	}
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return fmt.Errorf("recorder: unexpected final model %T", final)
	}
	logger.Debug("recording finished",
		"date", today.String(),
		"recorded", m.Recorded(),
		"interrupted", m.Interrupted(),
	)
	if m.Interrupted() {
		return ErrInterrupted
	}
	return nil
}
