package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/hostcolor/internal/render"
	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// Options configures Run.
type Options struct {
	FallbackFG outercolor.RGB
	FallbackBG outercolor.RGB
	NoColor    bool
	Input      io.Reader
	Output     io.Writer
	Logger     *slog.Logger
}

// Sink adapts a running program into a theme-change sender. Events sent
// after the program exits are dropped; the caller stops the bridge by
// cancelling its context.
func Sink(p *tea.Program) outercolor.Sender {
	return outercolor.SenderFunc(func(ev outercolor.ThemeChangeEvent) error {
		p.Send(ThemeChangedMsg(ev))
		return nil
	})
}

// Run shows the preview until the user quits or ctx is done. outer must
// already hold the initial query result: querying is only safe before the
// program takes over the terminal.
func Run(ctx context.Context, outer *outercolor.Outer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := render.NewReport(outer.Cache(), opts.FallbackFG, opts.FallbackBG)

	var p *tea.Program
	refresh := func() outercolor.TerminalColors {
		// Leave the alternate screen and hand stdin back before querying.
		if err := p.ReleaseTerminal(); err != nil {
			log.Warn("release terminal", slog.String("error", err.Error()))
		}
		defer func() {
			if err := p.RestoreTerminal(); err != nil {
				log.Warn("restore terminal", slog.String("error", err.Error()))
			}
		}()
		return outer.Refresh()
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	p = tea.NewProgram(NewModel(report, opts.NoColor, refresh), progOpts...)

	outer.ListenContext(ctx, Sink(p))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
