package bubbletea

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOption configures Run, translating into the underlying Bubble Tea
// program's own options.
type RunOption func(*runConfig)

type runConfig struct {
	altScreen       bool
	mouseCellMotion bool
	mouseAllMotion  bool
	input           io.Reader
	output          io.Writer
	ctx             context.Context
}

// WithAltScreen runs the program in the terminal's alternate screen buffer.
func WithAltScreen() RunOption {
	return func(cfg *runConfig) { cfg.altScreen = true }
}

// WithMouseCellMotion enables mouse events on cell-to-cell movement.
func WithMouseCellMotion() RunOption {
	return func(cfg *runConfig) { cfg.mouseCellMotion = true }
}

// WithMouseAllMotion enables mouse events on every movement, not just
// cell-to-cell.
func WithMouseAllMotion() RunOption {
	return func(cfg *runConfig) { cfg.mouseAllMotion = true }
}

// WithInput sets a custom input source in place of os.Stdin.
func WithInput(r io.Reader) RunOption {
	return func(cfg *runConfig) { cfg.input = r }
}

// WithOutput sets a custom output destination in place of os.Stdout.
func WithOutput(w io.Writer) RunOption {
	return func(cfg *runConfig) { cfg.output = w }
}

// WithContext binds a context whose cancellation stops the program.
func WithContext(ctx context.Context) RunOption {
	return func(cfg *runConfig) { cfg.ctx = ctx }
}

func buildTeaOptions(cfg *runConfig) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if cfg.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.mouseAllMotion {
		opts = append(opts, tea.WithMouseAllMotion())
	} else if cfg.mouseCellMotion {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if cfg.input != nil {
		opts = append(opts, tea.WithInput(cfg.input))
	}
	if cfg.output != nil {
		opts = append(opts, tea.WithOutput(cfg.output))
	}
	if cfg.ctx != nil {
		opts = append(opts, tea.WithContext(cfg.ctx))
	}
	return opts
}

// Run starts a Bubble Tea program hosting a Backend sized to the terminal,
// and blocks until the program exits. fn receives the live Backend before
// the program starts; it must not block (the Bubble Tea program isn't
// pumping messages yet) — callers that drive their own router loop should
// start it in a goroutine and call Backend.Quit once that loop returns, so
// the program exits in turn (the Backend's size is only known once Bubble
// Tea reports the initial tea.WindowSizeMsg, so most callers build their
// tree in fn and resize-react to the router's own resize handling rather
// than reading Backend.Size() immediately).
func Run(fn func(*Backend), opts ...RunOption) error {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	b := New(0, 0)
	m := newModel(b)
	p := tea.NewProgram(m, buildTeaOptions(cfg)...)
	b.requestRender = func() { p.Send(renderMsg{}) }
	b.requestQuit = func() { p.Quit() }

	fn(b)

	_, err := p.Run()
	return err
}
