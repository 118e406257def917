package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formatter/pkg/render"
)

// Renderer runs a Model as a bubbletea program.
type Renderer struct {
	in             io.Reader
	out            io.Writer
	styles         Styles
	programOptions []tea.ProgramOption
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "tui"
}

// Run implements render.Renderer.
func (r *Renderer) Run(ctx context.Context, session render.Session) ([]render.Entry, error) {
	m, err := NewModel(ctx, session, r.styles)
	if err != nil {
		return nil, err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.in != nil {
		opts = append(opts, tea.WithInput(r.in))
	}
	if r.out != nil {
		opts = append(opts, tea.WithOutput(r.out))
	}
	opts = append(opts, r.programOptions...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m.Entries(), fmt.Errorf("tui: %w", err)
	}
	done, ok := final.(*Model)
	if !ok {
		return m.Entries(), fmt.Errorf("tui: unexpected model %T", final)
	}
	return done.Entries(), done.Err()
}
