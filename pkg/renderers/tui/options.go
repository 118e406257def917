package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(rd *Renderer) {
		rd.in = r
	}
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(rd *Renderer) {
		rd.out = w
	}
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(rd *Renderer) {
		rd.styles = styles
	}
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen() Option {
	return func(rd *Renderer) {
		rd.programOptions = append(rd.programOptions, tea.WithAltScreen())
	}
}

// WithProgramOptions passes extra options to the bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(rd *Renderer) {
		rd.programOptions = append(rd.programOptions, opts...)
	}
}
