package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formatter/pkg/format"
)

// Renderer is an interactive front-end that lets a user type values into a
// formatted field.
type Renderer interface {
	Name() string
	Run(ctx context.Context, session Session) ([]Entry, error)
}

// Resolver compiles the formatter registered under a name.
type Resolver func(ctx context.Context, name string) (*format.Formatter, error)

// Session is the input to a Renderer run.
type Session struct {
	// Name preselects a formatter. When empty the renderer asks for one of
	// Names.
	Name string
	// Names lists the selectable formatters.
	Names []string
	// Resolve compiles a selected name.
	Resolve Resolver
	// Once stops after the first value instead of offering to continue.
	Once bool
}

// Validate checks the session can be run.
func (s Session) Validate() error {
	if s.Resolve == nil {
		return errors.New("render: session resolver is required")
	}
	if s.Name == "" && len(s.Names) == 0 {
		return errors.New("render: session needs a formatter name or a list to choose from")
	}
	return nil
}

// Formatter resolves name, wrapping failures with the name.
func (s Session) Formatter(ctx context.Context, name string) (*format.Formatter, error) {
	f, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("render: formatter %q: %w", name, err)
	}
	return f, nil
}

// Entry is one value produced by a renderer run.
type Entry struct {
	Name        string `json:"name"`
	Raw         string `json:"raw"`
	Text        string `json:"text"`
	Unformatted string `json:"unformatted"`
	Complete    bool   `json:"complete"`
}
