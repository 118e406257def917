package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formatter/pkg/format"
	"github.com/goliatone/go-formatter/pkg/orchestrator"
	"github.com/goliatone/go-formatter/pkg/render"
)

// Renderer asks for values one prompt at a time and reports what a formatted
// field would hold after the value is pasted in and the field loses focus.
type Renderer struct {
	driver PromptDriver
	out    io.Writer
	theme  Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a prompt renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "prompt"
}

// Run implements render.Renderer.
func (r *Renderer) Run(ctx context.Context, session render.Session) ([]render.Entry, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	name := session.Name
	if name == "" {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message: "Formatter",
			Options: session.Names,
			Help:    "Pick the formatter to type values into.",
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(session.Names) {
			return nil, fmt.Errorf("prompt: selection %d out of range", idx)
		}
		name = session.Names[idx]
	}

	f, err := session.Formatter(ctx, name)
	if err != nil {
		return nil, err
	}

	var entries []render.Entry
	for {
		raw, err := r.driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("%s (%s)", name, Describe(f)),
			Help:      help(f),
			Validator: validator(f),
		})
		if err != nil {
			return entries, err
		}

		entry, err := Evaluate(ctx, name, f, raw)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)

		msg := fmt.Sprintf("%s%q -> %q", r.theme.InfoPrefix, entry.Text, entry.Unformatted)
		if !entry.Complete && f.Mode() == format.ModeMask {
			msg = fmt.Sprintf("%s%s value is incomplete", r.theme.ErrorPrefix, name)
		}
		if err := r.driver.Info(ctx, msg); err != nil {
			return entries, err
		}

		if session.Once {
			return entries, nil
		}
		again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Format another value?", Default: true})
		if err != nil {
			return entries, err
		}
		if !again {
			return entries, nil
		}
	}
}

// Evaluate pastes raw into an empty field driven by f, blurs it and returns
// the resulting entry.
func Evaluate(ctx context.Context, name string, f *format.Formatter, raw string) (render.Entry, error) {
	if f == nil {
		return render.Entry{}, errors.New("prompt: formatter is required")
	}
	res, err := orchestrator.Run(ctx, f, orchestrator.Script{Paste: raw, Blur: true})
	if err != nil {
		return render.Entry{}, err
	}
	complete := res.Complete
	if f.Mode() != format.ModeMask {
		complete = res.Text != "" || raw == ""
	}
	return render.Entry{
		Name:        name,
		Raw:         raw,
		Text:        res.Text,
		Unformatted: res.Unformatted,
		Complete:    complete,
	}, nil
}

// Describe summarises the input a formatter accepts.
func Describe(f *format.Formatter) string {
	cfg := f.Config()
	switch f.Mode() {
	case format.ModeMask:
		return "pattern " + f.Template().Source()
	case format.ModeAmount:
		return fmt.Sprintf("amount, %d decimals", cfg.DecimalPlaces)
	case format.ModeFilter:
		if cfg.MaxLength > 0 {
			return fmt.Sprintf("filtered, up to %d characters", cfg.MaxLength)
		}
		return "filtered"
	default:
		return "free text"
	}
}

func help(f *format.Formatter) string {
	if f.Mode() != format.ModeMask {
		return ""
	}
	var b strings.Builder
	b.WriteString("Characters are placed into the editable slots of ")
	b.WriteString(f.Template().Source())
	b.WriteString("; an incomplete value is cleared.")
	return b.String()
}

func validator(f *format.Formatter) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		if f.Mode() == format.ModePlain {
			return nil
		}
		if f.Apply(value) == "" {
			return fmt.Errorf("%q does not fit %s", value, Describe(f))
		}
		return nil
	}
}
