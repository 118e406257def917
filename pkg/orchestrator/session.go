package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/format"
)

// Script is a sequence of user actions replayed against an in-memory field.
type Script struct {
	// Initial is the field text before the formatter attaches.
	Initial string
	// Focus gives the field focus before any other action.
	Focus bool
	// Paste is pasted after focusing, replacing the whole text.
	Paste string
	// Keys is a key script (see keys.Parse) typed after pasting.
	Keys string
	// Blur removes focus at the end.
	Blur bool
}

// Result is the state of the field after a Script.
type Result struct {
	Text          string
	Unformatted   string
	Selection     field.Selection
	Complete      bool
	Notifications []field.Notification
}

// Run attaches f to a fresh in-memory field and replays script, settling the
// field's loop after every step.
func Run(ctx context.Context, f *format.Formatter, script Script) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	completed := false
	derived, err := f.Derive(format.WithOnComplete(func(field.Adapter) { completed = true }))
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	host := field.NewMemory(field.WithText(script.Initial))
	att, err := derived.Attach(host)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: attach: %w", err)
	}
	defer att.Detach()

	settle := func() error {
		if _, err := host.Loop().Settle(); err != nil {
			return fmt.Errorf("orchestrator: %w", err)
		}
		return ctx.Err()
	}

	if script.Focus || script.Paste != "" || script.Keys != "" {
		host.Focus()
		if err := settle(); err != nil {
			return Result{}, err
		}
	}
	if script.Paste != "" {
		host.SetSelection(field.Selection{Start: 0, End: len([]rune(host.Text()))})
		host.Paste(script.Paste)
		if err := settle(); err != nil {
			return Result{}, err
		}
	}
	if script.Keys != "" {
		if err := host.Type(script.Keys); err != nil {
			return Result{}, fmt.Errorf("orchestrator: %w", err)
		}
		if err := settle(); err != nil {
			return Result{}, err
		}
	}
	if script.Blur {
		host.Focus()
		host.Blur()
		if err := settle(); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Text:          host.Text(),
		Unformatted:   att.UnformattedValue(),
		Selection:     host.Selection(),
		Complete:      completed,
		Notifications: host.Notifications(),
	}, nil
}
