package format

import (
	"strings"
	"time"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/grouping"
)

// focusCaretDelay is how long a focused mask field waits before rendering
// the full buffer and placing the caret, so the host's own focus handling
// has settled first.
const focusCaretDelay = 10 * time.Millisecond

// HandlePaste reconciles pasted text once the host has inserted it.
func (a *Attachment) HandlePaste() {
	if a.detached {
		return
	}
	old := a.host.Text()
	a.later(func() { a.reconcileInsert(old) })
}

// HandleDrop reconciles dropped data once the host has inserted it. It
// returns the text the host should insert: markup is reduced to its text and
// non-text payloads are discarded.
func (a *Attachment) HandleDrop(mediaType, data string) string {
	if a.detached {
		return data
	}
	text := dropText(mediaType, data)
	old := a.host.Text()
	a.later(func() { a.reconcileInsert(old) })
	return text
}

func (a *Attachment) reconcileInsert(old string) {
	text := a.host.Text()
	if a.f.mode == ModeMask {
		res := a.buf.CheckVal(text, true)
		a.buf = res.Buffer
		a.host.SetText(res.Text)
		a.host.SetSelection(field.Caret(res.Caret))
		a.host.Notify(field.NotifyInput)
		if res.Caret == len([]rune(res.Text)) {
			a.complete()
		}
		return
	}

	cfg := a.f.cfg
	s := text
	if a.f.mode == ModeAmount {
		s = grouping.Ungroup(s, cfg.GroupingSeparator)
	}
	switch {
	case a.f.strip != nil:
		s = a.f.strip.ReplaceAllString(s, "")
		if cfg.MaxLength > 0 {
			if runes := []rune(s); len(runes) > cfg.MaxLength {
				s = string(runes[:cfg.MaxLength])
			}
		}
	case a.f.valid != nil && !a.f.valid.MatchString(s):
		a.f.logf("format: pasted %q rejected", s)
		s = old
		if a.f.mode == ModeAmount {
			s = grouping.Ungroup(s, cfg.GroupingSeparator)
		}
	}
	if a.f.mode == ModeAmount {
		s = grouping.Group(s, cfg.GroupingSeparator)
	}
	if s != text {
		a.host.SetText(s)
		a.host.SetSelection(field.Caret(len([]rune(s))))
	}
	a.host.Notify(field.NotifyInput)
}

// HandleFocus snapshots the text and resynchronises the mask buffer. The
// full buffer and the caret are applied shortly after; a second focus before
// then cancels the pending update.
func (a *Attachment) HandleFocus() {
	if a.detached || a.f.mode != ModeMask {
		return
	}
	if a.cancelCaret != nil {
		a.cancelCaret()
	}
	a.focusText = a.host.Text()
	res := a.buf.CheckVal(a.focusText, false)
	a.buf = res.Buffer
	a.host.SetText(res.Text)

	position := res.Caret
	a.cancelCaret = a.host.Loop().After(focusCaretDelay, func() {
		a.cancelCaret = nil
		if a.detached {
			return
		}
		a.host.SetText(a.buf.String())
		if position == a.f.tpl.Len() {
			a.host.SetSelection(field.Selection{Start: 0, End: position})
			return
		}
		a.host.SetSelection(field.Caret(position))
	})
}

func (f *Formatter) hasBlur() bool {
	return f.mode == ModeMask || f.mode == ModeAmount && f.cfg.DecimalPlaces > 0 || f.cfg.TrimOnBlur
}

// HandleBlur applies the blur behaviour in order: amount rounding, trimming,
// then mask resynchronisation.
func (a *Attachment) HandleBlur() {
	if a.detached {
		return
	}
	cfg := a.f.cfg

	if a.f.mode == ModeAmount && cfg.DecimalPlaces > 0 {
		val, ok := grouping.Fixed(grouping.Ungroup(a.host.Text(), cfg.GroupingSeparator), cfg.DecimalPlaces)
		if !ok {
			val = ""
		}
		val = grouping.Group(val, cfg.GroupingSeparator)
		a.host.SetText(val)
		if val != a.prevValue {
			a.host.Notify(field.NotifyChange)
		}
	}

	if cfg.TrimOnBlur {
		a.host.SetText(strings.TrimSpace(a.host.Text()))
		a.host.Notify(field.NotifyChange)
	}

	if a.f.mode == ModeMask {
		if a.cancelCaret != nil {
			a.cancelCaret()
			a.cancelCaret = nil
		}
		res := a.buf.CheckVal(a.host.Text(), false)
		a.buf = res.Buffer
		a.host.SetText(res.Text)
		if res.Text != a.focusText {
			a.host.Notify(field.NotifyChange)
		}
	}
}

// HandleChange records the committed value so amount blur only reports
// real changes.
func (a *Attachment) HandleChange() {
	if a.detached {
		return
	}
	a.prevValue = a.host.Text()
}
