package format

import (
	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/mask"
)

// Attachment is a Formatter bound to one field. It owns the field's mask
// buffer and the values remembered between events.
type Attachment struct {
	f    *Formatter
	host field.Host
	buf  mask.Buffer

	// focusText is the text when the field last gained focus.
	focusText string
	// prevValue is the text at the last change notification.
	prevValue string

	cancelCaret func()
	pending     []func()
	release     func()
	detached    bool
}

// Attach binds the formatter to host. A formatter already attached to host
// is released first. Disabled and read-only hosts get no key handling.
func (f *Formatter) Attach(host field.Host) (*Attachment, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	a := &Attachment{f: f, host: host, focusText: host.Text()}

	h := field.Handlers{
		Paste:    a.HandlePaste,
		Drop:     a.HandleDrop,
		Change:   a.HandleChange,
		Unformat: f.Unformat,
		Released: a.released,
	}
	if f.mode == ModeMask {
		a.buf = mask.NewBuffer(f.tpl)
		h.Focus = a.HandleFocus
	}
	if f.hasBlur() {
		h.Blur = a.HandleBlur
	}
	if host.Editable() {
		h.Key = a.HandleKey
	}
	a.release = host.Bind(h)

	if f.mode == ModeMask {
		res := a.buf.CheckVal(host.Text(), false)
		a.buf = res.Buffer
		host.SetText(res.Text)
	}
	return a, nil
}

// Formatter returns the compiled formatter behind the attachment.
func (a *Attachment) Formatter() *Formatter {
	return a.f
}

// Buffer returns the current mask buffer. It is the zero Buffer outside mask
// mode.
func (a *Attachment) Buffer() mask.Buffer {
	return a.buf
}

// UnformattedValue returns the field text without presentation.
func (a *Attachment) UnformattedValue() string {
	return a.f.Unformat(a.host.Text())
}

// Detached reports whether the attachment was released.
func (a *Attachment) Detached() bool {
	return a.detached
}

// Detach unbinds every handler and cancels deferred work. It is safe to call
// more than once.
func (a *Attachment) Detach() {
	if a.release != nil {
		a.release()
	}
	a.released()
}

func (a *Attachment) released() {
	if a.detached {
		return
	}
	a.detached = true
	if a.cancelCaret != nil {
		a.cancelCaret()
		a.cancelCaret = nil
	}
	for _, cancel := range a.pending {
		cancel()
	}
	a.pending = nil
}

// later runs fn as a zero delay task on the host loop, unless the attachment
// is released first.
func (a *Attachment) later(fn func()) {
	cancel := a.host.Loop().After(0, func() {
		if !a.detached {
			fn()
		}
	})
	a.pending = append(a.pending, cancel)
}

// commit writes the mask buffer to the field and moves the caret.
func (a *Attachment) commit(buf mask.Buffer, caret int) {
	a.buf = buf
	a.host.SetText(buf.String())
	a.host.SetSelection(field.Caret(caret))
	a.host.Notify(field.NotifyInput)
}

func (a *Attachment) complete() {
	if a.f.cfg.OnComplete != nil {
		a.f.cfg.OnComplete(a.host)
	}
}
