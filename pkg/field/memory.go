package field

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formatter/pkg/keys"
)

// MemoryOption configures a Memory host.
type MemoryOption func(*Memory)

// WithText sets the initial text and places the caret at its end.
func WithText(text string) MemoryOption {
	return func(m *Memory) {
		m.text = []rune(text)
		m.anchor, m.head = len(m.text), len(m.text)
	}
}

// WithDisabled marks the host as disabled.
func WithDisabled() MemoryOption {
	return func(m *Memory) { m.disabled = true }
}

// WithReadOnly marks the host as read-only.
func WithReadOnly() MemoryOption {
	return func(m *Memory) { m.readOnly = true }
}

// WithMultiline makes Enter insert a line break, as in a text area. Single
// line hosts ignore Enter.
func WithMultiline() MemoryOption {
	return func(m *Memory) { m.multiline = true }
}

// WithLoop shares an existing loop, for hosts that live on a common queue.
func WithLoop(loop *Loop) MemoryOption {
	return func(m *Memory) {
		if loop != nil {
			m.loop = loop
		}
	}
}

// WithObserver registers a callback receiving every notification together
// with the text at that moment.
func WithObserver(fn func(Notification, string)) MemoryOption {
	return func(m *Memory) { m.observer = fn }
}

type binding struct {
	id       uuid.UUID
	handlers Handlers
}

// Memory is an in-process Host. Driving methods (Key, Type, Paste, Drop,
// Focus, Blur) behave like a user acting on a focused text field: handlers
// run first and native editing applies to whatever they leave unconsumed.
// Ready loop tasks run after every driving call; delayed tasks wait for
// Loop().Advance or Loop().Settle.
type Memory struct {
	text      []rune
	anchor    int
	head      int
	disabled  bool
	readOnly  bool
	multiline bool
	focused   bool
	clipboard string
	loop      *Loop
	binding   *binding
	history   []Notification
	observer  func(Notification, string)
}

var _ Host = (*Memory)(nil)

// NewMemory returns an empty, editable host.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{loop: NewLoop()}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Text returns the current contents.
func (m *Memory) Text() string {
	return string(m.text)
}

// SetText replaces the contents, keeping the selection within bounds.
func (m *Memory) SetText(text string) {
	m.text = []rune(text)
	m.anchor = clampInt(m.anchor, 0, len(m.text))
	m.head = clampInt(m.head, 0, len(m.text))
}

// Selection returns the current selection.
func (m *Memory) Selection() Selection {
	return Selection{Start: m.anchor, End: m.head}.Clamp(len(m.text))
}

// SetSelection moves the selection. Out of range bounds are clamped.
func (m *Memory) SetSelection(sel Selection) {
	sel = sel.Clamp(len(m.text))
	m.anchor, m.head = sel.Start, sel.End
}

// Bind implements Host.
func (m *Memory) Bind(h Handlers) func() {
	m.release()
	b := &binding{id: uuid.New(), handlers: h}
	m.binding = b
	return func() {
		if m.binding != nil && m.binding.id == b.id {
			m.release()
		}
	}
}

func (m *Memory) release() {
	b := m.binding
	if b == nil {
		return
	}
	m.binding = nil
	if b.handlers.Released != nil {
		b.handlers.Released()
	}
}

// Binding returns the identifier of the active binding.
func (m *Memory) Binding() (uuid.UUID, bool) {
	if m.binding == nil {
		return uuid.Nil, false
	}
	return m.binding.id, true
}

// Editable implements Host.
func (m *Memory) Editable() bool {
	return !m.disabled && !m.readOnly
}

// Notify implements Host. Change notifications are forwarded to the bound
// Change handler.
func (m *Memory) Notify(n Notification) {
	m.history = append(m.history, n)
	if m.observer != nil {
		m.observer(n, m.Text())
	}
	if n == NotifyChange {
		if h := m.handlers(); h.Change != nil {
			h.Change()
		}
	}
}

// Loop implements Host.
func (m *Memory) Loop() *Loop {
	return m.loop
}

// Notifications returns every notification raised so far, oldest first.
func (m *Memory) Notifications() []Notification {
	return append([]Notification(nil), m.history...)
}

// Count returns how many notifications of kind n were raised.
func (m *Memory) Count(n Notification) int {
	count := 0
	for _, got := range m.history {
		if got == n {
			count++
		}
	}
	return count
}

// Focused reports whether the host currently has focus.
func (m *Memory) Focused() bool {
	return m.focused
}

// Clipboard returns the host's clipboard contents.
func (m *Memory) Clipboard() string {
	return m.clipboard
}

// UnformattedValue returns the text passed through the bound Unformat
// handler, or the raw text when none is bound.
func (m *Memory) UnformattedValue() string {
	if h := m.handlers(); h.Unformat != nil {
		return h.Unformat(m.Text())
	}
	return m.Text()
}

func (m *Memory) handlers() Handlers {
	if m.binding == nil {
		return Handlers{}
	}
	return m.binding.handlers
}

// Focus gives the host focus.
func (m *Memory) Focus() {
	if m.focused {
		return
	}
	m.focused = true
	if h := m.handlers(); h.Focus != nil {
		h.Focus()
	}
	m.loop.RunReady()
}

// Blur removes focus from the host.
func (m *Memory) Blur() {
	if !m.focused {
		return
	}
	m.focused = false
	if h := m.handlers(); h.Blur != nil {
		h.Blur()
	}
	m.loop.RunReady()
}

// Key delivers a single key event.
func (m *Memory) Key(ev keys.Event) {
	if h := m.handlers(); h.Key != nil && h.Key(ev) {
		m.loop.RunReady()
		return
	}
	m.native(ev)
	m.loop.RunReady()
}

// Keys delivers events in order.
func (m *Memory) Keys(events ...keys.Event) {
	for _, ev := range events {
		m.Key(ev)
	}
}

// Type parses a key script (see keys.Parse) and delivers its events.
func (m *Memory) Type(script string) error {
	events, err := keys.Parse(script)
	if err != nil {
		return fmt.Errorf("field: type: %w", err)
	}
	m.Keys(events...)
	return nil
}

// Paste inserts text at the selection the way a clipboard paste would.
func (m *Memory) Paste(text string) {
	if h := m.handlers(); h.Paste != nil {
		h.Paste()
	}
	if m.Editable() {
		m.replaceSelection([]rune(text))
		m.Notify(NotifyInput)
	}
	m.loop.RunReady()
}

// Drop inserts dragged data of the given media type at the selection.
func (m *Memory) Drop(mediaType, data string) {
	text := data
	if h := m.handlers(); h.Drop != nil {
		text = h.Drop(mediaType, data)
	}
	if m.Editable() {
		m.replaceSelection([]rune(text))
		m.Notify(NotifyInput)
	}
	m.loop.RunReady()
}

func (m *Memory) native(ev keys.Event) {
	switch ev.Kind {
	case keys.KindNavigation:
		m.navigate(ev.Direction, ev.Modifiers.Has(keys.ModShift))
	case keys.KindClipboard:
		m.shortcut(ev.Shortcut)
	case keys.KindTab:
		m.Blur()
	case keys.KindPrintable, keys.KindEnter:
		if !m.Editable() || ev.Kind == keys.KindEnter && !m.multiline {
			return
		}
		m.replaceSelection([]rune{ev.Rune})
		m.Notify(NotifyInput)
	case keys.KindBackspace, keys.KindDelete:
		if !m.Editable() {
			return
		}
		sel := m.Selection()
		if sel.Empty() {
			if ev.Kind == keys.KindBackspace {
				if sel.Start == 0 {
					return
				}
				sel.Start--
			} else {
				if sel.End >= len(m.text) {
					return
				}
				sel.End++
			}
			m.SetSelection(sel)
		}
		m.replaceSelection(nil)
		m.Notify(NotifyInput)
	}
}

func (m *Memory) navigate(dir keys.Direction, extend bool) {
	n := len(m.text)
	sel := m.Selection()
	head := m.head
	switch dir {
	case keys.DirLeft:
		if !extend && !sel.Empty() {
			head = sel.Start
		} else {
			head--
		}
	case keys.DirRight:
		if !extend && !sel.Empty() {
			head = sel.End
		} else {
			head++
		}
	case keys.DirHome, keys.DirUp, keys.DirPageUp:
		head = 0
	case keys.DirEnd, keys.DirDown, keys.DirPageDown:
		head = n
	default:
		return
	}
	head = clampInt(head, 0, n)
	if !extend {
		m.anchor = head
	}
	m.head = head
}

func (m *Memory) shortcut(s keys.Shortcut) {
	sel := m.Selection()
	switch s {
	case keys.ShortcutSelectAll:
		m.SetSelection(Selection{Start: 0, End: len(m.text)})
	case keys.ShortcutCopy:
		m.clipboard = string(m.text[sel.Start:sel.End])
	case keys.ShortcutCut:
		m.clipboard = string(m.text[sel.Start:sel.End])
		if m.Editable() && !sel.Empty() {
			m.replaceSelection(nil)
			m.Notify(NotifyInput)
		}
	case keys.ShortcutPaste:
		m.Paste(m.clipboard)
	}
}

func (m *Memory) replaceSelection(ins []rune) {
	sel := m.Selection()
	out := make([]rune, 0, len(m.text)-sel.Len()+len(ins))
	out = append(out, m.text[:sel.Start]...)
	out = append(out, ins...)
	out = append(out, m.text[sel.End:]...)
	m.text = out
	pos := sel.Start + len(ins)
	m.anchor, m.head = pos, pos
}
