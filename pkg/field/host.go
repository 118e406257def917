package field

import "github.com/goliatone/go-formatter/pkg/keys"

// Adapter is the text field as seen by edit logic.
type Adapter interface {
	Text() string
	SetText(string)
	Selection() Selection
	SetSelection(Selection)
}

// Notification is an event a formatter raises on its host after changing
// the text programmatically.
type Notification uint8

const (
	// NotifyInput signals that the text changed as the result of an edit.
	NotifyInput Notification = iota + 1
	// NotifyChange signals a committed value change, as a field fires when
	// it loses focus.
	NotifyChange
)

func (n Notification) String() string {
	switch n {
	case NotifyInput:
		return "input"
	case NotifyChange:
		return "change"
	default:
		return "unknown"
	}
}

// Handlers is the set of callbacks a formatter installs on a host. Nil
// members are skipped.
type Handlers struct {
	// Key receives every key event. Returning true consumes the event and
	// suppresses the host's native editing.
	Key func(keys.Event) bool
	// Paste runs before the host inserts pasted text. Reconciliation is
	// expected to be scheduled on the host loop.
	Paste func()
	// Drop runs before the host inserts dropped data and returns the text
	// to insert.
	Drop func(mediaType, data string) string
	Focus func()
	Blur  func()
	// Change observes change notifications, whether raised by the formatter
	// or by the host.
	Change func()
	// Unformat converts the displayed text into the value reported by
	// UnformattedValue.
	Unformat func(string) string
	// Released runs once when the binding is released, either explicitly or
	// because another binding replaced it.
	Released func()
}

// Host is a field a formatter can attach to.
type Host interface {
	Adapter
	// Bind installs handlers, first releasing any binding already present.
	// The returned function releases this binding; calling it after the
	// binding was replaced is a no-op.
	Bind(Handlers) (release func())
	// Editable reports whether the field accepts keyboard input. Disabled
	// and read-only fields are not editable.
	Editable() bool
	Notify(Notification)
	Loop() *Loop
}
