package keys

import (
	"strings"
	"unicode"
)

// Kind identifies the class of a key event.
type Kind uint8

const (
	// KindOther covers modified combinations, control runes and keys the
	// formatter has no opinion on. Hosts apply their default behaviour.
	KindOther Kind = iota
	KindPrintable
	KindBackspace
	KindDelete
	KindTab
	KindEnter
	KindNavigation
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindPrintable:
		return "Printable"
	case KindBackspace:
		return "Backspace"
	case KindDelete:
		return "Delete"
	case KindTab:
		return "Tab"
	case KindEnter:
		return "Enter"
	case KindNavigation:
		return "Navigation"
	case KindClipboard:
		return "Clipboard"
	default:
		return "Other"
	}
}

// Direction is the movement requested by a navigation event.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
	DirPageUp
	DirPageDown
)

var directionNames = map[Direction]string{
	DirLeft:     "Left",
	DirRight:    "Right",
	DirUp:       "Up",
	DirDown:     "Down",
	DirHome:     "Home",
	DirEnd:      "End",
	DirPageUp:   "PageUp",
	DirPageDown: "PageDown",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "None"
}

// Shortcut is the clipboard or selection command of a KindClipboard event.
type Shortcut uint8

const (
	ShortcutNone Shortcut = iota
	ShortcutSelectAll
	ShortcutCopy
	ShortcutCut
	ShortcutPaste
)

var shortcutRunes = map[Shortcut]rune{
	ShortcutSelectAll: 'a',
	ShortcutCopy:      'c',
	ShortcutCut:       'x',
	ShortcutPaste:     'v',
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains every bit of mod.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// Command reports whether a command modifier (Ctrl, Alt or Meta) is held.
func (m Modifier) Command() bool {
	return m&(ModCtrl|ModAlt|ModMeta) != 0
}

// Event is a classified key press.
type Event struct {
	Kind      Kind
	Rune      rune
	Direction Direction
	Shortcut  Shortcut
	Modifiers Modifier
}

// Printable returns the event for typing r.
func Printable(r rune) Event {
	return Event{Kind: KindPrintable, Rune: r}
}

// Backspace returns a backward delete event.
func Backspace() Event { return Event{Kind: KindBackspace} }

// Delete returns a forward delete event.
func Delete() Event { return Event{Kind: KindDelete} }

// Tab returns a focus traversal event.
func Tab() Event { return Event{Kind: KindTab, Rune: '\t'} }

// Enter returns a line break event carrying r ('\r' or '\n').
func Enter(r rune) Event { return Event{Kind: KindEnter, Rune: r} }

// Navigate returns a caret movement event. With ModShift the host extends
// the selection instead of collapsing it.
func Navigate(d Direction, mods Modifier) Event {
	return Event{Kind: KindNavigation, Direction: d, Modifiers: mods}
}

// Clipboard returns a clipboard or select-all shortcut event.
func Clipboard(s Shortcut) Event {
	return Event{Kind: KindClipboard, Shortcut: s, Rune: shortcutRunes[s], Modifiers: ModCtrl}
}

// Other returns a pass-through event.
func Other(r rune, mods Modifier) Event {
	return Event{Kind: KindOther, Rune: r, Modifiers: mods}
}

// Code returns the character code carried by the event, or 0. Allow and deny
// lists are expressed in these codes.
func (e Event) Code() int {
	switch e.Kind {
	case KindPrintable, KindEnter, KindTab:
		return int(e.Rune)
	}
	return 0
}

// String renders the event in key script notation, so that Parse(e.String())
// yields e back.
func (e Event) String() string {
	switch e.Kind {
	case KindPrintable:
		switch e.Rune {
		case '<':
			return "<lt>"
		case ' ':
			return "<Space>"
		}
		if unicode.IsPrint(e.Rune) {
			return string(e.Rune)
		}
		return "<Other>"
	case KindBackspace:
		return "<BS>"
	case KindDelete:
		return "<Del>"
	case KindTab:
		return "<Tab>"
	case KindEnter:
		if e.Rune == '\n' {
			return "<NL>"
		}
		return "<CR>"
	case KindNavigation:
		return "<" + modifierPrefix(e.Modifiers) + e.Direction.String() + ">"
	case KindClipboard:
		return "<C-" + string(shortcutRunes[e.Shortcut]) + ">"
	default:
		if e.Rune != 0 && e.Modifiers != ModNone {
			return "<" + modifierPrefix(e.Modifiers) + string(e.Rune) + ">"
		}
		return "<Other>"
	}
}

func modifierPrefix(m Modifier) string {
	var b strings.Builder
	if m.Has(ModCtrl) {
		b.WriteString("C-")
	}
	if m.Has(ModAlt) {
		b.WriteString("A-")
	}
	if m.Has(ModMeta) {
		b.WriteString("M-")
	}
	if m.Has(ModShift) {
		b.WriteString("S-")
	}
	return b.String()
}
