package keys

// Raw is a keypress as reported by a browser-style host: keyCode, which and
// the modifier flags.
type Raw struct {
	KeyCode int
	Which   int
	Shift   bool
	Ctrl    bool
	Alt     bool
	Meta    bool
}

func (r Raw) modifiers() Modifier {
	var m Modifier
	if r.Shift {
		m |= ModShift
	}
	if r.Ctrl {
		m |= ModCtrl
	}
	if r.Alt {
		m |= ModAlt
	}
	if r.Meta {
		m |= ModMeta
	}
	return m
}

var domNavigation = map[int]Direction{
	34: DirPageDown,
	35: DirEnd,
	36: DirHome,
	37: DirLeft,
	38: DirUp,
	39: DirRight,
	40: DirDown,
}

var domShortcuts = map[int]Shortcut{
	'a': ShortcutSelectAll,
	'c': ShortcutCopy,
	'v': ShortcutPaste,
	'x': ShortcutCut,
}

// ClassifyDOM maps a keypress to an Event.
//
// Navigation keys report a keyCode in 34..40 with a different (usually zero)
// which; when which equals keyCode the key is the printable rune sharing the
// code, e.g. '(' or '&'. keyCode 46 is the forward delete key only when which
// is zero, otherwise it is '.'.
func ClassifyDOM(raw Raw) Event {
	mods := raw.modifiers()

	if dir, ok := domNavigation[raw.KeyCode]; ok && !raw.Shift && raw.Which != raw.KeyCode {
		return Navigate(dir, mods)
	}

	switch raw.KeyCode {
	case 8:
		return Event{Kind: KindBackspace, Modifiers: mods}
	case 9:
		return Event{Kind: KindTab, Rune: '\t', Modifiers: mods}
	case 46:
		if raw.Which == 0 {
			return Event{Kind: KindDelete, Modifiers: mods}
		}
	}

	if raw.Ctrl || raw.Meta {
		if s, ok := domShortcuts[raw.Which]; ok {
			ev := Clipboard(s)
			ev.Modifiers = mods
			return ev
		}
	}

	switch {
	case raw.Which == 0:
		return Other(0, mods)
	case raw.Which == '\r' || raw.Which == '\n':
		return Event{Kind: KindEnter, Rune: rune(raw.Which), Modifiers: mods}
	case mods.Command() || raw.Which < 32:
		return Other(rune(raw.Which), mods)
	}
	return Event{Kind: KindPrintable, Rune: rune(raw.Which), Modifiers: mods &^ ModShift}
}
