package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formatter/pkg/keys"
)

type action uint8

const (
	actionNone action = iota
	actionEdit
	actionPaste
	actionSubmit
	actionFinish
	actionAbort
)

type translated struct {
	action action
	events []keys.Event
	paste  string
}

var navigation = map[tea.KeyType]keys.Event{
	tea.KeyLeft:       keys.Navigate(keys.DirLeft, keys.ModNone),
	tea.KeyRight:      keys.Navigate(keys.DirRight, keys.ModNone),
	tea.KeyUp:         keys.Navigate(keys.DirUp, keys.ModNone),
	tea.KeyDown:       keys.Navigate(keys.DirDown, keys.ModNone),
	tea.KeyHome:       keys.Navigate(keys.DirHome, keys.ModNone),
	tea.KeyEnd:        keys.Navigate(keys.DirEnd, keys.ModNone),
	tea.KeyPgUp:       keys.Navigate(keys.DirPageUp, keys.ModNone),
	tea.KeyPgDown:     keys.Navigate(keys.DirPageDown, keys.ModNone),
	tea.KeyShiftLeft:  keys.Navigate(keys.DirLeft, keys.ModShift),
	tea.KeyShiftRight: keys.Navigate(keys.DirRight, keys.ModShift),
	tea.KeyShiftHome:  keys.Navigate(keys.DirHome, keys.ModShift),
	tea.KeyShiftEnd:   keys.Navigate(keys.DirEnd, keys.ModShift),
	tea.KeyCtrlA:      keys.Clipboard(keys.ShortcutSelectAll),
	tea.KeyCtrlX:      keys.Clipboard(keys.ShortcutCut),
	tea.KeyCtrlV:      keys.Clipboard(keys.ShortcutPaste),
}

// translate maps a terminal key press onto field key events or a renderer
// action.
func translate(msg tea.KeyMsg) translated {
	if msg.Paste {
		return translated{action: actionPaste, paste: string(msg.Runes)}
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		return translated{action: actionAbort}
	case tea.KeyEsc:
		return translated{action: actionFinish}
	case tea.KeyEnter, tea.KeyTab:
		return translated{action: actionSubmit}
	case tea.KeyBackspace:
		return edit(keys.Backspace())
	case tea.KeyDelete:
		return edit(keys.Delete())
	case tea.KeySpace:
		return edit(keys.Printable(' '))
	case tea.KeyRunes:
		events := make([]keys.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if msg.Alt {
				events = append(events, keys.Other(r, keys.ModAlt))
				continue
			}
			events = append(events, keys.Printable(r))
		}
		return translated{action: actionEdit, events: events}
	}
	if ev, ok := navigation[msg.Type]; ok {
		return edit(ev)
	}
	return translated{}
}

func edit(ev keys.Event) translated {
	return translated{action: actionEdit, events: []keys.Event{ev}}
}
