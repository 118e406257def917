package keys

import (
	"fmt"
	"strings"
)

var scriptNames = map[string]Event{
	"bs":        Backspace(),
	"backspace": Backspace(),
	"del":       Delete(),
	"delete":    Delete(),
	"tab":       Tab(),
	"cr":        Enter('\r'),
	"enter":     Enter('\r'),
	"return":    Enter('\r'),
	"nl":        Enter('\n'),
	"space":     Printable(' '),
	"lt":        Printable('<'),
	"gt":        Printable('>'),
	"left":      Navigate(DirLeft, ModNone),
	"right":     Navigate(DirRight, ModNone),
	"up":        Navigate(DirUp, ModNone),
	"down":      Navigate(DirDown, ModNone),
	"home":      Navigate(DirHome, ModNone),
	"end":       Navigate(DirEnd, ModNone),
	"pageup":    Navigate(DirPageUp, ModNone),
	"pgup":      Navigate(DirPageUp, ModNone),
	"pagedown":  Navigate(DirPageDown, ModNone),
	"pgdn":      Navigate(DirPageDown, ModNone),
	"other":     Other(0, ModNone),
}

// Parse turns a key script into events. Plain runes are typed as-is; special
// keys use angle bracket tokens with optional modifier prefixes:
//
//	5551234567<BS><Del><Left><S-End><C-a>
//
// Recognised names are BS, Del, Tab, CR (Enter, Return), NL, Space, lt, gt,
// Left, Right, Up, Down, Home, End, PageUp, PageDown and Other. Modifier
// prefixes are C- (Ctrl), A- (Alt), M- or D- (Meta) and S- (Shift). Ctrl or
// Meta with a, c, x or v yields the matching clipboard shortcut.
func Parse(script string) ([]Event, error) {
	runes := []rune(script)
	events := make([]Event, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '<':
			end := i + 1
			for end < len(runes) && runes[end] != '>' {
				end++
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("%w at offset %d", ErrUnterminated, i)
			}
			ev, err := ParseToken(string(runes[i+1 : end]))
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			events = append(events, ev)
			i = end
		case '\n', '\r':
			events = append(events, Enter(r))
		case '\t':
			events = append(events, Tab())
		default:
			events = append(events, Printable(r))
		}
	}
	return events, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package level fixtures.
func MustParse(script string) []Event {
	events, err := Parse(script)
	if err != nil {
		panic(err)
	}
	return events
}

// ParseToken parses the inside of a single angle bracket token, for example
// "BS", "C-a" or "S-Left".
func ParseToken(token string) (Event, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Event{}, fmt.Errorf("%w: empty token", ErrInvalidScript)
	}

	var mods Modifier
	for len(token) > 2 && token[1] == '-' {
		switch token[0] {
		case 'C', 'c':
			mods |= ModCtrl
		case 'A', 'a':
			mods |= ModAlt
		case 'M', 'm', 'D', 'd':
			mods |= ModMeta
		case 'S', 's':
			mods |= ModShift
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidScript, token[:1])
		}
		token = token[2:]
	}

	if ev, ok := scriptNames[strings.ToLower(token)]; ok {
		if ev.Kind == KindNavigation {
			return Navigate(ev.Direction, mods), nil
		}
		if mods == ModNone {
			return ev, nil
		}
		ev.Modifiers = mods
		if ev.Kind == KindPrintable && mods.Command() {
			ev.Kind = KindOther
		}
		return ev, nil
	}

	runes := []rune(token)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidScript, token)
	}
	r := runes[0]
	if mods&(ModCtrl|ModMeta) != 0 {
		for s, sr := range shortcutRunes {
			if sr == r || sr == r+('a'-'A') {
				ev := Clipboard(s)
				ev.Modifiers = mods
				return ev, nil
			}
		}
	}
	if mods.Command() {
		return Other(r, mods), nil
	}
	return Printable(r), nil
}
