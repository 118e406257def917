package keys

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyDOM(t *testing.T) {
	cases := []struct {
		name string
		raw  Raw
		want Event
	}{
		{name: "digit", raw: Raw{KeyCode: 53, Which: 53}, want: Printable('5')},
		{name: "left arrow", raw: Raw{KeyCode: 37}, want: Navigate(DirLeft, ModNone)},
		{name: "end", raw: Raw{KeyCode: 35}, want: Navigate(DirEnd, ModNone)},
		{name: "open paren shares arrow code", raw: Raw{KeyCode: 40, Which: 40, Shift: true}, want: Printable('(')},
		{name: "ampersand shares arrow code", raw: Raw{KeyCode: 38, Which: 38}, want: Printable('&')},
		{name: "backspace", raw: Raw{KeyCode: 8, Which: 8}, want: Backspace()},
		{name: "tab", raw: Raw{KeyCode: 9}, want: Tab()},
		{name: "forward delete", raw: Raw{KeyCode: 46}, want: Delete()},
		{name: "period shares delete code", raw: Raw{KeyCode: 46, Which: 46}, want: Printable('.')},
		{name: "select all", raw: Raw{Which: 'a', Ctrl: true}, want: Clipboard(ShortcutSelectAll)},
		{
			name: "paste with meta",
			raw:  Raw{Which: 'v', Meta: true},
			want: Event{Kind: KindClipboard, Shortcut: ShortcutPaste, Rune: 'v', Modifiers: ModMeta},
		},
		{name: "enter", raw: Raw{KeyCode: 13, Which: 13}, want: Enter('\r')},
		{name: "line feed", raw: Raw{Which: 10}, want: Enter('\n')},
		{name: "ctrl combination", raw: Raw{Which: 's', Ctrl: true}, want: Other('s', ModCtrl)},
		{name: "alt combination", raw: Raw{Which: 'f', Alt: true}, want: Other('f', ModAlt)},
		{name: "control rune", raw: Raw{Which: 27}, want: Other(27, ModNone)},
		{name: "no character", raw: Raw{KeyCode: 112}, want: Other(0, ModNone)},
		{name: "shifted letter", raw: Raw{Which: 'A', Shift: true}, want: Printable('A')},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDOM(tc.raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ClassifyDOM mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("55<BS><Del><Left><S-End><C-a><lt>x<Space><CR>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Event{
		Printable('5'),
		Printable('5'),
		Backspace(),
		Delete(),
		Navigate(DirLeft, ModNone),
		Navigate(DirEnd, ModShift),
		Clipboard(ShortcutSelectAll),
		Printable('<'),
		Printable('x'),
		Printable(' '),
		Enter('\r'),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse("12<BS"); !errors.Is(err, ErrUnterminated) {
		t.Fatalf("expected ErrUnterminated, got %v", err)
	}
	if _, err := Parse("<Nope>"); !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
	if _, err := Parse("<Q-a>"); !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript for unknown modifier, got %v", err)
	}
	if _, err := Parse("<>"); !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript for empty token, got %v", err)
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	events := []Event{
		Printable('7'),
		Printable('<'),
		Printable(' '),
		Backspace(),
		Delete(),
		Tab(),
		Enter('\r'),
		Enter('\n'),
		Navigate(DirHome, ModNone),
		Navigate(DirRight, ModShift),
		Clipboard(ShortcutCut),
		Clipboard(ShortcutPaste),
		Other('q', ModCtrl),
		Other(0, ModNone),
	}
	for _, ev := range events {
		parsed, err := Parse(ev.String())
		if err != nil {
			t.Fatalf("parse %q: %v", ev.String(), err)
		}
		if len(parsed) != 1 {
			t.Fatalf("parse %q produced %d events", ev.String(), len(parsed))
		}
		if diff := cmp.Diff(ev, parsed[0]); diff != "" {
			t.Fatalf("round trip %q (-want +got):\n%s", ev.String(), diff)
		}
	}
}

func TestEventCode(t *testing.T) {
	if got := Enter('\n').Code(); got != 10 {
		t.Fatalf("enter code = %d", got)
	}
	if got := Printable('0').Code(); got != 48 {
		t.Fatalf("digit code = %d", got)
	}
	if got := Backspace().Code(); got != 0 {
		t.Fatalf("backspace code = %d", got)
	}
}

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Fatalf("unexpected modifier set %b", m)
	}
	if m.Has(ModNone) {
		t.Fatalf("ModNone should never be reported as held")
	}
	if !m.Command() || ModShift.Command() {
		t.Fatalf("Command mismatch")
	}
}
