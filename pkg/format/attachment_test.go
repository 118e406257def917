package format

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/keys"
)

func attach(t *testing.T, f *Formatter, host *field.Memory) *Attachment {
	t.Helper()
	att, err := f.Attach(host)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	return att
}

func focusAndSettle(t *testing.T, host *field.Memory) {
	t.Helper()
	host.Focus()
	if _, err := host.Loop().Settle(); err != nil {
		t.Fatalf("settle: %v", err)
	}
}

func typeScript(t *testing.T, host *field.Memory, script string) {
	t.Helper()
	if err := host.Type(script); err != nil {
		t.Fatalf("type %q: %v", script, err)
	}
}

func usPhone(t *testing.T, opts ...Option) *Formatter {
	t.Helper()
	f, err := Compile(Config{Pattern: "(999) 999-9999"}, opts...)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return f
}

func TestScenario_TypingFillsPhone(t *testing.T) {
	completions := 0
	f := usPhone(t, WithOnComplete(func(field.Adapter) { completions++ }))
	host := field.NewMemory()
	attach(t, f, host)

	focusAndSettle(t, host)
	if host.Text() != "(___) ___-____" {
		t.Fatalf("focused text = %q", host.Text())
	}
	if diff := cmp.Diff(field.Caret(1), host.Selection()); diff != "" {
		t.Fatalf("focused caret mismatch (-want +got):\n%s", diff)
	}

	typeScript(t, host, "5551234567")
	if host.Text() != "(555) 123-4567" {
		t.Fatalf("text = %q", host.Text())
	}
	if diff := cmp.Diff(field.Caret(14), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}

	// Typing into a full buffer is consumed without effect.
	typeScript(t, host, "9")
	if host.Text() != "(555) 123-4567" || completions != 1 {
		t.Fatalf("full buffer changed: %q, completions %d", host.Text(), completions)
	}
}

func TestScenario_BackspaceCompactsPhone(t *testing.T) {
	host := field.NewMemory(field.WithText("(555) 123-4567"))
	attach(t, usPhone(t), host)
	focusAndSettle(t, host)

	host.SetSelection(field.Caret(2))
	typeScript(t, host, "<BS>")
	if host.Text() != "(551) 234-567_" {
		t.Fatalf("text = %q", host.Text())
	}
	if diff := cmp.Diff(field.Caret(1), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_AmountBlur(t *testing.T) {
	f, err := New(TypeAmount)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	host := field.NewMemory(field.WithText("1234567"))
	att := attach(t, f, host)

	host.Focus()
	host.Blur()
	if host.Text() != "1 234 567.00" {
		t.Fatalf("text = %q", host.Text())
	}
	if got := att.UnformattedValue(); got != "1234567.00" {
		t.Fatalf("unformatted = %q", got)
	}
	if got := host.UnformattedValue(); got != "1234567.00" {
		t.Fatalf("host unformatted = %q", got)
	}
	if host.Count(field.NotifyChange) != 1 {
		t.Fatalf("change notifications = %d, want 1", host.Count(field.NotifyChange))
	}

	host.Focus()
	host.Blur()
	if host.Count(field.NotifyChange) != 1 {
		t.Fatalf("unchanged value notified again")
	}
}

func TestScenario_PasteIntoMask(t *testing.T) {
	completions := 0
	f, err := Compile(Config{Pattern: "999-999", OnComplete: func(field.Adapter) { completions++ }})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	host := field.NewMemory()
	att := attach(t, f, host)

	host.Paste("abc123def456")
	if host.Text() != "123-456" {
		t.Fatalf("text = %q", host.Text())
	}
	if got := att.Buffer().String(); got != "123-456" {
		t.Fatalf("buffer = %q", got)
	}
	if diff := cmp.Diff(field.Caret(7), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}
	if completions != 1 {
		t.Fatalf("completions = %d", completions)
	}
}

func TestScenario_IncompletePasteClears(t *testing.T) {
	f, err := Compile(Config{Pattern: "9999"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	host := field.NewMemory()
	att := attach(t, f, host)

	host.Paste("12")
	if host.Text() != "____" {
		t.Fatalf("text = %q", host.Text())
	}
	if !att.Buffer().Empty() {
		t.Fatalf("buffer not cleared: %q", att.Buffer().String())
	}
	if diff := cmp.Diff(field.Caret(0), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}
}

func TestMask_InitialResync(t *testing.T) {
	host := field.NewMemory(field.WithText("5551234567"))
	att := attach(t, usPhone(t), host)
	if host.Text() != "(555) 123-4567" {
		t.Fatalf("text = %q", host.Text())
	}
	if !att.Buffer().Filled() {
		t.Fatalf("buffer should be filled")
	}
}

func TestMask_BlurClearsIncompleteValue(t *testing.T) {
	host := field.NewMemory()
	attach(t, usPhone(t), host)
	focusAndSettle(t, host)

	typeScript(t, host, "555")
	if host.Text() != "(555) ___-____" {
		t.Fatalf("text = %q", host.Text())
	}
	host.Blur()
	if host.Text() != "" {
		t.Fatalf("text after blur = %q", host.Text())
	}
	if host.Count(field.NotifyChange) != 0 {
		t.Fatalf("empty to empty should not notify change")
	}
}

func TestMask_BlurNotifiesChangedValue(t *testing.T) {
	host := field.NewMemory()
	attach(t, usPhone(t), host)
	focusAndSettle(t, host)
	typeScript(t, host, "5551234567")
	host.Blur()

	if host.Text() != "(555) 123-4567" {
		t.Fatalf("text = %q", host.Text())
	}
	if host.Count(field.NotifyChange) != 1 {
		t.Fatalf("change notifications = %d", host.Count(field.NotifyChange))
	}

	focusAndSettle(t, host)
	host.Blur()
	if host.Count(field.NotifyChange) != 1 {
		t.Fatalf("unchanged value notified again")
	}
}

func TestMask_FocusSelectsFullValue(t *testing.T) {
	host := field.NewMemory(field.WithText("(555) 123-4567"))
	attach(t, usPhone(t), host)
	host.SetSelection(field.Caret(3))

	host.Focus()
	host.Loop().Advance(5 * time.Millisecond)
	if diff := cmp.Diff(field.Caret(3), host.Selection()); diff != "" {
		t.Fatalf("caret moved before the delay (-want +got):\n%s", diff)
	}
	host.Loop().Advance(5 * time.Millisecond)
	if diff := cmp.Diff(field.Selection{Start: 0, End: 14}, host.Selection()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestMask_BlurCancelsPendingFocusRender(t *testing.T) {
	host := field.NewMemory()
	attach(t, usPhone(t), host)

	host.Focus()
	host.Blur()
	if _, err := host.Loop().Settle(); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if host.Text() != "" {
		t.Fatalf("placeholders rendered after blur: %q", host.Text())
	}
}

func TestMask_RepeatedFocusKeepsOneRender(t *testing.T) {
	host := field.NewMemory()
	att := attach(t, usPhone(t), host)

	att.HandleFocus()
	att.HandleFocus()
	if got := host.Loop().Pending(); got != 1 {
		t.Fatalf("pending tasks = %d, want 1", got)
	}
}

func TestMask_SelectionReplaceAndNavigation(t *testing.T) {
	host := field.NewMemory()
	attach(t, usPhone(t), host)
	focusAndSettle(t, host)
	typeScript(t, host, "5551234567")

	host.SetSelection(field.Selection{Start: 1, End: 4})
	typeScript(t, host, "8")
	if host.Text() != "(812) 345-67__" {
		t.Fatalf("text = %q", host.Text())
	}

	typeScript(t, host, "<End><Left>")
	if diff := cmp.Diff(field.Caret(13), host.Selection()); diff != "" {
		t.Fatalf("navigation should be native (-want +got):\n%s", diff)
	}
}

func TestMask_RejectedInputIsLogged(t *testing.T) {
	var lines []string
	f := usPhone(t, WithLogger(func(format string, args ...any) {
		lines = append(lines, format)
	}))
	host := field.NewMemory()
	attach(t, f, host)
	focusAndSettle(t, host)

	typeScript(t, host, "x")
	if host.Text() != "(___) ___-____" {
		t.Fatalf("text = %q", host.Text())
	}
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1", len(lines))
	}
}

func TestMask_DropSanitisesMarkup(t *testing.T) {
	f, err := Compile(Config{Pattern: "999-999"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	host := field.NewMemory()
	attach(t, f, host)

	host.Drop("text/html", "<p><b>123</b>456</p>")
	if host.Text() != "123-456" {
		t.Fatalf("text = %q", host.Text())
	}
}

func TestAmount_Typing(t *testing.T) {
	f, _ := New(TypeAmount)
	host := field.NewMemory()
	attach(t, f, host)

	typeScript(t, host, "1234567")
	if host.Text() != "1 234 567" {
		t.Fatalf("text = %q", host.Text())
	}
	if diff := cmp.Diff(field.Caret(9), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}

	// Insert in the middle, crossing a grouping boundary.
	host.SetSelection(field.Caret(3))
	typeScript(t, host, "9")
	if host.Text() != "12 934 567" {
		t.Fatalf("text = %q", host.Text())
	}
	if diff := cmp.Diff(field.Caret(4), host.Selection()); diff != "" {
		t.Fatalf("caret mismatch (-want +got):\n%s", diff)
	}

	typeScript(t, host, "<End>.5x55")
	if host.Text() != "12 934 567.55" {
		t.Fatalf("text = %q", host.Text())
	}
}

func TestAmount_MaxLength(t *testing.T) {
	f, _ := New(TypeAmount)
	host := field.NewMemory()
	attach(t, f, host)

	typeScript(t, host, "12345678901")
	if host.Text() != "1 234 567 890" {
		t.Fatalf("text = %q", host.Text())
	}
}

func TestAmount_Deletion(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		sel    field.Selection
		script string
		want   string
		caret  int
	}{
		{name: "backspace digit", text: "1 234", sel: field.Caret(5), script: "<BS>", want: "123", caret: 3},
		{name: "backspace after separator", text: "1 234 567", sel: field.Caret(2), script: "<BS>", want: "234 567", caret: 0},
		{name: "delete before separator", text: "1 234", sel: field.Caret(1), script: "<Del>", want: "134", caret: 1},
		{name: "selection removes exactly the range", text: "1 234 567", sel: field.Selection{Start: 2, End: 5}, script: "<BS>", want: "1 567", caret: 1},
		{name: "last digit falls back to native", text: "5", sel: field.Caret(1), script: "<BS>", want: "", caret: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := New(TypeAmount)
			host := field.NewMemory(field.WithText(tc.text))
			attach(t, f, host)
			host.SetSelection(tc.sel)
			typeScript(t, host, tc.script)
			if host.Text() != tc.want {
				t.Fatalf("text = %q, want %q", host.Text(), tc.want)
			}
			if diff := cmp.Diff(field.Caret(tc.caret), host.Selection()); diff != "" {
				t.Fatalf("caret mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAmount_InvalidPasteReverts(t *testing.T) {
	f, _ := New(TypeAmount)
	host := field.NewMemory(field.WithText("1 234"))
	attach(t, f, host)

	host.Paste("abc")
	if host.Text() != "1 234" {
		t.Fatalf("text = %q", host.Text())
	}
	host.Paste("567")
	if host.Text() != "1 234 567" {
		t.Fatalf("text = %q", host.Text())
	}
}

func TestAmount_BlurWithoutNumber(t *testing.T) {
	f, _ := New(TypeAmount)
	host := field.NewMemory(field.WithText("."))
	attach(t, f, host)
	host.Focus()
	host.Blur()
	if host.Text() != "" {
		t.Fatalf("text = %q", host.Text())
	}
	if host.Count(field.NotifyChange) != 0 {
		t.Fatalf("empty value should match the empty previous value")
	}
}

func TestNumber_FiltersCharacters(t *testing.T) {
	f, _ := New(TypeNumber)
	host := field.NewMemory()
	attach(t, f, host)

	typeScript(t, host, "12a3-4<CR>")
	if host.Text() != "1234" {
		t.Fatalf("text = %q", host.Text())
	}
	typeScript(t, host, "<BS><Home><Del>")
	if host.Text() != "23" {
		t.Fatalf("native deletion should apply, text = %q", host.Text())
	}
	host.Paste("x")
	if host.Text() != "23" {
		t.Fatalf("invalid paste should revert, text = %q", host.Text())
	}
}

func TestOneline_FiltersLineBreaks(t *testing.T) {
	f, _ := New(TypeOneline)
	host := field.NewMemory(field.WithMultiline())
	attach(t, f, host)

	host.Focus()
	typeScript(t, host, "  ab<CR>c<NL>  ")
	if host.Text() != "  abc  " {
		t.Fatalf("text = %q", host.Text())
	}
	host.Paste("x\ny")
	if host.Text() != "  abc  xy" {
		t.Fatalf("text = %q", host.Text())
	}
	host.Blur()
	if host.Text() != "abc  xy" {
		t.Fatalf("text = %q", host.Text())
	}
	if host.Count(field.NotifyChange) != 1 {
		t.Fatalf("change notifications = %d", host.Count(field.NotifyChange))
	}
}

func TestOneline_MaxLength(t *testing.T) {
	f, _ := New(TypeOneline, WithMaxLength(3))
	host := field.NewMemory(field.WithText("abc"))
	attach(t, f, host)

	typeScript(t, host, "d")
	if host.Text() != "abc" {
		t.Fatalf("text = %q", host.Text())
	}
	host.SetSelection(field.Selection{Start: 0, End: 1})
	typeScript(t, host, "z")
	if host.Text() != "zbc" {
		t.Fatalf("selection replacement should be allowed, text = %q", host.Text())
	}
}

type recordingHost struct {
	*field.Memory
	handlers field.Handlers
}

func (h *recordingHost) Bind(handlers field.Handlers) func() {
	h.handlers = handlers
	return h.Memory.Bind(handlers)
}

func TestAttach_ReadOnlyHostHasNoKeyHandler(t *testing.T) {
	host := &recordingHost{Memory: field.NewMemory(field.WithReadOnly())}
	if _, err := usPhone(t).Attach(host); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if host.handlers.Key != nil {
		t.Fatalf("read-only host received a key handler")
	}
	if host.handlers.Paste == nil || host.handlers.Focus == nil || host.handlers.Blur == nil {
		t.Fatalf("paste, focus and blur handlers should still be bound")
	}
}

func TestAttach_NilHost(t *testing.T) {
	if _, err := usPhone(t).Attach(nil); !errors.Is(err, ErrNilHost) {
		t.Fatalf("expected ErrNilHost, got %v", err)
	}
}

func TestAttach_ReplacesPreviousAttachment(t *testing.T) {
	host := field.NewMemory()
	first := attach(t, usPhone(t), host)
	number, _ := New(TypeNumber)
	second := attach(t, number, host)

	if !first.Detached() || second.Detached() {
		t.Fatalf("detached: first %v, second %v", first.Detached(), second.Detached())
	}
	typeScript(t, host, "4a2")
	if host.Text() != "42" {
		t.Fatalf("text = %q", host.Text())
	}
}

func TestAttach_DetachRestoresNativeEditing(t *testing.T) {
	host := field.NewMemory()
	att := attach(t, usPhone(t), host)
	host.Paste("1")
	if _, err := host.Loop().Settle(); err != nil {
		t.Fatalf("settle: %v", err)
	}

	att.Detach()
	att.Detach()
	host.SetText("")
	typeScript(t, host, "abc")
	if host.Text() != "abc" {
		t.Fatalf("text = %q", host.Text())
	}
	if _, ok := host.Binding(); ok {
		t.Fatalf("binding still active")
	}
}

func TestAttach_DetachCancelsPendingPaste(t *testing.T) {
	host := field.NewMemory()
	att := attach(t, usPhone(t), host)

	att.HandlePaste()
	att.Detach()
	host.SetText("raw")
	if _, err := host.Loop().Settle(); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if host.Text() != "raw" {
		t.Fatalf("paste reconciliation ran after detach: %q", host.Text())
	}
}

func TestFormatter_SharedAcrossFields(t *testing.T) {
	f := usPhone(t)
	a, b := field.NewMemory(), field.NewMemory()
	attach(t, f, a)
	attach(t, f, b)

	focusAndSettle(t, a)
	focusAndSettle(t, b)
	typeScript(t, a, "555")
	typeScript(t, b, "12")
	if !strings.HasPrefix(a.Text(), "(555)") || !strings.HasPrefix(b.Text(), "(12_)") {
		t.Fatalf("fields share state: %q / %q", a.Text(), b.Text())
	}
}

func TestHandleKey_PassThrough(t *testing.T) {
	host := field.NewMemory()
	att := attach(t, usPhone(t), host)
	for _, ev := range []keys.Event{
		keys.Navigate(keys.DirLeft, keys.ModNone),
		keys.Tab(),
		keys.Clipboard(keys.ShortcutCopy),
		keys.Other('s', keys.ModCtrl),
		keys.Enter('\r'),
	} {
		if att.HandleKey(ev) {
			t.Fatalf("%s should pass through", ev)
		}
	}
}
