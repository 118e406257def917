package mask

import "testing"

func TestCheckVal(t *testing.T) {
	cases := []struct {
		name      string
		pattern   string
		raw       string
		allowGrow bool
		text      string
		buffer    string
		caret     int
		accepted  bool
	}{
		{
			name:      "paste digits among noise",
			pattern:   "999-999",
			raw:       "abc123def456",
			allowGrow: true,
			text:      "123-456",
			buffer:    "123-456",
			caret:     7,
			accepted:  true,
		},
		{
			name:     "formatted value round trips",
			pattern:  "(999) 999-9999",
			raw:      "(555) 123-4567",
			text:     "(555) 123-4567",
			buffer:   "(555) 123-4567",
			caret:    14,
			accepted: true,
		},
		{
			name:     "raw digits fill the template",
			pattern:  "(999) 999-9999",
			raw:      "5551234567",
			text:     "(555) 123-4567",
			buffer:   "(555) 123-4567",
			caret:    14,
			accepted: true,
		},
		{
			name:      "incomplete mandatory prefix clears",
			pattern:   "9999",
			raw:       "12",
			allowGrow: true,
			text:      "____",
			buffer:    "____",
			caret:     0,
		},
		{
			name:    "incomplete on blur empties the text",
			pattern: "(999) 999-9999",
			raw:     "(555) 12",
			text:    "",
			buffer:  "(___) ___-____",
			caret:   1,
		},
		{
			name:     "optional suffix accepts partial",
			pattern:  "99-99?-99",
			raw:      "12-345",
			text:     "12-34-5",
			buffer:   "12-34-5_",
			caret:    7,
			accepted: true,
		},
		{
			name:      "optional suffix keeps placeholders when growing",
			pattern:   "99-99?-99",
			raw:       "1234",
			allowGrow: true,
			text:      "12-34-__",
			buffer:    "12-34-__",
			caret:     6,
			accepted:  true,
		},
		{
			name:     "trailing unmatched input is discarded",
			pattern:  "99",
			raw:      "123",
			text:     "12",
			buffer:   "12",
			caret:    2,
			accepted: true,
		},
		{
			name:     "empty input with fully optional template",
			pattern:  "?99",
			raw:      "",
			text:     "",
			buffer:   "__",
			caret:    0,
			accepted: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := MustCompile(tc.pattern, DefaultDefinitions(), '_')
			res := NewBuffer(tpl).CheckVal(tc.raw, tc.allowGrow)
			if res.Accepted != tc.accepted {
				t.Fatalf("accepted = %v, want %v", res.Accepted, tc.accepted)
			}
			if res.Text != tc.text {
				t.Fatalf("text = %q, want %q", res.Text, tc.text)
			}
			if got := res.Buffer.String(); got != tc.buffer {
				t.Fatalf("buffer = %q, want %q", got, tc.buffer)
			}
			if res.Caret != tc.caret {
				t.Fatalf("caret = %d, want %d", res.Caret, tc.caret)
			}
		})
	}
}

// Literal runes in the input are consumed when they coincide with a template
// literal, even if the user meant them as data. The '-' below is also a valid
// slot rune, but it is taken as the separator.
func TestCheckVal_CoincidentLiteralIsConsumed(t *testing.T) {
	tpl := MustCompile("99-99", Definitions{'9': "[0-9-]"}, '_')
	res := NewBuffer(tpl).CheckVal("12-34", false)
	if !res.Accepted || res.Text != "12-34" {
		t.Fatalf("got %+v", res)
	}
	if res.LastMatch != 4 {
		t.Fatalf("last match = %d, want 4", res.LastMatch)
	}
}

func TestCheckVal_LiteralAtPartialBoundaryIsNotConsumed(t *testing.T) {
	tpl := MustCompile("99?-99", DefaultDefinitions(), '_')
	res := NewBuffer(tpl).CheckVal("12-3", false)
	if !res.Accepted {
		t.Fatalf("expected acceptance")
	}
	// The '-' at the boundary is skipped as data instead of matched; the
	// editable slot after it then discards it and takes '3'.
	if res.Text != "12-3" {
		t.Fatalf("text = %q, want %q", res.Text, "12-3")
	}
	if res.LastMatch != 3 {
		t.Fatalf("last match = %d, want 3", res.LastMatch)
	}
}

func TestCheckVal_DoesNotMutateReceiver(t *testing.T) {
	tpl := MustCompile("999", DefaultDefinitions(), '_')
	buf := NewBuffer(tpl).CheckVal("123", false).Buffer
	_ = buf.CheckVal("", false)
	if buf.String() != "123" {
		t.Fatalf("receiver mutated: %q", buf.String())
	}
}
