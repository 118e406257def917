package mask

import (
	"math/rand"
	"testing"
)

var propertyPatterns = []string{
	"(999) 999-9999",
	"+380 (99) 999-99-99",
	"99/99/9999",
	"aaa-999?-**",
	"**-**",
	"?999",
}

func assertLiterals(t *testing.T, buf Buffer) {
	t.Helper()
	tpl := buf.Template()
	for i, slot := range tpl.Slots() {
		got := buf.At(i)
		if !slot.Editable() {
			if got != slot.Literal {
				t.Fatalf("slot %d literal = %q, want %q (buffer %q)", i, got, slot.Literal, buf.String())
			}
			continue
		}
		if got != tpl.Placeholder() && !slot.Accepts(got) {
			t.Fatalf("slot %d holds %q which its class rejects (buffer %q)", i, got, buf.String())
		}
	}
}

func TestProperty_LiteralsSurviveRandomEdits(t *testing.T) {
	alphabet := []rune("0123456789abcXYZ-() _/")
	rng := rand.New(rand.NewSource(42))

	for _, pattern := range propertyPatterns {
		tpl := MustCompile(pattern, DefaultDefinitions(), '_')
		buf := NewBuffer(tpl)

		for step := 0; step < 500; step++ {
			n := tpl.Len()
			start := rng.Intn(n + 1)
			end := start
			if rng.Intn(4) == 0 {
				end = start + rng.Intn(n+1-start)
			}

			var res Result
			switch rng.Intn(5) {
			case 0, 1:
				res = buf.Insert(start, end, alphabet[rng.Intn(len(alphabet))])
			case 2:
				res = buf.Delete(start, end, false)
			case 3:
				res = buf.Delete(start, end, true)
			default:
				raw := make([]rune, rng.Intn(n+3))
				for i := range raw {
					raw[i] = alphabet[rng.Intn(len(alphabet))]
				}
				sync := buf.CheckVal(string(raw), rng.Intn(2) == 0)
				res = Result{Buffer: sync.Buffer, Caret: sync.Caret, Accepted: true}
			}

			if !res.Accepted {
				assertLiterals(t, buf)
				continue
			}
			if res.Buffer.Len() != n {
				t.Fatalf("%s: buffer length changed to %d", pattern, res.Buffer.Len())
			}
			if res.Caret < -1 || res.Caret > n {
				t.Fatalf("%s: caret %d out of range", pattern, res.Caret)
			}
			buf = res.Buffer
			assertLiterals(t, buf)
		}
	}
}

func TestProperty_ResyncIsIdempotent(t *testing.T) {
	alphabet := []rune("0123456789abXY-() /_")
	rng := rand.New(rand.NewSource(7))

	for _, pattern := range propertyPatterns {
		tpl := MustCompile(pattern, DefaultDefinitions(), '_')
		for i := 0; i < 300; i++ {
			raw := make([]rune, rng.Intn(tpl.Len()+4))
			for j := range raw {
				raw[j] = alphabet[rng.Intn(len(alphabet))]
			}
			for _, grow := range []bool{false, true} {
				first := NewBuffer(tpl).CheckVal(string(raw), grow)
				second := NewBuffer(tpl).CheckVal(first.Text, grow)
				if first.Text != second.Text {
					t.Fatalf("%s grow=%v: resync(%q) = %q, resync again = %q", pattern, grow, string(raw), first.Text, second.Text)
				}
				if !first.Buffer.Equal(second.Buffer) {
					t.Fatalf("%s grow=%v: buffers differ %q vs %q", pattern, grow, first.Buffer, second.Buffer)
				}
			}
		}
	}
}

func TestProperty_DeletionNeverMovesLiterals(t *testing.T) {
	tpl := MustCompile("+380 (99) 999-99-99", DefaultDefinitions(), '_')
	full := NewBuffer(tpl).CheckVal("+380 (12) 345-67-89", false).Buffer
	if !full.Filled() {
		t.Fatalf("setup buffer not filled: %q", full)
	}
	for start := 0; start <= tpl.Len(); start++ {
		for end := start; end <= tpl.Len(); end++ {
			for _, forward := range []bool{false, true} {
				res := full.Delete(start, end, forward)
				if res.Accepted {
					assertLiterals(t, res.Buffer)
				}
			}
		}
	}
}
