package mask

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Slot is one fixed position in a compiled template.
type Slot struct {
	Index int
	// Literal holds the fixed rune for literal slots and the wildcard rune
	// that produced the slot for editable ones.
	Literal rune
	test    *regexp.Regexp
}

// Editable reports whether the slot accepts user input.
func (s Slot) Editable() bool {
	return s.test != nil
}

// Accepts reports whether r may occupy the slot. Literal slots accept only
// their own literal.
func (s Slot) Accepts(r rune) bool {
	if s.test == nil {
		return r == s.Literal
	}
	return s.test.MatchString(string(r))
}

// Template is a compiled mask. It is immutable after Compile and safe to share
// across fields and goroutines.
type Template struct {
	source        string
	slots         []Slot
	placeholder   rune
	firstEditable int
	partial       int
}

// Compile parses pattern into a Template. Runes that appear as keys in defs
// become editable slots validated by the associated character class, the
// first OptionalMarker marks where the optional suffix starts, and every other
// rune is a literal. A zero placeholder selects DefaultPlaceholder.
func Compile(pattern string, defs Definitions, placeholder rune) (*Template, error) {
	if placeholder == 0 {
		placeholder = DefaultPlaceholder
	}
	if pattern == "" {
		return nil, configErr(pattern, "template is empty", nil)
	}
	if _, clash := defs[placeholder]; clash {
		return nil, configErr(pattern, fmt.Sprintf("placeholder %q is also a wildcard", placeholder), nil)
	}

	tests, err := compileDefinitions(pattern, defs)
	if err != nil {
		return nil, err
	}

	tpl := &Template{
		source:        pattern,
		placeholder:   placeholder,
		firstEditable: -1,
		partial:       -1,
	}
	literals := 0
	for _, r := range pattern {
		if r == OptionalMarker {
			if tpl.partial >= 0 {
				return nil, configErr(pattern, "optional marker appears more than once", nil)
			}
			tpl.partial = len(tpl.slots)
			continue
		}
		slot := Slot{Index: len(tpl.slots), Literal: r}
		if test, ok := tests[r]; ok {
			slot.test = test
			if tpl.firstEditable < 0 {
				tpl.firstEditable = slot.Index
			}
		} else {
			literals++
		}
		tpl.slots = append(tpl.slots, slot)
	}

	if len(tpl.slots) == 0 || (len(defs) == 0 && literals == 0) {
		return nil, configErr(pattern, "template has no slots", nil)
	}
	if tpl.partial < 0 {
		tpl.partial = len(tpl.slots)
	}
	return tpl, nil
}

// MustCompile is like Compile but panics on error. Intended for package level
// presets and tests.
func MustCompile(pattern string, defs Definitions, placeholder rune) *Template {
	tpl, err := Compile(pattern, defs, placeholder)
	if err != nil {
		panic(err)
	}
	return tpl
}

func compileDefinitions(pattern string, defs Definitions) (map[rune]*regexp.Regexp, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	keys := make([]rune, 0, len(defs))
	for r := range defs {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	tests := make(map[rune]*regexp.Regexp, len(defs))
	for _, r := range keys {
		if r == OptionalMarker {
			return nil, configErr(pattern, "the optional marker cannot be a wildcard", nil)
		}
		class := strings.TrimSpace(defs[r])
		if class == "" {
			return nil, configErr(pattern, fmt.Sprintf("wildcard %q has an empty character class", r), nil)
		}
		test, err := compileClass(class)
		if err != nil {
			return nil, configErr(pattern, fmt.Sprintf("wildcard %q", r), err)
		}
		tests[r] = test
	}
	return tests, nil
}

// Source returns the template string the Template was compiled from.
func (t *Template) Source() string { return t.source }

// Len reports the number of slots.
func (t *Template) Len() int { return len(t.slots) }

// Placeholder returns the rune shown in unfilled editable slots.
func (t *Template) Placeholder() rune { return t.placeholder }

// FirstEditable returns the index of the first editable slot or -1.
func (t *Template) FirstEditable() int { return t.firstEditable }

// PartialBoundary returns the index where the optional suffix begins. Without
// an optional marker it equals Len.
func (t *Template) PartialBoundary() int { return t.partial }

// HasOptionalSuffix reports whether the template declared an optional marker.
func (t *Template) HasOptionalSuffix() bool { return t.partial < len(t.slots) }

// Slot returns the slot at index i. The second result is false when i is out
// of range.
func (t *Template) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(t.slots) {
		return Slot{}, false
	}
	return t.slots[i], true
}

// Slots returns a copy of the slot list.
func (t *Template) Slots() []Slot {
	return append([]Slot(nil), t.slots...)
}

// Editable reports whether slot i exists and accepts input.
func (t *Template) Editable(i int) bool {
	return i >= 0 && i < len(t.slots) && t.slots[i].test != nil
}

// SeekNext returns the nearest editable slot strictly after pos, or Len when
// none exists.
func (t *Template) SeekNext(pos int) int {
	if pos < -1 {
		pos = -1
	}
	for pos++; pos < len(t.slots) && t.slots[pos].test == nil; pos++ {
	}
	return pos
}

// SeekPrev returns the nearest editable slot strictly before pos, or -1 when
// none exists.
func (t *Template) SeekPrev(pos int) int {
	if pos > len(t.slots) {
		pos = len(t.slots)
	}
	for pos--; pos >= 0 && t.slots[pos].test == nil; pos-- {
	}
	return pos
}

func (t *Template) accepts(i int, r rune) bool {
	return t.slots[i].test != nil && t.slots[i].test.MatchString(string(r))
}
