package mask

// Buffer mirrors a Template slot for slot. Literal slots always hold their
// literal; editable slots hold the placeholder or a rune their class accepts.
// Buffers are values: operations never modify the receiver.
type Buffer struct {
	tpl   *Template
	cells []rune
}

// Result is the outcome of an edit operation.
type Result struct {
	Buffer Buffer
	// Caret is the position the host should move the caret to. It is only
	// meaningful when Accepted is true.
	Caret    int
	Accepted bool
	// Complete is set by Insert when the caret reached the end of the
	// template.
	Complete bool
}

// NewBuffer returns an empty buffer for tpl: literals in place, placeholders
// everywhere else.
func NewBuffer(tpl *Template) Buffer {
	cells := make([]rune, len(tpl.slots))
	for i, slot := range tpl.slots {
		if slot.test != nil {
			cells[i] = tpl.placeholder
		} else {
			cells[i] = slot.Literal
		}
	}
	return Buffer{tpl: tpl, cells: cells}
}

// Template returns the template backing the buffer.
func (b Buffer) Template() *Template { return b.tpl }

// Len reports the number of cells, always equal to Template().Len().
func (b Buffer) Len() int { return len(b.cells) }

// At returns the rune stored in slot i.
func (b Buffer) At(i int) rune {
	if i < 0 || i >= len(b.cells) {
		return 0
	}
	return b.cells[i]
}

// String renders the full buffer including placeholders.
func (b Buffer) String() string { return string(b.cells) }

// Prefix renders the first n cells.
func (b Buffer) Prefix(n int) string {
	switch {
	case n <= 0:
		return ""
	case n >= len(b.cells):
		return string(b.cells)
	default:
		return string(b.cells[:n])
	}
}

// Filled reports whether every editable slot holds a non-placeholder rune.
func (b Buffer) Filled() bool {
	for i, slot := range b.tpl.slots {
		if slot.test != nil && b.cells[i] == b.tpl.placeholder {
			return false
		}
	}
	return true
}

// Empty reports whether no editable slot has been filled.
func (b Buffer) Empty() bool {
	for i, slot := range b.tpl.slots {
		if slot.test != nil && b.cells[i] != b.tpl.placeholder {
			return false
		}
	}
	return true
}

// Value returns only the runes typed into editable slots, skipping literals
// and placeholders.
func (b Buffer) Value() string {
	out := make([]rune, 0, len(b.cells))
	for i, slot := range b.tpl.slots {
		if slot.test != nil && b.cells[i] != b.tpl.placeholder {
			out = append(out, b.cells[i])
		}
	}
	return string(out)
}

// Equal reports whether both buffers share a template and hold the same runes.
func (b Buffer) Equal(other Buffer) bool {
	if b.tpl != other.tpl || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b Buffer) clone() Buffer {
	return Buffer{tpl: b.tpl, cells: append([]rune(nil), b.cells...)}
}

func (b Buffer) accept(caret int) Result {
	return Result{Buffer: b, Caret: caret, Accepted: true}
}

func (b Buffer) reject() Result {
	return Result{Buffer: b}
}
