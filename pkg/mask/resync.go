package mask

// Resync is the outcome of CheckVal.
type Resync struct {
	Buffer Buffer
	// Text is what the field should display after the resync.
	Text string
	// Caret is the slot where scanning stopped: the first editable slot that
	// could not be filled, or Len when every slot was visited. On rejection
	// it is the first editable slot.
	Caret int
	// LastMatch is the highest slot index filled or matched, -1 when none.
	LastMatch int
	// Accepted is false when the mandatory prefix could not be filled and the
	// buffer was cleared.
	Accepted bool
}

// CheckVal rebuilds the buffer from raw, text that is not known to follow the
// template (a paste, a programmatic value, the field contents on blur).
//
// Editable slots consume input runes until one fits; when the input runs out
// scanning stops. Literal slots consume the next input rune only when it is
// that literal (and the slot is not the partial boundary). When the mandatory
// prefix is left incomplete the whole buffer is cleared. Otherwise the buffer
// is kept and, unless allowGrow is set, the visible text is cut after the
// last matched slot.
func (b Buffer) CheckVal(raw string, allowGrow bool) Resync {
	tpl := b.tpl
	out := b.clone()
	input := []rune(raw)
	n := len(out.cells)

	lastMatch := -1
	pos := 0
	i := 0
	for ; i < n; i++ {
		slot := tpl.slots[i]
		if slot.test != nil {
			out.cells[i] = tpl.placeholder
			matched := false
			for pos < len(input) {
				c := input[pos]
				pos++
				if slot.test.MatchString(string(c)) {
					out.cells[i] = c
					lastMatch = i
					matched = true
					break
				}
			}
			if !matched {
				break
			}
			continue
		}
		if pos < len(input) && input[pos] == slot.Literal && i != tpl.partial {
			pos++
			lastMatch = i
		}
	}
	stop := i
	out.clear(stop, n)

	if lastMatch+1 < tpl.partial {
		cleared := NewBuffer(tpl)
		res := Resync{
			Buffer:    cleared,
			Caret:     clamp(tpl.firstEditable, 0, n),
			LastMatch: lastMatch,
		}
		if allowGrow {
			res.Text = cleared.String()
		}
		return res
	}

	res := Resync{
		Buffer:    out,
		Caret:     stop,
		LastMatch: lastMatch,
		Accepted:  true,
	}
	if allowGrow {
		res.Text = out.String()
	} else {
		res.Text = out.Prefix(lastMatch + 1)
	}
	return res
}
