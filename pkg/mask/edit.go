package mask

// Clear resets every editable slot in [start, end) to the placeholder. The
// caret lands on start (clamped to the template).
func (b Buffer) Clear(start, end int) Result {
	if start >= end {
		return b.reject()
	}
	out := b.clone()
	out.clear(start, end)
	return out.accept(clamp(start, 0, len(out.cells)))
}

func (b *Buffer) clear(start, end int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(b.cells); i++ {
		if b.tpl.slots[i].test != nil {
			b.cells[i] = b.tpl.placeholder
		}
	}
}

// ShiftLeft compacts editable content after a deletion spanning [begin, end].
// Each editable slot from begin onwards pulls the rune held by the next
// editable slot past end, as long as the pulled rune is valid in its new slot.
// Literals never move.
func (b Buffer) ShiftLeft(begin, end int) Result {
	if begin < 0 {
		return b.reject()
	}
	out := b.clone()
	out.shiftLeft(begin, end)
	caret := begin
	if first := out.tpl.firstEditable; first > caret {
		caret = first
	}
	return out.accept(caret)
}

func (b *Buffer) shiftLeft(begin, end int) {
	tpl := b.tpl
	n := len(b.cells)
	j := tpl.SeekNext(end)
	for i := begin; i < n; i++ {
		if tpl.slots[i].test == nil {
			continue
		}
		if j >= n || !tpl.accepts(i, b.cells[j]) {
			break
		}
		b.cells[i] = b.cells[j]
		b.cells[j] = tpl.placeholder
		j = tpl.SeekNext(j)
	}
}

// ShiftRight opens slot pos for an insertion by pushing the editable content
// at and after pos one editable slot to the right. Pushing stops at the first
// rune that is not valid in its destination; a rune pushed past the last slot
// is discarded. The vacated slot holds the placeholder afterwards.
func (b Buffer) ShiftRight(pos int) Result {
	if pos < 0 || pos >= len(b.cells) {
		return b.reject()
	}
	out := b.clone()
	out.shiftRight(pos)
	return out.accept(pos)
}

func (b *Buffer) shiftRight(pos int) {
	tpl := b.tpl
	n := len(b.cells)
	carry := tpl.placeholder
	for i := pos; i < n; i++ {
		if tpl.slots[i].test == nil {
			continue
		}
		j := tpl.SeekNext(i)
		saved := b.cells[i]
		b.cells[i] = carry
		if j >= n || !tpl.accepts(j, saved) {
			break
		}
		carry = saved
	}
}

// Insert places r in the first editable slot at or after the selection start.
// A non-empty selection is removed first. When r is not valid for the target
// slot, or there is no editable slot left, the edit is rejected and nothing
// (not even the selection removal) is applied. The caret advances to the next
// editable slot; Complete is set when it reaches the end of the template.
func (b Buffer) Insert(start, end int, r rune) Result {
	out := b.clone()
	if end > start {
		out.clear(start, end)
		if start >= 0 {
			out.shiftLeft(start, end-1)
		}
	}
	p := out.tpl.SeekNext(start - 1)
	if p >= len(out.cells) || !out.tpl.accepts(p, r) {
		return b.reject()
	}
	out.shiftRight(p)
	out.cells[p] = r
	next := out.tpl.SeekNext(p)
	res := out.accept(next)
	res.Complete = next >= len(out.cells)
	return res
}

// Delete removes the selection [start, end). An empty selection deletes the
// editable slot before the caret (backspace) or at/after it when forward is
// set. Following editable content is shifted left.
func (b Buffer) Delete(start, end int, forward bool) Result {
	begin, stop := start, end
	if stop-begin == 0 {
		if forward {
			begin = b.tpl.SeekNext(start - 1)
			stop = b.tpl.SeekNext(begin)
		} else {
			begin = b.tpl.SeekPrev(start)
		}
	}
	if begin < 0 || begin >= len(b.cells) {
		return b.reject()
	}
	out := b.clone()
	out.clear(begin, stop)
	return out.ShiftLeft(begin, stop-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
