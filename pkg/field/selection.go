package field

// Selection is a caret or selected range in rune offsets. End is never less
// than Start; the range is empty when they are equal.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Empty reports whether the selection is a bare caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Clamp orders the bounds and limits both to [0, n].
func (s Selection) Clamp(n int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = clampInt(s.Start, 0, n)
	s.End = clampInt(s.End, 0, n)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
