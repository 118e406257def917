package format

import (
	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/grouping"
	"github.com/goliatone/go-formatter/pkg/keys"
)

// HandleKey applies a key event to the field. It returns true when the event
// was consumed and the host must not apply its own editing.
//
// Navigation, Tab, clipboard shortcuts and modified combinations always pass
// through. Enter passes through except in deny-list mode when its code is
// listed.
func (a *Attachment) HandleKey(ev keys.Event) bool {
	if a.detached {
		return false
	}
	switch ev.Kind {
	case keys.KindNavigation, keys.KindTab, keys.KindClipboard, keys.KindOther:
		return false
	}
	switch a.f.mode {
	case ModeMask:
		return a.maskKey(ev)
	case ModeAmount:
		return a.amountKey(ev)
	case ModeFilter:
		return a.filterKey(ev)
	default:
		return false
	}
}

func (a *Attachment) maskKey(ev keys.Event) bool {
	sel := a.host.Selection()
	switch ev.Kind {
	case keys.KindBackspace, keys.KindDelete:
		res := a.buf.Delete(sel.Start, sel.End, ev.Kind == keys.KindDelete)
		if !res.Accepted {
			a.f.logf("format: %s at %d-%d rejected", ev.Kind, sel.Start, sel.End)
			return true
		}
		a.commit(res.Buffer, res.Caret)
		return true
	case keys.KindPrintable:
		res := a.buf.Insert(sel.Start, sel.End, ev.Rune)
		if !res.Accepted {
			a.f.logf("format: %q at %d-%d rejected", ev.Rune, sel.Start, sel.End)
			return true
		}
		a.commit(res.Buffer, res.Caret)
		if res.Complete {
			a.complete()
		}
		return true
	}
	return false
}

func (a *Attachment) amountKey(ev keys.Event) bool {
	sep := []rune(a.f.cfg.GroupingSeparator)
	old := []rune(a.host.Text())
	sel := a.host.Selection().Clamp(len(old))
	start, end := sel.Start, sel.End
	var insert []rune

	switch ev.Kind {
	case keys.KindBackspace:
		if sel.Empty() {
			// Deleting a separator alone would be undone by regrouping, so
			// the digit in front of it goes with it.
			step := 1
			if len(sep) > 0 && hasSuffix(old[:start], sep) {
				step += len(sep)
			}
			start = max(0, start-step)
		}
	case keys.KindDelete:
		if sel.Empty() {
			step := 1
			if len(sep) > 0 && hasPrefix(old[end:], sep) {
				step += len(sep)
			}
			end = min(len(old), end+step)
		}
	case keys.KindPrintable:
		insert = []rune{ev.Rune}
	default:
		return false
	}

	sum := make([]rune, 0, len(old)+len(insert))
	sum = append(sum, old[:start]...)
	sum = append(sum, insert...)
	sum = append(sum, old[end:]...)
	if len(sum) == 0 {
		return false
	}
	a.setAmount(string(sum), start+len(insert))
	return true
}

// setAmount validates and regroups sum, an edited version of the field text.
// caret is the caret offset within sum; it is carried over by counting the
// non-separator runes in front of it.
func (a *Attachment) setAmount(sum string, caret int) {
	sep := a.f.cfg.GroupingSeparator
	plain := grouping.Ungroup(sum, sep)
	if !a.f.valid.MatchString(plain) {
		a.f.logf("format: amount %q rejected", plain)
		return
	}
	grouped := grouping.Group(plain, sep)
	significant := grouping.CountSignificant(sum, sep, caret)
	a.host.SetText(grouped)
	a.host.SetSelection(field.Caret(grouping.OffsetOf(grouped, sep, significant)))
	a.host.Notify(field.NotifyInput)
}

func (a *Attachment) filterKey(ev keys.Event) bool {
	switch ev.Kind {
	case keys.KindPrintable, keys.KindEnter:
	default:
		return false
	}
	if ev.Kind == keys.KindEnter && !a.f.cfg.Exclude {
		return false
	}

	cfg := a.f.cfg
	if cfg.MaxLength > 0 && a.host.Selection().Empty() && len([]rune(a.host.Text())) >= cfg.MaxLength {
		a.f.logf("format: %q rejected, text at max length %d", ev.Rune, cfg.MaxLength)
		return true
	}
	listed := a.f.allowsCode(ev.Code())
	if listed == cfg.Exclude {
		a.f.logf("format: %q rejected by character list", ev.Rune)
		return true
	}
	return false
}

func hasSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	return string(s[len(s)-len(suffix):]) == string(suffix)
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	return string(s[:len(prefix)]) == string(prefix)
}
