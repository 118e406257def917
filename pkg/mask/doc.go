// Package mask compiles mask templates such as "(999) 999-9999" into an
// ordered list of literal and editable slots and implements the buffer
// reconciliation engine that keeps a field's text aligned with that template.
//
// A Template is immutable and can be shared by any number of fields. A Buffer
// is a value: every edit operation returns a Result holding a new Buffer, the
// caret position the host should apply, and whether the edit was accepted. A
// rejected edit leaves the previous Buffer untouched, so callers can simply
// discard the result.
//
// The primitives mirror how masked inputs behave in browsers: SeekNext and
// SeekPrev locate editable slots, Clear blanks a range, ShiftLeft compacts
// editable content after a deletion, ShiftRight makes room for an insertion,
// and CheckVal resynchronises the buffer against arbitrary text (paste,
// programmatic value set, blur).
package mask
