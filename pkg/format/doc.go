// Package format binds a field formatting configuration to text fields.
//
// A Config names a preset (phone, number, amount, oneline_textarea) or
// describes a custom format: a mask template, a character allow or deny
// list, amount grouping and blur behaviour. Compile validates it once into
// an immutable Formatter that may be shared by any number of fields.
// Formatter.Attach binds it to a field.Host and returns the Attachment that
// owns the per-field state (the mask buffer, the focus snapshot, the last
// committed value) and dispatches key, paste, drop, focus and blur events:
//
//	f, err := format.New("phone", format.WithOnComplete(done))
//	if err != nil {
//		return err
//	}
//	att, err := f.Attach(host)
//	if err != nil {
//		return err
//	}
//	defer att.Detach()
package format
