package keys

import "errors"

var (
	// ErrInvalidScript indicates a key script token could not be parsed.
	ErrInvalidScript = errors.New("keys: invalid key script")
	// ErrUnterminated indicates a "<" token was never closed.
	ErrUnterminated = errors.New("keys: unterminated token")
)
