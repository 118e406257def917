package format

import "errors"

var (
	// ErrConfig wraps every configuration problem reported by Compile.
	ErrConfig = errors.New("format: invalid configuration")
	// ErrNilHost is returned when attaching to a nil host.
	ErrNilHost = errors.New("format: host is required")
	// ErrUnknownPreset is returned by Preset lookups for names without a
	// built-in definition.
	ErrUnknownPreset = errors.New("format: unknown preset")
)
