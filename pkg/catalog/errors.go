package catalog

import "errors"

var (
	// ErrUnknownFormatter is returned when a name is neither in the catalog
	// nor a preset.
	ErrUnknownFormatter = errors.New("catalog: unknown formatter")
	// ErrDuplicate reports the same name defined by two catalog files.
	ErrDuplicate = errors.New("catalog: duplicate formatter")
	// ErrUnsupportedFormat reports a catalog file extension with no decoder.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")
)
