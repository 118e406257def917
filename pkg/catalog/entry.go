package catalog

import (
	"github.com/goliatone/go-formatter/pkg/format"
)

// File is the decoded form of one catalog file.
type File struct {
	Formatters map[string]Entry `json:"formatters" yaml:"formatters" toml:"formatters"`
}

// Entry describes one named formatter. Pointer fields distinguish "unset"
// from an explicit zero so a catalog can switch off preset behaviour, such
// as trimming on a oneline_textarea.
type Entry struct {
	Type              string            `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Pattern           string            `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Definitions       map[string]string `json:"definitions,omitempty" yaml:"definitions,omitempty" toml:"definitions,omitempty"`
	Placeholder       string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	AllowedCharCodes  []int             `json:"allowedCharCodes,omitempty" yaml:"allowedCharCodes,omitempty" toml:"allowedCharCodes,omitempty"`
	Exclude           *bool             `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	MaxLength         *int              `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	DecimalPlaces     *int              `json:"decimalPlaces,omitempty" yaml:"decimalPlaces,omitempty" toml:"decimalPlaces,omitempty"`
	GroupingSeparator *string           `json:"groupingSeparator,omitempty" yaml:"groupingSeparator,omitempty" toml:"groupingSeparator,omitempty"`
	TrimOnBlur        *bool             `json:"trimOnBlur,omitempty" yaml:"trimOnBlur,omitempty" toml:"trimOnBlur,omitempty"`
}

// Options converts the entry into format options, applied on top of the
// preset named by Type.
func (e Entry) Options() []format.Option {
	var opts []format.Option
	if e.Pattern != "" {
		opts = append(opts, format.WithPattern(e.Pattern))
	}
	if len(e.Definitions) > 0 {
		opts = append(opts, format.WithDefinitions(e.Definitions))
	}
	if e.Placeholder != "" {
		opts = append(opts, format.WithPlaceholder(e.Placeholder))
	}
	if len(e.AllowedCharCodes) > 0 {
		opts = append(opts, format.WithAllowedCharCodes(e.AllowedCharCodes...))
	}
	if e.Exclude != nil {
		opts = append(opts, format.WithExclude(*e.Exclude))
	}
	if e.MaxLength != nil {
		opts = append(opts, format.WithMaxLength(*e.MaxLength))
	}
	if e.DecimalPlaces != nil {
		opts = append(opts, format.WithDecimalPlaces(*e.DecimalPlaces))
	}
	if e.GroupingSeparator != nil {
		opts = append(opts, format.WithGroupingSeparator(*e.GroupingSeparator))
	}
	if e.TrimOnBlur != nil {
		opts = append(opts, format.WithTrimOnBlur(*e.TrimOnBlur))
	}
	return opts
}

// Compile builds the formatter the entry describes. extra options are
// applied last.
func (e Entry) Compile(extra ...format.Option) (*format.Formatter, error) {
	return format.New(e.Type, append(e.Options(), extra...)...)
}
