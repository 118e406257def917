package format

import (
	"github.com/goliatone/go-formatter/pkg/field"
)

// Config describes a field format. The zero value formats nothing.
type Config struct {
	// Type selects a preset whose values fill every unset field.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	// Pattern is a mask template such as "(999) 999-9999". A non-empty
	// pattern puts the field in mask mode.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	// Definitions maps template wildcards to single-character classes.
	// Defaults to 9 (digit), a (letter) and * (alphanumeric).
	Definitions map[string]string `json:"definitions,omitempty" yaml:"definitions,omitempty" toml:"definitions,omitempty"`
	// Placeholder is the rune shown in unfilled mask slots.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty" toml:"placeholder,omitempty"`
	// AllowedCharCodes lists the character codes a filter field accepts, or
	// rejects when Exclude is set.
	AllowedCharCodes []int `json:"allowedCharCodes,omitempty" yaml:"allowedCharCodes,omitempty" toml:"allowedCharCodes,omitempty"`
	Exclude          bool  `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	// MaxLength caps the text length of filter and amount fields.
	MaxLength int `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	// DecimalPlaces is the number of fraction digits an amount keeps; the
	// value is rounded to it on blur.
	DecimalPlaces int `json:"decimalPlaces,omitempty" yaml:"decimalPlaces,omitempty" toml:"decimalPlaces,omitempty"`
	// GroupingSeparator separates thousands in amount fields.
	GroupingSeparator string `json:"groupingSeparator,omitempty" yaml:"groupingSeparator,omitempty" toml:"groupingSeparator,omitempty"`
	TrimOnBlur        bool   `json:"trimOnBlur,omitempty" yaml:"trimOnBlur,omitempty" toml:"trimOnBlur,omitempty"`

	// OnComplete runs when typing or pasting fills every mask slot.
	OnComplete func(field.Adapter) `json:"-" yaml:"-" toml:"-"`
	// Logger receives debug traces such as rejected edits.
	Logger func(format string, args ...any) `json:"-" yaml:"-" toml:"-"`
}

// Option customises a Config.
type Option func(*Config)

// WithPattern sets the mask template.
func WithPattern(pattern string) Option {
	return func(c *Config) { c.Pattern = pattern }
}

// WithDefinitions replaces the wildcard definitions.
func WithDefinitions(defs map[string]string) Option {
	return func(c *Config) { c.Definitions = cloneDefinitions(defs) }
}

// WithPlaceholder sets the mask placeholder rune.
func WithPlaceholder(placeholder string) Option {
	return func(c *Config) { c.Placeholder = placeholder }
}

// WithOnComplete registers the mask completion callback.
func WithOnComplete(fn func(field.Adapter)) Option {
	return func(c *Config) { c.OnComplete = fn }
}

// WithAllowedCharCodes replaces the filter character list.
func WithAllowedCharCodes(codes ...int) Option {
	return func(c *Config) { c.AllowedCharCodes = append([]int(nil), codes...) }
}

// WithExclude switches the character list between allow and deny.
func WithExclude(exclude bool) Option {
	return func(c *Config) { c.Exclude = exclude }
}

// WithMaxLength caps the text length.
func WithMaxLength(n int) Option {
	return func(c *Config) { c.MaxLength = n }
}

// WithDecimalPlaces sets the amount fraction digits.
func WithDecimalPlaces(n int) Option {
	return func(c *Config) { c.DecimalPlaces = n }
}

// WithGroupingSeparator sets the amount thousands separator.
func WithGroupingSeparator(sep string) Option {
	return func(c *Config) { c.GroupingSeparator = sep }
}

// WithTrimOnBlur toggles whitespace trimming on blur.
func WithTrimOnBlur(trim bool) Option {
	return func(c *Config) { c.TrimOnBlur = trim }
}

// WithLogger installs a debug logger.
func WithLogger(logger func(format string, args ...any)) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithConfig layers override on top of the configuration built so far.
func WithConfig(override Config) Option {
	return func(c *Config) { *c = Merge(*c, override) }
}

// Merge returns base with every set field of override applied on top.
// Strings, numbers, slices and maps replace the base value when non-zero;
// boolean flags can only be switched on this way (use the With options to
// switch one off).
func Merge(base, override Config) Config {
	out := base
	out.Definitions = cloneDefinitions(base.Definitions)
	out.AllowedCharCodes = append([]int(nil), base.AllowedCharCodes...)

	if override.Type != "" {
		out.Type = override.Type
	}
	if override.Pattern != "" {
		out.Pattern = override.Pattern
	}
	if len(override.Definitions) > 0 {
		out.Definitions = cloneDefinitions(override.Definitions)
	}
	if override.Placeholder != "" {
		out.Placeholder = override.Placeholder
	}
	if len(override.AllowedCharCodes) > 0 {
		out.AllowedCharCodes = append([]int(nil), override.AllowedCharCodes...)
	}
	if override.Exclude {
		out.Exclude = true
	}
	if override.MaxLength != 0 {
		out.MaxLength = override.MaxLength
	}
	if override.DecimalPlaces != 0 {
		out.DecimalPlaces = override.DecimalPlaces
	}
	if override.GroupingSeparator != "" {
		out.GroupingSeparator = override.GroupingSeparator
	}
	if override.TrimOnBlur {
		out.TrimOnBlur = true
	}
	if override.OnComplete != nil {
		out.OnComplete = override.OnComplete
	}
	if override.Logger != nil {
		out.Logger = override.Logger
	}
	return out
}

func cloneDefinitions(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
