package formatter

import "github.com/goliatone/go-formatter/pkg/format"

// Formatter aliases format.Formatter.
type Formatter = format.Formatter

// Config aliases format.Config.
type Config = format.Config

// Option aliases format.Option.
type Option = format.Option

// Preset names re-exported for convenience.
const (
	TypePhone   = format.TypePhone
	TypeNumber  = format.TypeNumber
	TypeAmount  = format.TypeAmount
	TypeOneline = format.TypeOneline
)

// New compiles the preset typ with options applied on top.
func New(typ string, options ...Option) (*Formatter, error) {
	return format.New(typ, options...)
}

// Compile compiles an explicit configuration.
func Compile(cfg Config, options ...Option) (*Formatter, error) {
	return format.Compile(cfg, options...)
}

// Apply formats raw with the preset typ, as if it were pasted into an empty
// field that then lost focus.
func Apply(typ, raw string, options ...Option) (string, error) {
	f, err := format.New(typ, options...)
	if err != nil {
		return "", err
	}
	return f.Apply(raw), nil
}
