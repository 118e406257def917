package format

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/grouping"
	"github.com/goliatone/go-formatter/pkg/mask"
)

// Mode is the editing behaviour a Formatter applies.
type Mode uint8

const (
	// ModePlain leaves editing alone; only blur behaviour (trimming) applies.
	ModePlain Mode = iota
	// ModeMask reconciles every edit against a mask template.
	ModeMask
	// ModeAmount keeps a grouped decimal amount.
	ModeAmount
	// ModeFilter accepts or rejects typed characters by code.
	ModeFilter
)

func (m Mode) String() string {
	switch m {
	case ModeMask:
		return "mask"
	case ModeAmount:
		return "amount"
	case ModeFilter:
		return "filter"
	default:
		return "plain"
	}
}

// Formatter is a compiled, immutable Config. It is safe to share between
// fields and goroutines; per-field state lives in Attachment.
type Formatter struct {
	cfg   Config
	mode  Mode
	tpl   *mask.Template
	codes map[int]struct{}
	// valid matches a complete acceptable value (allow lists and amounts).
	valid *regexp.Regexp
	// strip matches single offending characters (deny lists).
	strip *regexp.Regexp
}

// New compiles the named preset with opts applied on top. Names without a
// preset start from an empty configuration.
func New(typ string, opts ...Option) (*Formatter, error) {
	return Compile(Config{Type: typ}, opts...)
}

// Compile validates cfg and prepares it for attachment. When cfg.Type names
// a preset, the preset fills every field cfg leaves unset; opts are applied
// last.
func Compile(cfg Config, opts ...Option) (*Formatter, error) {
	if base, ok := presets[cfg.Type]; ok {
		cfg = Merge(base, cfg)
	} else {
		cfg = Merge(Config{}, cfg)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Formatter{cfg: cfg}
	if err := f.compile(); err != nil {
		return nil, err
	}
	return f, nil
}

// Derive compiles a new formatter from f's resolved configuration with opts
// applied on top. Presets are not merged a second time, so flags switched off
// on f stay off.
func (f *Formatter) Derive(opts ...Option) (*Formatter, error) {
	return Compile(Config{}, append([]Option{WithConfig(f.cfg)}, opts...)...)
}

func (f *Formatter) compile() error {
	cfg := f.cfg
	if cfg.MaxLength < 0 {
		return configError("maxLength must not be negative, got %d", cfg.MaxLength)
	}
	if cfg.DecimalPlaces < 0 {
		return configError("decimalPlaces must not be negative, got %d", cfg.DecimalPlaces)
	}

	codes := cfg.AllowedCharCodes
	if cfg.Type == TypeAmount && len(codes) == 0 {
		codes = digitCodes
	}
	if len(codes) > 0 {
		f.codes = make(map[int]struct{}, len(codes))
		for _, code := range codes {
			if code < 0 || !utf8.ValidRune(rune(code)) {
				return configError("character code %d is not a valid rune", code)
			}
			f.codes[code] = struct{}{}
		}
	}

	switch {
	case cfg.Pattern != "":
		tpl, err := compileTemplate(cfg)
		if err != nil {
			return err
		}
		f.tpl = tpl
		f.mode = ModeMask
	case cfg.Type == TypeAmount:
		f.mode = ModeAmount
		valid, err := regexp.Compile("^" + charClass(codes) + repeat(cfg.MaxLength) +
			fmt.Sprintf(`(\.\d{0,%d})?$`, cfg.DecimalPlaces))
		if err != nil {
			return fmt.Errorf("%w: amount pattern: %w", ErrConfig, err)
		}
		f.valid = valid
	case len(codes) > 0:
		f.mode = ModeFilter
		if cfg.Exclude {
			f.strip = regexp.MustCompile(charClass(codes))
			break
		}
		valid, err := regexp.Compile("^" + charClass(codes) + repeat(cfg.MaxLength) + "$")
		if err != nil {
			return fmt.Errorf("%w: filter pattern: %w", ErrConfig, err)
		}
		f.valid = valid
	default:
		f.mode = ModePlain
	}
	return nil
}

func compileTemplate(cfg Config) (*mask.Template, error) {
	placeholder := mask.DefaultPlaceholder
	if cfg.Placeholder != "" {
		runes := []rune(cfg.Placeholder)
		if len(runes) != 1 {
			return nil, configError("placeholder must be a single character, got %q", cfg.Placeholder)
		}
		placeholder = runes[0]
	}

	defs := mask.DefaultDefinitions()
	if len(cfg.Definitions) > 0 {
		converted, invalid := mask.FromStrings(cfg.Definitions)
		if len(invalid) > 0 {
			return nil, configError("definition keys must be single characters: %s", strings.Join(invalid, ", "))
		}
		defs = converted
	}

	tpl, err := mask.Compile(cfg.Pattern, defs, placeholder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return tpl, nil
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// charClass renders codes as a bracket expression. Every rune is written as
// a hex escape so no code can change the meaning of the class.
func charClass(codes []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, code := range codes {
		fmt.Fprintf(&b, `\x{%x}`, code)
	}
	b.WriteByte(']')
	return b.String()
}

func repeat(maxLength int) string {
	if maxLength > 0 {
		return fmt.Sprintf("{0,%d}", maxLength)
	}
	return "*"
}

// Config returns a copy of the resolved configuration.
func (f *Formatter) Config() Config {
	return Merge(Config{}, f.cfg)
}

// Mode reports the editing behaviour.
func (f *Formatter) Mode() Mode {
	return f.mode
}

// Template returns the compiled mask template, or nil outside mask mode.
func (f *Formatter) Template() *mask.Template {
	return f.tpl
}

// Unformat strips presentation from text: grouping separators for amounts,
// nothing otherwise.
func (f *Formatter) Unformat(text string) string {
	if f.mode == ModeAmount {
		return grouping.Ungroup(text, f.cfg.GroupingSeparator)
	}
	return text
}

// Apply returns the text a field ends up with when raw is pasted into it
// while empty and the field then loses focus.
func (f *Formatter) Apply(raw string) string {
	host := field.NewMemory()
	att, err := f.Attach(host)
	if err != nil {
		return raw
	}
	defer att.Detach()

	host.Focus()
	_, _ = host.Loop().Settle()
	host.SetSelection(field.Selection{Start: 0, End: len([]rune(host.Text()))})
	host.Paste(raw)
	host.Blur()
	_, _ = host.Loop().Settle()
	return host.Text()
}

func (f *Formatter) logf(format string, args ...any) {
	if f.cfg.Logger != nil {
		f.cfg.Logger(format, args...)
	}
}

func (f *Formatter) allowsCode(code int) bool {
	_, ok := f.codes[code]
	return ok
}
