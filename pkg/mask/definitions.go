package mask

import "regexp"

// DefaultPlaceholder is used when a template is compiled without an explicit
// placeholder rune.
const DefaultPlaceholder = '_'

// OptionalMarker starts the optional trailing segment of a template.
const OptionalMarker = '?'

// Definitions maps a wildcard rune in a template to the single-character class
// that an editable slot accepts, e.g. '9' -> "[0-9]".
type Definitions map[rune]string

// DefaultDefinitions returns the stock wildcard set: digits, letters and
// alphanumerics.
func DefaultDefinitions() Definitions {
	return Definitions{
		'9': "[0-9]",
		'a': "[A-Za-z]",
		'*': "[A-Za-z0-9]",
	}
}

// Clone returns a copy that can be mutated without affecting the receiver.
func (d Definitions) Clone() Definitions {
	if d == nil {
		return nil
	}
	out := make(Definitions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// FromStrings converts a string keyed map (as decoded from YAML/JSON/TOML) into
// Definitions. Keys must be exactly one rune; others are reported back so the
// caller can surface them.
func FromStrings(in map[string]string) (Definitions, []string) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(Definitions, len(in))
	var invalid []string
	for key, class := range in {
		runes := []rune(key)
		if len(runes) != 1 {
			invalid = append(invalid, key)
			continue
		}
		out[runes[0]] = class
	}
	return out, invalid
}

func compileClass(class string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + class + ")$")
}
