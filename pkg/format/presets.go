package format

import (
	"fmt"
	"sort"
)

// Preset names.
const (
	TypePhone   = "phone"
	TypeNumber  = "number"
	TypeAmount  = "amount"
	TypeOneline = "oneline_textarea"
)

var digitCodes = []int{48, 49, 50, 51, 52, 53, 54, 55, 56, 57}

var presets = map[string]Config{
	TypeOneline: {
		Type:             TypeOneline,
		AllowedCharCodes: []int{10, 13},
		Exclude:          true,
		MaxLength:        160,
		TrimOnBlur:       true,
	},
	TypeNumber: {
		Type:             TypeNumber,
		AllowedCharCodes: digitCodes,
	},
	TypeAmount: {
		Type:              TypeAmount,
		AllowedCharCodes:  digitCodes,
		MaxLength:         10,
		DecimalPlaces:     2,
		GroupingSeparator: " ",
	},
	TypePhone: {
		Type:        TypePhone,
		Pattern:     "+380 (99) 999-99-99",
		Placeholder: "_",
		Definitions: map[string]string{
			"9": "[0-9]",
			"a": "[A-Za-z]",
			"*": "[A-Za-z0-9]",
		},
	},
}

// Preset returns a copy of the named built-in configuration.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return Merge(Config{}, cfg), nil
}

// PresetNames lists the built-in presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
