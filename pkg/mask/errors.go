package mask

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel wrapped by every ConfigError.
var ErrConfig = errors.New("mask: invalid configuration")

// ConfigError reports a malformed template or definition set detected at
// compile time.
type ConfigError struct {
	Pattern string
	Reason  string
	Err     error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("mask: template %q: %s", e.Pattern, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrConfig and any underlying cause to errors.Is/As.
func (e *ConfigError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err != nil {
		return []error{ErrConfig, e.Err}
	}
	return []error{ErrConfig}
}

func configErr(pattern, reason string, cause error) error {
	return &ConfigError{Pattern: pattern, Reason: reason, Err: cause}
}
