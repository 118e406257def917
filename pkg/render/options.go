package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// OutputFormat controls how collected entries are serialised.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON array.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one human-friendly line per entry.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatText emits only the formatted text, one per line.
	OutputFormatText OutputFormat = "text"
)

// ParseOutputFormat validates a format name. The empty string selects
// OutputFormatText.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(name))) {
	case "", OutputFormatText:
		return OutputFormatText, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatPrettyText:
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q", name)
	}
}

// WriteEntries serialises entries to w.
func WriteEntries(w io.Writer, entries []Entry, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		if entries == nil {
			entries = []Entry{}
		}
		payload, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("render: encode entries: %w", err)
		}
		_, err = fmt.Fprintln(w, string(payload))
		return err
	case OutputFormatPrettyText:
		for _, e := range entries {
			status := "complete"
			if !e.Complete {
				status = "partial"
			}
			if _, err := fmt.Fprintf(w, "%s: %q -> %q (unformatted %q, %s)\n", e.Name, e.Raw, e.Text, e.Unformatted, status); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.Text); err != nil {
				return err
			}
		}
		return nil
	}
}
