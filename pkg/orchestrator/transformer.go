package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formatter/pkg/format"
)

// Transformer rewrites a resolved configuration before it is compiled.
type Transformer interface {
	Transform(ctx context.Context, cfg *format.Config) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, cfg *format.Config) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, cfg *format.Config) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, cfg)
}

// JSONOverrideTransformer layers a JSON configuration document over every
// resolved configuration:
//
//	{"placeholder": "*", "maxLength": 12}
type JSONOverrideTransformer struct {
	override format.Config
}

// NewJSONOverrideTransformer constructs a transformer from raw JSON bytes.
func NewJSONOverrideTransformer(data []byte) (*JSONOverrideTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json override transformer: document is empty")
	}
	var override format.Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&override); err != nil {
		return nil, fmt.Errorf("json override transformer: parse document: %w", err)
	}
	return &JSONOverrideTransformer{override: override}, nil
}

// NewJSONOverrideTransformerFromFS loads the override document from fsys.
func NewJSONOverrideTransformerFromFS(fsys fs.FS, path string) (*JSONOverrideTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json override transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json override transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json override transformer: read %s: %w", path, err)
	}
	return NewJSONOverrideTransformer(data)
}

// Transform merges the override into cfg.
func (t *JSONOverrideTransformer) Transform(_ context.Context, cfg *format.Config) error {
	if t == nil || cfg == nil {
		return nil
	}
	*cfg = format.Merge(*cfg, t.override)
	return nil
}
