package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/goliatone/go-formatter/pkg/format"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

// maxDepth bounds the walk through nested and recursive schemas.
const maxDepth = 16

var errNoExtension = errors.New("no extension")

// walker collects formatted fields from a request body schema.
type walker struct {
	ext    string
	infer  bool
	fields []pkgopenapi.Field
}

func (w *walker) walk(path string, ref *openapi3.SchemaRef, depth int) error {
	if ref == nil || ref.Value == nil || depth > maxDepth {
		return nil
	}
	schema := ref.Value

	cfg, err := w.declared(schema)
	switch {
	case err == nil:
		if cfg != nil {
			return w.add(path, *cfg, pkgopenapi.OriginExtension, schema)
		}
		// An explicit false opts the property out.
		return nil
	case !errors.Is(err, errNoExtension):
		return fmt.Errorf("field %s: %w", displayPath(path), err)
	}

	switch {
	case hasType(schema, openapi3.TypeObject) || len(schema.Properties) > 0 || len(schema.AllOf) > 0:
		names := make([]string, 0, len(schema.Properties))
		for name := range schema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := w.walk(join(path, name), schema.Properties[name], depth+1); err != nil {
				return err
			}
		}
		for _, sub := range schema.AllOf {
			if err := w.walk(path, sub, depth+1); err != nil {
				return err
			}
		}
		return nil
	case hasType(schema, openapi3.TypeArray):
		return w.walk(path+"[]", schema.Items, depth+1)
	}

	if path == "" || !w.infer {
		return nil
	}
	if inferred, ok := infer(schema); ok {
		return w.add(path, inferred, pkgopenapi.OriginInferred, schema)
	}
	return nil
}

func (w *walker) add(path string, cfg format.Config, origin pkgopenapi.Origin, schema *openapi3.Schema) error {
	if path == "" {
		return errors.New("formatter declared on the request body itself")
	}
	if _, err := format.Compile(cfg); err != nil {
		return fmt.Errorf("field %s: %w", path, err)
	}
	w.fields = append(w.fields, pkgopenapi.Field{
		Path:        path,
		Config:      cfg,
		Origin:      origin,
		Description: schema.Description,
	})
	return nil
}

// declared reads the formatter extension from schema or its allOf parts. It
// returns a nil config for an explicit false and errNoExtension when the
// extension is absent.
func (w *walker) declared(schema *openapi3.Schema) (*format.Config, error) {
	value, ok := schema.Extensions[w.ext]
	if !ok {
		for _, sub := range schema.AllOf {
			if sub == nil || sub.Value == nil {
				continue
			}
			if cfg, err := w.declared(sub.Value); !errors.Is(err, errNoExtension) {
				return cfg, err
			}
		}
		return nil, errNoExtension
	}
	return decodeExtension(value)
}

func decodeExtension(value any) (*format.Config, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return nil, errors.New("extension true is ambiguous, name a preset")
		}
		return nil, nil
	case string:
		if _, err := format.Preset(v); err != nil {
			return nil, err
		}
		return &format.Config{Type: v}, nil
	case map[string]any:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode extension: %w", err)
		}
		var cfg format.Config
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return nil, fmt.Errorf("decode extension: %w", err)
		}
		return &cfg, nil
	default:
		return nil, fmt.Errorf("unsupported extension value %T", value)
	}
}

// infer derives a formatter from the schema type and format.
func infer(schema *openapi3.Schema) (format.Config, bool) {
	switch {
	case hasType(schema, openapi3.TypeString):
		switch strings.ToLower(schema.Format) {
		case "phone", "tel":
			return format.Config{Type: format.TypePhone}, true
		}
	case hasType(schema, openapi3.TypeInteger):
		cfg := format.Config{Type: format.TypeNumber}
		if schema.MaxLength != nil {
			cfg.MaxLength = int(*schema.MaxLength)
		}
		return cfg, true
	case hasType(schema, openapi3.TypeNumber):
		switch strings.ToLower(schema.Format) {
		case "amount", "money", "currency":
			return format.Config{Type: format.TypeAmount}, true
		}
	}
	return format.Config{}, false
}

func hasType(schema *openapi3.Schema, typ string) bool {
	if schema.Type == nil {
		return false
	}
	for _, t := range schema.Type.Slice() {
		if t == typ {
			return true
		}
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "(body)"
	}
	return path
}
