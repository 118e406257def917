package openapi

import (
	"errors"
	"sort"

	"github.com/goliatone/go-formatter/pkg/format"
)

// Source identifies where an OpenAPI document originated so loaders can
// operate on files, fs.FS entries, or URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Origin records how a field's formatter was determined.
type Origin string

const (
	// OriginExtension marks a formatter declared with the x-formatter
	// extension.
	OriginExtension Origin = "extension"
	// OriginInferred marks a formatter derived from the schema type and
	// format.
	OriginInferred Origin = "inferred"
)

// Field is one request body property that carries a formatter.
type Field struct {
	// Path is the dotted property path; "[]" marks array items, as in
	// "contacts[].phone".
	Path        string        `json:"path"`
	Config      format.Config `json:"config"`
	Origin      Origin        `json:"origin"`
	Description string        `json:"description,omitempty"`
}

// Compile builds the field's formatter with opts applied last.
func (f Field) Compile(opts ...format.Option) (*format.Formatter, error) {
	return format.Compile(f.Config, opts...)
}

// Operation is an OpenAPI operation reduced to its formatted fields.
type Operation struct {
	ID      string  `json:"id"`
	Method  string  `json:"method"`
	Path    string  `json:"path"`
	Summary string  `json:"summary,omitempty"`
	Fields  []Field `json:"fields,omitempty"`
}

// NewOperation validates core fields and orders fields by path.
func NewOperation(id, method, path string, fields []Field) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}
	sorted := append([]Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	return Operation{
		ID:     id,
		Method: method,
		Path:   path,
		Fields: sorted,
	}, nil
}

// Field looks up a field by path.
func (op Operation) Field(path string) (Field, bool) {
	for _, f := range op.Fields {
		if f.Path == path {
			return f, true
		}
	}
	return Field{}, false
}

// FieldPaths returns the path of every field, in order.
func (op Operation) FieldPaths() []string {
	paths := make([]string, len(op.Fields))
	for i, f := range op.Fields {
		paths[i] = f.Path
	}
	return paths
}
