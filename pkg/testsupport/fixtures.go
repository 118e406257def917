package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formatter/pkg/field"
	"github.com/goliatone/go-formatter/pkg/format"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source. Testing helpers fail the test on error to keep contract tests
// concise.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadOperations loads a JSON golden file of parsed operations.
func MustLoadOperations(t *testing.T, path string) map[string]pkgopenapi.Operation {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out map[string]pkgopenapi.Operation
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ. Nil and empty
// collections compare equal since JSON goldens cannot tell them apart.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got,
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(format.Config{}, "OnComplete", "Logger"),
	)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Attach binds f to a fresh in-memory field and fails the test when
// attaching is refused.
func Attach(t *testing.T, f *format.Formatter, opts ...field.MemoryOption) (*field.Memory, *format.Attachment) {
	t.Helper()

	host := field.NewMemory(opts...)
	att, err := f.Attach(host)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	return host, att
}

// MustFormatter compiles the named preset with opts, failing the test on
// error.
func MustFormatter(t *testing.T, typ string, opts ...format.Option) *format.Formatter {
	t.Helper()

	f, err := format.New(typ, opts...)
	if err != nil {
		t.Fatalf("compile %s: %v", typ, err)
	}
	return f
}

// Type delivers a key script to host, failing the test on a script error,
// and settles the host loop.
func Type(t *testing.T, host *field.Memory, script string) {
	t.Helper()

	if err := host.Type(script); err != nil {
		t.Fatalf("type %q: %v", script, err)
	}
	if _, err := host.Loop().Settle(); err != nil {
		t.Fatalf("settle: %v", err)
	}
}
