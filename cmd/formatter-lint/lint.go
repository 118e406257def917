package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formatter/pkg/catalog"
	"github.com/goliatone/go-formatter/pkg/format"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

type violation struct {
	file     string
	location string
	message  string
}

type linter struct {
	key     string
	catalog *catalog.Store
	parser  pkgopenapi.Parser
}

func (l *linter) lintFile(ctx context.Context, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return l.lint(ctx, path, raw)
}

// lint reports every extension value that cannot compile, then runs the
// parser over the document for problems only visible with references
// resolved.
func (l *linter) lint(ctx context.Context, file string, raw []byte) ([]violation, error) {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	result := l.walk(file, nil, tree)
	if len(result) > 0 {
		return result, nil
	}

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(file), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}
	if _, err := l.parser.Operations(ctx, doc); err != nil {
		result = append(result, violation{file: file, location: "document", message: err.Error()})
	}
	return result, nil
}

func (l *linter) walk(file string, path []string, node any) []violation {
	var result []violation
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for key := range n {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if key == l.key {
				if msg := l.check(n[key]); msg != "" {
					result = append(result, violation{file: file, location: formatLocation(path), message: msg})
				}
				continue
			}
			result = append(result, l.walk(file, appendPath(path, key), n[key])...)
		}
	case []any:
		for i, item := range n {
			result = append(result, l.walk(file, appendPath(path, fmt.Sprintf("[%d]", i)), item)...)
		}
	}
	return result
}

// check returns a message describing why value is not a usable extension
// value, or "".
func (l *linter) check(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return fmt.Sprintf("%s: true is not allowed, name a formatter or use false", l.key)
		}
		return ""
	case string:
		if _, err := l.catalog.Formatter(v); err != nil {
			return err.Error()
		}
		return ""
	case map[string]any:
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("encode %s: %v", l.key, err)
		}
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.DisallowUnknownFields()
		var cfg format.Config
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Sprintf("decode %s: %v", l.key, err)
		}
		if _, err := format.Compile(cfg); err != nil {
			return err.Error()
		}
		return ""
	default:
		return fmt.Sprintf("%s must be false, a formatter name or an object (got %T)", l.key, value)
	}
}

func sortViolations(violations []violation) {
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, " > ")
}
