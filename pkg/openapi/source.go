package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// ParseURLSource validates raw and returns a URL Source.
func ParseURLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("openapi: empty URL source")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("openapi: unsupported URL scheme %q", u.Scheme)
	}
	return urlSource{raw: raw}, nil
}

// SourceFromURL is like ParseURLSource but panics on invalid input, to
// surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	src, err := ParseURLSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// SourceFor picks a URL source for http(s) locations and a file source for
// everything else.
func SourceFor(location string) (Source, error) {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ParseURLSource(location)
	}
	if location == "" {
		return nil, fmt.Errorf("openapi: empty document location")
	}
	return SourceFromFile(location), nil
}
