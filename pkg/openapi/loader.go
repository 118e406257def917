package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches OpenAPI documents from different sources (filesystem, fs.FS,
// HTTP). Implementations live under internal/openapi but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables HTTP loading with a default client when no
	// client is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// MaxDocumentBytes caps the size of fetched documents. Zero means
	// DefaultMaxDocumentBytes.
	MaxDocumentBytes int64
}

// DefaultMaxDocumentBytes is the document size limit applied when
// LoaderOptions.MaxDocumentBytes is zero.
const DefaultMaxDocumentBytes int64 = 8 << 20

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote OpenAPI documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxDocumentBytes caps the size of loaded documents.
func WithMaxDocumentBytes(n int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxDocumentBytes = n
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration. Implementations can embed this helper to stay
// consistent.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = DefaultMaxDocumentBytes
	}
	return cfg
}

// Construction helpers live in the top-level formatter package to prevent
// import cycles.
