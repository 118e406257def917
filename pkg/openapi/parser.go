package openapi

import "context"

// Parser extracts formatted fields from OpenAPI documents.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// DefaultExtensionKey is the schema extension that declares a formatter.
const DefaultExtensionKey = "x-formatter"

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ValidateDocument runs OpenAPI validation before extraction.
	ValidateDocument bool

	// InferFormatters derives formatters for properties without the
	// extension: phone and tel string formats become phone masks, integers
	// become digit filters and numbers in an amount, money or currency
	// format become amounts.
	InferFormatters bool

	// ExtensionKey overrides DefaultExtensionKey.
	ExtensionKey string

	// IncludeEmpty keeps operations that carry no formatted fields.
	IncludeEmpty bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithValidation toggles document validation.
func WithValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ValidateDocument = enabled
	}
}

// WithInference toggles formatter inference from schema types.
func WithInference(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.InferFormatters = enabled
	}
}

// WithExtensionKey sets the extension that declares formatters.
func WithExtensionKey(key string) ParserOption {
	return func(opts *ParserOptions) {
		opts.ExtensionKey = key
	}
}

// WithEmptyOperations keeps operations without formatted fields.
func WithEmptyOperations(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.IncludeEmpty = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/openapi should call this helper
// to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ValidateDocument: true,
		InferFormatters:  true,
		ExtensionKey:     DefaultExtensionKey,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.ExtensionKey == "" {
		cfg.ExtensionKey = DefaultExtensionKey
	}
	return cfg
}
