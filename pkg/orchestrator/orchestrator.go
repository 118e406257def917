package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-formatter/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formatter/internal/openapi/parser"
	"github.com/goliatone/go-formatter/pkg/catalog"
	"github.com/goliatone/go-formatter/pkg/format"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithCatalog resolves request names against store before the presets.
func WithCatalog(store *catalog.Store) Option {
	return func(o *Orchestrator) {
		o.catalog = store
	}
}

// WithTransformer registers a Transformer that can rewrite the resolved
// configuration before it is compiled.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger receives the formatter's rejection traces.
func WithLogger(logger func(format string, args ...any)) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator resolves formatters from presets, a catalog, or OpenAPI
// documents. Missing dependencies are initialised with the built-in
// implementations.
type Orchestrator struct {
	loader      pkgopenapi.Loader
	parser      pkgopenapi.Parser
	catalog     *catalog.Store
	transformer Transformer
	logger      func(format string, args ...any)
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.catalog == nil {
		o.catalog = catalog.New()
	}
	return o
}

// Request names the formatter to resolve. Exactly one of Config, Name or an
// OpenAPI field (Source or Document with OperationID and Field) is used.
type Request struct {
	// Config is an inline configuration.
	Config *format.Config

	// Name selects a catalog entry or a preset.
	Name string

	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have
	// the payload.
	Document *pkgopenapi.Document

	// OperationID and Field select the formatted request body property.
	OperationID string
	Field       string

	// Options are applied after every other layer.
	Options []format.Option
}

func (r Request) fromOpenAPI() bool {
	return r.Source != nil || r.Document != nil || r.OperationID != "" || r.Field != ""
}

// Resolve compiles the formatter a request names.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (*format.Formatter, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := o.resolveConfig(ctx, req)
	if err != nil {
		return nil, err
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &cfg); err != nil {
			return nil, fmt.Errorf("orchestrator: transform config: %w", err)
		}
	}

	opts := make([]format.Option, 0, len(req.Options)+2)
	opts = append(opts, format.WithConfig(cfg))
	if o.logger != nil {
		opts = append(opts, format.WithLogger(o.logger))
	}
	opts = append(opts, req.Options...)

	f, err := format.Compile(format.Config{}, opts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: compile: %w", err)
	}
	return f, nil
}

func (o *Orchestrator) resolveConfig(ctx context.Context, req Request) (format.Config, error) {
	selected := 0
	for _, set := range []bool{req.Config != nil, req.Name != "", req.fromOpenAPI()} {
		if set {
			selected++
		}
	}
	switch {
	case selected == 0:
		return format.Config{}, errors.New("orchestrator: a config, name or OpenAPI field is required")
	case selected > 1:
		return format.Config{}, errors.New("orchestrator: config, name and OpenAPI field are mutually exclusive")
	}

	switch {
	case req.Config != nil:
		f, err := format.Compile(*req.Config)
		if err != nil {
			return format.Config{}, fmt.Errorf("orchestrator: compile: %w", err)
		}
		return f.Config(), nil
	case req.Name != "":
		f, err := o.catalog.Formatter(req.Name)
		if err != nil {
			return format.Config{}, fmt.Errorf("orchestrator: %w", err)
		}
		return f.Config(), nil
	default:
		return o.fieldConfig(ctx, req)
	}
}

func (o *Orchestrator) fieldConfig(ctx context.Context, req Request) (format.Config, error) {
	if req.OperationID == "" || req.Field == "" {
		return format.Config{}, errors.New("orchestrator: operation id and field are required")
	}
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return format.Config{}, err
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return format.Config{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[req.OperationID]
	if !ok {
		return format.Config{}, fmt.Errorf("orchestrator: operation %q has no formatted fields", req.OperationID)
	}
	fld, ok := op.Field(req.Field)
	if !ok {
		return format.Config{}, fmt.Errorf("orchestrator: operation %q has no formatted field %q (have %v)", req.OperationID, req.Field, op.FieldPaths())
	}
	f, err := fld.Compile()
	if err != nil {
		return format.Config{}, fmt.Errorf("orchestrator: compile %s: %w", req.Field, err)
	}
	return f.Config(), nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}
