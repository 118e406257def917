package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	if options.ExtensionKey == "" {
		options.ExtensionKey = pkgopenapi.DefaultExtensionKey
	}
	return &Parser{options: options}
}

// requestMediaTypes are tried in order when picking the request body schema.
var requestMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// Operations converts a Document into a map keyed by operationId. Operations
// without an id are keyed by "method:path".
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	root, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if root.Paths == nil || root.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}
	if p.options.ValidateDocument {
		if err := root.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	for path, item := range root.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := p.collectOperation(operations, method, path, operation); err != nil {
				return nil, err
			}
		}
	}
	return operations, nil
}

func (p *Parser) collectOperation(target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) error {
	if operation == nil {
		return nil
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	var fields []pkgopenapi.Field
	if ref := requestSchema(operation.RequestBody); ref != nil {
		w := walker{ext: p.options.ExtensionKey, infer: p.options.InferFormatters}
		if err := w.walk("", ref, 0); err != nil {
			return fmt.Errorf("openapi parser: operation %s: %w", opID, err)
		}
		fields = w.fields
	}
	if len(fields) == 0 && !p.options.IncludeEmpty {
		return nil
	}

	op, err := pkgopenapi.NewOperation(opID, strings.ToUpper(method), path, fields)
	if err != nil {
		return fmt.Errorf("openapi parser: %w", err)
	}
	op.Summary = operation.Summary
	target[opID] = op
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	return nil
}
