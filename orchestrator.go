package formatter

import (
	"context"

	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
	"github.com/goliatone/go-formatter/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers resolving formatters from
// the top-level module.
type Request = orchestrator.Request

// Script aliases orchestrator.Script.
type Script = orchestrator.Script

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Resolve compiles the formatter described by req using a default
// orchestrator configured with options.
func Resolve(ctx context.Context, req Request, options ...orchestrator.Option) (*Formatter, error) {
	return orchestrator.New(options...).Resolve(ctx, req)
}

// ResolveField compiles the formatter an OpenAPI document declares for one
// request body field of an operation.
func ResolveField(ctx context.Context, source pkgopenapi.Source, operationID, fieldPath string, options ...orchestrator.Option) (*Formatter, error) {
	return Resolve(ctx, Request{
		Source:      source,
		OperationID: operationID,
		Field:       fieldPath,
	}, options...)
}

// Run replays script against a fresh in-memory field driven by f.
func Run(ctx context.Context, f *Formatter, script Script) (Result, error) {
	return orchestrator.Run(ctx, f, script)
}
