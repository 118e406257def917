// Package orchestrator wires the catalog, preset and OpenAPI lookups that
// turn a request into a compiled formatter, and drives a formatter over an
// in-memory field for callers that prefer a single entry point.
package orchestrator
