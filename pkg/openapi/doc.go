// Package openapi exposes the public contracts for discovering formatter
// configurations in OpenAPI documents: sources, loaders, parsers and the
// operation/field wrappers they produce. Implementations live under
// internal/openapi to keep kin-openapi dependencies hidden from consumers.
//
// A request body property opts in with the x-formatter extension, either a
// preset name or an inline configuration:
//
//	phone:
//	  type: string
//	  x-formatter: phone
//	card:
//	  type: string
//	  x-formatter:
//	    pattern: "9999 9999 9999 9999"
//
// Properties without the extension can be inferred from their type and
// format (see ParserOptions.InferFormatters).
package openapi
