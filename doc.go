// Package formatter attaches input masks and value formatters to text
// fields. The top-level package re-exports the common entry points; the
// engine lives under pkg/ (mask, grouping, keys, field, format) with
// declarative sources in pkg/catalog and pkg/openapi.
//
//	f, err := formatter.New(formatter.TypePhone)
//	if err != nil {
//		return err
//	}
//	att, err := f.Attach(host)
package formatter
