// Package generator coordinates the full pipeline from a
// compiler-emitted XML documentation file to per-member OpenAPI
// annotations. It applies sensible defaults (built-in loader, extractor,
// symbol-table resolver, schema registry) while remaining open to
// dependency injection for advanced callers.
package generator
