// Package schemaref exposes the registry contract that maps type
// cross-references to OpenAPI schema references. The default mapping
// lives under internal/schemaref; consumers only depend on the Registry
// interface plus kin-openapi's schema types.
package schemaref
