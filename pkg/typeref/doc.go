// Package typeref exposes the type-resolution contract used to follow
// cross-references from documentation comments into compiled metadata.
// The symbol-table implementation lives under internal/typeref;
// alternative implementations (reflection, parsed assemblies) only need
// to satisfy the Resolver interface.
package typeref
