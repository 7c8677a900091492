// Package extractor implements the element mapper that walks
// documentation-comment fragments and emits OpenAPI annotation objects.
package extractor

import (
	pkgannotations "github.com/goliatone/go-apidoc/pkg/annotations"
)

// Extractor implements pkgannotations.Extractor. It holds no mutable
// state beyond its options and is safe to share across goroutines.
type Extractor struct {
	options pkgannotations.Options
}

// Ensure the implementation satisfies the public interface.
var _ pkgannotations.Extractor = (*Extractor)(nil)

// New constructs an Extractor with the given options.
func New(options pkgannotations.Options) pkgannotations.Extractor {
	return &Extractor{options: options}
}
