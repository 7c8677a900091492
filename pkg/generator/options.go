package generator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom documentation-file loader.
func WithLoader(loader xmldoc.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithExtractor injects a custom annotation extractor.
func WithExtractor(extractor annotations.Extractor) Option {
	return func(g *Generator) {
		g.extractor = extractor
	}
}

// WithResolver injects the type resolver consulted for cross-references.
func WithResolver(resolver typeref.Resolver) Option {
	return func(g *Generator) {
		g.resolver = resolver
	}
}

// WithSchemaRegistry injects the registry that maps resolved types to
// OpenAPI schemas.
func WithSchemaRegistry(schemas schemaref.Registry) Option {
	return func(g *Generator) {
		g.schemas = schemas
	}
}

// WithLogger injects a zap logger; the default is a no-op logger so
// library consumers stay silent unless they opt in.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithStrict makes Generate fail when any member produced an issue,
// instead of collecting issues and continuing.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}
