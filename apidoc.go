// Package apidoc extracts OpenAPI annotation objects (examples, headers)
// from XML documentation comments. The top-level package exposes
// construction helpers and one-call entry points; the contracts live
// under pkg/ and the implementations under internal/.
package apidoc

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	internalExtractor "github.com/goliatone/go-apidoc/internal/annotations/extractor"
	internalSchemaref "github.com/goliatone/go-apidoc/internal/schemaref"
	typerefRegistry "github.com/goliatone/go-apidoc/internal/typeref/registry"
	internalLoader "github.com/goliatone/go-apidoc/internal/xmldoc/loader"
	"github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/generator"
	"github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// NewLoader constructs a documentation-file loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...xmldoc.LoaderOption) xmldoc.Loader {
	cfg := xmldoc.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewExtractor constructs an annotation extractor backed by the internal
// implementation.
func NewExtractor(options ...annotations.Option) annotations.Extractor {
	cfg := annotations.NewOptions(options...)
	return internalExtractor.New(cfg)
}

// NewResolver constructs the symbol-table resolver, seeded with the
// core-library primitives and extended by any supplied metadata options.
func NewResolver(options ...typerefRegistry.Option) (typeref.Resolver, error) {
	return typerefRegistry.New(options...)
}

// NewSchemaRegistry constructs the default type-to-schema mapping.
func NewSchemaRegistry() schemaref.Registry {
	return internalSchemaref.New()
}

// NewGenerator exposes the generator constructor from the top-level
// module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// ExtractExamples maps every example element of the fragment using the
// built-in extractor. It is the simplest entry point for callers holding
// a single documentation fragment.
func ExtractExamples(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver, options ...annotations.Option) (openapi3.Examples, error) {
	return NewExtractor(options...).Examples(ctx, frag, resolver)
}

// ExtractHeaders maps every header element of the fragment using the
// built-in extractor and schema registry.
func ExtractHeaders(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver, schemas schemaref.Registry, options ...annotations.Option) (openapi3.Headers, error) {
	if schemas == nil {
		schemas = NewSchemaRegistry()
	}
	return NewExtractor(options...).Headers(ctx, frag, resolver, schemas)
}

// GenerateFromFile walks a documentation file on disk and returns the
// extracted annotations for every member.
func GenerateFromFile(ctx context.Context, path string, options ...generator.Option) (generator.Result, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Source: xmldoc.SourceFromFile(path),
	})
}
