package annotations

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Extractor walks a documentation fragment and emits OpenAPI annotation
// objects. Both operations are single-pass and fail fast: the first
// malformed element or unresolvable reference aborts the walk and no
// partial mapping is returned.
type Extractor interface {
	// Examples extracts every direct or nested <example> child of the
	// fragment root into a map keyed by the element's name attribute, or
	// by a generated example<N> key in document order.
	Examples(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver) (openapi3.Examples, error)

	// Headers extracts every <header> child of the fragment root. Each
	// entry is keyed by the required name attribute and always carries a
	// schema resolved through the registry.
	Headers(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver, schemas schemaref.Registry) (openapi3.Headers, error)
}

// Options exposes extraction toggles.
type Options struct {
	// SanitizeText strips inline documentation markup from summary and
	// description text before it lands in the output objects. Defaults
	// to true.
	SanitizeText bool
}

// Option mutates Options during construction.
type Option func(*Options)

// WithTextSanitization toggles markup stripping for summaries and
// descriptions.
func WithTextSanitization(enabled bool) Option {
	return func(opts *Options) {
		opts.SanitizeText = enabled
	}
}

// NewOptions applies Option functions and returns the resulting
// configuration. Implementations under internal/annotations should call
// this helper to remain consistent.
func NewOptions(options ...Option) Options {
	cfg := Options{
		SanitizeText: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level apidoc package to avoid import cycles.
