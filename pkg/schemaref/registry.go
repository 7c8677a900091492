package schemaref

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Registry maps a type cross-reference to an OpenAPI schema reference.
// Implementations consult the Resolver first, so an unresolvable type
// surfaces the same typeref.NotFoundError the example path produces.
type Registry interface {
	SchemaFor(ctx context.Context, ref xmldoc.CrossReference, resolver typeref.Resolver) (*openapi3.SchemaRef, error)
}
