// Package schemaref implements the default mapping from resolved types
// to OpenAPI schema references: core-library primitives map to the
// matching primitive schema, everything else becomes a component
// reference named after the type.
package schemaref

import (
	"context"
	"errors"

	"github.com/getkin/kin-openapi/openapi3"

	pkgschemaref "github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Registry is the built-in schemaref.Registry. It is stateless and safe
// to share.
type Registry struct{}

// Ensure the implementation satisfies the public interface.
var _ pkgschemaref.Registry = (*Registry)(nil)

// New constructs the default registry.
func New() *Registry {
	return &Registry{}
}

// SchemaFor resolves the referenced type and maps it to a schema
// reference. Resolution failures propagate unchanged so callers can
// match typeref.NotFoundError regardless of which extraction path
// triggered the lookup.
func (r *Registry) SchemaFor(ctx context.Context, ref xmldoc.CrossReference, resolver typeref.Resolver) (*openapi3.SchemaRef, error) {
	if resolver == nil {
		return nil, errors.New("schemaref: resolver is required")
	}

	descriptor, err := resolver.ResolveType(ctx, ref)
	if err != nil {
		return nil, err
	}

	if schema := primitiveSchema(descriptor.FullName); schema != nil {
		return openapi3.NewSchemaRef("", schema), nil
	}
	return openapi3.NewSchemaRef("#/components/schemas/"+descriptor.Name(), nil), nil
}

// primitiveSchema returns the OpenAPI schema for a core-library type, or
// nil when the type has no primitive mapping.
func primitiveSchema(fullName string) *openapi3.Schema {
	switch fullName {
	case "System.String", "System.Char":
		return openapi3.NewStringSchema()
	case "System.Boolean":
		return openapi3.NewBoolSchema()
	case "System.Byte", "System.SByte", "System.Int16", "System.UInt16", "System.Int32", "System.UInt32":
		return openapi3.NewInt32Schema()
	case "System.Byte[]":
		return openapi3.NewBytesSchema()
	case "System.Int64", "System.UInt64":
		return openapi3.NewInt64Schema()
	case "System.Single", "System.Double", "System.Decimal":
		return openapi3.NewFloat64Schema()
	case "System.DateTime", "System.DateTimeOffset":
		return openapi3.NewDateTimeSchema()
	case "System.TimeSpan":
		return openapi3.NewStringSchema()
	case "System.Guid":
		return openapi3.NewUUIDSchema()
	case "System.Uri":
		return openapi3.NewStringSchema().WithFormat("uri")
	case "System.Object":
		return openapi3.NewObjectSchema()
	default:
		return nil
	}
}
