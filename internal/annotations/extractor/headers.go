package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgannotations "github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Headers extracts every <header> child of the fragment root. Each entry
// carries a schema resolved through the registry; a header without a
// resolvable type is a hard failure, never a default.
func (e *Extractor) Headers(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver, schemas schemaref.Registry) (openapi3.Headers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root := frag.Root()
	if root == nil {
		return nil, errors.New("annotations: fragment has no root element")
	}
	if schemas == nil {
		return nil, errors.New("annotations: schema registry is required")
	}

	out := openapi3.Headers{}
	for _, el := range root.SelectElements("header") {
		name := strings.TrimSpace(el.SelectAttrValue("name", ""))
		if name == "" {
			return nil, pkgannotations.NewValidationError("header", "must have a name attribute")
		}
		if _, exists := out[name]; exists {
			return nil, pkgannotations.NewValidationError("header", fmt.Sprintf("name %q is used more than once", name))
		}

		rawRef := strings.TrimSpace(el.SelectAttrValue("cref", ""))
		if rawRef == "" {
			return nil, pkgannotations.NewValidationError("header", fmt.Sprintf("%q must have a cref attribute", name))
		}
		ref, err := xmldoc.ParseCrossReference(rawRef)
		if err != nil {
			return nil, err
		}

		schema, err := schemas.SchemaFor(ctx, ref, resolver)
		if err != nil {
			return nil, err
		}

		header := &openapi3.Header{
			Parameter: openapi3.Parameter{Schema: schema},
		}
		if description := el.SelectElement("description"); description != nil {
			header.Description = e.text(description)
		}
		out[name] = &openapi3.HeaderRef{Value: header}
	}
	return out, nil
}
