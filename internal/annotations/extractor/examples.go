package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/tidwall/gjson"

	pkgannotations "github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Examples extracts every direct or nested <example> child of the
// fragment root. Keys come from the name attribute when present and fall
// back to example<N>, counting example elements in document order from 1.
func (e *Extractor) Examples(ctx context.Context, frag xmldoc.Fragment, resolver typeref.Resolver) (openapi3.Examples, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root := frag.Root()
	if root == nil {
		return nil, errors.New("annotations: fragment has no root element")
	}

	out := openapi3.Examples{}
	for i, el := range root.FindElements(".//example") {
		key := strings.TrimSpace(el.SelectAttrValue("name", ""))
		if key == "" {
			key = fmt.Sprintf("example%d", i+1)
		}
		if _, exists := out[key]; exists {
			return nil, pkgannotations.NewValidationError("example", fmt.Sprintf("name %q is used more than once", key))
		}

		example, err := e.buildExample(ctx, el, resolver)
		if err != nil {
			return nil, err
		}
		out[key] = &openapi3.ExampleRef{Value: example}
	}
	return out, nil
}

func (e *Extractor) buildExample(ctx context.Context, el *etree.Element, resolver typeref.Resolver) (*openapi3.Example, error) {
	value := el.SelectElement("value")
	url := el.SelectElement("url")

	if value != nil && url != nil {
		return nil, pkgannotations.NewValidationError("example", "may provide either a value or a url, not both")
	}

	example := &openapi3.Example{}
	if summary := el.SelectElement("summary"); summary != nil {
		example.Summary = e.text(summary)
	}

	if url != nil {
		example.ExternalValue = strings.TrimSpace(innerText(url))
		return example, nil
	}
	if value == nil {
		return nil, pkgannotations.NewValidationError("example", "must provide either a value or a url")
	}

	ref, ok, err := valueCrossReference(value)
	if err != nil {
		return nil, err
	}
	if ok {
		if resolver == nil {
			return nil, errors.New("annotations: resolver is required to follow cross-references")
		}
		field, err := resolver.ResolveField(ctx, ref)
		if err != nil {
			return nil, err
		}
		example.Value = parseLiteral(field.Literal)
		return example, nil
	}

	text := strings.TrimSpace(innerText(value))
	if text == "" {
		return nil, pkgannotations.NewValidationError("example", "must provide a value")
	}
	example.Value = text
	return example, nil
}

// valueCrossReference looks for a cref attribute on the value element
// itself, then on a nested <see> marker. First match wins.
func valueCrossReference(value *etree.Element) (xmldoc.CrossReference, bool, error) {
	raw := strings.TrimSpace(value.SelectAttrValue("cref", ""))
	if raw == "" {
		if see := value.FindElement(".//see"); see != nil {
			raw = strings.TrimSpace(see.SelectAttrValue("cref", ""))
		}
	}
	if raw == "" {
		return xmldoc.CrossReference{}, false, nil
	}
	ref, err := xmldoc.ParseCrossReference(raw)
	if err != nil {
		return xmldoc.CrossReference{}, false, err
	}
	return ref, true, nil
}

// parseLiteral interprets a resolved field literal as a serialized JSON
// document. Literals that do not parse stay raw strings.
func parseLiteral(literal string) any {
	trimmed := strings.TrimSpace(literal)
	if trimmed == "" {
		return ""
	}
	if gjson.Valid(trimmed) {
		return gjson.Parse(trimmed).Value()
	}
	return trimmed
}
