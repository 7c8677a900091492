package report

import (
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apidoc/pkg/generator"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}
	return r
}

func sampleResult() generator.Result {
	return generator.Result{
		Assembly: "Contracts",
		Members: map[string]generator.MemberAnnotations{
			"M:Contracts.OrdersController.Get": {
				Examples: openapi3.Examples{
					"ok": &openapi3.ExampleRef{Value: &openapi3.Example{
						Summary:       "Happy path",
						ExternalValue: "https://localhost/ok.json",
					}},
					"payload": &openapi3.ExampleRef{Value: &openapi3.Example{
						Value: map[string]any{"id": 1},
					}},
				},
				Headers: openapi3.Headers{
					"X-Request-Id": &openapi3.HeaderRef{Value: &openapi3.Header{
						Parameter: openapi3.Parameter{
							Description: "Correlation id",
							Schema:      openapi3.NewSchemaRef("", openapi3.NewUUIDSchema()),
						},
					}},
				},
			},
		},
		Issues: []generator.Issue{
			{Member: "M:Contracts.OrdersController.Post", Message: "example must provide a value"},
		},
	}
}

func TestRenderIncludesAllSections(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t).Render(sampleResult())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"# OpenAPI annotations - Contracts",
		"## M:Contracts.OrdersController.Get",
		"| ok | Happy path | https://localhost/ok.json |",
		`| payload |  | {"id":1} |`,
		"| X-Request-Id | string | Correlation id |",
		"## Issues",
		"- M:Contracts.OrdersController.Post: example must provide a value",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	first, err := r.Render(sampleResult())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := r.Render(sampleResult())
		if err != nil {
			t.Fatalf("render (run %d): %v", i, err)
		}
		if again != first {
			t.Fatalf("render output changed between runs:\n%s\n---\n%s", first, again)
		}
	}
}

func TestRenderEmptyResult(t *testing.T) {
	t.Parallel()

	out, err := newRenderer(t).Render(generator.Result{})
	if err != nil {
		t.Fatalf("render empty result: %v", err)
	}
	if !strings.Contains(out, "# OpenAPI annotations") {
		t.Fatalf("expected title, got:\n%s", out)
	}
	if strings.Contains(out, "## Issues") {
		t.Fatalf("empty result should not render an issues section:\n%s", out)
	}
}

func TestRenderComponentRefLabel(t *testing.T) {
	t.Parallel()

	result := generator.Result{
		Members: map[string]generator.MemberAnnotations{
			"M:Contracts.OrdersController.Get": {
				Headers: openapi3.Headers{
					"X-Order": &openapi3.HeaderRef{Value: &openapi3.Header{
						Parameter: openapi3.Parameter{
							Schema: openapi3.NewSchemaRef("#/components/schemas/Order", nil),
						},
					}},
				},
			},
		},
	}

	out, err := newRenderer(t).Render(result)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "| X-Order | #/components/schemas/Order |") {
		t.Fatalf("expected component ref label, got:\n%s", out)
	}
}
