package extractor

import (
	"context"
	"testing"

	internalSchemaref "github.com/goliatone/go-apidoc/internal/schemaref"
	pkgannotations "github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/testsupport"
)

func TestTextCollectsNestedInlineMarkup(t *testing.T) {
	t.Parallel()

	frag := testsupport.ParseFragment(t, `<parent>
  <header name="header1" cref="T:System.String">
    <description>Returned for <c>GET</c> requests</description>
  </header>
</parent>`)

	extractor := New(pkgannotations.NewOptions())
	headers, err := extractor.Headers(context.Background(), frag, newTestResolver(t), internalSchemaref.New())
	if err != nil {
		t.Fatalf("extract headers: %v", err)
	}

	if got := headers["header1"].Value.Description; got != "Returned for GET requests" {
		t.Fatalf("description = %q, want nested text collected", got)
	}
}

func TestTextStripsEscapedMarkup(t *testing.T) {
	t.Parallel()

	const document = `<parent>
  <header name="header1" cref="T:System.String">
    <description>&lt;b&gt;bold&lt;/b&gt; claim</description>
  </header>
</parent>`

	sanitizing := New(pkgannotations.NewOptions())
	headers, err := sanitizing.Headers(context.Background(),
		testsupport.ParseFragment(t, document), newTestResolver(t), internalSchemaref.New())
	if err != nil {
		t.Fatalf("extract headers: %v", err)
	}
	if got := headers["header1"].Value.Description; got != "bold claim" {
		t.Fatalf("description = %q, want markup stripped", got)
	}

	raw := New(pkgannotations.NewOptions(pkgannotations.WithTextSanitization(false)))
	headers, err = raw.Headers(context.Background(),
		testsupport.ParseFragment(t, document), newTestResolver(t), internalSchemaref.New())
	if err != nil {
		t.Fatalf("extract headers: %v", err)
	}
	if got := headers["header1"].Value.Description; got != "<b>bold</b> claim" {
		t.Fatalf("description = %q, want raw markup preserved", got)
	}
}
