package apidoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-apidoc/pkg/testsupport"
)

func TestExtractExamplesFacade(t *testing.T) {
	t.Parallel()

	frag := testsupport.ParseFragment(t, `<parent>
  <example name="ok"><url>https://localhost/ok.json</url></example>
</parent>`)

	resolver, err := NewResolver()
	if err != nil {
		t.Fatalf("construct resolver: %v", err)
	}

	examples, err := ExtractExamples(context.Background(), frag, resolver)
	if err != nil {
		t.Fatalf("extract examples: %v", err)
	}
	if got := examples["ok"].Value.ExternalValue; got != "https://localhost/ok.json" {
		t.Fatalf("external value = %q, want fixture url", got)
	}
}

func TestExtractHeadersFacadeDefaultsSchemaRegistry(t *testing.T) {
	t.Parallel()

	frag := testsupport.ParseFragment(t, `<parent>
  <header name="X-Count" cref="T:System.Int32"></header>
</parent>`)

	resolver, err := NewResolver()
	if err != nil {
		t.Fatalf("construct resolver: %v", err)
	}

	headers, err := ExtractHeaders(context.Background(), frag, resolver, nil)
	if err != nil {
		t.Fatalf("extract headers: %v", err)
	}
	schema := headers["X-Count"].Value.Schema
	if schema == nil || schema.Value == nil {
		t.Fatalf("expected a resolved schema, got %v", schema)
	}
	if got := schema.Value.Format; got != "int32" {
		t.Fatalf("format = %q, want int32", got)
	}
}

func TestGenerateFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "contracts.xml")
	payload := `<doc>
  <assembly><name>Contracts</name></assembly>
  <members>
    <member name="M:Contracts.OrdersController.Get">
      <example><value>ok</value></example>
    </member>
  </members>
</doc>`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	result, err := GenerateFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("generate from file: %v", err)
	}
	if result.Assembly != "Contracts" {
		t.Fatalf("assembly = %q, want Contracts", result.Assembly)
	}
	entry, ok := result.Members["M:Contracts.OrdersController.Get"]
	if !ok {
		t.Fatalf("expected the documented member in the result")
	}
	if got := entry.Examples["example1"].Value.Value; got != "ok" {
		t.Fatalf("example value = %v, want ok", got)
	}
}
