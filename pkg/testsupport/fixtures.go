package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// LoadFragment reads a fixture and builds an xmldoc.Fragment using a
// file source. Testing helpers fail fast to keep contract tests concise.
func LoadFragment(t *testing.T, path string) xmldoc.Fragment {
	t.Helper()

	frag, err := LoadFragmentFromPath(path)
	if err != nil {
		t.Fatalf("load fragment: %v", err)
	}
	return frag
}

// LoadFragmentFromPath returns a Fragment without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadFragmentFromPath(path string) (xmldoc.Fragment, error) {
	if path == "" {
		return xmldoc.Fragment{}, errors.New("testsupport: fragment path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return xmldoc.Fragment{}, fmt.Errorf("testsupport: read fragment: %w", err)
	}
	frag, err := xmldoc.Parse(xmldoc.SourceFromFile(path), data)
	if err != nil {
		return xmldoc.Fragment{}, fmt.Errorf("testsupport: parse fragment: %w", err)
	}
	return frag, nil
}

// ParseFragment builds a Fragment from inline XML, the common shape for
// extractor contract tests.
func ParseFragment(t *testing.T, raw string) xmldoc.Fragment {
	t.Helper()

	frag, err := xmldoc.Parse(xmldoc.SourceInline("test"), []byte(raw))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return frag
}
