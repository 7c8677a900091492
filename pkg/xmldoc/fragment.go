package xmldoc

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Fragment wraps one parsed documentation-comment tree together with its
// origin. Extractors treat the tree as read-only; callers must not mutate
// elements after handing a Fragment to an extractor.
type Fragment struct {
	source Source
	root   *etree.Element
}

// Parse reads an XML payload into a Fragment. Parsing is permissive
// because documentation comments in the wild frequently carry stray
// entities and unescaped characters.
func Parse(src Source, raw []byte) (Fragment, error) {
	if src == nil {
		return Fragment{}, errors.New("xmldoc: source is required")
	}
	if len(raw) == 0 {
		return Fragment{}, errors.New("xmldoc: raw fragment is empty")
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
	}
	if err := doc.ReadFromBytes(raw); err != nil {
		return Fragment{}, fmt.Errorf("xmldoc: parse fragment: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return Fragment{}, errors.New("xmldoc: fragment has no root element")
	}
	return Fragment{source: src, root: root}, nil
}

// MustParse panics if the fragment cannot be parsed. Useful for tests.
func MustParse(src Source, raw []byte) Fragment {
	frag, err := Parse(src, raw)
	if err != nil {
		panic(err)
	}
	return frag
}

// FromElement wraps an already-parsed element, for callers that walk a
// larger document (e.g. a compiler-emitted documentation file) and hand
// individual member elements to the extractor.
func FromElement(src Source, el *etree.Element) (Fragment, error) {
	if src == nil {
		return Fragment{}, errors.New("xmldoc: source is required")
	}
	if el == nil {
		return Fragment{}, errors.New("xmldoc: element is nil")
	}
	return Fragment{source: src, root: el}, nil
}

// Root returns the fragment's root element.
func (f Fragment) Root() *etree.Element {
	return f.root
}

// Source returns the origin metadata for the fragment.
func (f Fragment) Source() Source {
	return f.source
}

// Location returns the string identifier for the origin.
func (f Fragment) Location() string {
	if f.source == nil {
		return ""
	}
	return f.source.Location()
}
