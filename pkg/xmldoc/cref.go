package xmldoc

import (
	"errors"
	"fmt"
	"strings"
)

// RefKind identifies what a cross-reference points at, derived from the
// single-letter prefix of the reference string.
type RefKind string

const (
	RefKindType     RefKind = "T"
	RefKindField    RefKind = "F"
	RefKindProperty RefKind = "P"
	RefKindMethod   RefKind = "M"
	RefKindEvent    RefKind = "E"
)

// CrossReference is a structured reference into compiled metadata, e.g.
// "T:System.String" or "F:Contracts.Examples.Order.SampleJson". The ID
// is the fully qualified symbol name without the kind prefix.
type CrossReference struct {
	Kind RefKind
	ID   string
}

// ParseCrossReference validates and splits a reference string.
func ParseCrossReference(raw string) (CrossReference, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CrossReference{}, errors.New("xmldoc: cross-reference is empty")
	}
	if len(trimmed) < 3 || trimmed[1] != ':' {
		return CrossReference{}, fmt.Errorf("xmldoc: malformed cross-reference %q", raw)
	}

	kind := RefKind(trimmed[:1])
	switch kind {
	case RefKindType, RefKindField, RefKindProperty, RefKindMethod, RefKindEvent:
	default:
		return CrossReference{}, fmt.Errorf("xmldoc: unknown cross-reference kind %q in %q", trimmed[:1], raw)
	}

	return CrossReference{Kind: kind, ID: trimmed[2:]}, nil
}

// MustParseCrossReference panics on malformed input. Useful for tests.
func MustParseCrossReference(raw string) CrossReference {
	ref, err := ParseCrossReference(raw)
	if err != nil {
		panic(err)
	}
	return ref
}

// String renders the canonical prefixed form.
func (r CrossReference) String() string {
	if r.Kind == "" || r.ID == "" {
		return ""
	}
	return string(r.Kind) + ":" + r.ID
}

// IsZero reports whether the reference is unset.
func (r CrossReference) IsZero() bool {
	return r.Kind == "" && r.ID == ""
}

// TypeName returns the declaring type portion of the reference. For type
// references this is the full ID; for member references everything up to
// the final dot.
func (r CrossReference) TypeName() string {
	if r.Kind == RefKindType {
		return r.ID
	}
	idx := strings.LastIndex(r.ID, ".")
	if idx <= 0 {
		return ""
	}
	return r.ID[:idx]
}

// MemberName returns the member portion of a member reference, or "" for
// type references.
func (r CrossReference) MemberName() string {
	if r.Kind == RefKindType {
		return ""
	}
	idx := strings.LastIndex(r.ID, ".")
	if idx < 0 || idx == len(r.ID)-1 {
		return r.ID
	}
	return r.ID[idx+1:]
}
