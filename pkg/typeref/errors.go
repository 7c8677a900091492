package typeref

import (
	"fmt"
	"strings"
)

// SymbolKind classifies what a NotFoundError failed to locate.
type SymbolKind string

const (
	SymbolKindType  SymbolKind = "type"
	SymbolKindField SymbolKind = "field"
)

// NotFoundError reports an unresolvable cross-reference. Searched lists
// the assembly file names that were consulted, in load order, so large
// documentation runs can pinpoint missing references quickly.
type NotFoundError struct {
	// Symbol is the missing symbol name: a full type name for type
	// lookups, a bare field name for field lookups.
	Symbol string
	// Kind says whether a type or a field was missing.
	Kind SymbolKind
	// DeclaringType names the containing type for field lookups.
	DeclaringType string
	// Searched enumerates the assembly file names consulted.
	Searched []string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case SymbolKindField:
		return fmt.Sprintf("typeref: field %q not found on type %q", e.Symbol, e.DeclaringType)
	default:
		return fmt.Sprintf("typeref: type %q not found (searched assemblies: %s)",
			e.Symbol, strings.Join(e.Searched, ", "))
	}
}

// NewTypeNotFound builds a NotFoundError for a missing type.
func NewTypeNotFound(fullName string, searched []string) *NotFoundError {
	return &NotFoundError{
		Symbol:   fullName,
		Kind:     SymbolKindType,
		Searched: append([]string(nil), searched...),
	}
}

// NewFieldNotFound builds a NotFoundError for a missing field on a
// resolved type.
func NewFieldNotFound(field, declaringType string, searched []string) *NotFoundError {
	return &NotFoundError{
		Symbol:        field,
		Kind:          SymbolKindField,
		DeclaringType: declaringType,
		Searched:      append([]string(nil), searched...),
	}
}
