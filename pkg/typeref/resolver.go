package typeref

import (
	"context"

	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// TypeDescriptor describes a type located in one of the searched
// assemblies.
type TypeDescriptor struct {
	// FullName is the namespace-qualified type name, e.g. "System.String".
	FullName string
	// Assembly is the file name of the assembly the type was found in.
	Assembly string
	// Kind is the source-level classification: "class", "struct", "enum",
	// "interface". Informational only.
	Kind string
}

// Name returns the short type name without the namespace.
func (d TypeDescriptor) Name() string {
	for i := len(d.FullName) - 1; i >= 0; i-- {
		if d.FullName[i] == '.' {
			return d.FullName[i+1:]
		}
	}
	return d.FullName
}

// FieldDescriptor describes a constant or field located on a resolved
// type. Literal holds the field's compile-time value as serialized text,
// typically a JSON document for example payloads.
type FieldDescriptor struct {
	Name          string
	DeclaringType TypeDescriptor
	Literal       string
}

// Resolver resolves cross-references against a set of assemblies.
// Implementations must be safe for concurrent use once constructed; the
// extractor shares a single instance across fragments.
type Resolver interface {
	// ResolveType locates the type a reference points at, using the
	// declaring type for member references. Returns *NotFoundError when
	// the type is absent from every searched assembly.
	ResolveType(ctx context.Context, ref xmldoc.CrossReference) (TypeDescriptor, error)

	// ResolveField locates a field reference and its literal value.
	// Returns *NotFoundError when either the declaring type or the field
	// itself cannot be found.
	ResolveField(ctx context.Context, ref xmldoc.CrossReference) (FieldDescriptor, error)
}
