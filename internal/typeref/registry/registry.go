// Package registry implements typeref.Resolver on top of precomputed
// symbol tables. Tables are seeded with the core-library primitives and
// extended by assembly metadata documents, so no runtime reflection is
// required to follow cross-references.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Registry is a symbol-table backed Resolver. Construction loads every
// table up front; afterwards the registry is read-only and safe to share
// across goroutines.
type Registry struct {
	// assemblies preserves load order for NotFound diagnostics.
	assemblies []string
	types      map[string]typeEntry
}

type typeEntry struct {
	descriptor typeref.TypeDescriptor
	fields     map[string]string
}

// Ensure the implementation satisfies the public interface.
var _ typeref.Resolver = (*Registry)(nil)

// New constructs a Registry holding only the built-in core-library
// table. Use Option values or LoadMetadata to add assemblies.
func New(options ...Option) (*Registry, error) {
	r := &Registry{
		types: make(map[string]typeEntry),
	}
	r.seedCoreLibrary()

	cfg := newConfig(options...)
	for _, doc := range cfg.metadata {
		if err := r.addMetadata(doc); err != nil {
			return nil, err
		}
	}
	for _, frag := range cfg.fragments {
		doc, err := decodeMetadata(frag.payload, frag.origin)
		if err != nil {
			return nil, err
		}
		if err := r.addMetadata(doc); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Assemblies returns the searched assembly file names in load order.
func (r *Registry) Assemblies() []string {
	return append([]string(nil), r.assemblies...)
}

// ResolveType locates the type behind a reference, consulting the
// declaring type for member references.
func (r *Registry) ResolveType(ctx context.Context, ref xmldoc.CrossReference) (typeref.TypeDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return typeref.TypeDescriptor{}, err
	}
	if ref.IsZero() {
		return typeref.TypeDescriptor{}, errors.New("typeref registry: cross-reference is empty")
	}

	name := ref.TypeName()
	if name == "" {
		return typeref.TypeDescriptor{}, fmt.Errorf("typeref registry: reference %q has no declaring type", ref)
	}
	entry, ok := r.types[name]
	if !ok {
		return typeref.TypeDescriptor{}, typeref.NewTypeNotFound(name, r.assemblies)
	}
	return entry.descriptor, nil
}

// ResolveField locates a field reference and its serialized literal.
func (r *Registry) ResolveField(ctx context.Context, ref xmldoc.CrossReference) (typeref.FieldDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return typeref.FieldDescriptor{}, err
	}
	if ref.Kind != xmldoc.RefKindField && ref.Kind != xmldoc.RefKindProperty {
		return typeref.FieldDescriptor{}, fmt.Errorf("typeref registry: reference %q does not point at a field", ref)
	}

	typeName := ref.TypeName()
	entry, ok := r.types[typeName]
	if !ok {
		return typeref.FieldDescriptor{}, typeref.NewTypeNotFound(typeName, r.assemblies)
	}

	fieldName := ref.MemberName()
	literal, ok := entry.fields[fieldName]
	if !ok {
		return typeref.FieldDescriptor{}, typeref.NewFieldNotFound(fieldName, typeName, r.assemblies)
	}

	return typeref.FieldDescriptor{
		Name:          fieldName,
		DeclaringType: entry.descriptor,
		Literal:       literal,
	}, nil
}

func (r *Registry) addMetadata(doc Metadata) error {
	if doc.Assembly == "" {
		return errors.New("typeref registry: metadata document is missing an assembly name")
	}
	for _, existing := range r.assemblies {
		if existing == doc.Assembly {
			return fmt.Errorf("typeref registry: assembly %q loaded twice", doc.Assembly)
		}
	}
	r.assemblies = append(r.assemblies, doc.Assembly)

	for _, t := range doc.Types {
		if t.Name == "" {
			return fmt.Errorf("typeref registry: assembly %q declares a type without a name", doc.Assembly)
		}
		if _, exists := r.types[t.Name]; exists {
			return fmt.Errorf("typeref registry: type %q declared more than once", t.Name)
		}
		entry := typeEntry{
			descriptor: typeref.TypeDescriptor{
				FullName: t.Name,
				Assembly: doc.Assembly,
				Kind:     t.Kind,
			},
			fields: make(map[string]string, len(t.Fields)),
		}
		for _, f := range t.Fields {
			if f.Name == "" {
				return fmt.Errorf("typeref registry: type %q declares a field without a name", t.Name)
			}
			entry.fields[f.Name] = f.Literal
		}
		r.types[t.Name] = entry
	}
	return nil
}
