package registry

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is one assembly's symbol table, decoded from a YAML document.
type Metadata struct {
	Assembly string         `yaml:"assembly"`
	Types    []TypeMetadata `yaml:"types"`
}

// TypeMetadata declares one type and its example-bearing fields.
type TypeMetadata struct {
	Name   string          `yaml:"name"`
	Kind   string          `yaml:"kind"`
	Fields []FieldMetadata `yaml:"fields"`
}

// FieldMetadata declares a constant field and its serialized literal.
type FieldMetadata struct {
	Name    string `yaml:"name"`
	Literal string `yaml:"literal"`
}

// Option configures registry construction.
type Option func(*config)

type config struct {
	metadata  []Metadata
	fragments []rawMetadata
}

type rawMetadata struct {
	payload []byte
	origin  string
}

func newConfig(options ...Option) *config {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// WithMetadata adds already-decoded assembly tables.
func WithMetadata(docs ...Metadata) Option {
	return func(cfg *config) {
		cfg.metadata = append(cfg.metadata, docs...)
	}
}

// WithMetadataBytes adds a raw YAML metadata document. The origin label
// only serves error messages.
func WithMetadataBytes(payload []byte, origin string) Option {
	return func(cfg *config) {
		cfg.fragments = append(cfg.fragments, rawMetadata{payload: payload, origin: origin})
	}
}

// LoadMetadataFile decodes one assembly metadata document from disk.
func LoadMetadataFile(ctx context.Context, path string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("typeref registry: read metadata: %w", err)
	}
	return decodeMetadata(data, path)
}

// LoadMetadataFS decodes one assembly metadata document from an fs.FS.
func LoadMetadataFS(ctx context.Context, filesystem fs.FS, name string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}
	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return Metadata{}, fmt.Errorf("typeref registry: read metadata: %w", err)
	}
	return decodeMetadata(data, name)
}

func decodeMetadata(payload []byte, origin string) (Metadata, error) {
	var doc Metadata
	if err := yaml.Unmarshal(payload, &doc); err != nil {
		return Metadata{}, fmt.Errorf("typeref registry: decode metadata %s: %w", origin, err)
	}
	if doc.Assembly == "" {
		return Metadata{}, fmt.Errorf("typeref registry: metadata %s is missing an assembly name", origin)
	}
	return doc, nil
}
