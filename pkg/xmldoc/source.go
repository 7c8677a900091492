package xmldoc

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a documentation file or fragment originated.
// Loaders operate on files, fs.FS entries, URLs, or inline payloads
// without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindURL    SourceKind = "url"
	SourceKindInline SourceKind = "inline"
)

// fileSource identifies on-disk documentation files.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("xmldoc: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("xmldoc: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// inlineSource labels fragments supplied directly as bytes, typically
// in tests or when the caller already holds the comment text.
type inlineSource struct {
	label string
}

func (s inlineSource) Location() string {
	return s.label
}

func (s inlineSource) Kind() SourceKind {
	return SourceKindInline
}

// SourceInline returns a Source for payloads supplied in memory. The
// label only serves diagnostics and defaults to "inline".
func SourceInline(label string) Source {
	if label == "" {
		label = "inline"
	}
	return inlineSource{label: label}
}
