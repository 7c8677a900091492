// Package xmldoc exposes the public contracts for documentation-comment
// fragments: sources, parsed fragment trees, and cross-references into
// compiled metadata. Loader implementations live under internal/xmldoc
// to keep fetch strategies hidden from consumers.
package xmldoc
