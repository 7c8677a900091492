// Package annotations exposes the public contracts for the element
// mapper that turns documentation-comment fragments into OpenAPI
// annotation objects. The mapper implementation lives under
// internal/annotations.
package annotations
