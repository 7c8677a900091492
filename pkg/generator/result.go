package generator

import "github.com/getkin/kin-openapi/openapi3"

// MemberAnnotations holds the annotations extracted from one member's
// documentation comment.
type MemberAnnotations struct {
	Examples openapi3.Examples `json:"examples,omitempty"`
	Headers  openapi3.Headers  `json:"headers,omitempty"`
}

// Empty reports whether the member carried no recognised annotations.
func (m MemberAnnotations) Empty() bool {
	return len(m.Examples) == 0 && len(m.Headers) == 0
}

// Issue captures one member's extraction failure with enough context to
// report it across a large documentation run.
type Issue struct {
	Member  string `json:"member,omitempty"`
	Message string `json:"message"`

	err error
}

// Unwrap exposes the underlying error for errors.As matching.
func (i Issue) Unwrap() error {
	return i.err
}

// Result is the outcome of one documentation-file walk.
type Result struct {
	// Assembly is the name declared by the documentation file, when present.
	Assembly string `json:"assembly,omitempty"`
	// Members maps member names to their extracted annotations.
	Members map[string]MemberAnnotations `json:"members"`
	// Issues lists members whose extraction failed.
	Issues []Issue `json:"issues,omitempty"`
}
