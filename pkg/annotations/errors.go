package annotations

import "fmt"

// ValidationError reports a structurally invalid fragment: a required
// attribute or child element is missing, or mutually exclusive children
// are both present. Unresolvable references are reported separately as
// typeref.NotFoundError.
type ValidationError struct {
	// Element is the offending tag name, e.g. "example" or "header".
	Element string
	// Message describes the structural problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("annotations: %s %s", e.Element, e.Message)
}

// NewValidationError builds a ValidationError for the given element.
func NewValidationError(element, message string) *ValidationError {
	return &ValidationError{Element: element, Message: message}
}
