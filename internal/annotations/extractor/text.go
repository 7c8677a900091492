package extractor

import (
	"html"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// text collects an element's full inner text, optionally strips inline
// documentation markup, and trims surrounding whitespace.
func (e *Extractor) text(el *etree.Element) string {
	raw := innerText(el)
	if e.options.SanitizeText {
		raw = stripMarkup(raw)
	}
	return strings.TrimSpace(raw)
}

// innerText recursively collects character data, including text nested
// inside inline markup such as <para> or <c>.
func innerText(el *etree.Element) string {
	var text strings.Builder
	for _, node := range el.Child {
		switch token := node.(type) {
		case *etree.CharData:
			text.WriteString(token.Data)
		case *etree.Element:
			text.WriteString(innerText(token))
		}
	}
	return text.String()
}

// stripMarkup removes any raw markup that survived XML parsing inside
// character data (authors occasionally escape HTML into doc comments).
// The sanitizer escapes entities, so the result is unescaped back to
// plain text.
func stripMarkup(raw string) string {
	if raw == "" {
		return ""
	}
	return html.UnescapeString(textSanitizer().Sanitize(raw))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
