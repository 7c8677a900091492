// Package report renders a generator result as a markdown summary,
// suitable for review alongside the generated OpenAPI document.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apidoc/pkg/generator"
)

const markdownTemplate = `{% autoescape off %}# OpenAPI annotations{% if assembly %} - {{ assembly }}{% endif %}

{% for member in members %}## {{ member.name }}
{% if member.examples %}
### Examples

| Key | Summary | Value |
| --- | --- | --- |
{% for example in member.examples %}| {{ example.key }} | {{ example.summary }} | {{ example.value }} |
{% endfor %}{% endif %}{% if member.headers %}
### Headers

| Name | Type | Description |
| --- | --- | --- |
{% for header in member.headers %}| {{ header.name }} | {{ header.type }} | {{ header.description }} |
{% endfor %}{% endif %}
{% endfor %}{% if issues %}## Issues

{% for issue in issues %}- {% if issue.member %}{{ issue.member }}: {% endif %}{{ issue.message }}
{% endfor %}{% endif %}{% endautoescape %}`

// Renderer renders markdown reports from generator results.
type Renderer struct {
	tmpl *pongo2.Template
}

// New compiles the embedded markdown template.
func New() (*Renderer, error) {
	tmpl, err := pongo2.FromString(markdownTemplate)
	if err != nil {
		return nil, fmt.Errorf("report: parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the markdown report. Members and entries are sorted so
// repeated runs on identical input yield identical output.
func (r *Renderer) Render(result generator.Result) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", fmt.Errorf("report: renderer is not initialised")
	}

	members := make([]pongo2.Context, 0, len(result.Members))
	names := make([]string, 0, len(result.Members))
	for name := range result.Members {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := result.Members[name]
		members = append(members, pongo2.Context{
			"name":     name,
			"examples": exampleRows(entry.Examples),
			"headers":  headerRows(entry.Headers),
		})
	}

	issues := make([]pongo2.Context, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, pongo2.Context{
			"member":  issue.Member,
			"message": issue.Message,
		})
	}

	out, err := r.tmpl.Execute(pongo2.Context{
		"assembly": result.Assembly,
		"members":  members,
		"issues":   issues,
	})
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}

func exampleRows(examples openapi3.Examples) []pongo2.Context {
	keys := make([]string, 0, len(examples))
	for key := range examples {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]pongo2.Context, 0, len(keys))
	for _, key := range keys {
		ref := examples[key]
		if ref == nil || ref.Value == nil {
			continue
		}
		rows = append(rows, pongo2.Context{
			"key":     key,
			"summary": ref.Value.Summary,
			"value":   exampleValue(ref.Value),
		})
	}
	return rows
}

func headerRows(headers openapi3.Headers) []pongo2.Context {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]pongo2.Context, 0, len(names))
	for _, name := range names {
		ref := headers[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		rows = append(rows, pongo2.Context{
			"name":        name,
			"type":        schemaLabel(ref.Value.Schema),
			"description": ref.Value.Description,
		})
	}
	return rows
}

func exampleValue(example *openapi3.Example) string {
	if example.ExternalValue != "" {
		return example.ExternalValue
	}
	encoded, err := json.Marshal(example.Value)
	if err != nil {
		return fmt.Sprintf("%v", example.Value)
	}
	return string(encoded)
}

func schemaLabel(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	if ref.Ref != "" {
		return ref.Ref
	}
	if ref.Value == nil || ref.Value.Type == nil {
		return ""
	}
	return strings.Join(ref.Value.Type.Slice(), ",")
}
