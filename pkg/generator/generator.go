package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	internalExtractor "github.com/goliatone/go-apidoc/internal/annotations/extractor"
	internalSchemaref "github.com/goliatone/go-apidoc/internal/schemaref"
	internalLoader "github.com/goliatone/go-apidoc/internal/xmldoc/loader"
	typerefRegistry "github.com/goliatone/go-apidoc/internal/typeref/registry"
	"github.com/goliatone/go-apidoc/pkg/annotations"
	"github.com/goliatone/go-apidoc/pkg/schemaref"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

// Request identifies what to process. Either Source (fetched through the
// loader) or Document (pre-loaded) must be set; Member optionally limits
// the walk to one member name.
type Request struct {
	Source   xmldoc.Source
	Document *xmldoc.Fragment
	Member   string
}

// Generator walks a documentation file and extracts OpenAPI annotations
// for every member, collecting per-member failures so one malformed
// comment does not abort an entire documentation run.
type Generator struct {
	loader        xmldoc.Loader
	extractor     annotations.Extractor
	resolver      typeref.Resolver
	schemas       schemaref.Registry
	log           *zap.Logger
	strict        bool
	initialiseErr error
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so
// callers can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		log: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = internalLoader.New(xmldoc.NewLoaderOptions())
	}
	if g.extractor == nil {
		g.extractor = internalExtractor.New(annotations.NewOptions())
	}
	if g.resolver == nil {
		resolver, err := typerefRegistry.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: initialise resolver: %w", err)
			return
		}
		g.resolver = resolver
	}
	if g.schemas == nil {
		g.schemas = internalSchemaref.New()
	}
}

// Generate loads the documentation file, walks its members, and returns
// the extracted annotations. Per-member failures land in Result.Issues;
// in strict mode they are additionally combined into the returned error.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if g.initialiseErr != nil {
		return Result{}, g.initialiseErr
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	frag, err := g.resolveFragment(ctx, req)
	if err != nil {
		return Result{}, err
	}

	root := frag.Root()
	if root == nil {
		return Result{}, errors.New("generator: documentation file has no root element")
	}
	if root.Tag != "doc" {
		return Result{}, fmt.Errorf("generator: unexpected root element <%s>, want <doc>", root.Tag)
	}

	result := Result{Members: make(map[string]MemberAnnotations)}
	if name := root.FindElement("assembly/name"); name != nil {
		result.Assembly = strings.TrimSpace(name.Text())
	}

	members := root.FindElements("members/member")
	matched := false
	for _, member := range members {
		name := strings.TrimSpace(member.SelectAttrValue("name", ""))
		if name == "" {
			result.Issues = append(result.Issues, Issue{
				Member:  "",
				Message: "member element is missing a name attribute",
			})
			continue
		}
		if req.Member != "" && req.Member != name {
			continue
		}
		matched = true

		memberFrag, err := xmldoc.FromElement(frag.Source(), member)
		if err != nil {
			return Result{}, err
		}

		entry, err := g.extractMember(ctx, memberFrag)
		if err != nil {
			g.log.Warn("member annotation extraction failed",
				zap.String("member", name), zap.Error(err))
			result.Issues = append(result.Issues, Issue{
				Member:  name,
				Message: err.Error(),
				err:     err,
			})
			continue
		}
		if entry.Empty() {
			continue
		}

		g.log.Debug("extracted member annotations",
			zap.String("member", name),
			zap.Int("examples", len(entry.Examples)),
			zap.Int("headers", len(entry.Headers)))
		result.Members[name] = entry
	}

	if req.Member != "" && !matched {
		result.Issues = append(result.Issues, Issue{
			Member:  req.Member,
			Message: "member not found in documentation file",
		})
	}

	if g.strict && len(result.Issues) > 0 {
		var combined error
		for _, issue := range result.Issues {
			err := issue.Unwrap()
			if err == nil {
				err = errors.New(issue.Message)
			}
			combined = multierr.Append(combined, err)
		}
		return result, fmt.Errorf("generator: %d member(s) failed: %w", len(result.Issues), combined)
	}
	return result, nil
}

func (g *Generator) resolveFragment(ctx context.Context, req Request) (xmldoc.Fragment, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return xmldoc.Fragment{}, errors.New("generator: request needs a source or a document")
	}
	if g.loader == nil {
		return xmldoc.Fragment{}, errors.New("generator: loader is not configured")
	}
	return g.loader.Load(ctx, req.Source)
}

func (g *Generator) extractMember(ctx context.Context, frag xmldoc.Fragment) (MemberAnnotations, error) {
	examples, err := g.extractor.Examples(ctx, frag, g.resolver)
	if err != nil {
		return MemberAnnotations{}, err
	}
	headers, err := g.extractor.Headers(ctx, frag, g.resolver, g.schemas)
	if err != nil {
		return MemberAnnotations{}, err
	}
	return MemberAnnotations{Examples: examples, Headers: headers}, nil
}
