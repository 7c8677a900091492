package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	apidoc "github.com/goliatone/go-apidoc"
	typerefRegistry "github.com/goliatone/go-apidoc/internal/typeref/registry"
	"github.com/goliatone/go-apidoc/pkg/generator"
	"github.com/goliatone/go-apidoc/pkg/report"
	"github.com/goliatone/go-apidoc/pkg/typeref"
	"github.com/goliatone/go-apidoc/pkg/xmldoc"
)

func main() {
	docPath := flag.String("doc", "", "XML documentation file path or URL")
	assemblies := flag.String("assemblies", "", "comma-separated assembly metadata YAML files")
	member := flag.String("member", "", "limit extraction to one member name")
	interactive := flag.Bool("interactive", false, "pick a member interactively when -member is empty")
	format := flag.String("format", "json", "output format: json, yaml, or markdown")
	output := flag.String("output", "", "output file (stdout if empty)")
	strict := flag.Bool("strict", false, "fail when any member produced an issue")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log := newLogger(*verbose)
	defer func() {
		_ = log.Sync()
	}()

	if *docPath == "" {
		log.Fatal("missing required -doc flag")
	}

	ctx := context.Background()

	resolver, err := newResolver(ctx, *assemblies)
	if err != nil {
		log.Fatal("load assembly metadata", zap.Error(err))
	}

	gen := apidoc.NewGenerator(
		generator.WithResolver(resolver),
		generator.WithLogger(log),
		generator.WithStrict(*strict),
		generator.WithLoader(apidoc.NewLoader(xmldoc.WithHTTPFallback(0))),
	)

	result, err := gen.Generate(ctx, generator.Request{
		Source: parseSource(*docPath),
		Member: *member,
	})
	if err != nil {
		log.Fatal("generate annotations", zap.Error(err))
	}

	if *member == "" && *interactive {
		picked, err := pickMember(result)
		if err != nil {
			log.Fatal("pick member", zap.Error(err))
		}
		for name := range result.Members {
			if name != picked {
				delete(result.Members, name)
			}
		}
	}

	rendered, err := render(result, *format)
	if err != nil {
		log.Fatal("render output", zap.Error(err))
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatal("write output", zap.Error(err))
		}
		fmt.Printf("Annotations written to %s\n", *output)
		return
	}
	fmt.Println(string(rendered))
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func newResolver(ctx context.Context, assemblies string) (typeref.Resolver, error) {
	var opts []typerefRegistry.Option
	for _, path := range strings.Split(assemblies, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		doc, err := typerefRegistry.LoadMetadataFile(ctx, path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, typerefRegistry.WithMetadata(doc))
	}
	return apidoc.NewResolver(opts...)
}

func parseSource(raw string) xmldoc.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return xmldoc.SourceFromURL(path)
	}
	return xmldoc.SourceFromFile(path)
}

func pickMember(result generator.Result) (string, error) {
	names := make([]string, 0, len(result.Members))
	for name := range result.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "", fmt.Errorf("no members with annotations found")
	}

	var picked string
	prompt := &survey.Select{
		Message: "Member to report:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

func render(result generator.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(result, "", "  ")
	case "yaml":
		return yaml.Marshal(result)
	case "markdown":
		renderer, err := report.New()
		if err != nil {
			return nil, err
		}
		out, err := renderer.Render(result)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
