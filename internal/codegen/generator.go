// Package codegen drives one generation run: resolve the document into the
// intermediate representation, group operations by tag and render every file
// of the output package.
package codegen

import (
	"fmt"
	"slices"

	"github.com/solvberg/pygmalion/internal/config"
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
	"github.com/solvberg/pygmalion/internal/python"
	"github.com/solvberg/pygmalion/internal/resolve"
	"github.com/solvberg/pygmalion/internal/targets/api"
	"github.com/solvberg/pygmalion/internal/targets/client"
	"github.com/solvberg/pygmalion/internal/targets/manifest"
	"github.com/solvberg/pygmalion/internal/targets/models"
	"github.com/solvberg/pygmalion/internal/templates"
	embeddedtmpl "github.com/solvberg/pygmalion/templates"
)

const defaultVersion = "0.1.0"

// clientAttrs are attribute names the generated Client class claims for
// itself; tag accessors must not shadow them.
var clientAttrs = []string{
	"base_url", "api_key", "username", "password",
	"timeout", "verify", "default_headers", "session", "request",
}

type Generator struct {
	config *config.Config
	engine templates.Engine
}

// Result is everything one run produced: file contents keyed by path
// relative to the output directory, plus the degradations recorded along the
// way.
type Result struct {
	Files    map[string]string
	Warnings []string
}

func New(cfg *config.Config) (*Generator, error) {
	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, python.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
	}, nil
}

// Generate renders the full package for one normalized document. The same
// document always produces byte-identical output.
func (g *Generator) Generate(spec *model.Spec) (*Result, error) {
	resolver := resolve.NewResolver(spec)
	if err := resolver.ResolveAll(); err != nil {
		return nil, err
	}

	extractor := resolve.NewExtractor(resolver)
	ops, err := extractor.ExtractAll(spec)
	if err != nil {
		return nil, err
	}

	groups, err := groupByTag(ops)
	if err != nil {
		return nil, err
	}
	groups = g.filterTags(groups)

	auth, authWarnings := resolve.BuildAuth(spec)

	pkg := g.packageName(spec)
	title := spec.Info.Title
	if title == "" {
		title = "API"
	}
	version := g.config.Python.Version
	if version == "" {
		version = spec.Info.Version
	}
	if version == "" {
		version = defaultVersion
	}
	baseURL := g.config.Python.BaseURL
	if baseURL == "" {
		baseURL = spec.BaseURL()
	}

	order, types := resolver.Types()

	files := make(map[string]string)

	modelsContent, err := models.New().Generate(g.engine, title, order, types)
	if err != nil {
		return nil, fmt.Errorf("generating models: %w", err)
	}
	files[pkg+"/models.py"] = modelsContent

	apiTarget := api.New()
	for _, group := range groups {
		content, err := apiTarget.Generate(g.engine, group)
		if err != nil {
			return nil, fmt.Errorf("generating api module %s: %w", group.Module, err)
		}
		files[pkg+"/api/"+group.Module+".py"] = content
	}

	clientContent, err := client.New().Generate(g.engine, title, baseURL, groups, auth)
	if err != nil {
		return nil, fmt.Errorf("generating client: %w", err)
	}
	files[pkg+"/client.py"] = clientContent

	man := manifest.New()
	initContent, err := man.GenerateInit(g.engine, title, version)
	if err != nil {
		return nil, fmt.Errorf("generating package init: %w", err)
	}
	files[pkg+"/__init__.py"] = initContent

	apiInitContent, err := man.GenerateAPIInit(g.engine, groups)
	if err != nil {
		return nil, fmt.Errorf("generating api init: %w", err)
	}
	files[pkg+"/api/__init__.py"] = apiInitContent

	setupContent, err := man.GenerateSetup(g.engine, pkg, version, title, spec.Info.Description)
	if err != nil {
		return nil, fmt.Errorf("generating setup.py: %w", err)
	}
	files["setup.py"] = setupContent

	readmeContent, err := man.GenerateReadme(g.engine, pkg, title, spec.Info.Description, baseURL, groups)
	if err != nil {
		return nil, fmt.Errorf("generating README: %w", err)
	}
	files["README.md"] = readmeContent

	var warnings []string
	warnings = append(warnings, resolver.Warnings()...)
	warnings = append(warnings, extractor.Warnings()...)
	warnings = append(warnings, authWarnings...)

	return &Result{Files: files, Warnings: warnings}, nil
}

// packageName prefers the configured name and otherwise derives one from the
// document title.
func (g *Generator) packageName(spec *model.Spec) string {
	if g.config.Python.Package != "" {
		return python.Sanitize(g.config.Python.Package, python.KindModule)
	}
	if spec.Info.Title != "" {
		return python.Sanitize(spec.Info.Title, python.KindModule)
	}
	return "api_client"
}

// groupByTag buckets the flat operation list into tag groups, first-seen tag
// order. Module names, class names and client attributes each live in their
// own scope; attributes additionally avoid the Client class's own members.
func groupByTag(ops []ir.Operation) ([]ir.TagGroup, error) {
	modules := python.NewNameRegistry(python.KindModule)
	classes := python.NewNameRegistry(python.KindClass)
	attrs := python.NewNameRegistry(python.KindVariable)
	for _, reserved := range clientAttrs {
		if _, err := attrs.Claim(reserved); err != nil {
			return nil, err
		}
	}

	index := make(map[string]int)
	var groups []ir.TagGroup
	for i := range ops {
		op := ops[i]
		at, ok := index[op.Tag]
		if !ok {
			module, err := modules.Claim(op.Tag)
			if err != nil {
				return nil, err
			}
			className, err := classes.Claim(op.Tag + " API")
			if err != nil {
				return nil, err
			}
			attr, err := attrs.Claim(op.Tag)
			if err != nil {
				return nil, err
			}
			at = len(groups)
			index[op.Tag] = at
			groups = append(groups, ir.TagGroup{
				Tag:       op.Tag,
				Module:    module,
				ClassName: className,
				Attr:      attr,
			})
		}
		groups[at].Operations = append(groups[at].Operations, op)
	}
	return groups, nil
}

// filterTags keeps only the configured tags when include-tags is set. The
// filter matches raw document tag names.
func (g *Generator) filterTags(groups []ir.TagGroup) []ir.TagGroup {
	if len(g.config.IncludeTags) == 0 {
		return groups
	}
	var out []ir.TagGroup
	for _, group := range groups {
		if slices.Contains(g.config.IncludeTags, group.Tag) {
			out = append(out, group)
		}
	}
	return out
}
