// Package manifest renders the non-code files of a generated package: the
// package __init__ modules, setup.py and the README.
package manifest

import (
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "manifest"
}

type tagData struct {
	Module    string
	ClassName string
}

// GenerateInit renders the top-level __init__.py of the generated package.
func (t *Target) GenerateInit(engine templates.Engine, title, version string) (string, error) {
	return engine.Execute("python/init.py.tmpl", struct {
		Title   string
		Version string
	}{Title: title, Version: version})
}

// GenerateAPIInit renders api/__init__.py re-exporting every tag class.
func (t *Target) GenerateAPIInit(engine templates.Engine, groups []ir.TagGroup) (string, error) {
	tags := make([]tagData, 0, len(groups))
	for _, g := range groups {
		tags = append(tags, tagData{Module: g.Module, ClassName: g.ClassName})
	}
	return engine.Execute("python/api_init.py.tmpl", struct {
		Tags []tagData
	}{Tags: tags})
}

// GenerateSetup renders setup.py for the generated package.
func (t *Target) GenerateSetup(engine templates.Engine, pkg, version, title, description string) (string, error) {
	return engine.Execute("python/setup.py.tmpl", struct {
		Package     string
		Version     string
		Title       string
		Description string
	}{Package: pkg, Version: version, Title: title, Description: description})
}

// GenerateReadme renders the README. The example call is taken from the first
// operation callable without arguments, if any exists.
func (t *Target) GenerateReadme(engine templates.Engine, pkg, title, description, baseURL string, groups []ir.TagGroup) (string, error) {
	return engine.Execute("python/readme.md.tmpl", struct {
		Package     string
		Title       string
		Description string
		HasBaseURL  bool
		ExampleCall string
	}{
		Package:     pkg,
		Title:       title,
		Description: description,
		HasBaseURL:  baseURL != "",
		ExampleCall: exampleCall(groups),
	})
}

// exampleCall finds an operation with no required inputs so the README can
// show a runnable snippet.
func exampleCall(groups []ir.TagGroup) string {
	for _, g := range groups {
		for i := range g.Operations {
			op := &g.Operations[i]
			if op.RequestBody != nil && op.BodyRequired {
				continue
			}
			required := false
			for _, p := range op.Params {
				if p.Required {
					required = true
					break
				}
			}
			if required {
				continue
			}
			return g.Attr + "." + op.Name + "()"
		}
	}
	return ""
}
