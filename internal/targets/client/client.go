// Package client renders the client module: the entry point class that owns
// the HTTP session, injects credentials and exposes one attribute per tag.
package client

import (
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "client"
}

type templateData struct {
	Title         string
	HasBaseURL    bool
	BaseURL       string
	Tags          []tagData
	APIKeyHeaders []string
	APIKeyQueries []string
	HasBasic      bool
}

type tagData struct {
	Module    string
	ClassName string
	Attr      string
}

// Generate renders client.py wired to the given tag groups and
// authentication descriptors.
func (t *Target) Generate(engine templates.Engine, title, baseURL string, groups []ir.TagGroup, auth []ir.AuthDescriptor) (string, error) {
	data := templateData{
		Title:      title,
		HasBaseURL: baseURL != "",
		BaseURL:    baseURL,
	}
	for _, g := range groups {
		data.Tags = append(data.Tags, tagData{Module: g.Module, ClassName: g.ClassName, Attr: g.Attr})
	}
	for _, a := range auth {
		switch a.Strategy {
		case ir.AuthAPIKey:
			switch a.In {
			case ir.InQuery:
				data.APIKeyQueries = append(data.APIKeyQueries, a.ParamName)
			default:
				data.APIKeyHeaders = append(data.APIKeyHeaders, a.ParamName)
			}
		case ir.AuthBasic:
			data.HasBasic = true
		}
	}
	return engine.Execute("python/client.py.tmpl", data)
}
