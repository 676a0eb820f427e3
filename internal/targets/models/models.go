// Package models renders the models unit: every resolved object and enum
// definition plus aliases for declared schemas that resolved to primitives,
// arrays or untyped fallbacks.
package models

import (
	"fmt"
	"strings"

	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/python"
	"github.com/solvberg/pygmalion/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "models"
}

type templateData struct {
	Title string
	Types []typeData
}

type typeData struct {
	Name    string
	Kind    string // "object", "enum", "alias"
	Doc     string
	Alias   string
	Fields  []fieldData
	Members []memberData
}

type fieldData struct {
	Name       string
	Hint       string
	HasDefault bool
}

type memberData struct {
	Name    string
	Literal string
}

// Generate renders models.py from the resolved type graph in definition
// order. Dataclass fields are emitted required-first so defaulted fields
// never precede mandatory ones.
func (t *Target) Generate(engine templates.Engine, title string, order []string, types map[string]ir.TypeRef) (string, error) {
	data := templateData{Title: title}

	for _, name := range order {
		tr := types[name]
		td := typeData{Name: name, Doc: docLine(tr.Doc)}

		switch tr.Kind {
		case ir.KindEnum:
			td.Kind = "enum"
			td.Members = enumMembers(tr.Values)
		case ir.KindObject:
			td.Kind = "object"
			for _, f := range tr.Fields {
				if f.Required {
					td.Fields = append(td.Fields, fieldData{Name: f.Name, Hint: python.TypeHint(f.Type)})
				}
			}
			for _, f := range tr.Fields {
				if !f.Required {
					td.Fields = append(td.Fields, fieldData{Name: f.Name, Hint: python.OptionalHint(f.Type, false), HasDefault: true})
				}
			}
		default:
			td.Kind = "alias"
			td.Alias = aliasTarget(tr)
		}

		data.Types = append(data.Types, td)
	}

	return engine.Execute("python/models.py.tmpl", data)
}

// enumMembers derives member identifiers from literal values, deduplicating
// deterministically when two values sanitize the same way.
func enumMembers(values []any) []memberData {
	seen := make(map[string]bool)
	members := make([]memberData, 0, len(values))
	for _, v := range values {
		name := python.MemberName(v)
		if seen[name] {
			for i := 2; ; i++ {
				candidate := fmt.Sprintf("%s_%d", name, i)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		members = append(members, memberData{Name: name, Literal: python.Literal(v)})
	}
	return members
}

// docLine collapses a schema description to its first line for use as a
// class docstring.
func docLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// aliasTarget renders the right-hand side for a declared schema that did not
// become a class of its own.
func aliasTarget(t ir.TypeRef) string {
	switch t.Kind {
	case ir.KindPrimitive, ir.KindArray:
		// TypeHint on a named primitive or array yields the underlying
		// annotation, not the alias name.
		return python.TypeHint(t)
	default:
		return "Any"
	}
}
