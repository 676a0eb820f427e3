// Package api renders one endpoint-group module per tag: a class holding a
// reference back to the client and one method per operation assigned to the
// tag.
package api

import (
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
	return "api"
}

type templateData struct {
	Tag        string
	ClassName  string
	Operations []opData
}

type opData struct {
	Name         string
	Method       string
	Path         string
	Summary      string
	Args         []argData
	PathParams   []paramData
	QueryParams  []paramData
	HeaderParams []paramData
	HasBody      bool
	ReturnHint   string
	ReturnsJSON  bool
}

type argData struct {
	Name       string
	Hint       string
	HasDefault bool
}

type paramData struct {
	Name     string
	WireName string
}

// Generate renders the api module for one tag group.
func (t *Target) Generate(engine templates.Engine, group ir.TagGroup) (string, error) {
	data := templateData{
		Tag:       group.Tag,
		ClassName: group.ClassName,
	}
	for i := range group.Operations {
		data.Operations = append(data.Operations, buildOp(&group.Operations[i]))
	}
	return engine.Execute("python/api.py.tmpl", data)
}

func buildOp(op *ir.Operation) opData {
	od := opData{
		Name:    op.Name,
		Method:  op.Method,
		Path:    op.Path,
		Summary: summaryLine(op),
		HasBody: op.RequestBody != nil,
		Args:    buildArgs(op),
	}

	for _, p := range op.PathParams() {
		od.PathParams = append(od.PathParams, paramData{Name: p.Name, WireName: p.WireName})
	}
	for _, p := range op.QueryParams() {
		od.QueryParams = append(od.QueryParams, paramData{Name: p.Name, WireName: p.WireName})
	}
	for _, p := range op.HeaderParams() {
		od.HeaderParams = append(od.HeaderParams, paramData{Name: p.Name, WireName: p.WireName})
	}

	od.ReturnHint, od.ReturnsJSON = returnShape(op)
	return od
}

// buildArgs orders the method signature: required parameters in declaration
// order, then a required body, then optional parameters, then an optional
// body. Everything after the required block carries a None default.
func buildArgs(op *ir.Operation) []argData {
	var args []argData
	for _, p := range op.Params {
		if p.Required {
			args = append(args, argData{Name: p.Name, Hint: python.TypeHint(p.Type)})
		}
	}
	if op.RequestBody != nil && op.BodyRequired {
		args = append(args, argData{Name: "data", Hint: python.TypeHint(*op.RequestBody)})
	}
	for _, p := range op.Params {
		if !p.Required {
			args = append(args, argData{Name: p.Name, Hint: python.OptionalHint(p.Type, false), HasDefault: true})
		}
	}
	if op.RequestBody != nil && !op.BodyRequired {
		args = append(args, argData{Name: "data", Hint: python.OptionalHint(*op.RequestBody, false), HasDefault: true})
	}
	return args
}

// returnShape picks the annotation for the method's return value. Operations
// whose success response carries a payload return the decoded JSON body;
// everything else returns the raw response text.
func returnShape(op *ir.Operation) (string, bool) {
	success := op.SuccessResponse()
	if success == nil || success.Type == nil {
		return "str", false
	}
	return python.TypeHint(*success.Type), true
}

// summaryLine yields a single-line docstring for the method, preferring the
// summary over the description.
func summaryLine(op *ir.Operation) string {
	text := op.Summary
	if text == "" {
		text = op.Description
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
