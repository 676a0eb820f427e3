package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/solvberg/pygmalion/internal/generr"
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
	"github.com/solvberg/pygmalion/internal/python"
)

// DefaultTag groups operations that declare no tags of their own.
const DefaultTag = "default"

var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// Extractor turns path/method entries into the flat, ordered operation list.
// It shares the Resolver so inline schemas in parameters, bodies and
// responses land in the same global type scope as declared schemas.
type Extractor struct {
	resolver   *Resolver
	methodRegs map[string]*python.NameRegistry // per-tag method scopes
	warnings   []string
}

func NewExtractor(resolver *Resolver) *Extractor {
	return &Extractor{
		resolver:   resolver,
		methodRegs: make(map[string]*python.NameRegistry),
	}
}

// ExtractAll walks every operation in document order. An operation declared
// under several tags is emitted once per tag with an identical signature;
// one with no tags lands under the default tag.
func (e *Extractor) ExtractAll(spec *model.Spec) ([]ir.Operation, error) {
	if len(spec.Paths) == 0 {
		return nil, generr.InvalidSpecf("document declares no paths")
	}

	var out []ir.Operation
	for i := range spec.Operations {
		op := &spec.Operations[i]

		base, err := e.extractOne(op)
		if err != nil {
			return nil, err
		}

		tags := op.Tags
		if len(tags) == 0 {
			tags = []string{DefaultTag}
		}

		for _, tag := range tags {
			emitted := *base
			emitted.Tag = tag
			name, err := e.methodScope(tag).Claim(rawMethodName(op))
			if err != nil {
				return nil, err
			}
			emitted.Name = name
			out = append(out, emitted)
		}
	}

	return out, nil
}

// Warnings returns degradations recorded during extraction.
func (e *Extractor) Warnings() []string {
	return e.warnings
}

func (e *Extractor) warnf(format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

func (e *Extractor) methodScope(tag string) *python.NameRegistry {
	reg, ok := e.methodRegs[tag]
	if !ok {
		reg = python.NewNameRegistry(python.KindMethod)
		e.methodRegs[tag] = reg
	}
	return reg
}

// extractOne resolves parameters, body and responses once; tag fan-out
// copies the result so duplicated operations cannot drift apart.
func (e *Extractor) extractOne(op *model.Operation) (*ir.Operation, error) {
	// Hoisted inline schemas borrow the operation's class-cased name.
	hoistParent := python.Sanitize(rawMethodName(op), python.KindClass)

	out := &ir.Operation{
		Method:      strings.ToLower(string(op.Method)),
		Path:        op.Path,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated,
	}

	// Names claimed here are identifiers inside one generated method body,
	// so the locals the method itself uses are reserved up front.
	vars := python.NewNameRegistry(python.KindVariable)
	for _, reserved := range []string{"self", "data", "params", "headers", "path", "response"} {
		if _, err := vars.Claim(reserved); err != nil {
			return nil, err
		}
	}

	for _, p := range op.Parameters {
		loc, ok := paramLocation(p.In)
		if !ok {
			e.warnf("%s %s: parameter %q in %q is not supported, dropped", op.Method, op.Path, p.Name, p.In)
			continue
		}

		name, err := vars.Claim(p.Name)
		if err != nil {
			return nil, err
		}
		t, err := e.resolver.ResolveInline(p.Schema, hoistParent, p.Name)
		if err != nil {
			return nil, err
		}
		out.Params = append(out.Params, ir.Parameter{
			Name:        name,
			WireName:    p.Name,
			In:          loc,
			Type:        t,
			Required:    p.Required || loc == ir.InPath, // a path template cannot omit a segment
			Description: p.Description,
		})
	}

	if err := e.fillMissingPathParams(op, vars, out); err != nil {
		return nil, err
	}

	if op.RequestBody != nil {
		if content := pickContent(op.RequestBody.Content); content != nil {
			t, err := e.resolver.ResolveInline(content.Schema, hoistParent, "body")
			if err != nil {
				return nil, err
			}
			out.RequestBody = &t
			out.BodyRequired = op.RequestBody.Required
		}
	}

	for _, resp := range op.Responses {
		r := ir.Response{Status: resp.StatusCode}
		if content := pickContent(resp.Content); content != nil {
			t, err := e.resolver.ResolveInline(content.Schema, hoistParent, "response "+resp.StatusCode)
			if err != nil {
				return nil, err
			}
			r.Type = &t
		}
		out.Responses = append(out.Responses, r)
	}

	return out, nil
}

// fillMissingPathParams synthesizes a required string parameter for every
// {placeholder} the document forgot to declare, so path substitution is
// always total.
func (e *Extractor) fillMissingPathParams(op *model.Operation, vars *python.NameRegistry, out *ir.Operation) error {
	declared := make(map[string]bool)
	for _, p := range out.Params {
		if p.In == ir.InPath {
			declared[p.WireName] = true
		}
	}

	for _, match := range placeholderPattern.FindAllStringSubmatch(op.Path, -1) {
		placeholder := match[1]
		if declared[placeholder] {
			continue
		}
		declared[placeholder] = true
		e.warnf("%s %s: path parameter %q is not declared, assuming string", op.Method, op.Path, placeholder)

		name, err := vars.Claim(placeholder)
		if err != nil {
			return err
		}
		out.Params = append(out.Params, ir.Parameter{
			Name:     name,
			WireName: placeholder,
			In:       ir.InPath,
			Type:     ir.Primitive(ir.PrimString),
			Required: true,
		})
	}
	return nil
}

// pickContent prefers application/json and otherwise falls back to the first
// declared media type.
func pickContent(contents []model.MediaTypeContent) *model.MediaTypeContent {
	for i := range contents {
		if strings.HasPrefix(contents[i].MediaType, "application/json") {
			return &contents[i]
		}
	}
	if len(contents) > 0 {
		return &contents[0]
	}
	return nil
}

func paramLocation(in model.ParameterLocation) (ir.Location, bool) {
	switch in {
	case model.LocationPath:
		return ir.InPath, true
	case model.LocationQuery:
		return ir.InQuery, true
	case model.LocationHeader:
		return ir.InHeader, true
	default:
		return "", false
	}
}

// rawMethodName picks the declared operation id when present and otherwise
// synthesizes one from the HTTP method and path segments; placeholders
// contribute a by_<name> segment, so GET /pets/{id} becomes get_pets_by_id.
func rawMethodName(op *model.Operation) string {
	if op.ID != "" {
		return op.ID
	}

	parts := []string{strings.ToLower(string(op.Method))}
	for _, segment := range strings.Split(op.Path, "/") {
		if segment == "" {
			continue
		}
		if m := placeholderPattern.FindStringSubmatch(segment); m != nil {
			parts = append(parts, "by_"+m[1])
			continue
		}
		parts = append(parts, segment)
	}
	return strings.Join(parts, "_")
}
