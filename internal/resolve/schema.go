// Package resolve walks the normalized specification and produces the
// intermediate representation: a named type graph, a flat operation list and
// the set of supported auth strategies. Unsupported constructs degrade with a
// recorded warning instead of aborting; only structural holes in the document
// (missing paths, dangling $refs) are fatal.
package resolve

import (
	"fmt"

	"github.com/solvberg/pygmalion/internal/generr"
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
	"github.com/solvberg/pygmalion/internal/python"
)

// Resolver builds the type graph for one generation run. It owns the global
// class-name scope; inline schemas hoisted out of operations share it, so the
// operation extractor reuses the same Resolver instance.
type Resolver struct {
	spec     *model.Spec
	classes  *python.NameRegistry
	names    map[string]string     // raw schema name -> sanitized class name
	types    map[string]ir.TypeRef // sanitized class name -> definition
	order    []string              // definition order: declared first, hoisted after
	warnings []string
}

func NewResolver(spec *model.Spec) *Resolver {
	return &Resolver{
		spec:    spec,
		classes: python.NewNameRegistry(python.KindClass),
		names:   make(map[string]string),
		types:   make(map[string]ir.TypeRef),
	}
}

// ResolveAll resolves every declared schema. Names are claimed up front in
// document order so that $ref indirection, including cycles, always lands on
// the referenced schema's sanitized name rather than an inlined copy.
func (r *Resolver) ResolveAll() error {
	for i := range r.spec.Schemas {
		s := &r.spec.Schemas[i]
		name, err := r.classes.Claim(s.Name)
		if err != nil {
			return err
		}
		r.names[s.Name] = name
	}

	for i := range r.spec.Schemas {
		s := &r.spec.Schemas[i]
		name := r.names[s.Name]
		t, err := r.resolveNamed(name, s)
		if err != nil {
			return err
		}
		r.types[name] = t
		r.order = append(r.order, name)
	}

	return nil
}

// Types returns the resolved definitions keyed by sanitized class name,
// together with a deterministic definition order.
func (r *Resolver) Types() ([]string, map[string]ir.TypeRef) {
	return r.order, r.types
}

// Warnings returns every degradation recorded so far.
func (r *Resolver) Warnings() []string {
	return r.warnings
}

func (r *Resolver) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// resolveNamed resolves a declared schema into a definition carrying the
// already claimed class name.
func (r *Resolver) resolveNamed(name string, s *model.Schema) (ir.TypeRef, error) {
	if isComposition(s) {
		r.warnf("schema %s: composition (allOf/oneOf/anyOf) is not modeled, degrading to untyped", s.Name)
		return ir.TypeRef{Kind: ir.KindUnresolved, Name: name}, nil
	}

	if len(s.Enum) > 0 {
		return ir.TypeRef{Kind: ir.KindEnum, Name: name, Doc: s.Description, Values: s.Enum}, nil
	}

	switch s.Type {
	case model.TypeObject:
		return r.resolveObject(name, s)
	case model.TypeArray:
		elem, err := r.resolveInline(s.Items, name, "item")
		if err != nil {
			return ir.TypeRef{}, err
		}
		t := ir.ArrayOf(elem)
		t.Name = name
		return t, nil
	case model.TypeString, model.TypeInteger, model.TypeNumber, model.TypeBoolean:
		t := ir.Primitive(primitiveKind(s.Type))
		t.Name = name
		return t, nil
	default:
		if len(s.Properties) > 0 {
			return r.resolveObject(name, s)
		}
		r.warnf("schema %s: no usable type information, degrading to untyped", s.Name)
		return ir.TypeRef{Kind: ir.KindUnresolved, Name: name}, nil
	}
}

func (r *Resolver) resolveObject(name string, s *model.Schema) (ir.TypeRef, error) {
	if len(s.Properties) == 0 {
		// Free-form object (additionalProperties or none declared): nothing
		// to generate a class for.
		return ir.TypeRef{Kind: ir.KindUnresolved, Name: name}, nil
	}

	fields, err := r.resolveFields(name, s)
	if err != nil {
		return ir.TypeRef{}, err
	}
	return ir.TypeRef{Kind: ir.KindObject, Name: name, Doc: s.Description, Fields: fields}, nil
}

func (r *Resolver) resolveFields(parent string, s *model.Schema) ([]ir.Field, error) {
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	fieldNames := python.NewNameRegistry(python.KindField)
	fields := make([]ir.Field, 0, len(s.Properties))
	for _, prop := range s.Properties {
		fieldName, err := fieldNames.Claim(prop.Name)
		if err != nil {
			return nil, err
		}
		t, err := r.resolveInline(prop.Schema, parent, prop.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ir.Field{
			Name:     fieldName,
			WireName: prop.Name,
			Type:     t,
			Required: required[prop.Name],
		})
	}
	return fields, nil
}

// ResolveInline resolves a schema appearing inside another construct (object
// property, parameter, request body, response). Anonymous objects and enums
// are hoisted into synthetic named types derived from the enclosing path and
// registered in the global class scope.
func (r *Resolver) ResolveInline(s *model.Schema, parent, field string) (ir.TypeRef, error) {
	return r.resolveInline(s, parent, field)
}

func (r *Resolver) resolveInline(s *model.Schema, parent, field string) (ir.TypeRef, error) {
	if s == nil {
		return ir.Unresolved(), nil
	}

	if s.Ref != "" {
		return r.resolveRef(s.Ref)
	}

	if isComposition(s) {
		r.warnf("%s.%s: composition (allOf/oneOf/anyOf) is not modeled, degrading to untyped", parent, field)
		return ir.Unresolved(), nil
	}

	if len(s.Enum) > 0 {
		name, err := r.hoist(parent, field, func(name string) (ir.TypeRef, error) {
			return ir.TypeRef{Kind: ir.KindEnum, Name: name, Values: s.Enum}, nil
		})
		if err != nil {
			return ir.TypeRef{}, err
		}
		return ir.NamedRef(ir.KindEnum, name), nil
	}

	switch s.Type {
	case model.TypeString, model.TypeInteger, model.TypeNumber, model.TypeBoolean:
		return ir.Primitive(primitiveKind(s.Type)), nil
	case model.TypeArray:
		elem, err := r.resolveInline(s.Items, parent, field+" item")
		if err != nil {
			return ir.TypeRef{}, err
		}
		return ir.ArrayOf(elem), nil
	case model.TypeObject:
		if len(s.Properties) == 0 {
			return ir.Unresolved(), nil
		}
		name, err := r.hoist(parent, field, func(name string) (ir.TypeRef, error) {
			fields, err := r.resolveFields(name, s)
			if err != nil {
				return ir.TypeRef{}, err
			}
			return ir.TypeRef{Kind: ir.KindObject, Name: name, Fields: fields}, nil
		})
		if err != nil {
			return ir.TypeRef{}, err
		}
		return ir.NamedRef(ir.KindObject, name), nil
	default:
		if len(s.Properties) > 0 {
			return r.resolveInline(&model.Schema{Type: model.TypeObject, Properties: s.Properties, Required: s.Required}, parent, field)
		}
		return ir.Unresolved(), nil
	}
}

// resolveRef turns $ref indirection into a by-name reference. The target must
// be a declared schema; anything else is a structural error.
func (r *Resolver) resolveRef(ref string) (ir.TypeRef, error) {
	rawName := model.RefName(ref)
	claimed, ok := r.names[rawName]
	if !ok {
		return ir.TypeRef{}, generr.InvalidSpecf("unresolvable $ref %q", ref)
	}

	target := r.spec.SchemaByRef(ref)
	if target != nil && len(target.Enum) > 0 {
		return ir.NamedRef(ir.KindEnum, claimed), nil
	}
	return ir.NamedRef(ir.KindObject, claimed), nil
}

// hoist claims a synthetic class name derived from the enclosing path and
// registers the definition built by resolve under it.
func (r *Resolver) hoist(parent, field string, build func(name string) (ir.TypeRef, error)) (string, error) {
	name, err := r.classes.Claim(parent + "_" + field)
	if err != nil {
		return "", err
	}
	t, err := build(name)
	if err != nil {
		return "", err
	}
	r.types[name] = t
	r.order = append(r.order, name)
	return name, nil
}

func isComposition(s *model.Schema) bool {
	return len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0 || s.Discriminator != nil
}

func primitiveKind(t model.SchemaType) ir.PrimitiveKind {
	switch t {
	case model.TypeString:
		return ir.PrimString
	case model.TypeInteger:
		return ir.PrimInteger
	case model.TypeNumber:
		return ir.PrimNumber
	case model.TypeBoolean:
		return ir.PrimBoolean
	default:
		return ir.PrimString
	}
}
