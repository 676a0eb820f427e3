package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/solvberg/pygmalion/internal/model"
)

type transformer struct {
	componentSchemas map[*base.Schema]string
}

// Transform converts the parsed libopenapi document into the normalized
// model.Spec the generator core works with. Traversal order follows document
// order so repeated runs see identical input.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = "#/components/schemas/" + name
		}
	}

	spec := &model.Spec{
		Info:    transformInfo(doc.Info),
		Servers: transformServers(doc.Servers),
		Tags:    transformTags(doc.Tags),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			schema := t.transformSchema(name, schemaProxy.Schema())
			spec.Schemas = append(spec.Schemas, *schema)
		}
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			path, ops := t.transformPath(pathStr, pathItem)
			spec.Paths = append(spec.Paths, path)
			spec.Operations = append(spec.Operations, ops...)
		}
	}

	if doc.Components != nil && doc.Components.SecuritySchemes != nil {
		for name, scheme := range doc.Components.SecuritySchemes.FromOldest() {
			spec.Security = append(spec.Security, transformSecurityScheme(name, scheme))
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformServers(servers []*v3.Server) []model.Server {
	var result []model.Server
	for _, s := range servers {
		result = append(result, model.Server{
			URL:         s.URL,
			Description: s.Description,
		})
	}
	return result
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, t := range tags {
		result = append(result, model.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return result
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) (model.Path, []model.Operation) {
	path := model.Path{Path: pathStr}
	var ops []model.Operation

	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodHead, pathItem.Head},
		{model.MethodOptions, pathItem.Options},
		{model.MethodTrace, pathItem.Trace},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		operation := t.transformOperation(m.method, pathStr, m.op)
		ops = append(ops, operation)
		path.Operations = append(path.Operations, operation)
	}

	return path, ops
}

func (t *transformer) transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  boolPtr(op.Deprecated),
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.RequestBody != nil {
		operation.RequestBody = t.transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
		}
		if op.Responses.Default != nil {
			operation.Responses = append(operation.Responses, t.transformResponse("default", op.Responses.Default))
		}
	}

	return operation
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
		Deprecated:  p.Deprecated,
	}

	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	}

	return param
}

func (t *transformer) transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
	}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func (t *transformer) transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

// transformSchemaProxy turns a schema proxy into either a bare reference or
// an inline schema. References stay references: following them here would
// expand the referenced component in place, and mutually-referencing schemas
// would never terminate.
func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		return &model.Schema{Ref: ref}
	}
	if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
		return &model.Schema{Ref: resolved}
	}

	return t.transformSchema("", proxy.Schema())
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
		Default:     decodeNode(s.Default),
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, decodeNode(e))
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		schema.AdditionalProperties = t.transformSchemaProxy(s.AdditionalProperties.A)
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.OneOf {
		schema.OneOf = append(schema.OneOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.AnyOf {
		schema.AnyOf = append(schema.AnyOf, t.transformSchemaProxy(proxy))
	}

	if s.Discriminator != nil {
		schema.Discriminator = &model.Discriminator{
			PropertyName: s.Discriminator.PropertyName,
			Mapping:      make(map[string]string),
		}
		if s.Discriminator.Mapping != nil {
			for k, v := range s.Discriminator.Mapping.FromOldest() {
				schema.Discriminator.Mapping[k] = v
			}
		}
	}

	return schema
}

// decodeNode converts a raw YAML node into the Go literal it represents, so
// enum values and defaults keep their spec-level types (string vs int vs bool).
func decodeNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return v
}

func transformSecurityScheme(name string, scheme *v3.SecurityScheme) model.SecurityScheme {
	return model.SecurityScheme{
		Name:         name,
		Type:         model.SecuritySchemeType(scheme.Type),
		Description:  scheme.Description,
		ParamName:    scheme.Name,
		In:           scheme.In,
		Scheme:       scheme.Scheme,
		BearerFormat: scheme.BearerFormat,
	}
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
