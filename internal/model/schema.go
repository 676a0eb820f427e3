package model

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string
	Nullable    bool
	Deprecated  bool
	Default     any

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values
	Enum []any

	// Composition. The generator does not model these; any schema carrying
	// them degrades to an untyped representation.
	AllOf []*Schema
	OneOf []*Schema
	AnyOf []*Schema

	// Discriminator for oneOf/anyOf polymorphism
	Discriminator *Discriminator

	// Reference
	Ref string

	// Additional properties for maps
	AdditionalProperties *Schema
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string
	Schema *Schema
}

type Discriminator struct {
	PropertyName string
	Mapping      map[string]string
}

type SecurityScheme struct {
	Name         string // component key the scheme is declared under
	Type         SecuritySchemeType
	Description  string
	ParamName    string // apiKey: header or query parameter name
	In           string
	Scheme       string
	BearerFormat string
}

type SecuritySchemeType string

const (
	SecurityTypeAPIKey        SecuritySchemeType = "apiKey"
	SecurityTypeHTTP          SecuritySchemeType = "http"
	SecurityTypeOAuth2        SecuritySchemeType = "oauth2"
	SecurityTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
	SecurityTypeMutualTLS     SecuritySchemeType = "mutualTLS"
)
