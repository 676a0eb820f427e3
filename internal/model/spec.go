package model

import "strings"

// Spec is the normalized in-memory form of an OpenAPI document. It is built
// once by the loader and never mutated afterwards; every later stage only
// reads from it.
type Spec struct {
	Info       Info
	Servers    []Server
	Tags       []Tag
	Paths      []Path
	Operations []Operation
	Schemas    []Schema
	Security   []SecurityScheme
}

// SchemaByRef returns a schema by its $ref path (e.g., "#/components/schemas/User").
// Returns nil if the schema is not found.
func (s *Spec) SchemaByRef(ref string) *Schema {
	name := RefName(ref)
	if name == "" {
		return nil
	}
	for i := range s.Schemas {
		if s.Schemas[i].Name == name {
			return &s.Schemas[i]
		}
	}
	return nil
}

// BaseURL returns the first declared server URL, or "" when the document
// declares none.
func (s *Spec) BaseURL() string {
	if len(s.Servers) == 0 {
		return ""
	}
	return s.Servers[0].URL
}

// RefName extracts the final path segment of a $ref pointer.
func RefName(ref string) string {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Server struct {
	URL         string
	Description string
}

type Tag struct {
	Name        string
	Description string
}

type Path struct {
	Path       string
	Operations []Operation
}
