// Package ir holds the intermediate representation produced from a parsed
// specification: resolved types, operations and auth descriptors. Values are
// derived once per generation run and never mutated afterwards.
package ir

type TypeKind string

const (
	KindPrimitive  TypeKind = "primitive"
	KindArray      TypeKind = "array"
	KindObject     TypeKind = "object"
	KindEnum       TypeKind = "enum"
	KindUnresolved TypeKind = "unresolved"
)

type PrimitiveKind string

const (
	PrimString  PrimitiveKind = "string"
	PrimInteger PrimitiveKind = "integer"
	PrimNumber  PrimitiveKind = "number"
	PrimBoolean PrimitiveKind = "boolean"
)

// TypeRef is a resolved type descriptor. Named kinds (object, enum) carry a
// globally unique sanitized class name; a reference to a named type from
// another type is represented by name only, with no fields attached, which
// keeps cyclic schemas finite.
type TypeRef struct {
	Kind      TypeKind
	Primitive PrimitiveKind // KindPrimitive
	Elem      *TypeRef      // KindArray
	Name      string        // KindObject / KindEnum
	Doc       string        // KindObject / KindEnum definitions, may be empty
	Fields    []Field       // KindObject definitions; empty on by-name references
	Values    []any         // KindEnum literal values, declaration order
}

// Field is one object property, in declaration order.
type Field struct {
	Name     string // sanitized Python identifier
	WireName string // original spec name, used on the wire
	Type     TypeRef
	Required bool
}

// Primitive returns a primitive TypeRef.
func Primitive(kind PrimitiveKind) TypeRef {
	return TypeRef{Kind: KindPrimitive, Primitive: kind}
}

// ArrayOf returns an array TypeRef wrapping elem.
func ArrayOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindArray, Elem: &elem}
}

// Unresolved is the fallback for constructs the generator does not model.
func Unresolved() TypeRef {
	return TypeRef{Kind: KindUnresolved}
}

// NamedRef returns a by-name reference to an already registered type.
func NamedRef(kind TypeKind, name string) TypeRef {
	return TypeRef{Kind: kind, Name: name}
}

// IsNamed reports whether the TypeRef declares or references a named type.
func (t TypeRef) IsNamed() bool {
	return t.Kind == KindObject || t.Kind == KindEnum
}
