package python

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvberg/pygmalion/internal/ir"
)

func TestTypeHint(t *testing.T) {
	tests := []struct {
		name     string
		in       ir.TypeRef
		expected string
	}{
		{"string", ir.Primitive(ir.PrimString), "str"},
		{"integer", ir.Primitive(ir.PrimInteger), "int"},
		{"number", ir.Primitive(ir.PrimNumber), "float"},
		{"boolean", ir.Primitive(ir.PrimBoolean), "bool"},
		{"array of string", ir.ArrayOf(ir.Primitive(ir.PrimString)), "List[str]"},
		{"nested array", ir.ArrayOf(ir.ArrayOf(ir.Primitive(ir.PrimInteger))), "List[List[int]]"},
		{"named object", ir.NamedRef(ir.KindObject, "Pet"), "Pet"},
		{"named enum", ir.NamedRef(ir.KindEnum, "Status"), "Status"},
		{"array of named", ir.ArrayOf(ir.NamedRef(ir.KindObject, "Pet")), "List[Pet]"},
		{"unresolved", ir.Unresolved(), "Any"},
		{"array of unresolved", ir.ArrayOf(ir.Unresolved()), "List[Any]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TypeHint(tt.in))
		})
	}
}

func TestOptionalHint(t *testing.T) {
	require.Equal(t, "str", OptionalHint(ir.Primitive(ir.PrimString), true))
	require.Equal(t, "Optional[str]", OptionalHint(ir.Primitive(ir.PrimString), false))
	require.Equal(t, "Optional[List[Pet]]", OptionalHint(ir.ArrayOf(ir.NamedRef(ir.KindObject, "Pet")), false))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"nil", nil, "None"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"string", "available", `"available"`},
		{"string with quote", `he said "hi"`, `"he said \"hi\""`},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Literal(tt.in))
		})
	}
}

func TestMemberName(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{"available", "AVAILABLE"},
		{"not-available", "NOT_AVAILABLE"},
		{"in progress", "IN_PROGRESS"},
		{1, "_1"},
		{"", "UNNAMED"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, MemberName(tt.in))
	}
}
