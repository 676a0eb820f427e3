package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/python"
	"github.com/solvberg/pygmalion/internal/templates"
	embeddedtmpl "github.com/solvberg/pygmalion/templates"
)

func testEngine(t *testing.T) templates.Engine {
	t.Helper()
	engine, err := templates.NewEngine(embeddedtmpl.FS, "", python.TemplateFuncs())
	require.NoError(t, err)
	return engine
}

func TestGenerateRequiredFieldsFirst(t *testing.T) {
	types := map[string]ir.TypeRef{
		"Pet": {
			Kind: ir.KindObject,
			Name: "Pet",
			Fields: []ir.Field{
				{Name: "tag", WireName: "tag", Type: ir.Primitive(ir.PrimString)},
				{Name: "id", WireName: "id", Type: ir.Primitive(ir.PrimInteger), Required: true},
				{Name: "note", WireName: "note", Type: ir.Primitive(ir.PrimString)},
				{Name: "name", WireName: "name", Type: ir.Primitive(ir.PrimString), Required: true},
			},
		},
	}

	out, err := New().Generate(testEngine(t), "Pet Store", []string{"Pet"}, types)
	require.NoError(t, err)

	// Required fields precede defaulted ones; dataclasses reject the
	// opposite order. Relative order within each block is preserved.
	idAt := strings.Index(out, "id: int")
	nameAt := strings.Index(out, "name: str")
	tagAt := strings.Index(out, "tag: Optional[str] = None")
	noteAt := strings.Index(out, "note: Optional[str] = None")
	require.True(t, idAt >= 0 && nameAt >= 0 && tagAt >= 0 && noteAt >= 0)
	require.Less(t, idAt, nameAt)
	require.Less(t, nameAt, tagAt)
	require.Less(t, tagAt, noteAt)
}

func TestGenerateEnumMemberDedup(t *testing.T) {
	types := map[string]ir.TypeRef{
		"Mode": {
			Kind:   ir.KindEnum,
			Name:   "Mode",
			Values: []any{"read-only", "read only", "write"},
		},
	}

	out, err := New().Generate(testEngine(t), "Modes", []string{"Mode"}, types)
	require.NoError(t, err)

	// Both spellings sanitize to READ_ONLY; the second gets a suffix.
	require.Contains(t, out, `READ_ONLY = "read-only"`)
	require.Contains(t, out, `READ_ONLY_2 = "read only"`)
	require.Contains(t, out, `WRITE = "write"`)
}

func TestGenerateAliases(t *testing.T) {
	stringAlias := ir.Primitive(ir.PrimString)
	stringAlias.Name = "PetID"
	arrayAlias := ir.ArrayOf(ir.NamedRef(ir.KindObject, "Pet"))
	arrayAlias.Name = "Pets"
	untyped := ir.TypeRef{Kind: ir.KindUnresolved, Name: "Anything"}

	types := map[string]ir.TypeRef{
		"PetID":    stringAlias,
		"Pets":     arrayAlias,
		"Anything": untyped,
	}

	out, err := New().Generate(testEngine(t), "Pet Store", []string{"PetID", "Pets", "Anything"}, types)
	require.NoError(t, err)

	require.Contains(t, out, "PetID = str")
	require.Contains(t, out, "Pets = List[Pet]")
	require.Contains(t, out, "Anything = Any")
}
