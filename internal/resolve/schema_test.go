package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvberg/pygmalion/internal/generr"
	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
)

func TestResolveObjectSchema(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name:     "Pet",
				Type:     model.TypeObject,
				Required: []string{"id", "name"},
				Properties: []model.Property{
					{Name: "id", Schema: &model.Schema{Type: model.TypeInteger}},
					{Name: "name", Schema: &model.Schema{Type: model.TypeString}},
					{Name: "tag", Schema: &model.Schema{Type: model.TypeString}},
				},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	order, types := r.Types()
	require.Equal(t, []string{"Pet"}, order)

	pet := types["Pet"]
	require.Equal(t, ir.KindObject, pet.Kind)
	require.Len(t, pet.Fields, 3)
	require.Equal(t, "id", pet.Fields[0].Name)
	require.True(t, pet.Fields[0].Required)
	require.Equal(t, ir.PrimInteger, pet.Fields[0].Type.Primitive)
	require.True(t, pet.Fields[1].Required)
	require.False(t, pet.Fields[2].Required)
	require.Empty(t, r.Warnings())
}

func TestResolveEnumSchema(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Status",
				Type: model.TypeString,
				Enum: []any{"available", "pending", "sold"},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	status := types["Status"]
	require.Equal(t, ir.KindEnum, status.Kind)
	require.Equal(t, []any{"available", "pending", "sold"}, status.Values)
}

func TestResolveRefField(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Owner",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "pet", Schema: &model.Schema{Ref: "#/components/schemas/Pet"}},
				},
			},
			{
				Name: "Pet",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "name", Schema: &model.Schema{Type: model.TypeString}},
				},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	owner := types["Owner"]
	require.Equal(t, ir.KindObject, owner.Fields[0].Type.Kind)
	require.Equal(t, "Pet", owner.Fields[0].Type.Name)
	// A reference carries the name only, never an inlined definition.
	require.Empty(t, owner.Fields[0].Type.Fields)
}

func TestResolveCyclicRefs(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Node",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "value", Schema: &model.Schema{Type: model.TypeString}},
					{Name: "children", Schema: &model.Schema{
						Type:  model.TypeArray,
						Items: &model.Schema{Ref: "#/components/schemas/Node"},
					}},
				},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	node := types["Node"]
	children := node.Fields[1].Type
	require.Equal(t, ir.KindArray, children.Kind)
	require.Equal(t, "Node", children.Elem.Name)
	require.Empty(t, children.Elem.Fields)
}

func TestResolveDanglingRefIsFatal(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Owner",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "pet", Schema: &model.Schema{Ref: "#/components/schemas/Missing"}},
				},
			},
		},
	}

	r := NewResolver(spec)
	err := r.ResolveAll()
	require.Error(t, err)
	require.ErrorIs(t, err, generr.ErrInvalidSpec)
}

func TestResolveInlineObjectHoisted(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Pet",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "owner", Schema: &model.Schema{
						Type: model.TypeObject,
						Properties: []model.Property{
							{Name: "name", Schema: &model.Schema{Type: model.TypeString}},
						},
					}},
				},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	order, types := r.Types()
	require.Equal(t, []string{"PetOwner", "Pet"}, order)

	hoisted := types["PetOwner"]
	require.Equal(t, ir.KindObject, hoisted.Kind)
	require.Equal(t, "name", hoisted.Fields[0].Name)

	pet := types["Pet"]
	require.Equal(t, "PetOwner", pet.Fields[0].Type.Name)
}

func TestResolveInlineEnumHoisted(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name: "Pet",
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "status", Schema: &model.Schema{
						Type: model.TypeString,
						Enum: []any{"available", "sold"},
					}},
				},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	require.Equal(t, ir.KindEnum, types["PetStatus"].Kind)
	require.Equal(t, "PetStatus", types["Pet"].Fields[0].Type.Name)
}

func TestResolveCompositionDegrades(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name:  "Mixed",
				AllOf: []*model.Schema{{Type: model.TypeObject}},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	require.Equal(t, ir.KindUnresolved, types["Mixed"].Kind)
	require.Len(t, r.Warnings(), 1)
	require.Contains(t, r.Warnings()[0], "composition")
}

func TestResolveFreeFormObjectDegrades(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{
				Name:                 "Labels",
				Type:                 model.TypeObject,
				AdditionalProperties: &model.Schema{Type: model.TypeString},
			},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	require.Equal(t, ir.KindUnresolved, types["Labels"].Kind)
}

func TestResolveNameCollisionGetsSuffix(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{Name: "Pet-V1", Type: model.TypeObject, Properties: []model.Property{
				{Name: "a", Schema: &model.Schema{Type: model.TypeString}},
			}},
			{Name: "Pet V1", Type: model.TypeObject, Properties: []model.Property{
				{Name: "b", Schema: &model.Schema{Type: model.TypeString}},
			}},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	order, _ := r.Types()
	require.Equal(t, []string{"PetV1", "PetV1_2"}, order)
}

func TestResolveFieldKeywordEscaped(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{Name: "Job", Type: model.TypeObject, Properties: []model.Property{
				{Name: "class", Schema: &model.Schema{Type: model.TypeString}},
				{Name: "from", Schema: &model.Schema{Type: model.TypeString}},
			}},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	job := types["Job"]
	require.Equal(t, "class_", job.Fields[0].Name)
	require.Equal(t, "class", job.Fields[0].WireName)
	require.Equal(t, "from_", job.Fields[1].Name)
}

func TestResolvePrimitiveAlias(t *testing.T) {
	spec := &model.Spec{
		Schemas: []model.Schema{
			{Name: "PetID", Type: model.TypeString},
		},
	}

	r := NewResolver(spec)
	require.NoError(t, r.ResolveAll())

	_, types := r.Types()
	alias := types["PetID"]
	require.Equal(t, ir.KindPrimitive, alias.Kind)
	require.Equal(t, ir.PrimString, alias.Primitive)
}
