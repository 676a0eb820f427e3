package python

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeClass(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"pet", "Pet"},
		{"pet_store", "PetStore"},
		{"pet-store", "PetStore"},
		{"pet store", "PetStore"},
		{"Pet.Store", "PetStore"},
		{"Pet-V1", "PetV1"},
		{"Pet V1", "PetV1"},
		{"petStore", "PetStore"},
		{"", "Unnamed"},
		{"!!!", "Unnamed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input, KindClass)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeSnake(t *testing.T) {
	tests := []struct {
		input    string
		kind     NameKind
		expected string
	}{
		{"listPets", KindMethod, "list_pets"},
		{"list-pets", KindMethod, "list_pets"},
		{"list pets", KindMethod, "list_pets"},
		{"petId", KindVariable, "pet_id"},
		{"X-Request-Id", KindVariable, "x_request_id"},
		{"import", KindVariable, "import_"},
		{"class", KindField, "class_"},
		{"from", KindField, "from_"},
		{"123abc", KindField, "_123abc"},
		{"", KindField, "unnamed"},
		{"my.module", KindModule, "my_module"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input, tt.kind)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeStripsIllegalRunes(t *testing.T) {
	require.Equal(t, "petsv2", Sanitize("pets(v2)", KindMethod))
	require.Equal(t, "contenttype", Sanitize("content/type", KindField))
}
