package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
)

func TestBuildAuthAPIKey(t *testing.T) {
	spec := &model.Spec{
		Security: []model.SecurityScheme{
			{Name: "ApiKeyAuth", Type: model.SecurityTypeAPIKey, ParamName: "X-API-Key", In: "header"},
			{Name: "QueryKey", Type: model.SecurityTypeAPIKey, ParamName: "api_key", In: "query"},
		},
	}

	descriptors, warnings := BuildAuth(spec)
	require.Empty(t, warnings)
	require.Len(t, descriptors, 2)

	require.Equal(t, ir.AuthAPIKey, descriptors[0].Strategy)
	require.Equal(t, "X-API-Key", descriptors[0].ParamName)
	require.Equal(t, ir.InHeader, descriptors[0].In)

	require.Equal(t, ir.InQuery, descriptors[1].In)
	require.Equal(t, "api_key", descriptors[1].ParamName)
}

func TestBuildAuthBasic(t *testing.T) {
	spec := &model.Spec{
		Security: []model.SecurityScheme{
			{Name: "BasicAuth", Type: model.SecurityTypeHTTP, Scheme: "basic"},
		},
	}

	descriptors, warnings := BuildAuth(spec)
	require.Empty(t, warnings)
	require.Len(t, descriptors, 1)
	require.Equal(t, ir.AuthBasic, descriptors[0].Strategy)
}

func TestBuildAuthUnsupportedDropped(t *testing.T) {
	spec := &model.Spec{
		Security: []model.SecurityScheme{
			{Name: "OAuth", Type: model.SecurityTypeOAuth2},
			{Name: "Bearer", Type: model.SecurityTypeHTTP, Scheme: "bearer"},
			{Name: "CookieKey", Type: model.SecurityTypeAPIKey, In: "cookie"},
		},
	}

	descriptors, warnings := BuildAuth(spec)
	require.Len(t, warnings, 3)
	// Nothing usable survived, so the client falls back to no auth.
	require.Len(t, descriptors, 1)
	require.Equal(t, ir.AuthNone, descriptors[0].Strategy)
}

func TestBuildAuthNoSchemes(t *testing.T) {
	descriptors, warnings := BuildAuth(&model.Spec{})
	require.Empty(t, warnings)
	require.Len(t, descriptors, 1)
	require.Equal(t, ir.AuthNone, descriptors[0].Strategy)
}
