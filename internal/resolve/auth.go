package resolve

import (
	"fmt"

	"github.com/solvberg/pygmalion/internal/ir"
	"github.com/solvberg/pygmalion/internal/model"
)

// BuildAuth maps declared security schemes onto the supported strategies.
// Schemes the generated client cannot wire (OAuth2 flows, OpenID Connect,
// mutual TLS, bearer tokens) are dropped with a warning; the client still
// exposes a generic header-injection extension point for them. A document
// with no schemes yields exactly one descriptor with strategy none.
func BuildAuth(spec *model.Spec) ([]ir.AuthDescriptor, []string) {
	var descriptors []ir.AuthDescriptor
	var warnings []string

	for _, scheme := range spec.Security {
		switch scheme.Type {
		case model.SecurityTypeAPIKey:
			loc, ok := apiKeyLocation(scheme.In)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("security scheme %s: apiKey in %q is not supported, dropped", scheme.Name, scheme.In))
				continue
			}
			paramName := scheme.ParamName
			if paramName == "" {
				paramName = scheme.Name
			}
			descriptors = append(descriptors, ir.AuthDescriptor{
				Strategy:   ir.AuthAPIKey,
				SchemeName: scheme.Name,
				ParamName:  paramName,
				In:         loc,
			})
		case model.SecurityTypeHTTP:
			if scheme.Scheme == "basic" {
				descriptors = append(descriptors, ir.AuthDescriptor{
					Strategy:   ir.AuthBasic,
					SchemeName: scheme.Name,
				})
				continue
			}
			warnings = append(warnings, fmt.Sprintf("security scheme %s: http scheme %q is not supported, dropped", scheme.Name, scheme.Scheme))
		default:
			warnings = append(warnings, fmt.Sprintf("security scheme %s: type %q is not supported, dropped", scheme.Name, scheme.Type))
		}
	}

	if len(descriptors) == 0 {
		descriptors = append(descriptors, ir.AuthDescriptor{Strategy: ir.AuthNone})
	}

	return descriptors, warnings
}

func apiKeyLocation(in string) (ir.Location, bool) {
	switch in {
	case "header":
		return ir.InHeader, true
	case "query":
		return ir.InQuery, true
	default:
		return "", false
	}
}
