package python

import (
	"strings"
	"text/template"
)

// TemplateFuncs returns the function map shared by all Python templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"typeHint":     TypeHint,
		"optionalHint": OptionalHint,
		"literal":      Literal,
		"memberName":   MemberName,
		"docstring":    Docstring,
		"snakeCase":    func(s string) string { return Sanitize(s, KindMethod) },
		"pascalCase":   func(s string) string { return Sanitize(s, KindClass) },
		"moduleName":   func(s string) string { return Sanitize(s, KindModule) },
		"lower":        strings.ToLower,
		"upper":        strings.ToUpper,
		"join":         strings.Join,
		"trimSpace":    strings.TrimSpace,
		"hasPrefix":    strings.HasPrefix,
		"hasSuffix":    strings.HasSuffix,
	}
}
