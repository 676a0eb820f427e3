// Package python knows how to spell things in generated Python: identifier
// sanitization, per-scope name registries and type-hint rendering.
package python

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// NameKind selects the casing convention applied by Sanitize.
type NameKind string

const (
	KindModule   NameKind = "module"
	KindClass    NameKind = "class"
	KindMethod   NameKind = "method"
	KindField    NameKind = "field"
	KindVariable NameKind = "variable"
)

// Reserved words per the Python language reference. A sanitized identifier
// that lands on one of these gets a trailing underscore.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Sanitize converts an arbitrary spec identifier into a valid Python
// identifier cased for the given kind: classes are PascalCase, everything
// else is snake_case. The result is deterministic; uniqueness within a scope
// is the NameRegistry's job.
func Sanitize(raw string, kind NameKind) string {
	cleaned := clean(raw)

	var name string
	switch kind {
	case KindClass:
		name = strcase.ToCamel(cleaned)
	default:
		name = strcase.ToSnake(cleaned)
	}

	if name == "" {
		name = fallbackName(kind)
	}

	if unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	if pythonKeywords[name] {
		name += "_"
	}

	return name
}

// clean replaces separators with underscores and strips everything that
// cannot appear in an identifier.
func clean(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fallbackName(kind NameKind) string {
	if kind == KindClass {
		return "Unnamed"
	}
	return "unnamed"
}
