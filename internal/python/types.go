package python

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solvberg/pygmalion/internal/ir"
)

// TypeHint renders a TypeRef as a Python type annotation. Unresolved types
// degrade to Any rather than failing generation.
func TypeHint(t ir.TypeRef) string {
	switch t.Kind {
	case ir.KindPrimitive:
		return primitiveHint(t.Primitive)
	case ir.KindArray:
		if t.Elem == nil {
			return "List[Any]"
		}
		return "List[" + TypeHint(*t.Elem) + "]"
	case ir.KindObject, ir.KindEnum:
		if t.Name == "" {
			return "Any"
		}
		return t.Name
	default:
		return "Any"
	}
}

// OptionalHint wraps the annotation in Optional[...] for non-required fields.
func OptionalHint(t ir.TypeRef, required bool) string {
	hint := TypeHint(t)
	if required {
		return hint
	}
	return "Optional[" + hint + "]"
}

func primitiveHint(kind ir.PrimitiveKind) string {
	switch kind {
	case ir.PrimString:
		return "str"
	case ir.PrimInteger:
		return "int"
	case ir.PrimNumber:
		return "float"
	case ir.PrimBoolean:
		return "bool"
	default:
		return "Any"
	}
}

// Literal renders a Go value as Python source. Used for enum members and
// defaults; anything exotic falls back to its quoted string form.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return strconv.Quote(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return strconv.Quote(fmt.Sprintf("%v", val))
	}
}

// MemberName derives an enum member identifier from its literal value.
func MemberName(v any) string {
	raw := fmt.Sprintf("%v", v)
	return strings.ToUpper(Sanitize(raw, KindField))
}

// Docstring formats text as an indented one-line or multi-line docstring body.
func Docstring(text, indent string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if i > 0 && strings.TrimSpace(l) != "" {
			lines[i] = indent + strings.TrimSpace(l)
		} else if i > 0 {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
