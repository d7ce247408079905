// Package transform converts between the storage key-naming convention
// (snake_case) and the external API convention (camelCase). The transforms
// are pure and stateless: they allocate fresh structures and never mutate
// their input.
package transform

import (
	"strings"
	"unicode"
)

// SnakeToCamel rewrites a single snake_case key to camelCase. Keys without
// underscores pass through unchanged.
func SnakeToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	var b strings.Builder

	b.Grow(len(key))

	upperNext := false

	for _, r := range key {
		if r == '_' {
			upperNext = true

			continue
		}

		if upperNext {
			b.WriteRune(unicode.ToUpper(r))

			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// CamelizeKeys returns a copy of v with every map key rewritten from
// snake_case to camelCase, applied recursively through slices and nested
// maps. Non-map, non-slice values pass through untouched.
func CamelizeKeys(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, nested := range value {
			out[SnakeToCamel(key)] = CamelizeKeys(nested)
		}

		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = CamelizeKeys(item)
		}

		return out
	default:
		return v
	}
}
