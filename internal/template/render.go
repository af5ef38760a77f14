// Package template provides Mustache-style template rendering for scaffolded
// project files.
package template

import (
	"regexp"
)

// variablePattern matches Mustache-style {{variable}} placeholders.
var variablePattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

// Render substitutes {{variable}} placeholders in the template with values
// from the variables map. Unknown variables are left as-is in the output so
// a typo in a template is visible in the generated file instead of silently
// producing an empty string.
func Render(tmpl string, variables map[string]string) string {
	if len(variables) == 0 {
		return tmpl
	}

	return variablePattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		submatches := variablePattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}
		if value, ok := variables[submatches[1]]; ok {
			return value
		}
		return match
	})
}

// Merge merges built-in variables with caller-provided overrides.
// Overrides take precedence on name collision.
func Merge(builtins, overrides map[string]string) map[string]string {
	if len(builtins) == 0 && len(overrides) == 0 {
		return nil
	}

	result := make(map[string]string, len(builtins)+len(overrides))
	for k, v := range builtins {
		result[k] = v
	}
	for k, v := range overrides {
		result[k] = v
	}
	return result
}
