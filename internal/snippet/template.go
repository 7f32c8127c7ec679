// Package snippet implements placeholder parsing, validation and
// HTML-escaping interpolation for reusable content snippets. Snippets carry
// {{name}} placeholders which are filled in at render time with
// caller-supplied values. None of these functions return errors: malformed
// templates and values degrade to empty or untouched output, because
// rendering is best-effort by contract.
package snippet

import (
	"fmt"
	"regexp"
	"strings"
)

// variablePattern matches {{name}} placeholders. Names start with a letter
// or underscore and carry no whitespace; "{{ name }}" is not a placeholder.
var variablePattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Variable is a designer-authored placeholder definition. A nil
// DefaultValue means the variable has no default.
type Variable struct {
	Name         string
	Required     bool
	DefaultValue *string
}

// Validation lists declared variables whose values are absent or blank.
type Validation struct {
	Missing []string
	Empty   []string
}

// Result is the outcome of rendering a snippet with validation.
type Result struct {
	Content          string
	MissingVariables []string
	HasWarnings      bool
}

// Options control interpolation behavior.
type Options struct {
	Sanitize          bool
	PreserveUndefined bool
}

func DefaultOptions() Options {
	return Options{Sanitize: true}
}

// ParseVariables returns the unique placeholder names found in template,
// in first-occurrence order.
func ParseVariables(template string) []string {
	names := []string{}
	seen := map[string]struct{}{}
	for _, match := range variablePattern.FindAllStringSubmatch(template, -1) {
		if _, ok := seen[match[1]]; ok {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}
	return names
}

// HasVariables reports whether template contains at least one placeholder.
func HasVariables(template string) bool {
	return variablePattern.MatchString(template)
}

// ValidateVariables checks every declared variable against the supplied
// values. A variable is missing when it is required, has no default and its
// value is absent; empty when the value is present but blank. Optional
// variables and variables with a default are never reported.
func ValidateVariables(variables []Variable, values map[string]any) Validation {
	validation := Validation{Missing: []string{}, Empty: []string{}}

	for _, variable := range variables {
		if !variable.Required || variable.DefaultValue != nil {
			continue
		}
		value, ok := values[variable.Name]
		if !ok || value == nil {
			validation.Missing = append(validation.Missing, variable.Name)
			continue
		}
		if text, isString := value.(string); isString && strings.TrimSpace(text) == "" {
			validation.Empty = append(validation.Empty, variable.Name)
		}
	}

	return validation
}

// DetectUndefined returns placeholder names used in template but not
// declared in variables.
func DetectUndefined(template string, variables []Variable) []string {
	declared := map[string]struct{}{}
	for _, variable := range variables {
		declared[variable.Name] = struct{}{}
	}

	undefined := []string{}
	for _, name := range ParseVariables(template) {
		if _, ok := declared[name]; !ok {
			undefined = append(undefined, name)
		}
	}
	return undefined
}

// Interpolate substitutes values into template with default options:
// escaped output, unresolved placeholders removed.
func Interpolate(template string, values map[string]any) string {
	return InterpolateWithOptions(template, values, nil, DefaultOptions())
}

// InterpolateWithOptions substitutes values into template. Resolution
// starts from variable defaults and is overlaid with the non-nil supplied
// values, stringified. Unresolved placeholders are replaced with the empty
// string, or kept verbatim when PreserveUndefined is set.
func InterpolateWithOptions(template string, values map[string]any, variables []Variable, opts Options) string {
	if template == "" {
		return ""
	}

	resolved := map[string]string{}
	for _, variable := range variables {
		if variable.DefaultValue != nil {
			resolved[variable.Name] = *variable.DefaultValue
		}
	}
	for name, value := range values {
		if value == nil {
			continue
		}
		resolved[name] = fmt.Sprint(value)
	}

	return variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := resolved[name]
		if !ok {
			if opts.PreserveUndefined {
				return match
			}
			return ""
		}
		if opts.Sanitize {
			return Sanitize(value)
		}
		return value
	})
}

// InterpolateWithValidation renders template with the default options and
// reports every variable that is missing, blank or undeclared. A name can
// appear more than once when several checks flag it.
func InterpolateWithValidation(template string, values map[string]any, variables []Variable) Result {
	validation := ValidateVariables(variables, values)

	missing := []string{}
	missing = append(missing, validation.Missing...)
	missing = append(missing, validation.Empty...)
	missing = append(missing, DetectUndefined(template, variables)...)

	return Result{
		Content:          InterpolateWithOptions(template, values, variables, DefaultOptions()),
		MissingVariables: missing,
		HasWarnings:      len(missing) > 0,
	}
}

// VariableDefinitions builds one definition per placeholder in template,
// all sharing the same required flag and none with a default.
func VariableDefinitions(template string, required bool) []Variable {
	names := ParseVariables(template)
	variables := make([]Variable, len(names))
	for i, name := range names {
		variables[i] = Variable{Name: name, Required: required}
	}
	return variables
}

// Preview renders template showing a bracketed [name] placeholder for every
// variable that is unresolved or blank, and the escaped value otherwise.
func Preview(template string, values map[string]any) string {
	if template == "" {
		return ""
	}

	return variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := values[name]
		if !ok || value == nil {
			return "[" + name + "]"
		}
		text := fmt.Sprint(value)
		if text == "" {
			return "[" + name + "]"
		}
		return Sanitize(text)
	})
}
