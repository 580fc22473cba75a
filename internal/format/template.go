package format

import (
	"os"
	"slices"
)

// substitute fills $name placeholders in tmpl from values.
// The first placeholder without a value is returned as missing.
func substitute(tmpl string, values map[string]string) (string, string) {
	var missing string
	out := os.Expand(tmpl, func(name string) string {
		v, ok := values[name]
		if !ok && missing == "" {
			missing = name
		}
		return v
	})
	return out, missing
}

// Placeholders lists the distinct placeholder names of tmpl in order of appearance
func Placeholders(tmpl string) []string {
	var names []string
	os.Expand(tmpl, func(name string) string {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
		return ""
	})
	return names
}
