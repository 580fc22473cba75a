package validate

import (
	"reflect"
	"strings"
)

// yamlName reports fields by their yaml name so messages match input files
func yamlName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
